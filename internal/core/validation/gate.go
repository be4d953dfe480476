package validation

import (
	"fmt"

	"ideaproof/internal/core/domain"
)

// Tier thresholds. Scores below BlockedBelow are blocked, scores above
// ReadyAbove are ready, everything in between needs caution.
const (
	BlockedBelow = 25
	ReadyAbove   = 60
)

// Guidance shown whenever paid validation is not fully recommended.
const (
	GuidanceBlocked = "Your score is too low for ad validation. Work through the improvement suggestions before spending money on ads."
	GuidanceCaution = "Improvement is recommended. Work on the suggestions before spending money on ads, but you can already run a small test."
)

// Decision is the gate outcome for one score. It carries everything the UI
// and the server need to enable or refuse paid-validation actions.
type Decision struct {
	Score        int                  `json:"score"`
	Known        bool                 `json:"known"`
	Tier         domain.ReadinessTier `json:"tier"`
	CanValidate  bool                 `json:"can_validate"`
	ShowGuidance bool                 `json:"show_guidance"`
	Guidance     string               `json:"guidance,omitempty"`
	Message      string               `json:"message"`
}

// Tier maps a score to its readiness tier. An unknown score is blocked.
func Tier(score int, known bool) domain.ReadinessTier {
	switch {
	case !known || score < BlockedBelow:
		return domain.TierBlocked
	case score <= ReadyAbove:
		return domain.TierCaution
	default:
		return domain.TierReady
	}
}

// Evaluate builds the full decision for a score.
func Evaluate(score int, known bool) Decision {
	d := Decision{Score: score, Known: known, Tier: Tier(score, known)}
	switch d.Tier {
	case domain.TierReady:
		d.CanValidate = true
		d.Message = fmt.Sprintf("Congratulations! Your idea scored %d. You can validate it with real users now.", score)
	case domain.TierCaution:
		d.CanValidate = true
		d.ShowGuidance = true
		d.Guidance = GuidanceCaution
		d.Message = fmt.Sprintf("Your score is %d. Improvement recommended.", score)
	default:
		d.ShowGuidance = true
		d.Guidance = GuidanceBlocked
		if known {
			d.Message = fmt.Sprintf("Your score is %d. Improvement required.", score)
		} else {
			d.Message = "No readiness score could be found in the assessment."
		}
	}
	return d
}

// Assess extracts the score from an assessment and evaluates it.
func Assess(assessment string) Decision {
	return Evaluate(ExtractScore(assessment))
}

// AssessStrict is Assess without the bare-number fallback.
func AssessStrict(assessment string) Decision {
	return Evaluate(ExtractScoreStrict(assessment))
}

// AssessWith selects Assess or AssessStrict.
func AssessWith(assessment string, strict bool) Decision {
	if strict {
		return AssessStrict(assessment)
	}
	return Assess(assessment)
}

// Allow returns a GateBlocked error when the decision forbids paid
// validation.
func (d Decision) Allow(op string) error {
	if d.CanValidate {
		return nil
	}
	return domain.NewGateBlocked(op, d.Guidance)
}
