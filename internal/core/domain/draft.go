package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Platform text limits for responsive search ads, counted in characters.
const (
	MaxHeadlineLength    = 30
	MaxDescriptionLength = 90
	MaxKeywordLength     = 80
	MaxKeywords          = 10
	MinHeadlines         = 3
	MinDescriptions      = 2
	MaxCampaignNameLen   = 255
)

// MatchType of a keyword.
type MatchType string

const (
	MatchBroad  MatchType = "BROAD"
	MatchPhrase MatchType = "PHRASE"
	MatchExact  MatchType = "EXACT"
)

// Keyword is one search term attached to the ad group.
type Keyword struct {
	Text      string    `json:"text"`
	MatchType MatchType `json:"match_type"`
}

// AdCopy holds the responsive search ad assets in display order.
type AdCopy struct {
	Headlines    []string `json:"headlines"`
	Descriptions []string `json:"descriptions"`
}

// CampaignDraft is the fully specified, not yet submitted campaign payload.
// It is consumed by exactly one create call.
type CampaignDraft struct {
	Name                  string    `json:"name"`
	AdGroupName           string    `json:"ad_group_name"`
	DailyBudgetMinorUnits int64     `json:"daily_budget_minor_units"`
	Keywords              []Keyword `json:"keywords"`
	AdCopy                AdCopy    `json:"ad_copy"`
	Targeting             Targeting `json:"targeting"`
}

// Validate checks field lengths, asset counts and the keyword cap. It
// returns a ValidationError naming the first offending field.
func (d CampaignDraft) Validate() error {
	const op = "draft.validate"
	switch {
	case strings.TrimSpace(d.Name) == "":
		return NewValidationError(op, "campaign name is required")
	case utf8.RuneCountInString(d.Name) > MaxCampaignNameLen:
		return NewValidationError(op, fmt.Sprintf("campaign name exceeds %d characters", MaxCampaignNameLen))
	case d.DailyBudgetMinorUnits <= 0:
		return NewValidationError(op, "daily budget must be positive")
	case len(d.Keywords) == 0:
		return NewValidationError(op, "at least one keyword is required")
	case len(d.Keywords) > MaxKeywords:
		return NewValidationError(op, fmt.Sprintf("at most %d keywords are allowed, got %d", MaxKeywords, len(d.Keywords)))
	case len(d.AdCopy.Headlines) < MinHeadlines:
		return NewValidationError(op, fmt.Sprintf("at least %d headlines are required", MinHeadlines))
	case len(d.AdCopy.Descriptions) < MinDescriptions:
		return NewValidationError(op, fmt.Sprintf("at least %d descriptions are required", MinDescriptions))
	}
	for i, kw := range d.Keywords {
		n := utf8.RuneCountInString(kw.Text)
		if n == 0 || n > MaxKeywordLength {
			return NewValidationError(op, fmt.Sprintf("keyword %d must have 1 to %d characters", i+1, MaxKeywordLength))
		}
	}
	for i, h := range d.AdCopy.Headlines {
		n := utf8.RuneCountInString(h)
		if n == 0 || n > MaxHeadlineLength {
			return NewValidationError(op, fmt.Sprintf("headline %d must have 1 to %d characters", i+1, MaxHeadlineLength))
		}
	}
	for i, desc := range d.AdCopy.Descriptions {
		n := utf8.RuneCountInString(desc)
		if n == 0 || n > MaxDescriptionLength {
			return NewValidationError(op, fmt.Sprintf("description %d must have 1 to %d characters", i+1, MaxDescriptionLength))
		}
	}
	return nil
}
