// Package validation turns a free-text assessment into a readiness score and
// decides which paid-validation actions the score allows. Everything here is
// pure: identical input always yields identical output.
package validation

import (
	"regexp"
	"strconv"
)

var (
	// Labels in English and German; the first labeled number wins.
	labeledScore = regexp.MustCompile(`(?i)(?:startup score|score|punkte|bewertung|rating|result|ergebnis|gesamt|total)[^\d]{0,10}(\d+)(?:\s*/\s*100|\s*(?:out of|von)\s*100)?`)
	standaloneInt = regexp.MustCompile(`\b(\d{1,3})\b`)
	outOf100      = regexp.MustCompile(`(?i)\b(\d{1,3})\s*(?:/\s*100|(?:out of|von)\s*100)\b`)
)

// ExtractScore returns the readiness score in [0,100] found in text. The
// second result is false when no score could be extracted.
//
// A labeled number ("Score: 72/100", "Gesamtbewertung 55") is preferred.
// Otherwise the first standalone 1-3 digit integer is used, which may pick up
// an unrelated figure; ExtractScoreStrict avoids that.
func ExtractScore(text string) (int, bool) {
	if score, ok := labeled(text); ok {
		return score, true
	}
	m := standaloneInt.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	return inRange(m[1])
}

// ExtractScoreStrict behaves like ExtractScore but only falls back to a
// number written as "N/100" or "N out of 100".
func ExtractScoreStrict(text string) (int, bool) {
	if score, ok := labeled(text); ok {
		return score, true
	}
	m := outOf100.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	return inRange(m[1])
}

func labeled(text string) (int, bool) {
	m := labeledScore.FindStringSubmatch(text)
	if m == nil || len(m[1]) > 3 {
		return 0, false
	}
	return inRange(m[1])
}

func inRange(digits string) (int, bool) {
	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 || n > 100 {
		return 0, false
	}
	return n, true
}
