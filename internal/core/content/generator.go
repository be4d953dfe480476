// Package content derives a complete campaign draft (keywords, ad copy,
// targeting) from the founder's idea, target customer and problem. The
// generator uses no clock, randomness or I/O, so equal inputs give equal
// drafts.
package content

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"ideaproof/internal/core/domain"
)

// DefaultDailyBudgetMinor is 25.00 in the account currency.
const DefaultDailyBudgetMinor int64 = 2500

// Input is what the founder typed plus the validation label used in the
// campaign name.
type Input struct {
	Idea      string            `json:"idea"`
	Customer  string            `json:"customer"`
	Problem   string            `json:"problem"`
	Label     string            `json:"label"`
	Locale    string            `json:"locale,omitempty"`
	Targeting *domain.Targeting `json:"targeting,omitempty"`
}

// Generator builds drafts. The zero value uses the default budget.
type Generator struct {
	DailyBudgetMinor int64
}

// NewGenerator returns a generator with the given daily budget; a
// non-positive budget selects DefaultDailyBudgetMinor.
func NewGenerator(dailyBudgetMinor int64) *Generator {
	return &Generator{DailyBudgetMinor: dailyBudgetMinor}
}

// Generate builds the draft and validates it against the platform limits.
func (g *Generator) Generate(in Input) (domain.CampaignDraft, error) {
	idea := collapse(in.Idea)
	customer := collapse(in.Customer)
	problem := collapse(in.Problem)
	switch {
	case idea == "":
		return domain.CampaignDraft{}, domain.NewValidationError("content.generate", "idea is required")
	case problem == "":
		return domain.CampaignDraft{}, domain.NewValidationError("content.generate", "problem is required")
	case customer == "":
		return domain.CampaignDraft{}, domain.NewValidationError("content.generate", "target customer is required")
	}

	p := phrasesFor(in.Locale)
	budget := g.DailyBudgetMinor
	if budget <= 0 {
		budget = DefaultDailyBudgetMinor
	}

	label := collapse(in.Label)
	name := idea + " - " + p.validation
	if label != "" {
		name += " " + label
	}

	targeting := domain.DefaultTargeting()
	if in.Targeting != nil && !in.Targeting.IsZero() {
		targeting = *in.Targeting
	}

	draft := domain.CampaignDraft{
		Name:                  truncateWords(name, domain.MaxCampaignNameLen),
		AdGroupName:           truncateWords(idea+" - "+p.mainGroup, domain.MaxCampaignNameLen),
		DailyBudgetMinorUnits: budget,
		Keywords:              keywords(p, idea, problem),
		AdCopy:                adCopy(p, idea, customer, problem),
		Targeting:             targeting,
	}
	if err := draft.Validate(); err != nil {
		return domain.CampaignDraft{}, err
	}
	return draft, nil
}

func keywords(p phrases, idea, problem string) []domain.Keyword {
	lower := cases.Lower(p.lang)
	out := make([]domain.Keyword, 0, domain.MaxKeywords)
	seen := make(map[string]struct{}, len(p.keywords))
	for _, tpl := range p.keywords {
		text := lower.String(fill(tpl, idea, "", problem))
		text = truncateWords(text, domain.MaxKeywordLength)
		if text == "" {
			continue
		}
		if _, dup := seen[text]; dup {
			continue
		}
		seen[text] = struct{}{}
		out = append(out, domain.Keyword{Text: text, MatchType: domain.MatchBroad})
		if len(out) == domain.MaxKeywords {
			break
		}
	}
	return out
}

func adCopy(p phrases, idea, customer, problem string) domain.AdCopy {
	c := domain.AdCopy{
		Headlines:    make([]string, 0, len(p.headlines)),
		Descriptions: make([]string, 0, len(p.descriptions)),
	}
	for _, slot := range p.headlines {
		c.Headlines = append(c.Headlines, pick(slot, domain.MaxHeadlineLength, idea, customer, problem))
	}
	for _, slot := range p.descriptions {
		c.Descriptions = append(c.Descriptions, pick(slot, domain.MaxDescriptionLength, idea, customer, problem))
	}
	return c
}

// pick returns the first template of the slot that fits limit, or the last
// one shortened on a word boundary.
func pick(slot []string, limit int, idea, customer, problem string) string {
	var last string
	for _, tpl := range slot {
		last = fill(tpl, idea, customer, problem)
		if utf8.RuneCountInString(last) <= limit {
			return last
		}
	}
	return truncateWords(last, limit)
}

func fill(tpl, idea, customer, problem string) string {
	r := strings.NewReplacer("{idea}", idea, "{customer}", customer, "{problem}", problem)
	return collapse(r.Replace(tpl))
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncateWords shortens s to at most limit runes, cutting at the last
// space when one exists. Text made only of separators is cut hard instead
// of being trimmed away.
func truncateWords(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	hard := string([]rune(s)[:limit])
	cut := hard
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	cut = strings.TrimRightFunc(cut, func(r rune) bool {
		return unicode.IsSpace(r) || r == '-' || r == ',' || r == ':'
	})
	if cut == "" {
		return strings.TrimSpace(hard)
	}
	return cut
}

type phrases struct {
	lang         language.Tag
	validation   string
	mainGroup    string
	keywords     []string
	headlines    [][]string
	descriptions [][]string
}

func phrasesFor(locale string) phrases {
	if strings.HasPrefix(strings.ToLower(locale), "de") {
		return german
	}
	return english
}

var english = phrases{
	lang:       language.English,
	validation: "Validation",
	mainGroup:  "Main group",
	keywords: []string{
		"{idea}",
		"{problem}",
		"{problem} solution",
		"{idea} app",
		"{idea} service",
		"{problem} help",
		"{idea} online",
		"{problem} software",
		"{idea} tool",
		"{problem} automation",
	},
	headlines: [][]string{
		{"{idea} - Finally Available!", "{idea} - Available Now", "{idea}"},
		{"Solution for {problem}", "Fix {problem}", "{problem}"},
		{"Perfect for {customer}", "For {customer}", "{customer}"},
	},
	descriptions: [][]string{
		{
			"Finally a solution for {problem}. Built for {customer}. Try it free today!",
			"A solution for {problem}. Built for {customer}.",
			"A solution for {problem}.",
		},
		{
			"{idea} makes {problem} easy. Get started today!",
			"{idea}. Get started today!",
			"{idea}",
		},
	},
}

var german = phrases{
	lang:       language.German,
	validation: "Validierung",
	mainGroup:  "Hauptgruppe",
	keywords: []string{
		"{idea}",
		"{problem}",
		"{problem} lösung",
		"{idea} app",
		"{idea} service",
		"{problem} hilfe",
		"{idea} online",
		"{problem} software",
		"{idea} tool",
		"{problem} automatisierung",
	},
	headlines: [][]string{
		{"{idea} - Endlich verfügbar!", "{idea} - Jetzt verfügbar", "{idea}"},
		{"Lösung für {problem}", "{problem}"},
		{"Perfekt für {customer}", "Für {customer}", "{customer}"},
	},
	descriptions: [][]string{
		{
			"Endlich eine Lösung für {problem}. Speziell entwickelt für {customer}. Jetzt kostenlos testen!",
			"Eine Lösung für {problem}. Entwickelt für {customer}.",
			"Eine Lösung für {problem}.",
		},
		{
			"{idea} macht {problem} zum Kinderspiel. Starten Sie noch heute!",
			"{idea}. Starten Sie noch heute!",
			"{idea}",
		},
	},
}
