package domain

// Targeting describes who should see a validation campaign.
type Targeting struct {
	AgeRanges []string `json:"age_ranges"`
	Interests []string `json:"interests"`
	Languages []string `json:"languages,omitempty"`
	Geos      []string `json:"geos,omitempty"`
}

// DefaultTargeting is applied when the caller supplies no richer model.
func DefaultTargeting() Targeting {
	return Targeting{
		AgeRanges: []string{"25-34", "35-44"},
		Interests: []string{"Business", "Technology", "Productivity"},
	}
}

// IsZero reports whether no targeting dimension is set.
func (t Targeting) IsZero() bool {
	return len(t.AgeRanges) == 0 && len(t.Interests) == 0 && len(t.Languages) == 0 && len(t.Geos) == 0
}
