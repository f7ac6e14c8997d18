package models

import "errors"

// FilterCriteria enumerates every recognized browse option. All fields are
// independently optional: a zero value imposes no constraint. Distinct
// dimensions combine with AND; set-valued dimensions (zodiac signs,
// interests, languages) accept a candidate when at least one value overlaps.
type FilterCriteria struct {
	Gender               string   `json:"gender,omitempty"`
	MinAge               int      `json:"minAge,omitempty"`
	MaxAge               int      `json:"maxAge,omitempty"`
	City                 string   `json:"city,omitempty"`
	Country              string   `json:"country,omitempty"`
	VideoChatOnly        bool     `json:"videoChatOnly,omitempty"`
	ZodiacSigns          []string `json:"zodiacSigns,omitempty"`
	Interests            []string `json:"interests,omitempty"`
	Languages            []string `json:"languages,omitempty"`
	Education            string   `json:"education,omitempty"`
	RelationshipGoal     string   `json:"relationshipGoal,omitempty"`
	HasKids              string   `json:"hasKids,omitempty"` // "yes", "no" or "" (no constraint)
	SmokeFrequency       string   `json:"smokeFrequency,omitempty"`
	DrinkFrequency       string   `json:"drinkFrequency,omitempty"`
	MinHeightCm          int      `json:"minHeightCm,omitempty"`
	MaxHeightCm          int      `json:"maxHeightCm,omitempty"`
	BodyType             string   `json:"bodyType,omitempty"`
	EyeColor             string   `json:"eyeColor,omitempty"`
	HairColor            string   `json:"hairColor,omitempty"`
	CompatibleZodiacOnly bool     `json:"compatibleZodiacOnly,omitempty"`
}

// Validate rejects out-of-range combinations instead of letting them silently
// produce an empty result.
func (c *FilterCriteria) Validate() error {
	if c.MinAge != 0 && c.MaxAge != 0 && c.MinAge > c.MaxAge {
		return errors.New("minAge cannot exceed maxAge")
	}
	if c.MinHeightCm != 0 && c.MaxHeightCm != 0 && c.MinHeightCm > c.MaxHeightCm {
		return errors.New("minHeightCm cannot exceed maxHeightCm")
	}
	return nil
}
