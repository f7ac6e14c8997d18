package services

import "kindred_server/models"

// RankByCompatibility orders/restricts an already-filtered candidate list.
// Today the only compatibility signal is the fixed zodiac table, and it is
// exclusionary rather than additive: with compatibleZodiacOnly set and a
// requester zodiac on record, candidates outside the compatible set are
// dropped entirely. Candidates that survive keep their incoming (recency)
// order, so ranking is filter-then-sort, not a weighted score.
func RankByCompatibility(requester *models.Profile, candidates []models.Profile, compatibleZodiacOnly bool) []models.Profile {
	if !compatibleZodiacOnly || requester.Lifestyle.Zodiac == "" {
		out := make([]models.Profile, len(candidates))
		copy(out, candidates)
		return out
	}

	out := make([]models.Profile, 0, len(candidates))
	for _, candidate := range candidates {
		if models.ZodiacCompatible(requester.Lifestyle.Zodiac, candidate.Lifestyle.Zodiac) {
			out = append(out, candidate)
		}
	}
	return out
}
