package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"kindred_server/models"
)

// DiscoveryService computes ranked candidate lists for browse requests. The
// filtering itself is pure; only the pool/exclusion reads touch other
// components.
type DiscoveryService struct {
	Directory UserDirectory
	Registry  *MatchRegistry
}

// BrowseResult is one page of discovery output.
type BrowseResult struct {
	Items      []models.Profile `json:"items"`
	TotalCount int              `json:"totalCount"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
}

// Browse loads the candidate pool, removes the requester and every user the
// requester already has a record with, applies the criteria and returns the
// requested page. Registry and presence state are never touched when the
// directory read fails.
func (s *DiscoveryService) Browse(ctx context.Context, requesterID string, criteria models.FilterCriteria, page, pageSize int) (*BrowseResult, error) {
	if err := criteria.Validate(); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrInvalidOperation)
	}
	if page < 1 || pageSize < 1 {
		return nil, fmt.Errorf("page and pageSize must be positive: %w", ErrInvalidOperation)
	}

	requester, err := s.Directory.GetProfile(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	pool, err := s.Directory.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}

	excluded, err := s.Registry.ListExcludedFor(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	candidates := FilterCandidates(requester, criteria, pool, excluded)
	candidates = RankByCompatibility(requester, candidates, criteria.CompatibleZodiacOnly)

	total := len(candidates)
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return &BrowseResult{
		Items:      candidates[start:end],
		TotalCount: total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

// FilterCandidates applies the criteria to the pool: the requester and
// excluded ids are removed unconditionally, every specified dimension must
// pass (AND), set-valued dimensions pass on any overlap (OR within the
// dimension), and a candidate missing an attribute fails any criterion
// naming it. Output is newest profile first and stable; inputs are never
// mutated.
func FilterCandidates(requester *models.Profile, criteria models.FilterCriteria, pool []models.Profile, excluded map[string]bool) []models.Profile {
	out := make([]models.Profile, 0, len(pool))
	for _, candidate := range pool {
		if candidate.UserID == requester.UserID || excluded[candidate.UserID] {
			continue
		}
		if matchesCriteria(&candidate, criteria) {
			out = append(out, candidate)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt > out[j].CreatedAt
	})
	return out
}

func matchesCriteria(p *models.Profile, c models.FilterCriteria) bool {
	if c.Gender != "" && !strings.EqualFold(p.Gender, c.Gender) {
		return false
	}
	if c.MinAge != 0 && p.Age < c.MinAge {
		return false
	}
	if c.MaxAge != 0 && p.Age > c.MaxAge {
		return false
	}
	if !matchesLocation(p, c) {
		return false
	}
	if c.VideoChatOnly && !p.Lifestyle.VideoChat {
		return false
	}
	if len(c.ZodiacSigns) > 0 && !containsFold(c.ZodiacSigns, p.Lifestyle.Zodiac) {
		return false
	}
	if len(c.Interests) > 0 && !anyOverlapFold(c.Interests, p.Interests) {
		return false
	}
	if len(c.Languages) > 0 && !anyOverlapFold(c.Languages, p.Lifestyle.Languages) {
		return false
	}
	if c.Education != "" && !strings.EqualFold(p.Lifestyle.Education, c.Education) {
		return false
	}
	if c.RelationshipGoal != "" && !strings.EqualFold(p.Lifestyle.RelationshipGoal, c.RelationshipGoal) {
		return false
	}
	if c.HasKids != "" && !strings.EqualFold(p.Lifestyle.HasKids, c.HasKids) {
		return false
	}
	if c.SmokeFrequency != "" && !strings.EqualFold(p.Lifestyle.SmokeFrequency, c.SmokeFrequency) {
		return false
	}
	if c.DrinkFrequency != "" && !strings.EqualFold(p.Lifestyle.DrinkFrequency, c.DrinkFrequency) {
		return false
	}
	if c.MinHeightCm != 0 && p.Lifestyle.HeightCm < c.MinHeightCm {
		return false
	}
	if c.MaxHeightCm != 0 && (p.Lifestyle.HeightCm == 0 || p.Lifestyle.HeightCm > c.MaxHeightCm) {
		return false
	}
	if c.BodyType != "" && !strings.EqualFold(p.Lifestyle.BodyType, c.BodyType) {
		return false
	}
	if c.EyeColor != "" && !strings.EqualFold(p.Lifestyle.EyeColor, c.EyeColor) {
		return false
	}
	if c.HairColor != "" && !strings.EqualFold(p.Lifestyle.HairColor, c.HairColor) {
		return false
	}
	return true
}

// matchesLocation treats city and country as one OR-group: the candidate
// passes when either its city or its country contains the requested value,
// case-insensitively.
func matchesLocation(p *models.Profile, c models.FilterCriteria) bool {
	if c.City == "" && c.Country == "" {
		return true
	}

	city := strings.ToLower(p.Location.City)
	country := strings.ToLower(p.Location.Country)

	if c.City != "" {
		want := strings.ToLower(c.City)
		if (city != "" && strings.Contains(city, want)) || (country != "" && strings.Contains(country, want)) {
			return true
		}
	}
	if c.Country != "" {
		want := strings.ToLower(c.Country)
		if (city != "" && strings.Contains(city, want)) || (country != "" && strings.Contains(country, want)) {
			return true
		}
	}
	return false
}

func containsFold(set []string, value string) bool {
	if value == "" {
		return false
	}
	for _, s := range set {
		if strings.EqualFold(s, value) {
			return true
		}
	}
	return false
}

func anyOverlapFold(wanted, have []string) bool {
	for _, h := range have {
		if containsFold(wanted, h) {
			return true
		}
	}
	return false
}
