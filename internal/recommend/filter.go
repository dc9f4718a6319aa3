package recommend

import (
	"context"
	"strings"

	"github.com/yeshwanthlm/RDS-Automation/internal/shared/telemetry"
)

// Filter decides which recommendations make it into the report. Tag values
// are matched exactly, categories case-insensitively.
type Filter struct {
	tagKey     string
	tagValues  map[string]struct{}
	categories map[string]struct{}
}

// NewFilter builds a filter from the configured environment tag key,
// accepted tag values and accepted categories.
func NewFilter(tagKey string, tagValues, categories []string) Filter {
	f := Filter{
		tagKey:     tagKey,
		tagValues:  make(map[string]struct{}, len(tagValues)),
		categories: make(map[string]struct{}, len(categories)),
	}
	for _, v := range tagValues {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			f.tagValues[trimmed] = struct{}{}
		}
	}
	for _, c := range categories {
		if trimmed := strings.TrimSpace(c); trimmed != "" {
			f.categories[strings.ToLower(trimmed)] = struct{}{}
		}
	}
	return f
}

// MatchTags reports whether at least one tag under the environment key
// carries an accepted value.
func (f Filter) MatchTags(tags []Tag) bool {
	for _, tag := range tags {
		if tag.Key != f.tagKey {
			continue
		}
		if _, ok := f.tagValues[tag.Value]; ok {
			return true
		}
	}
	return false
}

// MatchCategory reports whether the case-folded category is accepted.
func (f Filter) MatchCategory(category string) bool {
	_, ok := f.categories[strings.ToLower(strings.TrimSpace(category))]
	return ok
}

// Collect fetches the full recommendation list from src and applies f.
//
// The returned slice preserves source order. The tally assigns every input
// recommendation to exactly one bucket: retained ones under their own
// status, everything else (non-actionable status, missing resource, tag
// lookup failure, predicate miss) under filtered_out. A tag lookup failure
// drops only the affected recommendation; the run continues.
func Collect(ctx context.Context, src Source, f Filter) ([]Recommendation, Tally, error) {
	recs, err := src.ListRecommendations(ctx)
	if err != nil {
		return nil, nil, err
	}

	tally := Tally{}
	kept := make([]Recommendation, 0, len(recs))
	for _, rec := range recs {
		if !rec.Status.Actionable() || rec.Resource.IsZero() {
			tally.ObserveFilteredOut()
			continue
		}
		tags, err := src.ListResourceTags(ctx, rec.Resource)
		if err != nil {
			telemetry.Warn("tag lookup failed, dropping recommendation", map[string]any{
				"recommendation_id": rec.ID,
				"resource":          rec.Resource.String(),
				"error":             err.Error(),
			})
			tally.ObserveFilteredOut()
			continue
		}
		if !f.MatchTags(tags) || !f.MatchCategory(rec.Category) {
			tally.ObserveFilteredOut()
			continue
		}
		tally.Observe(rec.Status)
		kept = append(kept, rec)
	}
	return kept, tally, nil
}
