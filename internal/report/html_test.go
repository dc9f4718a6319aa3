package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeshwanthlm/RDS-Automation/internal/recommend"
)

func sampleRecs() []recommend.Recommendation {
	return []recommend.Recommendation{
		{
			ID:          "rec-1",
			Resource:    "arn:aws:rds:eu-west-1:123456789012:db:orders-prod",
			Status:      recommend.StatusActive,
			Severity:    recommend.SeverityHigh,
			Category:    "performance efficiency",
			Title:       "High CPU",
			Description: "Scale up",
			Link:        "https://example.com/rec-1",
		},
		{
			ID:          "rec-2",
			Resource:    "arn:aws:rds:eu-west-1:123456789012:db:billing-prod",
			Status:      recommend.StatusPending,
			Severity:    recommend.SeverityLow,
			Category:    "cost optimization",
			Title:       "Over-provisioned",
			Description: "Scale down",
		},
	}
}

func sampleTally() recommend.Tally {
	tally := recommend.Tally{}
	tally.Observe(recommend.StatusActive)
	tally.Observe(recommend.StatusPending)
	tally.ObserveFilteredOut()
	return tally
}

func TestRender_Deterministic(t *testing.T) {
	recs, tally := sampleRecs(), sampleTally()
	first := Render(recs, tally)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, Render(recs, tally), "render must be byte-identical across calls")
	}
}

func TestRender_ContainsRecommendationRows(t *testing.T) {
	html := Render(sampleRecs(), sampleTally())

	assert.Contains(t, html, "rec-1")
	assert.Contains(t, html, "orders-prod")
	assert.Contains(t, html, `class="sev-high"`)
	assert.Contains(t, html, `class="sev-low"`)
	assert.Contains(t, html, `href="https://example.com/rec-1"`)
	assert.Contains(t, html, "High CPU")
	assert.Contains(t, html, "Scale down")
}

func TestRender_PlaceholderLinkWhenAbsent(t *testing.T) {
	html := Render(sampleRecs(), sampleTally())
	// rec-2 has no detail link; its row falls back to the placeholder.
	assert.Contains(t, html, `href="#"`)
}

func TestRender_SummaryRowsInStableOrder(t *testing.T) {
	html := Render(sampleRecs(), sampleTally())

	active := strings.Index(html, "<tr><td>active</td><td>1</td></tr>")
	pending := strings.Index(html, "<tr><td>pending</td><td>1</td></tr>")
	filtered := strings.Index(html, "<tr><td>filtered_out</td><td>1</td></tr>")
	require.True(t, active >= 0 && pending >= 0 && filtered >= 0, "all summary rows present")
	assert.Less(t, active, pending)
	assert.Less(t, pending, filtered, "filtered_out row comes last")
}

func TestRender_UnknownSeverityFallsBackToInformational(t *testing.T) {
	recs := []recommend.Recommendation{{ID: "rec-x", Severity: recommend.Severity("weird")}}
	html := Render(recs, recommend.Tally{})
	assert.Contains(t, html, `class="sev-informational"`)
}

func TestSubject_CarriesCount(t *testing.T) {
	assert.Equal(t, "RDS Recommendations Report: 5 recommendation(s)", Subject(5))
}
