package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResourceARN_Valid(t *testing.T) {
	arn, err := ParseResourceARN("arn:aws:rds:eu-west-1:123456789012:db:orders-prod")
	require.NoError(t, err)
	assert.False(t, arn.IsZero())
	assert.Equal(t, "orders-prod", arn.ShortName())
}

func TestParseResourceARN_Empty(t *testing.T) {
	arn, err := ParseResourceARN("   ")
	require.NoError(t, err)
	assert.True(t, arn.IsZero())
	assert.Equal(t, "", arn.ShortName())
}

func TestParseResourceARN_Malformed(t *testing.T) {
	for _, raw := range []string{"orders-prod", "arn:aws:rds", "http://example.com"} {
		_, err := ParseResourceARN(raw)
		assert.Error(t, err, "input %q", raw)
	}
}

func TestResourceARN_ShortNameSlashSegment(t *testing.T) {
	arn, err := ParseResourceARN("arn:aws:rds:eu-west-1:123456789012:cluster-snapshot:prod/nightly")
	require.NoError(t, err)
	assert.Equal(t, "nightly", arn.ShortName())
}

func TestStatus_Actionable(t *testing.T) {
	assert.True(t, StatusActive.Actionable())
	assert.True(t, StatusPending.Actionable())
	assert.False(t, StatusDismissed.Actionable())
	assert.False(t, StatusResolved.Actionable())
	assert.False(t, Status("archived").Actionable())
}

func TestTally_TotalAndEntries(t *testing.T) {
	tally := Tally{}
	tally.Observe(StatusPending)
	tally.Observe(StatusActive)
	tally.Observe(StatusActive)
	tally.ObserveFilteredOut()
	tally.ObserveFilteredOut()
	tally.ObserveFilteredOut()

	assert.Equal(t, 6, tally.Total())

	entries := tally.Entries()
	require.Len(t, entries, 3)
	// Statuses alphabetically, filtered_out pinned last.
	assert.Equal(t, TallyEntry{Bucket: "active", Count: 2}, entries[0])
	assert.Equal(t, TallyEntry{Bucket: "pending", Count: 1}, entries[1])
	assert.Equal(t, TallyEntry{Bucket: FilteredOutBucket, Count: 3}, entries[2])
}
