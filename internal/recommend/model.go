package recommend

import (
	"fmt"
	"sort"
	"strings"
)

// Status is the lifecycle state reported by the recommendation source.
// The vocabulary is open: unknown statuses are carried through and tallied
// under their own name.
type Status string

const (
	StatusActive    Status = "active"
	StatusPending   Status = "pending"
	StatusDismissed Status = "dismissed"
	StatusResolved  Status = "resolved"
)

// Actionable reports whether a recommendation in this state still calls for
// operator attention.
func (s Status) Actionable() bool {
	return s == StatusActive || s == StatusPending
}

// Severity ranks the impact of a recommendation.
type Severity string

const (
	SeverityHigh          Severity = "high"
	SeverityMedium        Severity = "medium"
	SeverityLow           Severity = "low"
	SeverityInformational Severity = "informational"
)

// ResourceARN is a validated reference to the resource a recommendation
// applies to. The zero value means the source did not attach a resource.
type ResourceARN string

// ParseResourceARN validates an ARN string at the ingestion boundary.
// Empty input yields the zero value without error, matching sources that
// emit recommendations with no owning resource.
func ParseResourceARN(raw string) (ResourceARN, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", nil
	}
	if !strings.HasPrefix(trimmed, "arn:") || strings.Count(trimmed, ":") < 5 {
		return "", fmt.Errorf("malformed resource arn %q", raw)
	}
	return ResourceARN(trimmed), nil
}

// IsZero reports whether no resource is attached.
func (a ResourceARN) IsZero() bool {
	return a == ""
}

// ShortName returns the final segment of the ARN for display,
// e.g. "mydb" for "arn:aws:rds:eu-west-1:123456789012:db:mydb".
func (a ResourceARN) ShortName() string {
	if a.IsZero() {
		return ""
	}
	parts := strings.Split(string(a), ":")
	name := parts[len(parts)-1]
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	return name
}

func (a ResourceARN) String() string {
	return string(a)
}

// Tag is a key/value label attached to a resource.
type Tag struct {
	Key   string
	Value string
}

// Recommendation is one suggested action supplied by the external analysis
// service. The reporter never mutates it.
type Recommendation struct {
	ID          string
	Resource    ResourceARN
	Status      Status
	Severity    Severity
	Category    string
	Title       string
	Description string
	Link        string
}

// FilteredOutBucket is the synthetic tally bucket for recommendations
// excluded by status, missing resource, tag lookup failure or predicate.
const FilteredOutBucket = "filtered_out"

// Tally counts recommendations by status bucket across one run. Each input
// recommendation lands in exactly one bucket, so the total always equals the
// length of the source list.
type Tally map[string]int

// Observe records a recommendation under its own status bucket.
func (t Tally) Observe(s Status) {
	t[string(s)]++
}

// ObserveFilteredOut records a recommendation excluded from the report.
func (t Tally) ObserveFilteredOut() {
	t[FilteredOutBucket]++
}

// Total returns the number of recommendations observed.
func (t Tally) Total() int {
	total := 0
	for _, n := range t {
		total += n
	}
	return total
}

// TallyEntry is one bucket of a tally in render order.
type TallyEntry struct {
	Bucket string
	Count  int
}

// Entries returns buckets in a stable order: status names alphabetically,
// the filtered_out bucket last. Rendering depends on this determinism.
func (t Tally) Entries() []TallyEntry {
	names := make([]string, 0, len(t))
	for name := range t {
		if name == FilteredOutBucket {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]TallyEntry, 0, len(t))
	for _, name := range names {
		out = append(out, TallyEntry{Bucket: name, Count: t[name]})
	}
	if n, ok := t[FilteredOutBucket]; ok {
		out = append(out, TallyEntry{Bucket: FilteredOutBucket, Count: n})
	}
	return out
}
