package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	runsStartedTotal   atomic.Uint64
	runsSucceededTotal atomic.Uint64
	runsFailedTotal    atomic.Uint64
	emailsSentTotal    atomic.Uint64

	recommendationsFetchedTotal atomic.Uint64
	recommendationsMatchedTotal atomic.Uint64

	runDuration = newHistogram([]float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000, 60000})
)

// IncRunsStarted increments the started counter.
func IncRunsStarted() {
	runsStartedTotal.Add(1)
}

// IncRunsSucceeded increments the succeeded counter.
func IncRunsSucceeded() {
	runsSucceededTotal.Add(1)
}

// IncRunsFailed increments the failed counter.
func IncRunsFailed() {
	runsFailedTotal.Add(1)
}

// IncEmailsSent increments the sent-email counter.
func IncEmailsSent() {
	emailsSentTotal.Add(1)
}

// AddRecommendationsFetched records how many recommendations the source returned.
func AddRecommendationsFetched(n int) {
	if n > 0 {
		recommendationsFetchedTotal.Add(uint64(n))
	}
}

// AddRecommendationsMatched records how many recommendations survived filtering.
func AddRecommendationsMatched(n int) {
	if n > 0 {
		recommendationsMatchedTotal.Add(uint64(n))
	}
}

// ObserveRunDurationMs records a full report run duration in milliseconds.
func ObserveRunDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	runDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "report_runs_started_total", "Total report runs started", runsStartedTotal.Load())
	writeCounter(&buf, "report_runs_succeeded_total", "Total report runs succeeded", runsSucceededTotal.Load())
	writeCounter(&buf, "report_runs_failed_total", "Total report runs failed", runsFailedTotal.Load())
	writeCounter(&buf, "report_emails_sent_total", "Total report emails sent", emailsSentTotal.Load())
	writeCounter(&buf, "recommendations_fetched_total", "Total recommendations returned by the source", recommendationsFetchedTotal.Load())
	writeCounter(&buf, "recommendations_matched_total", "Total recommendations that passed filtering", recommendationsMatchedTotal.Load())
	writeHistogram(&buf, "report_run_duration_ms", "Report run duration in milliseconds", runDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
	return out
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// NowMillis returns current time in milliseconds, useful for callers without time utilities.
func NowMillis() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Millisecond)
}
