// Package reporter runs the full report pipeline once per invocation:
// fetch, filter, chunk, render, send, archive.
package reporter

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/yeshwanthlm/RDS-Automation/internal/recommend"
	"github.com/yeshwanthlm/RDS-Automation/internal/report"
	"github.com/yeshwanthlm/RDS-Automation/internal/shared/metrics"
	"github.com/yeshwanthlm/RDS-Automation/internal/shared/telemetry"
)

// Mailer dispatches one rendered report.
type Mailer interface {
	Send(ctx context.Context, subject, htmlBody string) error
}

// Archiver stores a copy of one dispatched chunk.
type Archiver interface {
	SaveReport(ctx context.Context, runID string, chunk int, html string) (string, error)
}

// Result statuses reported to the scheduler.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Result is the invocation outcome: a status, a short human-readable
// message, and the run's counts.
type Result struct {
	RunID   string `json:"runId"`
	Status  string `json:"status"`
	Message string `json:"message"`
	Total   int    `json:"total"`
	Matched int    `json:"matched"`
	Sent    int    `json:"emailsSent"`
}

// Service wires the pipeline together. One instance is built at startup and
// reused across invocations; it holds no per-run state.
type Service struct {
	source    recommend.Source
	filter    recommend.Filter
	mailer    Mailer
	archiver  Archiver // nil when no archive bucket is configured
	batchSize int
}

// New builds a Service. archiver may be nil.
func New(source recommend.Source, filter recommend.Filter, mailer Mailer, archiver Archiver, batchSize int) (*Service, error) {
	if source == nil {
		return nil, fmt.Errorf("source is required")
	}
	if mailer == nil {
		return nil, fmt.Errorf("mailer is required")
	}
	if batchSize <= 0 {
		return nil, fmt.Errorf("batch size must be positive, got %d", batchSize)
	}
	return &Service{
		source:    source,
		filter:    filter,
		mailer:    mailer,
		archiver:  archiver,
		batchSize: batchSize,
	}, nil
}

// Run executes one report pass. A tag lookup failure drops only the
// affected recommendation; a send failure aborts the remaining chunks but
// leaves already-sent ones standing.
func (s *Service) Run(ctx context.Context) (Result, error) {
	runID := uuid.New().String()
	metrics.IncRunsStarted()
	started := metrics.NowMillis()

	telemetry.Info("report run started", map[string]any{"run_id": runID})

	kept, tally, err := recommend.Collect(ctx, s.source, s.filter)
	if err != nil {
		return s.fail(runID, fmt.Errorf("collect recommendations: %w", err))
	}
	metrics.AddRecommendationsFetched(tally.Total())
	metrics.AddRecommendationsMatched(len(kept))

	if len(kept) == 0 {
		telemetry.Info("no active recommendations", map[string]any{
			"run_id": runID,
			"total":  tally.Total(),
		})
		metrics.IncRunsSucceeded()
		metrics.ObserveRunDurationMs(metrics.NowMillis() - started)
		return Result{
			RunID:   runID,
			Status:  StatusSuccess,
			Message: "no active recommendations to report",
			Total:   tally.Total(),
		}, nil
	}

	sent := 0
	for i, chunk := range chunkRecommendations(kept, s.batchSize) {
		html := report.Render(chunk, tally)
		if err := s.mailer.Send(ctx, report.Subject(len(chunk)), html); err != nil {
			telemetry.Error("send report email failed", map[string]any{
				"run_id": runID,
				"chunk":  i + 1,
				"sent":   sent,
				"error":  err.Error(),
			})
			return s.fail(runID, fmt.Errorf("send chunk %d: %w", i+1, err))
		}
		sent++
		metrics.IncEmailsSent()
		s.archiveChunk(ctx, runID, i+1, html)
	}

	metrics.IncRunsSucceeded()
	metrics.ObserveRunDurationMs(metrics.NowMillis() - started)
	telemetry.Info("report run finished", map[string]any{
		"run_id":  runID,
		"total":   tally.Total(),
		"matched": len(kept),
		"emails":  sent,
	})
	return Result{
		RunID:   runID,
		Status:  StatusSuccess,
		Message: fmt.Sprintf("sent %d email(s) covering %d recommendation(s)", sent, len(kept)),
		Total:   tally.Total(),
		Matched: len(kept),
		Sent:    sent,
	}, nil
}

func (s *Service) fail(runID string, err error) (Result, error) {
	metrics.IncRunsFailed()
	return Result{
		RunID:   runID,
		Status:  StatusFailure,
		Message: err.Error(),
	}, err
}

func (s *Service) archiveChunk(ctx context.Context, runID string, chunk int, html string) {
	if s.archiver == nil {
		return
	}
	key, err := s.archiver.SaveReport(ctx, runID, chunk, html)
	if err != nil {
		telemetry.Warn("archive report chunk failed", map[string]any{
			"run_id": runID,
			"chunk":  chunk,
			"error":  err.Error(),
		})
		return
	}
	telemetry.Info("report chunk archived", map[string]any{
		"run_id": runID,
		"chunk":  chunk,
		"key":    key,
	})
}

// chunkRecommendations splits recs into consecutive slices of at most size,
// preserving order. Concatenating the chunks reproduces the input.
func chunkRecommendations(recs []recommend.Recommendation, size int) [][]recommend.Recommendation {
	if len(recs) == 0 {
		return nil
	}
	chunks := make([][]recommend.Recommendation, 0, (len(recs)+size-1)/size)
	for start := 0; start < len(recs); start += size {
		end := start + size
		if end > len(recs) {
			end = len(recs)
		}
		chunks = append(chunks, recs[start:end])
	}
	return chunks
}
