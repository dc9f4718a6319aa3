package main

// Build the Lambda handler binary:
//   GOOS=linux GOARCH=arm64 CGO_ENABLED=0 go build -o bootstrap ./cmd/lambda-reporter

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/yeshwanthlm/RDS-Automation/internal/bootstrap"
	"github.com/yeshwanthlm/RDS-Automation/internal/reporter"
	"github.com/yeshwanthlm/RDS-Automation/internal/shared/config"
	"github.com/yeshwanthlm/RDS-Automation/internal/shared/telemetry"
)

var (
	initOnce sync.Once
	initErr  error
	app      *bootstrap.App
)

func initApp() {
	cfg := config.Load()
	built, err := bootstrap.Build(context.Background(), cfg)
	if err != nil {
		initErr = err
		return
	}
	app = built
}

// handler runs one report pass per scheduled EventBridge invocation. Errors
// and panics are converted into a failure result rather than returned, so
// the Lambda runtime does not re-invoke; retry is the schedule's job.
func handler(ctx context.Context, event events.CloudWatchEvent) (result reporter.Result, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			telemetry.Error("report run panicked", map[string]any{"panic": fmt.Sprint(rec)})
			result = reporter.Result{
				Status:  reporter.StatusFailure,
				Message: fmt.Sprintf("unexpected failure: %v", rec),
			}
			err = nil
		}
	}()

	initOnce.Do(initApp)
	if initErr != nil {
		telemetry.Error("bootstrap failed", map[string]any{"error": initErr.Error()})
		return reporter.Result{
			Status:  reporter.StatusFailure,
			Message: "bootstrap failed: " + initErr.Error(),
		}, nil
	}

	result, runErr := app.Reporter.Run(ctx)
	if runErr != nil {
		telemetry.Error("report run failed", map[string]any{
			"run_id": result.RunID,
			"error":  runErr.Error(),
		})
	}
	return result, nil
}

func main() {
	lambda.Start(handler)
}
