package main

// One-shot local run against real AWS credentials, useful for verifying
// configuration before deploying the Lambda.

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/yeshwanthlm/RDS-Automation/internal/bootstrap"
	"github.com/yeshwanthlm/RDS-Automation/internal/shared/config"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.Build(ctx, cfg)
	if err != nil {
		log.Fatalf("bootstrap build: %v", err)
	}

	result, runErr := app.Reporter.Run(ctx)
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("marshal result: %v", err)
	}
	fmt.Println(string(out))

	if runErr != nil {
		os.Exit(1)
	}
}
