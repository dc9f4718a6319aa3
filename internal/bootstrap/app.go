// Package bootstrap builds the shared dependency graph once per process.
package bootstrap

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"

	"github.com/yeshwanthlm/RDS-Automation/internal/archive"
	"github.com/yeshwanthlm/RDS-Automation/internal/mail"
	"github.com/yeshwanthlm/RDS-Automation/internal/recommend"
	"github.com/yeshwanthlm/RDS-Automation/internal/reporter"
	"github.com/yeshwanthlm/RDS-Automation/internal/shared/config"
)

// App holds shared dependencies.
type App struct {
	Config   config.Config
	Reporter *reporter.Service
}

// Build prepares the reporter and its AWS clients from configuration.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{}
	if cfg.AWSRegion != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.AWSRegion))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	source := recommend.NewRDSSource(rds.NewFromConfig(awsCfg))

	sender, err := mail.NewSender(sesv2.NewFromConfig(awsCfg), cfg.SenderAddress, cfg.Recipients)
	if err != nil {
		return nil, fmt.Errorf("build mail sender: %w", err)
	}

	var archiver reporter.Archiver
	if cfg.ArchiveBucket != "" {
		store, err := archive.New(s3.NewFromConfig(awsCfg), cfg.ArchiveBucket, cfg.ArchivePrefix)
		if err != nil {
			return nil, fmt.Errorf("build report archive: %w", err)
		}
		archiver = store
	}

	filter := recommend.NewFilter(cfg.EnvTagKey, cfg.EnvTagValues, cfg.Categories)

	svc, err := reporter.New(source, filter, sender, archiver, cfg.MaxPerEmail)
	if err != nil {
		return nil, fmt.Errorf("build reporter: %w", err)
	}

	return &App{Config: cfg, Reporter: svc}, nil
}
