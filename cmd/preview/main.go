package main

// Local preview server for iterating on the report template without
// touching AWS: renders a sample report at / and exposes Prometheus-style
// metrics at /metrics.

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeshwanthlm/RDS-Automation/internal/recommend"
	"github.com/yeshwanthlm/RDS-Automation/internal/report"
	"github.com/yeshwanthlm/RDS-Automation/internal/shared/config"
	"github.com/yeshwanthlm/RDS-Automation/internal/shared/metrics"
)

func main() {
	cfg := config.Load()

	if cfg.Env != "dev" && cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		recs, tally := sampleData()
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(report.Render(recs, tally)))
	})
	router.GET("/metrics", metrics.Handler())

	addr := ":" + cfg.PreviewPort
	log.Printf("preview server listening on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("preview server: %v", err)
	}
}

func sampleData() ([]recommend.Recommendation, recommend.Tally) {
	recs := []recommend.Recommendation{
		{
			ID:          "rec-0a1b2c3d",
			Resource:    "arn:aws:rds:eu-west-1:123456789012:db:orders-prod",
			Status:      recommend.StatusActive,
			Severity:    recommend.SeverityHigh,
			Category:    "performance efficiency",
			Title:       "CPU utilization consistently above 90%",
			Description: "Consider scaling the instance class up or tuning the top queries identified by Performance Insights.",
			Link:        "https://docs.aws.amazon.com/AmazonRDS/latest/UserGuide/monitoring-recommendations.html",
		},
		{
			ID:          "rec-4e5f6a7b",
			Resource:    "arn:aws:rds:eu-west-1:123456789012:db:billing-prod",
			Status:      recommend.StatusPending,
			Severity:    recommend.SeverityMedium,
			Category:    "cost optimization",
			Title:       "Instance appears over-provisioned",
			Description: "Average utilization over the last two weeks suggests a smaller instance class would suffice.",
		},
		{
			ID:          "rec-8c9d0e1f",
			Resource:    "arn:aws:rds:eu-west-1:123456789012:db:catalog-prod",
			Status:      recommend.StatusActive,
			Severity:    recommend.SeverityInformational,
			Category:    "performance efficiency",
			Title:       "Minor engine version upgrade available",
			Description: "A newer minor version with performance fixes is available for this engine.",
		},
	}

	tally := recommend.Tally{}
	for _, rec := range recs {
		tally.Observe(rec.Status)
	}
	tally.ObserveFilteredOut()
	tally.ObserveFilteredOut()
	return recs, tally
}
