// Package report renders filtered recommendations into a self-contained
// HTML document suitable for an email body.
//
// Content is interpolated without escaping: titles and descriptions come
// from the vendor-managed recommendation source, which is inside the trust
// boundary of this report.
package report

import (
	"fmt"
	"strings"

	"github.com/yeshwanthlm/RDS-Automation/internal/recommend"
)

const placeholderLink = "#"

const styleBlock = `<style>
body { font-family: Arial, Helvetica, sans-serif; color: #232f3e; }
table { border-collapse: collapse; margin-bottom: 24px; }
th, td { border: 1px solid #d5dbdb; padding: 6px 10px; text-align: left; vertical-align: top; }
th { background-color: #232f3e; color: #ffffff; }
.sev-high { color: #d13212; font-weight: bold; }
.sev-medium { color: #eb5f07; font-weight: bold; }
.sev-low { color: #1d8102; }
.sev-informational { color: #545b64; }
</style>`

// Subject returns the email subject line for a chunk of the given size.
func Subject(count int) string {
	return fmt.Sprintf("RDS Recommendations Report: %d recommendation(s)", count)
}

// Render produces the HTML report for one chunk of recommendations together
// with the run-wide status tally. Output is byte-identical for identical
// input.
func Render(recs []recommend.Recommendation, tally recommend.Tally) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString(styleBlock)
	b.WriteString("\n</head>\n<body>\n")
	b.WriteString("<h2>Amazon RDS Recommendations</h2>\n")

	writeSummaryTable(&b, tally)
	writeDetailsTable(&b, recs)

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func writeSummaryTable(b *strings.Builder, tally recommend.Tally) {
	b.WriteString("<h3>Summary</h3>\n<table>\n<tr><th>Status</th><th>Count</th></tr>\n")
	for _, entry := range tally.Entries() {
		fmt.Fprintf(b, "<tr><td>%s</td><td>%d</td></tr>\n", entry.Bucket, entry.Count)
	}
	b.WriteString("</table>\n")
}

func writeDetailsTable(b *strings.Builder, recs []recommend.Recommendation) {
	b.WriteString("<h3>Details</h3>\n<table>\n")
	b.WriteString("<tr><th>ID</th><th>Resource</th><th>Severity</th><th>Category</th><th>Detection</th><th>Recommendation</th><th>Link</th></tr>\n")
	for _, rec := range recs {
		link := rec.Link
		if link == "" {
			link = placeholderLink
		}
		fmt.Fprintf(b,
			"<tr><td>%s</td><td>%s</td><td class=\"%s\">%s</td><td>%s</td><td>%s</td><td>%s</td><td><a href=\"%s\">Details</a></td></tr>\n",
			rec.ID,
			rec.Resource.ShortName(),
			severityClass(rec.Severity),
			rec.Severity,
			rec.Category,
			rec.Title,
			rec.Description,
			link,
		)
	}
	b.WriteString("</table>\n")
}

func severityClass(sev recommend.Severity) string {
	switch sev {
	case recommend.SeverityHigh, recommend.SeverityMedium, recommend.SeverityLow, recommend.SeverityInformational:
		return "sev-" + string(sev)
	default:
		return "sev-informational"
	}
}
