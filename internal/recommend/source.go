package recommend

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	rdstypes "github.com/aws/aws-sdk-go-v2/service/rds/types"
)

// Source supplies recommendations and the tags of their resources.
type Source interface {
	ListRecommendations(ctx context.Context) ([]Recommendation, error)
	ListResourceTags(ctx context.Context, arn ResourceARN) ([]Tag, error)
}

// RDSAPI is the subset of the RDS client used by the source. Narrow on
// purpose so tests can substitute a fake.
type RDSAPI interface {
	DescribeDBRecommendations(ctx context.Context, params *rds.DescribeDBRecommendationsInput, optFns ...func(*rds.Options)) (*rds.DescribeDBRecommendationsOutput, error)
	ListTagsForResource(ctx context.Context, params *rds.ListTagsForResourceInput, optFns ...func(*rds.Options)) (*rds.ListTagsForResourceOutput, error)
}

// RDSSource reads recommendations from the Amazon RDS
// DescribeDBRecommendations API.
type RDSSource struct {
	client RDSAPI
}

// NewRDSSource wraps an RDS client as a Source.
func NewRDSSource(client RDSAPI) *RDSSource {
	return &RDSSource{client: client}
}

// ListRecommendations fetches the full current recommendation list,
// following the pagination marker until exhausted. Order is the API's.
func (s *RDSSource) ListRecommendations(ctx context.Context) ([]Recommendation, error) {
	var out []Recommendation
	var marker *string
	for {
		page, err := s.client.DescribeDBRecommendations(ctx, &rds.DescribeDBRecommendationsInput{
			Marker: marker,
		})
		if err != nil {
			return nil, fmt.Errorf("describe db recommendations: %w", err)
		}
		for _, rec := range page.DBRecommendations {
			out = append(out, fromDBRecommendation(rec))
		}
		if page.Marker == nil || aws.ToString(page.Marker) == "" {
			break
		}
		marker = page.Marker
	}
	return out, nil
}

// ListResourceTags fetches the tags attached to one resource.
func (s *RDSSource) ListResourceTags(ctx context.Context, arn ResourceARN) ([]Tag, error) {
	resp, err := s.client.ListTagsForResource(ctx, &rds.ListTagsForResourceInput{
		ResourceName: aws.String(arn.String()),
	})
	if err != nil {
		return nil, fmt.Errorf("list tags for %s: %w", arn.ShortName(), err)
	}
	tags := make([]Tag, 0, len(resp.TagList))
	for _, tag := range resp.TagList {
		tags = append(tags, Tag{
			Key:   aws.ToString(tag.Key),
			Value: aws.ToString(tag.Value),
		})
	}
	return tags, nil
}

// fromDBRecommendation maps the wire shape onto the domain model at the
// ingestion boundary. A malformed ARN is treated as absent, so the
// recommendation falls out during filtering instead of poisoning the run.
func fromDBRecommendation(rec rdstypes.DBRecommendation) Recommendation {
	arn, err := ParseResourceARN(aws.ToString(rec.ResourceArn))
	if err != nil {
		arn = ""
	}
	return Recommendation{
		ID:          aws.ToString(rec.RecommendationId),
		Resource:    arn,
		Status:      Status(strings.ToLower(aws.ToString(rec.Status))),
		Severity:    Severity(strings.ToLower(aws.ToString(rec.Severity))),
		Category:    aws.ToString(rec.Category),
		Title:       aws.ToString(rec.Detection),
		Description: aws.ToString(rec.Recommendation),
		Link:        firstLink(rec.Links),
	}
}

func firstLink(links []rdstypes.DocLink) string {
	for _, link := range links {
		if url := aws.ToString(link.Url); url != "" {
			return url
		}
	}
	return ""
}
