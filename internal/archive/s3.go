// Package archive keeps a copy of every dispatched report in S3 for audit.
// Archival is best-effort: the caller logs failures and carries on.
package archive

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// PutObjectAPI is the subset of the S3 client used by the store.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Store writes rendered reports to an S3 bucket.
type Store struct {
	client PutObjectAPI
	bucket string
	prefix string
}

// New builds an archive store for the given bucket and optional key prefix.
func New(client PutObjectAPI, bucket, prefix string) (*Store, error) {
	if bucket == "" {
		return nil, fmt.Errorf("archive bucket is required")
	}
	return &Store{
		client: client,
		bucket: bucket,
		prefix: normalizePrefix(prefix),
	}, nil
}

// SaveReport uploads one chunk's HTML under reports/<runID>/chunk-<n>.html
// and returns the object key.
func (s *Store) SaveReport(ctx context.Context, runID string, chunk int, html string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	storageKey := fmt.Sprintf("reports/%s/chunk-%d.html", runID, chunk)
	objectKey := applyPrefix(s.prefix, storageKey)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(objectKey),
		Body:        strings.NewReader(html),
		ContentType: aws.String("text/html; charset=utf-8"),
	})
	if err != nil {
		return "", fmt.Errorf("s3 put object bucket=%s key=%s: %w", s.bucket, objectKey, err)
	}
	return objectKey, nil
}

func normalizePrefix(prefix string) string {
	return strings.Trim(strings.TrimSpace(prefix), "/")
}

func applyPrefix(prefix, key string) string {
	cleanPrefix := strings.Trim(prefix, "/")
	cleanKey := strings.TrimLeft(key, "/")
	if cleanPrefix == "" {
		return cleanKey
	}
	if cleanKey == "" {
		return cleanPrefix
	}
	return cleanPrefix + "/" + cleanKey
}
