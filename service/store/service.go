// Package store persists the aggregated documentation as a single S3 object.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/thirukguru/aws-netdoc/service/network"
)

// NewService creates a new documentation store.
func NewService(cfg aws.Config) Service {
	return &service{
		client: s3.NewFromConfig(cfg),
	}
}

func (s *service) PutDocumentation(ctx context.Context, bucket, key string, doc network.Documentation) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to serialize documentation: %w", err)
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload documentation to s3://%s/%s: %w", bucket, key, err)
	}
	return nil
}
