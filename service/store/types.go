package store

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/thirukguru/aws-netdoc/service/network"
)

// S3ClientAPI is the interface for the S3 client methods used by the service.
type S3ClientAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type service struct {
	client S3ClientAPI
}

// Service is the interface for persisting the collected documentation.
type Service interface {
	// PutDocumentation serializes the full documentation to JSON and uploads
	// it to bucket/key, replacing any prior object there.
	PutDocumentation(ctx context.Context, bucket, key string, doc network.Documentation) error
}
