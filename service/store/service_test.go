package store

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thirukguru/aws-netdoc/service/network"
)

type fakeS3Client struct {
	lastBucket      string
	lastKey         string
	lastContentType string
	lastBody        []byte
	err             error
}

func (f *fakeS3Client) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastBucket = aws.ToString(params.Bucket)
	f.lastKey = aws.ToString(params.Key)
	f.lastContentType = aws.ToString(params.ContentType)
	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.lastBody = body
	return &s3.PutObjectOutput{}, nil
}

func TestPutDocumentation(t *testing.T) {
	client := &fakeS3Client{}
	svc := &service{client: client}

	doc := network.Documentation{
		"111111111111": network.AccountDocumentation{},
	}
	err := svc.PutDocumentation(context.Background(), "docs-bucket", "network-documentation.json", doc)

	require.NoError(t, err)
	assert.Equal(t, "docs-bucket", client.lastBucket)
	assert.Equal(t, "network-documentation.json", client.lastKey)
	assert.Equal(t, "application/json", client.lastContentType)
	assert.JSONEq(t, `{"111111111111": {}}`, string(client.lastBody))
}

func TestPutDocumentationEmpty(t *testing.T) {
	client := &fakeS3Client{}
	svc := &service{client: client}

	err := svc.PutDocumentation(context.Background(), "docs-bucket", "network-documentation.json", network.Documentation{})

	require.NoError(t, err)
	assert.Equal(t, `{}`, string(client.lastBody))
}

func TestPutDocumentationUploadError(t *testing.T) {
	svc := &service{client: &fakeS3Client{err: errors.New("NoSuchBucket")}}

	err := svc.PutDocumentation(context.Background(), "docs-bucket", "network-documentation.json", network.Documentation{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "s3://docs-bucket/network-documentation.json")
}
