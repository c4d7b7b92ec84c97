package regions

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
)

// EC2ClientAPI is the interface for the EC2 client methods used by the service.
type EC2ClientAPI interface {
	DescribeRegions(ctx context.Context, params *ec2.DescribeRegionsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeRegionsOutput, error)
}

type service struct {
	client EC2ClientAPI
}

// Service is the interface for discovering the enabled AWS regions.
type Service interface {
	// GetEnabledRegions returns the region codes enabled for the calling
	// account. On failure it logs the error and returns an empty list.
	GetEnabledRegions(ctx context.Context) []string
}
