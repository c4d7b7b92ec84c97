// Package regions discovers the enabled AWS regions for the calling account.
package regions

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
)

// NewService creates a new region discovery service. Discovery uses the
// caller's own identity, not an assumed role.
func NewService(cfg aws.Config) Service {
	return &service{
		client: ec2.NewFromConfig(cfg),
	}
}

func (s *service) GetEnabledRegions(ctx context.Context) []string {
	out, err := s.client.DescribeRegions(ctx, &ec2.DescribeRegionsInput{})
	if err != nil {
		fmt.Printf("Error discovering enabled regions: %v\n", err)
		return []string{}
	}

	regions := make([]string, 0, len(out.Regions))
	for _, r := range out.Regions {
		name := strings.TrimSpace(aws.ToString(r.RegionName))
		if name == "" {
			continue
		}
		if !slices.Contains(regions, name) {
			regions = append(regions, name)
		}
	}
	return regions
}
