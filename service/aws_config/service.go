// Package awsconfig provides a service for loading AWS configuration.
package awsconfig

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
)

// NewService creates a new AWS configuration service.
func NewService() Service {
	return &service{}
}

// GetAWSCfg loads the ambient default configuration. Region and profile are
// applied only when explicitly provided; otherwise the SDK defaults
// (AWS_REGION, AWS_PROFILE, ~/.aws/config) win.
func (s *service) GetAWSCfg(ctx context.Context, region, profile string) (aws.Config, error) {
	var opts []func(*config.LoadOptions) error

	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}

	// Profiles that assume a role with MFA need a token source.
	opts = append(opts, config.WithAssumeRoleCredentialOptions(func(options *stscreds.AssumeRoleOptions) {
		options.TokenProvider = stscreds.StdinTokenProvider
	}))

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("unable to load AWS config: %w", err)
	}

	// Retrieve once so authentication challenges surface before any of the
	// organization or regional calls start.
	if cfg.Credentials != nil {
		if _, err := cfg.Credentials.Retrieve(ctx); err != nil {
			return aws.Config{}, fmt.Errorf("failed to retrieve credentials: %w", err)
		}
	}

	return cfg, nil
}
