// Package awssts provides a service for interacting with AWS STS.
package awssts

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// NewService creates a new STS service.
func NewService(awsconfig aws.Config) Service {
	client := sts.NewFromConfig(awsconfig)

	return &service{
		client: client,
	}
}

func (s *service) GetCallerIdentity(ctx context.Context) (*sts.GetCallerIdentityOutput, error) {
	input := &sts.GetCallerIdentityInput{}

	return s.client.GetCallerIdentity(ctx, input)
}

// GetAccountID resolves the account the ambient identity belongs to.
func (s *service) GetAccountID(ctx context.Context) (string, error) {
	identity, err := s.GetCallerIdentity(ctx)
	if err != nil {
		return "", err
	}
	if identity.Account == nil {
		return "", fmt.Errorf("caller identity has no account ID")
	}
	return aws.ToString(identity.Account), nil
}
