// Package credentials acquires temporary per-account credentials by role
// assumption and scopes them to regions.
package credentials

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscredentials "github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

const roleSessionName = "NetworkDocumentationSession"

// NewService creates a new credentials service using the caller's own
// identity for the AssumeRole calls.
func NewService(cfg aws.Config) Service {
	return &service{
		client:  sts.NewFromConfig(cfg),
		baseCfg: cfg,
	}
}

func (s *service) AssumeAccountRole(ctx context.Context, accountID, roleName string) (aws.Credentials, bool) {
	roleARN := fmt.Sprintf("arn:aws:iam::%s:role/%s", accountID, roleName)

	out, err := s.client.AssumeRole(ctx, &sts.AssumeRoleInput{
		RoleArn:         aws.String(roleARN),
		RoleSessionName: aws.String(roleSessionName),
	})
	if err != nil {
		fmt.Printf("Error assuming role for account %s: %v\n", accountID, err)
		return aws.Credentials{}, false
	}

	c := out.Credentials
	if c == nil || c.AccessKeyId == nil || c.SecretAccessKey == nil || c.SessionToken == nil {
		fmt.Printf("Error assuming role for account %s: incomplete credentials in response\n", accountID)
		return aws.Credentials{}, false
	}

	creds := aws.Credentials{
		AccessKeyID:     *c.AccessKeyId,
		SecretAccessKey: *c.SecretAccessKey,
		SessionToken:    *c.SessionToken,
		Source:          roleSessionName,
	}
	if c.Expiration != nil {
		creds.CanExpire = true
		creds.Expires = *c.Expiration
	}
	return creds, true
}

func (s *service) RegionalConfig(creds aws.Credentials, region string) aws.Config {
	cfg := s.baseCfg.Copy()
	cfg.Region = region
	cfg.Credentials = awscredentials.NewStaticCredentialsProvider(
		creds.AccessKeyID, creds.SecretAccessKey, creds.SessionToken)
	return cfg
}
