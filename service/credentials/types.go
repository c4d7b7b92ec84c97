package credentials

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// STSClientAPI is the interface for the AWS STS client methods used by the service.
type STSClientAPI interface {
	AssumeRole(ctx context.Context, params *sts.AssumeRoleInput, optFns ...func(*sts.Options)) (*sts.AssumeRoleOutput, error)
}

type service struct {
	client  STSClientAPI
	baseCfg aws.Config
}

// Service exchanges an account ID for temporary role credentials and builds
// region-scoped client configs from them.
type Service interface {
	// AssumeAccountRole assumes the named role in the target account. On any
	// failure it logs the error and reports ok=false; the caller must skip
	// collection for that account.
	AssumeAccountRole(ctx context.Context, accountID, roleName string) (creds aws.Credentials, ok bool)

	// RegionalConfig binds previously assumed credentials to one region,
	// yielding a config that per-service clients can be built from.
	RegionalConfig(creds aws.Credentials, region string) aws.Config
}
