package organization

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/organizations"
	orgtypes "github.com/aws/aws-sdk-go-v2/service/organizations/types"
)

// OrganizationsClientAPI is the interface for the AWS Organizations client
// methods used by the service.
type OrganizationsClientAPI interface {
	ListRoots(ctx context.Context, params *organizations.ListRootsInput, optFns ...func(*organizations.Options)) (*organizations.ListRootsOutput, error)
	ListOrganizationalUnitsForParent(ctx context.Context, params *organizations.ListOrganizationalUnitsForParentInput, optFns ...func(*organizations.Options)) (*organizations.ListOrganizationalUnitsForParentOutput, error)
	ListAccountsForParent(ctx context.Context, params *organizations.ListAccountsForParentInput, optFns ...func(*organizations.Options)) (*organizations.ListAccountsForParentOutput, error)
}

type service struct {
	client OrganizationsClientAPI
}

// Service is the interface for walking the AWS Organization account tree.
type Service interface {
	// ListAllAccounts returns every member account reachable from the
	// organization roots: accounts attached directly to a root and accounts
	// in organizational units at any nesting depth. Failures are logged and
	// degrade to whatever subset was discovered.
	ListAllAccounts(ctx context.Context) []orgtypes.Account
}
