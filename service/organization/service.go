// Package organization walks the AWS Organization tree and flattens it into
// an account list.
package organization

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/organizations"
	orgtypes "github.com/aws/aws-sdk-go-v2/service/organizations/types"
)

// NewService creates a new organization walker. The calls require the
// caller's ambient identity to live in the management account.
func NewService(cfg aws.Config) Service {
	return &service{
		client: organizations.NewFromConfig(cfg),
	}
}

func (s *service) ListAllAccounts(ctx context.Context) []orgtypes.Account {
	accounts := []orgtypes.Account{}
	seen := map[string]bool{}

	for _, root := range s.listRoots(ctx) {
		for _, account := range s.accountsUnder(ctx, aws.ToString(root.Id)) {
			id := aws.ToString(account.Id)
			if id == "" || seen[id] {
				continue
			}
			seen[id] = true
			accounts = append(accounts, account)
		}
	}
	return accounts
}

// accountsUnder collects the accounts attached to parentID and recurses into
// every organizational unit below it.
func (s *service) accountsUnder(ctx context.Context, parentID string) []orgtypes.Account {
	if parentID == "" {
		return nil
	}

	accounts := s.listAccountsForParent(ctx, parentID)
	for _, ou := range s.listOrganizationalUnits(ctx, parentID) {
		accounts = append(accounts, s.accountsUnder(ctx, aws.ToString(ou.Id))...)
	}
	return accounts
}

func (s *service) listRoots(ctx context.Context) []orgtypes.Root {
	var roots []orgtypes.Root
	input := &organizations.ListRootsInput{}
	for {
		page, err := s.client.ListRoots(ctx, input)
		if err != nil {
			fmt.Printf("Error listing organization roots: %v\n", err)
			return roots
		}
		roots = append(roots, page.Roots...)
		if page.NextToken == nil {
			return roots
		}
		input.NextToken = page.NextToken
	}
}

func (s *service) listOrganizationalUnits(ctx context.Context, parentID string) []orgtypes.OrganizationalUnit {
	var units []orgtypes.OrganizationalUnit
	input := &organizations.ListOrganizationalUnitsForParentInput{ParentId: aws.String(parentID)}
	for {
		page, err := s.client.ListOrganizationalUnitsForParent(ctx, input)
		if err != nil {
			fmt.Printf("Error listing organizational units under %s: %v\n", parentID, err)
			return units
		}
		units = append(units, page.OrganizationalUnits...)
		if page.NextToken == nil {
			return units
		}
		input.NextToken = page.NextToken
	}
}

func (s *service) listAccountsForParent(ctx context.Context, parentID string) []orgtypes.Account {
	var accounts []orgtypes.Account
	input := &organizations.ListAccountsForParentInput{ParentId: aws.String(parentID)}
	for {
		page, err := s.client.ListAccountsForParent(ctx, input)
		if err != nil {
			fmt.Printf("Error listing accounts under %s: %v\n", parentID, err)
			return accounts
		}
		accounts = append(accounts, page.Accounts...)
		if page.NextToken == nil {
			return accounts
		}
		input.NextToken = page.NextToken
	}
}
