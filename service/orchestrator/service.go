// Package orchestrator coordinates the organization walk, per-account
// collection, and the final store of the documentation.
package orchestrator

import (
	"context"
	"fmt"
	"slices"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/thirukguru/aws-netdoc/model"
	"github.com/thirukguru/aws-netdoc/service/credentials"
	"github.com/thirukguru/aws-netdoc/service/network"
	"github.com/thirukguru/aws-netdoc/service/organization"
	"github.com/thirukguru/aws-netdoc/service/output"
	"github.com/thirukguru/aws-netdoc/service/regions"
	"github.com/thirukguru/aws-netdoc/service/store"
)

// NewService creates a new orchestrator service.
func NewService(
	organizationService organization.Service,
	regionsService regions.Service,
	credentialsService credentials.Service,
	networkFactory NetworkServiceFactory,
	storeService store.Service,
	outputService output.Service,
) Service {
	return &service{
		organizationService: organizationService,
		regionsService:      regionsService,
		credentialsService:  credentialsService,
		networkFactory:      networkFactory,
		storeService:        storeService,
		outputService:       outputService,
	}
}

// Orchestrate runs the linear pipeline: walk the organization, document each
// account across all enabled regions, store the aggregate once, and render
// the run summary. Degraded accounts still contribute their (empty) entries.
func (s *service) Orchestrate(ctx context.Context, flags model.Flags) error {
	accountIDs := s.resolveAccountIDs(ctx, flags)
	regionList := s.resolveRegions(ctx, flags)

	doc := network.Documentation{}
	for _, accountID := range accountIDs {
		doc[accountID] = s.documentAccount(ctx, accountID, flags.RoleName, regionList)
	}

	uploaded := false
	if !flags.DryRun {
		if err := s.storeService.PutDocumentation(ctx, flags.Bucket, flags.Key, doc); err != nil {
			s.outputService.StopSpinner()
			return err
		}
		uploaded = true
	}

	s.outputService.StopSpinner()
	return s.outputService.RenderSummary(doc, output.Destination{
		Bucket:   flags.Bucket,
		Key:      flags.Key,
		Uploaded: uploaded,
	})
}

// documentAccount collects the per-region inventories of one account. An
// account whose role cannot be assumed yields an empty, non-nil mapping.
func (s *service) documentAccount(ctx context.Context, accountID, roleName string, regionList []string) network.AccountDocumentation {
	accountDoc := network.AccountDocumentation{}

	creds, ok := s.credentialsService.AssumeAccountRole(ctx, accountID, roleName)
	if !ok {
		return accountDoc
	}

	for _, region := range regionList {
		cfg := s.credentialsService.RegionalConfig(creds, region)
		accountDoc[region] = s.networkFactory(cfg).CollectInventory(ctx)
	}
	return accountDoc
}

// resolveAccountIDs walks the organization and applies the optional
// --accounts restriction. Unknown requested accounts are reported.
func (s *service) resolveAccountIDs(ctx context.Context, flags model.Flags) []string {
	accounts := s.organizationService.ListAllAccounts(ctx)

	ids := make([]string, 0, len(accounts))
	for _, account := range accounts {
		id := aws.ToString(account.Id)
		if id == "" {
			continue
		}
		if len(flags.Accounts) > 0 && !slices.Contains(flags.Accounts, id) {
			continue
		}
		ids = append(ids, id)
	}

	for _, requested := range flags.Accounts {
		if !slices.Contains(ids, requested) {
			fmt.Printf("Requested account %s was not found in the organization\n", requested)
		}
	}
	return ids
}

// resolveRegions prefers the explicit --regions restriction over discovery.
func (s *service) resolveRegions(ctx context.Context, flags model.Flags) []string {
	if len(flags.Regions) > 0 {
		return flags.Regions
	}

	regionList := s.regionsService.GetEnabledRegions(ctx)
	if len(regionList) == 0 {
		fmt.Println("No enabled regions discovered; accounts will be documented without regional data")
	}
	return regionList
}
