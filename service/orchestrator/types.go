package orchestrator

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/thirukguru/aws-netdoc/model"
	"github.com/thirukguru/aws-netdoc/service/credentials"
	"github.com/thirukguru/aws-netdoc/service/network"
	"github.com/thirukguru/aws-netdoc/service/organization"
	"github.com/thirukguru/aws-netdoc/service/output"
	"github.com/thirukguru/aws-netdoc/service/regions"
	"github.com/thirukguru/aws-netdoc/service/store"
)

// NetworkServiceFactory builds a region-bound inventory service from a
// scoped config. Injected so tests can substitute fakes.
type NetworkServiceFactory func(cfg aws.Config) network.Service

type service struct {
	organizationService organization.Service
	regionsService      regions.Service
	credentialsService  credentials.Service
	networkFactory      NetworkServiceFactory
	storeService        store.Service
	outputService       output.Service
}

// Service is the interface for running the full documentation pipeline.
type Service interface {
	Orchestrate(ctx context.Context, flags model.Flags) error
}
