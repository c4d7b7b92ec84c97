package main

import (
	"context"
	"fmt"

	"github.com/thirukguru/aws-netdoc/model"
	awsconfig "github.com/thirukguru/aws-netdoc/service/aws_config"
	"github.com/thirukguru/aws-netdoc/service/credentials"
	"github.com/thirukguru/aws-netdoc/service/network"
	"github.com/thirukguru/aws-netdoc/service/orchestrator"
	"github.com/thirukguru/aws-netdoc/service/organization"
	"github.com/thirukguru/aws-netdoc/service/output"
	"github.com/thirukguru/aws-netdoc/service/regions"
	"github.com/thirukguru/aws-netdoc/service/store"
	awssts "github.com/thirukguru/aws-netdoc/service/sts"
	"github.com/thirukguru/aws-netdoc/utils/spinner"
)

func runDocumentation(flags model.Flags) error {
	ctx := context.Background()

	cfgService := awsconfig.NewService()
	awsCfg, err := cfgService.GetAWSCfg(ctx, flags.Region, flags.Profile)
	if err != nil {
		return fmt.Errorf("failed to load AWS config: %w", err)
	}

	if flags.Output != "json" {
		stsService := awssts.NewService(awsCfg)
		if accountID, err := stsService.GetAccountID(ctx); err == nil {
			fmt.Printf("Documenting organization from management account %s\n", accountID)
		} else {
			fmt.Printf("Unable to resolve caller account: %v\n", err)
		}

		spinner.StartSpinner()
		defer spinner.StopSpinner()
	}

	orchestratorService := orchestrator.NewService(
		organization.NewService(awsCfg),
		regions.NewService(awsCfg),
		credentials.NewService(awsCfg),
		network.NewService,
		store.NewService(awsCfg),
		output.NewService(flags.Output),
	)

	return orchestratorService.Orchestrate(ctx, flags)
}
