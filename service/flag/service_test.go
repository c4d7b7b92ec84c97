package flag

import (
	"os"
	"testing"

	"github.com/spf13/pflag"
)

func resetFlagState(t *testing.T, args []string) func() {
	t.Helper()
	oldCommandLine := pflag.CommandLine
	oldArgs := os.Args
	pflag.CommandLine = pflag.NewFlagSet("test", pflag.ContinueOnError)
	os.Args = append([]string{"aws-netdoc"}, args...)
	return func() {
		pflag.CommandLine = oldCommandLine
		os.Args = oldArgs
	}
}

func TestGetParsedFlagsAllOptions(t *testing.T) {
	cleanup := resetFlagState(t, []string{
		"--profile", "management",
		"--region", "us-east-1",
		"--regions", "us-east-1, eu-west-2",
		"--accounts", "111122223333,444455556666",
		"--role-name", "DocumentationRole",
		"--bucket", "org-network-docs",
		"--key", "docs/network.json",
		"--output", "json",
		"--dry-run",
	})
	defer cleanup()

	svc := NewService()
	flags, err := svc.GetParsedFlags()
	if err != nil {
		t.Fatalf("GetParsedFlags failed: %v", err)
	}

	if flags.Profile != "management" || flags.Region != "us-east-1" {
		t.Fatalf("unexpected profile/region: %+v", flags)
	}
	if len(flags.Regions) != 2 || flags.Regions[0] != "us-east-1" || flags.Regions[1] != "eu-west-2" {
		t.Fatalf("unexpected regions: %v", flags.Regions)
	}
	if len(flags.Accounts) != 2 || flags.Accounts[1] != "444455556666" {
		t.Fatalf("unexpected accounts: %v", flags.Accounts)
	}
	if flags.RoleName != "DocumentationRole" {
		t.Fatalf("unexpected role name: %s", flags.RoleName)
	}
	if flags.Bucket != "org-network-docs" || flags.Key != "docs/network.json" {
		t.Fatalf("unexpected destination: %+v", flags)
	}
	if flags.Output != "json" || !flags.DryRun {
		t.Fatalf("unexpected output flags: %+v", flags)
	}
}

func TestGetParsedFlagsDefaults(t *testing.T) {
	cleanup := resetFlagState(t, nil)
	defer cleanup()

	svc := NewService()
	flags, err := svc.GetParsedFlags()
	if err != nil {
		t.Fatalf("GetParsedFlags failed: %v", err)
	}

	if flags.RoleName != DefaultRoleName {
		t.Fatalf("unexpected default role: %s", flags.RoleName)
	}
	if flags.Bucket != DefaultBucket || flags.Key != DefaultKey {
		t.Fatalf("unexpected default destination: %+v", flags)
	}
	if flags.Output != "table" || flags.DryRun || flags.Version {
		t.Fatalf("unexpected defaults: %+v", flags)
	}
	if len(flags.Regions) != 0 || len(flags.Accounts) != 0 {
		t.Fatalf("unexpected default lists: %+v", flags)
	}
}
