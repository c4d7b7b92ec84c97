// Package flag parses the command line flags.
package flag

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/thirukguru/aws-netdoc/model"
)

// Placeholder defaults; operators are expected to override these per
// deployment.
const (
	DefaultRoleName = "YourRoleName"
	DefaultBucket   = "your-documentation-bucket"
	DefaultKey      = "network-documentation.json"
)

// NewService creates a new flag service.
func NewService() Service {
	return &service{}
}

// GetParsedFlags parses and returns the command-line flags.
func (s *service) GetParsedFlags() (model.Flags, error) {
	profile := pflag.StringP("profile", "p", "", "AWS profile to use for the management-account calls")
	region := pflag.StringP("region", "r", "", "AWS region for the base config")
	regions := pflag.String("regions", "", "Comma-separated regions to document (default: all enabled regions)")
	accounts := pflag.String("accounts", "", "Comma-separated account IDs to document (default: every organization account)")
	roleName := pflag.String("role-name", DefaultRoleName, "Role to assume in each member account")
	bucket := pflag.String("bucket", DefaultBucket, "S3 bucket for the documentation object")
	key := pflag.String("key", DefaultKey, "S3 key for the documentation object")
	output := pflag.StringP("output", "o", "table", "Summary output format (table or json)")
	dryRun := pflag.Bool("dry-run", false, "Collect and summarize without uploading to S3")
	version := pflag.BoolP("version", "v", false, "Show version information")

	pflag.Parse()

	flags := model.Flags{
		Profile:  *profile,
		Region:   *region,
		Regions:  splitList(*regions),
		Accounts: splitList(*accounts),
		RoleName: *roleName,
		Bucket:   *bucket,
		Key:      *key,
		Output:   *output,
		DryRun:   *dryRun,
		Version:  *version,
	}

	return flags, nil
}

func splitList(raw string) []string {
	var items []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
