package model

// Flags represents the command line flags.
type Flags struct {
	Profile  string
	Region   string
	Regions  []string
	Accounts []string
	RoleName string
	Bucket   string
	Key      string
	Output   string
	DryRun   bool
	Version  bool
}
