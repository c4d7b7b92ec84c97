// Package main is the entry point for the aws-netdoc application.
package main

import (
	"fmt"
	"os"

	"github.com/thirukguru/aws-netdoc/model"
	"github.com/thirukguru/aws-netdoc/service/flag"
	"github.com/thirukguru/aws-netdoc/utils/banner"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flagService := flag.NewService()
	flags, err := flagService.GetParsedFlags()
	if err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	versionInfo := model.VersionInfo{Version: version, Commit: commit, Date: date}

	if flags.Version {
		fmt.Println(versionLine(versionInfo))
		return nil
	}

	if flags.Output != "json" {
		banner.DrawBannerTitle()
	}

	return runDocumentation(flags)
}

func versionLine(info model.VersionInfo) string {
	return fmt.Sprintf("aws-netdoc %s (commit %s, built %s)", info.Version, info.Commit, info.Date)
}
