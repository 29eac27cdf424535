// Package main is the entry point for the openpanel CLI.
//
// The CLI sends one-off analytics events to an OpenPanel ingestion endpoint,
// which is useful for shell scripts, cron jobs, and CI pipelines.
//
// Usage:
//
//	openpanel track deploy_finished -p env=prod -p region=eu
//	openpanel identify user-42 --email dev@example.com
//	openpanel increment user-42 logins 1
//	openpanel device-id
//
// Credentials are resolved from a config file (-c openpanel.yaml) or from
// the OPENPANEL_TRACK_URL, OPENPANEL_CLIENT_ID, and OPENPANEL_CLIENT_SECRET
// environment variables.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
)

// rootCmd is the base command when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "openpanel",
	Short: "Send analytics events to OpenPanel",
	Long: `openpanel sends analytics events to an OpenPanel ingestion endpoint.

Quick start:
  1. Export OPENPANEL_TRACK_URL, OPENPANEL_CLIENT_ID, OPENPANEL_CLIENT_SECRET
     (or create openpanel.yaml and pass -c openpanel.yaml)
  2. Run: openpanel track my_event -p key=value`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("openpanel %s (%s)\n", version, commit)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (yaml)")
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
