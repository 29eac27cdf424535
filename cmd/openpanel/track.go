package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	openpanel "github.com/openpanel-dev/openpanel-go"
)

var trackProps []string

var trackCmd = &cobra.Command{
	Use:   "track <event>",
	Short: "Track a named event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tracker, err := newTracker()
		if err != nil {
			return err
		}

		props, err := parseProperties(trackProps)
		if err != nil {
			return err
		}

		resp, err := tracker.Track(context.Background(), args[0], props, nil)
		if err != nil {
			return err
		}

		return printResponse(cmd, resp)
	},
}

func init() {
	trackCmd.Flags().StringArrayVarP(&trackProps, "property", "p", nil, "event property as key=value (repeatable)")
	rootCmd.AddCommand(trackCmd)
}

// parseProperties converts repeated key=value flags into Properties.
func parseProperties(pairs []string) (openpanel.Properties, error) {
	props := openpanel.Properties{}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid property %q, expected key=value", pair)
		}
		props[key] = value
	}
	return props, nil
}

// printResponse reports the server's verdict without interpreting it.
func printResponse(cmd *cobra.Command, resp *openpanel.Response) error {
	fmt.Fprintf(cmd.OutOrStdout(), "status: %d\n", resp.Status)
	if len(resp.Body) > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", resp.Body)
	}
	return nil
}
