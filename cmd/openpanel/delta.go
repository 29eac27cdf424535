package main

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	openpanel "github.com/openpanel-dev/openpanel-go"
)

var incrementCmd = &cobra.Command{
	Use:   "increment <profile-id> <property> <value>",
	Short: "Raise a numeric property on a profile",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDelta(cmd, args, func(t *openpanel.Tracker, profileID, property string, value int64) (*openpanel.Response, error) {
			return t.Increment(context.Background(), profileID, property, value)
		})
	},
}

var decrementCmd = &cobra.Command{
	Use:   "decrement <profile-id> <property> <value>",
	Short: "Lower a numeric property on a profile",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDelta(cmd, args, func(t *openpanel.Tracker, profileID, property string, value int64) (*openpanel.Response, error) {
			return t.Decrement(context.Background(), profileID, property, value)
		})
	},
}

func runDelta(cmd *cobra.Command, args []string, op func(*openpanel.Tracker, string, string, int64) (*openpanel.Response, error)) error {
	tracker, err := newTracker()
	if err != nil {
		return err
	}

	value, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil {
		return err
	}

	resp, err := op(tracker, args[0], args[1], value)
	if err != nil {
		return err
	}

	return printResponse(cmd, resp)
}

func init() {
	rootCmd.AddCommand(incrementCmd)
	rootCmd.AddCommand(decrementCmd)
}
