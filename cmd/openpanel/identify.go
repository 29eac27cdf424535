package main

import (
	"context"

	"github.com/spf13/cobra"

	openpanel "github.com/openpanel-dev/openpanel-go"
)

var (
	identifyEmail     string
	identifyFirstName string
	identifyLastName  string
	identifyProps     []string
)

var identifyCmd = &cobra.Command{
	Use:   "identify <profile-id>",
	Short: "Associate a profile with descriptive attributes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tracker, err := newTracker()
		if err != nil {
			return err
		}

		props, err := parseProperties(identifyProps)
		if err != nil {
			return err
		}

		resp, err := tracker.Identify(context.Background(), openpanel.IdentifyUser{
			ProfileID:  args[0],
			Email:      identifyEmail,
			FirstName:  identifyFirstName,
			LastName:   identifyLastName,
			Properties: props,
		})
		if err != nil {
			return err
		}

		return printResponse(cmd, resp)
	},
}

func init() {
	identifyCmd.Flags().StringVar(&identifyEmail, "email", "", "profile email")
	identifyCmd.Flags().StringVar(&identifyFirstName, "first-name", "", "profile first name")
	identifyCmd.Flags().StringVar(&identifyLastName, "last-name", "", "profile last name")
	identifyCmd.Flags().StringArrayVarP(&identifyProps, "property", "p", nil, "profile property as key=value (repeatable)")
	rootCmd.AddCommand(identifyCmd)
}
