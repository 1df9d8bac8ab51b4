package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/metaads-client/pkg/ads"
)

// NewPixelsCommand creates the pixels command group.
func NewPixelsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pixels",
		Aliases: []string{"pixel"},
		Short:   "Manage pixels",
		Long:    "List, inspect, create, and update pixels of an ad account",
	}

	cmd.AddCommand(newPixelsListCommand())
	cmd.AddCommand(newPixelsGetCommand())
	cmd.AddCommand(newPixelsCreateCommand())
	cmd.AddCommand(newPixelsUpdateCommand())

	return cmd
}

func newPixelsListCommand() *cobra.Command {
	var accountID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pixels",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			opts := listOptions(cmd)

			pixels, err := client.Pixels().List(commandContext(cmd), accountID, &opts)
			if err != nil {
				return fmt.Errorf("failed to list pixels: %w", err)
			}

			return writeResult(cmd, pixels)
		},
	}

	cmd.Flags().StringVar(&accountID, flagAccount, "", "ad account id (defaults to the configured account)")
	addListFlags(cmd)

	return cmd
}

func newPixelsGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get PIXEL_ID",
		Short: "Get pixel details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			pixel, err := client.Pixels().Get(commandContext(cmd), args[0], fieldsFlag(cmd))
			if err != nil {
				return fmt.Errorf("failed to get pixel: %w", err)
			}

			return writeResult(cmd, pixel)
		},
	}

	addFieldsFlag(cmd)

	return cmd
}

func newPixelsCreateCommand() *cobra.Command {
	var accountID string

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a pixel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			pixel, err := client.Pixels().Create(commandContext(cmd), &ads.PixelCreateRequest{
				AccountID: accountID,
				Name:      args[0],
			})
			if err != nil {
				return fmt.Errorf("failed to create pixel: %w", err)
			}

			return writeResult(cmd, pixel)
		},
	}

	cmd.Flags().StringVar(&accountID, flagAccount, "", "ad account id (defaults to the configured account)")

	return cmd
}

func newPixelsUpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update PIXEL_ID",
		Short: "Update a pixel",
		Long:  "Update a pixel. Only the flags given are sent.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			var matchingFields []string
			if cmd.Flags().Changed("automatic-matching-fields") {
				matchingFields, _ = cmd.Flags().GetStringSlice("automatic-matching-fields")
			}

			pixel, err := client.Pixels().Update(commandContext(cmd), args[0], &ads.PixelUpdateRequest{
				Name:                    stringFlag(cmd, flagName),
				EnableAutomaticMatching: boolFlag(cmd, "automatic-matching"),
				AutomaticMatchingFields: matchingFields,
			})
			if err != nil {
				return fmt.Errorf("failed to update pixel: %w", err)
			}

			return writeResult(cmd, pixel)
		},
	}

	cmd.Flags().String(flagName, "", "new name")
	cmd.Flags().Bool("automatic-matching", false, "enable automatic advanced matching")
	cmd.Flags().StringSlice("automatic-matching-fields", nil, "fields used for automatic matching, e.g. em,ph")

	return cmd
}
