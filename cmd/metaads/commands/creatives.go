package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/metaads-client/pkg/ads"
)

// NewCreativesCommand creates the creatives command group.
func NewCreativesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "creatives",
		Aliases: []string{"creative"},
		Short:   "Manage ad creatives",
		Long:    "List, inspect, create, update, and delete ad creatives",
	}

	cmd.AddCommand(newCreativesListCommand())
	cmd.AddCommand(newCreativesGetCommand())
	cmd.AddCommand(newCreativesCreateCommand())
	cmd.AddCommand(newCreativesUpdateCommand())
	cmd.AddCommand(newDeleteCommand("creative", "CREATIVE_ID", func(client ads.Client) deleter {
		return client.Creatives()
	}))

	return cmd
}

func newCreativesListCommand() *cobra.Command {
	var accountID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List ad creatives",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			opts := listOptions(cmd)

			creatives, err := client.Creatives().List(commandContext(cmd), accountID, &opts)
			if err != nil {
				return fmt.Errorf("failed to list creatives: %w", err)
			}

			return writeResult(cmd, creatives)
		},
	}

	cmd.Flags().StringVar(&accountID, flagAccount, "", "ad account id (defaults to the configured account)")
	addListFlags(cmd)

	return cmd
}

func newCreativesGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get CREATIVE_ID",
		Short: "Get ad creative details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			creative, err := client.Creatives().Get(commandContext(cmd), args[0], fieldsFlag(cmd))
			if err != nil {
				return fmt.Errorf("failed to get creative: %w", err)
			}

			return writeResult(cmd, creative)
		},
	}

	addFieldsFlag(cmd)

	return cmd
}

func newCreativesCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create an ad creative",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			storySpec, err := jsonFlag(cmd, "object-story-spec")
			if err != nil {
				return err
			}

			assetFeedSpec, err := jsonFlag(cmd, "asset-feed-spec")
			if err != nil {
				return err
			}

			accountID, _ := cmd.Flags().GetString(flagAccount)

			creative, err := client.Creatives().Create(commandContext(cmd), &ads.CreativeCreateRequest{
				AccountID:        accountID,
				Name:             args[0],
				Title:            stringFlag(cmd, "title"),
				Body:             stringFlag(cmd, "body"),
				ImageHash:        stringFlag(cmd, "image-hash"),
				ImageURL:         stringFlag(cmd, "image-url"),
				LinkURL:          stringFlag(cmd, "link-url"),
				CallToActionType: stringFlag(cmd, "call-to-action"),
				ObjectStorySpec:  storySpec,
				AssetFeedSpec:    assetFeedSpec,
			})
			if err != nil {
				return fmt.Errorf("failed to create creative: %w", err)
			}

			return writeResult(cmd, creative)
		},
	}

	cmd.Flags().String(flagAccount, "", "ad account id (defaults to the configured account)")
	cmd.Flags().String("title", "", "headline")
	cmd.Flags().String("body", "", "primary text")
	cmd.Flags().String("image-hash", "", "hash of an uploaded image")
	cmd.Flags().String("image-url", "", "image URL")
	cmd.Flags().String("link-url", "", "destination URL")
	cmd.Flags().String("call-to-action", "", "call to action type, e.g. SHOP_NOW")
	cmd.Flags().String("object-story-spec", "", "object story spec as JSON")
	cmd.Flags().String("asset-feed-spec", "", "asset feed spec as JSON")

	return cmd
}

func newCreativesUpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update CREATIVE_ID",
		Short: "Rename an ad creative or change its status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			creative, err := client.Creatives().Update(commandContext(cmd), args[0], &ads.CreativeUpdateRequest{
				Name:   stringFlag(cmd, flagName),
				Status: stringFlag(cmd, flagStatus),
			})
			if err != nil {
				return fmt.Errorf("failed to update creative: %w", err)
			}

			return writeResult(cmd, creative)
		},
	}

	cmd.Flags().String(flagName, "", "new name")
	cmd.Flags().String(flagStatus, "", "new status")

	return cmd
}
