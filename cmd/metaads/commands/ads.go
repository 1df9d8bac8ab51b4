package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/metaads-client/pkg/ads"
)

// NewAdsCommand creates the ads command group.
func NewAdsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ads",
		Aliases: []string{"ad"},
		Short:   "Manage ads",
		Long:    "List, inspect, create, update, and delete ads",
	}

	cmd.AddCommand(newAdsListCommand())
	cmd.AddCommand(newAdsGetCommand())
	cmd.AddCommand(newAdsCreateCommand())
	cmd.AddCommand(newAdsUpdateCommand())
	cmd.AddCommand(newDeleteCommand("ad", "AD_ID", func(client ads.Client) deleter {
		return client.Ads()
	}))

	return cmd
}

func newAdsListCommand() *cobra.Command {
	var (
		accountID  string
		campaignID string
		adSetID    string
		statuses   []string
		allPages   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List ads",
		Long:  "List the ads of an ad account, optionally narrowed to a campaign or ad set",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := commandContext(cmd)
			opts := &ads.AdListOptions{
				ListOptions:     listOptions(cmd),
				AccountID:       accountID,
				CampaignID:      campaignID,
				AdSetID:         adSetID,
				EffectiveStatus: statuses,
			}

			first, err := client.Ads().List(ctx, opts)
			if err != nil {
				return fmt.Errorf("failed to list ads: %w", err)
			}

			adList, err := collectPages(first, allPages, func(after string) (*ads.ListResponse[ads.Ad], error) {
				opts.After = after

				return client.Ads().List(ctx, opts)
			})
			if err != nil {
				return fmt.Errorf("failed to list ads: %w", err)
			}

			return writeResult(cmd, adList)
		},
	}

	cmd.Flags().StringVar(&accountID, flagAccount, "", "ad account id (defaults to the configured account)")
	cmd.Flags().StringVar(&campaignID, flagCampaign, "", "only ads of this campaign")
	cmd.Flags().StringVar(&adSetID, flagAdSet, "", "only ads of this ad set")
	cmd.Flags().StringSliceVar(&statuses, "effective-status", nil, "filter by effective status")
	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	addListFlags(cmd)

	return cmd
}

func newAdsGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get AD_ID",
		Short: "Get ad details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ad, err := client.Ads().Get(commandContext(cmd), args[0], fieldsFlag(cmd))
			if err != nil {
				return fmt.Errorf("failed to get ad: %w", err)
			}

			return writeResult(cmd, ad)
		},
	}

	addFieldsFlag(cmd)

	return cmd
}

func newAdsCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create an ad",
		Long:  "Create an ad in an ad set from an existing creative. New ads are PAUSED unless --status is given.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			trackingSpecs, err := jsonFlag(cmd, "tracking-specs")
			if err != nil {
				return err
			}

			accountID, _ := cmd.Flags().GetString(flagAccount)
			adSetID, _ := cmd.Flags().GetString(flagAdSet)
			creativeID, _ := cmd.Flags().GetString("creative")

			ad, err := client.Ads().Create(commandContext(cmd), &ads.AdCreateRequest{
				AccountID:     accountID,
				AdSetID:       adSetID,
				Name:          args[0],
				CreativeID:    creativeID,
				Status:        stringFlag(cmd, flagStatus),
				TrackingSpecs: trackingSpecs,
			})
			if err != nil {
				return fmt.Errorf("failed to create ad: %w", err)
			}

			return writeResult(cmd, ad)
		},
	}

	cmd.Flags().String(flagAccount, "", "ad account id (defaults to the configured account)")
	cmd.Flags().String(flagAdSet, "", "parent ad set id")
	cmd.Flags().String("creative", "", "creative id")
	cmd.Flags().String(flagStatus, "", "initial status (default PAUSED)")
	cmd.Flags().String("tracking-specs", "", "tracking specs as JSON")
	_ = cmd.MarkFlagRequired(flagAdSet)
	_ = cmd.MarkFlagRequired("creative")

	return cmd
}

func newAdsUpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update AD_ID",
		Short: "Update an ad",
		Long:  "Update an ad. Only the flags given are sent.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ad, err := client.Ads().Update(commandContext(cmd), args[0], &ads.AdUpdateRequest{
				Name:       stringFlag(cmd, flagName),
				Status:     stringFlag(cmd, flagStatus),
				CreativeID: stringFlag(cmd, "creative"),
			})
			if err != nil {
				return fmt.Errorf("failed to update ad: %w", err)
			}

			return writeResult(cmd, ad)
		},
	}

	cmd.Flags().String(flagName, "", "new name")
	cmd.Flags().String(flagStatus, "", "new status")
	cmd.Flags().String("creative", "", "new creative id")

	return cmd
}
