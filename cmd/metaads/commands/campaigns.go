package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/metaads-client/pkg/ads"
)

// NewCampaignsCommand creates the campaigns command group.
func NewCampaignsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "campaigns",
		Aliases: []string{"campaign", "camp"},
		Short:   "Manage campaigns",
		Long:    "List, inspect, create, update, and delete campaigns of an ad account",
	}

	cmd.AddCommand(newCampaignsListCommand())
	cmd.AddCommand(newCampaignsGetCommand())
	cmd.AddCommand(newCampaignsCreateCommand())
	cmd.AddCommand(newCampaignsUpdateCommand())
	cmd.AddCommand(newCampaignsDeleteCommand())

	return cmd
}

func newCampaignsListCommand() *cobra.Command {
	var (
		accountID string
		statuses  []string
		allPages  bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List campaigns",
		Long:  "List the campaigns of an ad account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := commandContext(cmd)
			opts := &ads.CampaignListOptions{
				ListOptions:     listOptions(cmd),
				AccountID:       accountID,
				EffectiveStatus: statuses,
			}

			first, err := client.Campaigns().List(ctx, opts)
			if err != nil {
				return fmt.Errorf("failed to list campaigns: %w", err)
			}

			campaigns, err := collectPages(first, allPages, func(after string) (*ads.ListResponse[ads.Campaign], error) {
				opts.After = after

				return client.Campaigns().List(ctx, opts)
			})
			if err != nil {
				return fmt.Errorf("failed to list campaigns: %w", err)
			}

			return writeResult(cmd, campaigns)
		},
	}

	cmd.Flags().StringVar(&accountID, flagAccount, "", "ad account id (defaults to the configured account)")
	cmd.Flags().StringSliceVar(&statuses, "effective-status", nil, "filter by effective status")
	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	addListFlags(cmd)

	return cmd
}

func newCampaignsGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get CAMPAIGN_ID",
		Short: "Get campaign details",
		Long:  "Display detailed information about a specific campaign",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			campaign, err := client.Campaigns().Get(commandContext(cmd), args[0], fieldsFlag(cmd))
			if err != nil {
				return fmt.Errorf("failed to get campaign: %w", err)
			}

			return writeResult(cmd, campaign)
		},
	}

	addFieldsFlag(cmd)

	return cmd
}

func newCampaignsCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a campaign",
		Long:  "Create a campaign. New campaigns are PAUSED unless --status is given.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			promotedObject, err := jsonFlag(cmd, "promoted-object")
			if err != nil {
				return err
			}

			accountID, _ := cmd.Flags().GetString(flagAccount)
			objective, _ := cmd.Flags().GetString("objective")

			var categories []string
			if cmd.Flags().Changed("special-ad-categories") {
				categories, _ = cmd.Flags().GetStringSlice("special-ad-categories")
			}

			campaign, err := client.Campaigns().Create(commandContext(cmd), &ads.CampaignCreateRequest{
				AccountID:           accountID,
				Name:                args[0],
				Objective:           objective,
				Status:              stringFlag(cmd, flagStatus),
				SpecialAdCategories: categories,
				DailyBudget:         int64Flag(cmd, "daily-budget"),
				LifetimeBudget:      int64Flag(cmd, "lifetime-budget"),
				SpendCap:            int64Flag(cmd, "spend-cap"),
				BidStrategy:         stringFlag(cmd, "bid-strategy"),
				BuyingType:          stringFlag(cmd, "buying-type"),
				StartTime:           stringFlag(cmd, "start-time"),
				StopTime:            stringFlag(cmd, "stop-time"),
				PromotedObject:      promotedObject,
			})
			if err != nil {
				return fmt.Errorf("failed to create campaign: %w", err)
			}

			return writeResult(cmd, campaign)
		},
	}

	cmd.Flags().String(flagAccount, "", "ad account id (defaults to the configured account)")
	cmd.Flags().String("objective", "", "campaign objective, e.g. OUTCOME_SALES")
	cmd.Flags().String(flagStatus, "", "initial status (default PAUSED)")
	cmd.Flags().StringSlice("special-ad-categories", nil, "special ad categories (default NONE)")
	cmd.Flags().Int64("daily-budget", 0, "daily budget in cents")
	cmd.Flags().Int64("lifetime-budget", 0, "lifetime budget in cents")
	cmd.Flags().Int64("spend-cap", 0, "spend cap in cents")
	cmd.Flags().String("bid-strategy", "", "bid strategy")
	cmd.Flags().String("buying-type", "", "buying type")
	cmd.Flags().String("start-time", "", "ISO-8601 start time")
	cmd.Flags().String("stop-time", "", "ISO-8601 stop time")
	cmd.Flags().String("promoted-object", "", "promoted object as JSON")
	_ = cmd.MarkFlagRequired("objective")

	return cmd
}

func newCampaignsUpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update CAMPAIGN_ID",
		Short: "Update a campaign",
		Long:  "Update a campaign. Only the flags given are sent.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			var categories []string
			if cmd.Flags().Changed("special-ad-categories") {
				categories, _ = cmd.Flags().GetStringSlice("special-ad-categories")
			}

			campaign, err := client.Campaigns().Update(commandContext(cmd), args[0], &ads.CampaignUpdateRequest{
				Name:                stringFlag(cmd, flagName),
				Status:              stringFlag(cmd, flagStatus),
				SpecialAdCategories: categories,
				DailyBudget:         int64Flag(cmd, "daily-budget"),
				LifetimeBudget:      int64Flag(cmd, "lifetime-budget"),
				SpendCap:            int64Flag(cmd, "spend-cap"),
				BidStrategy:         stringFlag(cmd, "bid-strategy"),
				StartTime:           stringFlag(cmd, "start-time"),
				StopTime:            stringFlag(cmd, "stop-time"),
			})
			if err != nil {
				return fmt.Errorf("failed to update campaign: %w", err)
			}

			return writeResult(cmd, campaign)
		},
	}

	cmd.Flags().String(flagName, "", "new name")
	cmd.Flags().String(flagStatus, "", "new status")
	cmd.Flags().StringSlice("special-ad-categories", nil, "special ad categories")
	cmd.Flags().Int64("daily-budget", 0, "daily budget in cents")
	cmd.Flags().Int64("lifetime-budget", 0, "lifetime budget in cents")
	cmd.Flags().Int64("spend-cap", 0, "spend cap in cents")
	cmd.Flags().String("bid-strategy", "", "bid strategy")
	cmd.Flags().String("start-time", "", "ISO-8601 start time")
	cmd.Flags().String("stop-time", "", "ISO-8601 stop time")

	return cmd
}

func newCampaignsDeleteCommand() *cobra.Command {
	return newDeleteCommand("campaign", "CAMPAIGN_ID", func(client ads.Client) deleter {
		return client.Campaigns()
	})
}
