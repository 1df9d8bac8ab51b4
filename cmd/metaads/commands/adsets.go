package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/metaads-client/pkg/ads"
)

// NewAdSetsCommand creates the ad sets command group.
func NewAdSetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "adsets",
		Aliases: []string{"adset", "ad-sets"},
		Short:   "Manage ad sets",
		Long:    "List, inspect, create, update, and delete ad sets",
	}

	cmd.AddCommand(newAdSetsListCommand())
	cmd.AddCommand(newAdSetsGetCommand())
	cmd.AddCommand(newAdSetsCreateCommand())
	cmd.AddCommand(newAdSetsUpdateCommand())
	cmd.AddCommand(newDeleteCommand("ad set", "ADSET_ID", func(client ads.Client) deleter {
		return client.AdSets()
	}))

	return cmd
}

func newAdSetsListCommand() *cobra.Command {
	var (
		accountID  string
		campaignID string
		statuses   []string
		allPages   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List ad sets",
		Long:  "List the ad sets of an ad account, optionally only those of one campaign",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := commandContext(cmd)
			opts := &ads.AdSetListOptions{
				ListOptions:     listOptions(cmd),
				AccountID:       accountID,
				CampaignID:      campaignID,
				EffectiveStatus: statuses,
			}

			first, err := client.AdSets().List(ctx, opts)
			if err != nil {
				return fmt.Errorf("failed to list ad sets: %w", err)
			}

			adSets, err := collectPages(first, allPages, func(after string) (*ads.ListResponse[ads.AdSet], error) {
				opts.After = after

				return client.AdSets().List(ctx, opts)
			})
			if err != nil {
				return fmt.Errorf("failed to list ad sets: %w", err)
			}

			return writeResult(cmd, adSets)
		},
	}

	cmd.Flags().StringVar(&accountID, flagAccount, "", "ad account id (defaults to the configured account)")
	cmd.Flags().StringVar(&campaignID, flagCampaign, "", "only ad sets of this campaign")
	cmd.Flags().StringSliceVar(&statuses, "effective-status", nil, "filter by effective status")
	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	addListFlags(cmd)

	return cmd
}

func newAdSetsGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get ADSET_ID",
		Short: "Get ad set details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			adSet, err := client.AdSets().Get(commandContext(cmd), args[0], fieldsFlag(cmd))
			if err != nil {
				return fmt.Errorf("failed to get ad set: %w", err)
			}

			return writeResult(cmd, adSet)
		},
	}

	addFieldsFlag(cmd)

	return cmd
}

func newAdSetsCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create an ad set",
		Long:  "Create an ad set in a campaign. New ad sets are PAUSED unless --status is given.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			targeting, err := jsonFlag(cmd, "targeting")
			if err != nil {
				return err
			}

			promotedObject, err := jsonFlag(cmd, "promoted-object")
			if err != nil {
				return err
			}

			attributionSpec, err := jsonFlag(cmd, "attribution-spec")
			if err != nil {
				return err
			}

			accountID, _ := cmd.Flags().GetString(flagAccount)
			campaignID, _ := cmd.Flags().GetString(flagCampaign)
			goal, _ := cmd.Flags().GetString("optimization-goal")
			billing, _ := cmd.Flags().GetString("billing-event")

			adSet, err := client.AdSets().Create(commandContext(cmd), &ads.AdSetCreateRequest{
				AccountID:        accountID,
				CampaignID:       campaignID,
				Name:             args[0],
				Status:           stringFlag(cmd, flagStatus),
				OptimizationGoal: goal,
				BillingEvent:     billing,
				DailyBudget:      int64Flag(cmd, "daily-budget"),
				LifetimeBudget:   int64Flag(cmd, "lifetime-budget"),
				BidAmount:        int64Flag(cmd, "bid-amount"),
				BidStrategy:      stringFlag(cmd, "bid-strategy"),
				DestinationType:  stringFlag(cmd, "destination-type"),
				StartTime:        stringFlag(cmd, "start-time"),
				EndTime:          stringFlag(cmd, "end-time"),
				Targeting:        targeting,
				PromotedObject:   promotedObject,
				AttributionSpec:  attributionSpec,
			})
			if err != nil {
				return fmt.Errorf("failed to create ad set: %w", err)
			}

			return writeResult(cmd, adSet)
		},
	}

	cmd.Flags().String(flagAccount, "", "ad account id (defaults to the configured account)")
	cmd.Flags().String(flagCampaign, "", "parent campaign id")
	cmd.Flags().String(flagStatus, "", "initial status (default PAUSED)")
	cmd.Flags().String("optimization-goal", "", "optimization goal, e.g. LINK_CLICKS")
	cmd.Flags().String("billing-event", "", "billing event, e.g. IMPRESSIONS")
	cmd.Flags().Int64("daily-budget", 0, "daily budget in cents")
	cmd.Flags().Int64("lifetime-budget", 0, "lifetime budget in cents")
	cmd.Flags().Int64("bid-amount", 0, "bid amount in cents")
	cmd.Flags().String("bid-strategy", "", "bid strategy")
	cmd.Flags().String("destination-type", "", "destination type")
	cmd.Flags().String("start-time", "", "ISO-8601 start time")
	cmd.Flags().String("end-time", "", "ISO-8601 end time")
	cmd.Flags().String("targeting", "", "targeting spec as JSON")
	cmd.Flags().String("promoted-object", "", "promoted object as JSON")
	cmd.Flags().String("attribution-spec", "", "attribution spec as JSON")
	_ = cmd.MarkFlagRequired(flagCampaign)
	_ = cmd.MarkFlagRequired("optimization-goal")
	_ = cmd.MarkFlagRequired("billing-event")

	return cmd
}

func newAdSetsUpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update ADSET_ID",
		Short: "Update an ad set",
		Long:  "Update an ad set. Only the flags given are sent.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			targeting, err := jsonFlag(cmd, "targeting")
			if err != nil {
				return err
			}

			adSet, err := client.AdSets().Update(commandContext(cmd), args[0], &ads.AdSetUpdateRequest{
				Name:             stringFlag(cmd, flagName),
				Status:           stringFlag(cmd, flagStatus),
				OptimizationGoal: stringFlag(cmd, "optimization-goal"),
				DailyBudget:      int64Flag(cmd, "daily-budget"),
				LifetimeBudget:   int64Flag(cmd, "lifetime-budget"),
				BidAmount:        int64Flag(cmd, "bid-amount"),
				BidStrategy:      stringFlag(cmd, "bid-strategy"),
				StartTime:        stringFlag(cmd, "start-time"),
				EndTime:          stringFlag(cmd, "end-time"),
				Targeting:        targeting,
			})
			if err != nil {
				return fmt.Errorf("failed to update ad set: %w", err)
			}

			return writeResult(cmd, adSet)
		},
	}

	cmd.Flags().String(flagName, "", "new name")
	cmd.Flags().String(flagStatus, "", "new status")
	cmd.Flags().String("optimization-goal", "", "optimization goal")
	cmd.Flags().Int64("daily-budget", 0, "daily budget in cents")
	cmd.Flags().Int64("lifetime-budget", 0, "lifetime budget in cents")
	cmd.Flags().Int64("bid-amount", 0, "bid amount in cents")
	cmd.Flags().String("bid-strategy", "", "bid strategy")
	cmd.Flags().String("start-time", "", "ISO-8601 start time")
	cmd.Flags().String("end-time", "", "ISO-8601 end time")
	cmd.Flags().String("targeting", "", "targeting spec as JSON")

	return cmd
}
