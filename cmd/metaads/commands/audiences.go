package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/metaads-client/pkg/ads"
)

// NewAudiencesCommand creates the audiences command group.
func NewAudiencesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "audiences",
		Aliases: []string{"audience", "aud"},
		Short:   "Manage custom audiences",
		Long:    "List, inspect, create, update, and delete custom and lookalike audiences",
	}

	cmd.AddCommand(newAudiencesListCommand())
	cmd.AddCommand(newAudiencesGetCommand())
	cmd.AddCommand(newAudiencesCreateCommand())
	cmd.AddCommand(newAudiencesLookalikeCommand())
	cmd.AddCommand(newAudiencesUpdateCommand())
	cmd.AddCommand(newDeleteCommand("audience", "AUDIENCE_ID", func(client ads.Client) deleter {
		return client.Audiences()
	}))

	return cmd
}

func newAudiencesListCommand() *cobra.Command {
	var accountID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List custom audiences",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			opts := listOptions(cmd)

			audiences, err := client.Audiences().List(commandContext(cmd), accountID, &opts)
			if err != nil {
				return fmt.Errorf("failed to list audiences: %w", err)
			}

			return writeResult(cmd, audiences)
		},
	}

	cmd.Flags().StringVar(&accountID, flagAccount, "", "ad account id (defaults to the configured account)")
	addListFlags(cmd)

	return cmd
}

func newAudiencesGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get AUDIENCE_ID",
		Short: "Get custom audience details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			audience, err := client.Audiences().Get(commandContext(cmd), args[0], fieldsFlag(cmd))
			if err != nil {
				return fmt.Errorf("failed to get audience: %w", err)
			}

			return writeResult(cmd, audience)
		},
	}

	addFieldsFlag(cmd)

	return cmd
}

func newAudiencesCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a custom audience",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			rule, err := jsonFlag(cmd, "rule")
			if err != nil {
				return err
			}

			accountID, _ := cmd.Flags().GetString(flagAccount)
			subtype, _ := cmd.Flags().GetString("subtype")

			audience, err := client.Audiences().Create(commandContext(cmd), &ads.AudienceCreateRequest{
				AccountID:          accountID,
				Name:               args[0],
				Subtype:            subtype,
				Description:        stringFlag(cmd, "description"),
				CustomerFileSource: stringFlag(cmd, "customer-file-source"),
				RetentionDays:      intFlag(cmd, "retention-days"),
				PixelID:            stringFlag(cmd, "pixel"),
				Prefill:            boolFlag(cmd, "prefill"),
				Rule:               rule,
			})
			if err != nil {
				return fmt.Errorf("failed to create audience: %w", err)
			}

			return writeResult(cmd, audience)
		},
	}

	cmd.Flags().String(flagAccount, "", "ad account id (defaults to the configured account)")
	cmd.Flags().String("subtype", "CUSTOM", "audience subtype, e.g. CUSTOM or WEBSITE")
	cmd.Flags().String("description", "", "description")
	cmd.Flags().String("customer-file-source", "", "customer file source")
	cmd.Flags().Int("retention-days", 0, "retention in days")
	cmd.Flags().String("pixel", "", "source pixel id")
	cmd.Flags().Bool("prefill", false, "include past events")
	cmd.Flags().String("rule", "", "audience rule as JSON")

	return cmd
}

func newAudiencesLookalikeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookalike NAME",
		Short: "Create a lookalike audience",
		Long:  "Create a lookalike audience seeded from an existing audience",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			spec, err := jsonFlag(cmd, "spec")
			if err != nil {
				return err
			}

			accountID, _ := cmd.Flags().GetString(flagAccount)
			origin, _ := cmd.Flags().GetString("origin")

			audience, err := client.Audiences().CreateLookalike(commandContext(cmd), &ads.LookalikeCreateRequest{
				AccountID:        accountID,
				Name:             args[0],
				OriginAudienceID: origin,
				Description:      stringFlag(cmd, "description"),
				LookalikeSpec:    spec,
			})
			if err != nil {
				return fmt.Errorf("failed to create lookalike audience: %w", err)
			}

			return writeResult(cmd, audience)
		},
	}

	cmd.Flags().String(flagAccount, "", "ad account id (defaults to the configured account)")
	cmd.Flags().String("origin", "", "origin audience id")
	cmd.Flags().String("description", "", "description")
	cmd.Flags().String("spec", "", `lookalike spec as JSON, e.g. {"country":"US","ratio":0.01}`)
	_ = cmd.MarkFlagRequired("origin")

	return cmd
}

func newAudiencesUpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update AUDIENCE_ID",
		Short: "Update a custom audience",
		Long:  "Update a custom audience. Only the flags given are sent.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			rule, err := jsonFlag(cmd, "rule")
			if err != nil {
				return err
			}

			audience, err := client.Audiences().Update(commandContext(cmd), args[0], &ads.AudienceUpdateRequest{
				Name:          stringFlag(cmd, flagName),
				Description:   stringFlag(cmd, "description"),
				RetentionDays: intFlag(cmd, "retention-days"),
				Rule:          rule,
			})
			if err != nil {
				return fmt.Errorf("failed to update audience: %w", err)
			}

			return writeResult(cmd, audience)
		},
	}

	cmd.Flags().String(flagName, "", "new name")
	cmd.Flags().String("description", "", "new description")
	cmd.Flags().Int("retention-days", 0, "retention in days")
	cmd.Flags().String("rule", "", "audience rule as JSON")

	return cmd
}
