package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewBusinessesCommand creates the businesses command group.
func NewBusinessesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "businesses",
		Aliases: []string{"business", "biz"},
		Short:   "Inspect businesses",
		Long:    "List businesses, show business details and list the ad accounts a business owns",
	}

	cmd.AddCommand(newBusinessesListCommand())
	cmd.AddCommand(newBusinessesGetCommand())
	cmd.AddCommand(newBusinessesAccountsCommand())

	return cmd
}

func newBusinessesListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List businesses",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			opts := listOptions(cmd)

			businesses, err := client.Businesses().List(commandContext(cmd), &opts)
			if err != nil {
				return fmt.Errorf("failed to list businesses: %w", err)
			}

			return writeResult(cmd, businesses)
		},
	}

	addListFlags(cmd)

	return cmd
}

func newBusinessesGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get BUSINESS_ID",
		Short: "Get business details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			business, err := client.Businesses().Get(commandContext(cmd), args[0], fieldsFlag(cmd))
			if err != nil {
				return fmt.Errorf("failed to get business: %w", err)
			}

			return writeResult(cmd, business)
		},
	}

	addFieldsFlag(cmd)

	return cmd
}

func newBusinessesAccountsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts [BUSINESS_ID]",
		Short: "List ad accounts owned by a business",
		Long:  "List the ad accounts owned by a business. Without an argument the configured business is used.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			var businessID string
			if len(args) == 1 {
				businessID = args[0]
			}

			opts := listOptions(cmd)

			accounts, err := client.Businesses().ListAdAccounts(commandContext(cmd), businessID, &opts)
			if err != nil {
				return fmt.Errorf("failed to list business ad accounts: %w", err)
			}

			return writeResult(cmd, accounts)
		},
	}

	addListFlags(cmd)

	return cmd
}
