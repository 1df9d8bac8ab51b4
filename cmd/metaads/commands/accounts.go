package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewAccountsCommand creates the ad accounts command group.
func NewAccountsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "accounts",
		Aliases: []string{"account", "acc"},
		Short:   "Inspect ad accounts",
		Long:    "List the ad accounts the token can access and show account details",
	}

	cmd.AddCommand(newAccountsListCommand())
	cmd.AddCommand(newAccountsGetCommand())

	return cmd
}

func newAccountsListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accessible ad accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			opts := listOptions(cmd)

			accounts, err := client.Accounts().List(commandContext(cmd), &opts)
			if err != nil {
				return fmt.Errorf("failed to list ad accounts: %w", err)
			}

			return writeResult(cmd, accounts)
		},
	}

	addListFlags(cmd)

	return cmd
}

func newAccountsGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get [ACCOUNT_ID]",
		Short: "Get ad account details",
		Long:  "Display an ad account. Without an argument the configured account is shown.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			var accountID string
			if len(args) == 1 {
				accountID = args[0]
			}

			account, err := client.Accounts().Get(commandContext(cmd), accountID, fieldsFlag(cmd))
			if err != nil {
				return fmt.Errorf("failed to get ad account: %w", err)
			}

			return writeResult(cmd, account)
		},
	}

	addFieldsFlag(cmd)

	return cmd
}
