package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/metaads-client/pkg/ads"
)

// deleter is implemented by every entity client that supports deletion.
type deleter interface {
	Delete(ctx context.Context, id string) error
}

// newDeleteCommand builds a "delete ID" subcommand for noun.
func newDeleteCommand(noun, arg string, pick func(ads.Client) deleter) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete " + arg,
		Short: "Delete a " + noun,
		Long:  fmt.Sprintf("Delete a %s by id. Pass --force to skip the confirmation.", noun),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				fmt.Fprintf(cmd.OutOrStdout(), "Really delete %s %s? Use --force to confirm\n", noun, args[0])

				return nil
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = pick(client).Delete(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete %s: %w", noun, err)
			}

			return writeResult(cmd, nil)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")

	return cmd
}
