package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/metaads-client/pkg/ads"
)

const flagBusiness = "business"

// NewCatalogsCommand creates the catalogs command group.
func NewCatalogsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "catalogs",
		Aliases: []string{"catalog"},
		Short:   "Manage product catalogs",
		Long:    "List, inspect, create, and delete product catalogs owned by a business",
	}

	cmd.AddCommand(newCatalogsListCommand())
	cmd.AddCommand(newCatalogsGetCommand())
	cmd.AddCommand(newCatalogsCreateCommand())
	cmd.AddCommand(newDeleteCommand("catalog", "CATALOG_ID", func(client ads.Client) deleter {
		return client.Catalogs()
	}))

	return cmd
}

func newCatalogsListCommand() *cobra.Command {
	var businessID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List product catalogs",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			opts := listOptions(cmd)

			catalogs, err := client.Catalogs().List(commandContext(cmd), businessID, &opts)
			if err != nil {
				return fmt.Errorf("failed to list catalogs: %w", err)
			}

			return writeResult(cmd, catalogs)
		},
	}

	cmd.Flags().StringVar(&businessID, flagBusiness, "", "business id (defaults to the configured business)")
	addListFlags(cmd)

	return cmd
}

func newCatalogsGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get CATALOG_ID",
		Short: "Get product catalog details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			catalog, err := client.Catalogs().Get(commandContext(cmd), args[0], fieldsFlag(cmd))
			if err != nil {
				return fmt.Errorf("failed to get catalog: %w", err)
			}

			return writeResult(cmd, catalog)
		},
	}

	addFieldsFlag(cmd)

	return cmd
}

func newCatalogsCreateCommand() *cobra.Command {
	var businessID string

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a product catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			catalog, err := client.Catalogs().Create(commandContext(cmd), &ads.CatalogCreateRequest{
				BusinessID: businessID,
				Name:       args[0],
				Vertical:   stringFlag(cmd, "vertical"),
			})
			if err != nil {
				return fmt.Errorf("failed to create catalog: %w", err)
			}

			return writeResult(cmd, catalog)
		},
	}

	cmd.Flags().StringVar(&businessID, flagBusiness, "", "business id (defaults to the configured business)")
	cmd.Flags().String("vertical", "", "catalog vertical, e.g. commerce")

	return cmd
}
