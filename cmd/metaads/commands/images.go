package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/metaads-client/pkg/ads"
)

// NewImagesCommand creates the images command group.
func NewImagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "images",
		Aliases: []string{"image", "img"},
		Short:   "Manage ad images",
		Long:    "List and upload ad images of an ad account",
	}

	cmd.AddCommand(newImagesListCommand())
	cmd.AddCommand(newImagesUploadCommand())

	return cmd
}

func newImagesListCommand() *cobra.Command {
	var accountID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List ad images",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			opts := listOptions(cmd)

			images, err := client.Images().List(commandContext(cmd), accountID, &opts)
			if err != nil {
				return fmt.Errorf("failed to list images: %w", err)
			}

			return writeResult(cmd, images)
		},
	}

	cmd.Flags().StringVar(&accountID, flagAccount, "", "ad account id (defaults to the configured account)")
	addListFlags(cmd)

	return cmd
}

func newImagesUploadCommand() *cobra.Command {
	var accountID string

	cmd := &cobra.Command{
		Use:   "upload FILE",
		Short: "Upload an ad image",
		Long:  "Upload an image file. The returned hash can be used in creatives.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0]) //nolint:gosec // user supplied upload path
			if err != nil {
				return fmt.Errorf("failed to read image: %w", err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			image, err := client.Images().Upload(commandContext(cmd), &ads.ImageUploadRequest{
				AccountID: accountID,
				Filename:  filepath.Base(args[0]),
				Bytes:     data,
			})
			if err != nil {
				return fmt.Errorf("failed to upload image: %w", err)
			}

			return writeResult(cmd, image)
		},
	}

	cmd.Flags().StringVar(&accountID, flagAccount, "", "ad account id (defaults to the configured account)")

	return cmd
}
