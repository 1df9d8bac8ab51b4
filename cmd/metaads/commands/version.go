package commands

import (
	"encoding/json"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/metaads-client/internal/constants"
)

// VersionInfo describes the build.
type VersionInfo struct {
	Version    string `json:"version"     yaml:"version"`
	Commit     string `json:"commit"      yaml:"commit"`
	Built      string `json:"built"       yaml:"built"`
	APIVersion string `json:"api_version" yaml:"api_version"`
}

// NewVersionCommand creates the version command.
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display detailed version information about the metaads CLI",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := VersionInfo{
				Version:    version,
				Commit:     commit,
				Built:      date,
				APIVersion: constants.DefaultAPIVersion,
			}

			return writeProperties(cmd, info, [][2]string{
				{"Version", info.Version},
				{"Commit", info.Commit},
				{"Built", info.Built},
				{"Graph API", info.APIVersion},
			})
		},
	}
}

// writeProperties prints value as JSON or YAML, or rows as a two column table.
func writeProperties(cmd *cobra.Command, value any, rows [][2]string) error {
	out := cmd.OutOrStdout()

	switch outputFormat() {
	case constants.FormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")

		return encoder.Encode(value)
	case constants.FormatYAML:
		return yaml.NewEncoder(out).Encode(value)
	case constants.FormatTable:
		table := tablewriter.NewWriter(out)
		table.Header("Property", "Value")

		for _, row := range rows {
			_ = table.Append(row[0], row[1])
		}

		err := table.Render()
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("%w: %q", constants.ErrUnknownOutputFormat, outputFormat())
	}
}
