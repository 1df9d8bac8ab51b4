package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/metaads-client/internal/constants"
)

// EffectiveConfig is the configuration a command would run with. Secrets are masked.
type EffectiveConfig struct {
	ConfigFile  string `json:"config_file,omitempty" yaml:"config_file,omitempty"`
	AccessToken string `json:"access_token"          yaml:"access_token"`
	AccountID   string `json:"account_id"            yaml:"account_id"`
	BusinessID  string `json:"business_id"           yaml:"business_id"`
	AppID       string `json:"app_id"                yaml:"app_id"`
	AppSecret   string `json:"app_secret"            yaml:"app_secret"`
	APIVersion  string `json:"api_version"           yaml:"api_version"`
	BaseURL     string `json:"base_url"              yaml:"base_url"`
	Output      string `json:"output"                yaml:"output"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect CLI configuration",
		Long:  "Inspect the configuration resolved from flags, META_* environment variables and the config file",
	}

	cmd.AddCommand(newConfigShowCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Long:  "Display the effective configuration. Tokens and secrets are masked.",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadEffectiveConfig()

			return writeProperties(cmd, config, [][2]string{
				{"Config file", orUnset(config.ConfigFile)},
				{"Access token", orUnset(config.AccessToken)},
				{"Account", orUnset(config.AccountID)},
				{"Business", orUnset(config.BusinessID)},
				{"App ID", orUnset(config.AppID)},
				{"App secret", orUnset(config.AppSecret)},
				{"API version", config.APIVersion},
				{"Base URL", config.BaseURL},
				{"Output", config.Output},
			})
		},
	}
}

func loadEffectiveConfig() EffectiveConfig {
	version := viper.GetString(KeyAPIVersion)
	if version == "" {
		version = constants.DefaultAPIVersion
	}

	baseURL := viper.GetString(KeyBaseURL)
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	return EffectiveConfig{
		ConfigFile:  viper.ConfigFileUsed(),
		AccessToken: maskSecret(viper.GetString(KeyAccessToken)),
		AccountID:   viper.GetString(KeyAccountID),
		BusinessID:  viper.GetString(KeyBusinessID),
		AppID:       viper.GetString(KeyAppID),
		AppSecret:   maskSecret(viper.GetString(KeyAppSecret)),
		APIVersion:  version,
		BaseURL:     baseURL,
		Output:      outputFormat(),
	}
}

// maskSecret keeps the last four characters of long secrets.
func maskSecret(secret string) string {
	const visible = 4

	switch {
	case secret == "":
		return ""
	case len(secret) <= 2*visible:
		return "****"
	default:
		return "****" + secret[len(secret)-visible:]
	}
}

func orUnset(value string) string {
	if value == "" {
		return "(not set)"
	}

	return value
}
