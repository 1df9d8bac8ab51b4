package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/metaads-client/cmd/metaads/commands"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "metaads",
	Short: "Meta Marketing API CLI",
	Long: `A command-line interface for the Meta Marketing (Graph) API.

It manages ad accounts, campaigns, ad sets, ads, creatives, images, audiences,
pixels and product catalogs, and queries performance insights. Credentials are
read from flags, META_* environment variables or $HOME/.metaads/config.yml.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is $HOME/.metaads/config.yml)")
	flags.StringP("access-token", "t", "", "access token")
	flags.StringP("account-id", "a", "", "default ad account id")
	flags.String("business-id", "", "default business id")
	flags.String("app-id", "", "app id")
	flags.String("app-secret", "", "app secret, enables appsecret_proof")
	flags.String("api-version", "", "Graph API version (default v22.0)")
	flags.String("base-url", "", "Graph API base URL")
	flags.StringP("output", "o", "table", "output format (table, json, yaml)")
	flags.BoolP("verbose", "v", false, "verbose output")
	flags.Bool("prompt-token", false, "prompt for the access token when none is configured")

	bindings := map[string]string{
		commands.KeyAccessToken: "access-token",
		commands.KeyAccountID:   "account-id",
		commands.KeyBusinessID:  "business-id",
		commands.KeyAppID:       "app-id",
		commands.KeyAppSecret:   "app-secret",
		commands.KeyAPIVersion:  "api-version",
		commands.KeyBaseURL:     "base-url",
		commands.KeyOutput:      "output",
		commands.KeyVerbose:     "verbose",
		commands.KeyPromptToken: "prompt-token",
		"config":                "config",
	}
	for key, flag := range bindings {
		_ = viper.BindPFlag(key, flags.Lookup(flag))
	}

	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewAccountsCommand())
	rootCmd.AddCommand(commands.NewBusinessesCommand())
	rootCmd.AddCommand(commands.NewCampaignsCommand())
	rootCmd.AddCommand(commands.NewAdSetsCommand())
	rootCmd.AddCommand(commands.NewAdsCommand())
	rootCmd.AddCommand(commands.NewCreativesCommand())
	rootCmd.AddCommand(commands.NewImagesCommand())
	rootCmd.AddCommand(commands.NewAudiencesCommand())
	rootCmd.AddCommand(commands.NewPixelsCommand())
	rootCmd.AddCommand(commands.NewCatalogsCommand())
	rootCmd.AddCommand(commands.NewInsightsCommand())
}

func initConfig() {
	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".metaads"))
		}

		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	// META_ACCESS_TOKEN, META_ACCOUNT_ID, ...
	viper.SetEnvPrefix("META")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool(commands.KeyVerbose) {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		commands.WriteFailure(rootCmd, err)
		os.Exit(1)
	}
}
