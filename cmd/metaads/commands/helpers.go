package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/metaads-client/internal/constants"
	"github.com/fivetwenty-io/metaads-client/internal/present"
	"github.com/fivetwenty-io/metaads-client/pkg/ads"
	"github.com/fivetwenty-io/metaads-client/pkg/adsclient"
)

// Viper keys. Each maps to a META_* environment variable and a persistent flag.
const (
	KeyAccessToken = "access_token"
	KeyAccountID   = "account_id"
	KeyBusinessID  = "business_id"
	KeyAppID       = "app_id"
	KeyAppSecret   = "app_secret"
	KeyAPIVersion  = "api_version"
	KeyBaseURL     = "base_url"
	KeyOutput      = "output"
	KeyVerbose     = "verbose"
	KeyPromptToken = "prompt_token"
)

// Common flag names.
const (
	flagAccount  = "account"
	flagName     = "name"
	flagStatus   = "status"
	flagFields   = "fields"
	flagLimit    = "limit"
	flagAfter    = "after"
	flagBefore   = "before"
	flagCampaign = "campaign"
	flagAdSet    = "adset"
)

// CreateClient builds a credential-bound client from viper settings. The
// token may come from a flag, META_ACCESS_TOKEN, the config file or a prompt.
func CreateClient() (ads.Client, error) {
	credentials := ads.Credentials{
		AccessToken: viper.GetString(KeyAccessToken),
		AccountID:   viper.GetString(KeyAccountID),
		BusinessID:  viper.GetString(KeyBusinessID),
		AppID:       viper.GetString(KeyAppID),
		AppSecret:   viper.GetString(KeyAppSecret),
		APIVersion:  viper.GetString(KeyAPIVersion),
	}

	if viper.GetBool(KeyPromptToken) && !credentials.HasToken() {
		token, err := promptToken(os.Stdin, os.Stderr)
		if err != nil {
			return nil, err
		}

		credentials.AccessToken = token
	}

	config := &ads.Config{
		Credentials: credentials,
		BaseURL:     viper.GetString(KeyBaseURL),
	}

	if viper.GetBool(KeyVerbose) {
		logger, err := NewLogger(true)
		if err != nil {
			return nil, err
		}

		config.Logger = logger
		config.Debug = true

		chain := ads.NewInterceptorChain()
		chain.AddResponseInterceptor(ads.LoggingResponseInterceptor(logger))
		config.Interceptors = chain
	}

	client, err := adsclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// writeResult prints value in the configured output format.
func writeResult(cmd *cobra.Command, value any) error {
	envelope, err := present.Success(value, outputFormat())
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), envelope.Text())

	return err
}

// WriteFailure prints the error envelope for err. JSON output carries the
// structured diagnostic; other formats print the text line.
func WriteFailure(cmd *cobra.Command, err error) {
	envelope := present.Failure(err)

	if outputFormat() == constants.FormatJSON {
		encoder := json.NewEncoder(cmd.ErrOrStderr())
		encoder.SetIndent("", "  ")
		_ = encoder.Encode(envelope)

		return
	}

	fmt.Fprintln(cmd.ErrOrStderr(), "Error:", envelope.Text())

	if payload := present.Payload(err); payload != nil && payload.TraceID != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), "Trace ID:", payload.TraceID)
	}
}

func outputFormat() string {
	format := viper.GetString(KeyOutput)
	if format == "" {
		return constants.FormatTable
	}

	return format
}

func addListFlags(cmd *cobra.Command) {
	cmd.Flags().Int(flagLimit, 0, "page size (default 25, max 100)")
	cmd.Flags().String(flagAfter, "", "cursor of the page after")
	cmd.Flags().String(flagBefore, "", "cursor of the page before")
	cmd.Flags().StringSlice(flagFields, nil, "fields to request")
}

func listOptions(cmd *cobra.Command) ads.ListOptions {
	limit, _ := cmd.Flags().GetInt(flagLimit)
	after, _ := cmd.Flags().GetString(flagAfter)
	before, _ := cmd.Flags().GetString(flagBefore)
	fields, _ := cmd.Flags().GetStringSlice(flagFields)

	return ads.ListOptions{Limit: limit, After: after, Before: before, Fields: fields}
}

func addFieldsFlag(cmd *cobra.Command) {
	cmd.Flags().StringSlice(flagFields, nil, "fields to request")
}

func fieldsFlag(cmd *cobra.Command) []string {
	fields, _ := cmd.Flags().GetStringSlice(flagFields)

	return fields
}

// stringFlag returns the flag value only when it was set on the command line.
func stringFlag(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}

	value, _ := cmd.Flags().GetString(name)

	return &value
}

func int64Flag(cmd *cobra.Command, name string) *int64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}

	value, _ := cmd.Flags().GetInt64(name)

	return &value
}

func intFlag(cmd *cobra.Command, name string) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}

	value, _ := cmd.Flags().GetInt(name)

	return &value
}

func boolFlag(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}

	value, _ := cmd.Flags().GetBool(name)

	return &value
}

// jsonFlag parses a flag holding a JSON document. Unset flags yield nil.
func jsonFlag(cmd *cobra.Command, name string) (any, error) {
	value, _ := cmd.Flags().GetString(name)

	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil //nolint:nilnil // unset flag
	}

	if !json.Valid([]byte(value)) {
		return nil, fmt.Errorf("--%s: %w", name, constants.ErrInvalidJSONFlag)
	}

	return json.RawMessage(value), nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}

// collectPages follows next cursors from first until the last page when all is
// set. The merged result keeps the paging of the last page fetched.
func collectPages[T any](
	first *ads.ListResponse[T],
	all bool,
	next func(after string) (*ads.ListResponse[T], error),
) (*ads.ListResponse[T], error) {
	result := first

	for all && result.NextCursor() != "" {
		page, err := next(result.NextCursor())
		if err != nil {
			return nil, err
		}

		page.Data = append(result.Data, page.Data...)
		result = page
	}

	return result, nil
}

// parseFilters decodes a JSON filter list given on the command line.
func parseFilters(raw any) ([]ads.Filter, error) {
	data, ok := raw.(json.RawMessage)
	if !ok {
		return nil, fmt.Errorf("--filtering: %w", constants.ErrInvalidJSONFlag)
	}

	var filters []ads.Filter

	err := json.Unmarshal(data, &filters)
	if err != nil {
		return nil, fmt.Errorf("--filtering: %w: %w", constants.ErrInvalidJSONFlag, err)
	}

	return filters, nil
}
