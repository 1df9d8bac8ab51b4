//go:build integration

package integration

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/metaads-client/pkg/ads"
	"github.com/fivetwenty-io/metaads-client/pkg/adsclient"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	Credentials ads.Credentials
	BaseURL     string
}

// LoadTestConfig loads configuration from META_* environment variables.
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		Credentials: adsclient.CredentialsFromEnv(os.Getenv),
		BaseURL:     os.Getenv("META_BASE_URL"),
	}
}

// SkipIfMissingConfig skips the test when no live credentials are configured.
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if !config.Credentials.HasToken() {
		t.Skip("META_ACCESS_TOKEN not set, skipping integration test")
	}
}

// SkipIfNoAccount skips the test when no default ad account is configured.
func (config *TestConfig) SkipIfNoAccount(t *testing.T) {
	t.Helper()

	if config.Credentials.AccountID == "" {
		t.Skip("META_ACCOUNT_ID not set, skipping integration test")
	}
}

// NewClient creates a live client and a bounded context for one test.
func (config *TestConfig) NewClient(t *testing.T) (ads.Client, context.Context) {
	t.Helper()

	client, err := adsclient.New(&ads.Config{
		Credentials: config.Credentials,
		BaseURL:     config.BaseURL,
		HTTPTimeout: 30 * time.Second,
		UserAgent:   "metaads-integration-tests",
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	t.Cleanup(cancel)

	return client, ctx
}
