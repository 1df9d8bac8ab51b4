//go:build integration

package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/metaads-client/pkg/ads"
	"github.com/fivetwenty-io/metaads-client/pkg/adsclient"
)

// Live tests are read-only: nothing is created or changed upstream.

func TestWorkflow_AccountHierarchy(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)
	config.SkipIfNoAccount(t)

	client, ctx := config.NewClient(t)

	account, err := client.Accounts().Get(ctx, "", nil)
	require.NoError(t, err)
	assert.Equal(t, ads.NormalizeAccountID(config.Credentials.AccountID), account.ID)

	campaigns, err := client.Campaigns().List(ctx, &ads.CampaignListOptions{ListOptions: ads.ListOptions{Limit: 5}})
	require.NoError(t, err)
	assert.LessOrEqual(t, len(campaigns.Data), 5)

	if len(campaigns.Data) == 0 {
		t.Skip("account has no campaigns")
	}

	campaign := campaigns.Data[0]

	adSets, err := client.AdSets().List(ctx, &ads.AdSetListOptions{CampaignID: campaign.ID})
	require.NoError(t, err)

	for _, adSet := range adSets.Data {
		assert.Equal(t, campaign.ID, adSet.CampaignID)
	}

	insights, err := client.Insights().Get(ctx, &ads.InsightsRequest{ObjectID: campaign.ID, DatePreset: "last_30d"})
	require.NoError(t, err)
	assert.NotNil(t, insights)
}

func TestWorkflow_Paging(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	client, ctx := config.NewClient(t)

	first, err := client.Accounts().List(ctx, &ads.ListOptions{Limit: 1})
	require.NoError(t, err)

	cursor := first.NextCursor()
	if cursor == "" {
		t.Skip("token can access a single ad account")
	}

	second, err := client.Accounts().List(ctx, &ads.ListOptions{Limit: 1, After: cursor})
	require.NoError(t, err)
	require.Len(t, second.Data, 1)
	assert.NotEqual(t, first.Data[0].ID, second.Data[0].ID)
}

func TestWorkflow_InvalidTokenIsAuthentication(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	client, err := adsclient.New(&ads.Config{
		Credentials: ads.Credentials{AccessToken: "invalid-token"},
		BaseURL:     config.BaseURL,
	})
	require.NoError(t, err)

	_, ctx := config.NewClient(t)

	_, err = client.Accounts().List(ctx, nil)
	require.Error(t, err)
	assert.True(t, ads.IsAuthentication(err), "got %v", err)
}
