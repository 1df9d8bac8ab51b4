package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/metaads-client/internal/constants"
	"github.com/fivetwenty-io/metaads-client/pkg/ads"
)

func TestAdSetsClient_ListByCampaign(t *testing.T) {
	t.Parallel()

	fake, server := newUpstreamFake(t)
	fake.on(http.MethodGet, "act_1001/adsets", http.StatusOK, `{"data":[{"id":"9","campaign_id":"123"}]}`)

	result, err := newTestClient(t, server.URL).AdSets().List(context.Background(), &ads.AdSetListOptions{
		CampaignID: "123",
	})
	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "123", result.Data[0].CampaignID)

	requests := fake.recorded()
	require.Len(t, requests, 1)
	assert.Equal(t, "/v22.0/act_1001/adsets", requests[0].Path)
	assert.JSONEq(t,
		`[{"field":"campaign.id","operator":"EQUAL","value":"123"}]`,
		requests[0].Query.Get("filtering"),
	)
}

func TestAdSetsClient_Create(t *testing.T) {
	t.Parallel()

	fake, server := newUpstreamFake(t)
	fake.on(http.MethodPost, "act_1001/adsets", http.StatusOK, `{"id":"9"}`)
	fake.on(http.MethodGet, "9", http.StatusOK, `{"id":"9","name":"Set","status":"PAUSED","targeting":{"geo_locations":{"countries":["US"]}}}`)

	adSet, err := newTestClient(t, server.URL).AdSets().Create(context.Background(), &ads.AdSetCreateRequest{
		CampaignID:       "123",
		Name:             "Set",
		OptimizationGoal: "LINK_CLICKS",
		BillingEvent:     "IMPRESSIONS",
		DailyBudget:      int64Ptr(2500),
		Targeting:        map[string]any{"geo_locations": map[string]any{"countries": []string{"US"}}},
	})
	require.NoError(t, err)
	assert.Equal(t, "9", adSet.ID)
	assert.JSONEq(t, `{"geo_locations":{"countries":["US"]}}`, string(adSet.Targeting))

	form := fake.recorded()[0].Form
	assert.Equal(t, "PAUSED", form.Get("status"))
	assert.Equal(t, "123", form.Get("campaign_id"))
	assert.Equal(t, "2500", form.Get("daily_budget"))
	assert.JSONEq(t, `{"geo_locations":{"countries":["US"]}}`, form.Get("targeting"))
	assert.False(t, form.Has("attribution_spec"))
	assert.False(t, form.Has("bid_amount"))
}

func TestAdSetsClient_CreateRequiresCampaign(t *testing.T) {
	t.Parallel()

	fake, server := newUpstreamFake(t)

	_, err := newTestClient(t, server.URL).AdSets().Create(context.Background(), &ads.AdSetCreateRequest{Name: "Set"})
	require.ErrorIs(t, err, constants.ErrCampaignIDRequired)
	assert.Empty(t, fake.recorded())
}

func TestAdSetsClient_UpdateAndDelete(t *testing.T) {
	t.Parallel()

	fake, server := newUpstreamFake(t)
	fake.on(http.MethodPost, "9", http.StatusOK, `{"success":true}`)
	fake.on(http.MethodGet, "9", http.StatusOK, `{"id":"9","status":"ACTIVE"}`)
	fake.on(http.MethodDelete, "9", http.StatusNoContent, "")

	adSets := newTestClient(t, server.URL).AdSets()

	adSet, err := adSets.Update(context.Background(), "9", &ads.AdSetUpdateRequest{Status: stringPtr("ACTIVE")})
	require.NoError(t, err)
	assert.Equal(t, "ACTIVE", adSet.Status)

	require.NoError(t, adSets.Delete(context.Background(), "9"))

	requests := fake.recorded()
	require.Len(t, requests, 3)
	assert.Len(t, requests[0].Form, 1)
	assert.Equal(t, "ACTIVE", requests[0].Form.Get("status"))
	assert.Equal(t, http.MethodDelete, requests[2].Method)
}
