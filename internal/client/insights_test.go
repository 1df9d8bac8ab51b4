package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/metaads-client/pkg/ads"
)

func TestInsightsClient_Get(t *testing.T) {
	t.Parallel()

	t.Run("defaults to the account and prefers time range", func(t *testing.T) {
		t.Parallel()

		fake, server := newUpstreamFake(t)
		fake.on(http.MethodGet, "act_1001/insights", http.StatusOK,
			`{"data":[{"impressions":"1000","clicks":"25","spend":"12.5","date_start":"2025-01-01","date_stop":"2025-01-31"}]}`)

		result, err := newTestClient(t, server.URL).Insights().Get(context.Background(), &ads.InsightsRequest{
			Level:      "campaign",
			DatePreset: "last_30d",
			TimeRange:  &ads.TimeRange{Since: "2025-01-01", Until: "2025-01-31"},
			Breakdowns: []string{"age"},
		})
		require.NoError(t, err)
		require.Len(t, result.Data, 1)
		assert.Equal(t, "1000", result.Data[0].Impressions)

		query := fake.recorded()[0].Query
		assert.Equal(t, "campaign", query.Get("level"))
		assert.JSONEq(t, `{"since":"2025-01-01","until":"2025-01-31"}`, query.Get("time_range"))
		assert.False(t, query.Has("date_preset"))
		assert.JSONEq(t, `["age"]`, query.Get("breakdowns"))
		assert.False(t, query.Has("action_breakdowns"))
		assert.Contains(t, query.Get("fields"), "impressions")
	})

	t.Run("object id is used as given", func(t *testing.T) {
		t.Parallel()

		fake, server := newUpstreamFake(t)
		fake.on(http.MethodGet, "555/insights", http.StatusOK, `{"data":[]}`)

		_, err := newTestClient(t, server.URL).Insights().Get(context.Background(), &ads.InsightsRequest{
			ObjectID:   "555",
			DatePreset: "yesterday",
			Filtering:  []ads.Filter{ads.EqualFilter("ad.effective_status", "ACTIVE")},
		})
		require.NoError(t, err)

		query := fake.recorded()[0].Query
		assert.Equal(t, "yesterday", query.Get("date_preset"))
		assert.JSONEq(t, `[{"field":"ad.effective_status","operator":"EQUAL","value":"ACTIVE"}]`, query.Get("filtering"))
	})
}
