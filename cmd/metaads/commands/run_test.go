package commands

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/metaads-client/internal/constants"
	"github.com/fivetwenty-io/metaads-client/internal/present"
	"github.com/fivetwenty-io/metaads-client/pkg/ads"
)

// These tests share the global viper settings and therefore run sequentially.

const cliCampaign = `{"id":"555","name":"Spring Sale","objective":"OUTCOME_SALES",` +
	`"status":"PAUSED","effective_status":"PAUSED","daily_budget":"5000"}`

func TestRun_CampaignsListJSON(t *testing.T) {
	stub, server := newGraphStub(t)
	stub.on(http.MethodGet, "act_1/campaigns", http.StatusOK, `{"data":[`+cliCampaign+`]}`)
	useConfig(t, server.URL, constants.FormatJSON)

	stdout, _, err := execute(NewCampaignsCommand(), "list", "--limit", "5", "--effective-status", "ACTIVE")
	require.NoError(t, err)

	var page ads.ListResponse[ads.Campaign]
	require.NoError(t, json.Unmarshal([]byte(stdout), &page))
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Spring Sale", page.Data[0].Name)

	requests := stub.requests()
	require.Len(t, requests, 1)
	assert.Equal(t, "5", requests[0].Query.Get("limit"))
	assert.Equal(t, testToken, requests[0].Query.Get("access_token"))
	assert.JSONEq(t, `["ACTIVE"]`, requests[0].Query.Get("effective_status"))
}

func TestRun_CampaignsGetTable(t *testing.T) {
	stub, server := newGraphStub(t)
	stub.on(http.MethodGet, "555", http.StatusOK, cliCampaign)
	useConfig(t, server.URL, constants.FormatTable)

	stdout, _, err := execute(NewCampaignsCommand(), "get", "555")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Campaigns (1)")
	assert.Contains(t, stdout, "Spring Sale")
	assert.Contains(t, stdout, "$50.00")
}

func TestRun_CampaignsUpdateSendsOnlyGivenFlags(t *testing.T) {
	stub, server := newGraphStub(t)
	stub.on(http.MethodPost, "555", http.StatusOK, `{"success":true}`)
	stub.on(http.MethodGet, "555", http.StatusOK, cliCampaign)
	useConfig(t, server.URL, constants.FormatJSON)

	_, _, err := execute(NewCampaignsCommand(), "update", "555", "--name", "Renamed", "--daily-budget", "0")
	require.NoError(t, err)

	requests := stub.requests()
	require.Len(t, requests, 2)
	assert.Equal(t, http.MethodPost, requests[0].Method)
	assert.Len(t, requests[0].Form, 2)
	assert.Equal(t, "Renamed", requests[0].Form.Get("name"))
	assert.Equal(t, "0", requests[0].Form.Get("daily_budget"))
	assert.Equal(t, http.MethodGet, requests[1].Method)
}

func TestRun_CampaignsCreateDefaultsCategories(t *testing.T) {
	stub, server := newGraphStub(t)
	stub.on(http.MethodPost, "act_1/campaigns", http.StatusOK, `{"id":"555"}`)
	stub.on(http.MethodGet, "555", http.StatusOK, cliCampaign)
	useConfig(t, server.URL, constants.FormatJSON)

	_, _, err := execute(NewCampaignsCommand(), "create", "Spring Sale", "--objective", "OUTCOME_SALES")
	require.NoError(t, err)

	requests := stub.requests()
	require.Len(t, requests, 2)
	assert.JSONEq(t, `["NONE"]`, requests[0].Form.Get("special_ad_categories"))
	assert.Equal(t, "PAUSED", requests[0].Form.Get("status"))
}

func TestRun_DeleteRequiresForce(t *testing.T) {
	stub, server := newGraphStub(t)
	stub.on(http.MethodDelete, "555", http.StatusOK, `{"success":true}`)
	useConfig(t, server.URL, constants.FormatTable)

	stdout, _, err := execute(NewCampaignsCommand(), "delete", "555")
	require.NoError(t, err)
	assert.Contains(t, stdout, "--force")
	assert.Empty(t, stub.requests())

	stdout, _, err = execute(NewCampaignsCommand(), "delete", "555", "--force")
	require.NoError(t, err)
	assert.Contains(t, stdout, present.SuccessText)

	requests := stub.requests()
	require.Len(t, requests, 1)
	assert.Equal(t, http.MethodDelete, requests[0].Method)
}

func TestRun_InvalidJSONFlag(t *testing.T) {
	stub, server := newGraphStub(t)
	useConfig(t, server.URL, constants.FormatJSON)

	_, _, err := execute(NewCampaignsCommand(), "create", "Sale", "--objective", "OUTCOME_SALES", "--promoted-object", "{nope")
	require.ErrorIs(t, err, constants.ErrInvalidJSONFlag)
	assert.Empty(t, stub.requests())
}

func TestRun_InsightsTimeRange(t *testing.T) {
	stub, server := newGraphStub(t)
	stub.on(http.MethodGet, "act_1/insights", http.StatusOK,
		`{"data":[{"account_id":"1","impressions":"100","clicks":"5","spend":"12.5"}]}`)
	useConfig(t, server.URL, constants.FormatJSON)

	_, _, err := execute(NewInsightsCommand(), "--since", "2025-01-01")
	require.ErrorIs(t, err, constants.ErrTimeRangeIncomplete)
	assert.Empty(t, stub.requests())

	_, _, err = execute(NewInsightsCommand(), "--since", "2025-01-01", "--until", "2025-01-31", "--breakdowns", "age")
	require.NoError(t, err)

	requests := stub.requests()
	require.Len(t, requests, 1)
	assert.JSONEq(t, `{"since":"2025-01-01","until":"2025-01-31"}`, requests[0].Query.Get("time_range"))
	assert.False(t, requests[0].Query.Has("date_preset"))
}

func TestRun_ImagesUpload(t *testing.T) {
	stub, server := newGraphStub(t)
	stub.on(http.MethodPost, "act_1/adimages", http.StatusOK,
		`{"images":{"banner.png":{"hash":"abc123","url":"https://cdn.example.com/banner.png"}}}`)
	useConfig(t, server.URL, constants.FormatJSON)

	path := filepath.Join(t.TempDir(), "banner.png")
	require.NoError(t, os.WriteFile(path, []byte("png-bytes"), 0o600))

	stdout, _, err := execute(NewImagesCommand(), "upload", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "abc123")
	require.Len(t, stub.requests(), 1)

	_, _, err = execute(NewImagesCommand(), "upload", filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)
	assert.Len(t, stub.requests(), 1)
}

func TestRun_MissingToken(t *testing.T) {
	stub, server := newGraphStub(t)
	useConfig(t, server.URL, constants.FormatJSON)
	viper.Set(KeyAccessToken, "")

	_, _, err := execute(NewAccountsCommand(), "list")
	require.Error(t, err)
	assert.True(t, ads.IsAuthentication(err))
	assert.Empty(t, stub.requests())
}

func TestWriteFailure(t *testing.T) {
	stub, server := newGraphStub(t)
	stub.on(http.MethodGet, "act_1", http.StatusBadRequest,
		`{"error":{"message":"User request limit reached","code":17,"fbtrace_id":"TRACE1"}}`)

	t.Run("json output carries the structured payload", func(t *testing.T) {
		useConfig(t, server.URL, constants.FormatJSON)

		cmd := NewAccountsCommand()
		_, _, err := execute(cmd, "get")
		require.Error(t, err)

		stderr := captureFailure(cmd, err)

		var envelope struct {
			IsError           bool                `json:"isError"`
			StructuredContent present.ErrorPayload `json:"structuredContent"`
		}
		require.NoError(t, json.Unmarshal([]byte(stderr), &envelope))
		assert.True(t, envelope.IsError)
		assert.Equal(t, ads.KindRateLimit, envelope.StructuredContent.Kind)
		require.NotNil(t, envelope.StructuredContent.RetryAfterSeconds)
		assert.Equal(t, 60, *envelope.StructuredContent.RetryAfterSeconds)
		assert.True(t, envelope.StructuredContent.Retryable)
		assert.Equal(t, "TRACE1", envelope.StructuredContent.TraceID)
	})

	t.Run("table output prints the error line and trace id", func(t *testing.T) {
		useConfig(t, server.URL, constants.FormatTable)

		cmd := NewAccountsCommand()
		_, _, err := execute(cmd, "get")
		require.Error(t, err)

		stderr := captureFailure(cmd, err)
		assert.Contains(t, stderr, "Error: User request limit reached (retryable)")
		assert.Contains(t, stderr, "Trace ID: TRACE1")
	})
}
