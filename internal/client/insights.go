package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/metaads-client/internal/constants"
	"github.com/fivetwenty-io/metaads-client/internal/http"
	"github.com/fivetwenty-io/metaads-client/pkg/ads"
)

// InsightsClient implements the ads.InsightsClient interface.
type InsightsClient struct {
	entityClient[ads.InsightsRecord]
}

// NewInsightsClient creates a new InsightsClient.
func NewInsightsClient(httpClient *http.Client, pages pageLimits) *InsightsClient {
	return &InsightsClient{
		entityClient: newEntityClient[ads.InsightsRecord](httpClient, pages, "insights record", "insights", constants.InsightsFields),
	}
}

// Get reads performance data for one object. An empty ObjectID reports on the
// default account; account ids are normalized, other ids are used as given.
func (c *InsightsClient) Get(ctx context.Context, request *ads.InsightsRequest) (*ads.ListResponse[ads.InsightsRecord], error) {
	if request == nil {
		request = &ads.InsightsRequest{}
	}

	objectID := strings.TrimSpace(request.ObjectID)

	var path string

	if objectID == "" || strings.HasPrefix(objectID, constants.AccountIDPrefix) {
		accountPath, err := c.accountPath(objectID, "insights")
		if err != nil {
			return nil, fmt.Errorf("getting insights: %w", err)
		}

		path = accountPath
	} else {
		path = objectID + "/insights"
	}

	params := http.Params{
		"time_range":        request.TimeRange,
		"breakdowns":        nilIfEmpty(request.Breakdowns),
		"action_breakdowns": nilIfEmpty(request.ActionBreakdowns),
	}

	if len(request.Filtering) > 0 {
		params["filtering"] = request.Filtering
	}

	params.SetString("level", request.Level)
	params.SetString("time_increment", request.TimeIncrement)

	if request.TimeRange == nil {
		params.SetString("date_preset", request.DatePreset)
	}

	return c.list(ctx, path, &request.ListOptions, params)
}

func nilIfEmpty(values []string) []string {
	if len(values) == 0 {
		return nil
	}

	return values
}
