package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/metaads-client/internal/constants"
	"github.com/fivetwenty-io/metaads-client/internal/http"
	"github.com/fivetwenty-io/metaads-client/pkg/ads"
)

// AdSetsClient implements the ads.AdSetsClient interface.
type AdSetsClient struct {
	entityClient[ads.AdSet]
}

// NewAdSetsClient creates a new AdSetsClient.
func NewAdSetsClient(httpClient *http.Client, pages pageLimits) *AdSetsClient {
	return &AdSetsClient{
		entityClient: newEntityClient[ads.AdSet](httpClient, pages, "ad set", "ad sets", constants.AdSetFields),
	}
}

// List lists the ad sets of an ad account, optionally narrowed to one campaign.
func (c *AdSetsClient) List(ctx context.Context, opts *ads.AdSetListOptions) (*ads.ListResponse[ads.AdSet], error) {
	if opts == nil {
		opts = &ads.AdSetListOptions{}
	}

	path, err := c.accountPath(opts.AccountID, "adsets")
	if err != nil {
		return nil, fmt.Errorf("listing ad sets: %w", err)
	}

	return c.list(ctx, path, &opts.ListOptions, http.Params{
		"effective_status": opts.EffectiveStatus,
		"filtering":        parentFilters("campaign.id", opts.CampaignID),
	})
}

// Get retrieves an ad set.
func (c *AdSetsClient) Get(ctx context.Context, adSetID string, fields []string) (*ads.AdSet, error) {
	return c.get(ctx, adSetID, fields)
}

// Create creates an ad set, paused unless the request says otherwise.
func (c *AdSetsClient) Create(ctx context.Context, request *ads.AdSetCreateRequest) (*ads.AdSet, error) {
	if request == nil || strings.TrimSpace(request.Name) == "" {
		return nil, fmt.Errorf("creating ad set: %w", constants.ErrNameRequired)
	}

	if strings.TrimSpace(request.CampaignID) == "" {
		return nil, fmt.Errorf("creating ad set: %w", constants.ErrCampaignIDRequired)
	}

	path, err := c.accountPath(request.AccountID, "adsets")
	if err != nil {
		return nil, fmt.Errorf("creating ad set: %w", err)
	}

	params := http.Params{
		"name":             request.Name,
		"campaign_id":      request.CampaignID,
		"status":           statusOrPaused(request.Status),
		"daily_budget":     request.DailyBudget,
		"lifetime_budget":  request.LifetimeBudget,
		"bid_amount":       request.BidAmount,
		"bid_strategy":     request.BidStrategy,
		"destination_type": request.DestinationType,
		"start_time":       request.StartTime,
		"end_time":         request.EndTime,
		"targeting":        request.Targeting,
		"promoted_object":  request.PromotedObject,
		"attribution_spec": request.AttributionSpec,
	}

	params.SetString("optimization_goal", request.OptimizationGoal)
	params.SetString("billing_event", request.BillingEvent)

	return c.create(ctx, path, params)
}

// Update applies a sparse patch and returns the refreshed ad set.
func (c *AdSetsClient) Update(ctx context.Context, adSetID string, request *ads.AdSetUpdateRequest) (*ads.AdSet, error) {
	if request == nil {
		request = &ads.AdSetUpdateRequest{}
	}

	return c.update(ctx, adSetID, http.Params{
		"name":              request.Name,
		"status":            request.Status,
		"optimization_goal": request.OptimizationGoal,
		"daily_budget":      request.DailyBudget,
		"lifetime_budget":   request.LifetimeBudget,
		"bid_amount":        request.BidAmount,
		"bid_strategy":      request.BidStrategy,
		"start_time":        request.StartTime,
		"end_time":          request.EndTime,
		"targeting":         request.Targeting,
	})
}

// Delete deletes an ad set.
func (c *AdSetsClient) Delete(ctx context.Context, adSetID string) error {
	return c.delete(ctx, adSetID)
}
