package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/metaads-client/internal/constants"
	"github.com/fivetwenty-io/metaads-client/internal/http"
	"github.com/fivetwenty-io/metaads-client/pkg/ads"
)

// CampaignsClient implements the ads.CampaignsClient interface.
type CampaignsClient struct {
	entityClient[ads.Campaign]
}

// NewCampaignsClient creates a new CampaignsClient.
func NewCampaignsClient(httpClient *http.Client, pages pageLimits) *CampaignsClient {
	return &CampaignsClient{
		entityClient: newEntityClient[ads.Campaign](httpClient, pages, "campaign", "campaigns", constants.CampaignFields),
	}
}

// List lists the campaigns of an ad account.
func (c *CampaignsClient) List(ctx context.Context, opts *ads.CampaignListOptions) (*ads.ListResponse[ads.Campaign], error) {
	if opts == nil {
		opts = &ads.CampaignListOptions{}
	}

	path, err := c.accountPath(opts.AccountID, "campaigns")
	if err != nil {
		return nil, fmt.Errorf("listing campaigns: %w", err)
	}

	return c.list(ctx, path, &opts.ListOptions, http.Params{
		"effective_status": opts.EffectiveStatus,
	})
}

// Get retrieves a campaign.
func (c *CampaignsClient) Get(ctx context.Context, campaignID string, fields []string) (*ads.Campaign, error) {
	return c.get(ctx, campaignID, fields)
}

// Create creates a campaign, paused and with special_ad_categories [NONE]
// unless the request says otherwise, and returns it as fetched afterwards.
func (c *CampaignsClient) Create(ctx context.Context, request *ads.CampaignCreateRequest) (*ads.Campaign, error) {
	if request == nil || strings.TrimSpace(request.Name) == "" {
		return nil, fmt.Errorf("creating campaign: %w", constants.ErrNameRequired)
	}

	if strings.TrimSpace(request.Objective) == "" {
		return nil, fmt.Errorf("creating campaign: %w", constants.ErrObjectiveRequired)
	}

	path, err := c.accountPath(request.AccountID, "campaigns")
	if err != nil {
		return nil, fmt.Errorf("creating campaign: %w", err)
	}

	// An explicit empty list is sent as is; only an unset one defaults.
	categories := request.SpecialAdCategories
	if categories == nil {
		categories = []string{constants.SpecialAdCategoryNone}
	}

	return c.create(ctx, path, http.Params{
		"name":                  request.Name,
		"objective":             request.Objective,
		"status":                statusOrPaused(request.Status),
		"special_ad_categories": categories,
		"daily_budget":          request.DailyBudget,
		"lifetime_budget":       request.LifetimeBudget,
		"spend_cap":             request.SpendCap,
		"bid_strategy":          request.BidStrategy,
		"buying_type":           request.BuyingType,
		"start_time":            request.StartTime,
		"stop_time":             request.StopTime,
		"promoted_object":       request.PromotedObject,
	})
}

// Update applies a sparse patch and returns the refreshed campaign.
func (c *CampaignsClient) Update(
	ctx context.Context,
	campaignID string,
	request *ads.CampaignUpdateRequest,
) (*ads.Campaign, error) {
	if request == nil {
		request = &ads.CampaignUpdateRequest{}
	}

	return c.update(ctx, campaignID, http.Params{
		"name":                  request.Name,
		"status":                request.Status,
		"special_ad_categories": request.SpecialAdCategories,
		"daily_budget":          request.DailyBudget,
		"lifetime_budget":       request.LifetimeBudget,
		"spend_cap":             request.SpendCap,
		"bid_strategy":          request.BidStrategy,
		"start_time":            request.StartTime,
		"stop_time":             request.StopTime,
	})
}

// Delete deletes a campaign.
func (c *CampaignsClient) Delete(ctx context.Context, campaignID string) error {
	return c.delete(ctx, campaignID)
}
