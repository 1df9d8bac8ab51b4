package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/metaads-client/internal/constants"
	"github.com/fivetwenty-io/metaads-client/internal/http"
	"github.com/fivetwenty-io/metaads-client/pkg/ads"
)

// AdsClient implements the ads.AdsClient interface.
type AdsClient struct {
	entityClient[ads.Ad]
}

// NewAdsClient creates a new AdsClient.
func NewAdsClient(httpClient *http.Client, pages pageLimits) *AdsClient {
	return &AdsClient{
		entityClient: newEntityClient[ads.Ad](httpClient, pages, "ad", "ads", constants.AdFields),
	}
}

// List lists the ads of an ad account, optionally narrowed to a campaign and/or ad set.
func (c *AdsClient) List(ctx context.Context, opts *ads.AdListOptions) (*ads.ListResponse[ads.Ad], error) {
	if opts == nil {
		opts = &ads.AdListOptions{}
	}

	path, err := c.accountPath(opts.AccountID, "ads")
	if err != nil {
		return nil, fmt.Errorf("listing ads: %w", err)
	}

	return c.list(ctx, path, &opts.ListOptions, http.Params{
		"effective_status": opts.EffectiveStatus,
		"filtering":        parentFilters("campaign.id", opts.CampaignID, "adset.id", opts.AdSetID),
	})
}

// Get retrieves an ad.
func (c *AdsClient) Get(ctx context.Context, adID string, fields []string) (*ads.Ad, error) {
	return c.get(ctx, adID, fields)
}

// Create creates an ad, paused unless the request says otherwise.
func (c *AdsClient) Create(ctx context.Context, request *ads.AdCreateRequest) (*ads.Ad, error) {
	if request == nil || strings.TrimSpace(request.Name) == "" {
		return nil, fmt.Errorf("creating ad: %w", constants.ErrNameRequired)
	}

	if strings.TrimSpace(request.AdSetID) == "" {
		return nil, fmt.Errorf("creating ad: %w", constants.ErrAdSetIDRequired)
	}

	if strings.TrimSpace(request.CreativeID) == "" {
		return nil, fmt.Errorf("creating ad: %w", constants.ErrCreativeRequired)
	}

	path, err := c.accountPath(request.AccountID, "ads")
	if err != nil {
		return nil, fmt.Errorf("creating ad: %w", err)
	}

	return c.create(ctx, path, http.Params{
		"name":           request.Name,
		"adset_id":       request.AdSetID,
		"creative":       creativeRef(request.CreativeID),
		"status":         statusOrPaused(request.Status),
		"tracking_specs": request.TrackingSpecs,
	})
}

// Update applies a sparse patch and returns the refreshed ad.
func (c *AdsClient) Update(ctx context.Context, adID string, request *ads.AdUpdateRequest) (*ads.Ad, error) {
	if request == nil {
		request = &ads.AdUpdateRequest{}
	}

	params := http.Params{
		"name":   request.Name,
		"status": request.Status,
	}

	if request.CreativeID != nil {
		params["creative"] = creativeRef(*request.CreativeID)
	}

	return c.update(ctx, adID, params)
}

// Delete deletes an ad.
func (c *AdsClient) Delete(ctx context.Context, adID string) error {
	return c.delete(ctx, adID)
}

// creativeRef is the {"creative_id": ...} object the upstream expects for an ad's creative.
func creativeRef(creativeID string) map[string]string {
	return map[string]string{"creative_id": creativeID}
}
