package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/metaads-client/internal/constants"
	"github.com/fivetwenty-io/metaads-client/internal/http"
	"github.com/fivetwenty-io/metaads-client/pkg/ads"
)

// CreativesClient implements the ads.CreativesClient interface.
type CreativesClient struct {
	entityClient[ads.Creative]
}

// NewCreativesClient creates a new CreativesClient.
func NewCreativesClient(httpClient *http.Client, pages pageLimits) *CreativesClient {
	return &CreativesClient{
		entityClient: newEntityClient[ads.Creative](httpClient, pages, "creative", "creatives", constants.CreativeFields),
	}
}

// List lists the creatives of an ad account.
func (c *CreativesClient) List(
	ctx context.Context,
	accountID string,
	opts *ads.ListOptions,
) (*ads.ListResponse[ads.Creative], error) {
	path, err := c.accountPath(accountID, "adcreatives")
	if err != nil {
		return nil, fmt.Errorf("listing creatives: %w", err)
	}

	return c.list(ctx, path, opts, nil)
}

// Get retrieves a creative.
func (c *CreativesClient) Get(ctx context.Context, creativeID string, fields []string) (*ads.Creative, error) {
	return c.get(ctx, creativeID, fields)
}

// Create creates a creative. Structured specs are sent as JSON text.
func (c *CreativesClient) Create(ctx context.Context, request *ads.CreativeCreateRequest) (*ads.Creative, error) {
	if request == nil || strings.TrimSpace(request.Name) == "" {
		return nil, fmt.Errorf("creating creative: %w", constants.ErrNameRequired)
	}

	path, err := c.accountPath(request.AccountID, "adcreatives")
	if err != nil {
		return nil, fmt.Errorf("creating creative: %w", err)
	}

	return c.create(ctx, path, http.Params{
		"name":                request.Name,
		"title":               request.Title,
		"body":                request.Body,
		"image_hash":          request.ImageHash,
		"image_url":           request.ImageURL,
		"link_url":            request.LinkURL,
		"call_to_action_type": request.CallToActionType,
		"object_story_spec":   request.ObjectStorySpec,
		"asset_feed_spec":     request.AssetFeedSpec,
	})
}

// Update renames a creative or changes its status.
func (c *CreativesClient) Update(
	ctx context.Context,
	creativeID string,
	request *ads.CreativeUpdateRequest,
) (*ads.Creative, error) {
	if request == nil {
		request = &ads.CreativeUpdateRequest{}
	}

	return c.update(ctx, creativeID, http.Params{
		"name":   request.Name,
		"status": request.Status,
	})
}

// Delete deletes a creative.
func (c *CreativesClient) Delete(ctx context.Context, creativeID string) error {
	return c.delete(ctx, creativeID)
}
