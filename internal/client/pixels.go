package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/metaads-client/internal/constants"
	"github.com/fivetwenty-io/metaads-client/internal/http"
	"github.com/fivetwenty-io/metaads-client/pkg/ads"
)

// PixelsClient implements the ads.PixelsClient interface.
type PixelsClient struct {
	entityClient[ads.Pixel]
}

// NewPixelsClient creates a new PixelsClient.
func NewPixelsClient(httpClient *http.Client, pages pageLimits) *PixelsClient {
	return &PixelsClient{
		entityClient: newEntityClient[ads.Pixel](httpClient, pages, "pixel", "pixels", constants.PixelFields),
	}
}

// List lists the pixels of an ad account.
func (c *PixelsClient) List(ctx context.Context, accountID string, opts *ads.ListOptions) (*ads.ListResponse[ads.Pixel], error) {
	path, err := c.accountPath(accountID, "adspixels")
	if err != nil {
		return nil, fmt.Errorf("listing pixels: %w", err)
	}

	return c.list(ctx, path, opts, nil)
}

// Get retrieves a pixel.
func (c *PixelsClient) Get(ctx context.Context, pixelID string, fields []string) (*ads.Pixel, error) {
	return c.get(ctx, pixelID, fields)
}

// Create creates a pixel on an ad account.
func (c *PixelsClient) Create(ctx context.Context, request *ads.PixelCreateRequest) (*ads.Pixel, error) {
	if request == nil || strings.TrimSpace(request.Name) == "" {
		return nil, fmt.Errorf("creating pixel: %w", constants.ErrNameRequired)
	}

	path, err := c.accountPath(request.AccountID, "adspixels")
	if err != nil {
		return nil, fmt.Errorf("creating pixel: %w", err)
	}

	return c.create(ctx, path, http.Params{"name": request.Name})
}

// Update applies a sparse patch and returns the refreshed pixel.
func (c *PixelsClient) Update(ctx context.Context, pixelID string, request *ads.PixelUpdateRequest) (*ads.Pixel, error) {
	if request == nil {
		request = &ads.PixelUpdateRequest{}
	}

	return c.update(ctx, pixelID, http.Params{
		"name":                      request.Name,
		"enable_automatic_matching": request.EnableAutomaticMatching,
		"automatic_matching_fields": request.AutomaticMatchingFields,
	})
}
