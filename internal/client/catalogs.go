package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/metaads-client/internal/constants"
	"github.com/fivetwenty-io/metaads-client/internal/http"
	"github.com/fivetwenty-io/metaads-client/pkg/ads"
)

// CatalogsClient implements the ads.CatalogsClient interface.
type CatalogsClient struct {
	entityClient[ads.Catalog]
}

// NewCatalogsClient creates a new CatalogsClient.
func NewCatalogsClient(httpClient *http.Client, pages pageLimits) *CatalogsClient {
	return &CatalogsClient{
		entityClient: newEntityClient[ads.Catalog](httpClient, pages, "catalog", "catalogs", constants.CatalogFields),
	}
}

// List lists the product catalogs owned by a business. An empty id falls back
// to the default business.
func (c *CatalogsClient) List(ctx context.Context, businessID string, opts *ads.ListOptions) (*ads.ListResponse[ads.Catalog], error) {
	businessID, err := resolveBusinessID(businessID, c.httpClient.Credentials())
	if err != nil {
		return nil, fmt.Errorf("listing catalogs: %w", err)
	}

	return c.list(ctx, businessID+"/owned_product_catalogs", opts, nil)
}

// Get retrieves a catalog.
func (c *CatalogsClient) Get(ctx context.Context, catalogID string, fields []string) (*ads.Catalog, error) {
	return c.get(ctx, catalogID, fields)
}

// Create creates a catalog owned by a business.
func (c *CatalogsClient) Create(ctx context.Context, request *ads.CatalogCreateRequest) (*ads.Catalog, error) {
	if request == nil || strings.TrimSpace(request.Name) == "" {
		return nil, fmt.Errorf("creating catalog: %w", constants.ErrNameRequired)
	}

	businessID, err := resolveBusinessID(request.BusinessID, c.httpClient.Credentials())
	if err != nil {
		return nil, fmt.Errorf("creating catalog: %w", err)
	}

	return c.create(ctx, businessID+"/owned_product_catalogs", http.Params{
		"name":     request.Name,
		"vertical": request.Vertical,
	})
}

// Delete deletes a catalog.
func (c *CatalogsClient) Delete(ctx context.Context, catalogID string) error {
	return c.delete(ctx, catalogID)
}
