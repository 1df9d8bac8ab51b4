package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/metaads-client/internal/constants"
	"github.com/fivetwenty-io/metaads-client/internal/http"
	"github.com/fivetwenty-io/metaads-client/pkg/ads"
)

// BusinessesClient implements the ads.BusinessesClient interface.
type BusinessesClient struct {
	entityClient[ads.Business]

	accounts entityClient[ads.AdAccount]
}

// NewBusinessesClient creates a new BusinessesClient.
func NewBusinessesClient(httpClient *http.Client, pages pageLimits) *BusinessesClient {
	return &BusinessesClient{
		entityClient: newEntityClient[ads.Business](httpClient, pages, "business", "businesses", constants.BusinessFields),
		accounts:     newEntityClient[ads.AdAccount](httpClient, pages, "ad account", "ad accounts", constants.AccountFields),
	}
}

// List lists the businesses the token can access.
func (c *BusinessesClient) List(ctx context.Context, opts *ads.ListOptions) (*ads.ListResponse[ads.Business], error) {
	return c.list(ctx, "me/businesses", opts, nil)
}

// Get retrieves a business. An empty id falls back to the default business.
func (c *BusinessesClient) Get(ctx context.Context, businessID string, fields []string) (*ads.Business, error) {
	businessID, err := c.businessID(businessID)
	if err != nil {
		return nil, fmt.Errorf("getting business: %w", err)
	}

	return c.get(ctx, businessID, fields)
}

// ListAdAccounts lists the ad accounts owned by a business.
func (c *BusinessesClient) ListAdAccounts(
	ctx context.Context,
	businessID string,
	opts *ads.ListOptions,
) (*ads.ListResponse[ads.AdAccount], error) {
	businessID, err := c.businessID(businessID)
	if err != nil {
		return nil, fmt.Errorf("listing business ad accounts: %w", err)
	}

	return c.accounts.list(ctx, businessID+"/owned_ad_accounts", opts, nil)
}

func (c *BusinessesClient) businessID(businessID string) (string, error) {
	return resolveBusinessID(businessID, c.httpClient.Credentials())
}

// resolveBusinessID returns the explicit business id, else the credentials default.
func resolveBusinessID(businessID string, credentials ads.Credentials) (string, error) {
	businessID = strings.TrimSpace(businessID)
	if businessID == "" {
		businessID = strings.TrimSpace(credentials.BusinessID)
	}

	if businessID == "" {
		return "", constants.ErrBusinessIDRequired
	}

	return businessID, nil
}
