package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/metaads-client/internal/constants"
	"github.com/fivetwenty-io/metaads-client/internal/http"
	"github.com/fivetwenty-io/metaads-client/pkg/ads"
)

// AccountsClient implements the ads.AccountsClient interface.
type AccountsClient struct {
	entityClient[ads.AdAccount]
}

// NewAccountsClient creates a new AccountsClient.
func NewAccountsClient(httpClient *http.Client, pages pageLimits) *AccountsClient {
	return &AccountsClient{
		entityClient: newEntityClient[ads.AdAccount](httpClient, pages, "ad account", "ad accounts", constants.AccountFields),
	}
}

// List lists the ad accounts the token can access.
func (c *AccountsClient) List(ctx context.Context, opts *ads.ListOptions) (*ads.ListResponse[ads.AdAccount], error) {
	return c.list(ctx, "me/adaccounts", opts, nil)
}

// Get retrieves an ad account. The id is normalized to the act_ form; an empty
// id falls back to the default account.
func (c *AccountsClient) Get(ctx context.Context, accountID string, fields []string) (*ads.AdAccount, error) {
	path, err := c.accountPath(accountID, "")
	if err != nil {
		return nil, fmt.Errorf("getting ad account: %w", err)
	}

	return c.get(ctx, path, fields)
}
