package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/metaads-client/internal/constants"
	"github.com/fivetwenty-io/metaads-client/internal/http"
	"github.com/fivetwenty-io/metaads-client/pkg/ads"
)

const subtypeLookalike = "LOOKALIKE"

// AudiencesClient implements the ads.AudiencesClient interface.
type AudiencesClient struct {
	entityClient[ads.Audience]
}

// NewAudiencesClient creates a new AudiencesClient.
func NewAudiencesClient(httpClient *http.Client, pages pageLimits) *AudiencesClient {
	return &AudiencesClient{
		entityClient: newEntityClient[ads.Audience](httpClient, pages, "audience", "audiences", constants.AudienceFields),
	}
}

// List lists the custom audiences of an ad account.
func (c *AudiencesClient) List(
	ctx context.Context,
	accountID string,
	opts *ads.ListOptions,
) (*ads.ListResponse[ads.Audience], error) {
	path, err := c.accountPath(accountID, "customaudiences")
	if err != nil {
		return nil, fmt.Errorf("listing audiences: %w", err)
	}

	return c.list(ctx, path, opts, nil)
}

// Get retrieves an audience.
func (c *AudiencesClient) Get(ctx context.Context, audienceID string, fields []string) (*ads.Audience, error) {
	return c.get(ctx, audienceID, fields)
}

// Create creates a custom audience.
func (c *AudiencesClient) Create(ctx context.Context, request *ads.AudienceCreateRequest) (*ads.Audience, error) {
	if request == nil || strings.TrimSpace(request.Name) == "" {
		return nil, fmt.Errorf("creating audience: %w", constants.ErrNameRequired)
	}

	path, err := c.accountPath(request.AccountID, "customaudiences")
	if err != nil {
		return nil, fmt.Errorf("creating audience: %w", err)
	}

	params := http.Params{
		"name":                 request.Name,
		"description":          request.Description,
		"customer_file_source": request.CustomerFileSource,
		"retention_days":       request.RetentionDays,
		"pixel_id":             request.PixelID,
		"prefill":              request.Prefill,
		"rule":                 request.Rule,
	}

	params.SetString("subtype", request.Subtype)

	return c.create(ctx, path, params)
}

// CreateLookalike creates a lookalike audience seeded from an existing audience.
func (c *AudiencesClient) CreateLookalike(ctx context.Context, request *ads.LookalikeCreateRequest) (*ads.Audience, error) {
	if request == nil || strings.TrimSpace(request.Name) == "" {
		return nil, fmt.Errorf("creating lookalike audience: %w", constants.ErrNameRequired)
	}

	if strings.TrimSpace(request.OriginAudienceID) == "" {
		return nil, fmt.Errorf("creating lookalike audience: %w", constants.ErrSourceAudienceIDReq)
	}

	path, err := c.accountPath(request.AccountID, "customaudiences")
	if err != nil {
		return nil, fmt.Errorf("creating lookalike audience: %w", err)
	}

	return c.create(ctx, path, http.Params{
		"name":               request.Name,
		"subtype":            subtypeLookalike,
		"origin_audience_id": request.OriginAudienceID,
		"description":        request.Description,
		"lookalike_spec":     request.LookalikeSpec,
	})
}

// Update applies a sparse patch and returns the refreshed audience.
func (c *AudiencesClient) Update(
	ctx context.Context,
	audienceID string,
	request *ads.AudienceUpdateRequest,
) (*ads.Audience, error) {
	if request == nil {
		request = &ads.AudienceUpdateRequest{}
	}

	return c.update(ctx, audienceID, http.Params{
		"name":           request.Name,
		"description":    request.Description,
		"retention_days": request.RetentionDays,
		"rule":           request.Rule,
	})
}

// Delete deletes an audience.
func (c *AudiencesClient) Delete(ctx context.Context, audienceID string) error {
	return c.delete(ctx, audienceID)
}
