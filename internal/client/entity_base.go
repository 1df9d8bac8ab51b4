package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/metaads-client/internal/constants"
	"github.com/fivetwenty-io/metaads-client/internal/http"
	"github.com/fivetwenty-io/metaads-client/pkg/ads"
)

// pageLimits bounds list page sizes.
type pageLimits struct {
	defaultSize int
	maxSize     int
}

func defaultPageLimits() pageLimits {
	return pageLimits{defaultSize: constants.DefaultPageSize, maxSize: constants.MaxPageSize}
}

// clamp maps a caller page size into [1, maxSize]. Non-positive sizes take the default.
func (p pageLimits) clamp(limit int) int {
	if limit <= 0 {
		limit = p.defaultSize
	}

	if limit > p.maxSize {
		limit = p.maxSize
	}

	if limit < 1 {
		limit = 1
	}

	return limit
}

// entityClient holds the operations shared by every entity kind.
type entityClient[T any] struct {
	httpClient    *http.Client
	pages         pageLimits
	noun          string
	plural        string
	defaultFields []string
}

func newEntityClient[T any](
	httpClient *http.Client,
	pages pageLimits,
	noun, plural string,
	defaultFields []string,
) entityClient[T] {
	return entityClient[T]{
		httpClient:    httpClient,
		pages:         pages,
		noun:          noun,
		plural:        plural,
		defaultFields: defaultFields,
	}
}

// fields returns the comma-joined field list, falling back to the defaults.
func (c *entityClient[T]) fields(requested []string) string {
	if len(requested) == 0 {
		requested = c.defaultFields
	}

	return strings.Join(requested, ",")
}

// accountPath resolves the account (explicit, else the credentials default) and
// returns "act_<id>/<edge>".
func (c *entityClient[T]) accountPath(accountID, edge string) (string, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		accountID = strings.TrimSpace(c.httpClient.Credentials().AccountID)
	}

	if accountID == "" {
		return "", ads.ErrAccountIDRequired
	}

	path := ads.NormalizeAccountID(accountID)
	if edge != "" {
		path += "/" + edge
	}

	return path, nil
}

// listParams builds the paging parameters shared by every list call.
func (c *entityClient[T]) listParams(opts *ads.ListOptions) http.Params {
	if opts == nil {
		opts = &ads.ListOptions{}
	}

	params := http.Params{
		"fields": c.fields(opts.Fields),
		"limit":  c.pages.clamp(opts.Limit),
	}

	params.SetString("after", opts.After)
	params.SetString("before", opts.Before)

	return params
}

// get fetches one entity by id. An empty body is reported as NotFound.
func (c *entityClient[T]) get(ctx context.Context, id string, fields []string) (*T, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("getting %s: %w", c.noun, constants.ErrIDRequired)
	}

	resp, err := c.httpClient.Get(ctx, id, http.Params{"fields": c.fields(fields)})
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", c.noun, err)
	}

	if len(resp.Body) == 0 {
		return nil, ads.NewNotFoundError(fmt.Sprintf("%s %s not found", c.noun, id), resp.StatusCode)
	}

	var entity T

	err = json.Unmarshal(resp.Body, &entity)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", c.noun, err)
	}

	return &entity, nil
}

// list fetches one page from path. extra carries filters and is merged over the paging parameters.
func (c *entityClient[T]) list(ctx context.Context, path string, opts *ads.ListOptions, extra http.Params) (*ads.ListResponse[T], error) {
	params := c.listParams(opts)
	for key, value := range extra {
		params[key] = value
	}

	resp, err := c.httpClient.Get(ctx, path, params)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", c.plural, err)
	}

	return decodeList[T](resp, c.noun)
}

// create posts params to path and then fetches the new entity by the returned id.
func (c *entityClient[T]) create(ctx context.Context, path string, params http.Params) (*T, error) {
	resp, err := c.httpClient.Post(ctx, path, params)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", c.noun, err)
	}

	var created ads.IDResponse

	err = json.Unmarshal(resp.Body, &created)
	if err != nil {
		return nil, fmt.Errorf("parsing %s create response: %w", c.noun, err)
	}

	if created.ID == "" {
		return nil, fmt.Errorf("creating %s: %w: no id returned", c.noun, constants.ErrUnexpectedResponse)
	}

	return c.get(ctx, created.ID, nil)
}

// update posts a sparse patch to id and then fetches the refreshed entity. An
// empty patch sends nothing and only fetches.
func (c *entityClient[T]) update(ctx context.Context, id string, params http.Params) (*T, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("updating %s: %w", c.noun, constants.ErrIDRequired)
	}

	values, err := params.Encode()
	if err != nil {
		return nil, fmt.Errorf("updating %s: %w", c.noun, err)
	}

	if len(values) > 0 {
		_, err = c.httpClient.Post(ctx, id, params)
		if err != nil {
			return nil, fmt.Errorf("updating %s: %w", c.noun, err)
		}
	}

	return c.get(ctx, id, nil)
}

// delete removes the entity. No value is returned on success.
func (c *entityClient[T]) delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("deleting %s: %w", c.noun, constants.ErrIDRequired)
	}

	_, err := c.httpClient.Delete(ctx, id, nil)
	if err != nil {
		return fmt.Errorf("deleting %s: %w", c.noun, err)
	}

	return nil
}

func decodeList[T any](resp *http.Response, noun string) (*ads.ListResponse[T], error) {
	result := ads.ListResponse[T]{Data: []T{}}

	if len(resp.Body) == 0 {
		return &result, nil
	}

	err := json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing %s list response: %w", noun, err)
	}

	if result.Data == nil {
		result.Data = []T{}
	}

	return &result, nil
}

// parentFilters builds EQUAL filters for the non-empty parent ids, in order.
func parentFilters(pairs ...string) []ads.Filter {
	var filters []ads.Filter

	for i := 0; i+1 < len(pairs); i += 2 {
		if value := strings.TrimSpace(pairs[i+1]); value != "" {
			filters = append(filters, ads.EqualFilter(pairs[i], value))
		}
	}

	return filters
}

// statusOrPaused returns the caller's status or PAUSED.
func statusOrPaused(status *string) string {
	if status != nil && *status != "" {
		return *status
	}

	return constants.StatusPaused
}
