package ads

import (
	"context"
	"time"
)

// AccountsClient reads ad accounts.
type AccountsClient interface {
	List(ctx context.Context, opts *ListOptions) (*ListResponse[AdAccount], error)
	Get(ctx context.Context, accountID string, fields []string) (*AdAccount, error)
}

// BusinessesClient reads business managers.
type BusinessesClient interface {
	List(ctx context.Context, opts *ListOptions) (*ListResponse[Business], error)
	Get(ctx context.Context, businessID string, fields []string) (*Business, error)
	ListAdAccounts(ctx context.Context, businessID string, opts *ListOptions) (*ListResponse[AdAccount], error)
}

// CampaignsClient manages campaigns.
type CampaignsClient interface {
	List(ctx context.Context, opts *CampaignListOptions) (*ListResponse[Campaign], error)
	Get(ctx context.Context, campaignID string, fields []string) (*Campaign, error)
	Create(ctx context.Context, request *CampaignCreateRequest) (*Campaign, error)
	Update(ctx context.Context, campaignID string, request *CampaignUpdateRequest) (*Campaign, error)
	Delete(ctx context.Context, campaignID string) error
}

// AdSetsClient manages ad sets.
type AdSetsClient interface {
	List(ctx context.Context, opts *AdSetListOptions) (*ListResponse[AdSet], error)
	Get(ctx context.Context, adSetID string, fields []string) (*AdSet, error)
	Create(ctx context.Context, request *AdSetCreateRequest) (*AdSet, error)
	Update(ctx context.Context, adSetID string, request *AdSetUpdateRequest) (*AdSet, error)
	Delete(ctx context.Context, adSetID string) error
}

// AdsClient manages ads.
type AdsClient interface {
	List(ctx context.Context, opts *AdListOptions) (*ListResponse[Ad], error)
	Get(ctx context.Context, adID string, fields []string) (*Ad, error)
	Create(ctx context.Context, request *AdCreateRequest) (*Ad, error)
	Update(ctx context.Context, adID string, request *AdUpdateRequest) (*Ad, error)
	Delete(ctx context.Context, adID string) error
}

// CreativesClient manages ad creatives.
type CreativesClient interface {
	List(ctx context.Context, accountID string, opts *ListOptions) (*ListResponse[Creative], error)
	Get(ctx context.Context, creativeID string, fields []string) (*Creative, error)
	Create(ctx context.Context, request *CreativeCreateRequest) (*Creative, error)
	Update(ctx context.Context, creativeID string, request *CreativeUpdateRequest) (*Creative, error)
	Delete(ctx context.Context, creativeID string) error
}

// ImagesClient uploads and lists ad images.
type ImagesClient interface {
	List(ctx context.Context, accountID string, opts *ListOptions) (*ListResponse[AdImage], error)
	Upload(ctx context.Context, request *ImageUploadRequest) (*AdImage, error)
}

// AudiencesClient manages custom and lookalike audiences.
type AudiencesClient interface {
	List(ctx context.Context, accountID string, opts *ListOptions) (*ListResponse[Audience], error)
	Get(ctx context.Context, audienceID string, fields []string) (*Audience, error)
	Create(ctx context.Context, request *AudienceCreateRequest) (*Audience, error)
	CreateLookalike(ctx context.Context, request *LookalikeCreateRequest) (*Audience, error)
	Update(ctx context.Context, audienceID string, request *AudienceUpdateRequest) (*Audience, error)
	Delete(ctx context.Context, audienceID string) error
}

// PixelsClient manages pixels.
type PixelsClient interface {
	List(ctx context.Context, accountID string, opts *ListOptions) (*ListResponse[Pixel], error)
	Get(ctx context.Context, pixelID string, fields []string) (*Pixel, error)
	Create(ctx context.Context, request *PixelCreateRequest) (*Pixel, error)
	Update(ctx context.Context, pixelID string, request *PixelUpdateRequest) (*Pixel, error)
}

// CatalogsClient manages product catalogs.
type CatalogsClient interface {
	List(ctx context.Context, businessID string, opts *ListOptions) (*ListResponse[Catalog], error)
	Get(ctx context.Context, catalogID string, fields []string) (*Catalog, error)
	Create(ctx context.Context, request *CatalogCreateRequest) (*Catalog, error)
	Delete(ctx context.Context, catalogID string) error
}

// InsightsClient reads performance reports.
type InsightsClient interface {
	Get(ctx context.Context, request *InsightsRequest) (*ListResponse[InsightsRecord], error)
}

// Client groups the entity clients of one credential-bound API client.
type Client interface {
	Accounts() AccountsClient
	Businesses() BusinessesClient
	Campaigns() CampaignsClient
	AdSets() AdSetsClient
	Ads() AdsClient
	Creatives() CreativesClient
	Images() ImagesClient
	Audiences() AudiencesClient
	Pixels() PixelsClient
	Catalogs() CatalogsClient
	Insights() InsightsClient

	// Credentials returns the bundle the client is bound to.
	Credentials() Credentials
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a Client.
//
// A Config is built once per inbound call around that call's Credentials.
// Zero values fall back to package defaults: BaseURL https://graph.facebook.com,
// HTTPTimeout 30s, DefaultPageSize 25, MaxPageSize 100.
//
// The client never retries. Failures carry a Retryable flag (see IsRetryable)
// and callers decide whether to try again.
type Config struct {
	// Credentials: the caller's token and optional scoping ids. AccessToken is required.
	Credentials Credentials

	// BaseURL: upstream host without version, e.g. "https://graph.facebook.com".
	BaseURL string
	// HTTPTimeout: per-request timeout. Context deadlines also apply.
	HTTPTimeout time.Duration
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
	// Debug: logs every request and response when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// Interceptors: optional hooks run around every request.
	Interceptors *InterceptorChain

	// DefaultPageSize: list page size when the caller gives none.
	DefaultPageSize int
	// MaxPageSize: upper bound applied to caller page sizes.
	MaxPageSize int
}
