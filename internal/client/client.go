package client

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/fivetwenty-io/metaads-client/internal/constants"
	"github.com/fivetwenty-io/metaads-client/internal/http"
	"github.com/fivetwenty-io/metaads-client/pkg/ads"
)

var apiVersionPattern = regexp.MustCompile(`^v\d+\.\d+$`)

// Client implements the ads.Client interface. It is bound to one set of
// credentials and is meant to live for a single inbound call.
type Client struct {
	httpClient  *http.Client
	credentials ads.Credentials

	accounts   *AccountsClient
	businesses *BusinessesClient
	campaigns  *CampaignsClient
	adSets     *AdSetsClient
	ads        *AdsClient
	creatives  *CreativesClient
	images     *ImagesClient
	audiences  *AudiencesClient
	pixels     *PixelsClient
	catalogs   *CatalogsClient
	insights   *InsightsClient
}

// New creates a client from config. A missing access token fails with an
// authentication error before any request is sent.
func New(config *ads.Config) (*Client, error) {
	if config == nil {
		config = &ads.Config{}
	}

	if !config.Credentials.HasToken() {
		return nil, ads.NewMissingTokenError()
	}

	err := validateConfig(config)
	if err != nil {
		return nil, err
	}

	pages := defaultPageLimits()
	if config.DefaultPageSize > 0 {
		pages.defaultSize = config.DefaultPageSize
	}

	if config.MaxPageSize > 0 {
		pages.maxSize = config.MaxPageSize
	}

	httpClient := http.NewClient(config.BaseURL, config.Credentials, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient:  httpClient,
		credentials: config.Credentials,
	}
	client.initializeEntityClients(pages)

	return client, nil
}

func validateConfig(config *ads.Config) error {
	if config.BaseURL != "" {
		parsed, err := url.Parse(config.BaseURL)
		if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
			return fmt.Errorf("%w: %q", constants.ErrInvalidBaseURL, config.BaseURL)
		}
	}

	if config.DefaultPageSize < 0 || config.MaxPageSize < 0 {
		return constants.ErrInvalidPageSize
	}

	version := strings.TrimSpace(config.Credentials.APIVersion)
	if version != "" && !apiVersionPattern.MatchString(version) {
		return fmt.Errorf("%w: %q", constants.ErrInvalidAPIVersion, version)
	}

	return nil
}

func createHTTPClientOptions(config *ads.Config) []http.Option {
	var opts []http.Option

	if config.Logger != nil {
		opts = append(opts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.Interceptors != nil {
		opts = append(opts, http.WithInterceptors(config.Interceptors))
	}

	return opts
}

func (c *Client) initializeEntityClients(pages pageLimits) {
	c.accounts = NewAccountsClient(c.httpClient, pages)
	c.businesses = NewBusinessesClient(c.httpClient, pages)
	c.campaigns = NewCampaignsClient(c.httpClient, pages)
	c.adSets = NewAdSetsClient(c.httpClient, pages)
	c.ads = NewAdsClient(c.httpClient, pages)
	c.creatives = NewCreativesClient(c.httpClient, pages)
	c.images = NewImagesClient(c.httpClient, pages)
	c.audiences = NewAudiencesClient(c.httpClient, pages)
	c.pixels = NewPixelsClient(c.httpClient, pages)
	c.catalogs = NewCatalogsClient(c.httpClient, pages)
	c.insights = NewInsightsClient(c.httpClient, pages)
}

// Credentials returns the credentials the client is bound to.
func (c *Client) Credentials() ads.Credentials {
	return c.credentials
}

// Accounts implements ads.Client.
func (c *Client) Accounts() ads.AccountsClient {
	return c.accounts
}

// Businesses implements ads.Client.
func (c *Client) Businesses() ads.BusinessesClient {
	return c.businesses
}

// Campaigns implements ads.Client.
func (c *Client) Campaigns() ads.CampaignsClient {
	return c.campaigns
}

// AdSets implements ads.Client.
func (c *Client) AdSets() ads.AdSetsClient {
	return c.adSets
}

// Ads implements ads.Client.
func (c *Client) Ads() ads.AdsClient {
	return c.ads
}

// Creatives implements ads.Client.
func (c *Client) Creatives() ads.CreativesClient {
	return c.creatives
}

// Images implements ads.Client.
func (c *Client) Images() ads.ImagesClient {
	return c.images
}

// Audiences implements ads.Client.
func (c *Client) Audiences() ads.AudiencesClient {
	return c.audiences
}

// Pixels implements ads.Client.
func (c *Client) Pixels() ads.PixelsClient {
	return c.pixels
}

// Catalogs implements ads.Client.
func (c *Client) Catalogs() ads.CatalogsClient {
	return c.catalogs
}

// Insights implements ads.Client.
func (c *Client) Insights() ads.InsightsClient {
	return c.insights
}
