// Package adsclient provides the main entry point for creating Graph API ad clients
package adsclient

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/fivetwenty-io/metaads-client/internal/client"
	"github.com/fivetwenty-io/metaads-client/pkg/ads"
)

// Environment variables read by CredentialsFromEnv.
const (
	EnvAccessToken = "META_ACCESS_TOKEN"
	EnvAccountID   = "META_ACCOUNT_ID"
	EnvBusinessID  = "META_BUSINESS_ID"
	EnvAppID       = "META_APP_ID"
	EnvAppSecret   = "META_APP_SECRET"
	EnvAPIVersion  = "META_API_VERSION"
)

// Request headers read by CredentialsFromHeader, next to Authorization.
const (
	HeaderAccountID  = "X-Meta-Account-Id"
	HeaderBusinessID = "X-Meta-Business-Id"
	HeaderAppID      = "X-Meta-App-Id"
	HeaderAppSecret  = "X-Meta-App-Secret"
	HeaderAPIVersion = "X-Meta-Api-Version"
)

var (
	trailingVersion = regexp.MustCompile(`/v\d+\.\d+$`)
	bareVersion     = regexp.MustCompile(`^\d+\.\d+$`)
)

// New creates a credential-bound client. The config is copied, never
// modified. A missing access token fails before any request is sent.
func New(config *ads.Config) (ads.Client, error) {
	var normalized ads.Config
	if config != nil {
		normalized = *config
	}

	normalized.BaseURL = normalizeBaseURL(normalized.BaseURL)
	normalized.Credentials = normalizeCredentials(normalized.Credentials)

	client, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return client, nil
}

// NewWithToken creates a client from a token and an optional default ad account.
func NewWithToken(token, accountID string) (ads.Client, error) {
	return New(&ads.Config{
		Credentials: ads.Credentials{
			AccessToken: token,
			AccountID:   accountID,
		},
	})
}

// normalizeBaseURL trims trailing slashes and any version segment, and adds
// https:// when no scheme is given. An empty URL stays empty so the default applies.
func normalizeBaseURL(baseURL string) string {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return ""
	}

	baseURL = trailingVersion.ReplaceAllString(baseURL, "")

	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	return baseURL
}

func normalizeCredentials(credentials ads.Credentials) ads.Credentials {
	credentials.AccessToken = strings.TrimSpace(credentials.AccessToken)
	credentials.AccountID = strings.TrimSpace(credentials.AccountID)
	credentials.BusinessID = strings.TrimSpace(credentials.BusinessID)
	credentials.APIVersion = strings.TrimSpace(credentials.APIVersion)

	if bareVersion.MatchString(credentials.APIVersion) {
		credentials.APIVersion = "v" + credentials.APIVersion
	}

	return credentials
}

// CredentialsFromEnv builds credentials from the META_* variables using getenv,
// typically os.Getenv.
func CredentialsFromEnv(getenv func(string) string) ads.Credentials {
	return ads.Credentials{
		AccessToken: getenv(EnvAccessToken),
		AccountID:   getenv(EnvAccountID),
		BusinessID:  getenv(EnvBusinessID),
		AppID:       getenv(EnvAppID),
		AppSecret:   getenv(EnvAppSecret),
		APIVersion:  getenv(EnvAPIVersion),
	}
}

// CredentialsFromHeader builds credentials from inbound request metadata: a
// bearer Authorization header plus the optional X-Meta-* scoping headers.
func CredentialsFromHeader(header http.Header) ads.Credentials {
	token := ""

	authorization := strings.TrimSpace(header.Get("Authorization"))
	if scheme, value, ok := strings.Cut(authorization, " "); ok && strings.EqualFold(scheme, "Bearer") {
		token = strings.TrimSpace(value)
	}

	return ads.Credentials{
		AccessToken: token,
		AccountID:   header.Get(HeaderAccountID),
		BusinessID:  header.Get(HeaderBusinessID),
		AppID:       header.Get(HeaderAppID),
		AppSecret:   header.Get(HeaderAppSecret),
		APIVersion:  header.Get(HeaderAPIVersion),
	}
}
