package constants

import "time"

// Upstream API defaults.
const (
	// DefaultBaseURL is the upstream Graph API host.
	DefaultBaseURL = "https://graph.facebook.com"

	// DefaultAPIVersion is used when the credentials carry no version override.
	DefaultAPIVersion = "v22.0"

	// AccountIDPrefix namespaces ad account ids in upstream paths.
	AccountIDPrefix = "act_"

	// AccessTokenParam is the query (or multipart) field carrying the bearer token.
	AccessTokenParam = "access_token"

	// AppSecretProofParam carries the HMAC of the token keyed by the app secret.
	AppSecretProofParam = "appsecret_proof"

	// CredentialSource names where the access token is expected to come from.
	CredentialSource = "META_ACCESS_TOKEN (or an Authorization: Bearer header)"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// UploadHTTPTimeout is used for multipart uploads.
	UploadHTTPTimeout = 2 * time.Minute
)

// Rate limiting.
const (
	// DefaultRetryAfter is assumed when the upstream does not say how long to wait.
	DefaultRetryAfter = 60 * time.Second

	// DefaultRetryAfterSeconds is DefaultRetryAfter in whole seconds.
	DefaultRetryAfterSeconds = 60
)

// Pagination limits.
const (
	// DefaultPageSize is the page size used when the caller gives none.
	DefaultPageSize = 25

	// MaxPageSize caps caller-supplied page sizes.
	MaxPageSize = 100
)

// Entity defaults.
const (
	// StatusPaused is applied to new campaigns, ad sets and ads unless overridden.
	StatusPaused = "PAUSED"

	// SpecialAdCategoryNone is the default special_ad_categories entry.
	SpecialAdCategoryNone = "NONE"

	// FilterOperatorEqual is the filtering operator used for parent-id filters.
	FilterOperatorEqual = "EQUAL"
)

// Money formatting.
const (
	// MinorUnitsPerMajor converts cents to dollars.
	MinorUnitsPerMajor = 100

	// CurrencySymbol is prefixed to rendered monetary values.
	CurrencySymbol = "$"
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "-"

	// RetryableSuffix is appended to error text when the failure is retryable.
	RetryableSuffix = " (retryable)"
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for tabular output format.
	FormatTable = "table"
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750
)
