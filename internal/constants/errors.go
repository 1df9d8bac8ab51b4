package constants

import "errors"

// Configuration errors.
var (
	ErrInvalidBaseURL    = errors.New("base URL must use http or https")
	ErrInvalidPageSize   = errors.New("page size must not be negative")
	ErrInvalidAPIVersion = errors.New("API version must look like v<major>.<minor>")
)

// Operation errors.
var (
	ErrIDRequired          = errors.New("id is required")
	ErrNameRequired        = errors.New("name is required")
	ErrObjectiveRequired   = errors.New("objective is required")
	ErrCampaignIDRequired  = errors.New("campaign id is required")
	ErrAdSetIDRequired     = errors.New("ad set id is required")
	ErrCreativeRequired    = errors.New("creative is required")
	ErrBusinessIDRequired  = errors.New("business id is required")
	ErrImageBytesRequired  = errors.New("image bytes are required")
	ErrSourceAudienceIDReq = errors.New("origin audience id is required for a lookalike audience")
	ErrUnexpectedResponse  = errors.New("unexpected response from upstream")
)

// CLI errors.
var (
	ErrUnknownOutputFormat = errors.New("unknown output format")
	ErrTokenPromptNoTTY    = errors.New("cannot prompt for a token: stdin is not a terminal")
	ErrInvalidJSONFlag     = errors.New("flag value is not valid JSON")
	ErrTimeRangeIncomplete = errors.New("--since and --until must be given together")
)
