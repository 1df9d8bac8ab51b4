package ads

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/fivetwenty-io/metaads-client/internal/constants"
)

// Kind discriminates the variants of Error.
type Kind string

// Error kinds.
const (
	KindGeneric        Kind = "generic"
	KindRateLimit      Kind = "rate_limit"
	KindAuthentication Kind = "authentication"
	KindPermission     Kind = "permission"
	KindNotFound       Kind = "not_found"
	KindValidation     Kind = "validation"
)

// Machine codes carried by Error.Code.
const (
	CodeUnknown           = "UNKNOWN_ERROR"
	CodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	CodeAuthentication    = "AUTHENTICATION_ERROR"
	CodePermissionDenied  = "PERMISSION_DENIED"
	CodeNotFound          = "NOT_FOUND"
	CodeValidation        = "VALIDATION_ERROR"
)

// Upstream numeric error codes that drive classification.
const (
	UpstreamCodeInvalidToken      = 190
	UpstreamCodePermissionDenied  = 10
	UpstreamCodePermissionMin     = 200
	UpstreamCodePermissionMax     = 300
	UpstreamCodeInvalidParameter  = 100
	UpstreamCodeTooManyCalls      = 4
	UpstreamCodeUserRequestLimit  = 17
	UpstreamCodePageRequestLimit  = 32
	UpstreamCodeCallsWithinWindow = 613
)

// Static errors for err113 compliance.
var (
	// ErrTransport marks failures that happened before any HTTP status was received.
	ErrTransport = errors.New("transport failure")

	// ErrAccountIDRequired is returned when neither the call nor the credentials name an account.
	ErrAccountIDRequired = errors.New("ad account id is required (pass one or set a default account)")
)

// Error is the single structured failure type returned for upstream errors.
// Kind selects the variant; RetryAfter is only meaningful for KindRateLimit and
// FieldErrors only for KindValidation.
type Error struct {
	Kind       Kind   `json:"kind"                  yaml:"kind"`
	Message    string `json:"message"               yaml:"message"`
	StatusCode int    `json:"status_code,omitempty" yaml:"status_code,omitempty"`
	Code       string `json:"code"                  yaml:"code"`
	Retryable  bool   `json:"retryable"             yaml:"retryable"`

	UpstreamCode *int   `json:"upstream_code,omitempty" yaml:"upstream_code,omitempty"`
	Subcode      *int   `json:"error_subcode,omitempty" yaml:"error_subcode,omitempty"`
	Type         string `json:"type,omitempty"          yaml:"type,omitempty"`
	Transient    bool   `json:"is_transient,omitempty"  yaml:"is_transient,omitempty"`
	UserTitle    string `json:"user_title,omitempty"    yaml:"user_title,omitempty"`
	UserMessage  string `json:"user_message,omitempty"  yaml:"user_message,omitempty"`
	TraceID      string `json:"trace_id,omitempty"      yaml:"trace_id,omitempty"`

	RetryAfter  time.Duration       `json:"-"                      yaml:"-"`
	FieldErrors map[string][]string `json:"field_errors,omitempty" yaml:"field_errors,omitempty"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	var builder strings.Builder

	builder.WriteString(e.Message)

	if e.UpstreamCode != nil {
		fmt.Fprintf(&builder, " (code: %d", *e.UpstreamCode)

		if e.Subcode != nil {
			fmt.Fprintf(&builder, ", subcode: %d", *e.Subcode)
		}

		builder.WriteString(")")
	}

	if e.StatusCode != 0 {
		fmt.Fprintf(&builder, " [HTTP %d]", e.StatusCode)
	}

	return builder.String()
}

// RetryAfterSeconds returns RetryAfter rounded down to whole seconds.
func (e *Error) RetryAfterSeconds() int {
	return int(e.RetryAfter / time.Second)
}

// NewGenericError builds a Generic error.
func NewGenericError(message string, statusCode int, code string, retryable bool) *Error {
	return &Error{
		Kind:       KindGeneric,
		Message:    message,
		StatusCode: statusCode,
		Code:       code,
		Retryable:  retryable,
	}
}

// NewRateLimitError builds a RateLimit error. A negative retryAfter falls back
// to the default wait; zero means the upstream allows an immediate retry.
func NewRateLimitError(message string, statusCode int, retryAfter time.Duration) *Error {
	if retryAfter < 0 {
		retryAfter = constants.DefaultRetryAfter
	}

	return &Error{
		Kind:       KindRateLimit,
		Message:    message,
		StatusCode: statusCode,
		Code:       CodeRateLimitExceeded,
		Retryable:  true,
		RetryAfter: retryAfter,
	}
}

// NewAuthenticationError builds an Authentication error.
func NewAuthenticationError(message string, statusCode int) *Error {
	return &Error{
		Kind:       KindAuthentication,
		Message:    message,
		StatusCode: statusCode,
		Code:       CodeAuthentication,
	}
}

// NewPermissionError builds a Permission error.
func NewPermissionError(message string, statusCode int) *Error {
	return &Error{
		Kind:       KindPermission,
		Message:    message,
		StatusCode: statusCode,
		Code:       CodePermissionDenied,
	}
}

// NewNotFoundError builds a NotFound error.
func NewNotFoundError(message string, statusCode int) *Error {
	return &Error{
		Kind:       KindNotFound,
		Message:    message,
		StatusCode: statusCode,
		Code:       CodeNotFound,
	}
}

// NewValidationError builds a Validation error. A nil fieldErrors becomes an empty map.
func NewValidationError(message string, statusCode int, fieldErrors map[string][]string) *Error {
	if fieldErrors == nil {
		fieldErrors = map[string][]string{}
	}

	return &Error{
		Kind:        KindValidation,
		Message:     message,
		StatusCode:  statusCode,
		Code:        CodeValidation,
		FieldErrors: fieldErrors,
	}
}

// NewMissingTokenError is returned before any request when no access token was supplied.
func NewMissingTokenError() *Error {
	return NewAuthenticationError("access token is required: set "+constants.CredentialSource, 0)
}

// upstreamError holds the fields of the "error" object of an upstream failure body.
type upstreamError struct {
	Message         string
	Type            string
	Code            *int
	Subcode         *int
	IsTransient     bool
	UserTitle       string
	UserMessage     string
	TraceID         string
	ErrorData       json.RawMessage
	BlameFieldSpecs [][]string
}

type errorBody struct {
	Error json.RawMessage `json:"error"`
}

// Classify maps an upstream failure body and HTTP status to an Error. It never
// fails: a body without an error object yields Generic/UNKNOWN_ERROR. Fields of
// the error object are decoded one by one, so a field of an unexpected type
// is dropped without losing the others.
func Classify(body []byte, statusCode int) *Error {
	var parsed errorBody

	err := json.Unmarshal(body, &parsed)
	if err != nil {
		return NewGenericError(unknownMessage(statusCode), statusCode, CodeUnknown, false)
	}

	upstream, ok := decodeUpstreamError(parsed.Error)
	if !ok {
		return NewGenericError(unknownMessage(statusCode), statusCode, CodeUnknown, false)
	}

	return classifyUpstream(upstream, statusCode)
}

func decodeUpstreamError(raw json.RawMessage) (*upstreamError, bool) {
	var fields map[string]json.RawMessage

	err := json.Unmarshal(raw, &fields)
	if err != nil || fields == nil {
		return nil, false
	}

	upstream := &upstreamError{
		Message:     stringField(fields["message"]),
		Type:        stringField(fields["type"]),
		Code:        intField(fields["code"]),
		Subcode:     intField(fields["error_subcode"]),
		IsTransient: boolField(fields["is_transient"]),
		UserTitle:   stringField(fields["error_user_title"]),
		UserMessage: stringField(fields["error_user_msg"]),
		TraceID:     stringField(fields["fbtrace_id"]),
		ErrorData:   fields["error_data"],
	}

	_ = json.Unmarshal(fields["blame_field_specs"], &upstream.BlameFieldSpecs)

	return upstream, true
}

// stringField decodes a JSON string. Numbers keep their literal text; other
// types yield "".
func stringField(raw json.RawMessage) string {
	var value string
	if json.Unmarshal(raw, &value) == nil {
		return value
	}

	var number json.Number
	if json.Unmarshal(raw, &number) == nil {
		return number.String()
	}

	return ""
}

// intField decodes an integer sent as a JSON number or a numeric string.
func intField(raw json.RawMessage) *int {
	var number json.Number
	if json.Unmarshal(raw, &number) != nil {
		var text string
		if json.Unmarshal(raw, &text) != nil {
			return nil
		}

		number = json.Number(strings.TrimSpace(text))
	}

	value, err := strconv.Atoi(number.String())
	if err != nil {
		return nil
	}

	return &value
}

func boolField(raw json.RawMessage) bool {
	var value bool
	if json.Unmarshal(raw, &value) == nil {
		return value
	}

	parsed, err := strconv.ParseBool(stringField(raw))

	return err == nil && parsed
}

func classifyUpstream(upstream *upstreamError, statusCode int) *Error {
	message := upstream.Message
	if message == "" {
		message = unknownMessage(statusCode)
	}

	var result *Error

	code := -1
	if upstream.Code != nil {
		code = *upstream.Code
	}

	switch {
	case code == UpstreamCodeInvalidToken:
		result = NewAuthenticationError(message, statusCode)
	case code == UpstreamCodePermissionDenied ||
		(code >= UpstreamCodePermissionMin && code < UpstreamCodePermissionMax):
		result = NewPermissionError(message, statusCode)
	case isRateLimitCode(code):
		// The body never carries a usable wait hint, so the default applies here
		// even when a Retry-After header was sent.
		result = NewRateLimitError(message, statusCode, constants.DefaultRetryAfter)
	case code == UpstreamCodeInvalidParameter:
		result = NewValidationError(message, statusCode, fieldErrors(upstream))
	case upstream.Code == nil:
		result = NewGenericError(message, statusCode, CodeUnknown, false)
	default:
		result = NewGenericError(message, statusCode, strconv.Itoa(code), false)
	}

	result.UpstreamCode = upstream.Code
	result.Subcode = upstream.Subcode
	result.Type = upstream.Type
	result.Transient = upstream.IsTransient
	result.UserTitle = upstream.UserTitle
	result.UserMessage = upstream.UserMessage
	result.TraceID = upstream.TraceID

	return result
}

func isRateLimitCode(code int) bool {
	switch code {
	case UpstreamCodeTooManyCalls, UpstreamCodeUserRequestLimit,
		UpstreamCodePageRequestLimit, UpstreamCodeCallsWithinWindow:
		return true
	default:
		return false
	}
}

// fieldErrors extracts per-field messages from error_data (an object, or an
// object encoded as a JSON string) and from blame_field_specs.
func fieldErrors(upstream *upstreamError) map[string][]string {
	fields := map[string][]string{}

	data := upstream.ErrorData
	if len(data) > 0 {
		var encoded string
		if json.Unmarshal(data, &encoded) == nil {
			data = json.RawMessage(encoded)
		}

		var raw map[string]json.RawMessage
		if json.Unmarshal(data, &raw) == nil {
			for field, value := range raw {
				var single string
				if json.Unmarshal(value, &single) == nil {
					fields[field] = append(fields[field], single)

					continue
				}

				var many []string
				if json.Unmarshal(value, &many) == nil {
					fields[field] = append(fields[field], many...)
				}
			}
		}
	}

	blameMessage := upstream.UserMessage
	if blameMessage == "" {
		blameMessage = upstream.Message
	}

	for _, spec := range upstream.BlameFieldSpecs {
		if len(spec) == 0 {
			continue
		}

		field := strings.Join(spec, ".")
		fields[field] = append(fields[field], blameMessage)
	}

	return fields
}

func unknownMessage(statusCode int) string {
	if statusCode == 0 {
		return "unknown error"
	}

	text := http.StatusText(statusCode)
	if text == "" {
		return fmt.Sprintf("unknown error (HTTP %d)", statusCode)
	}

	return fmt.Sprintf("unknown error (HTTP %d %s)", statusCode, text)
}

// AsError returns the *Error in err's chain, if any.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return nil, false
}

func isKind(err error, kind Kind) bool {
	apiErr, ok := AsError(err)

	return ok && apiErr.Kind == kind
}

// IsRateLimited checks if the error is a rate limit error.
func IsRateLimited(err error) bool {
	return isKind(err, KindRateLimit)
}

// IsAuthentication checks if the error is an authentication error.
func IsAuthentication(err error) bool {
	return isKind(err, KindAuthentication)
}

// IsPermission checks if the error is a permission error.
func IsPermission(err error) bool {
	return isKind(err, KindPermission)
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return isKind(err, KindNotFound)
}

// IsValidation checks if the error is a validation error.
func IsValidation(err error) bool {
	return isKind(err, KindValidation)
}

// IsTransport checks if the error happened before any HTTP status was received.
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}

// networkHints are matched case-insensitively against messages of errors
// outside the taxonomy.
var networkHints = []string{
	"econnreset",
	"connection reset",
	"etimedout",
	"timeout",
	"timed out",
	"network",
}

// IsRetryable reports whether retrying err may succeed. Taxonomy errors are
// retryable when they are RateLimit or a Generic flagged retryable. For any
// other error the message is matched against network-level phrases; that is a
// heuristic and can misjudge errors whose text merely mentions them.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	apiErr, ok := AsError(err)
	if ok {
		switch apiErr.Kind {
		case KindRateLimit:
			return true
		case KindGeneric:
			return apiErr.Retryable
		default:
			return false
		}
	}

	message := strings.ToLower(err.Error())
	for _, hint := range networkHints {
		if strings.Contains(message, hint) {
			return true
		}
	}

	return false
}
