// Package present turns operation results and failures into the envelope
// returned to callers, optionally rendering results as text tables.
package present

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/metaads-client/internal/constants"
	"github.com/fivetwenty-io/metaads-client/pkg/ads"
)

// ContentTypeText is the only content block type produced.
const ContentTypeText = "text"

// KindTransport marks failures that never reached the upstream.
const KindTransport ads.Kind = "transport"

// CodeNetwork is the machine code reported with KindTransport.
const CodeNetwork = "NETWORK_ERROR"

// Content is one block of envelope text.
type Content struct {
	Type string `json:"type" yaml:"type"`
	Text string `json:"text" yaml:"text"`
}

// Envelope is the caller-facing wrapper around a result or a failure.
type Envelope struct {
	Content           []Content `json:"content"                     yaml:"content"`
	StructuredContent any       `json:"structuredContent,omitempty" yaml:"structured_content,omitempty"`
	IsError           bool      `json:"isError,omitempty"           yaml:"is_error,omitempty"`
}

// Text returns the concatenated text blocks.
func (e *Envelope) Text() string {
	parts := make([]string, 0, len(e.Content))
	for _, content := range e.Content {
		parts = append(parts, content.Text)
	}

	return strings.Join(parts, "\n")
}

// ErrorPayload is the structured diagnostic attached to failure envelopes.
type ErrorPayload struct {
	Kind              ads.Kind            `json:"kind"                          yaml:"kind"`
	Message           string              `json:"message"                       yaml:"message"`
	Code              string              `json:"code"                          yaml:"code"`
	StatusCode        int                 `json:"status_code,omitempty"         yaml:"status_code,omitempty"`
	Retryable         bool                `json:"retryable"                     yaml:"retryable"`
	RetryAfterSeconds *int                `json:"retry_after_seconds,omitempty" yaml:"retry_after_seconds,omitempty"`
	UpstreamCode      *int                `json:"upstream_code,omitempty"       yaml:"upstream_code,omitempty"`
	Subcode           *int                `json:"error_subcode,omitempty"       yaml:"error_subcode,omitempty"`
	Type              string              `json:"type,omitempty"                yaml:"type,omitempty"`
	UserTitle         string              `json:"user_title,omitempty"          yaml:"user_title,omitempty"`
	UserMessage       string              `json:"user_message,omitempty"        yaml:"user_message,omitempty"`
	TraceID           string              `json:"trace_id,omitempty"            yaml:"trace_id,omitempty"`
	FieldErrors       map[string][]string `json:"field_errors,omitempty"        yaml:"field_errors,omitempty"`
}

// Success wraps value. Format selects json (the default), yaml or table; a
// table is derived from the value's entity kind and replaces the structured
// result. A nil value, as returned by deletes, is reported as success:true.
func Success(value any, format string) (*Envelope, error) {
	if value == nil {
		value = ads.SuccessResponse{Success: true}
	}

	switch format {
	case "", constants.FormatJSON:
		var buf bytes.Buffer

		encoder := json.NewEncoder(&buf)
		encoder.SetIndent("", "  ")

		err := encoder.Encode(value)
		if err != nil {
			return nil, fmt.Errorf("encoding result: %w", err)
		}

		return textEnvelope(strings.TrimRight(buf.String(), "\n"), value), nil
	case constants.FormatYAML:
		encoded, err := yaml.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("encoding result: %w", err)
		}

		return textEnvelope(strings.TrimRight(string(encoded), "\n"), value), nil
	case constants.FormatTable:
		text, err := Table(value)
		if err != nil {
			return nil, err
		}

		return textEnvelope(text, nil), nil
	default:
		return nil, fmt.Errorf("%w: %q", constants.ErrUnknownOutputFormat, format)
	}
}

func textEnvelope(text string, structured any) *Envelope {
	return &Envelope{
		Content:           []Content{{Type: ContentTypeText, Text: text}},
		StructuredContent: structured,
	}
}

// Failure wraps err into an error envelope. Taxonomy errors keep their
// upstream details; transport failures and plain errors are reported with a
// synthetic kind and code.
func Failure(err error) *Envelope {
	payload := Payload(err)

	return &Envelope{
		Content:           []Content{{Type: ContentTypeText, Text: ErrorText(err)}},
		StructuredContent: payload,
		IsError:           true,
	}
}

// ErrorText is the human-readable failure line: the message, the upstream
// user-facing message when it adds something, and a retryable marker.
func ErrorText(err error) string {
	if err == nil {
		return ""
	}

	text := err.Error()

	if apiErr, ok := ads.AsError(err); ok {
		text = apiErr.Message

		if apiErr.UserMessage != "" && apiErr.UserMessage != apiErr.Message {
			text += ": " + apiErr.UserMessage
		}
	}

	if ads.IsRetryable(err) {
		text += constants.RetryableSuffix
	}

	return text
}

// Payload builds the structured diagnostic for err.
func Payload(err error) *ErrorPayload {
	if err == nil {
		return nil
	}

	apiErr, ok := ads.AsError(err)
	if !ok {
		payload := &ErrorPayload{
			Kind:      ads.KindGeneric,
			Message:   err.Error(),
			Code:      ads.CodeUnknown,
			Retryable: ads.IsRetryable(err),
		}

		if ads.IsTransport(err) {
			payload.Kind = KindTransport
			payload.Code = CodeNetwork
		}

		return payload
	}

	payload := &ErrorPayload{
		Kind:         apiErr.Kind,
		Message:      apiErr.Message,
		Code:         apiErr.Code,
		StatusCode:   apiErr.StatusCode,
		Retryable:    ads.IsRetryable(apiErr),
		UpstreamCode: apiErr.UpstreamCode,
		Subcode:      apiErr.Subcode,
		Type:         apiErr.Type,
		UserTitle:    apiErr.UserTitle,
		UserMessage:  apiErr.UserMessage,
		TraceID:      apiErr.TraceID,
	}

	switch apiErr.Kind {
	case ads.KindRateLimit:
		seconds := apiErr.RetryAfterSeconds()
		payload.RetryAfterSeconds = &seconds
	case ads.KindValidation:
		payload.FieldErrors = apiErr.FieldErrors
	}

	return payload
}
