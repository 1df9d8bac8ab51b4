package ads

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/metaads-client/internal/constants"
)

// Credentials is the per-call credential bundle. It is immutable once built
// and is passed by value; a client bound to it never outlives the call.
type Credentials struct {
	AccessToken string `json:"-"                     yaml:"-"`
	AccountID   string `json:"account_id,omitempty"  yaml:"account_id,omitempty"`
	BusinessID  string `json:"business_id,omitempty" yaml:"business_id,omitempty"`
	AppID       string `json:"app_id,omitempty"      yaml:"app_id,omitempty"`
	AppSecret   string `json:"-"                     yaml:"-"`
	APIVersion  string `json:"api_version,omitempty" yaml:"api_version,omitempty"`
}

// Version returns the API version override, or the default version.
func (c Credentials) Version() string {
	if c.APIVersion != "" {
		return c.APIVersion
	}

	return constants.DefaultAPIVersion
}

// HasToken reports whether an access token is present.
func (c Credentials) HasToken() bool {
	return strings.TrimSpace(c.AccessToken) != ""
}

// Cursors holds the opaque paging tokens. They are threaded through unmodified.
type Cursors struct {
	Before string `json:"before,omitempty" yaml:"before,omitempty"`
	After  string `json:"after,omitempty"  yaml:"after,omitempty"`
}

// Paging represents upstream pagination information.
type Paging struct {
	Cursors  *Cursors `json:"cursors,omitempty"  yaml:"cursors,omitempty"`
	Next     string   `json:"next,omitempty"     yaml:"next,omitempty"`
	Previous string   `json:"previous,omitempty" yaml:"previous,omitempty"`
}

// ListResponse represents a paginated list response.
type ListResponse[T any] struct {
	Data   []T     `json:"data"             yaml:"data"`
	Paging *Paging `json:"paging,omitempty" yaml:"paging,omitempty"`
}

// NextCursor returns the forward cursor when the upstream advertises a next page.
func (r *ListResponse[T]) NextCursor() string {
	if r.Paging == nil || r.Paging.Next == "" || r.Paging.Cursors == nil {
		return ""
	}

	return r.Paging.Cursors.After
}

// PreviousCursor returns the backward cursor when the upstream advertises a previous page.
func (r *ListResponse[T]) PreviousCursor() string {
	if r.Paging == nil || r.Paging.Previous == "" || r.Paging.Cursors == nil {
		return ""
	}

	return r.Paging.Cursors.Before
}

// ListOptions are the paging options shared by every list operation.
// Limit 0 means the default page size; larger values are clamped to the maximum.
type ListOptions struct {
	Limit  int      `json:"limit,omitempty"  yaml:"limit,omitempty"`
	After  string   `json:"after,omitempty"  yaml:"after,omitempty"`
	Before string   `json:"before,omitempty" yaml:"before,omitempty"`
	Fields []string `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// Filter is one entry of the upstream structured filtering expression.
type Filter struct {
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    any    `json:"value"`
}

// EqualFilter builds a field == value filter.
func EqualFilter(field string, value any) Filter {
	return Filter{Field: field, Operator: constants.FilterOperatorEqual, Value: value}
}

// MinorUnits is a monetary amount in the currency's minor unit (cents). The
// upstream sends these as decimal strings; numbers are accepted too.
type MinorUnits int64

// UnmarshalJSON accepts "1234", 1234 and null.
func (m *MinorUnits) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	text := string(data)
	if data[0] == '"' {
		var unquoted string

		err := json.Unmarshal(data, &unquoted)
		if err != nil {
			return fmt.Errorf("parsing minor units: %w", err)
		}

		text = unquoted
	}

	if text == "" {
		return nil
	}

	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return fmt.Errorf("parsing minor units %q: %w", text, err)
	}

	*m = MinorUnits(value)

	return nil
}

// MarshalJSON writes the upstream string form.
func (m MinorUnits) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatInt(int64(m), 10))
}

// Format renders the amount as $D.CC.
func (m MinorUnits) Format() string {
	value := int64(m)

	// Magnitude is taken in uint64 so the minimum int64 does not overflow.
	sign := ""
	magnitude := uint64(value)
	if value < 0 {
		sign = "-"
		magnitude = uint64(-(value + 1)) + 1
	}

	return fmt.Sprintf("%s%s%d.%02d", sign, constants.CurrencySymbol,
		magnitude/constants.MinorUnitsPerMajor, magnitude%constants.MinorUnitsPerMajor)
}

// NormalizeAccountID prefixes id with the account namespace unless it already
// carries it. Applying it twice yields the same result.
func NormalizeAccountID(id string) string {
	id = strings.TrimSpace(id)
	if strings.HasPrefix(id, constants.AccountIDPrefix) {
		return id
	}

	return constants.AccountIDPrefix + id
}
