package ads_test

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/metaads-client/pkg/ads"
)

func TestNormalizeAccountID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "act_123", ads.NormalizeAccountID("123"))
	assert.Equal(t, "act_123", ads.NormalizeAccountID("act_123"))
	assert.Equal(t, "act_123", ads.NormalizeAccountID("  123 "))
}

func TestNormalizeAccountIDProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("normalizing twice equals normalizing once", prop.ForAll(
		func(id string) bool {
			once := ads.NormalizeAccountID(id)

			return ads.NormalizeAccountID(once) == once
		},
		gen.AlphaString(),
	))

	properties.Property("result always carries the account prefix", prop.ForAll(
		func(id string) bool {
			return strings.HasPrefix(ads.NormalizeAccountID(id), "act_")
		},
		gen.AnyString(),
	))

	properties.Property("prefixed ids are unchanged", prop.ForAll(
		func(id string) bool {
			prefixed := "act_" + id

			return ads.NormalizeAccountID(prefixed) == prefixed
		},
		gen.Identifier(),
	))

	properties.TestingRun(t)
}

func TestMinorUnits_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  ads.MinorUnits
	}{
		{name: "string", input: `"1234"`, want: 1234},
		{name: "number", input: `1234`, want: 1234},
		{name: "null", input: `null`, want: 0},
		{name: "empty string", input: `""`, want: 0},
		{name: "negative", input: `"-50"`, want: -50},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var value ads.MinorUnits

			require.NoError(t, json.Unmarshal([]byte(testCase.input), &value))
			assert.Equal(t, testCase.want, value)
		})
	}

	var value ads.MinorUnits
	require.Error(t, json.Unmarshal([]byte(`"12.50"`), &value))
}

func TestMinorUnits_Format(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "$0.00", ads.MinorUnits(0).Format())
	assert.Equal(t, "$0.05", ads.MinorUnits(5).Format())
	assert.Equal(t, "$12.34", ads.MinorUnits(1234).Format())
	assert.Equal(t, "$1000.00", ads.MinorUnits(100000).Format())
	assert.Equal(t, "-$0.50", ads.MinorUnits(-50).Format())
	assert.Equal(t, "-$92233720368547758.08", ads.MinorUnits(math.MinInt64).Format())
	assert.Equal(t, "$92233720368547758.07", ads.MinorUnits(math.MaxInt64).Format())
}

func TestMinorUnitsRoundTripProperty(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("marshalled amounts decode to the same value", prop.ForAll(
		func(amount int64) bool {
			encoded, err := json.Marshal(ads.MinorUnits(amount))
			if err != nil {
				return false
			}

			var decoded ads.MinorUnits
			if json.Unmarshal(encoded, &decoded) != nil {
				return false
			}

			return decoded == ads.MinorUnits(amount)
		},
		gen.Int64(),
	))

	properties.TestingRun(t)
}

func TestListResponse_Cursors(t *testing.T) {
	t.Parallel()

	var page ads.ListResponse[ads.Campaign]

	require.NoError(t, json.Unmarshal([]byte(`{
		"data":[{"id":"1"}],
		"paging":{"cursors":{"before":"b","after":"a"},"next":"https://next","previous":"https://prev"}
	}`), &page))

	assert.Equal(t, "a", page.NextCursor())
	assert.Equal(t, "b", page.PreviousCursor())

	var last ads.ListResponse[ads.Campaign]

	require.NoError(t, json.Unmarshal([]byte(`{"data":[],"paging":{"cursors":{"before":"b","after":"a"}}}`), &last))
	assert.Empty(t, last.NextCursor())
	assert.Empty(t, last.PreviousCursor())

	var bare ads.ListResponse[ads.Campaign]
	assert.Empty(t, bare.NextCursor())
}

func TestCredentials(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "v22.0", ads.Credentials{}.Version())
	assert.Equal(t, "v19.0", ads.Credentials{APIVersion: "v19.0"}.Version())
	assert.False(t, ads.Credentials{AccessToken: " \t"}.HasToken())
	assert.True(t, ads.Credentials{AccessToken: "t"}.HasToken())

	encoded, err := json.Marshal(ads.Credentials{AccessToken: "secret-token", AppSecret: "shh", AccountID: "act_1"})
	require.NoError(t, err)
	assert.NotContains(t, string(encoded), "secret-token")
	assert.NotContains(t, string(encoded), "shh")
}

func TestEqualFilter(t *testing.T) {
	t.Parallel()

	encoded, err := json.Marshal([]ads.Filter{ads.EqualFilter("campaign.id", "123")})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"field":"campaign.id","operator":"EQUAL","value":"123"}]`, string(encoded))
}
