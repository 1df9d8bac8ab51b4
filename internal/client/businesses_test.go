package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusinessesClient(t *testing.T) {
	t.Parallel()

	fake, server := newUpstreamFake(t)
	fake.on(http.MethodGet, "me/businesses", http.StatusOK, `{"data":[{"id":"900","name":"Acme"}]}`)
	fake.on(http.MethodGet, "900", http.StatusOK, `{"id":"900","name":"Acme","verification_status":"verified"}`)
	fake.on(http.MethodGet, "900/owned_ad_accounts", http.StatusOK, `{"data":[{"id":"act_1","amount_spent":"1234"}]}`)

	businesses := newTestClient(t, server.URL).Businesses()

	list, err := businesses.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, list.Data, 1)

	business, err := businesses.Get(context.Background(), "900", []string{"id", "verification_status"})
	require.NoError(t, err)
	assert.Equal(t, "verified", business.VerificationStatus)

	accounts, err := businesses.ListAdAccounts(context.Background(), "900", nil)
	require.NoError(t, err)
	require.Len(t, accounts.Data, 1)
	assert.Equal(t, "$12.34", accounts.Data[0].AmountSpent.Format())

	requests := fake.recorded()
	assert.Equal(t, "id,verification_status", requests[1].Query.Get("fields"))
	assert.Contains(t, requests[2].Query.Get("fields"), "amount_spent")
}
