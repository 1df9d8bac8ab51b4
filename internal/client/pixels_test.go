package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/metaads-client/pkg/ads"
)

func TestPixelsClient_CreateAndList(t *testing.T) {
	t.Parallel()

	fake, server := newUpstreamFake(t)
	fake.on(http.MethodPost, "act_1001/adspixels", http.StatusOK, `{"id":"88"}`)
	fake.on(http.MethodGet, "88", http.StatusOK, `{"id":"88","name":"Site"}`)
	fake.on(http.MethodGet, "act_1001/adspixels", http.StatusOK, `{"data":[{"id":"88","is_unavailable":false}]}`)

	pixels := newTestClient(t, server.URL).Pixels()

	pixel, err := pixels.Create(context.Background(), &ads.PixelCreateRequest{Name: "Site"})
	require.NoError(t, err)
	assert.Equal(t, "Site", pixel.Name)

	list, err := pixels.List(context.Background(), "", nil)
	require.NoError(t, err)
	assert.Len(t, list.Data, 1)
}

func TestPixelsClient_UpdateSendsFalse(t *testing.T) {
	t.Parallel()

	fake, server := newUpstreamFake(t)
	fake.on(http.MethodPost, "88", http.StatusOK, `{"success":true}`)
	fake.on(http.MethodGet, "88", http.StatusOK, `{"id":"88"}`)

	_, err := newTestClient(t, server.URL).Pixels().Update(context.Background(), "88", &ads.PixelUpdateRequest{
		EnableAutomaticMatching: boolPtr(false),
	})
	require.NoError(t, err)

	form := fake.recorded()[0].Form
	assert.Len(t, form, 1)
	assert.Equal(t, "false", form.Get("enable_automatic_matching"))
}
