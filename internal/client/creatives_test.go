package client

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/metaads-client/pkg/ads"
)

func TestCreativesClient_Create(t *testing.T) {
	t.Parallel()

	fake, server := newUpstreamFake(t)
	fake.on(http.MethodPost, "act_1001/adcreatives", http.StatusOK, `{"id":"77"}`)
	fake.on(http.MethodGet, "77", http.StatusOK, `{"id":"77","name":"Creative","object_story_spec":{"page_id":"1"}}`)

	creative, err := newTestClient(t, server.URL).Creatives().Create(context.Background(), &ads.CreativeCreateRequest{
		Name:            "Creative",
		ObjectStorySpec: json.RawMessage(`{"page_id":"1"}`),
	})
	require.NoError(t, err)
	assert.Equal(t, "77", creative.ID)

	form := fake.recorded()[0].Form
	assert.Equal(t, `{"page_id":"1"}`, form.Get("object_story_spec"))
	assert.False(t, form.Has("title"))
	assert.False(t, form.Has("status"))
}

func TestCreativesClient_ListUpdateDelete(t *testing.T) {
	t.Parallel()

	fake, server := newUpstreamFake(t)
	fake.on(http.MethodGet, "act_5/adcreatives", http.StatusOK, `{"data":[{"id":"77"}]}`)
	fake.on(http.MethodPost, "77", http.StatusOK, `{"success":true}`)
	fake.on(http.MethodGet, "77", http.StatusOK, `{"id":"77","name":"Renamed"}`)
	fake.on(http.MethodDelete, "77", http.StatusOK, `{"success":true}`)

	creatives := newTestClient(t, server.URL).Creatives()

	list, err := creatives.List(context.Background(), "5", nil)
	require.NoError(t, err)
	assert.Len(t, list.Data, 1)

	creative, err := creatives.Update(context.Background(), "77", &ads.CreativeUpdateRequest{Name: stringPtr("Renamed")})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", creative.Name)

	require.NoError(t, creatives.Delete(context.Background(), "77"))
	assert.Len(t, fake.recorded(), 4)
}
