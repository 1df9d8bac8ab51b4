package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/metaads-client/internal/constants"
	"github.com/fivetwenty-io/metaads-client/pkg/ads"
)

func TestImagesClient_Upload(t *testing.T) {
	t.Parallel()

	fake, server := newUpstreamFake(t)
	fake.on(http.MethodPost, "act_1001/adimages", http.StatusOK,
		`{"images":{"banner.png":{"hash":"abc123","url":"https://cdn.example.com/abc"}}}`)

	image, err := newTestClient(t, server.URL).Images().Upload(context.Background(), &ads.ImageUploadRequest{
		Filename: "/tmp/banner.png",
		Bytes:    []byte{0x89, 'P', 'N', 'G'},
	})
	require.NoError(t, err)
	assert.Equal(t, "abc123", image.Hash)
	assert.Equal(t, "banner.png", image.Name)

	requests := fake.recorded()
	require.Len(t, requests, 1)
	assert.Empty(t, requests[0].Query.Get("access_token"))
	assert.Equal(t, testToken, requests[0].Form.Get("access_token"))
}

func TestImagesClient_UploadRequiresBytes(t *testing.T) {
	t.Parallel()

	fake, server := newUpstreamFake(t)

	_, err := newTestClient(t, server.URL).Images().Upload(context.Background(), &ads.ImageUploadRequest{Filename: "x.png"})
	require.ErrorIs(t, err, constants.ErrImageBytesRequired)
	assert.Empty(t, fake.recorded())
}

func TestImagesClient_UploadFailure(t *testing.T) {
	t.Parallel()

	fake, server := newUpstreamFake(t)
	fake.on(http.MethodPost, "act_1001/adimages", http.StatusBadRequest,
		`{"error":{"message":"Invalid parameter","code":100,"error_data":"{\"filename\":\"unsupported format\"}"}}`)

	_, err := newTestClient(t, server.URL).Images().Upload(context.Background(), &ads.ImageUploadRequest{
		Bytes: []byte("gif"),
	})
	require.Error(t, err)

	apiErr, ok := ads.AsError(err)
	require.True(t, ok)
	assert.Equal(t, ads.KindValidation, apiErr.Kind)
	assert.Equal(t, []string{"unsupported format"}, apiErr.FieldErrors["filename"])
}

func TestImagesClient_List(t *testing.T) {
	t.Parallel()

	fake, server := newUpstreamFake(t)
	fake.on(http.MethodGet, "act_1001/adimages", http.StatusOK, `{"data":[{"hash":"abc","width":600,"height":315}]}`)

	result, err := newTestClient(t, server.URL).Images().List(context.Background(), "", &ads.ListOptions{Limit: 10})
	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	assert.Equal(t, 600, result.Data[0].Width)
	assert.Equal(t, "10", fake.recorded()[0].Query.Get("limit"))
}
