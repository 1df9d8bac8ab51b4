package client

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/metaads-client/pkg/ads"
)

const (
	testToken     = "test-token"
	testAccountID = "act_1001"
	testVersion   = "/v22.0/"
)

// recordedRequest is one request seen by the fake upstream.
type recordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Form   url.Values
}

type route struct {
	status int
	body   string
}

// upstreamFake is a scripted Graph API. Unknown routes answer with an upstream error body.
type upstreamFake struct {
	mu       sync.Mutex
	requests []recordedRequest
	routes   map[string]route
}

func newUpstreamFake(t *testing.T) (*upstreamFake, *httptest.Server) {
	t.Helper()

	fake := &upstreamFake{routes: map[string]route{}}

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_ = request.ParseMultipartForm(1 << 20)
		if request.PostForm == nil {
			_ = request.ParseForm()
		}

		fake.mu.Lock()
		fake.requests = append(fake.requests, recordedRequest{
			Method: request.Method,
			Path:   request.URL.Path,
			Query:  request.URL.Query(),
			Form:   request.PostForm,
		})
		matched, ok := fake.routes[request.Method+" "+request.URL.Path]
		fake.mu.Unlock()

		if !ok {
			writer.WriteHeader(http.StatusBadRequest)
			_, _ = writer.Write([]byte(`{"error":{"message":"Unknown path components","type":"OAuthException","code":2500}}`))

			return
		}

		if matched.status == http.StatusNoContent {
			writer.WriteHeader(http.StatusNoContent)

			return
		}

		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(matched.status)
		_, _ = writer.Write([]byte(matched.body))
	}))
	t.Cleanup(server.Close)

	return fake, server
}

// on scripts the response for method and a path relative to the API version.
func (f *upstreamFake) on(method, path string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.routes[method+" "+testVersion+path] = route{status: status, body: body}
}

func (f *upstreamFake) recorded() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]recordedRequest(nil), f.requests...)
}

// newTestClient builds a client for serverURL with the test token and default account.
func newTestClient(t *testing.T, serverURL string) *Client {
	t.Helper()

	return newTestClientWithCredentials(t, serverURL, ads.Credentials{AccessToken: testToken, AccountID: testAccountID})
}

func newTestClientWithCredentials(t *testing.T, serverURL string, credentials ads.Credentials) *Client {
	t.Helper()

	client, err := New(&ads.Config{Credentials: credentials, BaseURL: serverURL})
	require.NoError(t, err)

	return client
}

func stringPtr(value string) *string {
	return &value
}

func int64Ptr(value int64) *int64 {
	return &value
}

func boolPtr(value bool) *bool {
	return &value
}
