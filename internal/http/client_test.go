package http_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adshttp "github.com/fivetwenty-io/metaads-client/internal/http"
	"github.com/fivetwenty-io/metaads-client/pkg/ads"
)

const testToken = "test-token"

// MockLogger for testing.
type MockLogger struct {
	logs []map[string]interface{}
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "debug", "msg": msg, "fields": fields})
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "info", "msg": msg, "fields": fields})
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "warn", "msg": msg, "fields": fields})
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "error", "msg": msg, "fields": fields})
}

func (l *MockLogger) messages() []string {
	messages := make([]string, 0, len(l.logs))
	for _, entry := range l.logs {
		messages = append(messages, entry["msg"].(string))
	}

	return messages
}

func newTestClient(serverURL string, opts ...adshttp.Option) *adshttp.Client {
	return adshttp.NewClient(serverURL, ads.Credentials{AccessToken: testToken}, opts...)
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v22.0/me/adaccounts", request.URL.Path)
			assert.Equal(t, http.MethodGet, request.Method)
			assert.Equal(t, testToken, request.URL.Query().Get("access_token"))
			assert.Empty(t, request.Header.Get("Authorization"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))
			assert.Equal(t, "id,name", request.URL.Query().Get("fields"))

			_, _ = writer.Write([]byte(`{"data":[{"id":"act_1","name":"Main"}]}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		resp, err := client.Get(context.Background(), "me/adaccounts", adshttp.Params{"fields": "id,name"})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.JSONEq(t, `{"data":[{"id":"act_1","name":"Main"}]}`, string(resp.Body))
	})

	t.Run("version override", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v19.0/123", request.URL.Path)
			_, _ = writer.Write([]byte(`{"id":"123"}`))
		}))
		defer server.Close()

		client := adshttp.NewClient(server.URL+"/", ads.Credentials{AccessToken: testToken, APIVersion: "v19.0"})
		assert.Equal(t, "v19.0", client.Version())

		_, err := client.Get(context.Background(), "/123", nil)
		require.NoError(t, err)
	})

	t.Run("post sends form body and token in query", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, http.MethodPost, request.Method)
			assert.Equal(t, "application/x-www-form-urlencoded", request.Header.Get("Content-Type"))
			assert.Equal(t, testToken, request.URL.Query().Get("access_token"))

			require.NoError(t, request.ParseForm())
			assert.Equal(t, "Spring Sale", request.PostForm.Get("name"))
			assert.Equal(t, `["NONE"]`, request.PostForm.Get("special_ad_categories"))
			assert.False(t, request.PostForm.Has("access_token"))

			_, _ = writer.Write([]byte(`{"id":"42"}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		resp, err := client.Post(context.Background(), "act_1/campaigns", adshttp.Params{
			"name":                  "Spring Sale",
			"special_ad_categories": []string{"NONE"},
		})
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":"42"}`, string(resp.Body))
	})

	t.Run("appsecret proof", func(t *testing.T) {
		t.Parallel()

		expected := adshttp.AppSecretProof(testToken, "shh")

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, expected, request.URL.Query().Get("appsecret_proof"))
			_, _ = writer.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := adshttp.NewClient(server.URL, ads.Credentials{AccessToken: testToken, AppSecret: "shh"})

		_, err := client.Get(context.Background(), "me", nil)
		require.NoError(t, err)
		assert.Len(t, expected, 64)
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			assert.Equal(t, "agent/2", request.Header.Get("User-Agent"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := newTestClient(server.URL, adshttp.WithUserAgent("agent/2"))

		req := &adshttp.Request{
			Method: http.MethodGet,
			Path:   "me",
			Headers: map[string]string{
				"X-Custom-Header": "custom-value",
			},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(`{"result":"ok"}`))
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := newTestClient(server.URL, adshttp.WithLogger(logger), adshttp.WithDebug(true))

		_, err := client.Get(context.Background(), "me", nil)
		require.NoError(t, err)

		messages := logger.messages()
		assert.Contains(t, messages, "HTTP Request")
		assert.Contains(t, messages, "HTTP Response")

		for _, entry := range logger.logs {
			fields, _ := entry["fields"].(map[string]interface{})
			for _, value := range fields {
				if text, ok := value.(string); ok {
					assert.NotContains(t, text, testToken)
				}
			}
		}
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Failures(t *testing.T) {
	t.Parallel()

	t.Run("429 uses Retry-After header and ignores body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.Header().Set("Retry-After", "7")
			writer.WriteHeader(http.StatusTooManyRequests)
			_, _ = writer.Write([]byte(`{"error":{"message":"Invalid parameter","code":100}}`))
		}))
		defer server.Close()

		resp, err := newTestClient(server.URL).Get(context.Background(), "me", nil)
		require.Error(t, err)
		assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)

		apiErr, ok := ads.AsError(err)
		require.True(t, ok)
		assert.Equal(t, ads.KindRateLimit, apiErr.Kind)
		assert.Equal(t, 7*time.Second, apiErr.RetryAfter)
		assert.True(t, apiErr.Retryable)
	})

	t.Run("429 with Retry-After zero keeps zero", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.Header().Set("Retry-After", "0")
			writer.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).Get(context.Background(), "me", nil)
		require.Error(t, err)

		apiErr, ok := ads.AsError(err)
		require.True(t, ok)
		assert.Equal(t, ads.KindRateLimit, apiErr.Kind)
		assert.Equal(t, time.Duration(0), apiErr.RetryAfter)
		assert.True(t, apiErr.Retryable)
	})

	t.Run("429 without parseable header defaults to 60 seconds", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.Header().Set("Retry-After", "Wed, 21 Oct 2015 07:28:00 GMT")
			writer.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).Get(context.Background(), "me", nil)
		require.Error(t, err)

		apiErr, ok := ads.AsError(err)
		require.True(t, ok)
		assert.Equal(t, ads.KindRateLimit, apiErr.Kind)
		assert.Equal(t, 60, apiErr.RetryAfterSeconds())
	})

	t.Run("400 is classified from the body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusBadRequest)
			_, _ = writer.Write([]byte(`{"error":{"message":"Invalid parameter","code":100}}`))
		}))
		defer server.Close()

		resp, err := newTestClient(server.URL).Post(context.Background(), "act_1/campaigns", nil)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		apiErr, ok := ads.AsError(err)
		require.True(t, ok)
		assert.Equal(t, ads.KindValidation, apiErr.Kind)
		assert.Equal(t, "Invalid parameter", apiErr.Message)
		assert.Equal(t, ads.CodeValidation, apiErr.Code)
		assert.False(t, ads.IsRetryable(err))
	})

	t.Run("unparseable error body degrades to unknown error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusBadGateway)
			_, _ = writer.Write([]byte(`<html>bad gateway</html>`))
		}))
		defer server.Close()

		_, err := newTestClient(server.URL).Get(context.Background(), "me", nil)
		require.Error(t, err)

		apiErr, ok := ads.AsError(err)
		require.True(t, ok)
		assert.Equal(t, ads.KindGeneric, apiErr.Kind)
		assert.Equal(t, ads.CodeUnknown, apiErr.Code)
		assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	})

	t.Run("transport failure wraps ErrTransport without leaking the token", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		serverURL := server.URL
		server.Close()

		resp, err := newTestClient(serverURL).Get(context.Background(), "me", nil)
		require.Error(t, err)
		assert.Nil(t, resp)
		assert.True(t, ads.IsTransport(err))
		assert.True(t, errors.Is(err, ads.ErrTransport))
		assert.NotContains(t, err.Error(), testToken)

		_, isAPIError := ads.AsError(err)
		assert.False(t, isAPIError)
	})
}

func TestClient_NoContent(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, http.MethodDelete, request.Method)
		writer.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	resp, err := newTestClient(server.URL).Delete(context.Background(), "123", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Nil(t, resp.Body)
}

func TestClient_Methods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		fn     func(*adshttp.Client, context.Context) (*adshttp.Response, error)
	}{
		{
			name:   "GET",
			method: http.MethodGet,
			fn: func(c *adshttp.Client, ctx context.Context) (*adshttp.Response, error) {
				return c.Get(ctx, "/test", nil)
			},
		},
		{
			name:   "POST",
			method: http.MethodPost,
			fn: func(c *adshttp.Client, ctx context.Context) (*adshttp.Response, error) {
				return c.Post(ctx, "/test", adshttp.Params{"key": "value"})
			},
		},
		{
			name:   "DELETE",
			method: http.MethodDelete,
			fn: func(c *adshttp.Client, ctx context.Context) (*adshttp.Response, error) {
				return c.Delete(ctx, "/test", nil)
			},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.method, request.Method)
				assert.Equal(t, "/v22.0/test", request.URL.Path)
				writer.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			resp, err := testCase.fn(newTestClient(server.URL), context.Background())
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)
		})
	}
}

func TestClient_SubmitForm(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, http.MethodPost, request.Method)
		assert.Equal(t, "/v22.0/act_1/adimages", request.URL.Path)
		assert.Empty(t, request.URL.RawQuery)

		require.NoError(t, request.ParseMultipartForm(1<<20))
		assert.Equal(t, testToken, request.FormValue("access_token"))
		assert.Equal(t, "banner", request.FormValue("name"))

		file, header, err := request.FormFile("filename")
		require.NoError(t, err)

		defer func() { _ = file.Close() }()

		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "banner.png", header.Filename)
		assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, content)

		_, _ = writer.Write([]byte(`{"images":{"banner.png":{"hash":"abc"}}}`))
	}))
	defer server.Close()

	resp, err := newTestClient(server.URL).SubmitForm(
		context.Background(),
		"act_1/adimages",
		adshttp.Params{"name": "banner"},
		[]adshttp.FormFile{{Field: "filename", Filename: "banner.png", Content: []byte{0x89, 'P', 'N', 'G'}}},
	)
	require.NoError(t, err)
	assert.Contains(t, string(resp.Body), `"hash":"abc"`)
}

func TestClient_Interceptors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "trace-1", request.Header.Get("X-Trace"))
		writer.WriteHeader(http.StatusForbidden)
		_, _ = writer.Write([]byte(`{"error":{"message":"no","code":200}}`))
	}))
	defer server.Close()

	collector := ads.NewMetricsCollector()
	chain := ads.NewInterceptorChain()
	chain.AddRequestInterceptor(ads.HeaderInterceptor(map[string]string{"X-Trace": "trace-1"}))
	chain.AddRequestInterceptor(ads.MetricsRequestInterceptor(collector))
	chain.AddResponseInterceptor(ads.MetricsResponseInterceptor(collector))

	_, err := newTestClient(server.URL, adshttp.WithInterceptors(chain)).Get(context.Background(), "act_1", nil)
	require.Error(t, err)
	assert.True(t, ads.IsPermission(err))

	metrics, ok := collector.GetMetrics("GET act_1")
	require.True(t, ok)
	assert.Equal(t, int64(1), metrics.TotalRequests)
	assert.Equal(t, int64(1), metrics.TotalErrors)
}

func TestAppSecretProof(t *testing.T) {
	t.Parallel()

	// HMAC-SHA256("key", "The quick brown fox jumps over the lazy dog")
	assert.Equal(t,
		"f7bc83f430538424b13298e6aa6fb143ef4d59a14946175997479dbc2d1a3cd8",
		adshttp.AppSecretProof("The quick brown fox jumps over the lazy dog", "key"),
	)
}

func TestClient_URL(t *testing.T) {
	t.Parallel()

	client := newTestClient("https://graph.example.com/")
	assert.Equal(t, "https://graph.example.com/v22.0/act_1/campaigns", client.URL("/act_1/campaigns"))

	parsed, err := url.Parse(client.URL("me"))
	require.NoError(t, err)
	assert.Empty(t, parsed.RawQuery)
}
