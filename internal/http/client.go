// Package http implements the single outbound request path to the Graph API.
package http

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	stdhttp "net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/metaads-client/internal/constants"
	"github.com/fivetwenty-io/metaads-client/pkg/ads"
)

const defaultUserAgent = "metaads-client/1.0"

// Request describes one upstream call.
type Request struct {
	Method  string
	Path    string
	Params  Params
	Headers map[string]string
}

// Response is a fully read upstream response. Body is nil for 204 responses.
type Response struct {
	StatusCode int
	Body       []byte
	Headers    stdhttp.Header
}

// FormFile is one file part of a multipart upload.
type FormFile struct {
	Field    string
	Filename string
	Content  []byte
}

// Client sends requests bound to one set of credentials. It holds no mutable
// state after construction.
type Client struct {
	baseURL       string
	version       string
	credentials   ads.Credentials
	httpClient    *retryablehttp.Client
	uploadClient  *retryablehttp.Client
	timeout       time.Duration
	uploadTimeout time.Duration
	userAgent     string
	logger        ads.Logger
	debug         bool
	interceptors  *ads.InterceptorChain
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger ads.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug logs every request and response.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithTimeout sets the per-request timeout for non-upload calls.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithUploadTimeout sets the per-request timeout for multipart uploads.
func WithUploadTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.uploadTimeout = timeout
		}
	}
}

// WithInterceptors sets the interceptor chain run around every request.
func WithInterceptors(chain *ads.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// NewClient creates a client for baseURL bound to credentials. The API version
// is taken from the credentials.
func NewClient(baseURL string, credentials ads.Credentials, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	client := &Client{
		baseURL:       strings.TrimSuffix(baseURL, "/"),
		version:       credentials.Version(),
		credentials:   credentials,
		timeout:       constants.DefaultHTTPTimeout,
		uploadTimeout: constants.UploadHTTPTimeout,
		userAgent:     defaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	client.httpClient = newTransport(client.timeout, client.logger)
	client.uploadClient = newTransport(client.uploadTimeout, client.logger)

	return client
}

// newTransport builds a retryablehttp client that performs exactly one attempt
// and hands every status and transport error back unchanged.
func newTransport(timeout time.Duration, logger ads.Logger) *retryablehttp.Client {
	transport := retryablehttp.NewClient()
	transport.HTTPClient.Timeout = timeout
	transport.RetryMax = 0
	transport.CheckRetry = func(context.Context, *stdhttp.Response, error) (bool, error) {
		return false, nil
	}
	transport.ErrorHandler = retryablehttp.PassthroughErrorHandler
	transport.Logger = nil

	if logger != nil {
		transport.Logger = &leveledLogger{logger: logger}
	}

	return transport
}

// Version returns the API version the client is bound to.
func (c *Client) Version() string {
	return c.version
}

// Credentials returns the credentials the client is bound to.
func (c *Client) Credentials() ads.Credentials {
	return c.credentials
}

// URL returns the full upstream URL for path, without parameters.
func (c *Client) URL(path string) string {
	return c.baseURL + "/" + c.version + "/" + strings.TrimPrefix(path, "/")
}

// Do performs a request. GET and DELETE send parameters in the query string;
// other methods send them as a form body. The access token always travels in
// the query string. On an upstream failure the response is returned together
// with the classified *ads.Error.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	values, err := req.Params.Encode()
	if err != nil {
		return nil, fmt.Errorf("building %s %s: %w", req.Method, req.Path, err)
	}

	query := values

	var body []byte

	contentType := ""

	if req.Method != stdhttp.MethodGet && req.Method != stdhttp.MethodDelete {
		query = url.Values{}

		if len(values) > 0 {
			body = []byte(values.Encode())
			contentType = "application/x-www-form-urlencoded"
		}
	}

	c.injectCredentials(query)

	fullURL := c.URL(req.Path) + "?" + query.Encode()

	var rawBody interface{}
	if body != nil {
		rawBody = body
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, rawBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	return c.send(ctx, c.httpClient, httpReq, req, true)
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, params Params) (*Response, error) {
	return c.Do(ctx, &Request{Method: stdhttp.MethodGet, Path: path, Params: params})
}

// Post performs a POST request. The upstream uses POST for both create and update.
func (c *Client) Post(ctx context.Context, path string, params Params) (*Response, error) {
	return c.Do(ctx, &Request{Method: stdhttp.MethodPost, Path: path, Params: params})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, params Params) (*Response, error) {
	return c.Do(ctx, &Request{Method: stdhttp.MethodDelete, Path: path, Params: params})
}

// SubmitForm posts a multipart form. The access token is sent as a form field
// rather than a query parameter. Uploads always expect a body, so a 204 is not
// special-cased.
func (c *Client) SubmitForm(ctx context.Context, path string, fields Params, files []FormFile) (*Response, error) {
	values, err := fields.Encode()
	if err != nil {
		return nil, fmt.Errorf("building form for %s: %w", path, err)
	}

	c.injectCredentials(values)

	var buf bytes.Buffer

	writer := multipart.NewWriter(&buf)

	for key := range values {
		err = writer.WriteField(key, values.Get(key))
		if err != nil {
			return nil, fmt.Errorf("writing form field %q: %w", key, err)
		}
	}

	for _, file := range files {
		part, err := writer.CreateFormFile(file.Field, file.Filename)
		if err != nil {
			return nil, fmt.Errorf("creating form file %q: %w", file.Field, err)
		}

		_, err = part.Write(file.Content)
		if err != nil {
			return nil, fmt.Errorf("writing form file %q: %w", file.Field, err)
		}
	}

	err = writer.Close()
	if err != nil {
		return nil, fmt.Errorf("closing multipart writer: %w", err)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, stdhttp.MethodPost, c.URL(path), buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("creating upload request: %w", err)
	}

	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	return c.send(ctx, c.uploadClient, httpReq, &Request{Method: stdhttp.MethodPost, Path: path}, false)
}

// send runs interceptors, dispatches the request and interprets the response.
func (c *Client) send(
	ctx context.Context,
	transport *retryablehttp.Client,
	httpReq *retryablehttp.Request,
	req *Request,
	allowNoContent bool,
) (*Response, error) {
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	interceptReq := &ads.Request{
		Method:   req.Method,
		Path:     req.Path,
		Headers:  httpReq.Header,
		Metadata: make(map[string]interface{}),
	}

	if c.interceptors != nil {
		err := c.interceptors.ExecuteRequestInterceptors(ctx, interceptReq)
		if err != nil {
			return nil, err
		}
	}

	c.logDebug("HTTP Request", map[string]interface{}{
		"method": req.Method,
		"path":   req.Path,
	})

	httpResp, err := transport.Do(httpReq)
	if err != nil {
		err = fmt.Errorf("%w: %s %s: %w", ads.ErrTransport, req.Method, req.Path, redact(err))
		c.intercept(ctx, interceptReq, &ads.Response{Error: err})

		return nil, err
	}

	defer func() { _ = httpResp.Body.Close() }()

	resp, err := c.interpret(httpResp, allowNoContent)
	if err != nil && resp == nil {
		err = fmt.Errorf("%w: %s %s: %w", ads.ErrTransport, req.Method, req.Path, err)
	}

	c.logDebug("HTTP Response", map[string]interface{}{
		"method":      req.Method,
		"path":        req.Path,
		"status_code": httpResp.StatusCode,
	})

	c.intercept(ctx, interceptReq, &ads.Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Error:      err,
	})

	return resp, err
}

// interpret applies the outcome branches in order: 429, other failures, 204,
// success. It returns a nil Response only when the body could not be read.
func (c *Client) interpret(httpResp *stdhttp.Response, allowNoContent bool) (*Response, error) {
	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
	}

	if httpResp.StatusCode == stdhttp.StatusTooManyRequests {
		_, _ = io.Copy(io.Discard, httpResp.Body)

		return resp, ads.NewRateLimitError(
			"rate limit exceeded",
			httpResp.StatusCode,
			retryAfter(httpResp.Header.Get("Retry-After")),
		)
	}

	if httpResp.StatusCode >= stdhttp.StatusBadRequest {
		body, err := io.ReadAll(httpResp.Body)
		if err != nil {
			body = nil
		}

		resp.Body = body

		return resp, ads.Classify(body, httpResp.StatusCode)
	}

	if allowNoContent && httpResp.StatusCode == stdhttp.StatusNoContent {
		_, _ = io.Copy(io.Discard, httpResp.Body)

		return resp, nil
	}

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp.Body = body

	return resp, nil
}

func (c *Client) intercept(ctx context.Context, req *ads.Request, resp *ads.Response) {
	if c.interceptors == nil {
		return
	}

	err := c.interceptors.ExecuteResponseInterceptors(ctx, req, resp)
	if err != nil {
		c.logDebug("Response interceptor failed", map[string]interface{}{"error": err.Error()})
	}
}

func (c *Client) logDebug(msg string, fields map[string]interface{}) {
	if c.debug && c.logger != nil {
		c.logger.Debug(msg, fields)
	}
}

// injectCredentials adds the access token and, when an app secret is known,
// the matching appsecret_proof.
func (c *Client) injectCredentials(values url.Values) {
	values.Set(constants.AccessTokenParam, c.credentials.AccessToken)

	if c.credentials.AppSecret != "" {
		values.Set(constants.AppSecretProofParam, AppSecretProof(c.credentials.AccessToken, c.credentials.AppSecret))
	}
}

// AppSecretProof returns hex(HMAC-SHA256(appSecret, token)).
func AppSecretProof(token, appSecret string) string {
	mac := hmac.New(sha256.New, []byte(appSecret))
	_, _ = mac.Write([]byte(token))

	return hex.EncodeToString(mac.Sum(nil))
}

// retryAfter parses an integer-seconds Retry-After header. Anything else
// yields the default wait.
func retryAfter(header string) time.Duration {
	seconds, err := strconv.Atoi(strings.TrimSpace(header))
	if err != nil || seconds < 0 {
		return constants.DefaultRetryAfter
	}

	return time.Duration(seconds) * time.Second
}

// redact strips the query string, which carries the access token, from a
// *url.Error in err's chain.
func redact(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return &url.Error{Op: urlErr.Op, URL: stripQuery(urlErr.URL), Err: urlErr.Err}
	}

	return err
}

func stripQuery(raw string) string {
	if idx := strings.IndexByte(raw, '?'); idx >= 0 {
		return raw[:idx]
	}

	return raw
}

// leveledLogger adapts ads.Logger to retryablehttp.LeveledLogger.
type leveledLogger struct {
	logger ads.Logger
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, toFields(keysAndValues))
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, toFields(keysAndValues))
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, toFields(keysAndValues))
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, toFields(keysAndValues))
}

// toFields converts key/value pairs to a field map. URLs lose their query string.
func toFields(keysAndValues []interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(keysAndValues)/2)

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key := fmt.Sprint(keysAndValues[i])
		value := keysAndValues[i+1]

		switch typed := value.(type) {
		case string:
			if key == "url" {
				value = stripQuery(typed)
			}
		case *url.URL:
			value = stripQuery(typed.String())
		case error:
			value = redact(typed).Error()
		}

		fields[key] = value
	}

	return fields
}
