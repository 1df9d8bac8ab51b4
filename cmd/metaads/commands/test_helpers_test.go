package commands

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const testToken = "cli-test-token"

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

func subcommandNames(cmd *cobra.Command) []string {
	var names []string
	for _, subcmd := range cmd.Commands() {
		names = append(names, subcmd.Name())
	}

	return names
}

type seenRequest struct {
	Method string
	Path   string
	Query  url.Values
	Form   url.Values
}

// graphStub answers scripted Graph API routes and records every request.
type graphStub struct {
	mu       sync.Mutex
	seen     []seenRequest
	handlers map[string]string
	statuses map[string]int
}

func newGraphStub(t *testing.T) (*graphStub, *httptest.Server) {
	t.Helper()

	stub := &graphStub{handlers: map[string]string{}, statuses: map[string]int{}}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()

		key := r.Method + " " + r.URL.Path

		stub.mu.Lock()
		stub.seen = append(stub.seen, seenRequest{Method: r.Method, Path: r.URL.Path, Query: r.URL.Query(), Form: r.PostForm})
		body, ok := stub.handlers[key]
		status := stub.statuses[key]
		stub.mu.Unlock()

		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"message":"Unsupported request","code":100}}`))

			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return stub, server
}

func (s *graphStub) on(method, path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := method + " /v22.0/" + path
	s.handlers[key] = body
	s.statuses[key] = status
}

func (s *graphStub) requests() []seenRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]seenRequest(nil), s.seen...)
}

// useConfig points the global viper settings at serverURL for one test.
func useConfig(t *testing.T, serverURL, output string) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set(KeyAccessToken, testToken)
	viper.Set(KeyAccountID, "1")
	viper.Set(KeyBaseURL, serverURL)
	viper.Set(KeyOutput, output)
}

// execute runs cmd with args and returns what it printed to stdout and stderr.
func execute(cmd *cobra.Command, args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer

	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

// captureFailure returns what WriteFailure prints for err.
func captureFailure(cmd *cobra.Command, err error) string {
	var stderr bytes.Buffer

	cmd.SetErr(&stderr)
	WriteFailure(cmd, err)

	return stderr.String()
}
