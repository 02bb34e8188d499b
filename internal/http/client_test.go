package http_test

import (
	"context"
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/lattice-io/lattice-client/internal/auth"
	internalhttp "github.com/lattice-io/lattice-client/internal/http"
	"github.com/lattice-io/lattice-client/pkg/lattice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Get(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, nethttp.MethodGet, r.Method)
		assert.Equal(t, "/v1/apps", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "lattice-client-go", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items": []}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, nil)

	resp, err := client.Get(context.Background(), "/v1/apps", "")
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"items": []}`, string(resp.Body))
}

func TestClient_QueryStringPassedVerbatim(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "pagination%5BpageSize%5D=25&filter%5Bstatus%5D=enabled", r.URL.RawQuery)
		_, _ = w.Write([]byte(`{"items": []}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, nil)

	_, err := client.Get(context.Background(), "/v1/connections",
		"pagination%5BpageSize%5D=25&filter%5Bstatus%5D=enabled")
	require.NoError(t, err)
}

func TestClient_AuthorizationAppliedLast(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "token-123", r.Header.Get(auth.AuthorizationHeader))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, auth.NewTokenAuthorizer("token-123"))

	_, err := client.Get(context.Background(), "/v1/apps", "")
	require.NoError(t, err)
}

func TestClient_PutBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, nethttp.MethodPut, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, readErr := io.ReadAll(r.Body)
		require.NoError(t, readErr)
		assert.JSONEq(t, `{"joinType": "many"}`, string(body))

		_, _ = w.Write([]byte(`{"id": "conn-1", "app": "crm", "object": "contacts"}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, nil)

	resp, err := client.Put(context.Background(), "/v1/connections/crm/contacts/conn-1",
		map[string]string{"joinType": "many"})
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
}

func TestClient_NilBodyOmitted(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		body, readErr := io.ReadAll(r.Body)
		require.NoError(t, readErr)
		assert.Empty(t, body)
		assert.Empty(t, r.Header.Get("Content-Type"))

		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, nil)

	_, err := client.Put(context.Background(), "/v1/connections/crm/contacts/conn-1", nil)
	require.NoError(t, err)

	_, err = client.Delete(context.Background(), "/v1/connections/crm/contacts/conn-1", nil)
	require.NoError(t, err)
}

func TestClient_ErrorResponse(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error":             "invalid_token",
			"error_description": "The access token expired",
		})
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, nil)

	resp, err := client.Get(context.Background(), "/v1/apps", "")
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, nethttp.StatusUnauthorized, resp.StatusCode)

	var apiErr *lattice.APIError

	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, nethttp.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "The access token expired", apiErr.Message)
	assert.True(t, apiErr.IsAuthorizationError())
}

func TestClient_NetworkError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {}))
	server.Close()

	client := internalhttp.NewClient(server.URL, nil)

	resp, err := client.Get(context.Background(), "/v1/apps", "")
	assert.Nil(t, resp)

	var apiErr *lattice.APIError

	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 0, apiErr.StatusCode)
	assert.Equal(t, lattice.ErrorTypeUnknown, apiErr.Type)
	assert.Equal(t, lattice.UnknownErrorMessage, apiErr.Message)
}

func TestClient_CustomHeaders(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "trace-1", r.Header.Get("X-Request-Id"))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, nil, internalhttp.WithUserAgent("lattice-cli/1.0"))

	_, err := client.Do(context.Background(), &internalhttp.Request{
		Method:  nethttp.MethodGet,
		Path:    "/v1/apps",
		Headers: map[string]string{"X-Request-Id": "trace-1"},
	})
	require.NoError(t, err)
}

type recordingLogger struct {
	mu       sync.Mutex
	messages []string
}

func (l *recordingLogger) log(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, msg)
}

func (l *recordingLogger) Debug(msg string, _ map[string]interface{}) { l.log(msg) }
func (l *recordingLogger) Info(msg string, _ map[string]interface{})  { l.log(msg) }
func (l *recordingLogger) Warn(msg string, _ map[string]interface{})  { l.log(msg) }
func (l *recordingLogger) Error(msg string, _ map[string]interface{}) { l.log(msg) }

func TestClient_DebugTracing(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	logger := &recordingLogger{}
	client := internalhttp.NewClient(server.URL, nil,
		internalhttp.WithLogger(logger),
		internalhttp.WithDebug(true))

	_, err := client.Get(context.Background(), "/v1/apps", "")
	require.NoError(t, err)
	assert.Contains(t, logger.messages, "HTTP Request")
	assert.Contains(t, logger.messages, "HTTP Response")
}

func TestClient_NoTracingWithoutDebug(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	logger := &recordingLogger{}
	client := internalhttp.NewClient(server.URL, nil, internalhttp.WithLogger(logger))

	_, err := client.Get(context.Background(), "/v1/apps", "")
	require.NoError(t, err)
	assert.Empty(t, logger.messages)
}
