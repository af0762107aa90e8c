package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"massive-gateway/internal/massive"
	"massive-gateway/internal/model"
)

func newAggsServer(t *testing.T, upstreamStatus int, upstreamBody string) *httptest.Server {
	t.Helper()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(upstreamStatus)
		_, _ = w.Write([]byte(upstreamBody))
	}))
	t.Cleanup(upstream.Close)

	h := NewAggsHandler(massive.New("test-key", massive.WithBaseURL(upstream.URL)))

	r := chi.NewRouter()
	r.Get("/api/aggs/{ticker}", h.Range)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server
}

func decodeEnvelope(t *testing.T, resp *http.Response) model.APIResponse {
	t.Helper()
	defer resp.Body.Close()

	var envelope model.APIResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return envelope
}

func TestAggsRange_Success(t *testing.T) {
	server := newAggsServer(t, http.StatusOK,
		`{"ticker": "AAPL", "results": [{"o": 187.1, "c": 189.5, "v": 51234000, "t": 1767225600000}]}`)

	resp, err := http.Get(server.URL + "/api/aggs/AAPL?from=2026-01-01&to=2026-01-31")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	assert.True(t, envelope.Success)
	assert.Nil(t, envelope.Error)

	csvText, ok := envelope.Data.(string)
	require.True(t, ok)
	assert.Equal(t, "c,o,t,v\n189.5,187.1,1767225600000,51234000\n", csvText)
}

func TestAggsRange_MissingRequiredParam(t *testing.T) {
	server := newAggsServer(t, http.StatusOK, `{"results": []}`)

	resp, err := http.Get(server.URL + "/api/aggs/AAPL?from=2026-01-01")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	assert.False(t, envelope.Success)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "BAD_REQUEST", envelope.Error.Code)
	assert.Equal(t, "to", envelope.Error.Details)
}

func TestAggsRange_MalformedBoolParam(t *testing.T) {
	server := newAggsServer(t, http.StatusOK, `{"results": []}`)

	resp, err := http.Get(server.URL + "/api/aggs/AAPL?from=2026-01-01&to=2026-01-31&adjusted=sometimes")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	assert.False(t, envelope.Success)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "BAD_REQUEST", envelope.Error.Code)
}

func TestAggsRange_UpstreamErrorPassthrough(t *testing.T) {
	server := newAggsServer(t, http.StatusUnauthorized,
		`{"status": "ERROR", "error": "Unknown API Key", "request_id": "req-9"}`)

	resp, err := http.Get(server.URL + "/api/aggs/AAPL?from=2026-01-01&to=2026-01-31")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	assert.False(t, envelope.Success)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "UPSTREAM_ERROR", envelope.Error.Code)
	assert.Equal(t, "Unknown API Key", envelope.Error.Message)
}

func TestAggsRange_MalformedUpstreamPayload(t *testing.T) {
	server := newAggsServer(t, http.StatusOK, `{"results": [`)

	resp, err := http.Get(server.URL + "/api/aggs/AAPL?from=2026-01-01&to=2026-01-31")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	assert.False(t, envelope.Success)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "UPSTREAM_PAYLOAD", envelope.Error.Code)
}
