package massive

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	path   string
	query  url.Values
	header http.Header
}

func newCaptureServer(t *testing.T, status int, body string) (*httptest.Server, *capturedRequest) {
	t.Helper()

	captured := &capturedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.path = r.URL.Path
		captured.query = r.URL.Query()
		captured.header = r.Header.Clone()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return server, captured
}

func TestClient_Aggs(t *testing.T) {
	server, captured := newCaptureServer(t, http.StatusOK, `{"results": []}`)
	client := New("test-key", WithBaseURL(server.URL))

	adjusted := true
	payload, err := client.Aggs(context.Background(), "AAPL", AggsParams{
		Multiplier: 1,
		Timespan:   "day",
		From:       "2026-01-01",
		To:         "2026-01-31",
		Adjusted:   &adjusted,
		Sort:       "asc",
		Limit:      50,
	})

	require.NoError(t, err)
	assert.JSONEq(t, `{"results": []}`, string(payload))
	assert.Equal(t, "/v2/aggs/ticker/AAPL/range/1/day/2026-01-01/2026-01-31", captured.path)
	assert.Equal(t, "true", captured.query.Get("adjusted"))
	assert.Equal(t, "asc", captured.query.Get("sort"))
	assert.Equal(t, "50", captured.query.Get("limit"))
	assert.Equal(t, "Bearer test-key", captured.header.Get("Authorization"))
	assert.Equal(t, "massive-gateway/1.0", captured.header.Get("User-Agent"))
}

func TestClient_ListTrades_RangeFilterEncoding(t *testing.T) {
	server, captured := newCaptureServer(t, http.StatusOK, `{"results": []}`)
	client := New("test-key", WithBaseURL(server.URL))

	_, err := client.ListTrades(context.Background(), "MSFT", TickParams{
		Timestamp: RangeFilter{GTE: "2026-01-01", LT: "2026-02-01"},
		Limit:     10,
		Order:     "desc",
	})

	require.NoError(t, err)
	assert.Equal(t, "/v3/trades/MSFT", captured.path)
	assert.Equal(t, "2026-01-01", captured.query.Get("timestamp.gte"))
	assert.Equal(t, "2026-02-01", captured.query.Get("timestamp.lt"))
	assert.Empty(t, captured.query.Get("timestamp"))
	assert.Equal(t, "desc", captured.query.Get("order"))
}

func TestClient_ListRatios_FloatRangeEncoding(t *testing.T) {
	server, captured := newCaptureServer(t, http.StatusOK, `{"results": []}`)
	client := New("test-key", WithBaseURL(server.URL))

	pe := 15.0
	yield := 0.02
	_, err := client.ListRatios(context.Background(), RatiosParams{
		PriceToEarnings: FloatRange{LT: &pe},
		DividendYield:   FloatRange{GTE: &yield},
		Limit:           10,
	})

	require.NoError(t, err)
	assert.Equal(t, "/stocks/v1/ratios", captured.path)
	assert.Equal(t, "15", captured.query.Get("price_to_earnings.lt"))
	assert.Equal(t, "0.02", captured.query.Get("dividend_yield.gte"))
}

func TestClient_GroupedDailyAggs_Defaults(t *testing.T) {
	server, captured := newCaptureServer(t, http.StatusOK, `{"results": []}`)
	client := New("test-key", WithBaseURL(server.URL))

	_, err := client.GroupedDailyAggs(context.Background(), "2026-03-02", GroupedDailyParams{})

	require.NoError(t, err)
	assert.Equal(t, "/v2/aggs/grouped/locale/us/market/stocks/2026-03-02", captured.path)
}

func TestClient_UpstreamError(t *testing.T) {
	server, _ := newCaptureServer(t, http.StatusNotFound,
		`{"status": "NOT_FOUND", "error": "Ticker not found.", "request_id": "req-123"}`)
	client := New("test-key", WithBaseURL(server.URL))

	_, err := client.LastTrade(context.Background(), "NOPE")

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Equal(t, "Ticker not found.", statusErr.Message)
	assert.Equal(t, "req-123", statusErr.RequestID)
}

func TestClient_UpstreamErrorWithoutBody(t *testing.T) {
	server, _ := newCaptureServer(t, http.StatusInternalServerError, ``)
	client := New("test-key", WithBaseURL(server.URL))

	_, err := client.MarketStatus(context.Background())

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Equal(t, "Internal Server Error", statusErr.Message)
}

func TestClient_NoAPIKeySkipsAuthHeader(t *testing.T) {
	server, captured := newCaptureServer(t, http.StatusOK, `{}`)
	client := New("", WithBaseURL(server.URL))

	_, err := client.MarketStatus(context.Background())

	require.NoError(t, err)
	assert.Empty(t, captured.header.Get("Authorization"))
	assert.False(t, client.APIKeyConfigured())
}
