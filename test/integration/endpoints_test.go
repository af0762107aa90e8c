//go:build integration

package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoint(t *testing.T) {
	upstream := newUpstreamStub(t, nil)
	server := newGatewayServer(t, upstream.server.URL, "", "")

	status, envelope := getEnvelope(t, server.URL+"/health")
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, envelope.Success)

	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "healthy", data["status"])
	assert.Equal(t, true, data["api_key_configured"])
}

func TestTickersReturnsCSV(t *testing.T) {
	upstream := newUpstreamStub(t, map[string]string{
		"/v3/reference/tickers": `{"results": [
			{"ticker": "AAPL", "name": "Apple Inc.", "market": "stocks", "active": true},
			{"ticker": "MSFT", "name": "Microsoft Corporation", "market": "stocks", "active": true}
		]}`,
	})
	server := newGatewayServer(t, upstream.server.URL, "", "")

	status, envelope := getEnvelope(t, server.URL+"/api/tickers?search=apple")
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, envelope.Success)

	csvText, ok := envelope.Data.(string)
	require.True(t, ok)
	assert.Equal(t,
		"active,market,name,ticker\n"+
			"true,stocks,Apple Inc.,AAPL\n"+
			"true,stocks,Microsoft Corporation,MSFT\n",
		csvText)
}

func TestMarketHolidaysTopLevelArray(t *testing.T) {
	upstream := newUpstreamStub(t, map[string]string{
		"/v1/marketstatus/upcoming": `[
			{"date": "2026-11-26", "exchange": "NYSE", "name": "Thanksgiving", "status": "closed"}
		]`,
	})
	server := newGatewayServer(t, upstream.server.URL, "", "")

	status, envelope := getEnvelope(t, server.URL+"/api/market/holidays")
	assert.Equal(t, http.StatusOK, status)
	require.True(t, envelope.Success)

	csvText, ok := envelope.Data.(string)
	require.True(t, ok)
	assert.Equal(t, "date,exchange,name,status\n2026-11-26,NYSE,Thanksgiving,closed\n", csvText)
}

func TestSnapshotRouting(t *testing.T) {
	upstream := newUpstreamStub(t, nil)
	server := newGatewayServer(t, upstream.server.URL, "", "")

	for _, path := range []string{
		"/api/snapshot/stocks/all",
		"/api/snapshot/stocks/gainers",
		"/api/snapshot/stocks/ticker/AAPL",
	} {
		status, envelope := getEnvelope(t, server.URL+path)
		assert.Equal(t, http.StatusOK, status, path)
		assert.True(t, envelope.Success, path)
	}

	assert.Equal(t, []string{
		"/v2/snapshot/locale/us/markets/stocks/tickers",
		"/v2/snapshot/locale/us/markets/stocks/gainers",
		"/v2/snapshot/locale/us/markets/stocks/tickers/AAPL",
	}, upstream.servedPaths())
}

func TestAggsRoutesDoNotShadowEachOther(t *testing.T) {
	upstream := newUpstreamStub(t, nil)
	server := newGatewayServer(t, upstream.server.URL, "", "")

	status, _ := getEnvelope(t, server.URL+"/api/aggs/grouped/2026-03-02")
	assert.Equal(t, http.StatusOK, status)

	status, _ = getEnvelope(t, server.URL+"/api/aggs/AAPL/prev")
	assert.Equal(t, http.StatusOK, status)

	status, _ = getEnvelope(t, server.URL+"/api/aggs/AAPL/open-close/2026-03-02")
	assert.Equal(t, http.StatusOK, status)

	assert.Equal(t, []string{
		"/v2/aggs/grouped/locale/us/market/stocks/2026-03-02",
		"/v2/aggs/ticker/AAPL/prev",
		"/v1/open-close/AAPL/2026-03-02",
	}, upstream.servedPaths())
}

func TestUsageDisabledReturns503(t *testing.T) {
	upstream := newUpstreamStub(t, nil)
	server := newGatewayServer(t, upstream.server.URL, "", "")

	status, envelope := getEnvelope(t, server.URL+"/api/usage")
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.False(t, envelope.Success)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "USAGE_DISABLED", envelope.Error.Code)
}

func TestRequestIDHeaderIsSet(t *testing.T) {
	upstream := newUpstreamStub(t, nil)
	server := newGatewayServer(t, upstream.server.URL, "", "")

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}
