//go:build integration

package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"massive-gateway/internal/config"
	"massive-gateway/internal/handler"
	"massive-gateway/internal/massive"
	"massive-gateway/internal/middleware"
	"massive-gateway/internal/model"
	"massive-gateway/internal/router"
	"massive-gateway/internal/service"
)

// upstreamStub plays the Massive API: canned JSON per path, default empty
// result set, and it remembers the paths it served.
type upstreamStub struct {
	server *httptest.Server

	mu    sync.Mutex
	paths []string
}

func newUpstreamStub(t *testing.T, responses map[string]string) *upstreamStub {
	t.Helper()

	stub := &upstreamStub{}
	stub.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stub.mu.Lock()
		stub.paths = append(stub.paths, r.URL.Path)
		stub.mu.Unlock()

		body, ok := responses[r.URL.Path]
		if !ok {
			body = `{"status": "OK", "results": []}`
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(stub.server.Close)

	return stub
}

func (s *upstreamStub) servedPaths() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.paths...)
}

func newGatewayServer(t *testing.T, upstreamURL string, jwtSecret string, clientsFile string) *httptest.Server {
	t.Helper()

	cfg := &config.Config{
		ServerPort:       "8000",
		RequestTimeout:   30 * time.Second,
		UpstreamTimeout:  30 * time.Second,
		CORSOrigins:      []string{"*"},
		RateLimitRPM:     1000,
		AuthRateLimitRPM: 1000,
		JWTSecret:        jwtSecret,
		JWTAccessTTL:     time.Hour,
		ClientsFile:      clientsFile,
	}

	client := massive.New("integration-key", massive.WithBaseURL(upstreamURL))

	authService, err := service.NewAuthService(cfg.ClientsFile, cfg.JWTSecret, cfg.JWTAccessTTL)
	require.NoError(t, err)
	usageService := service.NewUsageService(nil)

	appRouter := router.New(cfg, middleware.NewAuthMiddleware(authService), usageService, router.Handlers{
		Health:     handler.NewHealthHandler(client),
		Auth:       handler.NewAuthHandler(authService),
		Usage:      handler.NewUsageHandler(usageService),
		Aggs:       handler.NewAggsHandler(client),
		Trades:     handler.NewTradesHandler(client),
		Quotes:     handler.NewQuotesHandler(client),
		Snapshot:   handler.NewSnapshotHandler(client),
		Market:     handler.NewMarketHandler(client),
		Tickers:    handler.NewTickersHandler(client),
		Corporate:  handler.NewCorporateActionsHandler(client),
		Short:      handler.NewShortHandler(client),
		Financials: handler.NewFinancialsHandler(client),
		Economy:    handler.NewEconomyHandler(client),
		Ratios:     handler.NewRatiosHandler(client),
	})

	server := httptest.NewServer(appRouter)
	t.Cleanup(server.Close)
	return server
}

func getEnvelope(t *testing.T, url string) (int, model.APIResponse) {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope model.APIResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp.StatusCode, envelope
}
