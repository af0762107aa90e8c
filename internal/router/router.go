package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"massive-gateway/internal/config"
	"massive-gateway/internal/handler"
	"massive-gateway/internal/middleware"
	"massive-gateway/internal/service"
)

type Handlers struct {
	Health     *handler.HealthHandler
	Auth       *handler.AuthHandler
	Usage      *handler.UsageHandler
	Aggs       *handler.AggsHandler
	Trades     *handler.TradesHandler
	Quotes     *handler.QuotesHandler
	Snapshot   *handler.SnapshotHandler
	Market     *handler.MarketHandler
	Tickers    *handler.TickersHandler
	Corporate  *handler.CorporateActionsHandler
	Short      *handler.ShortHandler
	Financials *handler.FinancialsHandler
	Economy    *handler.EconomyHandler
	Ratios     *handler.RatiosHandler
}

func New(cfg *config.Config, authMiddleware *middleware.AuthMiddleware, usageService *service.UsageService, h Handlers) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(rateLimitMiddleware.Handler)

	r.Get("/health", h.Health.Check)

	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.Timeout(cfg.RequestTimeout))

		api.Post("/auth/token", h.Auth.Token)

		api.Group(func(data chi.Router) {
			data.Use(middleware.Usage(usageService))
			data.Use(authMiddleware.RequireAuth)

			data.Get("/aggs/grouped/{date}", h.Aggs.GroupedDaily)
			data.Get("/aggs/{ticker}", h.Aggs.Range)
			data.Get("/aggs/{ticker}/open-close/{date}", h.Aggs.DailyOpenClose)
			data.Get("/aggs/{ticker}/prev", h.Aggs.PreviousClose)

			data.Get("/trades/{ticker}", h.Trades.List)
			data.Get("/trades/{ticker}/last", h.Trades.Last)
			data.Get("/quotes/{ticker}", h.Quotes.List)
			data.Get("/quotes/{ticker}/last", h.Quotes.Last)

			data.Get("/snapshot/{market_type}/all", h.Snapshot.All)
			data.Get("/snapshot/{market_type}/ticker/{ticker}", h.Snapshot.Ticker)
			data.Get("/snapshot/{market_type}/{direction}", h.Snapshot.Direction)

			data.Get("/market/holidays", h.Market.Holidays)
			data.Get("/market/status", h.Market.Status)

			data.Get("/tickers", h.Tickers.List)
			data.Get("/tickers/{ticker}", h.Tickers.Details)
			data.Get("/tickers/{ticker}/news", h.Tickers.News)

			data.Get("/dividends", h.Corporate.Dividends)
			data.Get("/splits", h.Corporate.Splits)

			data.Get("/short-interest", h.Short.Interest)
			data.Get("/short-volume", h.Short.Volume)

			data.Get("/financials", h.Financials.List)

			data.Get("/treasury-yields", h.Economy.TreasuryYields)
			data.Get("/inflation", h.Economy.Inflation)

			data.Get("/ratios", h.Ratios.List)

			data.Get("/usage", h.Usage.List)
		})
	})

	return r
}
