package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"massive-gateway/internal/massive"
)

type TickersHandler struct {
	client *massive.Client
}

func NewTickersHandler(client *massive.Client) *TickersHandler {
	return &TickersHandler{client: client}
}

// List serves GET /api/tickers: reference ticker search.
func (h *TickersHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	active, err := queryBool(q, "active")
	if err != nil {
		writeError(w, err)
		return
	}
	limit, err := queryLimit(q, 10, 1000)
	if err != nil {
		writeError(w, err)
		return
	}

	payload, err := h.client.ListTickers(r.Context(), massive.TickersParams{
		Ticker:   queryStr(q, "ticker"),
		Type:     queryStr(q, "type"),
		Market:   queryStr(q, "market"),
		Exchange: queryStr(q, "exchange"),
		CUSIP:    queryStr(q, "cusip"),
		CIK:      queryStr(q, "cik"),
		Date:     queryStr(q, "date"),
		Search:   queryStr(q, "search"),
		Active:   active,
		Sort:     queryStr(q, "sort"),
		Order:    queryStr(q, "order"),
		Limit:    limit,
	})
	respondCSV(w, payload, err)
}

// Details serves GET /api/tickers/{ticker}.
func (h *TickersHandler) Details(w http.ResponseWriter, r *http.Request) {
	payload, err := h.client.TickerDetails(r.Context(), chi.URLParam(r, "ticker"), queryStr(r.URL.Query(), "date"))
	respondCSV(w, payload, err)
}

// News serves GET /api/tickers/{ticker}/news.
func (h *TickersHandler) News(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit, err := queryLimit(q, 10, 1000)
	if err != nil {
		writeError(w, err)
		return
	}

	payload, err := h.client.ListTickerNews(r.Context(), chi.URLParam(r, "ticker"), massive.TickerNewsParams{
		PublishedUTC: queryStr(q, "published_utc"),
		Limit:        limit,
		Sort:         queryStr(q, "sort"),
		Order:        queryStr(q, "order"),
	})
	respondCSV(w, payload, err)
}
