package handler

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"massive-gateway/internal/massive"
)

// TradesHandler and QuotesHandler share the tick filter surface
// (timestamp range, limit, sort, order).

type TradesHandler struct {
	client *massive.Client
}

func NewTradesHandler(client *massive.Client) *TradesHandler {
	return &TradesHandler{client: client}
}

func (h *TradesHandler) List(w http.ResponseWriter, r *http.Request) {
	params, err := tickParams(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}

	payload, err := h.client.ListTrades(r.Context(), chi.URLParam(r, "ticker"), params)
	respondCSV(w, payload, err)
}

func (h *TradesHandler) Last(w http.ResponseWriter, r *http.Request) {
	payload, err := h.client.LastTrade(r.Context(), chi.URLParam(r, "ticker"))
	respondCSV(w, payload, err)
}

type QuotesHandler struct {
	client *massive.Client
}

func NewQuotesHandler(client *massive.Client) *QuotesHandler {
	return &QuotesHandler{client: client}
}

func (h *QuotesHandler) List(w http.ResponseWriter, r *http.Request) {
	params, err := tickParams(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}

	payload, err := h.client.ListQuotes(r.Context(), chi.URLParam(r, "ticker"), params)
	respondCSV(w, payload, err)
}

func (h *QuotesHandler) Last(w http.ResponseWriter, r *http.Request) {
	payload, err := h.client.LastQuote(r.Context(), chi.URLParam(r, "ticker"))
	respondCSV(w, payload, err)
}

func tickParams(q url.Values) (massive.TickParams, error) {
	limit, err := queryLimit(q, 10, 50000)
	if err != nil {
		return massive.TickParams{}, err
	}

	return massive.TickParams{
		Timestamp: rangeFilter(q, "timestamp"),
		Limit:     limit,
		Sort:      queryStr(q, "sort"),
		Order:     queryStr(q, "order"),
	}, nil
}
