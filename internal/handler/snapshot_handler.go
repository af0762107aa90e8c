package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"massive-gateway/internal/massive"
)

type SnapshotHandler struct {
	client *massive.Client
}

func NewSnapshotHandler(client *massive.Client) *SnapshotHandler {
	return &SnapshotHandler{client: client}
}

// All serves GET /api/snapshot/{market_type}/all.
func (h *SnapshotHandler) All(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	includeOTC, err := queryBool(q, "include_otc")
	if err != nil {
		writeError(w, err)
		return
	}

	var tickers []string
	if raw := queryStr(q, "tickers"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(t); trimmed != "" {
				tickers = append(tickers, trimmed)
			}
		}
	}

	payload, err := h.client.SnapshotAll(r.Context(), chi.URLParam(r, "market_type"), tickers, includeOTC)
	respondCSV(w, payload, err)
}

// Direction serves GET /api/snapshot/{market_type}/{direction} (gainers or losers).
func (h *SnapshotHandler) Direction(w http.ResponseWriter, r *http.Request) {
	includeOTC, err := queryBool(r.URL.Query(), "include_otc")
	if err != nil {
		writeError(w, err)
		return
	}

	payload, err := h.client.SnapshotDirection(r.Context(),
		chi.URLParam(r, "market_type"), chi.URLParam(r, "direction"), includeOTC)
	respondCSV(w, payload, err)
}

// Ticker serves GET /api/snapshot/{market_type}/ticker/{ticker}.
func (h *SnapshotHandler) Ticker(w http.ResponseWriter, r *http.Request) {
	payload, err := h.client.SnapshotTicker(r.Context(),
		chi.URLParam(r, "market_type"), chi.URLParam(r, "ticker"))
	respondCSV(w, payload, err)
}
