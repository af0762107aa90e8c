package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"massive-gateway/internal/massive"
)

type AggsHandler struct {
	client *massive.Client
}

func NewAggsHandler(client *massive.Client) *AggsHandler {
	return &AggsHandler{client: client}
}

// Range serves GET /api/aggs/{ticker}: aggregate bars over a date range.
func (h *AggsHandler) Range(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ticker := chi.URLParam(r, "ticker")

	from, err := requireStr(q, "from")
	if err != nil {
		writeError(w, err)
		return
	}
	to, err := requireStr(q, "to")
	if err != nil {
		writeError(w, err)
		return
	}

	multiplier := 1
	if v, err := queryInt(q, "multiplier"); err != nil {
		writeError(w, err)
		return
	} else if v != nil {
		multiplier = *v
	}

	timespan := queryStr(q, "timespan")
	if timespan == "" {
		timespan = "day"
	}

	adjusted, err := queryBool(q, "adjusted")
	if err != nil {
		writeError(w, err)
		return
	}

	limit, err := queryLimit(q, 50, 50000)
	if err != nil {
		writeError(w, err)
		return
	}

	payload, err := h.client.Aggs(r.Context(), ticker, massive.AggsParams{
		Multiplier: multiplier,
		Timespan:   timespan,
		From:       from,
		To:         to,
		Adjusted:   adjusted,
		Sort:       queryStr(q, "sort"),
		Limit:      limit,
	})
	respondCSV(w, payload, err)
}

// GroupedDaily serves GET /api/aggs/grouped/{date}: whole-market daily bars.
func (h *AggsHandler) GroupedDaily(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	adjusted, err := queryBool(q, "adjusted")
	if err != nil {
		writeError(w, err)
		return
	}
	includeOTC, err := queryBool(q, "include_otc")
	if err != nil {
		writeError(w, err)
		return
	}

	payload, err := h.client.GroupedDailyAggs(r.Context(), chi.URLParam(r, "date"), massive.GroupedDailyParams{
		Adjusted:   adjusted,
		IncludeOTC: includeOTC,
		Locale:     queryStr(q, "locale"),
		MarketType: queryStr(q, "market_type"),
	})
	respondCSV(w, payload, err)
}

// DailyOpenClose serves GET /api/aggs/{ticker}/open-close/{date}.
func (h *AggsHandler) DailyOpenClose(w http.ResponseWriter, r *http.Request) {
	adjusted, err := queryBool(r.URL.Query(), "adjusted")
	if err != nil {
		writeError(w, err)
		return
	}

	payload, err := h.client.DailyOpenClose(r.Context(), chi.URLParam(r, "ticker"), chi.URLParam(r, "date"), adjusted)
	respondCSV(w, payload, err)
}

// PreviousClose serves GET /api/aggs/{ticker}/prev.
func (h *AggsHandler) PreviousClose(w http.ResponseWriter, r *http.Request) {
	adjusted, err := queryBool(r.URL.Query(), "adjusted")
	if err != nil {
		writeError(w, err)
		return
	}

	payload, err := h.client.PreviousClose(r.Context(), chi.URLParam(r, "ticker"), adjusted)
	respondCSV(w, payload, err)
}
