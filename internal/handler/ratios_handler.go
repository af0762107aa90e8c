package handler

import (
	"net/http"

	"massive-gateway/internal/massive"
)

type RatiosHandler struct {
	client *massive.Client
}

func NewRatiosHandler(client *massive.Client) *RatiosHandler {
	return &RatiosHandler{client: client}
}

// List serves GET /api/ratios: valuation ratio screening with comparison
// filters per ratio.
func (h *RatiosHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	params := massive.RatiosParams{
		Ticker: queryStr(q, "ticker"),
		CIK:    queryStr(q, "cik"),
		Sort:   queryStr(q, "sort"),
	}

	var err error
	if params.Limit, err = queryLimit(q, 10, 1000); err != nil {
		writeError(w, err)
		return
	}

	filters := []struct {
		key  string
		dest *massive.FloatRange
	}{
		{"price", &params.Price},
		{"market_cap", &params.MarketCap},
		{"price_to_earnings", &params.PriceToEarnings},
		{"price_to_book", &params.PriceToBook},
		{"dividend_yield", &params.DividendYield},
		{"return_on_equity", &params.ReturnOnEquity},
		{"debt_to_equity", &params.DebtToEquity},
	}
	for _, f := range filters {
		if *f.dest, err = floatRange(q, f.key); err != nil {
			writeError(w, err)
			return
		}
	}

	payload, err := h.client.ListRatios(r.Context(), params)
	respondCSV(w, payload, err)
}
