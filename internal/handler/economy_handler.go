package handler

import (
	"net/http"
	"net/url"

	"massive-gateway/internal/massive"
)

// EconomyHandler serves the Federal Reserve series endpoints.
type EconomyHandler struct {
	client *massive.Client
}

func NewEconomyHandler(client *massive.Client) *EconomyHandler {
	return &EconomyHandler{client: client}
}

func (h *EconomyHandler) TreasuryYields(w http.ResponseWriter, r *http.Request) {
	params, err := economicSeriesParams(r.URL.Query(), true)
	if err != nil {
		writeError(w, err)
		return
	}

	payload, err := h.client.ListTreasuryYields(r.Context(), params)
	respondCSV(w, payload, err)
}

func (h *EconomyHandler) Inflation(w http.ResponseWriter, r *http.Request) {
	// The inflation series has no order parameter upstream.
	params, err := economicSeriesParams(r.URL.Query(), false)
	if err != nil {
		writeError(w, err)
		return
	}

	payload, err := h.client.ListInflation(r.Context(), params)
	respondCSV(w, payload, err)
}

func economicSeriesParams(q url.Values, withOrder bool) (massive.EconomicSeriesParams, error) {
	limit, err := queryLimit(q, 10, 1000)
	if err != nil {
		return massive.EconomicSeriesParams{}, err
	}

	params := massive.EconomicSeriesParams{
		Date:  rangeFilter(q, "date"),
		Limit: limit,
		Sort:  queryStr(q, "sort"),
	}
	if withOrder {
		params.Order = queryStr(q, "order")
	}
	return params, nil
}
