package handler

import (
	"net/http"

	"massive-gateway/internal/massive"
)

type FinancialsHandler struct {
	client *massive.Client
}

func NewFinancialsHandler(client *massive.Client) *FinancialsHandler {
	return &FinancialsHandler{client: client}
}

// List serves GET /api/financials: fundamental statements per company.
func (h *FinancialsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	includeSources, err := queryBool(q, "include_sources")
	if err != nil {
		writeError(w, err)
		return
	}
	limit, err := queryLimit(q, 10, 100)
	if err != nil {
		writeError(w, err)
		return
	}

	payload, err := h.client.ListStockFinancials(r.Context(), massive.StockFinancialsParams{
		Ticker:         queryStr(q, "ticker"),
		CIK:            queryStr(q, "cik"),
		CompanyName:    queryStr(q, "company_name"),
		Timeframe:      queryStr(q, "timeframe"),
		IncludeSources: includeSources,
		Limit:          limit,
		Sort:           queryStr(q, "sort"),
		Order:          queryStr(q, "order"),
	})
	respondCSV(w, payload, err)
}
