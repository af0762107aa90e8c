package handler

import (
	"net/http"

	"massive-gateway/internal/massive"
)

// CorporateActionsHandler serves the dividends and splits history endpoints.
type CorporateActionsHandler struct {
	client *massive.Client
}

func NewCorporateActionsHandler(client *massive.Client) *CorporateActionsHandler {
	return &CorporateActionsHandler{client: client}
}

func (h *CorporateActionsHandler) Dividends(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	frequency, err := queryInt(q, "frequency")
	if err != nil {
		writeError(w, err)
		return
	}
	limit, err := queryLimit(q, 10, 1000)
	if err != nil {
		writeError(w, err)
		return
	}

	payload, err := h.client.ListDividends(r.Context(), massive.DividendsParams{
		Ticker:         queryStr(q, "ticker"),
		ExDividendDate: queryStr(q, "ex_dividend_date"),
		Frequency:      frequency,
		DividendType:   queryStr(q, "dividend_type"),
		Limit:          limit,
	})
	respondCSV(w, payload, err)
}

func (h *CorporateActionsHandler) Splits(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	reverseSplit, err := queryBool(q, "reverse_split")
	if err != nil {
		writeError(w, err)
		return
	}
	limit, err := queryLimit(q, 10, 1000)
	if err != nil {
		writeError(w, err)
		return
	}

	payload, err := h.client.ListSplits(r.Context(), massive.SplitsParams{
		Ticker:        queryStr(q, "ticker"),
		ExecutionDate: queryStr(q, "execution_date"),
		ReverseSplit:  reverseSplit,
		Limit:         limit,
	})
	respondCSV(w, payload, err)
}
