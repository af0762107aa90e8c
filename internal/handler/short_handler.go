package handler

import (
	"net/http"

	"massive-gateway/internal/massive"
)

// ShortHandler serves the short interest and short volume endpoints.
type ShortHandler struct {
	client *massive.Client
}

func NewShortHandler(client *massive.Client) *ShortHandler {
	return &ShortHandler{client: client}
}

func (h *ShortHandler) Interest(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit, err := queryLimit(q, 10, 1000)
	if err != nil {
		writeError(w, err)
		return
	}

	payload, err := h.client.ListShortInterest(r.Context(), massive.ShortInterestParams{
		Ticker:         queryStr(q, "ticker"),
		SettlementDate: rangeFilter(q, "settlement_date"),
		Limit:          limit,
		Sort:           queryStr(q, "sort"),
		Order:          queryStr(q, "order"),
	})
	respondCSV(w, payload, err)
}

func (h *ShortHandler) Volume(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit, err := queryLimit(q, 10, 1000)
	if err != nil {
		writeError(w, err)
		return
	}

	payload, err := h.client.ListShortVolume(r.Context(), massive.ShortVolumeParams{
		Ticker: queryStr(q, "ticker"),
		Date:   rangeFilter(q, "date"),
		Limit:  limit,
		Sort:   queryStr(q, "sort"),
		Order:  queryStr(q, "order"),
	})
	respondCSV(w, payload, err)
}
