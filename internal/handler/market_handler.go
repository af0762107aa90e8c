package handler

import (
	"net/http"

	"massive-gateway/internal/massive"
)

type MarketHandler struct {
	client *massive.Client
}

func NewMarketHandler(client *massive.Client) *MarketHandler {
	return &MarketHandler{client: client}
}

func (h *MarketHandler) Holidays(w http.ResponseWriter, r *http.Request) {
	payload, err := h.client.MarketHolidays(r.Context())
	respondCSV(w, payload, err)
}

func (h *MarketHandler) Status(w http.ResponseWriter, r *http.Request) {
	payload, err := h.client.MarketStatus(r.Context())
	respondCSV(w, payload, err)
}
