package handler

import (
	"net/http"

	"massive-gateway/internal/model"
	"massive-gateway/internal/service"
)

type UsageHandler struct {
	service *service.UsageService
}

func NewUsageHandler(usageService *service.UsageService) *UsageHandler {
	return &UsageHandler{service: usageService}
}

// List serves GET /api/usage: paginated request log.
func (h *UsageHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	query := model.UsageQuery{
		Endpoint: queryStr(q, "endpoint"),
		Method:   queryStr(q, "method"),
		From:     queryStr(q, "from"),
		To:       queryStr(q, "to"),
	}

	if v, err := queryInt(q, "status"); err != nil {
		writeError(w, err)
		return
	} else if v != nil {
		query.Status = *v
	}
	if v, err := queryInt(q, "page"); err != nil {
		writeError(w, err)
		return
	} else if v != nil {
		query.Page = *v
	}
	if v, err := queryInt(q, "limit"); err != nil {
		writeError(w, err)
		return
	} else if v != nil {
		query.Limit = *v
	}

	entries, meta, err := h.service.Query(r.Context(), query)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, entries, &meta)
}
