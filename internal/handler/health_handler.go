package handler

import (
	"net/http"

	"massive-gateway/internal/massive"
	"massive-gateway/internal/model"
)

type HealthHandler struct {
	client *massive.Client
}

func NewHealthHandler(client *massive.Client) *HealthHandler {
	return &HealthHandler{client: client}
}

func (h *HealthHandler) Check(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, http.StatusOK, model.HealthStatus{
		Status:           "healthy",
		APIKeyConfigured: h.client.APIKeyConfigured(),
	}, nil)
}
