package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"massive-gateway/internal/model"
	"massive-gateway/internal/service"
	"massive-gateway/pkg/apierror"
)

type AuthHandler struct {
	service *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{service: authService}
}

// Token serves POST /api/auth/token: client credentials in, JWT out.
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	payload.ClientID = strings.TrimSpace(payload.ClientID)
	if payload.ClientID == "" {
		writeError(w, apierror.New("BAD_REQUEST", "client_id is required", "client_id", http.StatusBadRequest))
		return
	}

	token, err := h.service.IssueToken(payload.ClientID, payload.ClientSecret)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, token, nil)
}
