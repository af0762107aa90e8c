//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"massive-gateway/internal/model"
	"massive-gateway/internal/service"
)

func writeClientsFile(t *testing.T) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	payload, err := json.Marshal([]service.ClientCredential{
		{ClientID: "dashboard", Name: "Dashboard", SecretHash: string(hash)},
	})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "clients.json")
	require.NoError(t, os.WriteFile(path, payload, 0o600))
	return path
}

func requestToken(t *testing.T, serverURL string, clientID string, clientSecret string) (*http.Response, model.APIResponse) {
	t.Helper()

	body, err := json.Marshal(model.TokenRequest{ClientID: clientID, ClientSecret: clientSecret})
	require.NoError(t, err)

	resp, err := http.Post(serverURL+"/api/auth/token", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope model.APIResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp, envelope
}

func TestAuthDisabledKeepsGatewayOpen(t *testing.T) {
	upstream := newUpstreamStub(t, nil)
	server := newGatewayServer(t, upstream.server.URL, "", "")

	status, envelope := getEnvelope(t, server.URL+"/api/market/status")
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, envelope.Success)
}

func TestAuthEnabledRequiresToken(t *testing.T) {
	upstream := newUpstreamStub(t, nil)
	server := newGatewayServer(t, upstream.server.URL, "integration-signing-secret", writeClientsFile(t))

	// No token: rejected before the upstream is contacted.
	status, envelope := getEnvelope(t, server.URL+"/api/market/status")
	assert.Equal(t, http.StatusUnauthorized, status)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "UNAUTHORIZED", envelope.Error.Code)
	assert.Empty(t, upstream.servedPaths())

	// Token flow: credentials in, bearer token out, data endpoint open.
	resp, tokenEnvelope := requestToken(t, server.URL, "dashboard", "s3cret")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, tokenEnvelope.Success)

	data, ok := tokenEnvelope.Data.(map[string]any)
	require.True(t, ok)
	accessToken, ok := data["access_token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, accessToken)

	req, err := http.NewRequest(http.MethodGet, server.URL+"/api/market/status", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+accessToken)

	authed, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer authed.Body.Close()
	assert.Equal(t, http.StatusOK, authed.StatusCode)
	assert.Equal(t, []string{"/v1/marketstatus/now"}, upstream.servedPaths())
}

func TestAuthEnabledRejectsBadCredentials(t *testing.T) {
	upstream := newUpstreamStub(t, nil)
	server := newGatewayServer(t, upstream.server.URL, "integration-signing-secret", writeClientsFile(t))

	resp, envelope := requestToken(t, server.URL, "dashboard", "wrong")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.False(t, envelope.Success)

	resp, _ = requestToken(t, server.URL, "nobody", "s3cret")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthEnabledRejectsGarbageToken(t *testing.T) {
	upstream := newUpstreamStub(t, nil)
	server := newGatewayServer(t, upstream.server.URL, "integration-signing-secret", writeClientsFile(t))

	req, err := http.NewRequest(http.MethodGet, server.URL+"/api/tickers", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer not-a-jwt")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Empty(t, upstream.servedPaths())
}
