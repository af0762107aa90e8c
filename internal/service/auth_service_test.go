package service

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func writeClientsFile(t *testing.T, secret string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.MinCost)
	require.NoError(t, err)

	payload, err := json.Marshal([]ClientCredential{
		{ClientID: "Analytics-Team", Name: "Analytics", SecretHash: string(hash)},
	})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "clients.json")
	require.NoError(t, os.WriteFile(path, payload, 0o600))
	return path
}

func TestAuthService_IssueAndValidate(t *testing.T) {
	clientsFile := writeClientsFile(t, "s3cret")

	svc, err := NewAuthService(clientsFile, "test-signing-secret", time.Hour)
	require.NoError(t, err)
	require.True(t, svc.Enabled())

	// Client IDs are matched case-insensitively.
	token, err := svc.IssueToken("analytics-team", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.Equal(t, int64(3600), token.ExpiresIn)
	assert.NotEmpty(t, token.AccessToken)

	claims, err := svc.ValidateToken(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "analytics-team", claims.ClientID)
	assert.Equal(t, "Analytics", claims.Name)
}

func TestAuthService_RejectsBadCredentials(t *testing.T) {
	clientsFile := writeClientsFile(t, "s3cret")

	svc, err := NewAuthService(clientsFile, "test-signing-secret", time.Hour)
	require.NoError(t, err)

	_, err = svc.IssueToken("analytics-team", "wrong")
	assert.Error(t, err)

	_, err = svc.IssueToken("unknown-client", "s3cret")
	assert.Error(t, err)
}

func TestAuthService_RejectsForeignToken(t *testing.T) {
	clientsFile := writeClientsFile(t, "s3cret")

	issuer, err := NewAuthService(clientsFile, "secret-a", time.Hour)
	require.NoError(t, err)
	verifier, err := NewAuthService(clientsFile, "secret-b", time.Hour)
	require.NoError(t, err)

	token, err := issuer.IssueToken("analytics-team", "s3cret")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token.AccessToken)
	assert.Error(t, err)
}

func TestAuthService_ExpiredToken(t *testing.T) {
	clientsFile := writeClientsFile(t, "s3cret")

	svc, err := NewAuthService(clientsFile, "test-signing-secret", -time.Minute)
	require.NoError(t, err)

	token, err := svc.IssueToken("analytics-team", "s3cret")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token.AccessToken)
	assert.Error(t, err)
}

func TestAuthService_DisabledWithoutSecret(t *testing.T) {
	svc, err := NewAuthService("does-not-matter.json", "", time.Hour)
	require.NoError(t, err)
	assert.False(t, svc.Enabled())

	_, err = svc.IssueToken("anyone", "anything")
	assert.Error(t, err)
}

func TestAuthService_MissingClientsFile(t *testing.T) {
	_, err := NewAuthService(filepath.Join(t.TempDir(), "missing.json"), "secret", time.Hour)
	assert.Error(t, err)
}
