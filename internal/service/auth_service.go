package service

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"massive-gateway/internal/model"
	"massive-gateway/pkg/apierror"
)

// ClientCredential is one entry of the clients file. Secrets are stored
// bcrypt-hashed; the plaintext only travels in the token request body.
type ClientCredential struct {
	ClientID   string `json:"client_id"`
	Name       string `json:"name"`
	SecretHash string `json:"secret_hash"`
}

type Claims struct {
	ClientID string `json:"client_id"`
	Name     string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// AuthService issues and validates gateway access tokens. With an empty
// JWT secret the service is disabled and every endpoint stays open,
// matching the unauthenticated upstream wrapper.
type AuthService struct {
	jwtSecret []byte
	accessTTL time.Duration
	clients   map[string]ClientCredential
}

func NewAuthService(clientsFile string, jwtSecret string, accessTTL time.Duration) (*AuthService, error) {
	service := &AuthService{
		jwtSecret: []byte(strings.TrimSpace(jwtSecret)),
		accessTTL: accessTTL,
		clients:   map[string]ClientCredential{},
	}

	if !service.Enabled() {
		return service, nil
	}

	raw, err := os.ReadFile(clientsFile)
	if err != nil {
		return nil, fmt.Errorf("read clients file: %w", err)
	}

	var credentials []ClientCredential
	if err := json.Unmarshal(raw, &credentials); err != nil {
		return nil, fmt.Errorf("parse clients file: %w", err)
	}

	for _, cred := range credentials {
		id := strings.ToLower(strings.TrimSpace(cred.ClientID))
		if id == "" || strings.TrimSpace(cred.SecretHash) == "" {
			continue
		}
		cred.ClientID = id
		service.clients[id] = cred
	}

	if len(service.clients) == 0 {
		return nil, fmt.Errorf("clients file %s holds no usable credentials", clientsFile)
	}

	return service, nil
}

func (s *AuthService) Enabled() bool {
	return len(s.jwtSecret) > 0
}

func (s *AuthService) IssueToken(clientID string, clientSecret string) (model.TokenResponse, error) {
	if !s.Enabled() {
		return model.TokenResponse{}, apierror.New("AUTH_DISABLED", "authentication is not enabled on this gateway", "", http.StatusNotFound)
	}

	cred, exists := s.clients[strings.ToLower(strings.TrimSpace(clientID))]
	if !exists {
		return model.TokenResponse{}, apierror.New("UNAUTHORIZED", "invalid client credentials", "", http.StatusUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.SecretHash), []byte(clientSecret)); err != nil {
		return model.TokenResponse{}, apierror.New("UNAUTHORIZED", "invalid client credentials", "", http.StatusUnauthorized)
	}

	now := time.Now().UTC()
	claims := Claims{
		ClientID: cred.ClientID,
		Name:     cred.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   cred.ClientID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return model.TokenResponse{}, fmt.Errorf("sign access token: %w", err)
	}

	return model.TokenResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.accessTTL.Seconds()),
	}, nil
}

func (s *AuthService) ValidateToken(raw string) (Claims, error) {
	parsed, err := jwt.ParseWithClaims(raw, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !parsed.Valid {
		return Claims{}, apierror.New("UNAUTHORIZED", "invalid or expired token", "", http.StatusUnauthorized)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return Claims{}, apierror.New("UNAUTHORIZED", "invalid or expired token", "", http.StatusUnauthorized)
	}

	return *claims, nil
}
