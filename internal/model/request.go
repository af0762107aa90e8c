package model

// TokenRequest is the body of POST /api/auth/token.
type TokenRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

// TokenResponse carries an issued access token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// UsageQuery filters the usage log listing.
type UsageQuery struct {
	Endpoint string
	Method   string
	Status   int
	From     string
	To       string
	Page     int
	Limit    int
}

// UsageEntry is one recorded gateway request.
type UsageEntry struct {
	OccurredAt string `json:"occurred_at"`
	Endpoint   string `json:"endpoint"`
	Method     string `json:"method"`
	Status     int    `json:"status"`
	DurationMS int64  `json:"duration_ms"`
	ClientIP   string `json:"client_ip"`
	RequestID  string `json:"request_id"`
}
