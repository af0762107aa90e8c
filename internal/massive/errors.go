package massive

import "fmt"

// StatusError is a non-2xx answer from the upstream API.
type StatusError struct {
	StatusCode int
	Message    string
	RequestID  string
}

func (e *StatusError) Error() string {
	if e.RequestID != "" {
		return fmt.Sprintf("upstream status %d: %s (request %s)", e.StatusCode, e.Message, e.RequestID)
	}
	return fmt.Sprintf("upstream status %d: %s", e.StatusCode, e.Message)
}
