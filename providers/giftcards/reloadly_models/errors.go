package reloadlymodels

import "fmt"

// FailureResponse is the error body Reloadly returns on non-2xx statuses.
type FailureResponse struct {
	Message   string `json:"message"`
	ErrorCode string `json:"errorCode"`
}

// UpstreamError is any non-404, non-200 marketplace response. The original
// status is preserved for handlers and tests.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("error from Reloadly API: status %d: %s", e.Status, e.Message)
}

// AuthError is a rejected client-credentials exchange.
type AuthError struct {
	Status int
	Body   string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("getting access token failed: status %d: %s", e.Status, e.Body)
}
