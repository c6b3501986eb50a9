package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrAggregationFailed  = errors.New("status aggregation failed")
	ErrServiceNotFound    = errors.New("service not found")
	ErrInvalidRegistry    = errors.New("invalid service registry")
	ErrInvalidToken       = errors.New("invalid token")
	ErrCodeExchangeFailed = errors.New("authorization code exchange failed")
)

// SSOError is returned when the identity provider answers with an unexpected status code.
type SSOError struct {
	StatusCode int
	Endpoint   string
}

func (e *SSOError) Error() string {
	return fmt.Sprintf("sso %s responded with status %d", e.Endpoint, e.StatusCode)
}

func NewSSOError(statusCode int, endpoint string) error {
	return &SSOError{
		StatusCode: statusCode,
		Endpoint:   endpoint,
	}
}
