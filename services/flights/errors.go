package flights

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"flightbridge/services/amadeus"
)

type Kind string

const (
	KindValidation Kind = "validation"
	KindUpstream   Kind = "upstream"
	KindTransport  Kind = "transport"
	KindTimeout    Kind = "timeout"
)

// Error is what SearchFlights returns on failure. Status is the HTTP status
// the caller should answer with.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Details string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

func newValidationError(msg string) *Error {
	return &Error{Kind: KindValidation, Status: http.StatusBadRequest, Message: msg}
}

// classify maps a provider failure onto the error taxonomy.
func classify(err error) *Error {
	var apiErr *amadeus.APIError
	var netErr net.Error

	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		return &Error{
			Kind:    KindTimeout,
			Status:  http.StatusGatewayTimeout,
			Message: "flight provider timed out",
			Err:     err,
		}
	case errors.As(err, &apiErr):
		status := apiErr.StatusCode
		if status < 400 || status > 599 {
			status = http.StatusInternalServerError
		}
		return &Error{
			Kind:    KindUpstream,
			Status:  status,
			Message: "failed to search flights",
			Details: apiErr.Description(),
			Err:     err,
		}
	case errors.Is(err, amadeus.ErrMalformedResponse):
		return &Error{
			Kind:    KindUpstream,
			Status:  http.StatusInternalServerError,
			Message: "failed to search flights",
			Details: "malformed response from flight provider",
			Err:     err,
		}
	default:
		return &Error{
			Kind:    KindTransport,
			Status:  http.StatusInternalServerError,
			Message: "failed to reach flight provider",
			Err:     err,
		}
	}
}
