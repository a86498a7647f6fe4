package transport

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusCode is an HTTP status code carried both on the status line and in the envelope's code field.
type StatusCode uint16

const (
	StatusContinue           StatusCode = http.StatusContinue
	StatusSwitchingProtocols StatusCode = http.StatusSwitchingProtocols

	StatusOK                   StatusCode = http.StatusOK
	StatusCreated              StatusCode = http.StatusCreated
	StatusAccepted             StatusCode = http.StatusAccepted
	StatusNonAuthoritativeInfo StatusCode = http.StatusNonAuthoritativeInfo
	StatusNoContent            StatusCode = http.StatusNoContent
	StatusResetContent         StatusCode = http.StatusResetContent
	StatusPartialContent       StatusCode = http.StatusPartialContent

	StatusMultipleChoices   StatusCode = http.StatusMultipleChoices
	StatusMovedPermanently  StatusCode = http.StatusMovedPermanently
	StatusFound             StatusCode = http.StatusFound
	StatusSeeOther          StatusCode = http.StatusSeeOther
	StatusNotModified       StatusCode = http.StatusNotModified
	StatusTemporaryRedirect StatusCode = http.StatusTemporaryRedirect
	StatusPermanentRedirect StatusCode = http.StatusPermanentRedirect

	StatusBadRequest            StatusCode = http.StatusBadRequest
	StatusUnauthorized          StatusCode = http.StatusUnauthorized
	StatusPaymentRequired       StatusCode = http.StatusPaymentRequired
	StatusForbidden             StatusCode = http.StatusForbidden
	StatusNotFound              StatusCode = http.StatusNotFound
	StatusMethodNotAllowed      StatusCode = http.StatusMethodNotAllowed
	StatusNotAcceptable         StatusCode = http.StatusNotAcceptable
	StatusRequestTimeout        StatusCode = http.StatusRequestTimeout
	StatusConflict              StatusCode = http.StatusConflict
	StatusGone                  StatusCode = http.StatusGone
	StatusPreconditionFailed    StatusCode = http.StatusPreconditionFailed
	StatusRequestEntityTooLarge StatusCode = http.StatusRequestEntityTooLarge
	StatusUnsupportedMediaType  StatusCode = http.StatusUnsupportedMediaType
	StatusTeapot                StatusCode = http.StatusTeapot
	StatusUnprocessableEntity   StatusCode = http.StatusUnprocessableEntity
	StatusTooManyRequests       StatusCode = http.StatusTooManyRequests

	StatusInternalServerError StatusCode = http.StatusInternalServerError
	StatusNotImplemented      StatusCode = http.StatusNotImplemented
	StatusBadGateway          StatusCode = http.StatusBadGateway
	StatusServiceUnavailable  StatusCode = http.StatusServiceUnavailable
	StatusGatewayTimeout      StatusCode = http.StatusGatewayTimeout
)

// ErrUnknownStatus is returned by ParseStatusCode for codes outside the standard registry.
var ErrUnknownStatus = errors.New("jsonresponse: unknown status code")

// ParseStatusCode converts a runtime integer into a StatusCode, failing closed
// when the code has no canonical reason phrase.
func ParseStatusCode(code int) (StatusCode, error) {
	if code < 100 || code > 999 {
		return 0, fmt.Errorf("%w: %d", ErrUnknownStatus, code)
	}
	sc := StatusCode(code)
	if _, ok := sc.Reason(); !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownStatus, code)
	}
	return sc, nil
}

// Reason returns the canonical reason phrase, e.g. "Not Found" for 404.
func (c StatusCode) Reason() (string, bool) {
	reason := http.StatusText(int(c))
	return reason, reason != ""
}

// Valid reports whether the code fits a status line (three digits).
func (c StatusCode) Valid() bool {
	return c >= 100 && c <= 999
}

// Int returns the code as an int for APIs such as http.ResponseWriter.WriteHeader.
func (c StatusCode) Int() int {
	return int(c)
}

func (c StatusCode) String() string {
	if reason, ok := c.Reason(); ok {
		return fmt.Sprintf("%d %s", uint16(c), reason)
	}
	return fmt.Sprintf("%d", uint16(c))
}
