package transport

import (
	"encoding/json"
	"fmt"
)

const (
	statusSuccess = "success"
	statusFailed  = "failed"
)

// SuccessEnvelope wraps the data returned by a handler that completed normally.
type SuccessEnvelope[D any] struct {
	Status string `json:"status"`
	Code   uint16 `json:"code"`
	Data   D      `json:"data"`
}

// FailureEnvelope carries the canonical reason phrase of the status code,
// optionally followed by a caller supplied message.
type FailureEnvelope struct {
	Status  string `json:"status"`
	Code    uint16 `json:"code"`
	Message string `json:"message"`
}

func newSuccess[D any](code StatusCode, data D) SuccessEnvelope[D] {
	return SuccessEnvelope[D]{
		Status: statusSuccess,
		Code:   uint16(code),
		Data:   data,
	}
}

// newFailure panics when code has no canonical reason phrase: callers are
// expected to pass one of the Status constants or a code from ParseStatusCode.
func newFailure(code StatusCode, message *string) FailureEnvelope {
	reason, ok := code.Reason()
	if !ok {
		panic(fmt.Sprintf("jsonresponse: status code %d has no canonical reason phrase", uint16(code)))
	}
	if message != nil {
		reason = reason + ": " + *message
	}
	return FailureEnvelope{
		Status:  statusFailed,
		Code:    uint16(code),
		Message: reason,
	}
}

// String returns the JSON representation (best-effort) for logging purposes.
func (e FailureEnvelope) String() string {
	out, err := json.Marshal(e)
	if err != nil {
		return "{}"
	}
	return string(out)
}
