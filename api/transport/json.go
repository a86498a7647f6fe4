// Package transport builds the standard JSON response envelopes returned by
// request handlers:
//
//	{"status":"success","code":200,"data":<data>}
//	{"status":"failed","code":500,"message":"Internal Server Error: <message>"}
//
// Every helper returns a complete response (status, Content-Type,
// Content-Length and body) generic over the body type, or an error the
// handler is expected to turn into a fallback response. Nothing here
// performs I/O or keeps state, so the helpers are safe for concurrent use.
package transport

// Success builds a success response with the 200 OK status.
//
//	resp, err := transport.Success[[]byte]([]string{"Alice", "John"})
//	// {"status":"success","code":200,"data":["Alice","John"]}
func Success[B Body, D any](data D) (*Response[B], error) {
	return SuccessWithCode[B](StatusOK, data)
}

// SuccessWithCode builds a success response with the given status code.
func SuccessWithCode[B Body, D any](code StatusCode, data D) (*Response[B], error) {
	return assemble[B](code, newSuccess(code, data))
}

// Failure builds a failed response whose message is the canonical reason
// phrase of code. It panics if code has no canonical reason phrase.
func Failure[B Body](code StatusCode) (*Response[B], error) {
	return assemble[B](code, newFailure(code, nil))
}

// FailureWithMessage builds a failed response whose message is
// "<reason>: <message>". It panics if code has no canonical reason phrase.
//
//	resp, err := transport.FailureWithMessage[[]byte](transport.StatusInternalServerError, "db down")
//	// {"status":"failed","code":500,"message":"Internal Server Error: db down"}
func FailureWithMessage[B Body](code StatusCode, message string) (*Response[B], error) {
	return assemble[B](code, newFailure(code, &message))
}
