package transport

import "fmt"

// SerializationError reports that the envelope could not be encoded as JSON,
// typically because the data holds NaN/Inf floats, channels, funcs or cycles.
type SerializationError struct {
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("jsonresponse: failed to convert the response data as JSON: %v", e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}

// ResponseBuildError reports that the response itself could not be built
// (invalid status code or header). Only reachable through programmer error.
type ResponseBuildError struct {
	Err error
}

func (e *ResponseBuildError) Error() string {
	return fmt.Sprintf("jsonresponse: failed to create response: %v", e.Err)
}

func (e *ResponseBuildError) Unwrap() error {
	return e.Err
}
