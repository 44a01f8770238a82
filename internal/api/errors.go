package api

import "fmt"

// APIError represents a non-success, non-404 HTTP status from the API.
// For 429 the body is not read; for other statuses it carries the raw
// response body for diagnostics.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// NetworkError represents a transport-level failure: no status code was
// obtained at all.
type NetworkError struct {
	Err error
	URL string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("error contacting API: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ResponseError represents a response that could not be interpreted: a
// missing or unparseable usage-limit header, or a body that does not
// deserialize into the expected shape.
type ResponseError struct {
	Reason string
	Err    error
}

func (e *ResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *ResponseError) Unwrap() error {
	return e.Err
}
