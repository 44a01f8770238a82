package postcodenl

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/avsaase/postcode-nl/internal/api"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingToken is returned when no API token is provided.
	ErrMissingToken = errors.New("API token is required")

	// ErrInvalidInput is returned when the postcode does not have the
	// correct format: 1234AB or 1234 AB (with one space).
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoAPIResponse is returned when the API did not respond to the
	// request at all.
	ErrNoAPIResponse = errors.New("did not get response from API")

	// ErrTooManyRequests is returned when the API usage limits are
	// exceeded. The client does not retry; callers are expected to back off.
	ErrTooManyRequests = errors.New("too many requests")

	// ErrInvalidAPIResponse is returned when the response headers or body
	// could not be parsed. It signals a contract break with the API, not a
	// caller error.
	ErrInvalidAPIResponse = errors.New("failed to parse API response")

	// ErrInvalidData is returned when the API asserts the inputs are
	// invalid. This should not happen: local validation catches malformed
	// postcodes before a request is made.
	ErrInvalidData = errors.New("API returned input is invalid")

	// ErrAPIFailure is returned when the API responds with an unexpected
	// status code.
	ErrAPIFailure = errors.New("API returned an error")
)

// PostcodeError is implemented by all errors this package produces.
type PostcodeError interface {
	error
	PostcodeError() // marker method
}

// InputError reports a postcode that failed the format check. The request
// never reached the network.
type InputError struct {
	Input string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("postcodes should be formatted as 1234AB or 1234 AB, input: %s", e.Input)
}

// Is implements errors.Is for sentinel error matching.
func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// PostcodeError implements the PostcodeError interface.
func (e *InputError) PostcodeError() {}

// TransportError represents a network-level failure: no HTTP status code
// was obtained.
type TransportError struct {
	Err error
	URL string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("error contacting API: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *TransportError) Is(target error) bool {
	return target == ErrNoAPIResponse
}

// PostcodeError implements the PostcodeError interface.
func (e *TransportError) PostcodeError() {}

// TooManyRequestsError reports a 429 response from the API.
type TooManyRequestsError struct{}

func (e *TooManyRequestsError) Error() string {
	return "API limits exceeded"
}

// Is implements errors.Is for sentinel error matching.
func (e *TooManyRequestsError) Is(target error) bool {
	return target == ErrTooManyRequests
}

// PostcodeError implements the PostcodeError interface.
func (e *TooManyRequestsError) PostcodeError() {}

// ResponseError reports a response that could not be interpreted: a
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

// Unwrap returns the underlying error.
func (e *ResponseError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *ResponseError) Is(target error) bool {
	return target == ErrInvalidAPIResponse
}

// PostcodeError implements the PostcodeError interface.
func (e *ResponseError) PostcodeError() {}

// DataError reports that the API rejected the inputs as invalid. The API
// documents this outcome, but local validation makes it unreachable; the
// mapping logic never constructs it.
type DataError struct {
	Message string
}

func (e *DataError) Error() string {
	return fmt.Sprintf("API returned input is invalid: %s", e.Message)
}

// Is implements errors.Is for sentinel error matching.
func (e *DataError) Is(target error) bool {
	return target == ErrInvalidData
}

// PostcodeError implements the PostcodeError interface.
func (e *DataError) PostcodeError() {}

// StatusError represents an unexpected HTTP status from the API. It
// carries the status code and the raw response body for diagnostics.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// Is implements errors.Is for sentinel error matching.
func (e *StatusError) Is(target error) bool {
	return target == ErrAPIFailure
}

// PostcodeError implements the PostcodeError interface.
func (e *StatusError) PostcodeError() {}

// wrapError converts internal API errors to public errors.
// This ensures that errors.Is() checks work with public sentinel errors.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == http.StatusTooManyRequests {
			return &TooManyRequestsError{}
		}
		return &StatusError{
			StatusCode: apiErr.StatusCode,
			Body:       apiErr.Body,
		}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &TransportError{
			Err: netErr.Err,
			URL: netErr.URL,
		}
	}

	var respErr *api.ResponseError
	if errors.As(err, &respErr) {
		return &ResponseError{
			Reason: respErr.Reason,
			Err:    respErr.Err,
		}
	}

	return err
}
