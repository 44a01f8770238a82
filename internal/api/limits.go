package api

import (
	"fmt"
	"net/http"
	"strconv"
)

// Header names for the usage-limit snapshot.
const (
	headerRatelimitLimit     = "x-ratelimit-limit"
	headerRatelimitRemaining = "x-ratelimit-remaining"
	headerAPILimit           = "x-api-limit"
	headerAPIRemaining       = "x-api-remaining"
	headerAPIReset           = "x-api-reset"
)

// LimitsFromHeader extracts the five mandatory usage-limit headers. All
// five must be present on every non-error exchange, including not-found.
func LimitsFromHeader(h http.Header) (*Limits, error) {
	ratelimitLimit, err := headerUint32(h, headerRatelimitLimit)
	if err != nil {
		return nil, err
	}
	ratelimitRemaining, err := headerUint32(h, headerRatelimitRemaining)
	if err != nil {
		return nil, err
	}
	apiLimit, err := headerUint32(h, headerAPILimit)
	if err != nil {
		return nil, err
	}
	apiRemaining, err := headerUint32(h, headerAPIRemaining)
	if err != nil {
		return nil, err
	}
	apiReset, err := headerString(h, headerAPIReset)
	if err != nil {
		return nil, err
	}

	return &Limits{
		RatelimitLimit:     ratelimitLimit,
		RatelimitRemaining: ratelimitRemaining,
		APILimit:           apiLimit,
		APIRemaining:       apiRemaining,
		APIReset:           apiReset,
	}, nil
}

func headerUint32(h http.Header, key string) (uint32, error) {
	value, err := headerString(h, key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, &ResponseError{
			Reason: fmt.Sprintf("failed to parse %s header", key),
			Err:    err,
		}
	}
	return uint32(n), nil
}

func headerString(h http.Header, key string) (string, error) {
	values := h.Values(key)
	if len(values) == 0 {
		return "", &ResponseError{
			Reason: fmt.Sprintf("API did not return usage limits: missing %s header", key),
		}
	}
	return values[0], nil
}
