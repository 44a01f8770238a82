package postcodenl

import (
	"context"

	"github.com/avsaase/postcode-nl/internal/api"
)

// Client calls the postcode.tech API. It is stateless beyond the held
// credential and transport handle, and is safe for concurrent use.
type Client struct {
	apiClient *api.Client
}

// New creates a new client with the given API token. The token format is
// not validated and no network call is made.
func New(apiToken string, opts ...Option) (*Client, error) {
	if apiToken == "" {
		return nil, ErrMissingToken
	}

	cfg := &clientConfig{
		baseURL: defaultBaseURL,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiOpts := []api.Option{
		api.WithBaseURL(cfg.baseURL),
	}
	if cfg.timeout > 0 {
		apiOpts = append(apiOpts, api.WithTimeout(cfg.timeout))
	}

	apiClient, err := api.New(apiToken, apiOpts...)
	if err != nil {
		return nil, err
	}

	if cfg.httpClient != nil {
		apiClient.SetHTTPClient(cfg.httpClient)
	}

	return &Client{apiClient: apiClient}, nil
}

// GetAddress finds the address matching the given postcode and house
// number. Postcodes are formatted 1234AB or 1234 AB (with a single space);
// house numbers must not include postfix characters.
//
// A nil Address with a nil error means no address exists for the
// combination; the limits snapshot is valid in that case as well. The
// returned limits are taken from this exchange's response headers, never
// cached across calls.
func (c *Client) GetAddress(ctx context.Context, postcode string, houseNumber uint32) (*Address, *APILimits, error) {
	if err := validatePostcode(postcode); err != nil {
		return nil, nil, err
	}

	resp, limits, err := c.apiClient.GetSimple(ctx, postcode, houseNumber)
	if err != nil {
		return nil, nil, wrapError(err)
	}

	if resp == nil {
		return nil, limitsFromAPI(limits), nil
	}

	return addressFromSimple(resp, postcode, houseNumber), limitsFromAPI(limits), nil
}

// GetExtendedAddress finds the address, municipality, province and
// coordinates matching the given postcode and house number. The not-found
// and limits semantics are the same as for GetAddress.
func (c *Client) GetExtendedAddress(ctx context.Context, postcode string, houseNumber uint32) (*ExtendedAddress, *APILimits, error) {
	if err := validatePostcode(postcode); err != nil {
		return nil, nil, err
	}

	resp, limits, err := c.apiClient.GetFull(ctx, postcode, houseNumber)
	if err != nil {
		return nil, nil, wrapError(err)
	}

	if resp == nil {
		return nil, limitsFromAPI(limits), nil
	}

	return extendedFromFull(resp), limitsFromAPI(limits), nil
}
