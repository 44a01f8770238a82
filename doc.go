// Package postcodenl provides a Go client for the free Netherlands
// postcode API at https://postcode.tech. It resolves a postcode and house
// number into an address, optionally with municipality, province and
// coordinates.
//
// Basic usage:
//
//	client, err := postcodenl.New("xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Find the address matching a postcode and house number
//	address, limits, err := client.GetAddress(ctx, "1012RJ", 147)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if address == nil {
//	    fmt.Println("no address found")
//	}
//
//	// Find the address plus municipality, province and coordinates
//	extended, limits, err := client.GetExtendedAddress(ctx, "1012RJ", 147)
//
// # Usage limits
//
// API usage is limited to 10,000 requests per day as well as a 600 request
// rate limit over an unspecified time window. The client validates
// postcodes locally so that malformed inputs do not count against the
// limits, and every lookup returns an APILimits snapshot taken from that
// exchange's response headers. The client reports limits but does not
// throttle or retry.
//
// # Disclaimer
//
// This package is not affiliated with the API provider and makes no
// guarantees about the correctness of the results or the availability of
// the underlying service. Refer to https://postcode.tech for the service
// terms and conditions.
package postcodenl
