package postcodenl

import "github.com/avsaase/postcode-nl/internal/api"

// Address is a simple address lookup result.
// Address is a pure data struct; it is constructed fresh per call and
// never mutated after construction.
type Address struct {
	Street      string
	HouseNumber uint32
	Postcode    string
	City        string
}

// ExtendedAddress is a full address lookup result, including municipality,
// province and coordinates.
type ExtendedAddress struct {
	Street       string
	HouseNumber  uint32
	Postcode     string
	City         string
	Municipality string
	Province     string
	Coordinates  Coordinates
}

// Coordinates holds the geographic position of an address. The API
// delivers single-precision values.
type Coordinates struct {
	Lat float32
	Lon float32
}

// APILimits is a snapshot of the API usage quotas at the moment of a
// single exchange. It accompanies every lookup result, including
// not-found. APIReset is free-form text describing the reset schedule.
type APILimits struct {
	RatelimitLimit     uint32
	RatelimitRemaining uint32
	APILimit           uint32
	APIRemaining       uint32
	APIReset           string
}

// addressFromSimple maps the simple payload into an Address. The simple
// response does not echo the postcode and house number, so both are
// back-filled from the caller's validated input.
func addressFromSimple(resp *api.SimpleResponse, postcode string, houseNumber uint32) *Address {
	return &Address{
		Street:      resp.Street,
		HouseNumber: houseNumber,
		Postcode:    postcode,
		City:        resp.City,
	}
}

// extendedFromFull maps the full payload into an ExtendedAddress. Here the
// postcode and house number come from the response body.
func extendedFromFull(resp *api.FullResponse) *ExtendedAddress {
	return &ExtendedAddress{
		Street:       resp.Street,
		HouseNumber:  resp.Number,
		Postcode:     resp.Postcode,
		City:         resp.City,
		Municipality: resp.Municipality,
		Province:     resp.Province,
		Coordinates:  coordinatesFromGeo(resp.Geo),
	}
}

func coordinatesFromGeo(geo api.Geo) Coordinates {
	return Coordinates{
		Lat: geo.Lat,
		Lon: geo.Lon,
	}
}

func limitsFromAPI(limits *api.Limits) *APILimits {
	return &APILimits{
		RatelimitLimit:     limits.RatelimitLimit,
		RatelimitRemaining: limits.RatelimitRemaining,
		APILimit:           limits.APILimit,
		APIRemaining:       limits.APIRemaining,
		APIReset:           limits.APIReset,
	}
}
