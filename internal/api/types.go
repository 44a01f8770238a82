package api

// SimpleResponse represents the /api/v1/postcode response body. The API
// does not echo the postcode and house number in this variant.
type SimpleResponse struct {
	Street string `json:"street"`
	City   string `json:"city"`
}

// FullResponse represents the /api/v1/postcode/full response body.
type FullResponse struct {
	Postcode     string `json:"postcode"`
	Number       uint32 `json:"number"`
	Street       string `json:"street"`
	City         string `json:"city"`
	Municipality string `json:"municipality"`
	Province     string `json:"province"`
	Geo          Geo    `json:"geo"`
}

// Geo is the nested coordinate object in the full response.
type Geo struct {
	Lat float32 `json:"lat"`
	Lon float32 `json:"lon"`
}

// Limits holds the usage-limit headers the API returns on every exchange.
type Limits struct {
	RatelimitLimit     uint32
	RatelimitRemaining uint32
	APILimit           uint32
	APIRemaining       uint32
	APIReset           string
}
