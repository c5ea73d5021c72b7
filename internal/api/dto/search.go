package dto

// SearchRequest starts a query: either a city name or a lat/lon pair.
type SearchRequest struct {
	City string   `json:"city"`
	Lat  *float64 `json:"lat"`
	Lon  *float64 `json:"lon"`
}

type SearchResponse struct {
	Status string `json:"status"`
}
