package dto

type SearchRequest struct {
	FromLocation string `json:"from_location"`
	ToLocation   string `json:"to_location"`
	VehicleType  string `json:"vehicle_type"`
	MaxResults   int    `json:"max_results"`
}

type RateResponse struct {
	FromOrigin   string  `json:"from_origin"`
	Area         string  `json:"area"`
	VehicleType  string  `json:"vehicle_type"`
	Rate         float64 `json:"rate"`
	VendorName   string  `json:"vendor_name"`
	Pincode      string  `json:"pincode"`
	ReceiverName string  `json:"receiver_name"`
	VehicleNo    string  `json:"vehicle_no"`
}

type SearchResponse struct {
	BestRate   *RateResponse  `json:"best_rate"`
	OtherRates []RateResponse `json:"other_rates"`
	TotalFound int            `json:"total_found"`
}
