package dto

type VendorsResponse struct {
	Vendors []string `json:"vendors"`
}

type VehicleTypesResponse struct {
	VehicleTypes []string `json:"vehicle_types"`
}

type LocationsResponse struct {
	Origins      []string `json:"origins"`
	Destinations []string `json:"destinations"`
	AllLocations []string `json:"all_locations"`
}

type ListRatesResponse struct {
	Rates []RateResponse `json:"rates"`
	Count int            `json:"count"`
}

type UpdateRateResponse struct {
	Updated bool `json:"updated"`
}
