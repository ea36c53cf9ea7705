package dto

type DestinationVolumeResponse struct {
	Area  string `json:"area"`
	Count int    `json:"count"`
}

type VehicleTypeRateResponse struct {
	VehicleType string  `json:"vehicle_type"`
	AvgRate     float64 `json:"avg_rate"`
}

type VendorStatsResponse struct {
	Vendor       string  `json:"vendor"`
	TotalRoutes  int     `json:"total_routes"`
	TotalRevenue float64 `json:"total_revenue"`
	AvgRate      float64 `json:"avg_rate"`
}

type VehicleAreaDeliveryResponse struct {
	FromOrigin  string `json:"from_origin"`
	VehicleNo   string `json:"vehicle_no"`
	UniqueAreas int    `json:"unique_areas"`
}

type AnalyticsResponse struct {
	TotalRoutes              int                           `json:"total_routes"`
	TotalVendors             int                           `json:"total_vendors"`
	AvgRate                  float64                       `json:"avg_rate"`
	RouteVolumeByDestination []DestinationVolumeResponse   `json:"route_volume_by_destination"`
	AvgRatesByVehicleType    []VehicleTypeRateResponse     `json:"avg_rates_by_vehicle_type"`
	VendorPerformance        []VendorStatsResponse         `json:"vendor_performance"`
	VehicleAreaDeliveries    []VehicleAreaDeliveryResponse `json:"vehicle_area_deliveries"`
}
