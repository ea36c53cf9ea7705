package domain

// Row count for a single destination area.
type DestinationVolume struct {
	Area  string
	Count int
}

// Mean rate for a single vehicle type.
type VehicleTypeRate struct {
	VehicleType string
	AvgRate     float64
}

// Aggregate performance of a single vendor across its routes.
type VendorStats struct {
	Vendor       string
	RouteCount   int
	TotalRevenue float64
	AvgRate      float64
}

// Flags a vehicle that delivers from one origin to more than one
// distinct destination area.
type VehicleAreaDelivery struct {
	Origin      string
	VehicleNo   string
	UniqueAreas int
}

// Summary statistics over a dataset snapshot.
//
// All figures are computed from rows with a positive rate only.
// Snapshots are recomputed on demand; they are cheap relative to the
// upstream fetch and are never cached separately.
type AnalyticsSnapshot struct {
	TotalRoutes              int
	TotalVendors             int
	AvgRate                  float64
	RouteVolumeByDestination []DestinationVolume
	AvgRatesByVehicleType    []VehicleTypeRate
	VendorPerformance        []VendorStats
	VehicleAreaDeliveries    []VehicleAreaDelivery
}

// EmptyAnalyticsSnapshot returns the zero-valued snapshot with non-nil
// slices, the degraded shape served when aggregation has nothing to work on.
func EmptyAnalyticsSnapshot() AnalyticsSnapshot {
	return AnalyticsSnapshot{
		RouteVolumeByDestination: []DestinationVolume{},
		AvgRatesByVehicleType:    []VehicleTypeRate{},
		VendorPerformance:        []VendorStats{},
		VehicleAreaDeliveries:    []VehicleAreaDelivery{},
	}
}
