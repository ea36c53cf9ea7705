package dataset

import (
	"slices"
	"strings"

	"freight-quotation-service/internal/domain"
)

const (
	topDestinations = 10
	topVendors      = 8
)

// Summarize computes aggregate statistics over a dataset snapshot.
//
// Only rows with a positive rate participate. A dataset with no such
// rows yields the zero-valued snapshot; Summarize never fails.
func Summarize(records []domain.RouteRecord) domain.AnalyticsSnapshot {
	snap := domain.EmptyAnalyticsSnapshot()

	valid := make([]domain.RouteRecord, 0, len(records))
	for _, r := range records {
		if r.Rate > 0 {
			valid = append(valid, r)
		}
	}
	if len(valid) == 0 {
		return snap
	}

	var rateSum float64
	for _, r := range valid {
		rateSum += r.Rate
	}
	snap.TotalRoutes = len(valid)
	snap.TotalVendors = len(Vendors(valid))
	snap.AvgRate = rateSum / float64(len(valid))

	snap.RouteVolumeByDestination = destinationVolumes(valid)
	snap.AvgRatesByVehicleType = vehicleTypeRates(valid)
	snap.VendorPerformance = vendorPerformance(valid)
	snap.VehicleAreaDeliveries = vehicleAreaDeliveries(valid)

	return snap
}

// destinationVolumes returns the top destinations by row count.
func destinationVolumes(valid []domain.RouteRecord) []domain.DestinationVolume {
	counts := map[string]int{}
	for _, r := range valid {
		if r.Area != "" {
			counts[r.Area]++
		}
	}

	volumes := make([]domain.DestinationVolume, 0, len(counts))
	for area, count := range counts {
		volumes = append(volumes, domain.DestinationVolume{Area: area, Count: count})
	}
	slices.SortFunc(volumes, func(a, b domain.DestinationVolume) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return strings.Compare(a.Area, b.Area)
	})

	if len(volumes) > topDestinations {
		volumes = volumes[:topDestinations]
	}
	return volumes
}

// vehicleTypeRates returns the mean rate per vehicle type, highest first.
func vehicleTypeRates(valid []domain.RouteRecord) []domain.VehicleTypeRate {
	sums := map[string]float64{}
	counts := map[string]int{}
	for _, r := range valid {
		if r.VehicleType == "" {
			continue
		}
		sums[r.VehicleType] += r.Rate
		counts[r.VehicleType]++
	}

	rates := make([]domain.VehicleTypeRate, 0, len(sums))
	for vt, sum := range sums {
		rates = append(rates, domain.VehicleTypeRate{
			VehicleType: vt,
			AvgRate:     sum / float64(counts[vt]),
		})
	}
	slices.SortFunc(rates, func(a, b domain.VehicleTypeRate) int {
		if a.AvgRate > b.AvgRate {
			return -1
		}
		if a.AvgRate < b.AvgRate {
			return 1
		}
		return strings.Compare(a.VehicleType, b.VehicleType)
	})
	return rates
}

// vendorPerformance returns the top vendors by total revenue.
func vendorPerformance(valid []domain.RouteRecord) []domain.VendorStats {
	byVendor := map[string]*domain.VendorStats{}
	for _, r := range valid {
		if r.VendorName == "" {
			continue
		}
		stats, ok := byVendor[r.VendorName]
		if !ok {
			stats = &domain.VendorStats{Vendor: r.VendorName}
			byVendor[r.VendorName] = stats
		}
		stats.RouteCount++
		stats.TotalRevenue += r.Rate
	}

	performance := make([]domain.VendorStats, 0, len(byVendor))
	for _, stats := range byVendor {
		stats.AvgRate = stats.TotalRevenue / float64(stats.RouteCount)
		performance = append(performance, *stats)
	}
	slices.SortFunc(performance, func(a, b domain.VendorStats) int {
		if a.TotalRevenue > b.TotalRevenue {
			return -1
		}
		if a.TotalRevenue < b.TotalRevenue {
			return 1
		}
		return strings.Compare(a.Vendor, b.Vendor)
	})

	if len(performance) > topVendors {
		performance = performance[:topVendors]
	}
	return performance
}

// vehicleAreaDeliveries flags vehicles serving more than one distinct
// area from the same origin.
func vehicleAreaDeliveries(valid []domain.RouteRecord) []domain.VehicleAreaDelivery {
	type key struct{ origin, vehicleNo string }
	areas := map[key]map[string]struct{}{}
	for _, r := range valid {
		if r.VehicleNo == "" || r.Area == "" {
			continue
		}
		k := key{origin: r.Origin, vehicleNo: r.VehicleNo}
		if areas[k] == nil {
			areas[k] = map[string]struct{}{}
		}
		areas[k][r.Area] = struct{}{}
	}

	deliveries := make([]domain.VehicleAreaDelivery, 0, len(areas))
	for k, set := range areas {
		if len(set) <= 1 {
			continue
		}
		deliveries = append(deliveries, domain.VehicleAreaDelivery{
			Origin:      k.origin,
			VehicleNo:   k.vehicleNo,
			UniqueAreas: len(set),
		})
	}
	slices.SortFunc(deliveries, func(a, b domain.VehicleAreaDelivery) int {
		if c := strings.Compare(a.Origin, b.Origin); c != 0 {
			return c
		}
		return strings.Compare(a.VehicleNo, b.VehicleNo)
	})
	return deliveries
}
