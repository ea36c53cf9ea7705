package handlers

import (
	"net/http"

	"freight-quotation-service/internal/api/dto"
	"freight-quotation-service/internal/dataset"
	"freight-quotation-service/internal/ports"
)

type AnalyticsHandler struct {
	Provider ports.DatasetProvider
}

// Summary aggregates the current dataset into dashboard-ready figures.
func (h *AnalyticsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	snap := dataset.Summarize(h.Provider.Current(r.Context()))

	res := dto.AnalyticsResponse{
		TotalRoutes:              snap.TotalRoutes,
		TotalVendors:             snap.TotalVendors,
		AvgRate:                  snap.AvgRate,
		RouteVolumeByDestination: make([]dto.DestinationVolumeResponse, 0, len(snap.RouteVolumeByDestination)),
		AvgRatesByVehicleType:    make([]dto.VehicleTypeRateResponse, 0, len(snap.AvgRatesByVehicleType)),
		VendorPerformance:        make([]dto.VendorStatsResponse, 0, len(snap.VendorPerformance)),
		VehicleAreaDeliveries:    make([]dto.VehicleAreaDeliveryResponse, 0, len(snap.VehicleAreaDeliveries)),
	}

	for _, d := range snap.RouteVolumeByDestination {
		res.RouteVolumeByDestination = append(res.RouteVolumeByDestination, dto.DestinationVolumeResponse{
			Area:  d.Area,
			Count: d.Count,
		})
	}
	for _, v := range snap.AvgRatesByVehicleType {
		res.AvgRatesByVehicleType = append(res.AvgRatesByVehicleType, dto.VehicleTypeRateResponse{
			VehicleType: v.VehicleType,
			AvgRate:     v.AvgRate,
		})
	}
	for _, v := range snap.VendorPerformance {
		res.VendorPerformance = append(res.VendorPerformance, dto.VendorStatsResponse{
			Vendor:       v.Vendor,
			TotalRoutes:  v.RouteCount,
			TotalRevenue: v.TotalRevenue,
			AvgRate:      v.AvgRate,
		})
	}
	for _, v := range snap.VehicleAreaDeliveries {
		res.VehicleAreaDeliveries = append(res.VehicleAreaDeliveries, dto.VehicleAreaDeliveryResponse{
			FromOrigin:  v.Origin,
			VehicleNo:   v.VehicleNo,
			UniqueAreas: v.UniqueAreas,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
