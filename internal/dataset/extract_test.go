package dataset

import (
	"slices"
	"testing"

	"freight-quotation-service/internal/domain"
)

func TestLocations(t *testing.T) {
	records := []domain.RouteRecord{
		{Origin: "SILIGURI", Area: "GELEPHU"},
		{Origin: "SILIGURI", Area: "KATIHAR"},
		{Origin: "DANKUNI", Area: "RANCHI"},
		{Origin: "", Area: "SILIGURI"},
	}

	set := Locations(records)

	if !slices.Equal(set.Origins, []string{"DANKUNI", "SILIGURI"}) {
		t.Errorf("Origins = %v", set.Origins)
	}
	if !slices.Equal(set.Destinations, []string{"GELEPHU", "KATIHAR", "RANCHI", "SILIGURI"}) {
		t.Errorf("Destinations = %v", set.Destinations)
	}
	// SILIGURI appears on both sides but only once in the union.
	if !slices.Equal(set.All, []string{"DANKUNI", "GELEPHU", "KATIHAR", "RANCHI", "SILIGURI"}) {
		t.Errorf("All = %v", set.All)
	}
}

func TestVendorsAndVehicleTypes(t *testing.T) {
	records := []domain.RouteRecord{
		{VendorName: "CHANDAN", VehicleType: "1109"},
		{VendorName: "CHANDAN", VehicleType: "LPT"},
		{VendorName: "", VehicleType: ""},
		{VendorName: "ARJUN", VehicleType: "LPT"},
	}

	if got := Vendors(records); !slices.Equal(got, []string{"ARJUN", "CHANDAN"}) {
		t.Errorf("Vendors = %v", got)
	}
	if got := VehicleTypes(records); !slices.Equal(got, []string{"1109", "LPT"}) {
		t.Errorf("VehicleTypes = %v", got)
	}
}
