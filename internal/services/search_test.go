package services

import (
	"context"
	"fmt"
	"testing"

	"freight-quotation-service/internal/domain"
	"freight-quotation-service/internal/match"
)

type stubProvider struct {
	records []domain.RouteRecord
}

func (s *stubProvider) Current(ctx context.Context) []domain.RouteRecord {
	return s.records
}

func demoRecords() []domain.RouteRecord {
	return []domain.RouteRecord{
		{Origin: "NEW KOROLA", Area: "RAMCHANDRAPUR", Rate: 5000, VendorName: "Demo Vendor", VehicleNo: "WB23D1704"},
		{Origin: "SILIGURI", Area: "GELEPHU", VehicleType: "LPT", Rate: 21000, VendorName: "NITESH SINGH", VehicleNo: "AC28C9699"},
		{Origin: "TARATALA", Area: "KISHANGANJ", VehicleType: "1109", Rate: 10850, VendorName: "CHANDAN", VehicleNo: "BR01GB5653"},
		{Origin: "SANKRAIL", Area: "RANCHI", VehicleType: "12 WHEEL", Rate: 33500, VendorName: "DINESH SILIGURI", VehicleNo: "CG04HY6165"},
		{Origin: "KOROLA", Area: "MALDA", VehicleType: "1109-19FT", Rate: 18000, VendorName: "YUDHISHTHIR DOLUI", VehicleNo: "WB891846"},
		{Origin: "DANKUNI", Area: "RANCHI", VehicleType: "1109-19FT", Rate: 21000, VendorName: "DURGA PRASAD SHAW", VehicleNo: "CG04MZ5617"},
		{Origin: "SILIGURI", Area: "KATIHAR", VehicleType: "1109-19FT", Rate: 9700, VendorName: "JAMIR KHAN", VehicleNo: "BR06GB4430"},
		{Origin: "SANKRAIL", Area: "RAIPUR", VehicleType: "LPT", Rate: 25700, VendorName: "SHAMIM AHMED KHAN", VehicleNo: "CG10AW7266"},
	}
}

func TestSearchQuotationsBestRateIsMax(t *testing.T) {
	provider := &stubProvider{records: demoRecords()}
	matcher := match.NewLocationMatcher(0)

	got := SearchQuotations(context.Background(), SearchRequest{
		Origin:      "SILIGURI",
		Destination: "GELEPHU",
	}, provider, matcher)

	if got.BestRate == nil {
		t.Fatal("BestRate is nil")
	}
	if got.BestRate.Rate != 21000 || got.BestRate.Area != "GELEPHU" {
		t.Errorf("BestRate = %+v", got.BestRate)
	}
	if got.TotalFound != 1 {
		t.Errorf("TotalFound = %d, want 1", got.TotalFound)
	}
	if len(got.OtherRates) != 0 {
		t.Errorf("OtherRates = %+v, want none", got.OtherRates)
	}
}

func TestSearchQuotationsOriginOnlyFilter(t *testing.T) {
	provider := &stubProvider{records: demoRecords()}
	matcher := match.NewLocationMatcher(0)

	// SILIGURI serves two areas; an unmatched destination skips that filter.
	got := SearchQuotations(context.Background(), SearchRequest{
		Origin:      "SILIGURI",
		Destination: "ZZZZZZ",
	}, provider, matcher)

	if got.TotalFound != 2 {
		t.Fatalf("TotalFound = %d, want 2", got.TotalFound)
	}
	if got.BestRate == nil || got.BestRate.Rate != 21000 {
		t.Errorf("BestRate = %+v, want the 21000 GELEPHU row", got.BestRate)
	}
	if len(got.OtherRates) != 1 || got.OtherRates[0].Rate != 9700 {
		t.Errorf("OtherRates = %+v, want the 9700 KATIHAR row", got.OtherRates)
	}
}

func TestSearchQuotationsVehicleTypeFilter(t *testing.T) {
	provider := &stubProvider{records: demoRecords()}
	matcher := match.NewLocationMatcher(0)

	got := SearchQuotations(context.Background(), SearchRequest{
		Origin:      "SILIGURI",
		Destination: "ZZZZZZ",
		VehicleType: "lpt",
	}, provider, matcher)

	if got.TotalFound != 1 {
		t.Fatalf("TotalFound = %d, want 1", got.TotalFound)
	}
	if got.BestRate.VehicleType != "LPT" {
		t.Errorf("BestRate = %+v", got.BestRate)
	}
}

func TestSearchQuotationsNoMatches(t *testing.T) {
	provider := &stubProvider{records: demoRecords()}
	matcher := match.NewLocationMatcher(0)

	got := SearchQuotations(context.Background(), SearchRequest{
		Origin:      "XXXXXX",
		Destination: "YYYYYY",
	}, provider, matcher)

	if got.BestRate != nil || got.TotalFound != 0 {
		t.Errorf("result = %+v, want empty", got)
	}
	if got.OtherRates == nil {
		t.Error("OtherRates must be non-nil in the empty result")
	}
}

func TestSearchQuotationsEmptyDataset(t *testing.T) {
	provider := &stubProvider{}
	matcher := match.NewLocationMatcher(0)

	got := SearchQuotations(context.Background(), SearchRequest{
		Origin:      "SILIGURI",
		Destination: "GELEPHU",
	}, provider, matcher)

	if got.BestRate != nil || got.TotalFound != 0 {
		t.Errorf("result = %+v, want empty", got)
	}
}

func TestSearchQuotationsZeroRatesDropped(t *testing.T) {
	provider := &stubProvider{records: []domain.RouteRecord{
		{Origin: "SILIGURI", Area: "GELEPHU", Rate: 0},
	}}
	matcher := match.NewLocationMatcher(0)

	got := SearchQuotations(context.Background(), SearchRequest{
		Origin:      "SILIGURI",
		Destination: "GELEPHU",
	}, provider, matcher)

	if got.BestRate != nil || got.TotalFound != 0 {
		t.Errorf("result = %+v, want empty", got)
	}
}

func manyRoutes(n int) []domain.RouteRecord {
	records := make([]domain.RouteRecord, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, domain.RouteRecord{
			Origin:    "SILIGURI",
			Area:      "GELEPHU",
			Rate:      float64(1000 + i),
			VehicleNo: fmt.Sprintf("WB%05d", i),
		})
	}
	return records
}

func TestSearchQuotationsDefaultCap(t *testing.T) {
	provider := &stubProvider{records: manyRoutes(25)}
	matcher := match.NewLocationMatcher(0)

	got := SearchQuotations(context.Background(), SearchRequest{
		Origin:      "SILIGURI",
		Destination: "GELEPHU",
	}, provider, matcher)

	if got.TotalFound != DefaultMaxResults {
		t.Errorf("TotalFound = %d, want %d", got.TotalFound, DefaultMaxResults)
	}
	if len(got.OtherRates) != DefaultMaxResults-1 {
		t.Errorf("len(OtherRates) = %d, want %d", len(got.OtherRates), DefaultMaxResults-1)
	}
}

func TestSearchQuotationsUncapped(t *testing.T) {
	provider := &stubProvider{records: manyRoutes(25)}
	matcher := match.NewLocationMatcher(0)

	got := SearchQuotations(context.Background(), SearchRequest{
		Origin:      "SILIGURI",
		Destination: "GELEPHU",
		MaxResults:  10000,
	}, provider, matcher)

	if got.TotalFound != 25 {
		t.Errorf("TotalFound = %d, want 25", got.TotalFound)
	}
	if got.BestRate == nil || got.BestRate.Rate != 1024 {
		t.Errorf("BestRate = %+v, want rate 1024", got.BestRate)
	}
}
