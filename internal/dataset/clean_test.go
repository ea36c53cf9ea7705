package dataset

import (
	"testing"

	"freight-quotation-service/internal/domain"
)

func TestCleanMapsHeaderAliases(t *testing.T) {
	raws := []domain.RawRow{
		{
			"FROM-ORIGIN":   "SILIGURI",
			"PINCODE":       "734001",
			"AREA":          "GELEPHU",
			"RECEIVER NAME": "FOOD CORPORATION OF BHUTAN",
			"VEHICLE NO.":   "AC28C9699",
			"VEHICLE TYE":   "LPT",
			"RATE":          21000,
			"VENDOR NAME":   "NITESH SINGH",
		},
	}

	records := Clean(raws)
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}

	want := domain.RouteRecord{
		Origin: "SILIGURI", Pincode: "734001", Area: "GELEPHU",
		ReceiverName: "FOOD CORPORATION OF BHUTAN", VehicleNo: "AC28C9699",
		VehicleType: "LPT", Rate: 21000, VendorName: "NITESH SINGH",
	}
	if records[0] != want {
		t.Errorf("record = %+v, want %+v", records[0], want)
	}
}

func TestCleanAlternateHeaders(t *testing.T) {
	raws := []domain.RawRow{
		{"origin": "DANKUNI", "destination": "RANCHI", "vehicle_type": "LPT", "rate": "25700", "vendor": "X"},
	}

	records := Clean(raws)
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}
	r := records[0]
	if r.Origin != "DANKUNI" || r.Area != "RANCHI" || r.VehicleType != "LPT" || r.Rate != 25700 || r.VendorName != "X" {
		t.Errorf("record = %+v", r)
	}
}

func TestCleanForwardFillsOrigin(t *testing.T) {
	raws := []domain.RawRow{
		{"FROM-ORIGIN": "SILIGURI", "AREA": "GELEPHU", "RATE": 21000},
		{"FROM-ORIGIN": "", "AREA": "KATIHAR", "RATE": 9700},
		// Blank rows are dropped before fill, so the origin carries past them.
		{"FROM-ORIGIN": "", "AREA": "", "RATE": 0},
		{"FROM-ORIGIN": "", "AREA": "MALDA", "RATE": 18000},
		{"FROM-ORIGIN": "TARATALA", "AREA": "KISHANGANJ", "RATE": 10850},
	}

	records := Clean(raws)
	if len(records) != 4 {
		t.Fatalf("len(records) = %d, want 4", len(records))
	}
	for i, wantOrigin := range []string{"SILIGURI", "SILIGURI", "SILIGURI", "TARATALA"} {
		if records[i].Origin != wantOrigin {
			t.Errorf("records[%d].Origin = %q, want %q", i, records[i].Origin, wantOrigin)
		}
	}
}

func TestCleanBlanksSentinels(t *testing.T) {
	raws := []domain.RawRow{
		{"FROM-ORIGIN": "SANKRAIL", "AREA": "RAIPUR", "RECEIVER NAME": "nan", "VEHICLE TYE": "#REF!", "RATE": 25700},
	}

	records := Clean(raws)
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}
	if records[0].ReceiverName != "" || records[0].VehicleType != "" {
		t.Errorf("sentinels survived: %+v", records[0])
	}
}

func TestCleanDropsAllSentinelRow(t *testing.T) {
	raws := []domain.RawRow{
		{"FROM-ORIGIN": "nan", "AREA": "#REF!", "RATE": "n/a"},
	}
	if records := Clean(raws); len(records) != 0 {
		t.Errorf("len(records) = %d, want 0", len(records))
	}
}

func TestCoerceRate(t *testing.T) {
	cases := []struct {
		in   any
		want float64
	}{
		{21000, 21000},
		{int64(500), 500},
		{9700.5, 9700.5},
		{" 18000 ", 18000},
		{"18,000", 0},
		{"nan", 0},
		{"", 0},
		{nil, 0},
		{-250, 0},
		{"-1", 0},
		{true, 0},
	}
	for _, c := range cases {
		if got := coerceRate(c.in); got != c.want {
			t.Errorf("coerceRate(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestCleanKeepsPartialRows(t *testing.T) {
	// A row with only an area still describes a route endpoint.
	raws := []domain.RawRow{
		{"FROM-ORIGIN": "", "AREA": "RANCHI", "RATE": 0},
	}
	records := Clean(raws)
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}
	if records[0].Area != "RANCHI" {
		t.Errorf("Area = %q, want RANCHI", records[0].Area)
	}
}
