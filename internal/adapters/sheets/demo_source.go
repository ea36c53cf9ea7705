package sheets

import (
	"context"

	"freight-quotation-service/internal/domain"
)

// DemoSource serves a small canned rate table when no upstream is
// configured. Row headers deliberately mirror the production sheet,
// typos included, so the cleaner's alias handling is exercised.
type DemoSource struct{}

func NewDemoSource() *DemoSource { return &DemoSource{} }

func (d *DemoSource) FetchRawRows(ctx context.Context) ([]domain.RawRow, error) {
	rows := make([]domain.RawRow, len(demoRows))
	for i, row := range demoRows {
		copied := make(domain.RawRow, len(row))
		for k, v := range row {
			copied[k] = v
		}
		rows[i] = copied
	}
	return rows, nil
}

// UpdateRow reports unsupported; demo data is immutable.
func (d *DemoSource) UpdateRow(ctx context.Context, row domain.RawRow, rowIndex int) (bool, error) {
	return false, nil
}

var demoRows = []domain.RawRow{
	{
		"FROM-ORIGIN": "NEW KOROLA", "PINCODE": "700103", "AREA": "RAMCHANDRAPUR",
		"RECEIVER NAME": "", "VEHICLE NO.": "WB23D1704", "VEHICLE TYE": "",
		"RATE": 5000, "VENDOR NAME": "Demo Vendor",
	},
	{
		"FROM-ORIGIN": "SILIGURI", "PINCODE": "", "AREA": "GELEPHU",
		"RECEIVER NAME": "FOOD CORPORATION OF BHUTAN", "VEHICLE NO.": "AC28C9699",
		"VEHICLE TYE": "LPT", "RATE": 21000, "VENDOR NAME": "NITESH SINGH",
	},
	{
		"FROM-ORIGIN": "TARATALA", "PINCODE": "", "AREA": "KISHANGANJ",
		"RECEIVER NAME": "", "VEHICLE NO.": "BR01GB5653", "VEHICLE TYE": "1109",
		"RATE": 10850, "VENDOR NAME": "CHANDAN",
	},
	{
		"FROM-ORIGIN": "SANKRAIL", "PINCODE": "", "AREA": "RANCHI",
		"RECEIVER NAME": "A K ENTERPRISE", "VEHICLE NO.": "CG04HY6165",
		"VEHICLE TYE": "12 WHEEL", "RATE": 33500, "VENDOR NAME": "DINESH SILIGURI",
	},
	{
		"FROM-ORIGIN": "KOROLA", "PINCODE": "", "AREA": "MALDA",
		"RECEIVER NAME": "Dada bhai", "VEHICLE NO.": "WB891846",
		"VEHICLE TYE": "1109-19FT", "RATE": 18000, "VENDOR NAME": "YUDHISHTHIR DOLUI",
	},
	{
		"FROM-ORIGIN": "DANKUNI", "PINCODE": "", "AREA": "RANCHI",
		"RECEIVER NAME": "DAIKIN AIR CONDITIONING", "VEHICLE NO.": "CG04MZ5617",
		"VEHICLE TYE": "1109-19FT", "RATE": 21000, "VENDOR NAME": "DURGA PRASAD SHAW",
	},
	{
		"FROM-ORIGIN": "SILIGURI", "PINCODE": "", "AREA": "KATIHAR",
		"RECEIVER NAME": "ADARSH ENTERPRISE", "VEHICLE NO.": "BR06GB4430",
		"VEHICLE TYE": "1109-19FT", "RATE": 9700, "VENDOR NAME": "JAMIR KHAN",
	},
	{
		"FROM-ORIGIN": "SANKRAIL", "PINCODE": "", "AREA": "RAIPUR",
		"RECEIVER NAME": "S.D.ENTERPRISES", "VEHICLE NO.": "CG10AW7266",
		"VEHICLE TYE": "LPT", "RATE": 25700, "VENDOR NAME": "SHAMIM AHMED KHAN",
	},
}
