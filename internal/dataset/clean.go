package dataset

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"freight-quotation-service/internal/domain"
)

// Canonical field names of the rate table.
const (
	fieldOrigin      = "origin"
	fieldPincode     = "pincode"
	fieldArea        = "area"
	fieldReceiver    = "receiver_name"
	fieldVehicleNo   = "vehicle_no"
	fieldVehicleType = "vehicle_type"
	fieldRate        = "rate"
	fieldVendor      = "vendor_name"
)

// fieldAliases maps accepted raw column headers (after aliasKey
// canonicalization) onto the schema. Unknown headers are ignored.
// "VEHICLETYE" is a long-standing typo in the upstream sheet header.
var fieldAliases = map[string]string{
	"FROMORIGIN":    fieldOrigin,
	"ORIGIN":        fieldOrigin,
	"FROM":          fieldOrigin,
	"PINCODE":       fieldPincode,
	"PIN":           fieldPincode,
	"AREA":          fieldArea,
	"DESTINATION":   fieldArea,
	"TOAREA":        fieldArea,
	"RECEIVERNAME":  fieldReceiver,
	"RECEIVER":      fieldReceiver,
	"VEHICLENO":     fieldVehicleNo,
	"VEHICLENUMBER": fieldVehicleNo,
	"VEHICLETYE":    fieldVehicleType,
	"VEHICLETYPE":   fieldVehicleType,
	"RATE":          fieldRate,
	"VENDORNAME":    fieldVendor,
	"VENDOR":        fieldVendor,
}

var aliasStripRe = regexp.MustCompile(`[^A-Z0-9]`)

// aliasKey canonicalizes a raw header for alias lookup, so
// "FROM-ORIGIN", "from_origin" and "FromOrigin" all resolve alike.
func aliasKey(header string) string {
	return aliasStripRe.ReplaceAllString(strings.ToUpper(header), "")
}

// Clean normalizes raw rate-table rows into RouteRecords.
//
// It maps tolerated header variants onto the canonical schema, drops
// entirely empty rows, forward-fills missing origins from the previous
// non-empty row (the upstream sheet uses merged origin cells), blanks
// "nan"/"#REF!" sentinels, coerces rates to non-negative numbers and
// drops rows lacking all of a non-empty origin, a non-empty area and a
// positive rate. Clean is total: malformed input degrades per row, it
// never fails outright.
func Clean(raws []domain.RawRow) []domain.RouteRecord {
	records := make([]domain.RouteRecord, 0, len(raws))

	lastOrigin := ""
	for _, raw := range raws {
		rec, empty := mapRow(raw)
		if empty {
			continue
		}

		if rec.Origin == "" {
			rec.Origin = lastOrigin
		} else {
			lastOrigin = rec.Origin
		}

		if rec.Origin == "" && rec.Area == "" && rec.Rate <= 0 {
			continue
		}
		records = append(records, rec)
	}

	return records
}

// mapRow applies the alias table to a single raw row. The second return
// reports whether every cell was blank after sentinel cleaning.
func mapRow(raw domain.RawRow) (domain.RouteRecord, bool) {
	var rec domain.RouteRecord
	empty := true

	for header, value := range raw {
		field, known := fieldAliases[aliasKey(header)]
		if !known {
			continue
		}

		if field == fieldRate {
			rec.Rate = coerceRate(value)
			if rec.Rate > 0 {
				empty = false
			}
			continue
		}

		text := cleanText(value)
		if text != "" {
			empty = false
		}
		switch field {
		case fieldOrigin:
			rec.Origin = text
		case fieldPincode:
			rec.Pincode = text
		case fieldArea:
			rec.Area = text
		case fieldReceiver:
			rec.ReceiverName = text
		case fieldVehicleNo:
			rec.VehicleNo = text
		case fieldVehicleType:
			rec.VehicleType = text
		case fieldVendor:
			rec.VendorName = text
		}
	}

	return rec, empty
}

// cleanText stringifies a raw cell, trims it and blanks the sentinel
// values spreadsheets leak into exports.
func cleanText(value any) string {
	s := strings.TrimSpace(stringify(value))
	switch s {
	case "nan", "NaN", "#REF!":
		return ""
	}
	return s
}

func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// coerceRate turns a raw cell into a non-negative rate; anything
// unparseable or negative becomes 0.
func coerceRate(value any) float64 {
	var rate float64
	switch v := value.(type) {
	case float64:
		rate = v
	case int:
		rate = float64(v)
	case int64:
		rate = float64(v)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		rate = parsed
	default:
		return 0
	}

	// ParseFloat accepts "nan" and "inf"; neither is a rate.
	if rate < 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return 0
	}
	return rate
}
