package dataset

import (
	"slices"

	"freight-quotation-service/internal/domain"
)

// Origins returns the distinct non-empty origin names, sorted.
func Origins(records []domain.RouteRecord) []string {
	return distinct(records, func(r domain.RouteRecord) string { return r.Origin })
}

// Areas returns the distinct non-empty destination areas, sorted.
func Areas(records []domain.RouteRecord) []string {
	return distinct(records, func(r domain.RouteRecord) string { return r.Area })
}

// Vendors returns the distinct non-empty vendor names, sorted.
func Vendors(records []domain.RouteRecord) []string {
	return distinct(records, func(r domain.RouteRecord) string { return r.VendorName })
}

// VehicleTypes returns the distinct non-empty vehicle types, sorted.
func VehicleTypes(records []domain.RouteRecord) []string {
	return distinct(records, func(r domain.RouteRecord) string { return r.VehicleType })
}

// Locations bundles origins, destinations and their union.
func Locations(records []domain.RouteRecord) domain.LocationSet {
	origins := Origins(records)
	destinations := Areas(records)

	seen := make(map[string]struct{}, len(origins)+len(destinations))
	all := make([]string, 0, len(origins)+len(destinations))
	for _, loc := range origins {
		seen[loc] = struct{}{}
		all = append(all, loc)
	}
	for _, loc := range destinations {
		if _, ok := seen[loc]; ok {
			continue
		}
		all = append(all, loc)
	}
	slices.Sort(all)

	return domain.LocationSet{Origins: origins, Destinations: destinations, All: all}
}

func distinct(records []domain.RouteRecord, key func(domain.RouteRecord) string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(records))
	for _, r := range records {
		k := key(r)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
