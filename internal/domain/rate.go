package domain

// RawRow is one uncleaned row as delivered by a rate source.
// Keys are whatever column headers the upstream uses; values may be
// strings or numbers depending on the transport.
type RawRow map[string]any

// Represents a single quotable vendor shipping rate.
// A RouteRecord is produced by the dataset cleaner from a RawRow and is
// immutable once installed in a cache generation; refreshes replace the
// whole dataset rather than patching individual records.
type RouteRecord struct {
	Origin       string
	Area         string
	VehicleType  string
	Rate         float64
	VendorName   string
	Pincode      string
	ReceiverName string
	VehicleNo    string
}
