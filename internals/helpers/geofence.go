package helper

import "math"

// Radius bumi dalam meter (mean radius), sama dengan referensi perhitungan
// jarak check-in supaya distance_meters yang tersimpan reproducible.
const earthRadiusMeters = 6371000.0

// Coordinate adalah titik WGS84 dalam derajat. Nilai di luar range tidak
// divalidasi; hasilnya numerik tapi bisa tidak bermakna.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// Distance menghitung jarak great-circle (haversine) antara dua titik,
// dalam meter.
func Distance(a, b Coordinate) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}

// IsWithinRadius true kalau jarak current → site <= radius.
// Tepat di garis radius dihitung masih di dalam.
func IsWithinRadius(current, site Coordinate, radiusMeters float64) bool {
	return Distance(current, site) <= radiusMeters
}
