package helper

import (
	"math"
	"testing"
)

func TestDistanceSymmetricAndZero(t *testing.T) {
	cases := []struct {
		name string
		a, b Coordinate
	}{
		{"equator", Coordinate{0, 0}, Coordinate{0, 1}},
		{"jakarta-bandung", Coordinate{-6.2, 106.8}, Coordinate{-6.9, 107.6}},
		{"near-pole", Coordinate{89.5, 10}, Coordinate{89.5, -170}},
		{"same-point", Coordinate{10, 10}, Coordinate{10, 10}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ab := Distance(tc.a, tc.b)
			ba := Distance(tc.b, tc.a)
			if math.Abs(ab-ba) > 1e-9 {
				t.Fatalf("distance not symmetric: %v vs %v", ab, ba)
			}
			if got := Distance(tc.a, tc.a); got != 0 {
				t.Fatalf("distance(a,a) = %v, want 0", got)
			}
		})
	}
}

func TestDistanceKnownValues(t *testing.T) {
	// 0.0009 derajat latitude ≈ 100 meter
	site := Coordinate{10.0, 10.0}
	reading := Coordinate{10.0009, 10.0}

	d := Distance(reading, site)
	if d < 99 || d > 101 {
		t.Fatalf("distance = %v, want ~100m", d)
	}

	// 1 derajat longitude di equator ≈ 111.19 km
	d = Distance(Coordinate{0, 0}, Coordinate{0, 1})
	if d < 111100 || d > 111300 {
		t.Fatalf("equator degree = %v, want ~111195m", d)
	}
}

func TestIsWithinRadiusBoundaryInclusive(t *testing.T) {
	site := Coordinate{10.0, 10.0}
	reading := Coordinate{10.0009, 10.0}
	d := Distance(reading, site)

	if !IsWithinRadius(reading, site, d) {
		t.Fatalf("reading at exactly radius %v should be inside", d)
	}
	if IsWithinRadius(reading, site, d-0.5) {
		t.Fatalf("reading beyond radius %v should be outside", d-0.5)
	}
	if !IsWithinRadius(reading, site, d+50) {
		t.Fatal("reading well inside radius should be inside")
	}
	if !IsWithinRadius(site, site, 0) {
		t.Fatal("zero distance should be inside any radius")
	}
}
