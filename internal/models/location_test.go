package models

import "testing"

func TestCoordinate_Valid(t *testing.T) {
	tests := []struct {
		name  string
		coord Coordinate
		want  bool
	}{
		{"malibu", Coordinate{Lat: 34.0195, Lng: -118.4912}, true},
		{"equator meridian", Coordinate{}, true},
		{"poles", Coordinate{Lat: -90, Lng: 180}, true},
		{"lat too high", Coordinate{Lat: 90.1, Lng: 0}, false},
		{"lng too low", Coordinate{Lat: 0, Lng: -180.5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.coord.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCoordinate_SameSpot(t *testing.T) {
	malibu := Coordinate{Lat: 34.0195, Lng: -118.4912}

	tests := []struct {
		name  string
		other Coordinate
		want  bool
	}{
		{"nearby point is a duplicate", Coordinate{Lat: 34.0199, Lng: -118.4908}, true},
		{"identical point", malibu, true},
		{"lat delta too large", Coordinate{Lat: 34.0300, Lng: -118.4912}, false},
		{"lng delta too large", Coordinate{Lat: 34.0195, Lng: -118.5020}, false},
		{"both deltas just under threshold", Coordinate{Lat: 34.0294, Lng: -118.5011}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := malibu.SameSpot(tt.other); got != tt.want {
				t.Errorf("SameSpot(%+v) = %v, want %v", tt.other, got, tt.want)
			}
		})
	}
}
