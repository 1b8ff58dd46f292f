// Package compass converts bearings in degrees to cardinal labels and
// arrow glyphs for display.
package compass

import "math"

// Direction is the encoded form of a bearing.
type Direction struct {
	Arrow   string // 8-point glyph, points where the swell/wind travels toward
	Label8  string
	Label16 string
}

// Unknown is returned for nil, NaN, or infinite input.
var Unknown = Direction{Arrow: "↺", Label8: "N/A", Label16: "N/A"}

// The arrow table is rotated relative to the compass rose on purpose:
// a northerly swell (0°) travels south, so it renders as a down arrow.
// Both tables share the same round(deg/45) mod 8 index.
var arrows = [8]string{"↓", "↙", "←", "↖", "↑", "↗", "→", "↘"}

var labels8 = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

var labels16 = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// Encode converts a bearing to its display form. A nil bearing means the
// upstream source had no reading.
func Encode(degrees *float64) Direction {
	if degrees == nil {
		return Unknown
	}
	return FromDegrees(*degrees)
}

// FromDegrees encodes a known bearing. Non-finite input degrades to Unknown
// rather than failing.
func FromDegrees(degrees float64) Direction {
	if math.IsNaN(degrees) || math.IsInf(degrees, 0) {
		return Unknown
	}

	i8 := mod(int(math.Round(degrees/45)), 8)
	i16 := mod(int(math.Floor((degrees+11.25)/22.5)), 16)

	return Direction{
		Arrow:   arrows[i8],
		Label8:  labels8[i8],
		Label16: labels16[i16],
	}
}

// mod is the non-negative remainder, so bearings below zero still index
// the tables correctly.
func mod(i, n int) int {
	return ((i % n) + n) % n
}
