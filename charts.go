package main

import (
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// pieSlice is one wedge of a pie chart. Angles are in radians, clockwise from
// twelve o'clock.
type pieSlice struct {
	Asset    AssetClass
	Fraction float64
	Start    float64
	End      float64
}

// pieSlices splits a full circle between the asset classes in proportion to
// values. Zero values get no slice; an all-zero input gives no slices.
func pieSlices(values map[AssetClass]float64) []pieSlice {
	amounts := make([]float64, len(AssetClasses))
	for i, asset := range AssetClasses {
		amounts[i] = math.Max(values[asset], 0)
	}
	total := floats.Sum(amounts)
	if total <= 0 {
		return nil
	}

	var slices []pieSlice
	angle := 0.0
	for i, asset := range AssetClasses {
		if amounts[i] == 0 {
			continue
		}
		frac := amounts[i] / total
		end := angle + frac*2*math.Pi
		slices = append(slices, pieSlice{Asset: asset, Fraction: frac, Start: angle, End: end})
		angle = end
	}
	return slices
}

// point returns the position at angle on a circle centred on (cx, cy), in a
// y-down coordinate system
func point(cx, cy, r, angle float64) (float64, float64) {
	return cx + r*math.Sin(angle), cy - r*math.Cos(angle)
}

// arcPoints approximates the outline of a wedge: the centre followed by points
// along the arc, at most 5 degrees apart
func arcPoints(cx, cy, r float64, s pieSlice) [][2]float64 {
	steps := int(math.Ceil((s.End - s.Start) / (math.Pi / 36)))
	if steps < 1 {
		steps = 1
	}
	pts := make([][2]float64, 0, steps+2)
	pts = append(pts, [2]float64{cx, cy})
	for i := 0; i <= steps; i++ {
		a := s.Start + (s.End-s.Start)*float64(i)/float64(steps)
		x, y := point(cx, cy, r, a)
		pts = append(pts, [2]float64{x, y})
	}
	return pts
}

// hexRGB parses "#rrggbb". Malformed input gives mid grey.
func hexRGB(hex string) (int, int, int) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 128, 128, 128
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 128, 128, 128
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)
}
