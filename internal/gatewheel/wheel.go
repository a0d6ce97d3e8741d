// Package gatewheel maps ecliptic longitudes onto the 64-gate wheel.
//
// The wheel is an ordered sequence of segments spanning the full 360
// degrees. Gate 1 begins at 15 degrees Aries, each gate spans 5.625
// degrees, and each gate divides into six equal lines of 0.9375 degrees.
// Segments are half-open: inclusive at their start, exclusive at their end.
// The segments near the end of the ordering wrap across the 0/360 seam.
package gatewheel

import "math"

const (
	// wheelOffset is where gate 1 begins, in degrees from 0 Aries.
	wheelOffset = 15.0
	// gateSpan is the angular width of one gate.
	gateSpan = 360.0 / 64.0 // 5.625
	// lineSpan is the angular width of one line.
	lineSpan = gateSpan / 6.0 // 0.9375
)

// Segment is one gate's slice of the wheel. A segment with End < Start wraps
// across the 0/360 seam.
type Segment struct {
	Gate  int
	Start float64
	End   float64
	Sign  string
	Name  string
}

// segments is the canonical ordered table, built once from the wheel order.
var segments = buildSegments()

func buildSegments() []Segment {
	segs := make([]Segment, len(wheelOrder))
	for i, gate := range wheelOrder {
		start := math.Mod(wheelOffset+gateSpan*float64(i), 360)
		end := math.Mod(start+gateSpan, 360)
		segs[i] = Segment{
			Gate:  gate,
			Start: start,
			End:   end,
			Sign:  zodiacSigns[int(start/30)],
			Name:  gateNames[gate],
		}
	}
	return segs
}

// Segments returns a copy of the canonical table, for self-checks.
func Segments() []Segment {
	out := make([]Segment, len(segments))
	copy(out, segments)
	return out
}

// GateName returns the traditional name for a gate, or "".
func GateName(gate int) string {
	return gateNames[gate]
}

// contains reports whether the segment covers the longitude, honoring the
// half-open interval and the seam wrap.
func (s Segment) contains(lon float64) bool {
	if s.End < s.Start {
		// Wrapping segment: match by disjunction across the seam.
		return lon >= s.Start || lon < s.End
	}
	return lon >= s.Start && lon < s.End
}

// span returns the segment's angular length, accounting for wrap.
func (s Segment) span() float64 {
	if s.End < s.Start {
		return (360 - s.Start) + s.End
	}
	return s.End - s.Start
}

// offsetWithin returns how far into the segment the longitude sits.
func (s Segment) offsetWithin(lon float64) float64 {
	if s.End < s.Start && lon < s.Start {
		return (360 - s.Start) + lon
	}
	return lon - s.Start
}
