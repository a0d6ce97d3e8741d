package gatewheel

import (
	"math"

	"github.com/soulatlas/blueprint/internal/shared/errs"
)

// FallbackMarker tags a gate name produced by the uniform-formula fallback
// rather than the canonical table.
const FallbackMarker = "(uniform fallback)"

// Result is one longitude resolved onto the wheel.
type Result struct {
	Gate     int
	Line     int
	GateName string
	Sign     string
	// Fallback is set when the canonical table failed to match and the
	// uniform formula produced the result instead.
	Fallback bool
}

// Resolve maps an ecliptic longitude to its gate and line.
//
// When the canonical table has no matching segment the result is still
// usable: it is computed from the uniform wheel formula, Fallback is set,
// GateName carries FallbackMarker, and a DataMappingError is returned
// alongside the result so callers can record the table fault.
func Resolve(longitude float64) (Result, error) {
	lon := normalize(longitude)

	for _, seg := range segments {
		if !seg.contains(lon) {
			continue
		}
		line := int(seg.offsetWithin(lon)/seg.span()*6) + 1
		if line < 1 {
			line = 1
		} else if line > 6 {
			line = 6
		}
		return Result{
			Gate:     seg.Gate,
			Line:     line,
			GateName: seg.Name,
			Sign:     seg.Sign,
		}, nil
	}

	// No segment matched: the table itself is broken. Fall back to the
	// uniform formula so the computation can continue.
	pos := normalize(lon - wheelOffset)
	idx := int(pos / gateSpan)
	if idx > 63 {
		idx = 63
	}
	line := int(math.Mod(pos, gateSpan)/lineSpan) + 1
	if line > 6 {
		line = 6
	}
	gate := wheelOrder[idx]
	res := Result{
		Gate:     gate,
		Line:     line,
		GateName: gateNames[gate] + " " + FallbackMarker,
		Sign:     zodiacSigns[int(lon/30)%12],
		Fallback: true,
	}
	return res, errs.Mapping("longitude %.6f matched no gate segment", longitude)
}

// normalize brings a longitude into [0, 360).
func normalize(lon float64) float64 {
	lon = math.Mod(lon, 360)
	if lon < 0 {
		lon += 360
	}
	return lon
}
