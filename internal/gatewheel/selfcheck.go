package gatewheel

import (
	"math"

	"github.com/soulatlas/blueprint/internal/shared/errs"
)

// Validate asserts the structural integrity of the canonical table: 64
// segments, every gate exactly once, full 360-degree coverage with no gaps
// or overlaps, and exactly one segment wrapping the seam. It exists because
// the source material this engine replaced shipped two divergent wheel
// orderings; the table here must remain the single authoritative one.
func Validate() error {
	if len(segments) != 64 {
		return errs.Invariant("wheel has %d segments, want 64", len(segments))
	}

	seen := make(map[int]bool, 64)
	wrapping := 0
	total := 0.0
	for i, seg := range segments {
		if seg.Gate < 1 || seg.Gate > 64 {
			return errs.Invariant("segment %d has gate %d outside [1,64]", i, seg.Gate)
		}
		if seen[seg.Gate] {
			return errs.Invariant("gate %d appears more than once", seg.Gate)
		}
		seen[seg.Gate] = true

		if seg.End < seg.Start {
			wrapping++
		}
		total += seg.span()

		// Each segment must begin exactly where the previous one ended.
		prev := segments[(i+63)%64]
		if math.Abs(math.Mod(prev.End-seg.Start+360, 360)) > 1e-9 {
			return errs.Invariant("gap between gate %d (end %.6f) and gate %d (start %.6f)",
				prev.Gate, prev.End, seg.Gate, seg.Start)
		}

		if seg.Name == "" {
			return errs.Invariant("gate %d has no name", seg.Gate)
		}
	}

	if wrapping != 1 {
		return errs.Invariant("wheel has %d wrapping segments, want exactly 1", wrapping)
	}
	if math.Abs(total-360) > 1e-9 {
		return errs.Invariant("wheel covers %.9f degrees, want 360", total)
	}
	return nil
}
