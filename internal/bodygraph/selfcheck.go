package bodygraph

import "github.com/soulatlas/blueprint/internal/shared/errs"

// Validate asserts the integrity of the canonical tables: all 64 gates
// assigned to exactly one center, and all 36 channels referencing valid,
// distinct gates with no duplicate pairings. The source material carried two
// divergent table sets; this check pins the authoritative one.
func Validate() error {
	if len(gateCenters) != 64 {
		return errs.Invariant("center table has %d gates, want 64", len(gateCenters))
	}
	for gate := 1; gate <= 64; gate++ {
		if _, ok := gateCenters[gate]; !ok {
			return errs.Invariant("gate %d missing from center table", gate)
		}
	}

	perCenter := make(map[Center]int, len(Centers))
	for _, c := range gateCenters {
		perCenter[c]++
	}
	if len(perCenter) != 9 {
		return errs.Invariant("center table references %d centers, want 9", len(perCenter))
	}

	seen := make(map[string]bool, len(channels))
	for _, ch := range channels {
		if ch.A < 1 || ch.A > 64 || ch.B < 1 || ch.B > 64 {
			return errs.Invariant("channel %s references a gate outside [1,64]", ch.Key())
		}
		if ch.A == ch.B {
			return errs.Invariant("channel %s pairs a gate with itself", ch.Key())
		}
		if seen[ch.Key()] {
			return errs.Invariant("channel %s appears more than once", ch.Key())
		}
		seen[ch.Key()] = true
		if ch.Name == "" {
			return errs.Invariant("channel %s has no name", ch.Key())
		}
	}
	return nil
}
