package ephemeris

import (
	"context"
	"time"
)

// Static is a Provider backed by fixed readings. It serves tests and
// offline operation; every call returns the same data regardless of
// instant and location, after the same validation the HTTP client applies.
type Static struct {
	// Source tags snapshots; defaults to "static".
	Source string
	// Readings are returned as-is. Tracked bodies missing from the map are
	// reported unresolved.
	Readings map[Body]Reading
}

// Positions implements Provider.
func (s *Static) Positions(_ context.Context, instant time.Time, loc Location) (*Snapshot, error) {
	if err := loc.Validate(); err != nil {
		return nil, err
	}

	source := s.Source
	if source == "" {
		source = "static"
	}

	snapshot := &Snapshot{
		Instant: instant.UTC(),
		Source:  source,
		Bodies:  make(map[Body]Reading, len(s.Readings)),
	}
	for _, b := range Bodies {
		r, ok := s.Readings[b]
		if !ok {
			snapshot.Unresolved = append(snapshot.Unresolved, b)
			continue
		}
		snapshot.Bodies[b] = r
	}
	return snapshot, nil
}
