// Package ephemeris supplies ecliptic positions for the thirteen bodies the
// blueprint engine reads. The Provider interface is an interchangeable
// strategy: the HTTP client talks to a remote ephemeris service, the Static
// provider replays fixed data for tests and offline use.
package ephemeris

import (
	"context"
	"time"

	"github.com/soulatlas/blueprint/internal/shared/errs"
)

// Body identifies one of the celestial bodies the engine tracks.
type Body string

const (
	BodySun       Body = "sun"
	BodyEarth     Body = "earth"
	BodyMoon      Body = "moon"
	BodyMercury   Body = "mercury"
	BodyVenus     Body = "venus"
	BodyMars      Body = "mars"
	BodyJupiter   Body = "jupiter"
	BodySaturn    Body = "saturn"
	BodyUranus    Body = "uranus"
	BodyNeptune   Body = "neptune"
	BodyPluto     Body = "pluto"
	BodyNorthNode Body = "north_node"
	BodySouthNode Body = "south_node"
)

// Bodies lists all tracked bodies in a stable order.
var Bodies = [13]Body{
	BodySun, BodyEarth, BodyMoon, BodyMercury, BodyVenus, BodyMars,
	BodyJupiter, BodySaturn, BodyUranus, BodyNeptune, BodyPluto,
	BodyNorthNode, BodySouthNode,
}

// Reading is one body's position at an instant. Longitude is ecliptic,
// normalized to [0,360).
type Reading struct {
	Longitude  float64 `json:"longitude"`
	Latitude   float64 `json:"latitude"`
	Speed      float64 `json:"speed"`
	Retrograde bool    `json:"retrograde"`
}

// Snapshot is the full set of readings for one instant. Bodies the provider
// could not resolve are listed in Unresolved rather than fabricated.
type Snapshot struct {
	Instant    time.Time        `json:"instant"`
	Source     string           `json:"source"`
	Bodies     map[Body]Reading `json:"bodies"`
	Unresolved []Body           `json:"unresolved,omitempty"`
}

// Reading returns the reading for a body and whether it was resolved.
func (s *Snapshot) Reading(b Body) (Reading, bool) {
	r, ok := s.Bodies[b]
	return r, ok
}

// Location is a resolved geographic coordinate pair.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Validate rejects out-of-range coordinates. An unresolvable location fails
// before any network call; it is never replaced with a default.
func (l Location) Validate() error {
	if l.Latitude < -90 || l.Latitude > 90 {
		return errs.Validation("latitude %.6f outside [-90,90]", l.Latitude)
	}
	if l.Longitude < -180 || l.Longitude > 180 {
		return errs.Validation("longitude %.6f outside [-180,180]", l.Longitude)
	}
	return nil
}

// Provider supplies a snapshot for a UTC instant at a location.
type Provider interface {
	Positions(ctx context.Context, instant time.Time, loc Location) (*Snapshot, error)
}
