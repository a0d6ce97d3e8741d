// Package blueprint assembles the full symbolic profile: ephemeris-derived
// gate activations, center/channel definition, numerology, and archetype
// facets, merged into one immutable record.
package blueprint

import (
	"time"

	"github.com/bytedance/sonic"

	"github.com/soulatlas/blueprint/internal/bodygraph"
	"github.com/soulatlas/blueprint/internal/ephemeris"
	"github.com/soulatlas/blueprint/internal/numerology"
	"github.com/soulatlas/blueprint/internal/shared/errs"
	"github.com/soulatlas/blueprint/internal/zodiac"
)

// EngineVersion stamps every blueprint with the calculation engine release.
const EngineVersion = "1.0.0"

// BirthInput is the raw birth data a blueprint is computed from. Location
// and timezone must already be resolved; the engine validates but never
// geocodes, and never substitutes defaults for unparseable fields.
type BirthInput struct {
	FullName string             `json:"full_name"`
	Date     string             `json:"birth_date"` // YYYY-MM-DD
	Time     string             `json:"birth_time"` // HH:MM, local
	Timezone string             `json:"timezone"`   // IANA name
	Location ephemeris.Location `json:"location"`
}

// Resolve validates the input and returns the birth instant, both in local
// wall time and as the single UTC instant it maps to.
func (in BirthInput) Resolve() (local, utc time.Time, err error) {
	if in.FullName == "" {
		return time.Time{}, time.Time{}, errs.Validation("full name is required")
	}
	if err := in.Location.Validate(); err != nil {
		return time.Time{}, time.Time{}, err
	}

	loc, lerr := time.LoadLocation(in.Timezone)
	if lerr != nil {
		return time.Time{}, time.Time{}, errs.Validation("unknown timezone %q", in.Timezone)
	}

	local, perr := time.ParseInLocation("2006-01-02 15:04", in.Date+" "+in.Time, loc)
	if perr != nil {
		return time.Time{}, time.Time{}, errs.Validation("unparseable birth date/time %q %q", in.Date, in.Time)
	}
	return local, local.UTC(), nil
}

// GateActivation is one body's position resolved onto the wheel for one
// epoch.
type GateActivation struct {
	Epoch    string         `json:"epoch"`
	Body     ephemeris.Body `json:"body"`
	Gate     int            `json:"gate"`
	Line     int            `json:"line"`
	GateName string         `json:"gate_name"`
	Fallback bool           `json:"fallback,omitempty"`
}

// Fault records a per-body data-mapping problem that did not abort the
// computation. Faults are part of calculation metadata so downstream
// consumers can see exactly what degraded.
type Fault struct {
	Epoch  string         `json:"epoch"`
	Body   ephemeris.Body `json:"body"`
	Detail string         `json:"detail"`
}

// ChannelState is one active channel in the output record.
type ChannelState struct {
	Key  string `json:"key"` // "A-B"
	Name string `json:"name"`
}

// Archetype carries the western and Chinese zodiac facets.
type Archetype struct {
	Sun     *zodiac.Placement `json:"sun,omitempty"`
	Moon    *zodiac.Placement `json:"moon,omitempty"`
	Chinese zodiac.Chinese    `json:"chinese"`
}

// Metadata describes how a blueprint was computed.
type Metadata struct {
	BlueprintID     string                    `json:"blueprint_id"`
	EngineVersion   string                    `json:"engine_version"`
	LifePathMethod  numerology.LifePathMethod `json:"life_path_method"`
	EpochPolicy     string                    `json:"epoch_policy"`
	EphemerisSource string                    `json:"ephemeris_source"`
	ComputedAt      time.Time                 `json:"computed_at"`
	Faults          []Fault                   `json:"data_mapping_faults,omitempty"`
}

// Blueprint is the aggregate output record. It is immutable once produced:
// a changed BirthInput yields a new blueprint rather than mutating this one.
type Blueprint struct {
	Input       BirthInput                     `json:"input"`
	Snapshots   []*ephemeris.Snapshot          `json:"snapshots"`
	Activations []GateActivation               `json:"gates"`
	Centers     map[bodygraph.Center]bool      `json:"centers"`
	Channels    []ChannelState                 `json:"channels"`
	Numerology  *numerology.Profile            `json:"numerology"`
	Archetype   Archetype                      `json:"archetype"`
	Metadata    Metadata                       `json:"calculation_metadata"`
}

// Encode serializes the blueprint. sonic's std-compatible config sorts map
// keys, so identical blueprints encode byte-identically.
func (b *Blueprint) Encode() ([]byte, error) {
	return sonic.ConfigStd.Marshal(b)
}
