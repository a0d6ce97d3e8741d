package blueprint

import "time"

// Epoch is one instant the ephemeris is read at, tagged for the output
// record.
type Epoch struct {
	Tag     string
	Instant time.Time
}

// EpochPolicy decides which instants are sampled for a birth. The
// personality/design split used by some traditions derives a second epoch
// from a solar-arc offset; that offset rule is not fixed by this engine, so
// callers supply whatever policy their tradition requires.
type EpochPolicy interface {
	Name() string
	Epochs(birthUTC time.Time) []Epoch
}

// SingleEpoch samples only the birth instant. This is the default policy.
type SingleEpoch struct{}

// Name implements EpochPolicy.
func (SingleEpoch) Name() string { return "natal-single" }

// Epochs implements EpochPolicy.
func (SingleEpoch) Epochs(birthUTC time.Time) []Epoch {
	return []Epoch{{Tag: "natal", Instant: birthUTC}}
}

// EpochOffset is one tagged offset relative to the birth instant.
type EpochOffset struct {
	Tag    string
	Offset time.Duration
}

// FixedOffsets samples the birth instant plus any number of fixed offsets.
// A caller modeling a design epoch roughly 88 solar days before birth would
// pass {Tag: "design", Offset: -88 * 24 * time.Hour}.
type FixedOffsets struct {
	Offsets []EpochOffset
}

// Name implements EpochPolicy.
func (FixedOffsets) Name() string { return "fixed-offsets" }

// Epochs implements EpochPolicy.
func (p FixedOffsets) Epochs(birthUTC time.Time) []Epoch {
	epochs := make([]Epoch, 0, len(p.Offsets)+1)
	epochs = append(epochs, Epoch{Tag: "natal", Instant: birthUTC})
	for _, o := range p.Offsets {
		epochs = append(epochs, Epoch{Tag: o.Tag, Instant: birthUTC.Add(o.Offset)})
	}
	return epochs
}
