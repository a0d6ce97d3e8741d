package blueprint

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soulatlas/blueprint/internal/bodygraph"
	"github.com/soulatlas/blueprint/internal/ephemeris"
	"github.com/soulatlas/blueprint/internal/numerology"
	"github.com/soulatlas/blueprint/internal/shared/errs"
)

var validInput = BirthInput{
	FullName: "Ada Lovelace",
	Date:     "1978-02-12",
	Time:     "14:30",
	Timezone: "America/New_York",
	Location: ephemeris.Location{Latitude: 40.7128, Longitude: -74.006},
}

// fullReadings resolves every tracked body. Sun sits in gate 1 and Moon in
// gate 8, so the Inspiration channel (1-8) completes.
func fullReadings() map[ephemeris.Body]ephemeris.Reading {
	readings := map[ephemeris.Body]ephemeris.Reading{
		ephemeris.BodySun:  {Longitude: 15.2},
		ephemeris.BodyMoon: {Longitude: 206.3},
	}
	rest := []ephemeris.Body{
		ephemeris.BodyEarth, ephemeris.BodyMercury, ephemeris.BodyVenus,
		ephemeris.BodyMars, ephemeris.BodyJupiter, ephemeris.BodySaturn,
		ephemeris.BodyUranus, ephemeris.BodyNeptune, ephemeris.BodyPluto,
		ephemeris.BodyNorthNode, ephemeris.BodySouthNode,
	}
	for i, b := range rest {
		// Spread the rest through gate 1 so no extra channels complete.
		readings[b] = ephemeris.Reading{Longitude: 15.3 + float64(i)*0.01}
	}
	return readings
}

func fixedOpts() []Option {
	at := time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC)
	return []Option{
		WithClock(func() time.Time { return at }),
		WithIDFunc(func() string { return "00000000-0000-0000-0000-000000000001" }),
	}
}

func TestAssembleFullPipeline(t *testing.T) {
	provider := &ephemeris.Static{Readings: fullReadings()}
	asm := NewAssembler(provider, fixedOpts()...)

	bp, err := asm.Assemble(context.Background(), validInput)
	require.NoError(t, err)

	// 13 bodies, one epoch.
	assert.Len(t, bp.Activations, 13)
	assert.Empty(t, bp.Metadata.Faults)

	// The 1-8 channel defines G and throat; everything else stays open.
	assert.True(t, bp.Centers[bodygraph.CenterG])
	assert.True(t, bp.Centers[bodygraph.CenterThroat])
	assert.False(t, bp.Centers[bodygraph.CenterSacral])
	require.Len(t, bp.Channels, 1)
	assert.Equal(t, "1-8", bp.Channels[0].Key)
	assert.Equal(t, "Inspiration", bp.Channels[0].Name)

	// Numerology rides along; 1978-02-12 is life path 3 either way.
	assert.Equal(t, numerology.Digit(3), bp.Numerology.LifePath.Number)

	// Archetype reads straight off the natal longitudes.
	require.NotNil(t, bp.Archetype.Sun)
	assert.Equal(t, "Aries", bp.Archetype.Sun.Sign)
	require.NotNil(t, bp.Archetype.Moon)
	assert.Equal(t, "Libra", bp.Archetype.Moon.Sign)
	assert.Equal(t, "Horse", bp.Archetype.Chinese.Animal)

	assert.Equal(t, EngineVersion, bp.Metadata.EngineVersion)
	assert.Equal(t, "natal-single", bp.Metadata.EpochPolicy)
	assert.Equal(t, "static", bp.Metadata.EphemerisSource)
}

func TestAssembleIsDeterministic(t *testing.T) {
	provider := &ephemeris.Static{Readings: fullReadings()}
	asm := NewAssembler(provider, fixedOpts()...)

	first, err := asm.Assemble(context.Background(), validInput)
	require.NoError(t, err)
	second, err := asm.Assemble(context.Background(), validInput)
	require.NoError(t, err)

	a, err := first.Encode()
	require.NoError(t, err)
	b, err := second.Encode()
	require.NoError(t, err)
	assert.Equal(t, a, b, "identical input and provider data must encode byte-identically")
}

type countingProvider struct {
	inner ephemeris.Provider
	calls int32
}

func (c *countingProvider) Positions(ctx context.Context, instant time.Time, loc ephemeris.Location) (*ephemeris.Snapshot, error) {
	atomic.AddInt32(&c.calls, 1)
	return c.inner.Positions(ctx, instant, loc)
}

func TestAssembleValidatesBeforeProviderCall(t *testing.T) {
	provider := &countingProvider{inner: &ephemeris.Static{Readings: fullReadings()}}
	asm := NewAssembler(provider)

	tests := []struct {
		name   string
		mutate func(*BirthInput)
	}{
		{name: "empty name", mutate: func(in *BirthInput) { in.FullName = "" }},
		{name: "vowel-less name", mutate: func(in *BirthInput) { in.FullName = "Bcdf Ghjk" }},
		{name: "bad timezone", mutate: func(in *BirthInput) { in.Timezone = "Mars/Olympus" }},
		{name: "bad date", mutate: func(in *BirthInput) { in.Date = "1978-13-40" }},
		{name: "bad time", mutate: func(in *BirthInput) { in.Time = "25:99" }},
		{name: "latitude out of range", mutate: func(in *BirthInput) { in.Location.Latitude = 91 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput
			tt.mutate(&input)

			_, err := asm.Assemble(context.Background(), input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errs.ErrInputValidation), "got %v", err)
		})
	}
	assert.Equal(t, int32(0), atomic.LoadInt32(&provider.calls), "validation failures must precede provider calls")
}

type failingProvider struct{}

func (failingProvider) Positions(context.Context, time.Time, ephemeris.Location) (*ephemeris.Snapshot, error) {
	return nil, errs.Upstream(nil, "ephemeris unavailable")
}

func TestAssembleAbortsOnUpstreamFailure(t *testing.T) {
	asm := NewAssembler(failingProvider{})

	bp, err := asm.Assemble(context.Background(), validInput)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrUpstream))
	assert.Nil(t, bp, "no partially-populated blueprint may be returned")
}

func TestAssembleRecordsUnresolvedBodiesAsFaults(t *testing.T) {
	readings := fullReadings()
	delete(readings, ephemeris.BodyPluto)
	delete(readings, ephemeris.BodySouthNode)
	asm := NewAssembler(&ephemeris.Static{Readings: readings})

	bp, err := asm.Assemble(context.Background(), validInput)
	require.NoError(t, err, "per-body gaps must not abort the computation")

	assert.Len(t, bp.Activations, 11)
	require.Len(t, bp.Metadata.Faults, 2)
	faultBodies := []ephemeris.Body{bp.Metadata.Faults[0].Body, bp.Metadata.Faults[1].Body}
	assert.ElementsMatch(t, []ephemeris.Body{ephemeris.BodyPluto, ephemeris.BodySouthNode}, faultBodies)
}

func TestAssembleMultiEpochPolicy(t *testing.T) {
	provider := &countingProvider{inner: &ephemeris.Static{Readings: fullReadings()}}
	asm := NewAssembler(provider,
		WithEpochPolicy(FixedOffsets{Offsets: []EpochOffset{
			{Tag: "design", Offset: -88 * 24 * time.Hour},
		}}),
	)

	bp, err := asm.Assemble(context.Background(), validInput)
	require.NoError(t, err)

	assert.Equal(t, int32(2), atomic.LoadInt32(&provider.calls))
	assert.Len(t, bp.Activations, 26)
	assert.Len(t, bp.Snapshots, 2)
	assert.Equal(t, "fixed-offsets", bp.Metadata.EpochPolicy)

	epochs := map[string]int{}
	for _, act := range bp.Activations {
		epochs[act.Epoch]++
	}
	assert.Equal(t, map[string]int{"natal": 13, "design": 13}, epochs)
}

func TestAssembleLifePathMethodSelection(t *testing.T) {
	provider := &ephemeris.Static{Readings: fullReadings()}
	asm := NewAssembler(provider, WithLifePathMethod(numerology.MethodFullDigit))

	bp, err := asm.Assemble(context.Background(), validInput)
	require.NoError(t, err)

	assert.Equal(t, numerology.MethodFullDigit, bp.Metadata.LifePathMethod)
	assert.Equal(t, numerology.MethodFullDigit, bp.Numerology.LifePathMethod)
}
