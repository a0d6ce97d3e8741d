package blueprint

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soulatlas/blueprint/internal/ephemeris"
)

func TestInputFingerprint(t *testing.T) {
	base := InputFingerprint(validInput, "natal-single", "component")
	assert.Len(t, base, 64)

	// Stable across calls.
	assert.Equal(t, base, InputFingerprint(validInput, "natal-single", "component"))

	// Any influencing field changes the key.
	changed := validInput
	changed.Time = "14:31"
	assert.NotEqual(t, base, InputFingerprint(changed, "natal-single", "component"))

	assert.NotEqual(t, base, InputFingerprint(validInput, "fixed-offsets", "component"))
	assert.NotEqual(t, base, InputFingerprint(validInput, "natal-single", "full_digit"))
}

func TestBlueprintFingerprintIgnoresPerRunMetadata(t *testing.T) {
	provider := &ephemeris.Static{Readings: fullReadings()}
	// No fixed clock or id: each run gets fresh per-run metadata.
	asm := NewAssembler(provider)

	first, err := asm.Assemble(context.Background(), validInput)
	require.NoError(t, err)
	second, err := asm.Assemble(context.Background(), validInput)
	require.NoError(t, err)

	require.NotEqual(t, first.Metadata.BlueprintID, second.Metadata.BlueprintID)

	fpA, err := first.Fingerprint()
	require.NoError(t, err)
	fpB, err := second.Fingerprint()
	require.NoError(t, err)
	assert.Equal(t, fpA, fpB)
}

func TestBlueprintFingerprintTracksContent(t *testing.T) {
	asm := NewAssembler(&ephemeris.Static{Readings: fullReadings()})

	readings := fullReadings()
	readings[ephemeris.BodySun] = ephemeris.Reading{Longitude: 100.0}
	moved := NewAssembler(&ephemeris.Static{Readings: readings})

	a, err := asm.Assemble(context.Background(), validInput)
	require.NoError(t, err)
	b, err := moved.Assemble(context.Background(), validInput)
	require.NoError(t, err)

	fpA, err := a.Fingerprint()
	require.NoError(t, err)
	fpB, err := b.Fingerprint()
	require.NoError(t, err)
	assert.NotEqual(t, fpA, fpB)
}

func TestShortFingerprint(t *testing.T) {
	assert.Equal(t, "deadbeef", ShortFingerprint("deadbeef00112233"))
	assert.Equal(t, "abc", ShortFingerprint("abc"))
}
