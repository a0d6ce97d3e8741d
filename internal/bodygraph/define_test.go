package bodygraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTablesSelfCheck(t *testing.T) {
	require.NoError(t, Validate())
}

func TestSingleChannelDefinesItsTwoCenters(t *testing.T) {
	// Gates 1 (G center) and 8 (throat) complete the Inspiration channel.
	def := Define([]int{1, 8})

	assert.True(t, def.Centers[CenterG])
	assert.True(t, def.Centers[CenterThroat])
	for _, c := range Centers {
		if c == CenterG || c == CenterThroat {
			continue
		}
		assert.False(t, def.Centers[c], "center %s should stay undefined", c)
	}

	require.Len(t, def.ActiveChannels, 1)
	assert.Equal(t, "1-8", def.ActiveChannels[0].Key())
	assert.Equal(t, []string{"1-8"}, def.ChannelKeys())
}

func TestActivatedGatesWithoutChannelDefineNothing(t *testing.T) {
	// 1 and 2 are both G-center gates but pair with 8 and 14 respectively;
	// neither channel completes.
	def := Define([]int{1, 2})

	assert.Empty(t, def.ActiveChannels)
	for _, c := range Centers {
		assert.False(t, def.Centers[c])
	}
	assert.Empty(t, def.DefinedCenters())
}

func TestActivationIsGateIdentityBased(t *testing.T) {
	// Duplicates and ordering must not matter.
	a := Define([]int{9, 52, 9, 9, 52})
	b := Define([]int{52, 9})

	assert.Equal(t, a.Centers, b.Centers)
	assert.Equal(t, a.ChannelKeys(), b.ChannelKeys())
	assert.True(t, a.Centers[CenterSacral])
	assert.True(t, a.Centers[CenterRoot])
}

func TestMultipleChannelsSharingAGate(t *testing.T) {
	// Gate 20 participates in 10-20, 20-34 and 20-57; with 10, 34 and 57
	// all activated, three channels complete and four centers define.
	def := Define([]int{10, 20, 34, 57})

	assert.ElementsMatch(t,
		[]string{"10-20", "10-34", "10-57", "20-34", "20-57", "34-57"},
		def.ChannelKeys(),
	)
	assert.True(t, def.Centers[CenterG])
	assert.True(t, def.Centers[CenterThroat])
	assert.True(t, def.Centers[CenterSacral])
	assert.True(t, def.Centers[CenterSpleen])
	assert.False(t, def.Centers[CenterHead])
}

func TestDefineIsIdempotent(t *testing.T) {
	gates := []int{1, 8, 23, 43, 61, 24}
	first := Define(gates)
	second := Define(gates)

	assert.Equal(t, first.Centers, second.Centers)
	assert.Equal(t, first.ChannelKeys(), second.ChannelKeys())
}

func TestEmptyActivationSet(t *testing.T) {
	def := Define(nil)
	assert.Len(t, def.Centers, 9)
	assert.Empty(t, def.ActiveChannels)
}
