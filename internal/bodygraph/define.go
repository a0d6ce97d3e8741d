// Package bodygraph determines which of the nine centers are defined from a
// set of activated gates. Definition is a pure set computation over two
// fixed tables: the gate-to-center assignment and the 36-channel pairing.
package bodygraph

import (
	"sort"
	"strconv"
)

// Definition is the derived state of the graph.
type Definition struct {
	// Centers maps every center to its defined state. All nine keys are
	// always present.
	Centers map[Center]bool
	// ActiveChannels lists the completed channels in table order.
	ActiveChannels []Channel
}

// Define computes center and channel state from activated gate numbers.
// Activation is gate-identity based: it does not matter which body or epoch
// contributed a gate, or how many times. The computation is idempotent.
func Define(gates []int) Definition {
	activated := make(map[int]bool, len(gates))
	for _, g := range gates {
		activated[g] = true
	}

	def := Definition{Centers: make(map[Center]bool, len(Centers))}
	for _, c := range Centers {
		def.Centers[c] = false
	}

	// A channel is active iff both gates are activated; a center is defined
	// iff one of its gates participates in an active channel. Activated
	// gates without a completed channel leave their center undefined.
	for _, ch := range channels {
		if activated[ch.A] && activated[ch.B] {
			def.ActiveChannels = append(def.ActiveChannels, ch)
			def.Centers[gateCenters[ch.A]] = true
			def.Centers[gateCenters[ch.B]] = true
		}
	}
	return def
}

// DefinedCenters returns the defined centers in stable order.
func (d Definition) DefinedCenters() []Center {
	var out []Center
	for _, c := range Centers {
		if d.Centers[c] {
			out = append(out, c)
		}
	}
	return out
}

// ChannelKeys returns "A-B" identifiers for the active channels, sorted.
func (d Definition) ChannelKeys() []string {
	keys := make([]string, 0, len(d.ActiveChannels))
	for _, ch := range d.ActiveChannels {
		keys = append(keys, ch.Key())
	}
	sort.Strings(keys)
	return keys
}

// Key returns the channel's canonical "A-B" identifier.
func (c Channel) Key() string {
	a, b := c.A, c.B
	if b < a {
		a, b = b, a
	}
	return strconv.Itoa(a) + "-" + strconv.Itoa(b)
}
