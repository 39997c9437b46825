// Copyright (c) 2024, The SNNKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuron

import "sort"

// SpikeSourceArrayParams holds the emission schedule for a
// SpikeSourceArray: a variable-length list of spike times in ms,
// conventionally ascending.  Unlike the fixed-schema models there are no
// named parameters; on the wire the schedule travels as the instance's
// parameter sequence (see ParamValues), which keeps the external
// serialization shape compatible with fixed-schema instances.
type SpikeSourceArrayParams struct {
	Times []float32 `desc:"spike times in ms, conventionally ascending"`
}

// NewSpikeSourceArrayParams returns a schedule holding the given spike
// times, copied out of the argument list.  Ordering is not enforced:
// see Sorted and Sort.
func NewSpikeSourceArrayParams(times ...float32) SpikeSourceArrayParams {
	ps := SpikeSourceArrayParams{Times: make([]float32, len(times))}
	copy(ps.Times, times)
	return ps
}

// Size returns the number of scheduled spikes.
func (ps *SpikeSourceArrayParams) Size() int {
	return len(ps.Times)
}

// Sorted reports whether the spike times are in ascending order.
// Backends generally expect ascending times but some accept unsorted
// trains, so construction does not reject or reorder them.
func (ps *SpikeSourceArrayParams) Sorted() bool {
	return sort.SliceIsSorted(ps.Times, func(i, j int) bool { return ps.Times[i] < ps.Times[j] })
}

// Sort puts the spike times into ascending order in place.
func (ps *SpikeSourceArrayParams) Sort() {
	sort.Slice(ps.Times, func(i, j int) bool { return ps.Times[i] < ps.Times[j] })
}

// ParamValues returns the spike times as a parameter vector, in order,
// for serialization and transfer to a backend.
func (ps *SpikeSourceArrayParams) ParamValues() Params {
	return ParamsFrom(ps.Times...)
}

// Signal indexes for the SpikeSourceArray model.
const (
	SpikeSourceArraySigSpikes = iota

	SpikeSourceArrayNSignals
)

// SpikeSourceArraySignals selects whether the emitted spikes are
// recorded -- the only signal a spike source has.
type SpikeSourceArraySignals struct {
	Signals
}

// NewSpikeSourceArraySignals returns a signal vector with nothing
// recorded.
func NewSpikeSourceArraySignals() SpikeSourceArraySignals {
	return SpikeSourceArraySignals{make(Signals, SpikeSourceArrayNSignals)}
}

// Spikes reports whether the emitted spikes are recorded.
func (ss SpikeSourceArraySignals) Spikes() bool { return ss.Signals[SpikeSourceArraySigSpikes] }

// SetSpikes enables or disables recording of the emitted spikes.
func (ss SpikeSourceArraySignals) SetSpikes(on bool) SpikeSourceArraySignals {
	ss.Signals[SpikeSourceArraySigSpikes] = on
	return ss
}
