// Copyright (c) 2024, The SNNKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package neuron defines the available neuron model types and their
parameter sets.  The basic pattern is that each model type declares a
fixed, named schema of parameters and recordable signals in a single
shared Desc value, while instances of the type store only a flat Params
/ Signals vector.  Named accessor types wrap the flat vectors with
fixed-offset getters and setters and add no state of their own, so
type-agnostic code (serialization, backend bridges) can hold the base
vector types and handle every model uniformly.
*/
package neuron

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/goki/ki/kit"
)

var (
	// ErrNotFound is returned when a named parameter or signal lookup
	// matches no declared name on a type's descriptor.
	ErrNotFound = errors.New("name not found")

	// ErrOutOfRange is returned for positional access at an index at or
	// beyond the declared length of a vector.  Never clamped.
	ErrOutOfRange = errors.New("index out of range")
)

// NeuronTypes enumerates the neuron model types.  Each type pairs one
// shared Desc singleton with its own parameter and signal vector
// wrappers (e.g. IfCondExpParams / IfCondExpSignals).
type NeuronTypes int

//go:generate stringer -type=NeuronTypes

var KiT_NeuronTypes = kit.Enums.AddEnum(NeuronTypesN, false, nil)

func (ev NeuronTypes) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *NeuronTypes) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The neuron model types
const (
	// NullNeuron is the placeholder type for contexts that do not have a
	// model assigned yet (e.g. generic population containers).  It has
	// empty parameter and signal schemas.
	NullNeuron NeuronTypes = iota

	// SpikeSourceArray emits spikes according to an externally supplied
	// schedule of spike times instead of membrane dynamics.
	SpikeSourceArray

	// IfCondExp is the leaky integrate-and-fire model with
	// conductance-based exponential-decay synapses.
	IfCondExp

	// EifCondExpIsfaIsta is the adaptive exponential integrate-and-fire
	// model (AdEx) with spike-frequency adaptation, extending IfCondExp
	// with adaptation and exponential-threshold parameters.
	EifCondExpIsfaIsta

	NeuronTypesN
)

// Desc describes one neuron model type in a generic way: its stable
// external identifier, the declared parameter and signal schemas, and
// classification flags.  One immutable instance exists per type, shared
// read-only by all instances of that type -- safe for concurrent readers
// once the package is initialized.
type Desc struct {
	TypeID        int32    `desc:"stable identifier used by external serialization bridges"`
	Name          string   `desc:"name of the neuron type"`
	ParamNames    []string `desc:"names of all parameters, in storage order"`
	ParamUnits    []string `desc:"units of all parameters, index-aligned with ParamNames"`
	ParamDefaults Params   `desc:"default parameter values, index-aligned with ParamNames"`
	SignalNames   []string `desc:"names of the signals that can be recorded, in storage order"`
	SignalUnits   []string `desc:"units of the signals, index-aligned with SignalNames"`
	CondBased     bool     `desc:"synaptic input is modeled as a conductance change rather than current injection"`
	SpikeSource   bool     `desc:"spikes come from an external schedule, not membrane dynamics"`

	paramIdxs  map[string]int
	signalIdxs map[string]int
}

// Descs holds the descriptor singletons, indexed by NeuronTypes value.
// TypeID values and the declared name order are a cross-process
// compatibility surface: external bridges cache them, so existing
// entries must never be reordered or renumbered -- new types append.
var Descs = [NeuronTypesN]*Desc{
	NullNeuron: {
		TypeID: 0,
		Name:   "null",
	},
	SpikeSourceArray: {
		TypeID:      1,
		Name:        "SpikeSourceArray",
		SignalNames: []string{"spikes"},
		SignalUnits: []string{"ms"},
		SpikeSource: true,
	},
	IfCondExp: {
		TypeID: 2,
		Name:   "IfCondExp",
		ParamNames: []string{
			"cm", "tau_m", "tau_syn_E", "tau_syn_I", "tau_refrac",
			"v_rest", "v_thresh", "v_reset", "e_rev_E", "e_rev_I",
			"i_offset",
		},
		ParamUnits: []string{
			"nF", "ms", "ms", "ms", "ms",
			"mV", "mV", "mV", "mV", "mV",
			"nA",
		},
		ParamDefaults: Params{1.0, 20.0, 5.0, 5.0, 0.1, -65.0, -50.0, -65.0, 0.0, -70.0, 0.0},
		SignalNames:   []string{"spikes", "v", "gsyn_exc", "gsyn_inh"},
		SignalUnits:   []string{"ms", "mV", "uS", "uS"},
		CondBased:     true,
	},
	EifCondExpIsfaIsta: {
		TypeID: 3,
		Name:   "EifCondExpIsfaIsta",
		ParamNames: []string{
			"cm", "tau_m", "tau_syn_E", "tau_syn_I", "tau_refrac",
			"tau_w", "v_rest", "v_thresh", "v_reset", "e_rev_E",
			"e_rev_I", "i_offset", "a", "b", "delta_T",
		},
		ParamUnits: []string{
			"nF", "ms", "ms", "ms", "ms",
			"ms", "mV", "mV", "mV", "mV",
			"mV", "nA", "nS", "nA", "mV",
		},
		ParamDefaults: Params{0.281, 9.3667, 5.0, 5.0, 0.1, 144.0, -70.6, -50.4, -70.6, 0.0, -80.0, 0.0, 4.0, 0.0805, 2.0},
		SignalNames:   []string{"spikes", "v", "gsyn_exc", "gsyn_inh"},
		SignalUnits:   []string{"ms", "mV", "uS", "uS"},
		CondBased:     true,
	},
}

// typeIDs maps stable external TypeID values back to enum values.
var typeIDs map[int32]NeuronTypes

// init checks the descriptor invariants and builds the name and id
// lookup maps exactly once, before any use.  Schema misalignment or a
// reused TypeID / Name is a design-time error and fails startup.
func init() {
	typeIDs = make(map[int32]NeuronTypes, NeuronTypesN)
	names := make(map[string]NeuronTypes, NeuronTypesN)
	for nt := NullNeuron; nt < NeuronTypesN; nt++ {
		ds := Descs[nt]
		if ds == nil {
			panic(fmt.Sprintf("neuron: missing descriptor for type %d", int(nt)))
		}
		if len(ds.ParamNames) != len(ds.ParamUnits) || len(ds.ParamNames) != len(ds.ParamDefaults) {
			panic(fmt.Sprintf("neuron: %s parameter names / units / defaults misaligned", ds.Name))
		}
		if len(ds.SignalNames) != len(ds.SignalUnits) {
			panic(fmt.Sprintf("neuron: %s signal names / units misaligned", ds.Name))
		}
		if prev, ok := typeIDs[ds.TypeID]; ok {
			panic(fmt.Sprintf("neuron: TypeID %d reused by %s and %s", ds.TypeID, Descs[prev].Name, ds.Name))
		}
		typeIDs[ds.TypeID] = nt
		if _, ok := names[ds.Name]; ok {
			panic(fmt.Sprintf("neuron: type name %q reused", ds.Name))
		}
		names[ds.Name] = nt
		ds.paramIdxs = make(map[string]int, len(ds.ParamNames))
		for i, nm := range ds.ParamNames {
			ds.paramIdxs[nm] = i
		}
		ds.signalIdxs = make(map[string]int, len(ds.SignalNames))
		for i, nm := range ds.SignalNames {
			ds.signalIdxs[nm] = i
		}
	}
}

// Desc returns the shared descriptor singleton for this neuron type.
func (nt NeuronTypes) Desc() *Desc {
	return Descs[nt]
}

// TypeFromID maps a stable external type id back to its NeuronTypes
// value, e.g. when decoding serialized instances.
func TypeFromID(id int32) (NeuronTypes, error) {
	nt, ok := typeIDs[id]
	if !ok {
		return NullNeuron, fmt.Errorf("%w: no neuron type with id %d", ErrNotFound, id)
	}
	return nt, nil
}

// NParams returns the number of declared parameters.
func (ds *Desc) NParams() int {
	return len(ds.ParamNames)
}

// NSignals returns the number of declared recordable signals.
func (ds *Desc) NSignals() int {
	return len(ds.SignalNames)
}

// ParamIndexByName resolves a parameter name to its storage index,
// reflecting declaration order exactly, or ErrNotFound.
func (ds *Desc) ParamIndexByName(nm string) (int, error) {
	i, ok := ds.paramIdxs[nm]
	if !ok {
		return -1, fmt.Errorf("%w: neuron type %s has no parameter %q", ErrNotFound, ds.Name, nm)
	}
	return i, nil
}

// SignalIndexByName resolves a signal name to its storage index,
// reflecting declaration order exactly, or ErrNotFound.
func (ds *Desc) SignalIndexByName(nm string) (int, error) {
	i, ok := ds.signalIdxs[nm]
	if !ok {
		return -1, fmt.Errorf("%w: neuron type %s has no signal %q", ErrNotFound, ds.Name, nm)
	}
	return i, nil
}

// ParamByName returns the value of the named parameter in ps.
func (ds *Desc) ParamByName(ps Params, nm string) (float32, error) {
	i, err := ds.ParamIndexByName(nm)
	if err != nil {
		return math32.NaN(), err
	}
	return ps.Value(i)
}

// SetParamByName sets the named parameter in ps.
func (ds *Desc) SetParamByName(ps Params, nm string, val float32) error {
	i, err := ds.ParamIndexByName(nm)
	if err != nil {
		return err
	}
	return ps.SetValue(i, val)
}

// SignalByName reports whether the named signal is enabled in ss.
func (ds *Desc) SignalByName(ss Signals, nm string) (bool, error) {
	i, err := ds.SignalIndexByName(nm)
	if err != nil {
		return false, err
	}
	return ss.Value(i)
}

// SetSignalByName enables or disables the named signal in ss.
func (ds *Desc) SetSignalByName(ss Signals, nm string, on bool) error {
	i, err := ds.SignalIndexByName(nm)
	if err != nil {
		return err
	}
	return ss.SetValue(i, on)
}

// NewParams returns a fresh parameter vector seeded from the type's
// declared defaults.
func (ds *Desc) NewParams() Params {
	return ds.ParamDefaults.Clone()
}

// NewSignals returns a fresh signal vector of the declared length with
// all signals not recorded.
func (ds *Desc) NewSignals() Signals {
	return make(Signals, ds.NSignals())
}
