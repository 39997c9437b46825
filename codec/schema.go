// Copyright (c) 2024, The SNNKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codec

import "github.com/snnkit/snnkit/neuron"

// ParamSchema describes one declared parameter of a neuron type.
type ParamSchema struct {
	Name    string  `json:"name"`
	Unit    string  `json:"unit"`
	Default float32 `json:"default"`
}

// SignalSchema describes one recordable signal of a neuron type.
type SignalSchema struct {
	Name string `json:"name"`
	Unit string `json:"unit"`
}

// TypeSchema is the external, cacheable description of a neuron type's
// schema, as consumed by PyNN-style bridges.  Parameter and signal
// order matches the declared storage order exactly.
type TypeSchema struct {
	TypeID      int32          `json:"type_id"`
	Name        string         `json:"name"`
	Params      []ParamSchema  `json:"parameters"`
	Signals     []SignalSchema `json:"signals"`
	CondBased   bool           `json:"conductance_based"`
	SpikeSource bool           `json:"spike_source"`
}

// Schema returns the external schema description for a neuron type.
func Schema(nt neuron.NeuronTypes) *TypeSchema {
	ds := nt.Desc()
	sch := &TypeSchema{
		TypeID:      ds.TypeID,
		Name:        ds.Name,
		Params:      make([]ParamSchema, ds.NParams()),
		Signals:     make([]SignalSchema, ds.NSignals()),
		CondBased:   ds.CondBased,
		SpikeSource: ds.SpikeSource,
	}
	for i, nm := range ds.ParamNames {
		sch.Params[i] = ParamSchema{Name: nm, Unit: ds.ParamUnits[i], Default: ds.ParamDefaults[i]}
	}
	for i, nm := range ds.SignalNames {
		sch.Signals[i] = SignalSchema{Name: nm, Unit: ds.SignalUnits[i]}
	}
	return sch
}
