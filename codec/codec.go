// Copyright (c) 2024, The SNNKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package codec implements the wire bridge between neuron model instances
and external serializer / backend layers.  An instance travels as its
stable type id, its ordered parameter values, and its ordered
signal-enabled flags; parameter and signal order must match the type's
declared schema exactly, since backends address them positionally.

Untrusted data (deserialized from a versioned or external source) is
validated against the claimed type's descriptor before any vectors are
constructed from it.
*/
package codec

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/snnkit/snnkit/neuron"
)

var (
	// ErrSchemaMismatch is returned when an instance's parameter or
	// record length does not match its claimed type's declared schema.
	ErrSchemaMismatch = errors.New("schema mismatch")

	// ErrUnknownType is returned when a type id has no registered
	// descriptor.
	ErrUnknownType = errors.New("unknown neuron type id")
)

// Instance is the wire form of one neuron model instance.  For
// spike-source types the parameter sequence holds the spike schedule.
type Instance struct {
	TypeID int32     `json:"type_id"`
	Params []float32 `json:"parameters"`
	Record []bool    `json:"record"`
}

// Encode validates the given vectors against the type's declared schema
// and returns the wire record, with its own copies of the data.
func Encode(nt neuron.NeuronTypes, ps neuron.Params, ss neuron.Signals) (*Instance, error) {
	ds := nt.Desc()
	if err := checkLens(ds, len(ps), len(ss)); err != nil {
		return nil, err
	}
	inst := &Instance{
		TypeID: ds.TypeID,
		Params: make([]float32, len(ps)),
		Record: make([]bool, len(ss)),
	}
	copy(inst.Params, ps)
	copy(inst.Record, ss)
	return inst, nil
}

// Decode validates a wire record against its claimed type's schema and
// returns the type with fresh parameter and signal vectors.
func Decode(inst *Instance) (neuron.NeuronTypes, neuron.Params, neuron.Signals, error) {
	nt, err := neuron.TypeFromID(inst.TypeID)
	if err != nil {
		return neuron.NullNeuron, nil, nil, fmt.Errorf("%w: %d", ErrUnknownType, inst.TypeID)
	}
	if err := checkLens(nt.Desc(), len(inst.Params), len(inst.Record)); err != nil {
		return neuron.NullNeuron, nil, nil, err
	}
	ps := neuron.ParamsFrom(inst.Params...)
	ss := neuron.SignalsFrom(inst.Record...)
	return nt, ps, ss, nil
}

// Marshal encodes an instance to its JSON wire form.
func Marshal(nt neuron.NeuronTypes, ps neuron.Params, ss neuron.Signals) ([]byte, error) {
	inst, err := Encode(nt, ps, ss)
	if err != nil {
		return nil, err
	}
	return json.Marshal(inst)
}

// Unmarshal decodes and validates a JSON wire record.
func Unmarshal(data []byte) (neuron.NeuronTypes, neuron.Params, neuron.Signals, error) {
	inst := &Instance{}
	if err := json.Unmarshal(data, inst); err != nil {
		return neuron.NullNeuron, nil, nil, err
	}
	return Decode(inst)
}

// checkLens verifies vector lengths against the declared schema.
// Spike-source types with no declared parameters use the parameter
// sequence as a variable-length spike schedule, so only the record
// length is checked for those.
func checkLens(ds *neuron.Desc, np, nr int) error {
	if np != ds.NParams() && !(ds.SpikeSource && ds.NParams() == 0) {
		return fmt.Errorf("%w: type %s declares %d parameters, got %d", ErrSchemaMismatch, ds.Name, ds.NParams(), np)
	}
	if nr != ds.NSignals() {
		return fmt.Errorf("%w: type %s declares %d signals, got %d", ErrSchemaMismatch, ds.Name, ds.NSignals(), nr)
	}
	return nil
}
