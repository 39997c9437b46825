// Copyright (c) 2024, The SNNKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codec

import (
	"errors"
	"testing"

	"github.com/snnkit/snnkit/neuron"
)

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	ds := neuron.IfCondExp.Desc()
	ps := ds.NewParams()
	if err := ds.SetParamByName(ps, "v_thresh", -55); err != nil {
		t.Fatalf("SetParamByName err: %v", err)
	}
	ss := ds.NewSignals()
	if err := ds.SetSignalByName(ss, "spikes", true); err != nil {
		t.Fatalf("SetSignalByName err: %v", err)
	}

	data, err := Marshal(neuron.IfCondExp, ps, ss)
	if err != nil {
		t.Fatalf("Marshal err: %v", err)
	}
	nt, gps, gss, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal err: %v", err)
	}
	if nt != neuron.IfCondExp {
		t.Errorf("type = %v, want IfCondExp", nt)
	}
	if gps.Size() != ps.Size() {
		t.Fatalf("params size = %d, want %d", gps.Size(), ps.Size())
	}
	for i := range ps {
		if gps[i] != ps[i] {
			t.Errorf("param %d = %v, want %v", i, gps[i], ps[i])
		}
	}
	for i := range ss {
		if gss[i] != ss[i] {
			t.Errorf("record %d = %v, want %v", i, gss[i], ss[i])
		}
	}
}

func TestEncodeSchemaMismatch(t *testing.T) {
	ds := neuron.IfCondExp.Desc()
	short := neuron.NewParams(ds.NParams() - 1)
	if _, err := Encode(neuron.IfCondExp, short, ds.NewSignals()); !errors.Is(err, ErrSchemaMismatch) {
		t.Errorf("short params err = %v, want ErrSchemaMismatch", err)
	}
	badRec := make(neuron.Signals, 2)
	if _, err := Encode(neuron.IfCondExp, ds.NewParams(), badRec); !errors.Is(err, ErrSchemaMismatch) {
		t.Errorf("bad record err = %v, want ErrSchemaMismatch", err)
	}
}

func TestDecodeValidation(t *testing.T) {
	if _, _, _, err := Decode(&Instance{TypeID: 42}); !errors.Is(err, ErrUnknownType) {
		t.Errorf("unknown id err = %v, want ErrUnknownType", err)
	}
	// wrong parameter length for the claimed type
	inst := &Instance{TypeID: neuron.IfCondExp.Desc().TypeID, Params: []float32{1, 2}, Record: make([]bool, 4)}
	if _, _, _, err := Decode(inst); !errors.Is(err, ErrSchemaMismatch) {
		t.Errorf("short params err = %v, want ErrSchemaMismatch", err)
	}
}

func TestSpikeSourceAnyLength(t *testing.T) {
	ssa := neuron.NewSpikeSourceArrayParams(1.0, 5.5, 9.25)
	sig := neuron.NewSpikeSourceArraySignals().SetSpikes(true)
	inst, err := Encode(neuron.SpikeSourceArray, ssa.ParamValues(), sig.Signals)
	if err != nil {
		t.Fatalf("Encode err: %v", err)
	}
	if len(inst.Params) != 3 {
		t.Errorf("wire params len = %d, want 3", len(inst.Params))
	}
	nt, ps, ss, err := Decode(inst)
	if err != nil {
		t.Fatalf("Decode err: %v", err)
	}
	if nt != neuron.SpikeSourceArray {
		t.Errorf("type = %v, want SpikeSourceArray", nt)
	}
	want := []float32{1.0, 5.5, 9.25}
	for i, tm := range want {
		if ps[i] != tm {
			t.Errorf("param %d = %v, want %v", i, ps[i], tm)
		}
	}
	if len(ss) != 1 || !ss[0] {
		t.Errorf("record = %v, want [true]", ss)
	}
	// record length must still match the declared signal schema
	bad := &Instance{TypeID: neuron.SpikeSourceArray.Desc().TypeID, Params: []float32{1}, Record: []bool{true, false}}
	if _, _, _, err := Decode(bad); !errors.Is(err, ErrSchemaMismatch) {
		t.Errorf("bad record err = %v, want ErrSchemaMismatch", err)
	}
}

func TestSchema(t *testing.T) {
	sch := Schema(neuron.IfCondExp)
	if sch.TypeID != 2 || sch.Name != "IfCondExp" {
		t.Errorf("schema id/name = %d/%q", sch.TypeID, sch.Name)
	}
	if len(sch.Params) != 11 {
		t.Fatalf("schema params len = %d, want 11", len(sch.Params))
	}
	p := sch.Params[6]
	if p.Name != "v_thresh" || p.Unit != "mV" || p.Default != -50.0 {
		t.Errorf("params[6] = %+v, want v_thresh mV -50", p)
	}
	if len(sch.Signals) != 4 || sch.Signals[2].Name != "gsyn_exc" || sch.Signals[2].Unit != "uS" {
		t.Errorf("signals = %+v", sch.Signals)
	}
	if !sch.CondBased || sch.SpikeSource {
		t.Errorf("flags = %v/%v", sch.CondBased, sch.SpikeSource)
	}

	ssa := Schema(neuron.SpikeSourceArray)
	if len(ssa.Params) != 0 || !ssa.SpikeSource {
		t.Errorf("SpikeSourceArray schema = %+v", ssa)
	}
}
