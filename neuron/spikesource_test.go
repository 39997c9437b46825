// Copyright (c) 2024, The SNNKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuron

import "testing"

func TestSpikeSourceArrayParams(t *testing.T) {
	ps := NewSpikeSourceArrayParams(1.0, 5.5, 9.25)
	if ps.Size() != 3 {
		t.Fatalf("size = %d, want 3", ps.Size())
	}
	want := []float32{1.0, 5.5, 9.25}
	for i, tm := range ps.Times {
		if tm != want[i] {
			t.Errorf("time %d = %v, want %v", i, tm, want[i])
		}
	}
	if !ps.Sorted() {
		t.Errorf("ascending times reported unsorted")
	}
	pv := ps.ParamValues()
	if pv.Size() != 3 {
		t.Fatalf("ParamValues size = %d, want 3", pv.Size())
	}
	for i, tm := range want {
		if pv[i] != tm {
			t.Errorf("ParamValues[%d] = %v, want %v", i, pv[i], tm)
		}
	}
	// wire view is a copy, not a window into the schedule
	pv[0] = 100
	if ps.Times[0] != 1.0 {
		t.Errorf("ParamValues aliases the schedule")
	}
}

func TestSpikeSourceArraySort(t *testing.T) {
	ps := NewSpikeSourceArrayParams(9.25, 1.0, 5.5)
	if ps.Sorted() {
		t.Errorf("unsorted times reported sorted")
	}
	ps.Sort()
	if !ps.Sorted() {
		t.Errorf("times unsorted after Sort")
	}
	want := []float32{1.0, 5.5, 9.25}
	for i, tm := range ps.Times {
		if tm != want[i] {
			t.Errorf("time %d = %v, want %v", i, tm, want[i])
		}
	}
}

func TestSpikeSourceArraySignals(t *testing.T) {
	ps := NewSpikeSourceArrayParams(1.0, 2.0)
	ss := NewSpikeSourceArraySignals()
	if ss.Size() != 1 {
		t.Fatalf("size = %d, want 1", ss.Size())
	}
	if ss.Spikes() {
		t.Errorf("spikes recorded by default")
	}
	ss = ss.SetSpikes(true)
	if !ss.Spikes() {
		t.Errorf("spikes not recorded after SetSpikes")
	}
	// toggling the signal leaves the schedule alone
	if ps.Size() != 2 {
		t.Errorf("schedule size changed to %d", ps.Size())
	}
}

func TestSpikeSourceArrayDesc(t *testing.T) {
	ds := SpikeSourceArray.Desc()
	if !ds.SpikeSource {
		t.Errorf("SpikeSourceArray not marked as spike source")
	}
	if ds.CondBased {
		t.Errorf("SpikeSourceArray marked conductance based")
	}
	if ds.NParams() != 0 {
		t.Errorf("SpikeSourceArray declares %d named params, want 0", ds.NParams())
	}
	if ds.NSignals() != 1 || ds.SignalNames[0] != "spikes" {
		t.Errorf("SpikeSourceArray signals = %v, want [spikes]", ds.SignalNames)
	}
}
