// Copyright (c) 2024, The SNNKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuron

// Parameter indexes for the IfCondExp model, fixed by the declared
// schema order in its Desc.
const (
	IfCondExpCm = iota
	IfCondExpTauM
	IfCondExpTauSynE
	IfCondExpTauSynI
	IfCondExpTauRefrac
	IfCondExpVRest
	IfCondExpVThresh
	IfCondExpVReset
	IfCondExpERevE
	IfCondExpERevI
	IfCondExpIOffset

	IfCondExpNParams
)

// Signal indexes for the IfCondExp model.
const (
	IfCondExpSigSpikes = iota
	IfCondExpSigV
	IfCondExpSigGsynExc
	IfCondExpSigGsynInh

	IfCondExpNSignals
)

// IfCondExpParams is the parameter vector for the IfCondExp model, with
// named fixed-offset accessors over the base storage.  Setters return
// the receiver so parameters can be chained:
//
//	ps := NewIfCondExpParams().SetVThresh(-55).SetTauM(10)
type IfCondExpParams struct {
	Params
}

// NewIfCondExpParams returns a parameter vector seeded with the model
// defaults.
func NewIfCondExpParams() IfCondExpParams {
	return IfCondExpParams{IfCondExp.Desc().NewParams()}
}

// Cm returns the membrane capacitance in nF.
func (ps IfCondExpParams) Cm() float32 { return ps.Params[IfCondExpCm] }

// SetCm sets the membrane capacitance in nF.
func (ps IfCondExpParams) SetCm(v float32) IfCondExpParams {
	ps.Params[IfCondExpCm] = v
	return ps
}

// TauM returns the membrane time constant in ms.
func (ps IfCondExpParams) TauM() float32 { return ps.Params[IfCondExpTauM] }

// SetTauM sets the membrane time constant in ms.
func (ps IfCondExpParams) SetTauM(v float32) IfCondExpParams {
	ps.Params[IfCondExpTauM] = v
	return ps
}

// TauSynE returns the excitatory synaptic decay time constant in ms.
func (ps IfCondExpParams) TauSynE() float32 { return ps.Params[IfCondExpTauSynE] }

// SetTauSynE sets the excitatory synaptic decay time constant in ms.
func (ps IfCondExpParams) SetTauSynE(v float32) IfCondExpParams {
	ps.Params[IfCondExpTauSynE] = v
	return ps
}

// TauSynI returns the inhibitory synaptic decay time constant in ms.
func (ps IfCondExpParams) TauSynI() float32 { return ps.Params[IfCondExpTauSynI] }

// SetTauSynI sets the inhibitory synaptic decay time constant in ms.
func (ps IfCondExpParams) SetTauSynI(v float32) IfCondExpParams {
	ps.Params[IfCondExpTauSynI] = v
	return ps
}

// TauRefrac returns the refractory period in ms.
func (ps IfCondExpParams) TauRefrac() float32 { return ps.Params[IfCondExpTauRefrac] }

// SetTauRefrac sets the refractory period in ms.
func (ps IfCondExpParams) SetTauRefrac(v float32) IfCondExpParams {
	ps.Params[IfCondExpTauRefrac] = v
	return ps
}

// VRest returns the resting potential in mV.
func (ps IfCondExpParams) VRest() float32 { return ps.Params[IfCondExpVRest] }

// SetVRest sets the resting potential in mV.
func (ps IfCondExpParams) SetVRest(v float32) IfCondExpParams {
	ps.Params[IfCondExpVRest] = v
	return ps
}

// VThresh returns the spike threshold potential in mV.
func (ps IfCondExpParams) VThresh() float32 { return ps.Params[IfCondExpVThresh] }

// SetVThresh sets the spike threshold potential in mV.
func (ps IfCondExpParams) SetVThresh(v float32) IfCondExpParams {
	ps.Params[IfCondExpVThresh] = v
	return ps
}

// VReset returns the post-spike reset potential in mV.
func (ps IfCondExpParams) VReset() float32 { return ps.Params[IfCondExpVReset] }

// SetVReset sets the post-spike reset potential in mV.
func (ps IfCondExpParams) SetVReset(v float32) IfCondExpParams {
	ps.Params[IfCondExpVReset] = v
	return ps
}

// ERevE returns the excitatory reversal potential in mV.
func (ps IfCondExpParams) ERevE() float32 { return ps.Params[IfCondExpERevE] }

// SetERevE sets the excitatory reversal potential in mV.
func (ps IfCondExpParams) SetERevE(v float32) IfCondExpParams {
	ps.Params[IfCondExpERevE] = v
	return ps
}

// ERevI returns the inhibitory reversal potential in mV.
func (ps IfCondExpParams) ERevI() float32 { return ps.Params[IfCondExpERevI] }

// SetERevI sets the inhibitory reversal potential in mV.
func (ps IfCondExpParams) SetERevI(v float32) IfCondExpParams {
	ps.Params[IfCondExpERevI] = v
	return ps
}

// IOffset returns the constant offset current in nA.
func (ps IfCondExpParams) IOffset() float32 { return ps.Params[IfCondExpIOffset] }

// SetIOffset sets the constant offset current in nA.
func (ps IfCondExpParams) SetIOffset(v float32) IfCondExpParams {
	ps.Params[IfCondExpIOffset] = v
	return ps
}

// IfCondExpSignals selects which IfCondExp signals are recorded.
// Setters return the receiver for chaining.
type IfCondExpSignals struct {
	Signals
}

// NewIfCondExpSignals returns a signal vector with nothing recorded.
func NewIfCondExpSignals() IfCondExpSignals {
	return IfCondExpSignals{make(Signals, IfCondExpNSignals)}
}

// Spikes reports whether spike times are recorded.
func (ss IfCondExpSignals) Spikes() bool { return ss.Signals[IfCondExpSigSpikes] }

// SetSpikes enables or disables recording of spike times.
func (ss IfCondExpSignals) SetSpikes(on bool) IfCondExpSignals {
	ss.Signals[IfCondExpSigSpikes] = on
	return ss
}

// V reports whether the membrane voltage is recorded.
func (ss IfCondExpSignals) V() bool { return ss.Signals[IfCondExpSigV] }

// SetV enables or disables recording of the membrane voltage.
func (ss IfCondExpSignals) SetV(on bool) IfCondExpSignals {
	ss.Signals[IfCondExpSigV] = on
	return ss
}

// GsynExc reports whether the excitatory synaptic conductance is recorded.
func (ss IfCondExpSignals) GsynExc() bool { return ss.Signals[IfCondExpSigGsynExc] }

// SetGsynExc enables or disables recording of the excitatory synaptic
// conductance.
func (ss IfCondExpSignals) SetGsynExc(on bool) IfCondExpSignals {
	ss.Signals[IfCondExpSigGsynExc] = on
	return ss
}

// GsynInh reports whether the inhibitory synaptic conductance is recorded.
func (ss IfCondExpSignals) GsynInh() bool { return ss.Signals[IfCondExpSigGsynInh] }

// SetGsynInh enables or disables recording of the inhibitory synaptic
// conductance.
func (ss IfCondExpSignals) SetGsynInh(on bool) IfCondExpSignals {
	ss.Signals[IfCondExpSigGsynInh] = on
	return ss
}
