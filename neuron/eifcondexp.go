// Copyright (c) 2024, The SNNKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuron

// Parameter indexes for the EifCondExpIsfaIsta model, fixed by the
// declared schema order in its Desc.  Note: the adaptation time constant
// tau_w sits between tau_refrac and v_rest, so the shared parameters do
// not all have the same indexes as in IfCondExp.
const (
	EifCondExpIsfaIstaCm = iota
	EifCondExpIsfaIstaTauM
	EifCondExpIsfaIstaTauSynE
	EifCondExpIsfaIstaTauSynI
	EifCondExpIsfaIstaTauRefrac
	EifCondExpIsfaIstaTauW
	EifCondExpIsfaIstaVRest
	EifCondExpIsfaIstaVThresh
	EifCondExpIsfaIstaVReset
	EifCondExpIsfaIstaERevE
	EifCondExpIsfaIstaERevI
	EifCondExpIsfaIstaIOffset
	EifCondExpIsfaIstaA
	EifCondExpIsfaIstaB
	EifCondExpIsfaIstaDeltaT

	EifCondExpIsfaIstaNParams
)

// Signal indexes for the EifCondExpIsfaIsta model -- same signal schema
// as IfCondExp.
const (
	EifCondExpIsfaIstaSigSpikes = iota
	EifCondExpIsfaIstaSigV
	EifCondExpIsfaIstaSigGsynExc
	EifCondExpIsfaIstaSigGsynInh

	EifCondExpIsfaIstaNSignals
)

// EifCondExpIsfaIstaParams is the parameter vector for the adaptive
// exponential integrate-and-fire model, with named fixed-offset
// accessors over the base storage.  Setters return the receiver for
// chaining.
type EifCondExpIsfaIstaParams struct {
	Params
}

// NewEifCondExpIsfaIstaParams returns a parameter vector seeded with the
// model defaults.
func NewEifCondExpIsfaIstaParams() EifCondExpIsfaIstaParams {
	return EifCondExpIsfaIstaParams{EifCondExpIsfaIsta.Desc().NewParams()}
}

// Cm returns the membrane capacitance in nF.
func (ps EifCondExpIsfaIstaParams) Cm() float32 { return ps.Params[EifCondExpIsfaIstaCm] }

// SetCm sets the membrane capacitance in nF.
func (ps EifCondExpIsfaIstaParams) SetCm(v float32) EifCondExpIsfaIstaParams {
	ps.Params[EifCondExpIsfaIstaCm] = v
	return ps
}

// TauM returns the membrane time constant in ms.
func (ps EifCondExpIsfaIstaParams) TauM() float32 { return ps.Params[EifCondExpIsfaIstaTauM] }

// SetTauM sets the membrane time constant in ms.
func (ps EifCondExpIsfaIstaParams) SetTauM(v float32) EifCondExpIsfaIstaParams {
	ps.Params[EifCondExpIsfaIstaTauM] = v
	return ps
}

// TauSynE returns the excitatory synaptic decay time constant in ms.
func (ps EifCondExpIsfaIstaParams) TauSynE() float32 { return ps.Params[EifCondExpIsfaIstaTauSynE] }

// SetTauSynE sets the excitatory synaptic decay time constant in ms.
func (ps EifCondExpIsfaIstaParams) SetTauSynE(v float32) EifCondExpIsfaIstaParams {
	ps.Params[EifCondExpIsfaIstaTauSynE] = v
	return ps
}

// TauSynI returns the inhibitory synaptic decay time constant in ms.
func (ps EifCondExpIsfaIstaParams) TauSynI() float32 { return ps.Params[EifCondExpIsfaIstaTauSynI] }

// SetTauSynI sets the inhibitory synaptic decay time constant in ms.
func (ps EifCondExpIsfaIstaParams) SetTauSynI(v float32) EifCondExpIsfaIstaParams {
	ps.Params[EifCondExpIsfaIstaTauSynI] = v
	return ps
}

// TauRefrac returns the refractory period in ms.
func (ps EifCondExpIsfaIstaParams) TauRefrac() float32 { return ps.Params[EifCondExpIsfaIstaTauRefrac] }

// SetTauRefrac sets the refractory period in ms.
func (ps EifCondExpIsfaIstaParams) SetTauRefrac(v float32) EifCondExpIsfaIstaParams {
	ps.Params[EifCondExpIsfaIstaTauRefrac] = v
	return ps
}

// TauW returns the adaptation current time constant in ms.
func (ps EifCondExpIsfaIstaParams) TauW() float32 { return ps.Params[EifCondExpIsfaIstaTauW] }

// SetTauW sets the adaptation current time constant in ms.
func (ps EifCondExpIsfaIstaParams) SetTauW(v float32) EifCondExpIsfaIstaParams {
	ps.Params[EifCondExpIsfaIstaTauW] = v
	return ps
}

// VRest returns the resting potential in mV.
func (ps EifCondExpIsfaIstaParams) VRest() float32 { return ps.Params[EifCondExpIsfaIstaVRest] }

// SetVRest sets the resting potential in mV.
func (ps EifCondExpIsfaIstaParams) SetVRest(v float32) EifCondExpIsfaIstaParams {
	ps.Params[EifCondExpIsfaIstaVRest] = v
	return ps
}

// VThresh returns the spike detection threshold in mV.
func (ps EifCondExpIsfaIstaParams) VThresh() float32 { return ps.Params[EifCondExpIsfaIstaVThresh] }

// SetVThresh sets the spike detection threshold in mV.
func (ps EifCondExpIsfaIstaParams) SetVThresh(v float32) EifCondExpIsfaIstaParams {
	ps.Params[EifCondExpIsfaIstaVThresh] = v
	return ps
}

// VReset returns the post-spike reset potential in mV.
func (ps EifCondExpIsfaIstaParams) VReset() float32 { return ps.Params[EifCondExpIsfaIstaVReset] }

// SetVReset sets the post-spike reset potential in mV.
func (ps EifCondExpIsfaIstaParams) SetVReset(v float32) EifCondExpIsfaIstaParams {
	ps.Params[EifCondExpIsfaIstaVReset] = v
	return ps
}

// ERevE returns the excitatory reversal potential in mV.
func (ps EifCondExpIsfaIstaParams) ERevE() float32 { return ps.Params[EifCondExpIsfaIstaERevE] }

// SetERevE sets the excitatory reversal potential in mV.
func (ps EifCondExpIsfaIstaParams) SetERevE(v float32) EifCondExpIsfaIstaParams {
	ps.Params[EifCondExpIsfaIstaERevE] = v
	return ps
}

// ERevI returns the inhibitory reversal potential in mV.
func (ps EifCondExpIsfaIstaParams) ERevI() float32 { return ps.Params[EifCondExpIsfaIstaERevI] }

// SetERevI sets the inhibitory reversal potential in mV.
func (ps EifCondExpIsfaIstaParams) SetERevI(v float32) EifCondExpIsfaIstaParams {
	ps.Params[EifCondExpIsfaIstaERevI] = v
	return ps
}

// IOffset returns the constant offset current in nA.
func (ps EifCondExpIsfaIstaParams) IOffset() float32 { return ps.Params[EifCondExpIsfaIstaIOffset] }

// SetIOffset sets the constant offset current in nA.
func (ps EifCondExpIsfaIstaParams) SetIOffset(v float32) EifCondExpIsfaIstaParams {
	ps.Params[EifCondExpIsfaIstaIOffset] = v
	return ps
}

// A returns the subthreshold adaptation conductance in nS.
func (ps EifCondExpIsfaIstaParams) A() float32 { return ps.Params[EifCondExpIsfaIstaA] }

// SetA sets the subthreshold adaptation conductance in nS.
func (ps EifCondExpIsfaIstaParams) SetA(v float32) EifCondExpIsfaIstaParams {
	ps.Params[EifCondExpIsfaIstaA] = v
	return ps
}

// B returns the spike-triggered adaptation increment in nA.
func (ps EifCondExpIsfaIstaParams) B() float32 { return ps.Params[EifCondExpIsfaIstaB] }

// SetB sets the spike-triggered adaptation increment in nA.
func (ps EifCondExpIsfaIstaParams) SetB(v float32) EifCondExpIsfaIstaParams {
	ps.Params[EifCondExpIsfaIstaB] = v
	return ps
}

// DeltaT returns the exponential threshold slope factor in mV.
func (ps EifCondExpIsfaIstaParams) DeltaT() float32 { return ps.Params[EifCondExpIsfaIstaDeltaT] }

// SetDeltaT sets the exponential threshold slope factor in mV.
func (ps EifCondExpIsfaIstaParams) SetDeltaT(v float32) EifCondExpIsfaIstaParams {
	ps.Params[EifCondExpIsfaIstaDeltaT] = v
	return ps
}

// EifCondExpIsfaIstaSignals selects which EifCondExpIsfaIsta signals are
// recorded.  Setters return the receiver for chaining.
type EifCondExpIsfaIstaSignals struct {
	Signals
}

// NewEifCondExpIsfaIstaSignals returns a signal vector with nothing
// recorded.
func NewEifCondExpIsfaIstaSignals() EifCondExpIsfaIstaSignals {
	return EifCondExpIsfaIstaSignals{make(Signals, EifCondExpIsfaIstaNSignals)}
}

// Spikes reports whether spike times are recorded.
func (ss EifCondExpIsfaIstaSignals) Spikes() bool { return ss.Signals[EifCondExpIsfaIstaSigSpikes] }

// SetSpikes enables or disables recording of spike times.
func (ss EifCondExpIsfaIstaSignals) SetSpikes(on bool) EifCondExpIsfaIstaSignals {
	ss.Signals[EifCondExpIsfaIstaSigSpikes] = on
	return ss
}

// V reports whether the membrane voltage is recorded.
func (ss EifCondExpIsfaIstaSignals) V() bool { return ss.Signals[EifCondExpIsfaIstaSigV] }

// SetV enables or disables recording of the membrane voltage.
func (ss EifCondExpIsfaIstaSignals) SetV(on bool) EifCondExpIsfaIstaSignals {
	ss.Signals[EifCondExpIsfaIstaSigV] = on
	return ss
}

// GsynExc reports whether the excitatory synaptic conductance is recorded.
func (ss EifCondExpIsfaIstaSignals) GsynExc() bool { return ss.Signals[EifCondExpIsfaIstaSigGsynExc] }

// SetGsynExc enables or disables recording of the excitatory synaptic
// conductance.
func (ss EifCondExpIsfaIstaSignals) SetGsynExc(on bool) EifCondExpIsfaIstaSignals {
	ss.Signals[EifCondExpIsfaIstaSigGsynExc] = on
	return ss
}

// GsynInh reports whether the inhibitory synaptic conductance is recorded.
func (ss EifCondExpIsfaIstaSignals) GsynInh() bool { return ss.Signals[EifCondExpIsfaIstaSigGsynInh] }

// SetGsynInh enables or disables recording of the inhibitory synaptic
// conductance.
func (ss EifCondExpIsfaIstaSignals) SetGsynInh(on bool) EifCondExpIsfaIstaSignals {
	ss.Signals[EifCondExpIsfaIstaSigGsynInh] = on
	return ss
}
