// Copyright (c) 2024, The SNNKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuron

// NullParams is the empty parameter vector for the NullNeuron
// placeholder type.
type NullParams struct {
	Params
}

// NewNullParams returns the (empty) NullNeuron parameter vector.
func NewNullParams() NullParams {
	return NullParams{Params{}}
}

// NullSignals is the empty signal vector for the NullNeuron placeholder
// type.
type NullSignals struct {
	Signals
}

// NewNullSignals returns the (empty) NullNeuron signal vector.
func NewNullSignals() NullSignals {
	return NullSignals{Signals{}}
}
