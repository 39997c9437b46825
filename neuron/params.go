// Copyright (c) 2024, The SNNKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuron

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Params is the base storage for neuron parameters: an ordered vector of
// float32 values, one per declared parameter of the owning type.  The
// length is fixed at construction for the lifetime of the vector.  Named
// accessor types embed Params and add behavior only, never state, so the
// base type can be held directly for storage, copying and serialization.
type Params []float32

// NewParams returns a zero-valued parameter vector of length n.
func NewParams(n int) Params {
	return make(Params, n)
}

// ParamsFrom returns a parameter vector holding the given values in the
// given order, copied out of the argument list.
func ParamsFrom(vals ...float32) Params {
	ps := make(Params, len(vals))
	copy(ps, vals)
	return ps
}

// Size returns the number of parameters.
func (ps Params) Size() int {
	return len(ps)
}

// Value returns the value at index i, or ErrOutOfRange (with NaN) if
// i >= Size().
func (ps Params) Value(i int) (float32, error) {
	if i < 0 || i >= len(ps) {
		return math32.NaN(), fmt.Errorf("%w: parameter index %d, size %d", ErrOutOfRange, i, len(ps))
	}
	return ps[i], nil
}

// SetValue sets the value at index i, or returns ErrOutOfRange if
// i >= Size().
func (ps Params) SetValue(i int, val float32) error {
	if i < 0 || i >= len(ps) {
		return fmt.Errorf("%w: parameter index %d, size %d", ErrOutOfRange, i, len(ps))
	}
	ps[i] = val
	return nil
}

// Clone returns a copy of the vector with its own backing storage.
func (ps Params) Clone() Params {
	cp := make(Params, len(ps))
	copy(cp, ps)
	return cp
}

// Signals is the base storage recording which of the owning type's
// declared signals are being recorded, one flag per signal, defaulting
// to not recorded.  Same zero-added-state rule as Params.
type Signals []bool

// SignalsFrom returns a signal vector holding the given flags in order.
func SignalsFrom(flags ...bool) Signals {
	ss := make(Signals, len(flags))
	copy(ss, flags)
	return ss
}

// Size returns the number of signals.
func (ss Signals) Size() int {
	return len(ss)
}

// Value reports whether the signal at index i is enabled, or
// ErrOutOfRange if i >= Size().
func (ss Signals) Value(i int) (bool, error) {
	if i < 0 || i >= len(ss) {
		return false, fmt.Errorf("%w: signal index %d, size %d", ErrOutOfRange, i, len(ss))
	}
	return ss[i], nil
}

// SetValue enables or disables the signal at index i, or returns
// ErrOutOfRange if i >= Size().
func (ss Signals) SetValue(i int, on bool) error {
	if i < 0 || i >= len(ss) {
		return fmt.Errorf("%w: signal index %d, size %d", ErrOutOfRange, i, len(ss))
	}
	ss[i] = on
	return nil
}

// Clone returns a copy of the vector with its own backing storage.
func (ss Signals) Clone() Signals {
	cp := make(Signals, len(ss))
	copy(cp, ss)
	return cp
}
