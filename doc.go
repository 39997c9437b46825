// Copyright (c) 2024, The SNNKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package snnkit is the overall repository for the spiking neural network
model-description layer implemented in the Go language (golang).

This top-level of the repository has no functional code -- everything is
organized into the following sub-packages:

* neuron: the core neuron model descriptors and parameter / signal
vectors.  Each model type (integrate-and-fire variants, spike sources)
declares a fixed schema of named parameters and recordable signals in a
shared, immutable descriptor, while instances store only flat vectors of
values, so that type-agnostic code can handle every model uniformly.

* codec: the wire bridge consumed by external serializer and backend
layers, encoding instances as their stable type id plus ordered parameter
and signal-enabled sequences, and validating untrusted data against the
declared schemas.

* cmd/snncat: a small command-line tool for inspecting the registered
model schemas, useful when wiring up external bridges that cache them.
*/
package snnkit
