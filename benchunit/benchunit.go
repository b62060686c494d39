// Copyright 2024 The VectorTree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchunit converts and formats the timing values that flow
// through the report pipeline.
//
// The harness emits raw timings in nanoseconds; the report displays
// microseconds. The conversion is a single fixed factor and exists as
// its own step so the displayed unit is decoupled from whatever unit
// the harness happens to emit.
package benchunit

// microsPerNano is the fixed conversion between the harness's raw
// unit and the report's display unit.
const microsPerNano = 1e-3

// NanosToMicros scales a raw nanosecond timing into microseconds.
// It is linear: NanosToMicros(x) == x * 1e-3 for all finite x.
func NanosToMicros(x float64) float64 {
	return x * microsPerNano
}
