// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package hadamard

import "github.com/born-ml/fht/internal/hadamard"

// DefaultAxes selects every axis of the tensor.
func DefaultAxes() AxisSpec {
	return hadamard.DefaultAxes()
}

// Axis selects a single axis.
func Axis(i int) AxisSpec {
	return hadamard.Axis(i)
}

// Axes selects two distinct axes, in either order.
func Axes(i, j int) AxisSpec {
	return hadamard.Axes(i, j)
}

// AllAxes selects every axis of the tensor.
func AllAxes() AxisSpec {
	return hadamard.AllAxes()
}

// ParseAxes parses an axis list such as "1", "0,2" or "all".
func ParseAxes(s string) (AxisSpec, error) {
	return hadamard.ParseAxes(s)
}
