// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package hadamard

import (
	"github.com/born-ml/fht/internal/hadamard"
	"github.com/born-ml/fht/tensor"
)

// ElementType selects the element type the transform computes in.
type ElementType = hadamard.ElementType

// NativeType computes in the input tensor's own element type.
func NativeType() ElementType {
	return hadamard.NativeType()
}

// As casts the input to dt before transforming.
func As(dt tensor.DataType) ElementType {
	return hadamard.As(dt)
}

// SupportedTypes lists the element types the transform accepts.
func SupportedTypes() []tensor.DataType {
	return hadamard.SupportedTypes()
}

// ParseDataType parses an element type name such as "float32" or "i64".
func ParseDataType(s string) (tensor.DataType, error) {
	return tensor.ParseDataType(s)
}
