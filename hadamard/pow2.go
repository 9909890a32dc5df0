// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package hadamard

import "github.com/born-ml/fht/internal/hadamard"

// IsPowerOfTwo reports whether n is a valid transform length.
func IsPowerOfTwo(n int) bool {
	return hadamard.IsPowerOfTwo(n)
}
