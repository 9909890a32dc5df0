// Command fht applies the orthonormal Walsh-Hadamard transform to tensors
// stored in SafeTensors files.
//
// Usage:
//
//	fht transform --in x.safetensors --out y.safetensors --axes 0,2
//	fht inspect x.safetensors
//	fht ispow2 8 12
//	fht version
package main

import (
	"fmt"
	"os"
)

const version = "v0.1.0"

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
