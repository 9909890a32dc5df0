// Package serialization reads and writes tensors in the SafeTensors format.
//
//	Format Structure:
//	  [8 bytes: Header Size (uint64 LE)]
//	  [Header: JSON object, tensor name -> {dtype, shape, data_offsets}]
//	  [Tensor data: raw little-endian bytes]
//
// The header may carry a "__metadata__" object of string pairs. The writer
// stores the SHA-256 of the data section under the "sha256" key; the reader
// verifies it when present.
//
// Example usage:
//
//	r, err := serialization.Open("in.safetensors")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//	x, err := r.LoadTensor("weights")
//
//	err = serialization.WriteSafeTensors("out.safetensors",
//	    map[string]*tensor.RawTensor{"weights": y}, nil)
package serialization
