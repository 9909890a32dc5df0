package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/born-ml/fht/internal/hadamard"
	"github.com/born-ml/fht/internal/serialization"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "List the tensors of a SafeTensors file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := serialization.Open(args[0])
			if err != nil {
				return err
			}
			defer r.Close()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDTYPE\tSHAPE\tTRANSFORMABLE")
			for _, name := range r.TensorNames() {
				info, err := r.TensorInfo(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\t%v\t%s\n", name, info.DType, info.Shape, transformable(info))
			}
			if err := w.Flush(); err != nil {
				return err
			}

			ok, err := r.VerifyChecksum()
			if err != nil {
				return err
			}
			if ok {
				fmt.Fprintln(cmd.OutOrStdout(), "checksum: ok")
			}
			return nil
		},
	}
}

// transformable reports whether the tensor can be transformed over all axes,
// or why not.
func transformable(info *serialization.SafeTensorInfo) string {
	switch info.DType {
	case serialization.SafeTensorsF32, serialization.SafeTensorsF64,
		serialization.SafeTensorsI32, serialization.SafeTensorsI64:
	default:
		return "no (dtype)"
	}
	if len(info.Shape) < 1 || len(info.Shape) > 3 {
		return "no (rank)"
	}
	for _, d := range info.Shape {
		if !hadamard.IsPowerOfTwo(d) {
			return "no (shape)"
		}
	}
	return "yes"
}
