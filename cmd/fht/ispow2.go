package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/born-ml/fht/internal/hadamard"
)

func newIsPow2Cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ispow2 N...",
		Short: "Report whether each N is a valid transform length",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				n, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("%q is not an integer", arg)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%t\n", n, hadamard.IsPowerOfTwo(n))
			}
			return nil
		},
	}
}
