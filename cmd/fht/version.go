package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/born-ml/fht/internal/cpu"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version and detected CPU features",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := cpu.DetectFeatures()
			fmt.Fprintf(cmd.OutOrStdout(), "fht %s (%s, %s/%s)\n", version, runtime.Version(), runtime.GOOS, f.Architecture)
			fmt.Fprintf(cmd.OutOrStdout(), "cpu: sse2=%t avx2=%t avx512=%t neon=%t\n",
				f.HasSSE2, f.HasAVX2, f.HasAVX512, f.HasNEON)
			return nil
		},
	}
}
