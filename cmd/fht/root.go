package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// app carries the state shared by all subcommands.
type app struct {
	verbose bool
	logger  *slog.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{logger: slog.New(slog.NewTextHandler(errOut, nil))}

	root := &cobra.Command{
		Use:           "fht",
		Short:         "Fast Walsh-Hadamard transform for SafeTensors files",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if a.verbose {
				level = slog.LevelDebug
			}
			a.logger = slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newTransformCmd(a),
		newInspectCmd(),
		newIsPow2Cmd(),
		newVersionCmd(),
	)
	return root
}
