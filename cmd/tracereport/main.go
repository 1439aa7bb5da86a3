// tracereport summarizes a lowering trace read from standard input:
// which ISLE rules fired, how often, and what share of firings hit
// named rules.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmcloughlin/arrival/internal/tracing"
)

func main() {
	if err := newCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var opts tracing.Options

	cmd := &cobra.Command{
		Use:           "tracereport",
		Short:         "Report rule usage statistics from a lowering trace on stdin",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := tracing.Summarize(os.Stdin, opts)
			if err != nil {
				return err
			}
			return report.Render(os.Stdout)
		},
	}

	cmd.Flags().BoolVar(&opts.ExcludeFP, "no-fp", false, "exclude floating-point lowerings")
	cmd.Flags().BoolVar(&opts.ExcludeMem, "no-mem", false, "exclude memory access lowerings")
	cmd.Flags().BoolVar(&opts.ExcludeCtrl, "no-ctrl", false, "exclude control transfer lowerings")
	cmd.Flags().IntVar(&opts.TopK, "top", tracing.DefaultTopK, "number of most-fired rules to list")

	return cmd
}
