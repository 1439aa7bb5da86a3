// wasm2clif derives the wasm-to-CLIF instruction mapping by scanning
// the hand-written code translator source. The result is the mapping
// dataset consumed by cliftags.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	log "github.com/xuperchain/log15"

	"github.com/mmcloughlin/arrival/internal/config"
	"github.com/mmcloughlin/arrival/internal/extractor"
	"github.com/mmcloughlin/arrival/internal/mapping"
	"github.com/mmcloughlin/arrival/internal/validator"
)

func main() {
	if err := newCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var (
		wasmOps  string
		source   string
		output   string
		logLevel string
		cfgFile  string
	)

	cmd := &cobra.Command{
		Use:           "wasm2clif",
		Short:         "Derive the wasm to CLIF instruction mapping",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setupLogging(logLevel); err != nil {
				return err
			}
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			return run(cfg, wasmOps, source, output)
		},
	}

	cmd.Flags().StringVar(&wasmOps, "wasm-ops", "", "wasm operators csv file")
	cmd.MarkFlagRequired("wasm-ops")
	cmd.Flags().StringVar(&source, "source", "", "code translator source path (default: relative to executable)")
	cmd.Flags().StringVar(&output, "output", "", "output file (default stdout)")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "logging verbosity")
	cmd.Flags().StringVar(&cfgFile, "config", "", "config file path")

	return cmd
}

func run(cfg *config.Config, wasmOps, source, output string) error {
	opsFile, err := os.Open(wasmOps)
	if err != nil {
		return fmt.Errorf("opening operator catalog: %w", err)
	}
	defer opsFile.Close()

	ops, err := mapping.ReadOperators(opsFile)
	if err != nil {
		return err
	}

	if source == "" {
		source = cfg.Scan.Source
	}
	if source == "" {
		source, err = mapping.SourcePath()
		if err != nil {
			return err
		}
	}
	srcFile, err := os.Open(source)
	if err != nil {
		return fmt.Errorf("opening translator source: %w", err)
	}
	defer srcFile.Close()

	translations, err := extractor.Extract(srcFile, cfg.Scan.Profile())
	if err != nil {
		return err
	}

	ds := mapping.Build(ops, translations)
	v, err := validator.NewDatasetValidator()
	if err != nil {
		return err
	}
	if err := v.Validate(ds); err != nil {
		return err
	}

	w := os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	}
	return mapping.Write(w, ds)
}

func setupLogging(level string) error {
	lvl, err := log.LvlFromString(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	log.Root().SetHandler(log.LvlFilterHandler(lvl, log.StreamHandler(os.Stderr, log.LogfmtFormat())))
	return nil
}
