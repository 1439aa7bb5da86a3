// cliftags derives per-instruction tags from the wasm-to-CLIF mapping
// dataset: each CLIF instruction is labeled with the proposals and
// semantic categories of the wasm operators that lower to it.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	log "github.com/xuperchain/log15"

	"github.com/mmcloughlin/arrival/internal/config"
	"github.com/mmcloughlin/arrival/internal/mapping"
	"github.com/mmcloughlin/arrival/internal/tags"
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
		data             string
		output           string
		logLevel         string
		cfgFile          string
		proposals        []string
		ignoreCategories []string
	)

	cmd := &cobra.Command{
		Use:           "cliftags",
		Short:         "Derive CLIF instruction tags from the wasm mapping dataset",
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
			if cmd.Flags().Changed("proposals") {
				cfg.Tags.Proposals = proposals
			}
			if cmd.Flags().Changed("ignore-categories") {
				cfg.Tags.IgnoreCategories = ignoreCategories
			}
			return run(cfg, data, output)
		},
	}

	cmd.Flags().StringVar(&data, "data", "", "wasm to clif data file")
	cmd.MarkFlagRequired("data")
	cmd.Flags().StringVar(&output, "output", "", "output file (default stdout)")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "logging verbosity")
	cmd.Flags().StringVar(&cfgFile, "config", "", "config file path")
	cmd.Flags().StringSliceVar(&proposals, "proposals", nil, "in-scope proposal names")
	cmd.Flags().StringSliceVar(&ignoreCategories, "ignore-categories", nil, "operator categories to exclude")

	return cmd
}

func run(cfg *config.Config, data, output string) error {
	dataFile, err := os.Open(data)
	if err != nil {
		return fmt.Errorf("opening dataset: %w", err)
	}
	defer dataFile.Close()

	ds, err := mapping.Read(dataFile)
	if err != nil {
		return err
	}
	dv, err := validator.NewDatasetValidator()
	if err != nil {
		return err
	}
	if err := dv.Validate(ds); err != nil {
		return err
	}

	tagMap, err := tags.Build(ds, cfg.Tags.Scope(), tags.DefaultClassifier())
	if err != nil {
		return err
	}
	tv, err := validator.NewTagsValidator()
	if err != nil {
		return err
	}
	if err := tv.Validate(tagMap); err != nil {
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
	return tags.Write(w, tagMap)
}

func setupLogging(level string) error {
	lvl, err := log.LvlFromString(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	log.Root().SetHandler(log.LvlFilterHandler(lvl, log.StreamHandler(os.Stderr, log.LogfmtFormat())))
	return nil
}
