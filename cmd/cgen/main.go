// Command cgen builds a small demonstration circuit and serializes it as
// either DIMACS CNF or PolyBoRi ANF text. It is a thin wiring layer only -
// all encoding logic lives in the cnf/anf/word packages; this command just
// picks a circuit, builds it, and writes it out. Grounded on
// oisee-z80-optimizer's Cobra-based cmd/z80opt/main.go, with viper layered
// on top for file-based config alongside the usual cobra flags.
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vsklad/cgen-sub001/anf"
	"github.com/vsklad/cgen-sub001/anf/polybori"
	"github.com/vsklad/cgen-sub001/cnf"
	"github.com/vsklad/cgen-sub001/cnf/dimacs"
	"github.com/vsklad/cgen-sub001/config"
)

func main() {
	var cfgPath string
	var cfg = config.Defaults()

	root := &cobra.Command{
		Use:   "cgen",
		Short: "Translate bit/word circuits into CNF or ANF form",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfgPath, cfg)
		},
	}

	flags := root.Flags()
	flags.StringVar(&cfgPath, "config", "", "path to a YAML config file")
	flags.StringVar(&cfg.Input, "input", cfg.Input, "unused placeholder for a future circuit-description input")
	flags.StringVar(&cfg.Output, "output", cfg.Output, "output file path (default: stdout)")
	flags.StringVar((*string)(&cfg.Format), "format", string(cfg.Format), "output format: cnf or anf")
	flags.StringVar(&cfg.Circuit, "circuit", "adder", fmt.Sprintf("circuit to build (%s)", strings.Join(circuitNames(), ", ")))
	flags.Uint32Var(&cfg.AddMaxArgs, "add-max-args", cfg.AddMaxArgs, "maximum operands folded into one n-ary addition (2-6)")
	flags.Uint32Var(&cfg.XorMaxArgs, "xor-max-args", cfg.XorMaxArgs, "maximum operands folded into one n-ary XOR (2-10)")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "zerolog level: debug, info, warn, error")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func circuitNames() []string {
	names := make([]string, 0, len(circuitRegistry))
	for name := range circuitRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func run(cfgPath string, flagCfg config.Config) error {
	cfg := flagCfg
	if cfgPath != "" {
		fileCfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		cfg = fileCfg
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("cmd/cgen: invalid log level %q: %w", cfg.LogLevel, err)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	entry, ok := circuitRegistry[cfg.Circuit]
	if !ok {
		return fmt.Errorf("cmd/cgen: unknown circuit %q (available: %s)", cfg.Circuit, strings.Join(circuitNames(), ", "))
	}

	out := os.Stdout
	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return fmt.Errorf("cmd/cgen: creating %s: %w", cfg.Output, err)
		}
		defer f.Close()
		out = f
	}

	logger.Info().Str("circuit", cfg.Circuit).Str("format", string(cfg.Format)).Msg("building circuit")

	switch cfg.Format {
	case config.FormatCNF:
		f := cnf.New()
		if err := f.SetAddMaxArgs(cfg.AddMaxArgs); err != nil {
			return err
		}
		if err := f.SetXorMaxArgs(cfg.XorMaxArgs); err != nil {
			return err
		}
		entry.cnf(f, defaultCircuitWidth)
		logger.Info().Int("variables", int(f.VariablesSize())).Int("clauses", f.ClausesSize()).Msg("writing DIMACS output")
		return dimacs.Write(out, f)
	case config.FormatANF:
		if entry.anf == nil {
			return fmt.Errorf("cmd/cgen: circuit %q has no ANF form", cfg.Circuit)
		}
		f := anf.New()
		if err := f.SetAddMaxArgs(cfg.AddMaxArgs); err != nil {
			return err
		}
		if err := f.SetXorMaxArgs(cfg.XorMaxArgs); err != nil {
			return err
		}
		entry.anf(f, defaultCircuitWidth)
		logger.Info().Int("variables", int(f.VariablesSize())).Int("equations", f.EquationsSize()).Msg("writing PolyBoRi output")
		return polybori.Write(out, f)
	default:
		return fmt.Errorf("cmd/cgen: unknown format %q", cfg.Format)
	}
}
