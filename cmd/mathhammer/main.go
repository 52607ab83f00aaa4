// Package main provides the mathhammer binary that scores a scenario file of
// matchups against the weapon and unit catalog.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/mathhammer/internal/config"
	"github.com/cory-johannsen/mathhammer/internal/game/analysis"
	"github.com/cory-johannsen/mathhammer/internal/game/catalog"
	"github.com/cory-johannsen/mathhammer/internal/game/dice"
	"github.com/cory-johannsen/mathhammer/internal/observability"
	"github.com/cory-johannsen/mathhammer/internal/report"
)

// options are the parsed command-line flags.
type options struct {
	configPath    string
	scenarioPath  string
	weaponsDir    string
	unitsDir      string
	jsonOutput    bool
	rates         bool
	distributions bool
	list          bool
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("mathhammer", flag.ContinueOnError)
	fs.StringVar(&o.configPath, "config", "", "path to configuration file; empty = defaults and environment")
	fs.StringVar(&o.scenarioPath, "scenario", "", "path to scenario YAML file")
	fs.StringVar(&o.weaponsDir, "weapons-dir", "", "override content.weapons_dir")
	fs.StringVar(&o.unitsDir, "units-dir", "", "override content.units_dir")
	fs.BoolVar(&o.jsonOutput, "json", false, "write results as JSON")
	fs.BoolVar(&o.rates, "rates", false, "include per-step probabilities in text output")
	fs.BoolVar(&o.distributions, "distributions", false, "attach kill distributions (overrides analysis.distributions)")
	fs.BoolVar(&o.list, "list", false, "list catalog weapons and units, then exit")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if o.scenarioPath == "" && !o.list {
		return options{}, fmt.Errorf("usage: mathhammer -scenario <file> [-config <file>] [-json] [-rates] [-distributions] | -list")
	}
	return o, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	if err := run(ctx, opts, cfg, logger, os.Stdout); err != nil {
		logger.Error("mathhammer failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

// run loads the catalog and scenario, scores every matchup, and writes the
// report to out.
//
// Precondition: cfg is valid; logger is non-nil.
// Postcondition: returns nil iff a complete report was written.
func run(ctx context.Context, opts options, cfg config.Config, logger *zap.Logger, out io.Writer) error {
	start := time.Now()

	if opts.weaponsDir != "" {
		cfg.Content.WeaponsDir = opts.weaponsDir
	}
	if opts.unitsDir != "" {
		cfg.Content.UnitsDir = opts.unitsDir
	}
	if opts.distributions {
		cfg.Analysis.Distributions = true
	}

	reg, err := catalog.Load(cfg.Content.WeaponsDir, cfg.Content.UnitsDir)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	logger.Info("catalog loaded",
		zap.Int("weapons", len(reg.AllWeapons())),
		zap.Int("units", len(reg.AllUnits())),
		zap.Duration("elapsed", time.Since(start)),
	)

	if opts.list {
		return listCatalog(out, reg)
	}

	scenario, err := analysis.LoadScenario(opts.scenarioPath)
	if err != nil {
		return err
	}
	matchups, err := scenario.Resolve(reg)
	if err != nil {
		return err
	}

	results, err := analysis.NewRunner(logger, cfg.Analysis).Run(ctx, matchups)
	if err != nil {
		return err
	}

	if opts.jsonOutput {
		return report.WriteJSON(out, report.NewDocument(scenario.Name, results))
	}
	return writeText(out, cfg.Analysis.Color, opts.rates, scenario.Name, results)
}

func writeText(out io.Writer, color, rates bool, title string, results []analysis.Result) error {
	r := report.NewRenderer(out, color)
	if err := r.Results(title, results); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(out); err != nil {
		return err
	}
	if err := r.Summaries(analysis.Summarize(results)); err != nil {
		return err
	}
	for _, res := range results {
		if !rates && res.Damage.Distribution == nil {
			continue
		}
		if _, err := fmt.Fprintln(out); err != nil {
			return err
		}
		if rates {
			if err := r.Rates(res); err != nil {
				return err
			}
		}
		label := fmt.Sprintf("%s / %s / %s kills", res.Matchup.Name, res.Matchup.Hypothesis, res.Matchup.Weapon)
		if err := r.Distribution(label, res.Damage.Distribution); err != nil {
			return err
		}
	}
	return nil
}

func listCatalog(out io.Writer, reg *catalog.Registry) error {
	for _, w := range reg.AllWeapons() {
		kind := "ranged"
		if w.IsMelee() {
			kind = "melee"
		}
		if _, err := fmt.Fprintf(out, "weapon  %-20s %-24s %-6s A%s %s S%d AP%d D%s %v\n",
			w.ID, w.Name, kind, diceRange(w.Attacks), w.Skill, w.Strength, w.AP, diceRange(w.Damage), w.Abilities.Strings()); err != nil {
			return err
		}
	}
	for _, u := range reg.AllUnits() {
		if _, err := fmt.Fprintf(out, "unit    %-20s %-24s x%d T%d Sv%s W%d %v\n",
			u.ID, u.Name, u.Models, u.Toughness, u.Save, u.Wounds, u.Keywords); err != nil {
			return err
		}
	}
	return nil
}

// diceRange shows a characteristic with its possible totals, e.g. "D6+1[2-7]".
func diceRange(formula string) string {
	lo, hi, ok := dice.ParseRange(formula)
	if !ok || lo == hi {
		return formula
	}
	return fmt.Sprintf("%s[%d-%d]", formula, lo, hi)
}
