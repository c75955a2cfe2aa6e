// Command hpfold runs the HP-lattice folding sampler (MC, REMC, or both)
// over an input sequence and writes the resulting traces and best
// conformation to a timestamped run directory.
//
// Flags mirror the parameters of packages mc and remc one-to-one; see
// github.com/urfave/cli/v2's own docs for flag-parsing mechanics.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/hpfold/hpseq"
	"github.com/katalvlaran/hpfold/mc"
	"github.com/katalvlaran/hpfold/remc"
	"github.com/katalvlaran/hpfold/report"
)

const defaultOutputDir = "output"

func main() {
	if err := application().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func application() *cli.App {
	return &cli.App{
		Name:  "hpfold",
		Usage: "search low-energy HP-lattice conformations via MC and REMC",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "input", Required: true, Usage: "FASTA path, or a raw amino-acid sequence (raw HP input is rejected)"},
			&cli.StringFlag{Name: "algo", Value: "both", Usage: "mc, remc, or both"},
			&cli.StringFlag{Name: "config", Usage: "YAML/JSON config file overriding defaults"},
			&cli.Int64Flag{Name: "seed", Value: 0, Usage: "RNG seed (0 uses a library default)"},
			&cli.StringFlag{Name: "moves", Value: "hybrid", Usage: "vshd, pull, or hybrid"},
			&cli.Float64Flag{Name: "rho", Value: 0.5, Usage: "hybrid mode's Pull-first probability"},
			&cli.IntFlag{Name: "mc-steps", Value: 5000, Usage: "MC step budget (<= 10000)"},
			&cli.Float64Flag{Name: "mc-T", Value: 1.0, Usage: "MC temperature"},
			&cli.IntFlag{Name: "remc-steps", Value: 5000, Usage: "REMC step budget (<= 10000)"},
			&cli.IntFlag{Name: "replicas", Value: 4, Usage: "REMC replica count"},
			&cli.Float64Flag{Name: "tmin", Value: 0.5, Usage: "REMC coldest replica temperature"},
			&cli.Float64Flag{Name: "tmax", Value: 2.0, Usage: "REMC hottest replica temperature"},
			&cli.IntFlag{Name: "exchange-every", Value: 10, Usage: "REMC exchange sweep period"},
			&cli.StringFlag{Name: "out", Value: defaultOutputDir, Usage: "parent directory for the timestamped run directory"},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	cfg, err := resolveConfig(c)
	if err != nil {
		return err
	}

	seq, err := hpseq.Parse(cfg.Input)
	if err != nil {
		return err
	}

	mode, err := report.ParseMode(cfg.Moves)
	if err != nil {
		return err
	}

	runDir, err := makeRunDir(cfg.Out)
	if err != nil {
		return err
	}

	if err := report.WriteRunConfigYAMLFile(filepath.Join(runDir, "config.yaml"), cfg); err != nil {
		return fmt.Errorf("write run config: %w", err)
	}

	if cfg.Algo == "mc" || cfg.Algo == "both" {
		res, err := mc.Run(seq, mc.Options{
			Steps:       cfg.MCSteps,
			Temperature: cfg.MCTemperature,
			Mode:        mode,
			Rho:         cfg.Rho,
			Seed:        cfg.Seed,
		})
		if err != nil {
			return fmt.Errorf("mc run: %w", err)
		}
		if err := writeArtifacts(runDir, "mc", res); err != nil {
			return err
		}
	}

	if cfg.Algo == "remc" || cfg.Algo == "both" {
		res, err := remc.Run(seq, remc.Options{
			Steps:         cfg.RemcSteps,
			NReplicas:     cfg.Replicas,
			TMin:          cfg.TMin,
			TMax:          cfg.TMax,
			ExchangeEvery: cfg.ExchangeEvery,
			Mode:          mode,
			Rho:           cfg.Rho,
			Seed:          cfg.Seed,
		})
		if err != nil {
			return fmt.Errorf("remc run: %w", err)
		}
		if err := writeArtifacts(runDir, "remc", res); err != nil {
			return err
		}
	}

	fmt.Fprintf(c.App.Writer, "wrote run artifacts to %s\n", runDir)

	return nil
}

func resolveConfig(c *cli.Context) (report.RunConfig, error) {
	cfg := report.DefaultRunConfig()
	if path := c.String("config"); path != "" {
		fileCfg, err := report.LoadRunConfig(path)
		if err != nil {
			return cfg, err
		}
		cfg = fileCfg
	}

	cfg.Input = c.String("input")
	if c.IsSet("algo") {
		cfg.Algo = c.String("algo")
	}
	if c.IsSet("seed") {
		cfg.Seed = c.Int64("seed")
	}
	if c.IsSet("moves") {
		cfg.Moves = c.String("moves")
	}
	if c.IsSet("rho") {
		cfg.Rho = c.Float64("rho")
	}
	if c.IsSet("mc-steps") {
		cfg.MCSteps = c.Int("mc-steps")
	}
	if c.IsSet("mc-T") {
		cfg.MCTemperature = c.Float64("mc-T")
	}
	if c.IsSet("remc-steps") {
		cfg.RemcSteps = c.Int("remc-steps")
	}
	if c.IsSet("replicas") {
		cfg.Replicas = c.Int("replicas")
	}
	if c.IsSet("tmin") {
		cfg.TMin = c.Float64("tmin")
	}
	if c.IsSet("tmax") {
		cfg.TMax = c.Float64("tmax")
	}
	if c.IsSet("exchange-every") {
		cfg.ExchangeEvery = c.Int("exchange-every")
	}
	if c.IsSet("out") {
		cfg.Out = c.String("out")
	}

	return cfg, nil
}

func makeRunDir(parent string) (string, error) {
	name := fmt.Sprintf("run_%s", time.Now().Format("20060102_150405"))
	dir := filepath.Join(parent, name)

	return dir, os.MkdirAll(dir, 0o755)
}

func writeArtifacts(runDir, prefix string, res mc.Result) error {
	csvPath := filepath.Join(runDir, prefix+"_trace.csv")
	if err := report.WriteTraceCSVFile(csvPath, res.Energies, res.BestEnergies); err != nil {
		return fmt.Errorf("write %s: %w", csvPath, err)
	}

	jsonPath := filepath.Join(runDir, prefix+"_best.json")
	if err := report.WriteBestFoldJSONFile(jsonPath, res.BestEnergy, res.BestCoords); err != nil {
		return fmt.Errorf("write %s: %w", jsonPath, err)
	}

	return nil
}
