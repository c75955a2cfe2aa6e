package report

import (
	"github.com/spf13/viper"

	"github.com/katalvlaran/hpfold/mc"
	"github.com/katalvlaran/hpfold/moves"
	"github.com/katalvlaran/hpfold/remc"
)

// RunConfig is the on-disk (YAML or JSON) representation of a full run's
// parameters, covering both the mc and remc drivers; the CLI layer (package
// main, cmd/hpfold) picks whichever half of this struct its --algo flag
// selects.
type RunConfig struct {
	Input         string  `mapstructure:"input" yaml:"input"`
	Algo          string  `mapstructure:"algo" yaml:"algo"`
	Seed          int64   `mapstructure:"seed" yaml:"seed"`
	Moves         string  `mapstructure:"moves" yaml:"moves"`
	Rho           float64 `mapstructure:"rho" yaml:"rho"`
	MCSteps       int     `mapstructure:"mc_steps" yaml:"mc_steps"`
	MCTemperature float64 `mapstructure:"mc_t" yaml:"mc_t"`
	RemcSteps     int     `mapstructure:"remc_steps" yaml:"remc_steps"`
	Replicas      int     `mapstructure:"replicas" yaml:"replicas"`
	TMin          float64 `mapstructure:"tmin" yaml:"tmin"`
	TMax          float64 `mapstructure:"tmax" yaml:"tmax"`
	ExchangeEvery int     `mapstructure:"exchange_every" yaml:"exchange_every"`
	Out           string  `mapstructure:"out" yaml:"out"`
}

// DefaultRunConfig mirrors the defaults of mc.DefaultOptions and
// remc.DefaultOptions, expressed at the config-file level.
func DefaultRunConfig() RunConfig {
	mcOpts := mc.DefaultOptions()
	remcOpts := remc.DefaultOptions()

	return RunConfig{
		Algo:          "both",
		Moves:         "hybrid",
		Rho:           mcOpts.Rho,
		MCSteps:       mcOpts.Steps,
		MCTemperature: mcOpts.Temperature,
		RemcSteps:     remcOpts.Steps,
		Replicas:      remcOpts.NReplicas,
		TMin:          remcOpts.TMin,
		TMax:          remcOpts.TMax,
		ExchangeEvery: remcOpts.ExchangeEvery,
		Out:           "output",
	}
}

// LoadRunConfig reads a YAML or JSON config file at path (format inferred
// from its extension by viper) layered over DefaultRunConfig's values.
func LoadRunConfig(path string) (RunConfig, error) {
	cfg := DefaultRunConfig()

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return cfg, err
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// ParseMode translates a RunConfig's Moves string into a moves.Mode.
func ParseMode(s string) (moves.Mode, error) {
	switch s {
	case "vshd":
		return moves.VSHD, nil
	case "pull":
		return moves.Pull, nil
	case "hybrid", "":
		return moves.Hybrid, nil
	default:
		return 0, moves.ErrUnknownMode
	}
}
