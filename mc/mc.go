// Package mc implements the single-chain Metropolis Monte Carlo driver: one
// conformation, one temperature, a fixed step budget.
package mc

import (
	"errors"

	"github.com/katalvlaran/hpfold/energy"
	"github.com/katalvlaran/hpfold/hpseq"
	"github.com/katalvlaran/hpfold/lattice"
	"github.com/katalvlaran/hpfold/mcmc"
	"github.com/katalvlaran/hpfold/moves"
)

// maxSteps is the hard cap applied by clipping, not a configuration knob.
const maxSteps = 10000

// Sentinel errors for invalid run parameters.
var (
	// ErrInvalidSteps indicates a negative step count. steps == 0 is a valid,
	// zero-iteration run (spec.md §8 scenario S1).
	ErrInvalidSteps = errors.New("mc: steps must be >= 0")

	// ErrInvalidTemperature indicates a non-positive temperature.
	ErrInvalidTemperature = errors.New("mc: temperature must be > 0")
)

// Options configures a Run call. Construct with DefaultOptions and override
// only the fields that need to change.
type Options struct {
	// Steps is the number of MC steps to run, clipped to maxSteps.
	Steps int
	// Temperature is the fixed sampling temperature, must be > 0.
	Temperature float64
	// Mode selects which move kind(s) moves.Engine.Attempt draws from.
	Mode moves.Mode
	// Rho is consulted only when Mode == moves.Hybrid.
	Rho float64
	// Seed seeds the run's RNG stream; 0 uses a library default.
	Seed int64
}

// DefaultOptions returns the spec-default parameter set: 5000 steps,
// temperature 1.0, hybrid moves at rho=0.5, no explicit seed.
func DefaultOptions() Options {
	return Options{
		Steps:       5000,
		Temperature: 1.0,
		Mode:        moves.Hybrid,
		Rho:         0.5,
		Seed:        0,
	}
}

// Result is the return structure common to both drivers (spec.md §6).
type Result struct {
	FinalCoords  lattice.Conformation
	BestCoords   lattice.Conformation
	Energies     []int
	BestEnergies []int
	BestEnergy   int
}

// Run executes a single-chain Metropolis walk over seq starting from the
// straight-line conformation, per spec.md §4.4.
//
// Complexity: O(steps * n) amortized, dominated by move proposal and energy
// evaluation; n is len(seq).
func Run(seq hpseq.Sequence, opts Options) (Result, error) {
	steps := opts.Steps
	if steps < 0 {
		return Result{}, ErrInvalidSteps
	}
	if steps > maxSteps {
		steps = maxSteps
	}
	if opts.Temperature <= 0 {
		return Result{}, ErrInvalidTemperature
	}

	engine, err := moves.NewEngine(moves.NewRNG(opts.Seed), opts.Rho)
	if err != nil {
		return Result{}, err
	}

	c, err := lattice.InitialLine(seq.Len())
	if err != nil {
		return Result{}, err
	}
	e := energy.Eval(c, seq)

	best := lattice.Clone(c)
	bestE := e

	energies := make([]int, 0, steps)
	bestEnergies := make([]int, 0, steps)

	for t := 0; t < steps; t++ {
		cand, ok, attemptErr := engine.Attempt(c, opts.Mode)
		if attemptErr != nil {
			return Result{}, attemptErr
		}
		if ok {
			candE := energy.Eval(cand, seq)
			if mcmc.Accept(candE-e, opts.Temperature, engine.RNG()) {
				c, e = cand, candE
				if e < bestE {
					bestE = e
					best = lattice.Clone(c)
				}
			}
		}

		energies = append(energies, e)
		bestEnergies = append(bestEnergies, bestE)
	}

	return Result{
		FinalCoords:  c,
		BestCoords:   best,
		Energies:     energies,
		BestEnergies: bestEnergies,
		BestEnergy:   bestE,
	}, nil
}
