// Package remc implements the Replica Exchange Monte Carlo driver: a ladder
// of replicas at linearly spaced temperatures, each stepped independently,
// with periodic neighbor-pair exchange sweeps.
package remc

import (
	"errors"

	"github.com/katalvlaran/hpfold/energy"
	"github.com/katalvlaran/hpfold/hpseq"
	"github.com/katalvlaran/hpfold/lattice"
	"github.com/katalvlaran/hpfold/mc"
	"github.com/katalvlaran/hpfold/mcmc"
	"github.com/katalvlaran/hpfold/moves"
)

const maxSteps = 10000

// Sentinel errors for invalid run parameters.
var (
	// ErrInvalidSteps indicates a negative step count. steps == 0 is a valid,
	// zero-iteration run (mirrors mc.Run, spec.md §8 scenario S1).
	ErrInvalidSteps = errors.New("remc: steps must be >= 0")

	// ErrInvalidTemperatureRange indicates tmin/tmax are non-positive or
	// out of order.
	ErrInvalidTemperatureRange = errors.New("remc: require 0 < tmin <= tmax")

	// ErrInvalidExchangeEvery indicates a non-positive exchange interval.
	ErrInvalidExchangeEvery = errors.New("remc: exchange_every must be > 0")
)

const minReplicas = 2

// Options configures a Run/RunParallel call.
type Options struct {
	Steps         int
	NReplicas     int
	TMin, TMax    float64
	ExchangeEvery int
	Mode          moves.Mode
	Rho           float64
	Seed          int64
}

// DefaultOptions returns spec.md §4.5's default parameter set.
func DefaultOptions() Options {
	return Options{
		Steps:         5000,
		NReplicas:     4,
		TMin:          0.5,
		TMax:          2.0,
		ExchangeEvery: 10,
		Mode:          moves.Hybrid,
		Rho:           0.5,
		Seed:          0,
	}
}

// Result mirrors mc.Result, the return structure shared by both drivers.
type Result = mc.Result

// replica is one slot on the temperature ladder: its temperature never
// changes, its coordinates and energy evolve.
type replica struct {
	coords lattice.Conformation
	e      int
	t      float64
	engine *moves.Engine
}

func ladder(nReplicas int, tmin, tmax float64) []float64 {
	ts := make([]float64, nReplicas)
	if nReplicas == 1 {
		ts[0] = tmin

		return ts
	}
	for r := 0; r < nReplicas; r++ {
		ts[r] = tmin + float64(r)*(tmax-tmin)/float64(nReplicas-1)
	}

	return ts
}

func validate(opts Options) (int, int, error) {
	steps := opts.Steps
	if steps < 0 {
		return 0, 0, ErrInvalidSteps
	}
	if steps > maxSteps {
		steps = maxSteps
	}

	nReplicas := opts.NReplicas
	if nReplicas < minReplicas {
		nReplicas = minReplicas
	}

	if opts.TMin <= 0 || opts.TMax <= 0 || opts.TMin > opts.TMax {
		return 0, 0, ErrInvalidTemperatureRange
	}
	if opts.ExchangeEvery <= 0 {
		return 0, 0, ErrInvalidExchangeEvery
	}

	return steps, nReplicas, nil
}

func initReplicas(seq hpseq.Sequence, opts Options, nReplicas int) ([]*replica, error) {
	temps := ladder(nReplicas, opts.TMin, opts.TMax)
	base := moves.NewRNG(opts.Seed)

	replicas := make([]*replica, nReplicas)
	for r := 0; r < nReplicas; r++ {
		c, err := lattice.InitialLine(seq.Len())
		if err != nil {
			return nil, err
		}
		eng, err := moves.NewEngine(moves.DeriveRNG(base, uint64(r)), opts.Rho)
		if err != nil {
			return nil, err
		}
		replicas[r] = &replica{
			coords: c,
			e:      energy.Eval(c, seq),
			t:      temps[r],
			engine: eng,
		}
	}

	return replicas, nil
}

// Run executes the sequential REMC sampler, per spec.md §4.5. Replicas are
// stepped in slot order within each step; the exchange phase alternates
// between even-indexed and odd-indexed neighbor pairs across successive
// sweeps, per spec.md §5's ordering requirement.
//
// Complexity: O(steps * n_replicas * n) amortized.
func Run(seq hpseq.Sequence, opts Options) (Result, error) {
	steps, nReplicas, err := validate(opts)
	if err != nil {
		return Result{}, err
	}

	replicas, err := initReplicas(seq, opts, nReplicas)
	if err != nil {
		return Result{}, err
	}

	bestCoords := lattice.Clone(replicas[0].coords)
	bestE := replicas[0].e

	energies := make([]int, 0, steps)
	bestEnergies := make([]int, 0, steps)

	exchangeParity := 0
	for s := 1; s <= steps; s++ {
		for _, rep := range replicas {
			if cand, ok, attemptErr := rep.engine.Attempt(rep.coords, opts.Mode); attemptErr != nil {
				return Result{}, attemptErr
			} else if ok {
				candE := energy.Eval(cand, seq)
				if mcmc.Accept(candE-rep.e, rep.t, rep.engine.RNG()) {
					rep.coords, rep.e = cand, candE
				}
			}
			if rep.e < bestE {
				bestE = rep.e
				bestCoords = lattice.Clone(rep.coords)
			}
		}

		energies = append(energies, replicas[0].e)
		bestEnergies = append(bestEnergies, bestE)

		if s%opts.ExchangeEvery == 0 {
			exchangeSweep(replicas, exchangeParity)
			exchangeParity = 1 - exchangeParity
		}
	}

	final := lattice.Clone(replicas[0].coords)
	if bestE < replicas[0].e {
		final = lattice.Clone(bestCoords)
	}

	return Result{
		FinalCoords:  final,
		BestCoords:   bestCoords,
		Energies:     energies,
		BestEnergies: bestEnergies,
		BestEnergy:   bestE,
	}, nil
}

// exchangeSweep attempts one pass of neighbor-pair exchanges, starting at
// index 0 when parity==0 (pairs (0,1),(2,3),...) or index 1 when parity==1
// (pairs (1,2),(3,4),...). Pairs are visited in ascending order, and each
// pair's exchange draw comes from the RNG substream of its lower-indexed
// replica slot (the i of pair (i, i+1)).
func exchangeSweep(replicas []*replica, parity int) {
	for i := parity; i+1 < len(replicas); i += 2 {
		a, b := replicas[i], replicas[i+1]
		if mcmc.ExchangeAccept(a.t, b.t, a.e, b.e, a.engine.RNG()) {
			a.coords, b.coords = b.coords, a.coords
			a.e, b.e = b.e, a.e
		}
	}
}
