package remc

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hpfold/energy"
	"github.com/katalvlaran/hpfold/hpseq"
	"github.com/katalvlaran/hpfold/lattice"
	"github.com/katalvlaran/hpfold/mcmc"
)

// RunParallel is the concurrent-replica-stepping extension permitted by
// spec.md §5: "Parallelizing across replicas is a permitted extension only
// if the global-best update is serialized and the exchange phase remains a
// global barrier." Each replica's proposal and acceptance draw is
// independent of every other replica within a step, so the per-replica work
// inside one step fans out across goroutines via errgroup; the global-best
// update and the exchange sweep both run back on the calling goroutine,
// after every replica goroutine for that step has returned.
//
// Each goroutine touches only its own replica and draws only from that
// replica's RNG substream (moves.DeriveRNG), which is the same substream Run
// gives the slot; the best record is updated in slot order after the
// goroutines return. Goroutine scheduling therefore does not affect the
// result: for the same seq and opts, RunParallel returns the same traces and
// conformations as Run.
//
// Complexity: O(steps * n) wall-clock with n_replicas-way parallelism per
// step, versus O(steps * n_replicas * n) for Run.
func RunParallel(seq hpseq.Sequence, opts Options) (Result, error) {
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
		g, _ := errgroup.WithContext(context.Background())
		for _, rep := range replicas {
			rep := rep
			g.Go(func() error {
				cand, ok, attemptErr := rep.engine.Attempt(rep.coords, opts.Mode)
				if attemptErr != nil {
					return attemptErr
				}
				if !ok {
					return nil
				}
				candE := energy.Eval(cand, seq)
				if mcmc.Accept(candE-rep.e, rep.t, rep.engine.RNG()) {
					rep.coords, rep.e = cand, candE
				}

				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return Result{}, err
		}

		for _, rep := range replicas {
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
