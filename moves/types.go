package moves

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/hpfold/lattice"
)

// Sentinel errors for the move engine.
var (
	// ErrInvalidRho indicates a hybrid-mode rho outside [0, 1].
	ErrInvalidRho = errors.New("moves: rho must be in [0, 1]")

	// ErrUnknownMode indicates an unrecognized Mode was passed to Attempt.
	ErrUnknownMode = errors.New("moves: unknown move mode")
)

// Mode selects which move kind(s) Engine.Attempt draws from.
type Mode int

const (
	// VSHD tries a single VSHD move (end, corner, or crankshaft).
	VSHD Mode = iota
	// Pull tries a single pull move.
	Pull
	// Hybrid tries Pull first with probability Rho, else VSHD first; if the
	// first kind yields no proposal, falls through to the other kind once.
	Hybrid
)

// Engine proposes lattice-move candidates for the Metropolis drivers. One
// Engine owns one RNG stream; callers must not share an Engine across
// goroutines (math/rand.Rand is not goroutine-safe — remc.RunParallel gives
// each replica its own Engine built over a DeriveRNG substream).
type Engine struct {
	rng *rand.Rand
	rho float64
}

// NewEngine constructs a move Engine. rho is only consulted in Hybrid mode
// and must lie in [0, 1]; pass 0.5 as a sensible default.
//
// Complexity: O(1).
func NewEngine(rng *rand.Rand, rho float64) (*Engine, error) {
	if rho < 0 || rho > 1 {
		return nil, ErrInvalidRho
	}

	return &Engine{rng: rng, rho: rho}, nil
}

// RNG exposes the Engine's underlying RNG stream, so that callers (the mc
// and remc drivers) can draw their Metropolis acceptance decisions from the
// same single deterministic stream used for move proposals, per spec.md §5's
// ordering requirement (moves first, then acceptance draws).
func (e *Engine) RNG() *rand.Rand {
	return e.rng
}

// Attempt proposes a single move under mode, returning (proposal, true) on
// success or (nil, false) when no valid proposal exists — a routine outcome,
// not an error (spec.md §7: "No-proposal: not an error"). Returns
// ErrUnknownMode for any mode value outside {VSHD, Pull, Hybrid}.
//
// Complexity: depends on move kind and conformation length; each internal
// attempt is bounded by O(n) candidate generation plus an O(n) self-avoidance
// check per candidate tried.
func (e *Engine) Attempt(c lattice.Conformation, mode Mode) (lattice.Conformation, bool, error) {
	switch mode {
	case VSHD:
		out, ok := e.attemptVSHD(c)

		return out, ok, nil
	case Pull:
		out, ok := e.attemptPull(c)

		return out, ok, nil
	case Hybrid:
		first, second := e.attemptPull, e.attemptVSHD
		if e.rng.Float64() >= e.rho {
			first, second = e.attemptVSHD, e.attemptPull
		}
		if out, ok := first(c); ok {
			return out, true, nil
		}
		out, ok := second(c)

		return out, ok, nil
	default:
		return nil, false, ErrUnknownMode
	}
}
