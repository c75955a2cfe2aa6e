// Package mcmc implements the Metropolis-Hastings acceptance rule shared by
// the single-chain driver (package mc) and the replica-exchange driver
// (package remc).
package mcmc

import (
	"math"
	"math/rand"
)

// minTemperature floors the temperature used in the Boltzmann factor,
// avoiding a division by (near-)zero when a caller passes T=0.
const minTemperature = 1e-12

// Accept reports whether a proposed move with energy change deltaE should be
// accepted at the given temperature, per the Metropolis criterion:
// always accept deltaE <= 0; otherwise accept with probability
// exp(-deltaE/T), T floored at minTemperature.
//
// Complexity: O(1).
func Accept(deltaE int, temperature float64, rng *rand.Rand) bool {
	if deltaE <= 0 {
		return true
	}

	t := temperature
	if t < minTemperature {
		t = minTemperature
	}

	p := math.Exp(-float64(deltaE) / t)

	return rng.Float64() < p
}

// ExchangeAccept reports whether a replica-exchange swap between neighbors i
// (temperature ti, energy ei) and j (temperature tj, energy ej) should be
// accepted, per REMC's detailed-balance criterion:
// accept with probability min(1, exp((1/Tj - 1/Ti)(Ei - Ej))).
//
// Complexity: O(1).
func ExchangeAccept(ti, tj float64, ei, ej int, rng *rand.Rand) bool {
	ti = floor(ti)
	tj = floor(tj)

	exponent := (1/tj - 1/ti) * float64(ei-ej)
	if exponent >= 0 {
		return true
	}

	return rng.Float64() < math.Exp(exponent)
}

func floor(t float64) float64 {
	if t < minTemperature {
		return minTemperature
	}

	return t
}
