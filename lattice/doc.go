// Package lattice is the leaf layer of the folding sampler.
//
// What:
//
//   - Coord: a point (X, Y) on ℤ².
//   - Conformation: an ordered []Coord, one per residue.
//   - Neighbours4 / Manhattan: constant-time lattice arithmetic.
//   - IsSelfAvoiding: the gate every accepted move must pass (spec §3).
//   - InitialLine: the canonical straight-line starting conformation.
//
// Why:
//
//   - Every higher layer (energy, moves, mc, remc) is built on these few
//     primitives; keeping them dependency-free makes self-avoidance testable
//     in isolation from the stochastic move engine that produces it.
//
// Complexity:
//
//   - Neighbours4, Manhattan: O(1).
//   - IsSelfAvoiding, InitialLine, Occupancy, Clone: O(n).
package lattice
