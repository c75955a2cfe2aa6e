// Package energy scores a lattice.Conformation against an hpseq.Sequence.
//
// What:
//
//   - Eval: O(n) HP contact counter, negative-definite (E ≤ 0).
//
// Why:
//
//   - Both mc and remc call Eval on every proposed conformation to decide
//     Metropolis acceptance; keeping it a pure function of (conformation,
//     sequence) — rather than an incrementally-patched running total — makes
//     it directly testable against the worked examples in spec.md §8.
package energy
