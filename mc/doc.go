// Run produces two parallel traces (current and best-so-far energy) and the
// best conformation found, starting from the canonical straight-line chain.
// See Options and DefaultOptions for the tunable parameters and their
// spec-mandated defaults and bounds.
package mc
