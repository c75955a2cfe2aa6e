// The temperature ladder is linear from TMin to TMax inclusive; replica 0 is
// always the coldest and doubles as the reference chain for the current-
// energy trace. Exchange sweeps alternate even/odd neighbor-pair parity
// across successive sweeps so that, over time, every adjacent pair gets a
// chance to exchange.
package remc
