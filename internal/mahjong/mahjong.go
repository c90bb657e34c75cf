// Package mahjong implements the analytical core of a Riichi Mahjong
// hand-evaluation engine: tile parsing, shanten calculation, agari
// detection, tenpai wait enumeration, and full yaku/fu/han/payout
// scoring. It is a pure, synchronous library — no I/O, no shared mutable
// state, safe to call concurrently from many goroutines.
package mahjong

// ShantenOf is the top-level entry point for shanten calculation: parse
// the hand into a count vector with ToCounts/CountsWithLimit, then call
// this. It builds its own Evaluator so repeated calls never share cache
// state across hands of different composition.
func ShantenOf(c Counts, fixedMelds int) ShantenResult {
	return NewEvaluator().Shanten(c, fixedMelds)
}

// AgariOf reports whether a count vector is a winning shape under any
// archetype (standard, seven-pairs, thirteen-orphans).
func AgariOf(c Counts, fixedMelds int) bool {
	return NewEvaluator().IsAgari(c, fixedMelds)
}

// WaitsOf is the top-level entry point for tenpai wait enumeration.
func WaitsOf(c Counts, fixedMelds int) (WaitSet, error) {
	return Waits(c, fixedMelds)
}
