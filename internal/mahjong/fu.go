package mahjong

// calcWaitFu classifies the shape the winning tile completed and returns
// its fu contribution (0 or 2), per spec.md §4.6 step 7's fu table. A
// decomposition can admit more than one reading of "which component the
// winning tile completed" when the same index appears in several places
// (e.g. a shanpon double-pair-turned-triplet); calcWaitFu takes the
// highest-scoring reading, consistent with the engine's general
// point-maximising stance (see score.go).
func calcWaitFu(d Decomposition, win Index) int {
	best := 0

	if d.Pair == win {
		if best < 2 {
			best = 2 // tanki: the pair itself was completed by the winning tile
		}
	}

	for _, m := range d.Melds {
		if !m.IsSequence() {
			continue
		}
		fu := sequenceWaitFu(m, win)
		if fu > best {
			best = fu
		}
	}

	return best
}

// sequenceWaitFu returns 2 if win completed a kanchan (closed, middle tile)
// or penchan (edge, 1-2 waiting on 3 / 8-9 waiting on 7) wait within this
// sequence, else 0 (ryanmen, or win is not part of this sequence at all).
func sequenceWaitFu(m Meld, win Index) int {
	low, mid, high := m.Tiles[0], m.Tiles[1], m.Tiles[2]
	switch win {
	case mid:
		return 2
	case low:
		if Rank(high) == 9 {
			return 2 // 7-8-9 completed by the 7
		}
	case high:
		if Rank(low) == 1 {
			return 2 // 1-2-3 completed by the 3
		}
	}
	return 0
}

// meldFu is spec.md §4.6 step 7's per-meld fu table: simple vs.
// terminal/honour, open vs. closed, triplet vs. kong (sequences always
// score 0).
func meldFu(m Meld) int {
	if m.IsSequence() {
		return 0
	}
	simple := !IsTerminalOrHonour(m.Index0())
	switch {
	case m.IsTriplet() && simple && m.Open == Open:
		return 2
	case m.IsTriplet() && simple && m.Open == Closed:
		return 4
	case m.IsTriplet() && !simple && m.Open == Open:
		return 4
	case m.IsTriplet() && !simple && m.Open == Closed:
		return 8
	case m.IsKong() && simple && m.Open == Open:
		return 8
	case m.IsKong() && simple && m.Open == Closed:
		return 16
	case m.IsKong() && !simple && m.Open == Open:
		return 16
	case m.IsKong() && !simple && m.Open == Closed:
		return 32
	}
	return 0
}

// pairFu returns 2 for a dragon pair, 2 for a seat-wind pair and 2 for a
// round-wind pair; a pair that is both seat and round wind stacks to 4
// (the double-wind stack, same rule as yakuhaiHan).
func pairFu(pair Index, ctx ScoringContext) int {
	fu := 0
	if isDragon(pair) {
		fu += 2
	}
	if pair == ctx.SeatWind {
		fu += 2
	}
	if pair == ctx.RoundWind {
		fu += 2
	}
	return fu
}

// roundUpTo10 implements spec.md §4.6 step 7's final fu rounding.
func roundUpTo10(fu int) int {
	if fu%10 == 0 {
		return fu
	}
	return (fu/10 + 1) * 10
}

// calcFu computes total fu for one decomposition per spec.md §4.6 step 7.
// Chiitoitsu's fixed 25 fu is handled separately in score.go, not here.
func calcFu(cl *claim, ctx ScoringContext, d Decomposition, hasPinfu bool) int {
	waitFu := calcWaitFu(d, ctx.WinTile.Index)

	if hasPinfu && ctx.WinType == Tsumo {
		return 20
	}

	fu := 20
	if cl.isClosed && ctx.WinType == Ron {
		fu += 10
	}
	if ctx.WinType == Tsumo && !hasPinfu {
		fu += 2
	}
	fu += pairFu(d.Pair, ctx)
	fu += waitFu
	for _, m := range d.Melds {
		fu += meldFu(m)
	}

	if hasPinfu && ctx.WinType == Ron {
		return 30
	}

	fu = roundUpTo10(fu)
	if fu < 30 {
		fu = 30
	}
	return fu
}
