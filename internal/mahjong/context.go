package mahjong

// WinType distinguishes a self-drawn win from a win off an opponent's discard.
type WinType int

const (
	Tsumo WinType = iota
	Ron
)

// ScoringContext is the input record consumed by Score, matching the field
// table of spec.md §3.
type ScoringContext struct {
	// HandTiles are the concealed tiles excluding the winning tile; length
	// = 13 + total kongs. Open furo tiles appear at the tail, ordered
	// [concealed][open pon/chi melds][open kongs].
	HandTiles []Tile
	// WinTile is exactly one tile.
	WinTile Tile
	WinType WinType
	IsDealer bool
	SeatWind  Index
	RoundWind Index
	// DoraTiles are tiles (not indicators) whose occurrences in the final
	// 14-count count as extra han.
	DoraTiles []Tile
	Riichi    bool
	// FuroSets is the number of open melds; KanSets of those are open kongs.
	FuroSets int
	KanSets  int
	// AnkanTiles names one tile identity per declared concealed kong.
	AnkanTiles []Tile
	// KanTiles names one tile identity per declared open kong, in the
	// same order they appear at the tail of HandTiles.
	KanTiles []Tile
}

// claim is the normalised, validated form of a ScoringContext: a full
// 14(+kong)-count vector, the fixed melds pulled out of it, and bookkeeping
// needed by the yaku/fu passes.
type claim struct {
	full       Counts // complete hand including win tile, fixed meld tiles still counted
	free       Counts // full minus every fixed meld's tiles: the part left to decompose
	fixed      []Meld
	isClosed   bool
	totalKongs int
	redFives   map[Index]int // aka-dora contributor counts, keyed by the 5-index (Man5/Pin5/So5)
}

// buildClaim implements spec.md §4.6 steps 1-3: assemble the full count
// vector, pull fixed melds from the tail of HandTiles plus AnkanTiles, and
// compute the closed-hand flag.
func buildClaim(ctx ScoringContext) (*claim, error) {
	totalKongs := ctx.KanSets + len(ctx.AnkanTiles)
	wantHandLen := 13 + totalKongs
	if len(ctx.HandTiles) != wantHandLen {
		return nil, newErr(ErrHandLengthMismatch, "hand_tiles length mismatch: want 13+kongs")
	}
	if ctx.KanSets != len(ctx.KanTiles) {
		return nil, newErr(ErrHandLengthMismatch, "kan_sets does not match len(kan_tiles)")
	}
	if ctx.KanSets > ctx.FuroSets {
		return nil, newErr(ErrHandLengthMismatch, "kan_sets cannot exceed furo_sets")
	}

	redFives := map[Index]int{}
	countRed := func(t Tile) {
		if t.Red && t.isRedCapable() {
			redFives[t.Index]++
		}
	}
	for _, t := range ctx.HandTiles {
		countRed(t)
	}
	countRed(ctx.WinTile)

	hand := append([]Tile(nil), ctx.HandTiles...)
	tail := len(hand)

	var fixed []Meld

	// Open kongs: last KanSets groups of 4, matching KanTiles identities.
	for i := ctx.KanSets - 1; i >= 0; i-- {
		if tail < 4 {
			return nil, newErr(ErrMeldAccountingMismatch, "not enough tiles for declared open kong")
		}
		group := hand[tail-4 : tail]
		want := ctx.KanTiles[i].Index
		for _, t := range group {
			if t.Index != want {
				return nil, newErr(ErrInvalidMeld, "open kong tiles are not four identical tiles")
			}
		}
		fixed = append(fixed, newKongMeld(want, Open))
		tail -= 4
	}

	// Remaining open melds (pon/chi): groups of 3.
	remainingOpen := ctx.FuroSets - ctx.KanSets
	for i := 0; i < remainingOpen; i++ {
		if tail < 3 {
			return nil, newErr(ErrMeldAccountingMismatch, "not enough tiles for declared open meld")
		}
		var group [3]Tile
		copy(group[:], hand[tail-3:tail])
		m, err := classifyOpenMeld(group)
		if err != nil {
			return nil, err
		}
		fixed = append(fixed, m)
		tail -= 3
	}

	concealed := append([]Tile(nil), hand[:tail]...)

	// Concealed kongs named in AnkanTiles: pull 4 matching tiles out of
	// the remaining concealed portion.
	for _, ank := range ctx.AnkanTiles {
		removed := 0
		next := concealed[:0]
		for _, t := range concealed {
			if removed < 4 && t.Index == ank.Index {
				removed++
				continue
			}
			next = append(next, t)
		}
		concealed = next
		if removed != 4 {
			return nil, newErr(ErrMeldAccountingMismatch, "concealed kong tiles not found in hand")
		}
		fixed = append(fixed, newKongMeld(ank.Index, Closed))
	}

	allTiles := append(append([]Tile(nil), concealed...), ctx.WinTile)
	full, err := CountsWithLimit(allTiles)
	if err != nil {
		return nil, err
	}
	// Fixed melds' tiles are not part of `concealed`/`full` above (they
	// were cut from `hand` before `concealed` was derived) — add them
	// back into `full` so it represents the complete hand, and compute
	// `free` as `full` minus every fixed meld's tiles.
	free := full
	for _, m := range fixed {
		used := m.tilesUsed()
		for i, n := range used {
			full[i] += n
		}
	}
	for i := range full {
		if full[i] > 4 {
			return nil, newErr(ErrTileOverCount, "more than four copies of "+indexToToken(Index(i)))
		}
	}

	isClosed := true
	for _, m := range fixed {
		if m.Open == Open {
			isClosed = false
			break
		}
	}

	return &claim{
		full:       full,
		free:       free,
		fixed:      fixed,
		isClosed:   isClosed,
		totalKongs: totalKongs,
		redFives:   redFives,
	}, nil
}
