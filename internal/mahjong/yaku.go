package mahjong

// YakuID enumerates the scoring patterns this engine recognises. Situational
// yaku that depend on game-state history (ippatsu, haitei, houtei, rinshan,
// chankan, double-riichi) are intentionally absent, per spec.md §1 Non-goals.
type YakuID int

const (
	YakuRiichi YakuID = iota
	YakuMenzenTsumo
	YakuPinfu
	YakuTanyao
	YakuHonitsu
	YakuChinitsu
	YakuToitoi
	YakuYakuhai
	YakuSanKantsu
	YakuChiitoitsu
)

var yakuNames = map[YakuID]string{
	YakuRiichi:      "Riichi",
	YakuMenzenTsumo: "Menzen Tsumo",
	YakuPinfu:       "Pinfu",
	YakuTanyao:      "Tanyao",
	YakuHonitsu:     "Honitsu",
	YakuChinitsu:    "Chinitsu",
	YakuToitoi:      "Toitoi",
	YakuYakuhai:     "Yakuhai",
	YakuSanKantsu:   "Three Kongs",
	YakuChiitoitsu:  "Chiitoitsu",
}

// YakuEntry is one scoring pattern found in a winning hand, with its
// contribution in han. Yakuhai can appear more than once: evalYaku adds one
// 1-han entry per han a qualifying meld earns, so a double-wind meld
// (seat==round) yields two entries.
type YakuEntry struct {
	ID   YakuID
	Name string
	Han  int
}

// YakumanID enumerates the limit hands this engine recognises.
type YakumanID int

const (
	YakumanBigThreeDragons YakumanID = iota
	YakumanNineGates
	YakumanFourConcealedTriplets
	YakumanThirteenOrphans
	YakumanFourKongs
)

var yakumanNames = map[YakumanID]string{
	YakumanBigThreeDragons:       "Big Three Dragons",
	YakumanNineGates:             "Nine Gates",
	YakumanFourConcealedTriplets: "Four Concealed Triplets",
	YakumanThirteenOrphans:       "Thirteen Orphans",
	YakumanFourKongs:             "Four Kongs",
}

// YakumanEntry is one limit hand found, with its multiplier over the base
// 8000 (2 for a double yakuman such as suuankou tanki).
type YakumanEntry struct {
	ID         YakumanID
	Name       string
	Multiplier int
}

func dragonIndexes() [3]Index { return [3]Index{White, Green, Red} }

func isDragon(idx Index) bool { return idx == White || idx == Green || idx == Red }

// candidate bundles one decomposition with the yaku/yakuman/fu/han it
// produces, so the scoring pipeline can rank candidates by payout.
type candidate struct {
	decomp  Decomposition
	yaku    []YakuEntry
	yakuman []YakumanEntry
	han     int
	fu      int
	doraHan int
	akaHan  int
}

// evalYakuman checks the three decomposition-scoped yakuman of spec.md
// §4.6 step 7: Big Three Dragons, Nine Gates, Four Concealed Triplets.
// (Thirteen Orphans and Four Kongs are whole-hand short-circuits handled
// earlier in the pipeline; see score.go.)
func evalYakuman(cl *claim, ctx ScoringContext, d Decomposition) []YakumanEntry {
	var out []YakumanEntry

	dragonCount := 0
	for _, dr := range dragonIndexes() {
		for _, m := range d.Melds {
			if (m.IsTriplet() || m.IsKong()) && m.Index0() == dr {
				dragonCount++
				break
			}
		}
	}
	if dragonCount == 3 {
		out = append(out, YakumanEntry{ID: YakumanBigThreeDragons, Name: yakumanNames[YakumanBigThreeDragons], Multiplier: 1})
	}

	if cl.isClosed && len(cl.fixed) == 0 && isNineGates(cl.full) {
		out = append(out, YakumanEntry{ID: YakumanNineGates, Name: yakumanNames[YakumanNineGates], Multiplier: 1})
	}

	if sct, ok := fourConcealedTriplets(cl, ctx, d); ok {
		out = append(out, sct)
	}

	return out
}

// isNineGates checks spec.md §4.6/§9: a single-suit closed hand whose
// 9-slot subvector is 1112345678999 plus one extra tile of that suit.
func isNineGates(full Counts) bool {
	suit := -1
	for i := Index(0); i < numIndices; i++ {
		if full[i] == 0 {
			continue
		}
		if IsHonour(i) {
			return false
		}
		s := SuitOf(i)
		if suit == -1 {
			suit = s
		} else if suit != s {
			return false
		}
	}
	if suit == -1 {
		return false
	}
	base := Index(suit * 9)
	want := [9]uint8{3, 1, 1, 1, 1, 1, 1, 1, 3}
	extra := 0
	for r := 0; r < 9; r++ {
		got := full[base+Index(r)]
		if got < want[r] {
			return false
		}
		extra += int(got) - int(want[r])
	}
	return extra == 1
}

// fourConcealedTriplets checks spec.md §4.6/§9's Suuankou rule: four
// triplet-or-kong melds, all closed. On ron it is only valid when the
// winning tile completes the pair (tanki wait); that variant scores as
// double yakuman.
func fourConcealedTriplets(cl *claim, ctx ScoringContext, d Decomposition) (YakumanEntry, bool) {
	tripletCount := 0
	for _, m := range d.Melds {
		if (m.IsTriplet() || m.IsKong()) && m.Open == Closed {
			tripletCount++
		}
	}
	if tripletCount != 4 {
		return YakumanEntry{}, false
	}
	if ctx.WinType == Tsumo {
		return YakumanEntry{ID: YakumanFourConcealedTriplets, Name: yakumanNames[YakumanFourConcealedTriplets], Multiplier: 1}, true
	}
	// Ron: only valid as a tanki (pair) wait.
	if d.Pair == ctx.WinTile.Index {
		return YakumanEntry{ID: YakumanFourConcealedTriplets, Name: yakumanNames[YakumanFourConcealedTriplets], Multiplier: 2}, true
	}
	return YakumanEntry{}, false
}

// evalYaku implements spec.md §4.6 step 7's ordinary yaku list.
func evalYaku(cl *claim, ctx ScoringContext, d Decomposition) []YakuEntry {
	var out []YakuEntry

	if ctx.Riichi && cl.isClosed {
		out = append(out, YakuEntry{ID: YakuRiichi, Name: yakuNames[YakuRiichi], Han: 1})
	}
	if cl.isClosed && ctx.WinType == Tsumo {
		out = append(out, YakuEntry{ID: YakuMenzenTsumo, Name: yakuNames[YakuMenzenTsumo], Han: 1})
	}

	if isTanyao(d) {
		out = append(out, YakuEntry{ID: YakuTanyao, Name: yakuNames[YakuTanyao], Han: 1})
	}

	switch suitPurity(cl.full) {
	case purityHonitsu:
		han := 2
		if cl.isClosed {
			han = 3
		}
		out = append(out, YakuEntry{ID: YakuHonitsu, Name: yakuNames[YakuHonitsu], Han: han})
	case purityChinitsu:
		han := 5
		if cl.isClosed {
			han = 6
		}
		out = append(out, YakuEntry{ID: YakuChinitsu, Name: yakuNames[YakuChinitsu], Han: han})
	}

	if isToitoi(d) {
		out = append(out, YakuEntry{ID: YakuToitoi, Name: yakuNames[YakuToitoi], Han: 2})
	}

	for _, m := range d.Melds {
		if !m.IsTriplet() && !m.IsKong() {
			continue
		}
		han := yakuhaiHan(m.Index0(), ctx)
		for i := 0; i < han; i++ {
			out = append(out, YakuEntry{ID: YakuYakuhai, Name: yakuNames[YakuYakuhai], Han: 1})
		}
	}

	if cl.totalKongs == 3 {
		out = append(out, YakuEntry{ID: YakuSanKantsu, Name: yakuNames[YakuSanKantsu], Han: 2})
	}

	if isPinfu(cl, ctx, d) {
		out = append(out, YakuEntry{ID: YakuPinfu, Name: yakuNames[YakuPinfu], Han: 1})
	}

	return out
}

// yakuhaiHan returns how many han a dragon/wind triplet-or-kong is worth:
// 1 for a dragon, 1 for matching seat wind, 1 for matching round wind —
// stackable, so a double-wind meld (seat wind == round wind == tile) is
// worth 2, matching the stacking spec.md §4.6 already requires of pair-fu.
func yakuhaiHan(tile Index, ctx ScoringContext) int {
	han := 0
	if isDragon(tile) {
		han++
	}
	if tile == ctx.SeatWind {
		han++
	}
	if tile == ctx.RoundWind {
		han++
	}
	return han
}

func isTanyao(d Decomposition) bool {
	if IsTerminalOrHonour(d.Pair) {
		return false
	}
	for _, m := range d.Melds {
		for _, t := range m.Tiles {
			if IsTerminalOrHonour(t) {
				return false
			}
		}
	}
	return true
}

type purity int

const (
	purityMixed purity = iota
	purityHonitsu
	purityChinitsu
)

// suitPurity classifies a full hand as Honitsu (one suit plus honours),
// Chinitsu (one suit, no honours), or neither.
func suitPurity(full Counts) purity {
	suit := -1
	hasHonour := false
	for i := Index(0); i < numIndices; i++ {
		if full[i] == 0 {
			continue
		}
		if IsHonour(i) {
			hasHonour = true
			continue
		}
		s := SuitOf(i)
		if suit == -1 {
			suit = s
		} else if suit != s {
			return purityMixed
		}
	}
	if suit == -1 {
		return purityMixed
	}
	if hasHonour {
		return purityHonitsu
	}
	return purityChinitsu
}

func isToitoi(d Decomposition) bool {
	for _, m := range d.Melds {
		if m.IsSequence() {
			return false
		}
	}
	return true
}

// isPinfu approximates spec.md §4.6/§9(b): closed hand, every meld a
// sequence, the pair not a dragon/seat/round wind, and the wait
// contributes zero wait-fu. This is a deliberate approximation of the
// true two-sided-wait test (see calcWaitFu) — flagged in spec.md §9, not
// patched: a single-suit pair wait on a non-yakuhai pair can be
// mis-classified in edge shapes.
func isPinfu(cl *claim, ctx ScoringContext, d Decomposition) bool {
	if !cl.isClosed {
		return false
	}
	for _, m := range d.Melds {
		if !m.IsSequence() {
			return false
		}
	}
	if isDragon(d.Pair) || d.Pair == ctx.SeatWind || d.Pair == ctx.RoundWind {
		return false
	}
	return calcWaitFu(d, ctx.WinTile.Index) == 0
}
