package mahjong

// Payout is the payment triple of spec.md §6: which slots are populated
// depends on WinType. A ron win only fills Ron; a tsumo win fills
// TsumoFromDealer and TsumoFromNonDealer (only one of the two when the
// winner themselves is the dealer, since then there is no "from dealer"
// leg — see payoutFor).
type Payout struct {
	Ron                int
	TsumoFromDealer    int
	TsumoFromNonDealer int
}

// ScoreBreakdown is the result of Score: the winning yaku/yakuman list,
// han, fu, and resulting payout. Fu is reported as 0 when a yakuman won
// (fu is meaningless once the yakuman cap applies).
type ScoreBreakdown struct {
	WinType    WinType
	IsDealer   bool
	Yaku       []YakuEntry
	Yakuman    []YakumanEntry
	Han        int
	Fu         int
	DoraHan    int
	AkaDoraHan int
	Payout     Payout
}

// Score implements the full pipeline of spec.md §4.6: validate and
// normalise the context, try every short-circuit and decomposition, and
// report the point-maximising reading (step 8). Each call is independent
// and allocates its own Evaluator where one is needed (spec.md §5); Score
// itself needs no shanten/agari cache since it works from a hand already
// claimed to be complete.
func Score(ctx ScoringContext) (*ScoreBreakdown, error) {
	cl, err := buildClaim(ctx)
	if err != nil {
		return nil, err
	}
	if ctx.Riichi && !cl.isClosed {
		return nil, newErr(ErrRiichiRequiresClosed, "riichi requires a closed hand")
	}

	var candidates []candidate
	agariFound := false

	if cl.totalKongs == 4 {
		if pair, ok := isPairOnly(cl.free); ok {
			_ = pair
			candidates = append(candidates, candidate{
				yakuman: []YakumanEntry{{ID: YakumanFourKongs, Name: yakumanNames[YakumanFourKongs], Multiplier: 1}},
			})
			agariFound = true
		}
	}

	if len(cl.fixed) == 0 && IsAgariKokushi(cl.full) {
		candidates = append(candidates, candidate{
			yakuman: []YakumanEntry{{ID: YakumanThirteenOrphans, Name: yakumanNames[YakumanThirteenOrphans], Multiplier: 1}},
		})
		agariFound = true
	}

	if len(cl.fixed) == 0 && IsAgariChiitoi(cl.full) {
		candidates = append(candidates, chiitoiCandidate(cl, ctx))
		agariFound = true
	}

	stdCands, anyDecomp := scoreStandard(cl, ctx)
	agariFound = agariFound || anyDecomp
	candidates = append(candidates, stdCands...)

	if !agariFound {
		return nil, newErr(ErrNoWinningDecomposition, "hand_tiles plus win_tile do not form a complete hand")
	}
	if len(candidates) == 0 {
		return nil, newErr(ErrNoYaku, "hand has no yaku")
	}

	best := candidates[0]
	bestBase := candidateBase(best)
	bestTake := totalTake(payoutFor(bestBase, ctx.IsDealer, ctx.WinType), ctx)
	for _, c := range candidates[1:] {
		base := candidateBase(c)
		take := totalTake(payoutFor(base, ctx.IsDealer, ctx.WinType), ctx)
		if take > bestTake {
			best, bestBase, bestTake = c, base, take
		}
	}

	han, fu := best.han, best.fu
	if len(best.yakuman) > 0 {
		han, fu = 0, 0
	}

	return &ScoreBreakdown{
		WinType:    ctx.WinType,
		IsDealer:   ctx.IsDealer,
		Yaku:       best.yaku,
		Yakuman:    best.yakuman,
		Han:        han,
		Fu:         fu,
		DoraHan:    best.doraHan,
		AkaDoraHan: best.akaHan,
		Payout:     payoutFor(bestBase, ctx.IsDealer, ctx.WinType),
	}, nil
}

// isPairOnly reports whether c contains exactly one tile identity, held
// twice, and nothing else — the shape left over once all four melds of a
// four-kong hand have been pulled out as fixed melds.
func isPairOnly(c Counts) (Index, bool) {
	if c.Total() != 2 {
		return 0, false
	}
	for i := Index(0); i < numIndices; i++ {
		if c[i] == 2 {
			return i, true
		}
	}
	return 0, false
}

// chiitoiCandidate builds the seven-pairs candidate: spec.md §4.6 step 7
// fixes its yaku at 2 han and its fu at 25, with riichi/tsumo stacking as
// ordinary extra yaku (chiitoitsu is always a closed hand).
func chiitoiCandidate(cl *claim, ctx ScoringContext) candidate {
	yaku := []YakuEntry{{ID: YakuChiitoitsu, Name: yakuNames[YakuChiitoitsu], Han: 2}}
	if ctx.Riichi {
		yaku = append(yaku, YakuEntry{ID: YakuRiichi, Name: yakuNames[YakuRiichi], Han: 1})
	}
	if ctx.WinType == Tsumo {
		yaku = append(yaku, YakuEntry{ID: YakuMenzenTsumo, Name: yakuNames[YakuMenzenTsumo], Han: 1})
	}
	if p := suitPurity(cl.full); p == purityHonitsu {
		yaku = append(yaku, YakuEntry{ID: YakuHonitsu, Name: yakuNames[YakuHonitsu], Han: 3})
	} else if p == purityChinitsu {
		yaku = append(yaku, YakuEntry{ID: YakuChinitsu, Name: yakuNames[YakuChinitsu], Han: 6})
	}

	doraHan := doraHanFor(cl, ctx)
	akaHan := akaHanFor(cl)
	han := akaHan + doraHan
	for _, y := range yaku {
		han += y.Han
	}

	return candidate{yaku: yaku, han: han, fu: 25, doraHan: doraHan, akaHan: akaHan}
}

// scoreStandard enumerates every standard decomposition and keeps the
// ones that carry at least one yaku (a complete but yaku-less reading is
// not a valid win under that reading; spec.md §4.6 step 7). It also
// reports whether any decomposition existed at all, so the caller can
// distinguish "no yaku" from "not even a complete hand".
func scoreStandard(cl *claim, ctx ScoringContext) ([]candidate, bool) {
	decomps := Decompose(cl.free, cl.fixed)
	var out []candidate

	for _, d := range decomps {
		yakuman := evalYakuman(cl, ctx, d)

		var yaku []YakuEntry
		hasPinfu := false
		if len(yakuman) == 0 {
			yaku = evalYaku(cl, ctx, d)
			if len(yaku) == 0 {
				continue
			}
			for _, y := range yaku {
				if y.ID == YakuPinfu {
					hasPinfu = true
				}
			}
		}

		doraHan := doraHanFor(cl, ctx)
		akaHan := akaHanFor(cl)

		if len(yakuman) > 0 {
			out = append(out, candidate{decomp: d, yakuman: yakuman, doraHan: doraHan, akaHan: akaHan})
			continue
		}

		han := doraHan + akaHan
		for _, y := range yaku {
			han += y.Han
		}
		fu := calcFu(cl, ctx, d, hasPinfu)
		out = append(out, candidate{decomp: d, yaku: yaku, han: han, fu: fu, doraHan: doraHan, akaHan: akaHan})
	}

	return out, len(decomps) > 0
}

func doraHanFor(cl *claim, ctx ScoringContext) int {
	han := 0
	for _, d := range ctx.DoraTiles {
		han += int(cl.full[d.Index])
	}
	return han
}

func akaHanFor(cl *claim) int {
	han := 0
	for _, n := range cl.redFives {
		han += n
	}
	return han
}

func candidateBase(c candidate) int {
	if len(c.yakuman) > 0 {
		mult := 0
		for _, y := range c.yakuman {
			mult += y.Multiplier
		}
		return 8000 * mult
	}
	return basePoints(c.han, c.fu)
}

// basePoints implements spec.md §6's limit table: mangan at han>=5 (or
// fu-driven mangan at 4han/40fu+ and 3han/70fu+, folded in by the
// base>=2000 check below), haneman at 6-7, baiman at 8-10, sanbaiman at
// 11-12, kazoe yakuman at 13+.
func basePoints(han, fu int) int {
	switch {
	case han >= 13:
		return 8000
	case han >= 11:
		return 6000
	case han >= 8:
		return 4000
	case han >= 6:
		return 3000
	}
	base := fu * (1 << uint(han+2))
	if han >= 5 || base >= 2000 {
		return 2000
	}
	return base
}

// payoutFor turns a base point value into the payment triple, rounding
// each payer's share up to the next 100 (spec.md §6).
func payoutFor(base int, isDealer bool, winType WinType) Payout {
	var p Payout
	switch winType {
	case Ron:
		if isDealer {
			p.Ron = roundUp100(base * 6)
		} else {
			p.Ron = roundUp100(base * 4)
		}
	case Tsumo:
		if isDealer {
			p.TsumoFromNonDealer = roundUp100(base * 2)
		} else {
			p.TsumoFromDealer = roundUp100(base * 2)
			p.TsumoFromNonDealer = roundUp100(base)
		}
	}
	return p
}

func roundUp100(n int) int {
	if n%100 == 0 {
		return n
	}
	return (n/100 + 1) * 100
}

// totalTake is the comparison key used to pick the best-scoring
// decomposition: the winner's total take across all payers.
func totalTake(p Payout, ctx ScoringContext) int {
	if ctx.WinType == Ron {
		return p.Ron
	}
	if ctx.IsDealer {
		return p.TsumoFromNonDealer * 3
	}
	return p.TsumoFromDealer + p.TsumoFromNonDealer*2
}
