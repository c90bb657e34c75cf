package mahjong

// WaitSet is the per-archetype and union result of wait enumeration,
// per spec.md §3: each archetype's tiles sorted by (suit-or-honour
// ordinal, numeric rank), plus their union.
type WaitSet struct {
	Standard        []Index
	SevenPairs      []Index
	ThirteenOrphans []Index
	Union           []Index
}

// IsTenpai reports whether any archetype has at least one wait.
func (w WaitSet) IsTenpai() bool { return len(w.Union) > 0 }

// Waits implements spec.md §4.4: for a 13-count vector, brute-force each
// of the 34 tile indices with count < 4, add one copy, test agari under
// each archetype, and record the completing tile. This is the reference
// oracle the decomposition/shanten paths are checked against (invariant 2
// in spec.md §8).
func Waits(c Counts, fixedMelds int) (WaitSet, error) {
	want := 13 - 3*fixedMelds
	if c.Total() != want {
		return WaitSet{}, newErr(ErrHandLengthMismatch, "wait enumeration requires a concealed portion of 13-3*fixedMelds tiles")
	}

	var ws WaitSet
	seen := make(map[Index]bool, 34)

	for t := Index(0); t < numIndices; t++ {
		if c[t] >= 4 {
			continue
		}
		work := c.add(t, 1)

		if fixedMelds == 0 {
			if IsAgariStandard(work, 0) {
				ws.Standard = append(ws.Standard, t)
			}
			if IsAgariChiitoi(work) {
				ws.SevenPairs = append(ws.SevenPairs, t)
			}
			if IsAgariKokushi(work) {
				ws.ThirteenOrphans = append(ws.ThirteenOrphans, t)
			}
		} else if IsAgariStandard(work, fixedMelds) {
			ws.Standard = append(ws.Standard, t)
		}

		if (fixedMelds == 0 && (IsAgariStandard(work, 0) || IsAgariChiitoi(work) || IsAgariKokushi(work))) ||
			(fixedMelds > 0 && IsAgariStandard(work, fixedMelds)) {
			if !seen[t] {
				seen[t] = true
				ws.Union = append(ws.Union, t)
			}
		}
	}

	ws.Standard = SortTiles(ws.Standard)
	ws.SevenPairs = SortTiles(ws.SevenPairs)
	ws.ThirteenOrphans = SortTiles(ws.ThirteenOrphans)
	ws.Union = SortTiles(ws.Union)
	return ws, nil
}

// Ukeire counts the total number of live (undrawn) tiles across a wait
// set: four copies per wait, minus the copies held in c, minus a 34-slot
// tally of tiles visible elsewhere (discards, dora indicators, melds). A
// nil visible tally assumes none of the remaining copies have been seen.
func Ukeire(c Counts, waits []Index, visible *[34]uint8) int {
	total := 0
	for _, idx := range waits {
		remaining := 4 - int(c[idx])
		if visible != nil {
			remaining -= int(visible[idx])
		}
		if remaining > 0 {
			total += remaining
		}
	}
	return total
}
