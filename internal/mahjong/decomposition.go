package mahjong

// Decomposition is a pair index plus exactly four melds (spec.md §3).
// Fixed melds supplied by the caller (declared kongs, open furo) are
// appended to every emitted decomposition; the remaining melds are
// produced by the free-search below. Decompositions are compared as sets:
// two decompositions differing only in meld order are equivalent, so
// Decompose deduplicates by (pair, sorted meld set).
type Decomposition struct {
	Pair  Index
	Melds []Meld // fixed melds first, then the free melds found by search, in ascending order
}

// Decompose enumerates every standard winning decomposition of a 14-count
// vector, per spec.md §4.5. fixed names melds already pulled out by the
// caller (buildClaim); free is the count vector of what remains to be
// partitioned into a pair plus (4-len(fixed)) melds. free must already
// have the fixed melds' tiles subtracted (buildClaim guarantees this via
// claim.free).
func Decompose(free Counts, fixed []Meld) []Decomposition {
	need := 4 - len(fixed)
	if need < 0 {
		return nil
	}

	var out []Decomposition
	seen := map[string]bool{}

	for p := Index(0); p < numIndices; p++ {
		if free[p] < 2 {
			continue
		}
		work := free.sub(p, 2)
		var melds []Meld
		searchMelds(&work, need, &melds, func(found []Meld) {
			d := Decomposition{Pair: p, Melds: append(append([]Meld(nil), fixed...), found...)}
			key := decompKey(d)
			if !seen[key] {
				seen[key] = true
				out = append(out, d)
			}
		})
	}
	return out
}

// searchMelds is the enumerating twin of agari.go's canFormMelds: instead
// of stopping at the first success, it walks every extraction order and
// invokes emit once per complete partition.
func searchMelds(c *Counts, need int, acc *[]Meld, emit func([]Meld)) {
	if need == 0 {
		if firstNonZero(c) < 0 {
			emit(*acc)
		}
		return
	}
	i := firstNonZero(c)
	if i < 0 {
		return
	}
	idx := Index(i)

	if c[idx] >= 3 {
		*c = c.sub(idx, 3)
		*acc = append(*acc, newTripletMeld(idx, Closed))
		searchMelds(c, need-1, acc, emit)
		*acc = (*acc)[:len(*acc)-1]
		*c = c.add(idx, 3)
	}

	if canStartSequence(idx) && c[idx] > 0 && c[idx+1] > 0 && c[idx+2] > 0 {
		*c = c.sub(idx, 1).sub(idx+1, 1).sub(idx+2, 1)
		m, err := newSequenceMeld(idx, Closed)
		if err == nil {
			*acc = append(*acc, m)
			searchMelds(c, need-1, acc, emit)
			*acc = (*acc)[:len(*acc)-1]
		}
		*c = c.add(idx, 1).add(idx+1, 1).add(idx+2, 1)
	}
}

func decompKey(d Decomposition) string {
	melds := append([]Meld(nil), d.Melds...)
	for i := 1; i < len(melds); i++ {
		for j := i; j > 0 && meldLess(melds[j], melds[j-1]); j-- {
			melds[j], melds[j-1] = melds[j-1], melds[j]
		}
	}
	b := make([]byte, 0, 2+4*len(melds))
	b = append(b, byte(d.Pair))
	for _, m := range melds {
		b = append(b, byte(m.Kind), byte(m.Open), byte(m.Tiles[0]))
	}
	return string(b)
}

func meldLess(a, b Meld) bool {
	if a.Tiles[0] != b.Tiles[0] {
		return a.Tiles[0] < b.Tiles[0]
	}
	if a.Kind != b.Kind {
		return a.Kind < b.Kind
	}
	return a.Open < b.Open
}
