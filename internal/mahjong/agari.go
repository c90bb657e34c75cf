package mahjong

// IsAgari decides whether a 14-tile count vector (or, with fixedMelds
// already pulled out, a free portion of 14-3*fixedMelds tiles, the pair
// included) is a winning shape under any archetype.
// When fixedMelds > 0, only the standard archetype is checked, since
// seven-pairs and thirteen-orphans never admit an open meld.
func (e *Evaluator) IsAgari(c Counts, fixedMelds int) bool {
	key := c.key(fixedMelds + 100)
	if v, ok := e.agari[key]; ok {
		return v
	}
	var ok bool
	if fixedMelds > 0 {
		ok = IsAgariStandard(c, fixedMelds)
	} else {
		ok = IsAgariStandard(c, 0) || IsAgariChiitoi(c) || IsAgariKokushi(c)
	}
	e.agari[key] = ok
	return ok
}

// IsAgariStandard implements spec.md §4.3: total must be 14 (here,
// 14-3*fixedMelds free tiles), and there must exist a pair index p with
// c[p] >= 2 such that, after removing the pair, every honour slot's count
// is divisible by 3 and the remaining tiles resolve into melds (triplets
// and same-suit sequences).
func IsAgariStandard(c Counts, fixedMelds int) bool {
	need := 4 - fixedMelds
	if need < 0 {
		return false
	}
	for i := Index(0); i < numIndices; i++ {
		if c[i] < 2 {
			continue
		}
		work := c.sub(i, 2)
		if canFormMelds(&work, need) {
			return true
		}
	}
	return false
}

// canFormMelds is the decision-only twin of the decomposition engine's
// search (see decomposition.go): it stops at the first successful
// extraction rather than enumerating every one.
func canFormMelds(c *Counts, need int) bool {
	if need == 0 {
		return firstNonZero(c) < 0
	}
	i := firstNonZero(c)
	if i < 0 {
		return false
	}
	idx := Index(i)

	if c[idx] >= 3 {
		*c = c.sub(idx, 3)
		if canFormMelds(c, need-1) {
			*c = c.add(idx, 3)
			return true
		}
		*c = c.add(idx, 3)
	}

	if canStartSequence(idx) && c[idx] > 0 && c[idx+1] > 0 && c[idx+2] > 0 {
		*c = c.sub(idx, 1).sub(idx+1, 1).sub(idx+2, 1)
		if canFormMelds(c, need-1) {
			*c = c.add(idx, 1).add(idx+1, 1).add(idx+2, 1)
			return true
		}
		*c = c.add(idx, 1).add(idx+1, 1).add(idx+2, 1)
	}

	return false
}

// IsAgariChiitoi implements spec.md §4.3: total = 14 and every slot's
// floor(count/2) sums to 7 (seven distinct pairs). Any slot holding more
// than two tiles is rejected outright, so a quad can never stand in for two
// of the seven pairs.
func IsAgariChiitoi(c Counts) bool {
	if c.Total() != 14 {
		return false
	}
	pairs := 0
	for _, n := range c {
		if n > 2 {
			return false
		}
		pairs += int(n) / 2
	}
	return pairs == 7
}

// IsAgariKokushi implements spec.md §4.3: total = 14, all 13
// terminal-honour slots occupied, and at least one holds >= 2.
func IsAgariKokushi(c Counts) bool {
	if c.Total() != 14 {
		return false
	}
	unique := 0
	pair := false
	for idx := range terminalHonour {
		if c[idx] > 0 {
			unique++
			if c[idx] >= 2 {
				pair = true
			}
		}
	}
	for i := Index(0); i < numIndices; i++ {
		if !IsTerminalOrHonour(i) && c[i] > 0 {
			return false
		}
	}
	return unique == 13 && pair
}
