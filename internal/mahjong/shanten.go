package mahjong

// Evaluator holds memoisation tables scoped to a single evaluation. It is
// constructed fresh by each top-level entry point that uses one (ShantenOf,
// AgariOf) and discarded when that call returns, so cached state never leaks
// between hands of different composition — a narrower scope than the
// teacher's long-lived *Searcher (constructed once per server process and
// shared across every hand it ever evaluates), chosen to satisfy spec.md
// §5's "caches must not leak semantic state across evaluations."
type Evaluator struct {
	shanten map[string]int
	agari   map[string]bool
}

// NewEvaluator returns a ready-to-use, empty Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		shanten: make(map[string]int, 256),
		agari:   make(map[string]bool, 256),
	}
}

// ShantenResult bundles the three archetype shanten numbers and their
// minimum, per spec.md §3.
type ShantenResult struct {
	Standard      int
	SevenPairs    int
	ThirteenOrphans int
	Min           int
}

// Shanten computes the full ShantenResult for a count vector. fixedMelds
// is the number of melds already set aside (open furo + declared kongs);
// when fixedMelds > 0 the seven-pairs and thirteen-orphans archetypes are
// excluded, since neither admits any open meld.
func (e *Evaluator) Shanten(c Counts, fixedMelds int) ShantenResult {
	std := e.shantenStandard(c, fixedMelds)
	res := ShantenResult{Standard: std, SevenPairs: 99, ThirteenOrphans: 99, Min: std}
	if fixedMelds == 0 {
		res.SevenPairs = ShantenSevenPairs(c)
		res.ThirteenOrphans = ShantenThirteenOrphans(c)
		if res.SevenPairs < res.Min {
			res.Min = res.SevenPairs
		}
		if res.ThirteenOrphans < res.Min {
			res.Min = res.ThirteenOrphans
		}
	}
	if res.Min < 0 {
		res.Min = 0
	}
	return res
}

// ShantenSevenPairs implements spec.md §4.2: shanten = 6 - p + max(0, 7-u)
// where p = min(7, sum floor(c_i/2)) and u = count of distinct occupied
// slots. The second term penalises duplicate concentration: seven-pairs
// requires seven *distinct* pairs.
func ShantenSevenPairs(c Counts) int {
	pairs := 0
	distinct := 0
	for _, n := range c {
		pairs += int(n) / 2
		if n > 0 {
			distinct++
		}
	}
	if pairs > 7 {
		pairs = 7
	}
	sh := 6 - pairs
	if distinct < 7 {
		sh += 7 - distinct
	}
	return sh
}

// ShantenThirteenOrphans implements spec.md §4.2: shanten = 13 - u - h
// where u = distinct terminal-honour slots occupied and h = 1 if any
// terminal-honour slot holds a pair.
func ShantenThirteenOrphans(c Counts) int {
	unique := 0
	hasPair := 0
	for idx := range terminalHonour {
		if c[idx] > 0 {
			unique++
			if c[idx] >= 2 {
				hasPair = 1
			}
		}
	}
	return 13 - unique - hasPair
}

// shantenStandard implements spec.md §4.2's standard-shape search. For a
// 14-tile vector it takes the minimum, over every single-tile removal, of
// the 13-tile shanten (this collapses to tenpai/agari detection: a
// winning 14-count has some removal that is tenpai, so it reports 0 rather
// than -1, per spec.md §3). For a 13-tile vector it runs the recursive DFS directly.
func (e *Evaluator) shantenStandard(c Counts, fixedMelds int) int {
	total := c.Total()
	if total == 14 {
		best := 99
		for i := Index(0); i < numIndices; i++ {
			if c[i] == 0 {
				continue
			}
			work := c.sub(i, 1)
			if v := e.shanten13(work, fixedMelds); v < best {
				best = v
			}
		}
		if best < 0 {
			best = 0
		}
		return best
	}
	return e.shanten13(c, fixedMelds)
}

func (e *Evaluator) shanten13(c Counts, fixedMelds int) int {
	key := c.key(fixedMelds)
	if v, ok := e.shanten[key]; ok {
		return v
	}
	best := 8
	work := c
	// m starts at fixedMelds: open furo and declared kongs already count
	// as completed melds before the free search begins.
	dfsShanten(&work, fixedMelds, 0, 0, &best)
	e.shanten[key] = best
	return best
}

// dfsShanten is the actual recursive search: at the lowest non-zero slot
// it branches over (a) skip an isolated tile, (b) extract a triplet,
// (c) extract a sequence (numbered suits only), (d) take the pair (once),
// (e) take a taatsu (a second pair, or an adjacent or one-gap suited
// two-tile shape; honours only form the pair kind), exactly the five branches
// spec.md §4.2 names.
func dfsShanten(c *Counts, m, p, t int, best *int) {
	if m > 4 {
		return
	}

	t2 := t
	if limit := 4 - m; t2 > limit {
		t2 = limit
	}
	sh := 8 - 2*m - t2 - p
	if sh < *best {
		*best = sh
	}

	i := firstNonZero(c)
	if i < 0 {
		return
	}
	idx := Index(i)

	if IsHonour(idx) {
		if c[idx] >= 3 {
			*c = c.sub(idx, 3)
			dfsShanten(c, m+1, p, t, best)
			*c = c.add(idx, 3)
		}
		if p == 0 && c[idx] >= 2 {
			*c = c.sub(idx, 2)
			dfsShanten(c, m, 1, t, best)
			*c = c.add(idx, 2)
		}
		if t < 4-m && c[idx] >= 2 {
			*c = c.sub(idx, 2)
			dfsShanten(c, m, p, t+1, best)
			*c = c.add(idx, 2)
		}
		*c = c.sub(idx, 1)
		dfsShanten(c, m, p, t, best)
		*c = c.add(idx, 1)
		return
	}

	if c[idx] >= 3 {
		*c = c.sub(idx, 3)
		dfsShanten(c, m+1, p, t, best)
		*c = c.add(idx, 3)
	}

	if canStartSequence(idx) && c[idx] > 0 && c[idx+1] > 0 && c[idx+2] > 0 {
		*c = c.sub(idx, 1).sub(idx+1, 1).sub(idx+2, 1)
		dfsShanten(c, m+1, p, t, best)
		*c = c.add(idx, 1).add(idx+1, 1).add(idx+2, 1)
	}

	if p == 0 && c[idx] >= 2 {
		*c = c.sub(idx, 2)
		dfsShanten(c, m, 1, t, best)
		*c = c.add(idx, 2)
	}

	if t < 4-m {
		if c[idx] >= 2 {
			*c = c.sub(idx, 2)
			dfsShanten(c, m, p, t+1, best)
			*c = c.add(idx, 2)
		}
		if sameSuit(idx, idx+1) && c[idx] > 0 && c[idx+1] > 0 {
			*c = c.sub(idx, 1).sub(idx+1, 1)
			dfsShanten(c, m, p, t+1, best)
			*c = c.add(idx, 1).add(idx+1, 1)
		}
		if sameSuit(idx, idx+2) && c[idx] > 0 && c[idx+2] > 0 {
			*c = c.sub(idx, 1).sub(idx+2, 1)
			dfsShanten(c, m, p, t+1, best)
			*c = c.add(idx, 1).add(idx+2, 1)
		}
	}

	*c = c.sub(idx, 1)
	dfsShanten(c, m, p, t, best)
	*c = c.add(idx, 1)
}

func firstNonZero(c *Counts) int {
	for k := 0; k < numIndices; k++ {
		if c[k] > 0 {
			return k
		}
	}
	return -1
}

func sameSuit(a, b Index) bool {
	if b >= numIndices {
		return false
	}
	return SuitOf(a) >= 0 && SuitOf(a) == SuitOf(b)
}

// canStartSequence reports whether idx can be the low tile of a
// consecutive three-tile run without crossing a suit boundary (the
// 1-9 wrap-around is never allowed, per the Meld invariant in spec.md §3).
func canStartSequence(idx Index) bool {
	if !IsNumbered(idx) {
		return false
	}
	rank := Rank(idx)
	return rank <= 7
}
