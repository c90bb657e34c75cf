package mahjong

// MeldKind tags the three meld shapes of spec.md §3.
type MeldKind int

const (
	MeldSequence MeldKind = iota
	MeldTriplet
	MeldKong
)

// Openness tags whether a meld was revealed via a call on an opponent's
// discard (Open) or kept concealed (Closed).
type Openness int

const (
	Closed Openness = iota
	Open
)

// Meld is a tagged record: kind, openness, and the three indices of the
// meld. For a kong all three slots hold the same index (the kong is
// "stored as the triplet of that index", per spec.md §3); Kind (MeldKong)
// is what lets fu computation tell a kong from a triplet.
type Meld struct {
	Kind  MeldKind
	Open  Openness
	Tiles [3]Index
}

// Index0 returns the meld's defining tile (its lowest sequence tile, or
// its triplet/kong tile).
func (m Meld) Index0() Index { return m.Tiles[0] }

// IsSequence/IsTriplet/IsKong are small readability helpers used throughout
// the yaku and fu passes.
func (m Meld) IsSequence() bool { return m.Kind == MeldSequence }
func (m Meld) IsTriplet() bool  { return m.Kind == MeldTriplet }
func (m Meld) IsKong() bool     { return m.Kind == MeldKong }

// newSequenceMeld validates the consecutive-single-suit invariant from
// spec.md §3 (no wrap across the 1-9 boundary) before constructing a Meld.
func newSequenceMeld(low Index, open Openness) (Meld, error) {
	if !canStartSequence(low) {
		return Meld{}, newErr(ErrInvalidMeld, "sequence cannot start at "+indexToToken(low))
	}
	return Meld{Kind: MeldSequence, Open: open, Tiles: [3]Index{low, low + 1, low + 2}}, nil
}

func newTripletMeld(idx Index, open Openness) Meld {
	return Meld{Kind: MeldTriplet, Open: open, Tiles: [3]Index{idx, idx, idx}}
}

func newKongMeld(idx Index, open Openness) Meld {
	return Meld{Kind: MeldKong, Open: open, Tiles: [3]Index{idx, idx, idx}}
}

// tilesUsed returns the count-vector contribution of this meld: 3 tiles
// for sequence/triplet, 4 for kong.
func (m Meld) tilesUsed() Counts {
	var c Counts
	if m.Kind == MeldSequence {
		c[m.Tiles[0]]++
		c[m.Tiles[1]]++
		c[m.Tiles[2]]++
		return c
	}
	n := uint8(3)
	if m.Kind == MeldKong {
		n = 4
	}
	c[m.Tiles[0]] += n
	return c
}

// classifyOpenMeld interprets three tiles pulled from the tail of
// hand_tiles as either a pon (identical triplet) or a chi (consecutive
// single-suit run), per spec.md §4.6 step 2. It fails with ErrInvalidMeld
// if the three tiles form neither.
func classifyOpenMeld(tiles [3]Tile) (Meld, error) {
	a, b, c := tiles[0].Index, tiles[1].Index, tiles[2].Index
	if a == b && b == c {
		return newTripletMeld(a, Open), nil
	}
	sorted := []Index{a, b, c}
	for i := 1; i < 3; i++ {
		for j := i; j > 0 && sorted[j] < sorted[j-1]; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	if sameSuit(sorted[0], sorted[1]) && sameSuit(sorted[1], sorted[2]) &&
		sorted[1] == sorted[0]+1 && sorted[2] == sorted[0]+2 {
		return newSequenceMeld(sorted[0], Open)
	}
	return Meld{}, newErr(ErrInvalidMeld, "open meld tiles are neither a valid pon nor a valid chi")
}
