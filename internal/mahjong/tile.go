// Package mahjong implements the analytical core of a Riichi Mahjong hand
// evaluator: tile codec, shanten, agari, wait enumeration, decomposition
// and scoring. Every exported entry point is a pure function over its
// arguments; none of it touches the filesystem, the network, or any
// package-level mutable state.
package mahjong

import (
	"strings"
)

// Index identifies one of the 34 tile kinds. Slots 0-8 are characters
// (man) 1-9, 9-17 are circles (pin) 1-9, 18-26 are bamboos (sou) 1-9, and
// 27-33 are the seven honours East, South, West, North, White, Green, Red.
type Index int

const (
	Man1 Index = iota
	Man2
	Man3
	Man4
	Man5
	Man6
	Man7
	Man8
	Man9
	Pin1
	Pin2
	Pin3
	Pin4
	Pin5
	Pin6
	Pin7
	Pin8
	Pin9
	So1
	So2
	So3
	So4
	So5
	So6
	So7
	So8
	So9
	East
	South
	West
	North
	White
	Green
	Red

	numIndices = 34
)

// honourOrdinal gives the sort ordinal used by Wait set output: numbered
// suits sort by suit group first (man, pin, sou), honours sort last in
// their fixed wind/dragon order.
func honourOrdinal(idx Index) int {
	switch {
	case idx >= Man1 && idx <= Man9:
		return 0
	case idx >= Pin1 && idx <= Pin9:
		return 1
	case idx >= So1 && idx <= So9:
		return 2
	default:
		return 3
	}
}

// IsNumbered reports whether idx belongs to a numbered suit (man/pin/sou).
func IsNumbered(idx Index) bool { return idx >= Man1 && idx <= So9 }

// IsHonour reports whether idx is one of the seven honour tiles.
func IsHonour(idx Index) bool { return idx >= East && idx <= Red }

// SuitOf returns a suit ordinal for numbered tiles (0=man,1=pin,2=sou) and
// -1 for honours.
func SuitOf(idx Index) int {
	switch {
	case idx >= Man1 && idx <= Man9:
		return 0
	case idx >= Pin1 && idx <= Pin9:
		return 1
	case idx >= So1 && idx <= So9:
		return 2
	default:
		return -1
	}
}

// Rank returns the 1-9 numeric rank of a numbered tile within its suit.
func Rank(idx Index) int {
	switch SuitOf(idx) {
	case 0:
		return int(idx-Man1) + 1
	case 1:
		return int(idx-Pin1) + 1
	case 2:
		return int(idx-So1) + 1
	default:
		return 0
	}
}

// terminalHonour is the fixed set named in spec.md §3.
var terminalHonour = map[Index]bool{
	Man1: true, Man9: true,
	Pin1: true, Pin9: true,
	So1: true, So9: true,
	East: true, South: true, West: true, North: true,
	White: true, Green: true, Red: true,
}

// IsTerminalOrHonour reports membership in the constant terminal-and-honour set.
func IsTerminalOrHonour(idx Index) bool { return terminalHonour[idx] }

// Tile is one physical tile token: an index plus whether it is the red-five
// variant. Red fives are distinct tokens that share the index of the
// five-of-suit (Man5/Pin5/So5) but are scoring-distinct (aka-dora).
type Tile struct {
	Index Index
	Red   bool
}

func (t Tile) isRedCapable() bool {
	return t.Index == Man5 || t.Index == Pin5 || t.Index == So5
}

// String renders the canonical (non-red) token, e.g. "5m", "E".
func (t Tile) String() string { return indexToToken(t.Index) }

// RedString renders the token as typed, preserving the red-five "0" form.
func (t Tile) RedString() string {
	if t.Red && t.isRedCapable() {
		return "0" + string(suitLetter(t.Index))
	}
	return t.String()
}

var honourLetters = map[Index]byte{
	East: 'E', South: 'S', West: 'W', North: 'N',
	White: 'P', Green: 'F', Red: 'C',
}

var letterToHonour = map[byte]Index{
	'E': East, 'S': South, 'W': West, 'N': North,
	'P': White, 'F': Green, 'C': Red,
}

func suitLetter(idx Index) byte {
	switch SuitOf(idx) {
	case 0:
		return 'm'
	case 1:
		return 'p'
	case 2:
		return 's'
	default:
		return 0
	}
}

func indexToToken(idx Index) string {
	if IsHonour(idx) {
		return string(honourLetters[idx])
	}
	return string(rune('0'+Rank(idx))) + string(suitLetter(idx))
}

// IndexToTile is the inverse of TileToIndex on the canonical alphabet: it
// never produces a red-five token.
func IndexToTile(idx Index) (Tile, error) {
	if idx < 0 || idx >= numIndices {
		return Tile{}, &Error{Kind: ErrMalformedTile, Message: "index out of range"}
	}
	return Tile{Index: idx}, nil
}

// TileToIndex returns the 0..33 index of a tile, ignoring red-five status.
func TileToIndex(t Tile) Index { return t.Index }

// ParseOpts controls Parse's handling of the red-five tokens 0m/0p/0s.
type ParseOpts struct {
	// KeepRed, when true, preserves 0m/0p/0s as distinct red tokens.
	// When false (the default), they normalise to 5m/5p/5s.
	KeepRed bool
}

// Parse splits text on whitespace and commas and converts each token to a
// Tile. Unknown tokens fail with ErrMalformedTile. Normalisation is
// idempotent: Parse(Format(toks)) reproduces toks on the canonical alphabet.
func Parse(text string, opts ParseOpts) ([]Tile, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	out := make([]Tile, 0, len(fields))
	for _, f := range fields {
		tile, err := parseToken(f, opts)
		if err != nil {
			return nil, err
		}
		out = append(out, tile)
	}
	return out, nil
}

func parseToken(tok string, opts ParseOpts) (Tile, error) {
	if len(tok) == 1 {
		if idx, ok := letterToHonour[tok[0]]; ok {
			return Tile{Index: idx}, nil
		}
		return Tile{}, malformed(tok)
	}
	if len(tok) == 2 {
		d := tok[0]
		suit := tok[1]
		if d < '0' || d > '9' {
			return Tile{}, malformed(tok)
		}
		var base Index
		switch suit {
		case 'm':
			base = Man1
		case 'p':
			base = Pin1
		case 's':
			base = So1
		default:
			return Tile{}, malformed(tok)
		}
		if d == '0' {
			five := base + 4
			if opts.KeepRed {
				return Tile{Index: five, Red: true}, nil
			}
			return Tile{Index: five}, nil
		}
		rank := int(d - '0')
		if rank < 1 || rank > 9 {
			return Tile{}, malformed(tok)
		}
		return Tile{Index: base + Index(rank-1)}, nil
	}
	return Tile{}, malformed(tok)
}

func malformed(tok string) error {
	return &Error{Kind: ErrMalformedTile, Message: "malformed tile token: " + tok}
}

// Format renders tiles back to their whitespace-separated token form,
// preserving red-five markers.
func Format(tiles []Tile) string {
	parts := make([]string, len(tiles))
	for i, t := range tiles {
		parts[i] = t.RedString()
	}
	return strings.Join(parts, " ")
}

// Counts is a fixed-length 34-slot multiset of tiles, each entry in 0..4.
type Counts [numIndices]uint8

// ToCounts accumulates a tile list into a count vector. It does not check
// the four-copy limit; callers needing that validation use CountsWithLimit.
func ToCounts(tiles []Tile) Counts {
	var c Counts
	for _, t := range tiles {
		c[t.Index]++
	}
	return c
}

// CountsWithLimit is ToCounts plus the four-copy-per-tile invariant check.
func CountsWithLimit(tiles []Tile) (Counts, error) {
	c := ToCounts(tiles)
	for i, n := range c {
		if n > 4 {
			return c, &Error{Kind: ErrTileOverCount, Message: "more than four copies of " + indexToToken(Index(i))}
		}
	}
	return c, nil
}

// Total returns the sum of all slots.
func (c Counts) Total() int {
	n := 0
	for _, v := range c {
		n += int(v)
	}
	return n
}

// sub returns c with n copies of idx removed; the caller must ensure
// c[idx] >= n.
func (c Counts) sub(idx Index, n uint8) Counts {
	c[idx] -= n
	return c
}

func (c Counts) add(idx Index, n uint8) Counts {
	c[idx] += n
	return c
}

// key packs the count vector plus an auxiliary integer (fixed meld count,
// or whatever the caller needs folded into the cache key) into a short
// string suitable as a map key.
func (c Counts) key(aux int) string {
	var b [numIndices + 1]byte
	for i := 0; i < numIndices; i++ {
		b[i] = c[i]
	}
	b[numIndices] = byte(aux)
	return string(b[:])
}

// SortTiles orders tiles by (suit-or-honour ordinal, numeric rank), the
// ordering used for wait sets.
func SortTiles(tiles []Index) []Index {
	out := make([]Index, len(tiles))
	copy(out, tiles)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0; j-- {
			if less(out[j], out[j-1]) {
				out[j], out[j-1] = out[j-1], out[j]
			} else {
				break
			}
		}
	}
	return out
}

func less(a, b Index) bool {
	oa, ob := honourOrdinal(a), honourOrdinal(b)
	if oa != ob {
		return oa < ob
	}
	return a < b
}
