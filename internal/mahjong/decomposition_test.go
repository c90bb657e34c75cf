package mahjong_test

import (
	"testing"

	"riichi/internal/mahjong"
)

func TestDecompose_TilesSumToOriginalVector(t *testing.T) {
	free := countsOf(t, "1m 2m 3m 1m 2m 3m 4p 5p 6p 7s 8s 9s E E")
	decomps := mahjong.Decompose(free, nil)
	if len(decomps) == 0 {
		t.Fatalf("expected at least one decomposition")
	}
	for _, d := range decomps {
		var sum mahjong.Counts
		sum[d.Pair] += 2
		for _, m := range d.Melds {
			if m.IsSequence() {
				sum[m.Tiles[0]]++
				sum[m.Tiles[1]]++
				sum[m.Tiles[2]]++
				continue
			}
			n := uint8(3)
			if m.IsKong() {
				n = 4
			}
			sum[m.Tiles[0]] += n
		}
		if sum != free {
			t.Fatalf("decomposition tiles do not sum back to the original vector: got %+v want %+v", sum, free)
		}
	}
}

func TestDecompose_DeduplicatesEquivalentOrderings(t *testing.T) {
	// 1m2m3m repeated twice can only be read as two identical sequences;
	// Decompose must not emit the same (pair, meld-set) twice just because
	// the free search can reach it via two extraction orders.
	free := countsOf(t, "1m 2m 3m 1m 2m 3m 4p 5p 6p 7s 8s 9s E E")
	decomps := mahjong.Decompose(free, nil)
	seen := map[string]int{}
	for _, d := range decomps {
		key := decompositionSignature(d)
		seen[key]++
		if seen[key] > 1 {
			t.Fatalf("duplicate decomposition emitted: %s", key)
		}
	}
}

func TestDecompose_AmbiguousShapeYieldsMultipleReadings(t *testing.T) {
	// 111222333m reads as either three sequences (123 123 123) or three
	// triplets (111 222 333); plus a 4p5p6p run and an E pair, that
	// ambiguity must surface as two distinct decompositions.
	free := countsOf(t, "1m 1m 1m 2m 2m 2m 3m 3m 3m 4p 5p 6p E E")
	decomps := mahjong.Decompose(free, nil)
	if len(decomps) < 2 {
		t.Fatalf("expected the classic sequence/triplet ambiguity to yield >=2 readings, got %d", len(decomps))
	}
}

func TestDecompose_RespectsFixedMelds(t *testing.T) {
	// Two melds already called elsewhere; the free portion only needs a
	// pair plus two more melds, but every emitted Decomposition must still
	// report all 4 melds (fixed ones included).
	calledChi := mahjong.Meld{Kind: mahjong.MeldSequence, Open: mahjong.Open, Tiles: [3]mahjong.Index{mahjong.Man1, mahjong.Man2, mahjong.Man3}}
	calledPon := mahjong.Meld{Kind: mahjong.MeldTriplet, Open: mahjong.Open, Tiles: [3]mahjong.Index{mahjong.South, mahjong.South, mahjong.South}}
	fixed := []mahjong.Meld{calledChi, calledPon}

	free := countsOf(t, "4p 5p 6p 7s 8s 9s E E")
	decomps := mahjong.Decompose(free, fixed)
	if len(decomps) == 0 {
		t.Fatalf("expected at least one decomposition")
	}
	for _, d := range decomps {
		if len(d.Melds) != 4 {
			t.Fatalf("expected exactly 4 melds total including the 2 fixed, got %d", len(d.Melds))
		}
	}
}

// decompositionSignature is a test-local canonicalisation independent of
// Decompose's internal key format, used only to detect accidental dupes.
func decompositionSignature(d mahjong.Decomposition) string {
	s := string(rune('a' + int(d.Pair)))
	tiles := make([]int, 0, len(d.Melds))
	for _, m := range d.Melds {
		tiles = append(tiles, int(m.Index0())*10+int(m.Kind))
	}
	for i := 1; i < len(tiles); i++ {
		for j := i; j > 0 && tiles[j] < tiles[j-1]; j-- {
			tiles[j], tiles[j-1] = tiles[j-1], tiles[j]
		}
	}
	for _, v := range tiles {
		s += string(rune('A' + v%26))
	}
	return s
}
