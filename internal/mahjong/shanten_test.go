package mahjong_test

import (
	"testing"

	"riichi/internal/mahjong"
)

func TestShanten_KokushiTenpai(t *testing.T) {
	c := countsOf(t, "1m 9m 1p 9p 1s 9s E S W N P F C")
	res := mahjong.ShantenOf(c, 0)
	if res.ThirteenOrphans != 0 {
		t.Fatalf("kokushi shanten expected 0, got %d", res.ThirteenOrphans)
	}
	if res.Min != 0 {
		t.Fatalf("min shanten expected 0, got %d", res.Min)
	}
}

func TestShanten_ChiitoiTenpai(t *testing.T) {
	c := countsOf(t, "1m 1m 2m 2m 3m 3m 1p 1p 2p 2p 1s 1s E")
	res := mahjong.ShantenOf(c, 0)
	if res.SevenPairs != 0 {
		t.Fatalf("chiitoi shanten expected 0, got %d", res.SevenPairs)
	}
}

func TestShanten_StandardCompleteHandIsZero(t *testing.T) {
	c := countsOf(t, "1m 2m 3m 1p 2p 3p 1s 2s 3s 7m 8m 9m E E")
	res := mahjong.ShantenOf(c, 0)
	if res.Standard != 0 {
		t.Fatalf("complete standard hand should flatten to shanten 0, got %d", res.Standard)
	}
}

func TestShanten_FixedMeldsExcludesSevenPairsAndKokushi(t *testing.T) {
	// A 13-tile hand that looks kokushi-like, but the caller has already
	// committed to a called meld elsewhere: seven-pairs/kokushi must be
	// reported as impossible (99), not merely absent from Min.
	c := countsOf(t, "1m 9m 1p 9p 1s 9s E S W N P F C")
	res := mahjong.ShantenOf(c, 1)
	if res.SevenPairs != 99 || res.ThirteenOrphans != 99 {
		t.Fatalf("fixedMelds>0 should exclude seven-pairs/kokushi, got %+v", res)
	}
}

func TestShanten_MonotonicAddingTileNeverWorsens(t *testing.T) {
	c := countsOf(t, "1m 2m 3m 1p 2p 3p 1s 2s 3s 7m 8m 9p")
	before := mahjong.ShantenOf(c, 0).Standard
	c2 := c
	c2[mahjong.East]++
	after := mahjong.ShantenOf(c2, 0).Standard
	if after > before {
		t.Fatalf("adding a tile increased standard shanten: before=%d after=%d", before, after)
	}
}
