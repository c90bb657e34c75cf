package mahjong_test

import (
	"testing"

	"riichi/internal/mahjong"
)

func TestIsAgariStandard_CompleteHand(t *testing.T) {
	c := countsOf(t, "1m 2m 3m 4p 5p 6p 7s 8s 9s 1m 2m 3m E E")
	if !mahjong.IsAgariStandard(c, 0) {
		t.Fatalf("expected complete standard hand to be agari")
	}
}

func TestIsAgariStandard_OneTileShortIsNotAgari(t *testing.T) {
	c := countsOf(t, "1m 2m 3m 4p 5p 6p 7s 8s 9s 1m 2m 3m E")
	c2 := c
	c2[mahjong.South]++
	if mahjong.IsAgariStandard(c2, 0) {
		t.Fatalf("a floating non-matching honour pair should not complete the hand")
	}
}

func TestIsAgariStandard_WithFixedMelds(t *testing.T) {
	// Two melds already called (fixedMelds=2); the free portion only needs
	// a pair plus two more melds to total 14-3*2=8 free tiles.
	c := countsOf(t, "1m 2m 3m 4p 5p 6p E E")
	if !mahjong.IsAgariStandard(c, 2) {
		t.Fatalf("expected agari with two fixed melds already pulled out")
	}
}

func TestIsAgariChiitoi_SevenDistinctPairs(t *testing.T) {
	c := countsOf(t, "1m 1m 2m 2m 3m 3m 4p 4p 5p 5p 6s 6s E E")
	if !mahjong.IsAgariChiitoi(c) {
		t.Fatalf("expected seven distinct pairs to be chiitoi agari")
	}
}

func TestIsAgariChiitoi_QuadDoesNotCountAsTwoPairs(t *testing.T) {
	c := countsOf(t, "1m 1m 1m 1m 2m 2m 3m 3m 4p 4p 5p 5p 6s 6s")
	if mahjong.IsAgariChiitoi(c) {
		t.Fatalf("a quad slot must not satisfy two of the seven required distinct pairs")
	}
}

func TestIsAgariKokushi_AllThirteenPlusPair(t *testing.T) {
	c := countsOf(t, "1m 9m 1p 9p 1s 9s E S W N P F C")
	c2 := c
	c2[mahjong.East]++
	if !mahjong.IsAgariKokushi(c2) {
		t.Fatalf("expected thirteen-orphans agari with a duplicated terminal/honour")
	}
}

func TestIsAgariKokushi_MissingOneTerminalFails(t *testing.T) {
	c := countsOf(t, "1m 9m 1p 9p 1s 9s E S W N P F")
	c2 := c
	c2[mahjong.White] += 2 // 14 tiles, Red dragon still absent
	if mahjong.IsAgariKokushi(c2) {
		t.Fatalf("missing one of the thirteen terminal/honour kinds must not be agari")
	}
}

func TestAgariOf_DelegatesAcrossArchetypes(t *testing.T) {
	chiitoi := countsOf(t, "1m 1m 2m 2m 3m 3m 4p 4p 5p 5p 6s 6s E E")
	if !mahjong.AgariOf(chiitoi, 0) {
		t.Fatalf("AgariOf should recognise a chiitoi-only shape")
	}

	notAgari := countsOf(t, "1m 2m 4m 7p 8p 9p 1s 2s 3s E S W N")
	c := notAgari
	c[mahjong.White]++
	if mahjong.AgariOf(c, 0) {
		t.Fatalf("a disconnected hand must not be reported as agari")
	}
}
