package mahjong_test

import (
	"testing"

	"riichi/internal/mahjong"
)

func TestWaits_RequiresThirteenTiles(t *testing.T) {
	c := countsOf(t, "1m 2m 3m 4p 5p 6p 7s 8s 9s E E")
	if _, err := mahjong.Waits(c, 0); err == nil {
		t.Fatalf("expected ErrHandLengthMismatch for a non-13-tile hand")
	} else if merr, ok := err.(*mahjong.Error); !ok || merr.Kind != mahjong.ErrHandLengthMismatch {
		t.Fatalf("expected ErrHandLengthMismatch, got %v", err)
	}
}

func TestWaits_ShanponWaitsOnBothPairs(t *testing.T) {
	// 1m2m3m 4p5p6p 7s8s9s E E S S: shanpon wait on E or S.
	c := countsOf(t, "1m 2m 3m 4p 5p 6p 7s 8s 9s E E S S")
	ws, err := mahjong.Waits(c, 0)
	if err != nil {
		t.Fatalf("Waits: %v", err)
	}
	if !ws.IsTenpai() {
		t.Fatalf("expected tenpai")
	}
	want := map[mahjong.Index]bool{mahjong.East: true, mahjong.South: true}
	if len(ws.Union) != len(want) {
		t.Fatalf("expected exactly %d waits, got %v", len(want), ws.Union)
	}
	for _, idx := range ws.Union {
		if !want[idx] {
			t.Fatalf("unexpected wait tile %v", idx)
		}
	}
}

func TestWaits_KokushiThirteenWaySpecial(t *testing.T) {
	c := countsOf(t, "1m 9m 1p 9p 1s 9s E S W N P F")
	c2 := c
	c2[mahjong.Red]++ // 13 distinct terminals/honours, no pair yet: the 13-way kokushi wait
	ws, err := mahjong.Waits(c2, 0)
	if err != nil {
		t.Fatalf("Waits: %v", err)
	}
	if len(ws.ThirteenOrphans) != 13 {
		t.Fatalf("expected all 13 terminal/honour kinds as kokushi waits, got %d", len(ws.ThirteenOrphans))
	}
}

func TestWaits_FixedMeldsExcludesNonStandardArchetypes(t *testing.T) {
	// Two melds already fixed elsewhere: the free portion is 13-3*2=7 tiles.
	c := countsOf(t, "1m 2m 3m 4p 5p E E")
	ws, err := mahjong.Waits(c, 2)
	if err != nil {
		t.Fatalf("Waits: %v", err)
	}
	if len(ws.SevenPairs) != 0 || len(ws.ThirteenOrphans) != 0 {
		t.Fatalf("fixedMelds>0 must exclude seven-pairs/kokushi waits entirely")
	}
}

func TestUkeire_SubtractsVisibleAndHeldCopies(t *testing.T) {
	waits := []mahjong.Index{mahjong.East}
	var held mahjong.Counts
	held[mahjong.East] = 1
	if got := mahjong.Ukeire(held, waits, nil); got != 3 {
		t.Fatalf("expected 3 live copies with one held, got %d", got)
	}

	var visible [34]uint8
	visible[mahjong.East] = 2
	if got := mahjong.Ukeire(held, waits, &visible); got != 1 {
		t.Fatalf("expected 1 live copy after subtracting held+visible, got %d", got)
	}
}
