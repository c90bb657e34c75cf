package mahjong_test

import (
	"testing"

	"riichi/internal/mahjong"
)

func TestParseFormatRoundTrip(t *testing.T) {
	text := "1m 2m 3m 4p 5p 6p 7s 8s 9s E S W N P F C"
	tiles, err := mahjong.Parse(text, mahjong.ParseOpts{})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if got := mahjong.Format(tiles); got != text {
		t.Fatalf("round trip mismatch: got %q want %q", got, text)
	}
}

func TestParseRedFive(t *testing.T) {
	normalised, err := mahjong.Parse("0m", mahjong.ParseOpts{KeepRed: false})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(normalised) != 1 || normalised[0].Red {
		t.Fatalf("0m without KeepRed should normalise to plain 5m, got %+v", normalised)
	}

	kept, err := mahjong.Parse("0m", mahjong.ParseOpts{KeepRed: true})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(kept) != 1 || !kept[0].Red || kept[0].Index != mahjong.Man5 {
		t.Fatalf("0m with KeepRed should stay red Man5, got %+v", kept)
	}
}

func TestParseMalformedToken(t *testing.T) {
	if _, err := mahjong.Parse("9z", mahjong.ParseOpts{}); err == nil {
		t.Fatalf("expected malformed-tile error for 9z")
	} else if merr, ok := err.(*mahjong.Error); !ok || merr.Kind != mahjong.ErrMalformedTile {
		t.Fatalf("expected ErrMalformedTile, got %v", err)
	}
}

func TestIndexToTileRoundTrip(t *testing.T) {
	for idx := mahjong.Man1; idx <= mahjong.Red; idx++ {
		tile, err := mahjong.IndexToTile(idx)
		if err != nil {
			t.Fatalf("IndexToTile(%d): %v", idx, err)
		}
		if mahjong.TileToIndex(tile) != idx {
			t.Fatalf("round trip failed at index %d", idx)
		}
	}
}

func TestCountsWithLimitRejectsFiveCopies(t *testing.T) {
	tiles, err := mahjong.Parse("1m 1m 1m 1m 1m", mahjong.ParseOpts{})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if _, err := mahjong.CountsWithLimit(tiles); err == nil {
		t.Fatalf("expected ErrTileOverCount for five copies of 1m")
	}
}

func countsOf(t *testing.T, text string) mahjong.Counts {
	t.Helper()
	tiles, err := mahjong.Parse(text, mahjong.ParseOpts{})
	if err != nil {
		t.Fatalf("parse(%q): %v", text, err)
	}
	c, err := mahjong.CountsWithLimit(tiles)
	if err != nil {
		t.Fatalf("counts(%q): %v", text, err)
	}
	return c
}
