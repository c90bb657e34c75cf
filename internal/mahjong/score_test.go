package mahjong_test

import (
	"testing"

	"riichi/internal/mahjong"
)

func ctxTiles(t *testing.T, text string) []mahjong.Tile {
	t.Helper()
	tiles, err := mahjong.Parse(text, mahjong.ParseOpts{})
	if err != nil {
		t.Fatalf("parse(%q): %v", text, err)
	}
	return tiles
}

func TestScore_TanyaoPinfuRon(t *testing.T) {
	ctx := mahjong.ScoringContext{
		HandTiles: ctxTiles(t, "2m 3m 4m 5p 6p 7p 3s 4s 5s 6s 7s 2p 2p"),
		WinTile:   ctxTiles(t, "8s")[0],
		WinType:   mahjong.Ron,
		IsDealer:  false,
		SeatWind:  mahjong.South,
		RoundWind: mahjong.East,
	}
	b, err := mahjong.Score(ctx)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if b.Han != 2 {
		t.Fatalf("expected 2 han (tanyao+pinfu), got %d (%+v)", b.Han, b.Yaku)
	}
	if b.Fu != 30 {
		t.Fatalf("pinfu-ron must be fixed at 30 fu, got %d", b.Fu)
	}
	if b.Payout.Ron != 2000 {
		t.Fatalf("expected 2000-point ron payout, got %d", b.Payout.Ron)
	}
}

func TestScore_RiichiPinfuTsumoDealer(t *testing.T) {
	ctx := mahjong.ScoringContext{
		HandTiles: ctxTiles(t, "2m 3m 4m 5p 6p 7p 3s 4s 5s 6s 7s 2p 2p"),
		WinTile:   ctxTiles(t, "8s")[0],
		WinType:   mahjong.Tsumo,
		IsDealer:  true,
		Riichi:    true,
		SeatWind:  mahjong.East,
		RoundWind: mahjong.East,
	}
	b, err := mahjong.Score(ctx)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if b.Han != 4 {
		t.Fatalf("expected 4 han (riichi+tsumo+tanyao+pinfu), got %d (%+v)", b.Han, b.Yaku)
	}
	if b.Fu != 20 {
		t.Fatalf("pinfu-tsumo must be fixed at 20 fu, got %d", b.Fu)
	}
	if b.Payout.TsumoFromNonDealer != 2600 {
		t.Fatalf("expected each non-dealer to pay 2600, got %d", b.Payout.TsumoFromNonDealer)
	}
}

func TestScore_FourConcealedTripletsTsumo(t *testing.T) {
	ctx := mahjong.ScoringContext{
		HandTiles: ctxTiles(t, "1m 1m 2p 2p 2p 3s 3s 3s E E E 9p 9p"),
		WinTile:   ctxTiles(t, "1m")[0],
		WinType:   mahjong.Tsumo,
		IsDealer:  false,
		SeatWind:  mahjong.South,
		RoundWind: mahjong.West,
	}
	b, err := mahjong.Score(ctx)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if len(b.Yakuman) != 1 || b.Yakuman[0].ID != mahjong.YakumanFourConcealedTriplets {
		t.Fatalf("expected Four Concealed Triplets yakuman, got %+v", b.Yakuman)
	}
	if b.Payout.TsumoFromDealer != 16000 || b.Payout.TsumoFromNonDealer != 8000 {
		t.Fatalf("unexpected yakuman tsumo payout: %+v", b.Payout)
	}
}

func TestScore_CompleteHandWithNoYakuIsRejected(t *testing.T) {
	ctx := mahjong.ScoringContext{
		HandTiles: ctxTiles(t, "2p 2p 1m 2m 3m 4p 5p 6p 3s 4s 7p 8p 9p"),
		WinTile:   ctxTiles(t, "5s")[0],
		WinType:   mahjong.Ron,
		IsDealer:  false,
		FuroSets:  1,
		SeatWind:  mahjong.South,
		RoundWind: mahjong.West,
	}
	_, err := mahjong.Score(ctx)
	if err == nil {
		t.Fatalf("expected ErrNoYaku for an open, terminal-containing, non-yakuhai hand")
	}
	if merr, ok := err.(*mahjong.Error); !ok || merr.Kind != mahjong.ErrNoYaku {
		t.Fatalf("expected ErrNoYaku, got %v", err)
	}
}

func TestScore_IncompleteHandIsRejected(t *testing.T) {
	ctx := mahjong.ScoringContext{
		HandTiles: ctxTiles(t, "1m 2m 4m 7p 8p 9p 1s 2s 3s E S W N"),
		WinTile:   ctxTiles(t, "F")[0],
		WinType:   mahjong.Ron,
		IsDealer:  false,
		SeatWind:  mahjong.South,
		RoundWind: mahjong.West,
	}
	_, err := mahjong.Score(ctx)
	if err == nil {
		t.Fatalf("expected ErrNoWinningDecomposition for a disconnected hand")
	}
	if merr, ok := err.(*mahjong.Error); !ok || merr.Kind != mahjong.ErrNoWinningDecomposition {
		t.Fatalf("expected ErrNoWinningDecomposition, got %v", err)
	}
}

func TestScore_RiichiOnOpenHandIsRejected(t *testing.T) {
	ctx := mahjong.ScoringContext{
		HandTiles: ctxTiles(t, "2p 2p 1m 2m 3m 4p 5p 6p 3s 4s 7p 8p 9p"),
		WinTile:   ctxTiles(t, "5s")[0],
		WinType:   mahjong.Ron,
		IsDealer:  false,
		FuroSets:  1,
		Riichi:    true,
		SeatWind:  mahjong.South,
		RoundWind: mahjong.West,
	}
	_, err := mahjong.Score(ctx)
	if merr, ok := err.(*mahjong.Error); !ok || merr.Kind != mahjong.ErrRiichiRequiresClosed {
		t.Fatalf("expected ErrRiichiRequiresClosed, got %v", err)
	}
}

func TestScore_DoraAddsHan(t *testing.T) {
	ctx := mahjong.ScoringContext{
		HandTiles: ctxTiles(t, "2m 3m 4m 5p 6p 7p 3s 4s 5s 6s 7s 2p 2p"),
		WinTile:   ctxTiles(t, "8s")[0],
		WinType:   mahjong.Ron,
		IsDealer:  false,
		DoraTiles: ctxTiles(t, "3m"),
		SeatWind:  mahjong.South,
		RoundWind: mahjong.East,
	}
	b, err := mahjong.Score(ctx)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if b.DoraHan != 1 {
		t.Fatalf("expected 1 dora han for the single 3m in hand, got %d", b.DoraHan)
	}
	if b.Han != 3 {
		t.Fatalf("expected tanyao+pinfu+1 dora = 3 han, got %d", b.Han)
	}
}
