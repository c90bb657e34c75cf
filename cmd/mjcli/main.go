package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"riichi/config"
	"riichi/internal/mahjong"
	applog "riichi/log"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "mjcli",
	Short: "mjcli 麻将手牌分析工具",
	Long:  `mjcli 计算向听数、听牌、役种与点数`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if configFile != "" {
			if err := config.Load(configFile); err != nil {
				applog.Fatal("配置加载失败：%v", err)
			}
		} else {
			config.Conf = config.Config{Log: config.LogConf{Level: "info"}}
		}
		applog.Init("mjcli", config.Conf.Log.Level)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "TOML configuration file (optional)")
	rootCmd.AddCommand(shantenCmd, waitsCmd, scoreCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCodeFor(err))
	}
}

// exitCodeFor maps a mahjong.Error's Kind to a distinct non-zero exit
// status, so scripts driving mjcli can branch on failure mode without
// scraping stderr text.
func exitCodeFor(err error) int {
	merr, ok := err.(*mahjong.Error)
	if !ok {
		return 1
	}
	switch merr.Kind {
	case mahjong.ErrMalformedTile:
		return 2
	case mahjong.ErrHandLengthMismatch:
		return 3
	case mahjong.ErrTileOverCount:
		return 4
	case mahjong.ErrInvalidMeld:
		return 5
	case mahjong.ErrMeldAccountingMismatch:
		return 6
	case mahjong.ErrNoWinningDecomposition:
		return 7
	case mahjong.ErrRiichiRequiresClosed:
		return 8
	case mahjong.ErrNoYaku:
		return 9
	default:
		return 1
	}
}

func parseTiles(cmd *cobra.Command, text string, keepRed bool) ([]mahjong.Tile, error) {
	tiles, err := mahjong.Parse(text, mahjong.ParseOpts{KeepRed: keepRed})
	if err != nil {
		return nil, err
	}
	return tiles, nil
}

func fail(cmd *cobra.Command, err error) error {
	cmd.SilenceUsage = true
	applog.Error("%v", err)
	return err
}

var shantenCmd = &cobra.Command{
	Use:   "shanten",
	Short: "计算向听数",
	RunE: func(cmd *cobra.Command, args []string) error {
		hand, _ := cmd.Flags().GetString("hand")
		fixedMelds, _ := cmd.Flags().GetInt("melds")

		tiles, err := parseTiles(cmd, hand, false)
		if err != nil {
			return fail(cmd, err)
		}
		counts, err := mahjong.CountsWithLimit(tiles)
		if err != nil {
			return fail(cmd, err)
		}

		res := mahjong.ShantenOf(counts, fixedMelds)
		fmt.Printf("standard=%d sevenPairs=%d thirteenOrphans=%d min=%d\n",
			res.Standard, res.SevenPairs, res.ThirteenOrphans, res.Min)
		return nil
	},
}

var waitsCmd = &cobra.Command{
	Use:   "waits",
	Short: "枚举听牌",
	RunE: func(cmd *cobra.Command, args []string) error {
		hand, _ := cmd.Flags().GetString("hand")
		fixedMelds, _ := cmd.Flags().GetInt("melds")

		tiles, err := parseTiles(cmd, hand, false)
		if err != nil {
			return fail(cmd, err)
		}
		counts, err := mahjong.CountsWithLimit(tiles)
		if err != nil {
			return fail(cmd, err)
		}

		ws, err := mahjong.WaitsOf(counts, fixedMelds)
		if err != nil {
			return fail(cmd, err)
		}
		fmt.Printf("tenpai=%t waits=%s\n", ws.IsTenpai(), formatIndexes(ws.Union))
		return nil
	},
}

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "计算役种、符、番与点数",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := scoringContextFromFlags(cmd)
		if err != nil {
			return fail(cmd, err)
		}

		breakdown, err := mahjong.Score(*ctx)
		if err != nil {
			return fail(cmd, err)
		}
		printBreakdown(breakdown)
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{shantenCmd, waitsCmd} {
		cmd.Flags().String("hand", "", "concealed tiles, e.g. \"1m 2m 3m 4p 5p 6p 7s 8s 9s E E E 5m 5m\"")
		cmd.Flags().Int("melds", 0, "number of melds already fixed by open furo/kongs")
		_ = cmd.MarkFlagRequired("hand")
	}

	scoreCmd.Flags().String("hand", "", "hand_tiles: concealed tiles followed by open meld tail, length 13+kongs")
	scoreCmd.Flags().String("win", "", "win_tile")
	scoreCmd.Flags().String("wintype", "ron", "tsumo or ron")
	scoreCmd.Flags().Bool("dealer", false, "is_dealer")
	scoreCmd.Flags().String("seat", "E", "seat_wind: E/S/W/N")
	scoreCmd.Flags().String("round", "E", "round_wind: E/S/W/N")
	scoreCmd.Flags().Bool("riichi", false, "riichi declared")
	scoreCmd.Flags().String("dora", "", "dora_tiles (resolved tile identities, not indicators)")
	scoreCmd.Flags().Int("furo", 0, "furo_sets")
	scoreCmd.Flags().Int("kan", 0, "kan_sets (open kongs, subset of furo_sets)")
	scoreCmd.Flags().String("ankan", "", "ankan_tiles: one tile identity per concealed kong")
	scoreCmd.Flags().String("kantiles", "", "kan_tiles: one tile identity per open kong")
	_ = scoreCmd.MarkFlagRequired("hand")
	_ = scoreCmd.MarkFlagRequired("win")
}

func scoringContextFromFlags(cmd *cobra.Command) (*mahjong.ScoringContext, error) {
	hand, _ := cmd.Flags().GetString("hand")
	win, _ := cmd.Flags().GetString("win")
	winType, _ := cmd.Flags().GetString("wintype")
	isDealer, _ := cmd.Flags().GetBool("dealer")
	seat, _ := cmd.Flags().GetString("seat")
	round, _ := cmd.Flags().GetString("round")
	riichi, _ := cmd.Flags().GetBool("riichi")
	dora, _ := cmd.Flags().GetString("dora")
	furo, _ := cmd.Flags().GetInt("furo")
	kan, _ := cmd.Flags().GetInt("kan")
	ankan, _ := cmd.Flags().GetString("ankan")
	kantiles, _ := cmd.Flags().GetString("kantiles")

	handTiles, err := mahjong.Parse(hand, mahjong.ParseOpts{KeepRed: config.Conf.Rules.KeepRedFives})
	if err != nil {
		return nil, err
	}
	winTiles, err := mahjong.Parse(win, mahjong.ParseOpts{KeepRed: config.Conf.Rules.KeepRedFives})
	if err != nil {
		return nil, err
	}
	if len(winTiles) != 1 {
		return nil, &mahjong.Error{Kind: mahjong.ErrMalformedTile, Message: "--win must name exactly one tile"}
	}
	doraTiles, err := mahjong.Parse(dora, mahjong.ParseOpts{})
	if err != nil {
		return nil, err
	}
	ankanTiles, err := mahjong.Parse(ankan, mahjong.ParseOpts{})
	if err != nil {
		return nil, err
	}
	kanTiles, err := mahjong.Parse(kantiles, mahjong.ParseOpts{})
	if err != nil {
		return nil, err
	}

	seatIdx, err := windIndex(seat)
	if err != nil {
		return nil, err
	}
	roundIdx, err := windIndex(round)
	if err != nil {
		return nil, err
	}

	wt := mahjong.Ron
	if strings.EqualFold(winType, "tsumo") {
		wt = mahjong.Tsumo
	}

	return &mahjong.ScoringContext{
		HandTiles:  handTiles,
		WinTile:    winTiles[0],
		WinType:    wt,
		IsDealer:   isDealer,
		SeatWind:   seatIdx,
		RoundWind:  roundIdx,
		DoraTiles:  doraTiles,
		Riichi:     riichi,
		FuroSets:   furo,
		KanSets:    kan,
		AnkanTiles: ankanTiles,
		KanTiles:   kanTiles,
	}, nil
}

func windIndex(letter string) (mahjong.Index, error) {
	tiles, err := mahjong.Parse(letter, mahjong.ParseOpts{})
	if err != nil {
		return 0, err
	}
	if len(tiles) != 1 || !mahjong.IsHonour(tiles[0].Index) {
		return 0, &mahjong.Error{Kind: mahjong.ErrMalformedTile, Message: "wind must be one of E/S/W/N"}
	}
	return tiles[0].Index, nil
}

func formatIndexes(idxs []mahjong.Index) string {
	tokens := make([]string, len(idxs))
	for i, idx := range idxs {
		tile, _ := mahjong.IndexToTile(idx)
		tokens[i] = tile.String()
	}
	return strings.Join(tokens, " ")
}

func printBreakdown(b *mahjong.ScoreBreakdown) {
	if len(b.Yakuman) > 0 {
		names := make([]string, len(b.Yakuman))
		for i, y := range b.Yakuman {
			names[i] = fmt.Sprintf("%s(x%d)", y.Name, y.Multiplier)
		}
		fmt.Printf("yakuman: %s\n", strings.Join(names, ", "))
	} else {
		names := make([]string, len(b.Yaku))
		for i, y := range b.Yaku {
			names[i] = fmt.Sprintf("%s(%dhan)", y.Name, y.Han)
		}
		fmt.Printf("yaku: %s\n", strings.Join(names, ", "))
		fmt.Printf("han=%d (dora=%d aka=%d) fu=%d\n", b.Han, b.DoraHan, b.AkaDoraHan, b.Fu)
	}
	switch {
	case b.Payout.Ron > 0:
		fmt.Printf("ron payout: %d\n", b.Payout.Ron)
	default:
		fmt.Printf("tsumo payout: dealer=%d non-dealer=%d\n", b.Payout.TsumoFromDealer, b.Payout.TsumoFromNonDealer)
	}
}
