package main

import (
	"encoding/json"
	"flag"
	"io"
	"net/http"
	"time"

	"riichi/config"
	"riichi/internal/httpapi"
	"riichi/internal/mahjong"
	applog "riichi/log"
)

var configFile = flag.String("config", "config.toml", "TOML configuration file")

func main() {
	flag.Parse()

	if err := config.Load(*configFile); err != nil {
		applog.Fatal("configuration load failed: %v", err)
	}
	applog.Init("mjserve", config.Conf.Log.Level)

	resultCache, err := httpapi.NewResultCache(
		config.Conf.Server.CacheNumKeys,
		config.Conf.Server.CacheMaxCost,
		10*time.Minute,
	)
	if err != nil {
		applog.Fatal("result cache init failed: %v", err)
	}
	defer resultCache.Close()

	srv := httpapi.NewServer(httpapi.WithPort(config.Conf.Server.HttpPort))
	srv.Use(httpapi.RequestIDMiddleware(), httpapi.LoggerMiddleware(), httpapi.CorsMiddleware())

	srv.GET("/healthz", func(c *httpapi.Context) error {
		c.Success(map[string]string{"status": "ok"})
		return nil
	})
	srv.POST("/v1/shanten", handleShanten)
	srv.POST("/v1/waits", handleWaits)
	srv.POST("/v1/score", handleScore(resultCache))

	applog.Info("mjserve listening on :%d", config.Conf.Server.HttpPort)
	if err := srv.Start(); err != nil {
		applog.Fatal("server stopped: %v", err)
	}
}

// handCountsRequest is the shared request shape for /v1/shanten and
// /v1/waits: a whitespace- or comma-separated tile list plus the number
// of melds already fixed by open furo/kongs.
type handCountsRequest struct {
	Hand       string `json:"hand"`
	FixedMelds int    `json:"fixed_melds"`
}

func handleShanten(c *httpapi.Context) error {
	var req handCountsRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest(err.Error())
		return nil
	}
	tiles, err := mahjong.Parse(req.Hand, mahjong.ParseOpts{})
	if err != nil {
		writeEngineError(c, err)
		return nil
	}
	counts, err := mahjong.CountsWithLimit(tiles)
	if err != nil {
		writeEngineError(c, err)
		return nil
	}
	c.Success(mahjong.ShantenOf(counts, req.FixedMelds))
	return nil
}

func handleWaits(c *httpapi.Context) error {
	var req handCountsRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest(err.Error())
		return nil
	}
	tiles, err := mahjong.Parse(req.Hand, mahjong.ParseOpts{})
	if err != nil {
		writeEngineError(c, err)
		return nil
	}
	counts, err := mahjong.CountsWithLimit(tiles)
	if err != nil {
		writeEngineError(c, err)
		return nil
	}
	ws, err := mahjong.WaitsOf(counts, req.FixedMelds)
	if err != nil {
		writeEngineError(c, err)
		return nil
	}
	c.Success(ws)
	return nil
}

// scoreRequest mirrors mahjong.ScoringContext field-for-field in its JSON
// wire form, since tile lists arrive as plain token strings over HTTP.
type scoreRequest struct {
	HandTiles  string `json:"hand_tiles"`
	WinTile    string `json:"win_tile"`
	WinType    string `json:"win_type"`
	IsDealer   bool   `json:"is_dealer"`
	SeatWind   string `json:"seat_wind"`
	RoundWind  string `json:"round_wind"`
	DoraTiles  string `json:"dora_tiles"`
	Riichi     bool   `json:"riichi"`
	FuroSets   int    `json:"furo_sets"`
	KanSets    int    `json:"kan_sets"`
	AnkanTiles string `json:"ankan_tiles"`
	KanTiles   string `json:"kan_tiles"`
}

func handleScore(cache *httpapi.ResultCache) httpapi.HandlerFunc {
	return func(c *httpapi.Context) error {
		body, err := io.ReadAll(c.Request().Body)
		if err != nil {
			c.BadRequest(err.Error())
			return nil
		}

		if cached, ok := cache.Get(string(body)); ok {
			c.JSON(http.StatusOK, json.RawMessage(cached))
			return nil
		}

		var req scoreRequest
		if err := json.Unmarshal(body, &req); err != nil {
			c.BadRequest(err.Error())
			return nil
		}

		ctx, err := scoringContextFromRequest(req)
		if err != nil {
			writeEngineError(c, err)
			return nil
		}

		breakdown, err := mahjong.Score(*ctx)
		if err != nil {
			writeEngineError(c, err)
			return nil
		}

		resp := httpapi.NewResponse(httpapi.CodeSuccess, "success", breakdown)
		if encoded, err := json.Marshal(resp); err == nil {
			cache.Set(string(body), encoded)
		}
		c.Success(breakdown)
		return nil
	}
}

func scoringContextFromRequest(req scoreRequest) (*mahjong.ScoringContext, error) {
	handTiles, err := mahjong.Parse(req.HandTiles, mahjong.ParseOpts{KeepRed: config.Conf.Rules.KeepRedFives})
	if err != nil {
		return nil, err
	}
	winTiles, err := mahjong.Parse(req.WinTile, mahjong.ParseOpts{KeepRed: config.Conf.Rules.KeepRedFives})
	if err != nil {
		return nil, err
	}
	if len(winTiles) != 1 {
		return nil, &mahjong.Error{Kind: mahjong.ErrMalformedTile, Message: "win_tile must name exactly one tile"}
	}
	doraTiles, err := mahjong.Parse(req.DoraTiles, mahjong.ParseOpts{})
	if err != nil {
		return nil, err
	}
	ankanTiles, err := mahjong.Parse(req.AnkanTiles, mahjong.ParseOpts{})
	if err != nil {
		return nil, err
	}
	kanTiles, err := mahjong.Parse(req.KanTiles, mahjong.ParseOpts{})
	if err != nil {
		return nil, err
	}
	seatTiles, err := mahjong.Parse(req.SeatWind, mahjong.ParseOpts{})
	if err != nil || len(seatTiles) != 1 {
		return nil, &mahjong.Error{Kind: mahjong.ErrMalformedTile, Message: "seat_wind must be one of E/S/W/N"}
	}
	roundTiles, err := mahjong.Parse(req.RoundWind, mahjong.ParseOpts{})
	if err != nil || len(roundTiles) != 1 {
		return nil, &mahjong.Error{Kind: mahjong.ErrMalformedTile, Message: "round_wind must be one of E/S/W/N"}
	}

	winType := mahjong.Ron
	if req.WinType == "tsumo" {
		winType = mahjong.Tsumo
	}

	return &mahjong.ScoringContext{
		HandTiles:  handTiles,
		WinTile:    winTiles[0],
		WinType:    winType,
		IsDealer:   req.IsDealer,
		SeatWind:   seatTiles[0].Index,
		RoundWind:  roundTiles[0].Index,
		DoraTiles:  doraTiles,
		Riichi:     req.Riichi,
		FuroSets:   req.FuroSets,
		KanSets:    req.KanSets,
		AnkanTiles: ankanTiles,
		KanTiles:   kanTiles,
	}, nil
}

func writeEngineError(c *httpapi.Context, err error) {
	if merr, ok := err.(*mahjong.Error); ok {
		c.EngineError(merr.Kind.String(), merr.Error())
		return
	}
	c.InternalServerError(err.Error())
}
