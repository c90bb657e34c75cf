// Package config loads the TOML configuration consumed by cmd/mjcli and
// cmd/mjserve via spf13/viper. The mahjong engine itself takes no
// configuration — every parameter arrives as an explicit function
// argument — so this package only serves the command-line and HTTP
// front ends named out-of-scope by the engine's own design.
package config

import (
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Conf holds the process-wide configuration after Load. cmd/mjcli and
// cmd/mjserve read it directly, mirroring the teacher's package-level
// config variable pattern.
var Conf Config

type Config struct {
	Log    LogConf    `mapstructure:"log"`
	Server ServerConf `mapstructure:"server"`
	Rules  RulesConf  `mapstructure:"rules"`
}

type LogConf struct {
	Level string `mapstructure:"level"`
}

// ServerConf configures cmd/mjserve's gin HTTP front end and its
// ristretto request-dedup cache.
type ServerConf struct {
	HttpPort     int   `mapstructure:"httpPort"`
	CacheNumKeys int64 `mapstructure:"cacheNumKeys"`
	CacheMaxCost int64 `mapstructure:"cacheMaxCost"`
}

// RulesConf holds rule settings for the front ends. KeepRedFives decides
// whether hand and win tiles keep 0m/0p/0s as red fives (aka-dora);
// DefaultRoundWind is loaded but not read by either front end.
type RulesConf struct {
	DefaultRoundWind string `mapstructure:"defaultRoundWind"`
	KeepRedFives     bool   `mapstructure:"keepRedFives"`
}

func defaults() Config {
	return Config{
		Log:    LogConf{Level: "info"},
		Server: ServerConf{HttpPort: 8080, CacheNumKeys: 1e7, CacheMaxCost: 1 << 24},
		Rules:  RulesConf{DefaultRoundWind: "E", KeepRedFives: true},
	}
}

// Load reads configFile (TOML) into Conf, applying defaults first, and
// watches the file: on an edit the re-read log section replaces Conf.Log.
// The running logger's level is not reset by such an edit.
func Load(configFile string) error {
	Conf = defaults()

	v := viper.New()
	v.SetConfigFile(configFile)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if err := v.ReadInConfig(); err != nil {
		return err
	}
	if err := v.Unmarshal(&Conf); err != nil {
		return err
	}

	v.WatchConfig()
	v.OnConfigChange(func(in fsnotify.Event) {
		var reloaded Config
		if err := v.Unmarshal(&reloaded); err == nil {
			Conf.Log = reloaded.Log
		}
	})

	return nil
}
