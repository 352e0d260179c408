// cmd/phoquedle-server/main.go
//
// Process entry point: environment, logging, datasets, storage, engine,
// HTTP listen. The only fatal conditions are startup invariants (an empty
// dataset, an unopenable database); everything after Init is recoverable.
package main

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/wherethephoque/phoquedle/internal/dataset"
	"github.com/wherethephoque/phoquedle/internal/engine"
	"github.com/wherethephoque/phoquedle/internal/httpserver"
	"github.com/wherethephoque/phoquedle/internal/storage"
)

// serverConfig is the process-level configuration, parsed from the
// environment (optionally seeded from a .env file in development).
type serverConfig struct {
	Port        string `env:"PORT" envDefault:"5175"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	DBPath      string `env:"DB_PATH" envDefault:"./data/phoquedle.db"`
	Variant     string `env:"GAME_VARIANT" envDefault:"flag"` // "flag" | "word"
	MaxAttempts int    `env:"MAX_ATTEMPTS" envDefault:"6"`
	WordLength  int    `env:"WORD_LENGTH" envDefault:"5"`
	HardMode    bool   `env:"HARD_MODE" envDefault:"false"`
}

func main() {
	_ = godotenv.Load()

	var cfg serverConfig
	if err := env.Parse(&cfg); err != nil {
		log.Fatal().Err(err).Msg("parse environment")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	variant := engine.Variant(cfg.Variant)
	var (
		words *dataset.WordList
		flags *dataset.FlagSet
		err   error
	)
	switch variant {
	case engine.VariantWord:
		if words, err = dataset.LoadWords(cfg.WordLength); err != nil {
			log.Fatal().Err(err).Msg("load word lists")
		}
	case engine.VariantFlag:
		if flags, err = dataset.LoadFlags(); err != nil {
			log.Fatal().Err(err).Msg("load flag dataset")
		}
	default:
		log.Fatal().Str("variant", cfg.Variant).Msg("unknown game variant")
	}

	store, err := storage.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open record store")
	}

	eng, err := engine.New(variant, engine.GameConfig{
		MaxAttempts: cfg.MaxAttempts,
		WordLength:  cfg.WordLength,
		HardMode:    cfg.HardMode,
	}, words, flags, store, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("construct engine")
	}
	eng.Init(context.Background())

	srv := httpserver.New(eng)
	log.Info().Str("port", cfg.Port).Str("variant", cfg.Variant).Msg("starting phoquedle-server")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
