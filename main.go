package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/config"
	"github.com/robalobadob/hangman/internal/console"
	"github.com/robalobadob/hangman/internal/daily"
	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/play"
	"github.com/robalobadob/hangman/internal/words"
)

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	if err := run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("hangman exited")
	}
}

// run plays one game. Deferred cleanup happens before main reports an error.
func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	lvl, err := cfg.Level()
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(lvl)

	opts := words.Options{File: cfg.WordsFile}
	if cfg.WordsDB != "" {
		db, err := openDB(ctx, cfg.WordsDB)
		if err != nil {
			return fmt.Errorf("open word database: %w", err)
		}
		defer db.Close()
		opts.DB, opts.DBName = db, cfg.WordsDB
	}
	list, err := words.Load(ctx, opts)
	if err != nil {
		return err
	}
	log.Info().Str("source", list.Origin).Int("words", list.Len()).Msg("word list loaded")

	var src words.Source = list
	if cfg.Daily {
		src = &daily.Picker{Words: list, Salt: cfg.DailySalt}
		log.Info().Str("date", daily.DateKey(time.Now())).Msg("daily word mode")
	}

	g, err := game.New(src.Choose())
	if err != nil {
		return fmt.Errorf("start game: %w", err)
	}

	fd := os.Stdout.Fd()
	useColor := !cfg.ColorDisabled() && (isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd))
	stdout := colorable.NewColorable(os.Stdout)

	in := console.NewReader(os.Stdin, stdout)
	_, err = play.Run(g, in, console.NewRenderer(stdout, useColor))
	return err
}
