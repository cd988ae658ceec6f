// Command qcheckers plays checkers, classical or superposed, on the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog/log"

	"quantum_checkers/internal/config"
	"quantum_checkers/internal/controller"
	"quantum_checkers/internal/game"
	"quantum_checkers/pkg/logger"
)

func main() {
	cfg := config.Load()

	// Flags override the environment.
	size := flag.Int("size", cfg.Size, "board side length")
	population := flag.Int("population", cfg.Population, "rows of pieces per player")
	quantum := flag.Bool("quantum", cfg.Quantum, "play the superposed variant")
	seed := flag.Uint64("seed", cfg.Seed, "collapse seed (0 = from clock)")
	debug := flag.Bool("debug", cfg.Debug, "print capture options and move results")
	flag.Parse()

	cfg.Size, cfg.Population = *size, *population
	cfg.Quantum, cfg.Seed, cfg.Debug = *quantum, *seed, *debug
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config")
	}

	l := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
	logger.SetGlobalLogger(l)

	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	opts := []game.Option{
		game.WithLogger(l),
		game.WithRand(game.NewSeededRand(cfg.Seed)),
	}
	log.Info().
		Int("size", cfg.Size).
		Int("population", cfg.Population).
		Bool("quantum", cfg.Quantum).
		Uint64("seed", cfg.Seed).
		Msg("starting game")

	ctrlOpts := []controller.Option{controller.WithLogger(l), controller.WithDebug(cfg.Debug)}
	var ctrl *controller.Controller
	if cfg.Quantum {
		q, err := game.NewQuantumBoard(cfg.Size, cfg.Population, opts...)
		if err != nil {
			log.Fatal().Err(err).Msg("board init")
		}
		ctrl = controller.NewQuantum(q, os.Stdin, os.Stdout, ctrlOpts...)
	} else {
		b, err := game.NewBoard(cfg.Size, cfg.Population, opts...)
		if err != nil {
			log.Fatal().Err(err).Msg("board init")
		}
		ctrl = controller.NewClassical(b, os.Stdin, os.Stdout, ctrlOpts...)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if _, err := ctrl.Run(ctx); err != nil {
		switch {
		case errors.Is(err, io.EOF), errors.Is(err, controller.ErrQuit), errors.Is(err, context.Canceled):
			log.Info().Err(err).Msg("game ended early")
		default:
			log.Error().Err(err).Msg("game aborted")
			stop()
			os.Exit(1)
		}
	}
}
