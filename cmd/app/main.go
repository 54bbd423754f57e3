package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"dragonwizardknight/internal/cli"
	"dragonwizardknight/internal/config"
	"dragonwizardknight/internal/logger"
	"dragonwizardknight/internal/random"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	rng, err := random.NewRand(cfg.Seed)
	if err != nil {
		fmt.Fprintln(os.Stderr, "rng:", err)
		os.Exit(1)
	}

	runner := cli.NewRunner(cli.Options{
		In:      os.Stdin,
		Out:     os.Stdout,
		RNG:     rng,
		Logger:  log,
		NoColor: cfg.NoColor,
	})

	if err := runner.Run(); err != nil {
		log.Error("game aborted", zap.Error(err))
		if errors.Is(err, cli.ErrInputClosed) {
			fmt.Fprintln(os.Stderr, "input closed, exiting")
		} else {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}
