package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/premodern/goldfisher/internal/config"
	"github.com/premodern/goldfisher/internal/game"
	"github.com/premodern/goldfisher/internal/sim"
	"github.com/premodern/goldfisher/internal/strategy"
)

var (
	configPath   = flag.String("config", "", "path to configuration file")
	games        = flag.Int("games", 0, "number of games to simulate (overrides config)")
	strategyKey  = flag.String("strategy", "", "deck strategy to pilot (overrides config)")
	decklistPath = flag.String("decklist", "", "path to custom decklist file (overrides config)")
	seed         = flag.Int64("seed", 0, "base seed for reproducible runs (overrides config)")
	verbose      = flag.Bool("verbose", false, "log every game action (slow)")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if *games > 0 {
		cfg.Simulation.Games = *games
	}
	if *strategyKey != "" {
		cfg.Simulation.Strategy = *strategyKey
	}
	if *decklistPath != "" {
		cfg.Simulation.Decklist = *decklistPath
	}
	if *seed != 0 {
		cfg.Simulation.Seed = *seed
	}
	if *verbose {
		cfg.Logging.Level = "debug"
	}

	logger, err := initLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("simulation failed", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	build, err := strategy.ConstructorFor(cfg.Simulation.Strategy)
	if err != nil {
		return err
	}

	decklist, err := loadDecklist(cfg.Simulation.Decklist, build)
	if err != nil {
		return err
	}

	logger.Info("simulating",
		zap.String("strategy", build().Name()),
		zap.Int("games", cfg.Simulation.Games),
		zap.Int("deck_size", decklist.Size()),
	)

	runner, err := sim.NewRunner(sim.Options{
		Games:       cfg.Simulation.Games,
		Workers:     cfg.Simulation.Workers,
		Seed:        cfg.Simulation.Seed,
		Decklist:    decklist,
		NewStrategy: func() game.Strategy { return build() },
	}, logger)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	report, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	for _, line := range report.Summary() {
		logger.Info(line)
	}
	return nil
}

func loadDecklist(path string, build strategy.Constructor) (*game.Decklist, error) {
	if path == "" {
		return build().DefaultDecklist(), nil
	}
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read decklist: %w", err)
	}
	return game.ParseDecklist(string(text))
}

// initLogger initializes the zap logger based on configuration.
func initLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
