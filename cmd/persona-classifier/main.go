package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"persona-classifier/internal/config"
	"persona-classifier/internal/dataset"
	"persona-classifier/internal/logger"
	"persona-classifier/internal/predictor"
	"persona-classifier/internal/report"
	"persona-classifier/internal/trainer"
)

func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (empty uses built-in defaults)")
	epochs := flag.Int("epochs", 0, "Number of training epochs")
	seed := flag.Int64("seed", 0, "PRNG seed (0 seeds from the clock)")
	logLevel := flag.String("log-level", "", "DEBUG, INFO, WARN, ERROR or DISABLED")
	people := flag.String("people", "", "YAML file of labelled people to train on")

	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	cfg.ApplyOverrides(config.Overrides{
		Epochs:     *epochs,
		Seed:       *seed,
		LogLevel:   *logLevel,
		PeoplePath: *people,
	})

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}
	if err := logger.Init(logger.Options{Level: cfg.LogLevel, File: cfg.LogFile}); err != nil {
		log.Fatal().Err(err).Msg("failed to init logger")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out, err := run(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("classification failed")
	}
	fmt.Println(out)
}

// run trains on the configured people and returns the report for the demo
// query.
func run(ctx context.Context, cfg *config.Config) (string, error) {
	ds, ages, err := loadDataset(cfg)
	if err != nil {
		return "", err
	}
	log.Info().Int("rows", len(ds.Features)).Float64("age_min", ages.Min).Float64("age_max", ages.Max).Msg("dataset ready")

	mdl, err := trainer.Run(ctx, trainer.RunConfig{
		Dataset:      ds,
		Epochs:       cfg.Epochs,
		BatchSize:    cfg.BatchSize,
		HiddenUnits:  cfg.HiddenUnits,
		LearningRate: cfg.LearningRate,
		Shuffle:      cfg.Shuffle,
		LogEvery:     cfg.LogEvery,
		Seed:         cfg.Seed,
	})
	if err != nil {
		return "", fmt.Errorf("train: %w", err)
	}

	query := dataset.DemoQuery()
	fv, err := dataset.Encoder{Ages: ages}.Encode(query)
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", query.Name, err)
	}
	log.Debug().Str("name", query.Name).Floats64("features", fv[:]).Msg("classifying")

	results, err := predictor.Predict(mdl, []dataset.FeatureVector{fv})
	if err != nil {
		return "", fmt.Errorf("predict: %w", err)
	}
	return report.Format(results[0], ds.Names), nil
}

func loadDataset(cfg *config.Config) (dataset.Dataset, dataset.AgeRange, error) {
	if cfg.PeoplePath == "" {
		return dataset.Demo(), dataset.AgeRange{Min: cfg.AgeMin, Max: cfg.AgeMax}, nil
	}
	people, err := dataset.LoadPeople(cfg.PeoplePath)
	if err != nil {
		return dataset.Dataset{}, dataset.AgeRange{}, err
	}
	return dataset.FromPeople(people, dataset.LabelNames())
}
