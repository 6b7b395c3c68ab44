package main

import (
	"log/slog"
	"os"

	"github.com/neurokit/neuroimport/cmd/waveform/app"
)

func main() {
	config, err := app.NewConfigFromCLI()
	if err != nil {
		os.Exit(2)
	}

	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if config.Verbose {
		opts.Level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, opts))

	if err = app.Run(config, logger); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}
