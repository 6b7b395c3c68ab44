package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/neurokit/neuroimport/internal/importer"
	"github.com/neurokit/neuroimport/internal/importer/rhs"
	"github.com/neurokit/neuroimport/internal/storage"
)

func Run(ctx context.Context, config *Config, files []string, logger *slog.Logger) error {
	store, err := createStorage(&config.Storage)
	if err != nil {
		return fmt.Errorf("failed to create storage: %w", err)
	}
	defer store.Close()

	registry := importer.NewRegistry()
	registry.Register(rhs.Extension, rhs.New(
		&rhs.DumpParser{Command: config.Importer.Converter},
		rhs.WithLogger(logger),
	))

	for _, path := range files {
		if err = ctx.Err(); err != nil {
			return err
		}
		if err = importFile(ctx, config, registry, store, path, logger); err != nil {
			return fmt.Errorf("importing %s: %w", path, err)
		}
	}

	return nil
}

func importFile(ctx context.Context, config *Config, registry *importer.Registry, store storage.Store, path string, logger *slog.Logger) error {
	rec, dataPresent, err := registry.Load(path)
	if err != nil {
		return err
	}

	logger.Info("recording loaded",
		slog.String("path", path),
		slog.String("referenceChannel", rec.Header.ReferenceChannel),
		slog.String("sampleRate", formatHz(rec.Header.Frequency.AmplifierSampleRate)),
		slog.Bool("dataPresent", dataPresent))

	notchFreq := rec.Header.Frequency.NotchFilterFrequency
	if config.Notch.Frequency != nil {
		notchFreq = *config.Notch.Frequency
	}

	var applied *float64
	if dataPresent && notchFreq > 0 {
		applied = &notchFreq
	}

	recordingID, err := store.CreateRecording(ctx, path, filepath.Ext(path), rec, applied)
	if err != nil {
		return fmt.Errorf("storing recording: %w", err)
	}

	if !dataPresent {
		logger.Info("recording has no sample data, stored header only",
			slog.Int64("recordingID", recordingID))
		return nil
	}

	traces := collectTraces(rec, notchFreq, config.Notch.Bandwidth)
	if err = store.StoreTraces(ctx, recordingID, traces); err != nil {
		return fmt.Errorf("storing traces: %w", err)
	}

	logger.Info("recording stored",
		slog.Int64("recordingID", recordingID),
		slog.Int("channels", len(traces)),
		slog.String("samplesPerChannel", humanize.Comma(int64(rec.Data.NumSamples()))),
		slog.String("traceData", humanize.Bytes(uint64(8*len(traces)*rec.Data.NumSamples()))))

	return nil
}

func createStorage(config *StorageConfig) (storage.Store, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current working directory: %w", err)
	}

	dbDir := filepath.Join(wd, config.DataDirectory)
	stat, err := os.Stat(dbDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("storage directory '%s' does not exist: %w", dbDir, err)
		}
		return nil, fmt.Errorf("checking storage directory '%s': %w", dbDir, err)
	}
	if !stat.IsDir() {
		return nil, fmt.Errorf("invalid storage directory '%s'", dbDir)
	}

	return storage.NewSqliteStore(filepath.Join(dbDir, config.DatabaseFile)), nil
}

func formatHz(hz float64) string {
	fract, suffix := humanize.ComputeSI(hz)
	return fmt.Sprintf("%0.2f %sHz", fract, suffix)
}
