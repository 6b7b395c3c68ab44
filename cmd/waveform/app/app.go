package app

import (
	"context"
	"fmt"
	"image/jpeg"
	"image/png"
	"log/slog"
	"os"

	"github.com/neurokit/neuroimport/internal/storage"
)

func Run(config *Config, logger *slog.Logger) error {
	store := storage.NewSqliteStore(config.DBPath)
	defer store.Close()

	ctx := context.Background()

	trace, err := store.Trace(ctx, config.RecordingID, config.Channel)
	if err != nil {
		return fmt.Errorf("loading trace: %w", err)
	}

	logger.Debug("trace loaded",
		slog.String("channel", trace.Channel.Name),
		slog.String("group", trace.Channel.Group),
		slog.Int("samples", len(trace.Samples)))

	plot := renderWaveform(trace, config.Width, config.Height)

	if !config.NoAnnotations {
		annotator, err := NewAnnotator(config.FontFile)
		if err != nil {
			return fmt.Errorf("creating annotator: %w", err)
		}
		if err = annotator.Annotate(plot); err != nil {
			return fmt.Errorf("annotating: %w", err)
		}
	}

	out, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer out.Close()

	switch config.Format {
	case ImageJPEG:
		err = jpeg.Encode(out, plot.Image, &jpeg.Options{Quality: 90})
	default:
		err = png.Encode(out, plot.Image)
	}
	if err != nil {
		return fmt.Errorf("encoding image: %w", err)
	}

	logger.Info("waveform rendered", slog.String("output", config.OutputFile))
	return nil
}
