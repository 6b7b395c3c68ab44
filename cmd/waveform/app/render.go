package app

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/neurokit/neuroimport/internal/storage"
)

const (
	// Border sizes in pixels around the waveform plot area
	topBorder    = 40
	leftBorder   = 80
	bottomBorder = 50
	rightBorder  = 40
)

var (
	backgroundColor = color.RGBA{R: 16, G: 20, B: 28, A: 255}
	plotColor       = color.RGBA{R: 24, G: 30, B: 42, A: 255}
	traceColor      = color.RGBA{R: 80, G: 200, B: 255, A: 255}
	midlineColor    = color.RGBA{R: 60, G: 70, B: 90, A: 255}
)

// Plot holds a rendered waveform and the value/pixel mapping used to draw
// it, so the annotator can place scale labels.
type Plot struct {
	Image *image.RGBA
	Trace *storage.StoredTrace

	// Plot area bounds within the image
	Area image.Rectangle

	// Value range mapped onto the plot area
	MinValue float64
	MaxValue float64

	// Time range of the rendered samples in seconds
	Duration float64
}

// renderWaveform rasterizes a channel trace into an RGBA image. Each pixel
// column aggregates its sample window into a min/max span, which keeps fast
// transients visible at any zoom level.
func renderWaveform(trace *storage.StoredTrace, width, height int) *Plot {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(backgroundColor), image.Point{}, draw.Src)

	area := image.Rect(leftBorder, topBorder, width-rightBorder, height-bottomBorder)
	draw.Draw(img, area, image.NewUniform(plotColor), image.Point{}, draw.Src)

	minValue, maxValue := sampleBounds(trace.Samples)

	plot := Plot{
		Image:    img,
		Trace:    trace,
		Area:     area,
		MinValue: minValue,
		MaxValue: maxValue,
	}
	if trace.SampleRate > 0 {
		plot.Duration = float64(len(trace.Samples)) / trace.SampleRate
	}

	if len(trace.Samples) == 0 {
		return &plot
	}

	// Zero/midline reference
	midY := valueToY(0, minValue, maxValue, area)
	for x := area.Min.X; x < area.Max.X; x++ {
		img.SetRGBA(x, midY, midlineColor)
	}

	plotWidth := area.Dx()
	samplesPerPixel := float64(len(trace.Samples)) / float64(plotWidth)

	prevY := -1
	for px := 0; px < plotWidth; px++ {
		lo := int(float64(px) * samplesPerPixel)
		hi := int(float64(px+1) * samplesPerPixel)
		if hi <= lo {
			hi = lo + 1
		}
		if hi > len(trace.Samples) {
			hi = len(trace.Samples)
		}
		if lo >= len(trace.Samples) {
			break
		}

		windowMin, windowMax := sampleBounds(trace.Samples[lo:hi])

		yHigh := valueToY(windowMax, minValue, maxValue, area)
		yLow := valueToY(windowMin, minValue, maxValue, area)

		// Connect to the previous column so single-sample steps stay joined
		if prevY >= 0 {
			if prevY < yHigh {
				yHigh = prevY
			}
			if prevY > yLow {
				yLow = prevY
			}
		}
		prevY = valueToY(trace.Samples[hi-1], minValue, maxValue, area)

		x := area.Min.X + px
		for y := yHigh; y <= yLow; y++ {
			img.SetRGBA(x, y, traceColor)
		}
	}

	return &plot
}

func sampleBounds(samples []float64) (minValue, maxValue float64) {
	if len(samples) == 0 {
		return 0, 0
	}

	minValue, maxValue = math.Inf(1), math.Inf(-1)
	for _, v := range samples {
		minValue = math.Min(minValue, v)
		maxValue = math.Max(maxValue, v)
	}
	if minValue == maxValue {
		// Flat trace. Pad the range so it renders mid-plot.
		minValue--
		maxValue++
	}
	return minValue, maxValue
}

func valueToY(v, minValue, maxValue float64, area image.Rectangle) int {
	norm := (v - minValue) / (maxValue - minValue)
	y := area.Max.Y - 1 - int(norm*float64(area.Dy()-1))
	if y < area.Min.Y {
		y = area.Min.Y
	}
	if y > area.Max.Y-1 {
		y = area.Max.Y - 1
	}
	return y
}
