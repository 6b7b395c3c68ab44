package app

import (
	"fmt"
	"image"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/golang/freetype"
	"golang.org/x/image/font"

	"github.com/neurokit/neuroimport/internal/display"
)

const (
	dpi      float64 = 72
	fontSize float64 = 14
)

type Annotator struct {
	context *freetype.Context
}

// NewAnnotator loads a TTF font from fontFile and prepares a drawing
// context for scale and info annotations.
func NewAnnotator(fontFile string) (*Annotator, error) {
	fontBytes, err := os.ReadFile(fontFile)
	if err != nil {
		return nil, fmt.Errorf("reading font: %w", err)
	}

	parsedFont, err := freetype.ParseFont(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}

	context := freetype.NewContext()
	context.SetDPI(dpi)
	context.SetFont(parsedFont)
	context.SetFontSize(fontSize)
	context.SetSrc(image.White)
	context.SetHinting(font.HintingFull)

	return &Annotator{context: context}, nil
}

func (a *Annotator) Annotate(plot *Plot) error {
	a.context.SetClip(plot.Image.Bounds())
	a.context.SetDst(plot.Image)

	ops := []struct {
		msg string
		fn  func(*Plot) error
	}{
		{"drawing time scale", a.drawTimeScale},
		{"drawing amplitude scale", a.drawAmplitudeScale},
		{"drawing info", a.drawInfo},
	}
	for _, op := range ops {
		if err := op.fn(plot); err != nil {
			return fmt.Errorf("%s: %w", op.msg, err)
		}
	}

	return nil
}

func (a *Annotator) drawTimeScale(plot *Plot) error {
	count := plot.Area.Dx() / 250
	if count == 0 || plot.Duration == 0 {
		return nil
	}

	secondsPerLabel := plot.Duration / float64(count)
	pxPerLabel := plot.Area.Dx() / count

	for si := 0; si <= count; si++ {
		seconds := float64(si) * secondsPerLabel
		x := plot.Area.Min.X + si*pxPerLabel
		if x >= plot.Area.Max.X {
			x = plot.Area.Max.X - 1
		}

		// Tick mark below the plot area
		for y := plot.Area.Max.Y; y < plot.Area.Max.Y+5; y++ {
			plot.Image.Set(x, y, image.White)
		}

		pt := freetype.Pt(x-15, plot.Area.Max.Y+22)
		if _, err := a.context.DrawString(fmt.Sprintf("%0.2fs", seconds), pt); err != nil {
			return err
		}
	}

	return nil
}

func (a *Annotator) drawAmplitudeScale(plot *Plot) error {
	count := plot.Area.Dy() / 100
	if count == 0 {
		return nil
	}

	valuePerLabel := (plot.MaxValue - plot.MinValue) / float64(count)

	for si := 0; si <= count; si++ {
		v := plot.MinValue + float64(si)*valuePerLabel
		y := valueToY(v, plot.MinValue, plot.MaxValue, plot.Area)

		for x := plot.Area.Min.X - 5; x < plot.Area.Min.X; x++ {
			plot.Image.Set(x, y, image.White)
		}

		pt := freetype.Pt(8, y+5)
		if _, err := a.context.DrawString(formatValue(v, plot.Trace.Unit), pt); err != nil {
			return err
		}
	}

	return nil
}

func (a *Annotator) drawInfo(plot *Plot) error {
	rate, rateSuffix := humanize.ComputeSI(plot.Trace.SampleRate)
	info := fmt.Sprintf("%s  [%s]  %s samples @ %0.1f %sHz",
		plot.Trace.Channel.Name,
		plot.Trace.Channel.Group,
		humanize.Comma(int64(len(plot.Trace.Samples))),
		rate, rateSuffix)

	pt := freetype.Pt(plot.Area.Min.X, 25)
	_, err := a.context.DrawString(info, pt)
	return err
}

func formatValue(v float64, unit string) string {
	if unit == display.UnitLogic {
		return fmt.Sprintf("%0.0f", v)
	}
	return fmt.Sprintf("%0.1f %s", v, unit)
}
