package render

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	chart "github.com/wcharczuk/go-chart/v2"

	"hanlex/internal/analysis"
	"hanlex/internal/logger"
)

// ChartKind selects the frequency chart style.
type ChartKind string

const (
	BarKind ChartKind = "bar"
	PieKind ChartKind = "pie"
)

const (
	chartWidth  = 1200
	chartHeight = 600
	barWidth    = 60
)

// FreqChart renders frequency tables to PNG files. Rendering is a
// pure image pipeline with no display state, so it is safe to call
// from a goroutine while the Fyne event loop runs.
type FreqChart struct {
	font   *truetype.Font
	logger logger.Logger
}

// NewFreqChart builds a chart renderer. fontPath may point at a TTF
// used for CJK labels; when empty or unparseable the library default
// face is used and CJK labels degrade to missing glyphs.
func NewFreqChart(fontPath string, log logger.Logger) *FreqChart {
	fc := &FreqChart{logger: log}

	if fontPath != "" {
		font, err := LoadTrueTypeFont(fontPath)
		if err != nil {
			log.Warning("FreqChart", "chart font unavailable, using default", map[string]interface{}{
				"path":   fontPath,
				"reason": err.Error(),
			})
		} else {
			fc.font = font
		}
	}

	return fc
}

// Render draws the given top-N entries as a bar or pie chart and
// writes the PNG to outPath, returning the path written.
func (fc *FreqChart) Render(top []analysis.WordCount, kind ChartKind, outPath string) (string, error) {
	if len(top) == 0 {
		return "", fmt.Errorf("no frequencies to chart")
	}

	f, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	switch kind {
	case BarKind:
		err = fc.renderBar(top, f)
	case PieKind:
		err = fc.renderPie(top, f)
	default:
		err = fmt.Errorf("unknown chart kind %q", kind)
	}
	if err != nil {
		return "", err
	}

	fc.logger.Info("FreqChart", "rendered", map[string]interface{}{
		"kind": string(kind),
		"bars": len(top),
		"path": outPath,
	})
	return outPath, nil
}

func (fc *FreqChart) renderBar(top []analysis.WordCount, f *os.File) error {
	bars := make([]chart.Value, len(top))
	for i, wc := range top {
		bars[i] = chart.Value{Label: wc.Word, Value: float64(wc.Count)}
	}

	bc := chart.BarChart{
		Title:    "Word Frequency",
		Font:     fc.font,
		Width:    chartWidth,
		Height:   chartHeight,
		BarWidth: barWidth,
		Bars:     bars,
	}

	if err := bc.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("render bar chart: %w", err)
	}
	return nil
}

func (fc *FreqChart) renderPie(top []analysis.WordCount, f *os.File) error {
	total := 0
	for _, wc := range top {
		total += wc.Count
	}

	values := make([]chart.Value, len(top))
	for i, wc := range top {
		pct := 100 * float64(wc.Count) / float64(total)
		values[i] = chart.Value{
			Label: fmt.Sprintf("%s %.1f%%", wc.Word, pct),
			Value: float64(wc.Count),
		}
	}

	pc := chart.PieChart{
		Title:  "Word Frequency",
		Font:   fc.font,
		Width:  chartHeight,
		Height: chartHeight,
		Values: values,
	}

	if err := pc.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("render pie chart: %w", err)
	}
	return nil
}
