package render

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"hanlex/internal/analysis"
	"hanlex/internal/logger"
)

func sampleTop() []analysis.WordCount {
	return []analysis.WordCount{
		{Word: "北京", Count: 12},
		{Word: "上海", Count: 7},
		{Word: "广州", Count: 5},
		{Word: "深圳", Count: 3},
	}
}

func decodePNG(t *testing.T, path string) (width, height int) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open rendered chart: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode rendered chart: %v", err)
	}
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

func TestRenderBarChart(t *testing.T) {
	fc := NewFreqChart("", logger.NoOp{})
	out := filepath.Join(t.TempDir(), "chart.png")

	path, err := fc.Render(sampleTop(), BarKind, out)
	if err != nil {
		t.Fatalf("Render bar: %v", err)
	}
	if path != out {
		t.Errorf("returned path %q, want %q", path, out)
	}

	w, h := decodePNG(t, out)
	if w != chartWidth || h != chartHeight {
		t.Errorf("bar chart is %dx%d, want %dx%d", w, h, chartWidth, chartHeight)
	}
}

func TestRenderPieChart(t *testing.T) {
	fc := NewFreqChart("", logger.NoOp{})
	out := filepath.Join(t.TempDir(), "chart.png")

	if _, err := fc.Render(sampleTop(), PieKind, out); err != nil {
		t.Fatalf("Render pie: %v", err)
	}

	w, h := decodePNG(t, out)
	if w != chartHeight || h != chartHeight {
		t.Errorf("pie chart is %dx%d, want %dx%d", w, h, chartHeight, chartHeight)
	}
}

func TestRenderEmptyTopErrors(t *testing.T) {
	fc := NewFreqChart("", logger.NoOp{})

	if _, err := fc.Render(nil, BarKind, filepath.Join(t.TempDir(), "chart.png")); err == nil {
		t.Error("empty top should error")
	}
}

func TestRenderUnknownKindErrors(t *testing.T) {
	fc := NewFreqChart("", logger.NoOp{})

	if _, err := fc.Render(sampleTop(), ChartKind("scatter"), filepath.Join(t.TempDir(), "chart.png")); err == nil {
		t.Error("unknown chart kind should error")
	}
}

func TestNewFreqChartBadFontFallsBack(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "not-a-font.ttf")
	if err := os.WriteFile(bad, []byte("junk"), 0o644); err != nil {
		t.Fatal(err)
	}

	fc := NewFreqChart(bad, logger.NoOp{})
	if fc.font != nil {
		t.Error("unparseable font should leave the default face")
	}

	if _, err := fc.Render(sampleTop(), BarKind, filepath.Join(t.TempDir(), "chart.png")); err != nil {
		t.Errorf("Render with default face: %v", err)
	}
}
