package render

import (
	"fmt"
	"image/color"
	"image/png"
	"os"
	"sort"

	"github.com/psykhi/wordclouds"

	"hanlex/internal/logger"
)

const (
	cloudWidth  = 800
	cloudHeight = 600

	// Very large vocabularies make placement crawl; only the most
	// frequent words carry visual information anyway.
	maxCloudWords = 100

	cloudFontMaxSize = 120
	cloudFontMinSize = 12
)

var cloudPalette = []color.Color{
	color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	color.RGBA{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
}

// WordCloud renders token counts as a fixed-size PNG word cloud where
// word size is proportional to frequency.
type WordCloud struct {
	fontPath string
	logger   logger.Logger
}

func NewWordCloud(fontPath string, log logger.Logger) *WordCloud {
	return &WordCloud{
		fontPath: fontPath,
		logger:   log,
	}
}

// Render draws the word cloud and writes it to outPath, returning the
// path written. Counts beyond the placement cap are dropped from the
// cloud, largest counts kept.
func (wc *WordCloud) Render(counts map[string]int, outPath string) (string, error) {
	if len(counts) == 0 {
		return "", fmt.Errorf("no words to render")
	}
	if _, err := os.Stat(wc.fontPath); err != nil {
		return "", fmt.Errorf("word cloud font: %w", err)
	}

	cloud := wordclouds.NewWordcloud(capCounts(counts, maxCloudWords),
		wordclouds.FontFile(wc.fontPath),
		wordclouds.FontMaxSize(cloudFontMaxSize),
		wordclouds.FontMinSize(cloudFontMinSize),
		wordclouds.Width(cloudWidth),
		wordclouds.Height(cloudHeight),
		wordclouds.BackgroundColor(color.White),
		wordclouds.Colors(cloudPalette),
	)

	img := cloud.Draw()

	f, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("create word cloud file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return "", fmt.Errorf("encode word cloud: %w", err)
	}

	wc.logger.Info("WordCloud", "rendered", map[string]interface{}{
		"words": len(counts),
		"path":  outPath,
	})
	return outPath, nil
}

// capCounts keeps the n highest counts. Order among equal counts does
// not matter here; the cloud layout is driven by count alone.
func capCounts(counts map[string]int, n int) map[string]int {
	if len(counts) <= n {
		return counts
	}

	type entry struct {
		word  string
		count int
	}
	entries := make([]entry, 0, len(counts))
	for word, count := range counts {
		entries = append(entries, entry{word, count})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].count > entries[j].count
	})

	capped := make(map[string]int, n)
	for _, e := range entries[:n] {
		capped[e.word] = e.count
	}
	return capped
}
