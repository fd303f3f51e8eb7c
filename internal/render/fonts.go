package render

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
)

// Well-known CJK-capable font locations, checked in order when no font
// is configured. The word cloud cannot render Chinese text without one
// of these; charts fall back to the plotting library's default face.
var systemFontCandidates = []string{
	"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/noto-cjk/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/truetype/wqy/wqy-microhei.ttc",
	"/usr/share/fonts/truetype/wqy/wqy-zenhei.ttc",
	"/usr/share/fonts/truetype/arphic/uming.ttc",
	"/System/Library/Fonts/PingFang.ttc",
	"/System/Library/Fonts/STHeiti Light.ttc",
	"C:\\Windows\\Fonts\\msyh.ttc",
	"C:\\Windows\\Fonts\\simhei.ttf",
}

// ResolveFont returns the path of a usable font file: the configured
// path when it exists, otherwise the first system candidate found.
func ResolveFont(configured string) (string, error) {
	candidates := systemFontCandidates
	if configured != "" {
		candidates = append([]string{configured}, candidates...)
	}

	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}

	return "", fmt.Errorf("no CJK font found; set font_path in the configuration")
}

// LoadTrueTypeFont parses a TTF file for chart text rendering. TTC
// collections are not parseable by freetype, so callers treat a
// failure here as "use the library default".
func LoadTrueTypeFont(path string) (*truetype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %w", path, err)
	}

	font, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	return font, nil
}
