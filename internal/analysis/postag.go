package analysis

import (
	"fmt"
	"os"
	"strings"
)

// SaveTagged writes tagged tokens as newline-joined "token tag" lines
// to path, replacing any previous content, and returns the lines.
func SaveTagged(tagged []TaggedToken, path string) ([]string, error) {
	lines := make([]string, len(tagged))
	for i, tt := range tagged {
		lines[i] = tt.String()
	}

	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		return nil, fmt.Errorf("write tagged result: %w", err)
	}
	return lines, nil
}
