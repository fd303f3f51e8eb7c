package analysis

import (
	"fmt"
	"os"
	"unicode/utf8"
)

// LoadDocument reads a whole text file into memory. Input documents
// are required to be valid UTF-8; anything else is rejected rather
// than silently mangled downstream by the tokenizer.
func LoadDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("document %s is not valid UTF-8", path)
	}

	return string(data), nil
}
