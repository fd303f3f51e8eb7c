// Package dict maintains the persisted user-dictionary file: one
// custom vocabulary entry per line, in the segmenter's dictionary
// syntax.
package dict

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"hanlex/internal/logger"
)

type Manager struct {
	path   string
	logger logger.Logger
}

func NewManager(path string, log logger.Logger) *Manager {
	return &Manager{
		path:   path,
		logger: log,
	}
}

func (m *Manager) Path() string {
	return m.path
}

// Add appends the word as a new dictionary line, creating the file if
// it does not exist yet.
func (m *Manager) Add(word string) error {
	if err := validateWord(word); err != nil {
		return err
	}

	f, err := os.OpenFile(m.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(word + "\n"); err != nil {
		return fmt.Errorf("append dictionary entry: %w", err)
	}

	m.logger.Info("Dictionary", "entry added", map[string]interface{}{
		"word": word,
		"path": m.path,
	})
	return nil
}

// Remove rewrites the dictionary excluding every line that exactly
// equals the word. The rewrite goes through a temp file and rename so
// a failed write never truncates the dictionary. Unrelated lines are
// kept byte for byte.
func (m *Manager) Remove(word string) error {
	if err := validateWord(word); err != nil {
		return err
	}

	data, err := os.ReadFile(m.path)
	if err != nil {
		return fmt.Errorf("read dictionary: %w", err)
	}

	var kept strings.Builder
	removed := 0
	for _, line := range strings.SplitAfter(string(data), "\n") {
		if strings.TrimSpace(line) == word {
			removed++
			continue
		}
		kept.WriteString(line)
	}

	tmp, err := os.CreateTemp(filepath.Dir(m.path), ".dict-*")
	if err != nil {
		return fmt.Errorf("create temp dictionary: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(kept.String()); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp dictionary: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp dictionary: %w", err)
	}
	if err := os.Rename(tmpPath, m.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace dictionary: %w", err)
	}

	m.logger.Info("Dictionary", "entry removed", map[string]interface{}{
		"word":    word,
		"removed": removed,
		"path":    m.path,
	})
	return nil
}

// Words returns the non-empty dictionary entries in file order.
func (m *Manager) Words() ([]string, error) {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return nil, fmt.Errorf("read dictionary: %w", err)
	}

	var words []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			words = append(words, line)
		}
	}
	return words, nil
}

func validateWord(word string) error {
	trimmed := strings.TrimSpace(word)
	if trimmed == "" {
		return fmt.Errorf("dictionary word is empty")
	}
	if trimmed != word || strings.ContainsAny(word, " \t\n") {
		return fmt.Errorf("dictionary word %q contains whitespace", word)
	}
	return nil
}
