package analysis

import (
	"fmt"
	"sync"

	"hanlex/internal/logger"
)

// Session owns the per-session analysis state: the current document,
// its token sequence and the derived frequency table. Each field is
// replaced wholesale when its producing step succeeds; a failed step
// leaves all prior state intact.
type Session struct {
	mu        sync.RWMutex
	tokenizer *Tokenizer
	logger    logger.Logger

	document string
	tokens   []string
	freq     *FreqTable
}

func NewSession(tokenizer *Tokenizer, log logger.Logger) *Session {
	return &Session{
		tokenizer: tokenizer,
		logger:    log,
	}
}

// LoadUserDict merges a user dictionary into the session vocabulary.
// The merge is a write to shared segmenter state, so it takes the
// session write lock and can never overlap a running Cut or Tag.
func (s *Session) LoadUserDict(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokenizer.LoadUserDict(path)
}

// LoadDocument reads a document and makes it the session's current
// text. Tokens and frequencies from a previous document are cleared.
func (s *Session) LoadDocument(path string) (string, error) {
	text, err := LoadDocument(path)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.document = text
	s.tokens = nil
	s.freq = nil

	s.logger.Info("Session", "document loaded", map[string]interface{}{
		"path":  path,
		"bytes": len(text),
	})
	return text, nil
}

func (s *Session) Document() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.document
}

// Tokenize segments the current document and replaces the session
// token sequence.
func (s *Session) Tokenize() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.document == "" {
		return nil, fmt.Errorf("no document loaded")
	}

	tokens := s.tokenizer.Cut(s.document)
	s.tokens = tokens

	s.logger.Info("Session", "document tokenized", map[string]interface{}{
		"tokens": len(tokens),
	})
	return tokens, nil
}

func (s *Session) Tokens() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens
}

// CountFrequencies builds a fresh frequency table from the current
// token sequence, filtering against the stopword file at the given
// path. A missing stopword file counts as an empty set.
func (s *Session) CountFrequencies(stopwordsPath string) (*FreqTable, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.tokens) == 0 {
		return nil, fmt.Errorf("no tokens: tokenize a document first")
	}

	stopwords, err := LoadStopwords(stopwordsPath)
	if err != nil {
		return nil, err
	}

	freq := Count(s.tokens, stopwords)
	s.freq = freq

	s.logger.Info("Session", "frequencies counted", map[string]interface{}{
		"distinct":  freq.Len(),
		"stopwords": len(stopwords),
	})
	return freq, nil
}

func (s *Session) Frequencies() *FreqTable {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.freq
}

// TagDocument runs part-of-speech tagging over the current document.
// Tagged output is a derived view and is not kept in session state.
func (s *Session) TagDocument() ([]TaggedToken, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.document == "" {
		return nil, fmt.Errorf("no document loaded")
	}

	tagged := s.tokenizer.Tag(s.document)

	s.logger.Info("Session", "document tagged", map[string]interface{}{
		"tokens": len(tagged),
	})
	return tagged, nil
}
