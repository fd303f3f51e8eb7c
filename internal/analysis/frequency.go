package analysis

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode/utf8"
)

// StopwordSet holds tokens excluded from frequency counting.
type StopwordSet map[string]struct{}

func (s StopwordSet) Contains(token string) bool {
	_, ok := s[token]
	return ok
}

// LoadStopwords reads a whitespace-separated stopword file. A missing
// file is a normal condition and yields an empty set; any other read
// failure is an error.
func LoadStopwords(path string) (StopwordSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return StopwordSet{}, nil
		}
		return nil, fmt.Errorf("read stopwords: %w", err)
	}

	set := make(StopwordSet)
	for _, word := range strings.Fields(string(data)) {
		set[word] = struct{}{}
	}
	return set, nil
}

// WordCount is a single frequency table entry.
type WordCount struct {
	Word  string
	Count int
}

// FreqTable maps tokens to occurrence counts and remembers the order
// in which distinct tokens were first seen, so TopN can break count
// ties deterministically.
type FreqTable struct {
	counts    map[string]int
	firstSeen map[string]int
	next      int
}

// Count tallies the given tokens, dropping tokens that are in the
// stopword set or shorter than two runes. A nil stopword set behaves
// like an empty one.
func Count(tokens []string, stopwords StopwordSet) *FreqTable {
	ft := &FreqTable{
		counts:    make(map[string]int),
		firstSeen: make(map[string]int),
	}

	for _, token := range tokens {
		if utf8.RuneCountInString(token) <= 1 {
			continue
		}
		if stopwords.Contains(token) {
			continue
		}

		if _, seen := ft.counts[token]; !seen {
			ft.firstSeen[token] = ft.next
			ft.next++
		}
		ft.counts[token]++
	}

	return ft
}

// Get returns the count for a token, zero if absent.
func (ft *FreqTable) Get(token string) int {
	return ft.counts[token]
}

// Len returns the number of distinct tokens counted.
func (ft *FreqTable) Len() int {
	return len(ft.counts)
}

// Counts returns a copy of the token-to-count mapping.
func (ft *FreqTable) Counts() map[string]int {
	out := make(map[string]int, len(ft.counts))
	for word, count := range ft.counts {
		out[word] = count
	}
	return out
}

// TopN returns up to n entries ordered by descending count, ties
// broken by first encounter.
func (ft *FreqTable) TopN(n int) []WordCount {
	entries := make([]WordCount, 0, len(ft.counts))
	for word, count := range ft.counts {
		entries = append(entries, WordCount{Word: word, Count: count})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return ft.firstSeen[entries[i].Word] < ft.firstSeen[entries[j].Word]
	})

	if n < len(entries) {
		entries = entries[:n]
	}
	return entries
}
