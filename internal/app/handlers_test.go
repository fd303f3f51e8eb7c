package app

import (
	"strings"
	"testing"

	"hanlex/internal/analysis"
)

func TestFormatTokensTruncatesLongSequences(t *testing.T) {
	tokens := make([]string, displayTokenLimit+50)
	for i := range tokens {
		tokens[i] = "词"
	}

	out := formatTokens(tokens)

	if !strings.HasSuffix(out, "...") {
		t.Error("truncated output should end with ellipsis")
	}
	if got := strings.Count(out, "/"); got != displayTokenLimit-1 {
		t.Errorf("output shows %d separators, want %d", got, displayTokenLimit-1)
	}
}

func TestFormatTokensShortSequence(t *testing.T) {
	out := formatTokens([]string{"我", "爱", "北京", "天安门"})

	if !strings.Contains(out, "我/爱/北京/天安门") {
		t.Errorf("output = %q", out)
	}
	if strings.HasSuffix(out, "...") {
		t.Error("short sequence must not show ellipsis")
	}
}

func TestFormatFrequencies(t *testing.T) {
	freq := analysis.Count([]string{"北京", "北京", "上海"}, nil)

	out := formatFrequencies(freq, 10)

	if !strings.Contains(out, "北京: 2") || !strings.Contains(out, "上海: 1") {
		t.Errorf("output = %q", out)
	}
}

func TestFormatEntities(t *testing.T) {
	entities := []analysis.TaggedToken{
		{Token: "鲁迅", Tag: "nr"},
		{Token: "北京", Tag: "ns"},
	}

	out := formatEntities(entities)
	if !strings.Contains(out, "鲁迅 (nr)") || !strings.Contains(out, "北京 (ns)") {
		t.Errorf("output = %q", out)
	}

	if got := formatEntities(nil); got != "No entities found." {
		t.Errorf("empty entities = %q", got)
	}
}
