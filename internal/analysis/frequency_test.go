package analysis

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestCountFiltersShortAndStopTokens(t *testing.T) {
	tokens := []string{"我", "爱", "北京", "天安门", "北京", "的"}
	stopwords := StopwordSet{"的": {}}

	freq := Count(tokens, stopwords)

	if got := freq.Get("北京"); got != 2 {
		t.Errorf("北京 count = %d, want 2", got)
	}
	if got := freq.Get("天安门"); got != 1 {
		t.Errorf("天安门 count = %d, want 1", got)
	}
	// Single-rune tokens are excluded regardless of stopwords.
	for _, short := range []string{"我", "爱", "的"} {
		if got := freq.Get(short); got != 0 {
			t.Errorf("%s count = %d, want 0", short, got)
		}
	}
	if freq.Len() != 2 {
		t.Errorf("Len() = %d, want 2", freq.Len())
	}
}

func TestCountScenarioTiananmen(t *testing.T) {
	// "我爱北京天安门" segmented; no stopwords.
	tokens := []string{"我", "爱", "北京", "天安门"}

	freq := Count(tokens, nil)

	if got := freq.Get("北京"); got != 1 {
		t.Errorf("北京 count = %d, want 1", got)
	}
	if got := freq.Get("天安门"); got != 1 {
		t.Errorf("天安门 count = %d, want 1", got)
	}
	if got := freq.Get("我"); got != 0 {
		t.Errorf("我 excluded by length rule, got count %d", got)
	}
}

func TestTopNOrdering(t *testing.T) {
	tokens := []string{
		"苹果", "香蕉", "苹果", "樱桃", "香蕉", "苹果",
		"梨子", "樱桃", "葡萄",
	}

	freq := Count(tokens, nil)

	top := freq.TopN(3)
	if len(top) != 3 {
		t.Fatalf("TopN(3) returned %d entries", len(top))
	}

	want := []WordCount{
		{Word: "苹果", Count: 3},
		{Word: "香蕉", Count: 2},
		{Word: "樱桃", Count: 2},
	}
	if !reflect.DeepEqual(top, want) {
		t.Errorf("TopN(3) = %v, want %v", top, want)
	}
}

func TestTopNTiesBreakByFirstSeen(t *testing.T) {
	// All counts equal; order must follow first encounter.
	tokens := []string{"丙丙", "甲甲", "乙乙"}

	top := Count(tokens, nil).TopN(10)

	want := []string{"丙丙", "甲甲", "乙乙"}
	for i, wc := range top {
		if wc.Word != want[i] {
			t.Errorf("top[%d] = %s, want %s", i, wc.Word, want[i])
		}
	}
}

func TestTopNLargerThanTable(t *testing.T) {
	freq := Count([]string{"北京", "北京"}, nil)

	if got := len(freq.TopN(10)); got != 1 {
		t.Errorf("TopN(10) returned %d entries, want 1", got)
	}
}

func TestLoadStopwordsMissingFileIsEmptySet(t *testing.T) {
	missing, err := LoadStopwords(filepath.Join(t.TempDir(), "absent.txt"))
	if err != nil {
		t.Fatalf("missing stopword file should not error: %v", err)
	}
	if len(missing) != 0 {
		t.Errorf("missing file yielded %d stopwords, want 0", len(missing))
	}

	// Behaviour must match an actually empty file.
	emptyPath := filepath.Join(t.TempDir(), "stopwords.txt")
	if err := os.WriteFile(emptyPath, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	empty, err := LoadStopwords(emptyPath)
	if err != nil {
		t.Fatalf("empty stopword file: %v", err)
	}

	tokens := []string{"北京", "天安门"}
	a := Count(tokens, missing)
	b := Count(tokens, empty)
	if !reflect.DeepEqual(a.Counts(), b.Counts()) {
		t.Errorf("missing-file table %v differs from empty-file table %v", a.Counts(), b.Counts())
	}
}

func TestLoadStopwordsSplitsOnWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stopwords.txt")
	if err := os.WriteFile(path, []byte("的 了\n是\t和\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	set, err := LoadStopwords(path)
	if err != nil {
		t.Fatal(err)
	}

	for _, word := range []string{"的", "了", "是", "和"} {
		if !set.Contains(word) {
			t.Errorf("stopword set missing %s", word)
		}
	}
	if len(set) != 4 {
		t.Errorf("stopword set has %d entries, want 4", len(set))
	}
}
