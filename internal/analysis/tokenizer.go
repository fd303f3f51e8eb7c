package analysis

import (
	"fmt"

	"github.com/go-ego/gse"

	"hanlex/internal/logger"
)

// TaggedToken is a token paired with its part-of-speech tag. Tags come
// from the segmenter's ICTCLAS-style tag set ("n", "v", "nr", "ns",
// ...).
type TaggedToken struct {
	Token string
	Tag   string
}

func (tt TaggedToken) String() string {
	return tt.Token + " " + tt.Tag
}

// Tokenizer wraps a gse segmenter instance. User dictionaries merge
// into this instance only, so vocabulary changes stay scoped to the
// session that owns the tokenizer instead of leaking process-wide.
type Tokenizer struct {
	seg    gse.Segmenter
	logger logger.Logger
}

func NewTokenizer(log logger.Logger) (*Tokenizer, error) {
	t := &Tokenizer{logger: log}

	if err := t.seg.LoadDictEmbed(); err != nil {
		return nil, fmt.Errorf("load embedded dictionary: %w", err)
	}

	log.Info("Tokenizer", "segmenter ready", nil)
	return t, nil
}

// LoadUserDict merges the entries of a user dictionary file into the
// segmenter vocabulary. The merge affects every later Cut and Tag call
// on this tokenizer for the rest of the session.
func (t *Tokenizer) LoadUserDict(path string) error {
	if err := t.seg.LoadDict(path); err != nil {
		return fmt.Errorf("load user dictionary %s: %w", path, err)
	}

	t.logger.Info("Tokenizer", "user dictionary merged", map[string]interface{}{
		"path": path,
	})
	return nil
}

// Cut segments text into an ordered token sequence covering the input
// without gaps. Deterministic for unchanged text and dictionary state.
func (t *Tokenizer) Cut(text string) []string {
	return t.seg.Cut(text, true)
}

// Tag segments text and annotates every token with its
// part-of-speech tag.
func (t *Tokenizer) Tag(text string) []TaggedToken {
	segs := t.seg.Pos(text, true)

	tagged := make([]TaggedToken, 0, len(segs))
	for _, s := range segs {
		tagged = append(tagged, TaggedToken{Token: s.Text, Tag: s.Pos})
	}
	return tagged
}
