package analysis

import (
	"fmt"
	"strings"
)

// TagSet is an allow-set of part-of-speech tags.
type TagSet map[string]struct{}

func NewTagSet(tags ...string) TagSet {
	set := make(TagSet, len(tags))
	for _, tag := range tags {
		set[tag] = struct{}{}
	}
	return set
}

func (s TagSet) Contains(tag string) bool {
	_, ok := s[tag]
	return ok
}

// FilterEntities returns the tagged tokens whose tag is in the
// allow-set, preserving input order.
func FilterEntities(tagged []TaggedToken, allow TagSet) []TaggedToken {
	var entities []TaggedToken
	for _, tt := range tagged {
		if allow.Contains(tt.Tag) {
			entities = append(entities, tt)
		}
	}
	return entities
}

// ParseTaggedLine parses a saved "token tag" line. A line that does
// not split into exactly two fields is an error; silently guessing at
// token/tag boundaries would corrupt entity extraction.
func ParseTaggedLine(line string) (TaggedToken, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return TaggedToken{}, fmt.Errorf("malformed tagged line %q: want token and tag", line)
	}
	return TaggedToken{Token: fields[0], Tag: fields[1]}, nil
}

// FilterEntityLines parses "token tag" lines and returns the entities
// whose tag is in the allow-set, plus the malformed lines skipped.
// Entity extraction goes through the line format so entities can come
// from live tagger output and saved result files alike.
func FilterEntityLines(lines []string, allow TagSet) ([]TaggedToken, []string) {
	tagged, malformed := ParseTaggedLines(lines)
	return FilterEntities(tagged, allow), malformed
}

// ParseTaggedLines parses saved tagger output. Malformed lines are
// returned separately so the caller can surface them instead of
// dropping them on the floor.
func ParseTaggedLines(lines []string) (tagged []TaggedToken, malformed []string) {
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		tt, err := ParseTaggedLine(line)
		if err != nil {
			malformed = append(malformed, line)
			continue
		}
		tagged = append(tagged, tt)
	}
	return tagged, malformed
}
