package nlp

import (
	"regexp"
	"strings"
)

var (
	reNonWord = regexp.MustCompile(`[^\p{L}\p{N}+#]+`)
	reSpaces  = regexp.MustCompile(`\s+`)
)

// Normalize lowercases s, turns every run of punctuation into a single space
// and trims the result. '+' and '#' survive so "c++" and "c#" stay distinct.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = reNonWord.ReplaceAllString(s, " ")
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// ContainsPhrase reports whether an already normalized phrase occurs in
// normalized text as whole words: "rest api" matches "... rest api ..." but
// not "... rest apis ...".
func ContainsPhrase(normalizedText, normalizedPhrase string) bool {
	if normalizedPhrase == "" {
		return false
	}
	hay := " " + normalizedText + " "
	needle := " " + normalizedPhrase + " "
	return strings.Contains(hay, needle)
}

// SplitList splits a comma separated list, trims every item and drops empty
// and repeated ones. Order of first occurrence is kept.
func SplitList(s string) []string {
	out := []string{}
	seen := map[string]struct{}{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if _, ok := seen[part]; ok {
			continue
		}
		seen[part] = struct{}{}
		out = append(out, part)
	}
	return out
}
