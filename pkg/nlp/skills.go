package nlp

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// aliases groups spellings of the same skill. Keys and values are normalized.
var aliases = map[string][]string{
	"postgres":         {"postgresql"},
	"postgresql":       {"postgres"},
	"k8s":              {"kubernetes"},
	"kubernetes":       {"k8s"},
	"golang":           {"go"},
	"go":               {"golang"},
	"js":               {"javascript"},
	"javascript":       {"js"},
	"ts":               {"typescript"},
	"typescript":       {"ts"},
	"node":             {"nodejs", "node js"},
	"nodejs":           {"node", "node js"},
	"node js":          {"node", "nodejs"},
	"react":            {"reactjs", "react js"},
	"reactjs":          {"react", "react js"},
	"rest":             {"rest api"},
	"rest api":         {"rest"},
	"ci cd":            {"cicd"},
	"cicd":             {"ci cd"},
	"ml":               {"machine learning"},
	"machine learning": {"ml"},
}

// SkillVariants returns the normalized spellings a skill may appear under in
// free text, the skill itself first.
func SkillVariants(skill string) []string {
	base := Normalize(skill)
	if base == "" {
		return []string{}
	}
	out := []string{}
	seen := map[string]struct{}{}
	add := func(s string) {
		if s == "" {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	add(base)
	for _, a := range aliases[base] {
		add(a)
	}

	// multi-word skills: swap each token for its first alias
	parts := strings.Split(base, " ")
	if len(parts) > 1 {
		swapped := make([]string, len(parts))
		changed := false
		for i, p := range parts {
			swapped[i] = p
			if alt := aliases[p]; len(alt) > 0 {
				swapped[i] = alt[0]
				changed = true
			}
		}
		if changed {
			add(strings.Join(swapped, " "))
		}
	}
	return out
}

// FuzzyThreshold is the minimum similarity, in percent, for a typo'd
// spelling to count as a mention.
const FuzzyThreshold = 85

// MentionsSkill reports whether normalized text mentions the skill under any
// of its variants. Whole-word phrases are tried first; failing that, any run
// of as many words as the variant counts when its edit-distance similarity
// reaches FuzzyThreshold ("kubernetess" mentions "kubernetes", "javascript"
// does not mention "java").
func MentionsSkill(normalizedText, skill string) bool {
	variants := SkillVariants(skill)
	for _, v := range variants {
		if ContainsPhrase(normalizedText, v) {
			return true
		}
	}
	words := strings.Fields(normalizedText)
	for _, v := range variants {
		if fuzzyContains(words, v) {
			return true
		}
	}
	return false
}

func fuzzyContains(words []string, phrase string) bool {
	n := len(strings.Fields(phrase))
	if n == 0 || n > len(words) {
		return false
	}
	for i := 0; i+n <= len(words); i++ {
		if Similarity(strings.Join(words[i:i+n], " "), phrase) >= FuzzyThreshold {
			return true
		}
	}
	return false
}

// Similarity is 100 * (1 - levenshtein(a, b) / max(len(a), len(b))),
// measured in runes.
func Similarity(a, b string) float64 {
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 100
	}
	d := fuzzy.LevenshteinDistance(a, b)
	return 100 * (1 - float64(d)/float64(longest))
}
