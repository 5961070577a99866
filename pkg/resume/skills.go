package resume

import (
	"github.com/nnreact/job-portal/pkg/matcher"
	"github.com/nnreact/job-portal/pkg/nlp"
)

// SkillReport says which of the wanted skills a resume mentions.
type SkillReport struct {
	Matched         []string `json:"matched_skills"`
	Missing         []string `json:"missing_skills"`
	MatchPercentage float64  `json:"matchPercentage"`
}

// MatchSkills looks for every skill (and its aliases) in the resume text as a
// whole-word phrase. Repeated or blank skills count once.
func MatchSkills(text string, skills []string) SkillReport {
	norm := nlp.Normalize(text)
	rep := SkillReport{Matched: []string{}, Missing: []string{}}
	seen := map[string]struct{}{}
	for _, s := range skills {
		key := nlp.Normalize(s)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		if nlp.MentionsSkill(norm, s) {
			rep.Matched = append(rep.Matched, s)
		} else {
			rep.Missing = append(rep.Missing, s)
		}
	}
	rep.MatchPercentage = matcher.Percentage(rep.Matched, append(append([]string{}, rep.Matched...), rep.Missing...))
	return rep
}
