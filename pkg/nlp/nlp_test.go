package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "rest api go", Normalize("  REST-API, Go!  "))
	assert.Equal(t, "c++ c#", Normalize("C++ / C#"))
	assert.Equal(t, "", Normalize(" ... "))
}

func TestContainsPhrase(t *testing.T) {
	text := Normalize("Built REST APIs and a REST API gateway")
	assert.True(t, ContainsPhrase(text, "rest api"))
	assert.False(t, ContainsPhrase(Normalize("rest apis only"), "rest api"))
	assert.False(t, ContainsPhrase(text, ""))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"go", "sql", "Docker"}, SplitList(" go, sql,,go , Docker ,"))
	assert.Equal(t, []string{}, SplitList(""))
}

func TestSkillVariants(t *testing.T) {
	assert.Equal(t, []string{"golang", "go"}, SkillVariants("Golang"))
	assert.Equal(t, []string{"postgres", "postgresql"}, SkillVariants("Postgres"))
	assert.Contains(t, SkillVariants("k8s operators"), "kubernetes operators")
	assert.Empty(t, SkillVariants("  "))
}

func TestMentionsSkill(t *testing.T) {
	text := Normalize("5 years with Golang, PostgreSQL and Kubernetes.")
	assert.True(t, MentionsSkill(text, "Go"))
	assert.True(t, MentionsSkill(text, "postgres"))
	assert.True(t, MentionsSkill(text, "k8s"))
	assert.False(t, MentionsSkill(text, "Java"))
}

func TestMentionsSkillTypos(t *testing.T) {
	text := Normalize("PostgreSQL, ReactJS and Kubernetess clusters; javascript developer")

	tests := []struct {
		skill string
		want  bool
	}{
		{"kubernetes", true},
		{"postgres", true},
		{"react", true},
		{"Machine Lerning", false},
		{"java", false},
		{"go", false},
	}
	for _, tt := range tests {
		t.Run(tt.skill, func(t *testing.T) {
			assert.Equal(t, tt.want, MentionsSkill(text, tt.skill))
		})
	}

	assert.True(t, MentionsSkill(Normalize("applied machine lerning to ranking"), "machine learning"))
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 100.0, Similarity("kubernetes", "kubernetes"))
	assert.GreaterOrEqual(t, Similarity("kubernetess", "kubernetes"), float64(FuzzyThreshold))
	assert.Less(t, Similarity("javascript", "java"), float64(FuzzyThreshold))
	assert.Less(t, Similarity("do", "go"), float64(FuzzyThreshold))
	assert.Equal(t, 100.0, Similarity("", ""))
}
