package matcher

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nnreact/job-portal/pkg/llm"
)

type fakeModel struct {
	answer string
	err    error
	prompt string
}

func (m *fakeModel) Ask(_ context.Context, _, user string) (string, error) {
	m.prompt = user
	return m.answer, m.err
}

type fakeTexts map[string]string

func (f fakeTexts) Text(_ context.Context, uri string) (string, error) {
	text, ok := f[uri]
	if !ok {
		return "", errors.New("not found")
	}
	return text, nil
}

var resumes = fakeTexts{"/uploads/cv.pdf": "Backend developer: Go, PostgreSQL."}

func TestLLMScore(t *testing.T) {
	model := &fakeModel{answer: "Sure!\n```json\n{\"matchPercentage\": 66.666, \"matched_skills\": [\"go\"]}\n```"}
	res, err := NewLLM(model, resumes).Score(context.Background(), sample)
	require.NoError(t, err)
	assert.Equal(t, 66.67, res.Percentage)
	assert.Equal(t, SourceLLM, res.Source)
	assert.Equal(t, []string{"go"}, res.Matched)
	assert.Contains(t, model.prompt, "go, sql, docker")
	assert.Contains(t, model.prompt, "Backend developer")
}

func TestLLMScoreFailures(t *testing.T) {
	tests := []struct {
		name  string
		model *fakeModel
		uri   string
	}{
		{"model error", &fakeModel{err: errors.New("503")}, "/uploads/cv.pdf"},
		{"no json", &fakeModel{answer: "I think 70%"}, "/uploads/cv.pdf"},
		{"missing field", &fakeModel{answer: `{"score": 70}`}, "/uploads/cv.pdf"},
		{"out of range", &fakeModel{answer: `{"matchPercentage": -3}`}, "/uploads/cv.pdf"},
		{"resume not found", &fakeModel{answer: `{"matchPercentage": 50}`}, "/uploads/other.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := sample
			in.ResumeURI = tt.uri
			_, err := NewLLM(tt.model, resumes).Score(context.Background(), in)
			assert.ErrorIs(t, err, ErrUpstream)
		})
	}
}

func TestLLMClipsResumeOnRuneBoundary(t *testing.T) {
	long := strings.Repeat("ж", 7000) // 14000 bytes
	var prompt string
	model := llm.ChatFunc(func(_ context.Context, _, user string) (string, error) {
		prompt = user
		return `{"matchPercentage": 10}`, nil
	})
	s := NewLLM(model, fakeTexts{"/uploads/long.txt": long})

	in := sample
	in.ResumeURI = "/uploads/long.txt"
	_, err := s.Score(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, utf8.ValidString(prompt))
	assert.Less(t, strings.Count(prompt, "ж"), 7000)
}

func TestFallbackOverSlowLLM(t *testing.T) {
	model := llm.ChatFunc(func(ctx context.Context, _, _ string) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	})
	f := NewFallback(NewLLM(model, resumes), 20*time.Millisecond, zerolog.Nop())

	res, err := f.Score(context.Background(), sample)
	require.NoError(t, err)
	assert.Equal(t, SourceInline, res.Source)
	assert.Equal(t, FallbackNote, res.Note)
}
