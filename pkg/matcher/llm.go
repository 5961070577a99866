package matcher

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/nnreact/job-portal/pkg/llm"
)

// TextSource yields the plain text of a resume.
type TextSource interface {
	Text(ctx context.Context, uri string) (string, error)
}

// LLM asks a chat model to rate a resume against the job skills.
type LLM struct {
	model    llm.ChatModel
	resumes  TextSource
	maxChars int
}

func NewLLM(model llm.ChatModel, resumes TextSource) *LLM {
	return &LLM{model: model, resumes: resumes, maxChars: 12000}
}

type llmAnswer struct {
	MatchPercentage *float64 `json:"matchPercentage"`
	MatchedSkills   []string `json:"matched_skills"`
	MissingSkills   []string `json:"missing_skills"`
}

const llmSystemPrompt = "You are a technical recruiter. Answer strictly with one JSON object, no markdown and no explanations."

func (s *LLM) Score(ctx context.Context, in Input) (Result, error) {
	if s.model == nil || s.resumes == nil {
		return Result{}, fmt.Errorf("%w: llm scorer is not configured", ErrUpstream)
	}
	text, err := s.resumes.Text(ctx, in.ResumeURI)
	if err != nil {
		return Result{}, fmt.Errorf("%w: load resume: %w", ErrUpstream, err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return Result{}, fmt.Errorf("%w: empty resume text", ErrUpstream)
	}
	if len(text) > s.maxChars {
		n := s.maxChars
		for n > 0 && !utf8.RuneStart(text[n]) {
			n--
		}
		text = text[:n]
	}

	user := fmt.Sprintf(
		"Required skills: %s\n\nResume:\n<<<\n%s\n>>>\n\n"+
			"Return JSON with fields:\n"+
			"- matchPercentage (number from 0 to 100, share of required skills the candidate has)\n"+
			"- matched_skills (string[])\n"+
			"- missing_skills (string[])\n",
		strings.Join(in.JobSkills, ", "), text,
	)
	raw, err := s.model.Ask(ctx, llmSystemPrompt, user)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	ans, err := parseAnswer(raw)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	pct := *ans.MatchPercentage
	if math.IsNaN(pct) || pct < 0 || pct > 100 {
		return Result{}, fmt.Errorf("%w: matchPercentage %v out of range", ErrUpstream, pct)
	}
	return Result{
		Percentage: Round2(pct),
		Source:     SourceLLM,
		Matched:    ans.MatchedSkills,
		Missing:    ans.MissingSkills,
	}, nil
}

// parseAnswer accepts a bare JSON object or one wrapped in prose or a fenced block.
func parseAnswer(raw string) (llmAnswer, error) {
	raw = strings.TrimSpace(raw)
	var out llmAnswer
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		i := strings.Index(raw, "{")
		j := strings.LastIndex(raw, "}")
		if i < 0 || j <= i {
			return llmAnswer{}, fmt.Errorf("no JSON object in model answer")
		}
		out = llmAnswer{}
		if err := json.Unmarshal([]byte(raw[i:j+1]), &out); err != nil {
			return llmAnswer{}, fmt.Errorf("decode model answer: %w", err)
		}
	}
	if out.MatchPercentage == nil {
		return llmAnswer{}, fmt.Errorf("matchPercentage missing in model answer")
	}
	return out, nil
}
