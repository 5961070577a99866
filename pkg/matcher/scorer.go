package matcher

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
)

// ErrUpstream marks a failure of an external scorer: a crashed or noisy
// process, an unreachable model, or an unparsable answer.
var ErrUpstream = errors.New("match scorer failed")

type Source string

const (
	SourceInline  Source = "inline"
	SourceProcess Source = "process"
	SourceLLM     Source = "llm"
)

// Input is everything a scorer may look at.
type Input struct {
	ApplicantSkills []string
	JobSkills       []string
	// ResumeURI points at the applicant's uploaded resume. Inline scoring ignores it.
	ResumeURI string
}

type Result struct {
	Percentage float64  `json:"matchPercentage"`
	Source     Source   `json:"source"`
	Matched    []string `json:"matchedSkills,omitempty"`
	Missing    []string `json:"missingSkills,omitempty"`
	// Note explains a degraded result to the caller.
	Note string `json:"note,omitempty"`
}

// Scorer computes a match percentage between an applicant and a job.
type Scorer interface {
	Score(ctx context.Context, in Input) (Result, error)
}

// Inline scores by set overlap of profile skills and job skills.
type Inline struct{}

func (Inline) Score(_ context.Context, in Input) (Result, error) {
	matched, missing := Split(in.ApplicantSkills, in.JobSkills)
	return Result{
		Percentage: Percentage(in.ApplicantSkills, in.JobSkills),
		Source:     SourceInline,
		Matched:    matched,
		Missing:    missing,
	}, nil
}

// FallbackNote is attached to results produced after the primary scorer failed.
const FallbackNote = "match service unavailable, used profile skills"

// Fallback runs a primary scorer under a deadline and degrades to the inline
// overlap when it fails. It never returns an error.
type Fallback struct {
	primary Scorer
	timeout time.Duration
	log     zerolog.Logger
}

func NewFallback(primary Scorer, timeout time.Duration, log zerolog.Logger) *Fallback {
	return &Fallback{primary: primary, timeout: timeout, log: log}
}

func (f *Fallback) Score(ctx context.Context, in Input) (Result, error) {
	if f.primary == nil {
		return Inline{}.Score(ctx, in)
	}
	if _, ok := f.primary.(Inline); ok {
		return Inline{}.Score(ctx, in)
	}

	sctx := ctx
	if f.timeout > 0 {
		var cancel context.CancelFunc
		sctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}
	res, err := f.primary.Score(sctx, in)
	if err == nil {
		return res, nil
	}

	f.log.Warn().Err(err).Dur("timeout", f.timeout).Msg("primary match scorer failed, using inline overlap")
	res, _ = Inline{}.Score(ctx, in)
	res.Note = FallbackNote
	return res, nil
}
