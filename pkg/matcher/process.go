package matcher

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"os/exec"
	"strings"
)

// Process scores by running an external program:
//
//	<bin> [args...] <resume-location> <skill,skill,...>
//
// The program must print exactly one JSON object with a numeric
// "matchPercentage" on stdout, write nothing to stderr and exit 0.
type Process struct {
	bin     string
	args    []string
	env     []string
	resolve func(uri string) string
}

type ProcessOption func(*Process)

// WithArgs prepends fixed arguments, e.g. a script path for an interpreter.
func WithArgs(args ...string) ProcessOption {
	return func(p *Process) { p.args = append(p.args, args...) }
}

// WithEnv adds KEY=VALUE pairs to the inherited environment.
func WithEnv(env ...string) ProcessOption {
	return func(p *Process) { p.env = append(p.env, env...) }
}

// WithLocator maps a stored resume URI to the location handed to the program,
// typically a local file path.
func WithLocator(resolve func(uri string) string) ProcessOption {
	return func(p *Process) { p.resolve = resolve }
}

func NewProcess(bin string, opts ...ProcessOption) *Process {
	p := &Process{bin: bin}
	for _, o := range opts {
		o(p)
	}
	return p
}

type processOutput struct {
	MatchPercentage *float64 `json:"matchPercentage"`
	MatchedSkills   []string `json:"matched_skills"`
	MissingSkills   []string `json:"missing_skills"`
	Error           string   `json:"error"`
}

func (p *Process) Score(ctx context.Context, in Input) (Result, error) {
	location := strings.TrimSpace(in.ResumeURI)
	if location == "" {
		return Result{}, fmt.Errorf("%w: no resume to score", ErrUpstream)
	}
	if p.resolve != nil {
		location = p.resolve(location)
	}

	args := make([]string, 0, len(p.args)+2)
	args = append(args, p.args...)
	args = append(args, location, strings.Join(in.JobSkills, ","))

	cmd := exec.CommandContext(ctx, p.bin, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if len(p.env) > 0 {
		cmd.Env = append(os.Environ(), p.env...)
	}

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Result{}, fmt.Errorf("%w: %s: %w", ErrUpstream, p.bin, ctxErr)
		}
		return Result{}, fmt.Errorf("%w: %s: %w (stderr: %q, stdout: %q)", ErrUpstream, p.bin, err,
			clip(stderr.String()), clip(stdout.String()))
	}
	if diag := strings.TrimSpace(stderr.String()); diag != "" {
		return Result{}, fmt.Errorf("%w: %s wrote diagnostics: %q", ErrUpstream, p.bin, clip(diag))
	}

	out, err := decodeSingleObject(stdout.Bytes())
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s: %w", ErrUpstream, p.bin, err)
	}
	if out.Error != "" {
		return Result{}, fmt.Errorf("%w: %s reported %q", ErrUpstream, p.bin, out.Error)
	}
	if out.MatchPercentage == nil {
		return Result{}, fmt.Errorf("%w: %s: matchPercentage missing", ErrUpstream, p.bin)
	}
	pct := *out.MatchPercentage
	if math.IsNaN(pct) || pct < 0 || pct > 100 {
		return Result{}, fmt.Errorf("%w: %s: matchPercentage %v out of range", ErrUpstream, p.bin, pct)
	}

	return Result{
		Percentage: Round2(pct),
		Source:     SourceProcess,
		Matched:    out.MatchedSkills,
		Missing:    out.MissingSkills,
	}, nil
}

func decodeSingleObject(b []byte) (processOutput, error) {
	var out processOutput
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return out, errors.New("output is not a JSON object")
	}
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	if err := dec.Decode(&out); err != nil {
		return out, fmt.Errorf("decode output: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return out, errors.New("trailing data after JSON object")
	}
	return out, nil
}

func clip(s string) string {
	s = strings.TrimSpace(s)
	const max = 256
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
