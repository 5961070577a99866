// Command resume-matcher reports which job skills a resume mentions.
//
//	resume-matcher <resume-location> <skill,skill,...>
//
// The location is a local path or an http(s) URL to a pdf, docx or text
// file. Exactly one JSON object is written to stdout; on failure it is
// {"error": "..."} and the exit status is 1. Nothing is written to stderr.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nnreact/job-portal/pkg/nlp"
	"github.com/nnreact/job-portal/pkg/resume"
)

const timeout = 60 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	code := run(ctx, os.Args[1:], os.Stdout, resume.NewLoader())
	stop()
	cancel()
	os.Exit(code)
}

type textSource interface {
	Text(ctx context.Context, location string) (string, error)
}

func run(ctx context.Context, args []string, stdout io.Writer, resumes textSource) int {
	if len(args) != 2 {
		return fail(stdout, errors.New("usage: resume-matcher <resume-location> <skill,skill,...>"))
	}
	text, err := resumes.Text(ctx, args[0])
	if err != nil {
		return fail(stdout, err)
	}
	report := resume.MatchSkills(text, nlp.SplitList(args[1]))
	if err := json.NewEncoder(stdout).Encode(report); err != nil {
		return 1
	}
	return 0
}

func fail(stdout io.Writer, err error) int {
	_ = json.NewEncoder(stdout).Encode(map[string]string{"error": err.Error()})
	return 1
}
