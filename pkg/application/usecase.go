package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nnreact/job-portal/pkg/matcher"
)

// UseCase is the application workflow.
type UseCase interface {
	Apply(ctx context.Context, applicantID uuid.UUID, jobID string) (ApplyResult, error)
	ListApplied(ctx context.Context, applicantID uuid.UUID) ([]Application, error)
	ListApplicants(ctx context.Context, jobID string) (JobApplicants, error)
	UpdateStatus(ctx context.Context, applicationID, status string) (Application, error)
}

type ApplyResult struct {
	Application Application
	// Note is set when the match percentage came from a degraded scorer.
	Note string
}

type service struct {
	repo   Repository
	jobs   JobReader
	users  UserReader
	scorer matcher.Scorer
	log    zerolog.Logger
	now    func() time.Time
}

func NewService(repo Repository, jobs JobReader, users UserReader, scorer matcher.Scorer, log zerolog.Logger) UseCase {
	return &service{
		repo:   repo,
		jobs:   jobs,
		users:  users,
		scorer: scorer,
		log:    log,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) Apply(ctx context.Context, applicantID uuid.UUID, rawJobID string) (ApplyResult, error) {
	rawJobID = strings.TrimSpace(rawJobID)
	if rawJobID == "" {
		return ApplyResult{}, ErrJobIDRequired
	}
	jobID, err := uuid.Parse(rawJobID)
	if err != nil {
		return ApplyResult{}, ErrJobNotFound
	}

	// fast path; the unique key decides on insert
	exists, err := s.repo.Exists(ctx, jobID, applicantID)
	if err != nil {
		return ApplyResult{}, fmt.Errorf("check application: %w", err)
	}
	if exists {
		return ApplyResult{}, ErrAlreadyApplied
	}

	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return ApplyResult{}, fmt.Errorf("load job: %w", err)
	}
	user, err := s.users.GetByID(ctx, applicantID)
	if err != nil {
		return ApplyResult{}, fmt.Errorf("load applicant: %w", err)
	}
	if !user.CanApply() {
		return ApplyResult{}, ErrProfileIncomplete
	}

	res, err := s.scorer.Score(ctx, matcher.Input{
		ApplicantSkills: user.Profile.Skills,
		JobSkills:       j.Skills,
		ResumeURI:       user.Profile.Resume,
	})
	if err != nil {
		return ApplyResult{}, fmt.Errorf("score application: %w", err)
	}

	now := s.now()
	pct := res.Percentage
	a := Application{
		ID:              uuid.New(),
		JobID:           j.ID,
		ApplicantID:     user.ID,
		Status:          StatusPending,
		MatchPercentage: &pct,
		MatchSource:     res.Source,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return ApplyResult{}, err
	}

	s.log.Info().
		Str("application_id", a.ID.String()).
		Str("job_id", j.ID.String()).
		Float64("match", pct).
		Str("source", string(res.Source)).
		Msg("application created")
	return ApplyResult{Application: a, Note: res.Note}, nil
}

func (s *service) ListApplied(ctx context.Context, applicantID uuid.UUID) ([]Application, error) {
	apps, err := s.repo.ListByApplicant(ctx, applicantID)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	if apps == nil {
		apps = []Application{}
	}
	return apps, nil
}

func (s *service) ListApplicants(ctx context.Context, rawJobID string) (JobApplicants, error) {
	rawJobID = strings.TrimSpace(rawJobID)
	if rawJobID == "" {
		return JobApplicants{}, ErrJobIDRequired
	}
	jobID, err := uuid.Parse(rawJobID)
	if err != nil {
		return JobApplicants{}, ErrJobNotFound
	}

	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return JobApplicants{}, fmt.Errorf("load job: %w", err)
	}
	apps, err := s.repo.ListByJob(ctx, jobID)
	if err != nil {
		return JobApplicants{}, fmt.Errorf("list applicants: %w", err)
	}

	out := JobApplicants{Job: j, Applications: make([]Application, 0, len(apps))}
	for _, a := range apps {
		var skills []string
		if a.Applicant != nil {
			skills = a.Applicant.Profile.Skills
		}
		pct := matcher.Percentage(skills, j.Skills)
		a.SkillsMatchPercentage = &pct
		out.Applications = append(out.Applications, a)
	}
	return out, nil
}

func (s *service) UpdateStatus(ctx context.Context, rawID, rawStatus string) (Application, error) {
	next, err := ParseStatus(rawStatus)
	if err != nil {
		return Application{}, err
	}
	id, err := uuid.Parse(strings.TrimSpace(rawID))
	if err != nil {
		return Application{}, ErrApplicationNotFound
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Application{}, err
	}
	if a.Status == next {
		return a, nil
	}
	if !a.Status.CanTransitionTo(next) {
		return Application{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, a.Status, next)
	}
	if err := s.repo.UpdateStatus(ctx, id, a.Status, next); err != nil {
		return Application{}, err
	}

	a.Status = next
	a.UpdatedAt = s.now()
	return a, nil
}
