package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nnreact/job-portal/pkg/auth"
	"github.com/nnreact/job-portal/pkg/job"
	"github.com/nnreact/job-portal/pkg/matcher"
)

var (
	ErrJobIDRequired       = errors.New("job id is required")
	ErrAlreadyApplied      = errors.New("already applied for this job")
	ErrProfileIncomplete   = errors.New("profile has no resume or skills")
	ErrStatusRequired      = errors.New("status is required")
	ErrInvalidStatus       = errors.New("invalid status")
	ErrInvalidTransition   = errors.New("status transition not allowed")
	ErrApplicationNotFound = errors.New("application not found")

	ErrJobNotFound  = job.ErrJobNotFound
	ErrUserNotFound = auth.ErrUserNotFound
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// ParseStatus trims and lowercases raw before checking it against the known
// statuses.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	switch s {
	case "":
		return "", ErrStatusRequired
	case StatusPending, StatusAccepted, StatusRejected:
		return s, nil
	}
	return "", ErrInvalidStatus
}

// CanTransitionTo allows pending -> accepted|rejected and re-setting the
// current status.
func (s Status) CanTransitionTo(next Status) bool {
	if s == next {
		return true
	}
	return s == StatusPending && (next == StatusAccepted || next == StatusRejected)
}

type Application struct {
	ID              uuid.UUID      `json:"id"`
	JobID           uuid.UUID      `json:"jobId"`
	ApplicantID     uuid.UUID      `json:"applicantId"`
	Status          Status         `json:"status"`
	MatchPercentage *float64       `json:"matchPercentage"`
	MatchSource     matcher.Source `json:"matchSource,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`

	// expansions filled by list queries
	Job                   *job.Job   `json:"job,omitempty"`
	Applicant             *auth.User `json:"applicant,omitempty"`
	SkillsMatchPercentage *float64   `json:"skillsMatchPercentage,omitempty"`
}

// JobApplicants is a job with its applications expanded.
type JobApplicants struct {
	job.Job
	Applications []Application `json:"applications"`
}

// Repository is the application store port. (job, applicant) is unique:
// Create returns ErrAlreadyApplied when the pair exists.
type Repository interface {
	Create(ctx context.Context, a Application) error
	Exists(ctx context.Context, jobID, applicantID uuid.UUID) (bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (Application, error)
	// ListByApplicant expands Job and its Company, newest first.
	ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]Application, error)
	// ListByJob expands Applicant, newest first.
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]Application, error)
	// UpdateStatus sets to only while the stored status is still from and
	// returns ErrInvalidTransition otherwise.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to Status) error
}

// JobReader and UserReader are the slices of the job and credential stores
// the workflow needs.
type JobReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (job.Job, error)
}

type UserReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (auth.User, error)
}
