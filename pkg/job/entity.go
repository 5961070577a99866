package job

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/nnreact/job-portal/pkg/company"
)

var (
	ErrJobNotFound   = errors.New("job not found")
	ErrMissingFields = errors.New("something is missing")
)

// Job is a posting. Applications lists the ids of its applications, oldest
// first; it is read from the application store, never written here.
type Job struct {
	ID              uuid.UUID        `json:"id"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	Requirements    []string         `json:"requirements"`
	Skills          []string         `json:"skills"`
	Salary          float64          `json:"salary"`
	ExperienceLevel int              `json:"experienceLevel"`
	Location        string           `json:"location"`
	JobType         string           `json:"jobType"`
	Position        int              `json:"position"`
	CompanyID       uuid.UUID        `json:"companyId"`
	Company         *company.Company `json:"company,omitempty"`
	CreatedBy       uuid.UUID        `json:"createdBy"`
	CreatedAt       time.Time        `json:"createdAt"`
	Applications    []uuid.UUID      `json:"applications"`
}

// Repository is the job store port. Reads expand the company and the
// application ids.
type Repository interface {
	Create(ctx context.Context, j Job) error
	GetByID(ctx context.Context, id uuid.UUID) (Job, error)
	// Search matches keyword case-insensitively in title or description,
	// newest first. An empty keyword lists everything.
	Search(ctx context.Context, keyword string) ([]Job, error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]Job, error)
}
