package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nnreact/job-portal/pkg/company"
	"github.com/nnreact/job-portal/pkg/job"
)

// JobRepository implements job.Repository. Application ids are read from the
// applications table on every load.
type JobRepository struct {
	pool *pgxpool.Pool
}

func NewJobRepository(pool *pgxpool.Pool) *JobRepository {
	return &JobRepository{pool: pool}
}

const jobColumns = `j.id, j.title, j.description, j.requirements, j.skills, j.salary, j.experience_level,
	j.location, j.job_type, j.position, j.company_id, j.created_by, j.created_at, ` + companyColumns + `,
	ARRAY(SELECT a.id::text FROM applications a WHERE a.job_id = j.id ORDER BY a.created_at, a.id)`

const jobFrom = ` FROM jobs j JOIN companies c ON c.id = j.company_id`

// jobScan collects the destinations of jobColumns.
type jobScan struct {
	j      job.Job
	c      company.Company
	appIDs []string
}

func (s *jobScan) fields() []any {
	out := []any{&s.j.ID, &s.j.Title, &s.j.Description, &s.j.Requirements, &s.j.Skills, &s.j.Salary,
		&s.j.ExperienceLevel, &s.j.Location, &s.j.JobType, &s.j.Position, &s.j.CompanyID, &s.j.CreatedBy,
		&s.j.CreatedAt}
	out = append(out, companyFields(&s.c)...)
	return append(out, &s.appIDs)
}

func (s *jobScan) job() (job.Job, error) {
	j := s.j
	c := s.c
	j.Company = &c
	j.Requirements = nonNil(j.Requirements)
	j.Skills = nonNil(j.Skills)
	j.CreatedAt = j.CreatedAt.UTC()
	j.Applications = make([]uuid.UUID, 0, len(s.appIDs))
	for _, raw := range s.appIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return job.Job{}, fmt.Errorf("parse application id %q: %w", raw, err)
		}
		j.Applications = append(j.Applications, id)
	}
	return j, nil
}

func (r *JobRepository) Create(ctx context.Context, j job.Job) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO jobs (id, title, description, requirements, skills, salary, experience_level,
			location, job_type, position, company_id, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`, j.ID, j.Title, j.Description, nonNil(j.Requirements), nonNil(j.Skills), j.Salary, j.ExperienceLevel,
		j.Location, j.JobType, j.Position, j.CompanyID, j.CreatedBy, j.CreatedAt)
	if isForeignKeyViolation(err, "jobs_company_id_fkey") {
		return company.ErrCompanyNotFound
	}
	return err
}

func (r *JobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	var s jobScan
	err := r.pool.QueryRow(ctx, `SELECT `+jobColumns+jobFrom+` WHERE j.id = $1`, id).Scan(s.fields()...)
	if errors.Is(err, pgx.ErrNoRows) {
		return job.Job{}, job.ErrJobNotFound
	}
	if err != nil {
		return job.Job{}, err
	}
	return s.job()
}

func (r *JobRepository) Search(ctx context.Context, keyword string) ([]job.Job, error) {
	if keyword == "" {
		return r.list(ctx, `SELECT `+jobColumns+jobFrom+` ORDER BY j.created_at DESC`)
	}
	return r.list(ctx, `SELECT `+jobColumns+jobFrom+`
		WHERE j.title ILIKE $1 OR j.description ILIKE $1
		ORDER BY j.created_at DESC`, likePattern(keyword))
}

func (r *JobRepository) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]job.Job, error) {
	return r.list(ctx, `SELECT `+jobColumns+jobFrom+` WHERE j.created_by = $1 ORDER BY j.created_at DESC`, creatorID)
}

func (r *JobRepository) list(ctx context.Context, query string, args ...any) ([]job.Job, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []job.Job{}
	for rows.Next() {
		var s jobScan
		if err := rows.Scan(s.fields()...); err != nil {
			return nil, err
		}
		j, err := s.job()
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}
