package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nnreact/job-portal/pkg/application"
	"github.com/nnreact/job-portal/pkg/matcher"
)

// ApplicationRepository implements application.Repository.
type ApplicationRepository struct {
	pool *pgxpool.Pool
}

func NewApplicationRepository(pool *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{pool: pool}
}

const applicationColumns = `ap.id, ap.job_id, ap.applicant_id, ap.status, ap.match_percentage, ap.match_source,
	ap.created_at, ap.updated_at`

type applicationScan struct {
	a      application.Application
	status string
	source string
}

func (s *applicationScan) fields() []any {
	return []any{&s.a.ID, &s.a.JobID, &s.a.ApplicantID, &s.status, &s.a.MatchPercentage, &s.source,
		&s.a.CreatedAt, &s.a.UpdatedAt}
}

func (s *applicationScan) application() application.Application {
	a := s.a
	a.Status = application.Status(s.status)
	a.MatchSource = matcher.Source(s.source)
	a.CreatedAt = a.CreatedAt.UTC()
	a.UpdatedAt = a.UpdatedAt.UTC()
	return a
}

// Create inserts the application; the (job_id, applicant_id) unique key turns
// a concurrent duplicate into ErrAlreadyApplied.
func (r *ApplicationRepository) Create(ctx context.Context, a application.Application) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO applications (id, job_id, applicant_id, status, match_percentage, match_source, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, a.ID, a.JobID, a.ApplicantID, string(a.Status), a.MatchPercentage, string(a.MatchSource), a.CreatedAt, a.UpdatedAt)
	switch {
	case isUniqueViolation(err):
		return application.ErrAlreadyApplied
	case isForeignKeyViolation(err, "applications_job_id_fkey"):
		return application.ErrJobNotFound
	case isForeignKeyViolation(err, "applications_applicant_id_fkey"):
		return application.ErrUserNotFound
	}
	return err
}

func (r *ApplicationRepository) Exists(ctx context.Context, jobID, applicantID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM applications WHERE job_id = $1 AND applicant_id = $2)
	`, jobID, applicantID).Scan(&exists)
	return exists, err
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (application.Application, error) {
	var s applicationScan
	err := r.pool.QueryRow(ctx, `SELECT `+applicationColumns+` FROM applications ap WHERE ap.id = $1`, id).Scan(s.fields()...)
	if errors.Is(err, pgx.ErrNoRows) {
		return application.Application{}, application.ErrApplicationNotFound
	}
	if err != nil {
		return application.Application{}, err
	}
	return s.application(), nil
}

func (r *ApplicationRepository) ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]application.Application, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+applicationColumns+`, `+jobColumns+`
		FROM applications ap
		JOIN jobs j ON j.id = ap.job_id
		JOIN companies c ON c.id = j.company_id
		WHERE ap.applicant_id = $1
		ORDER BY ap.created_at DESC, ap.id
	`, applicantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []application.Application{}
	for rows.Next() {
		var s applicationScan
		var js jobScan
		if err := rows.Scan(append(s.fields(), js.fields()...)...); err != nil {
			return nil, err
		}
		j, err := js.job()
		if err != nil {
			return nil, err
		}
		a := s.application()
		a.Job = &j
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *ApplicationRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]application.Application, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+applicationColumns+`, `+userColumns+`
		FROM applications ap
		JOIN users u ON u.id = ap.applicant_id
		WHERE ap.job_id = $1
		ORDER BY ap.created_at DESC, ap.id
	`, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []application.Application{}
	for rows.Next() {
		var s applicationScan
		var us userScan
		if err := rows.Scan(append(s.fields(), us.fields()...)...); err != nil {
			return nil, err
		}
		u := us.user()
		a := s.application()
		a.Applicant = &u
		out = append(out, a)
	}
	return out, rows.Err()
}

// UpdateStatus is a compare-and-set on the previous status.
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to application.Status) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE applications SET status = $3, updated_at = now()
		WHERE id = $1 AND status = $2
	`, id, string(from), string(to))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	var exists bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM applications WHERE id = $1)`, id).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return application.ErrApplicationNotFound
	}
	return application.ErrInvalidTransition
}
