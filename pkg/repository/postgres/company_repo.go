package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nnreact/job-portal/pkg/company"
)

// CompanyRepository implements company.Repository.
type CompanyRepository struct {
	pool *pgxpool.Pool
}

func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{pool: pool}
}

const companyColumns = `c.id, c.name, c.description, c.website, c.location, c.logo, c.owner_id, c.created_at, c.updated_at`

func companyFields(c *company.Company) []any {
	return []any{&c.ID, &c.Name, &c.Description, &c.Website, &c.Location, &c.Logo, &c.OwnerID, &c.CreatedAt, &c.UpdatedAt}
}

func (r *CompanyRepository) Create(ctx context.Context, c company.Company) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO companies (id, name, description, website, location, logo, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, c.ID, c.Name, c.Description, c.Website, c.Location, c.Logo, c.OwnerID, c.CreatedAt, c.UpdatedAt)
	if isUniqueViolation(err) {
		return company.ErrCompanyExists
	}
	return err
}

func (r *CompanyRepository) GetByID(ctx context.Context, id uuid.UUID) (company.Company, error) {
	var c company.Company
	err := r.pool.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies c WHERE c.id = $1`, id).Scan(companyFields(&c)...)
	if errors.Is(err, pgx.ErrNoRows) {
		return company.Company{}, company.ErrCompanyNotFound
	}
	return c, err
}

func (r *CompanyRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]company.Company, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+companyColumns+` FROM companies c
		WHERE c.owner_id = $1
		ORDER BY c.created_at DESC
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []company.Company{}
	for rows.Next() {
		var c company.Company
		if err := rows.Scan(companyFields(&c)...); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CompanyRepository) Update(ctx context.Context, c company.Company) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE companies SET name = $2, description = $3, website = $4, location = $5, logo = $6, updated_at = $7
		WHERE id = $1
	`, c.ID, c.Name, c.Description, c.Website, c.Location, c.Logo, c.UpdatedAt)
	if isUniqueViolation(err) {
		return company.ErrCompanyExists
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return company.ErrCompanyNotFound
	}
	return nil
}
