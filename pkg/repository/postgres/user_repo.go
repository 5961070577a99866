package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nnreact/job-portal/pkg/auth"
)

// UserRepository implements auth.UserRepository backed by PostgreSQL (pgx).
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `u.id, u.fullname, u.email, u.phone_number, u.password_hash, u.role,
	u.bio, u.skills, u.resume, u.resume_original_name, u.profile_photo, u.created_at, u.updated_at`

type userScan struct {
	u    auth.User
	role string
}

func (s *userScan) fields() []any {
	u := &s.u
	return []any{&u.ID, &u.Fullname, &u.Email, &u.PhoneNumber, &u.PasswordHash, &s.role,
		&u.Profile.Bio, &u.Profile.Skills, &u.Profile.Resume, &u.Profile.ResumeOriginalName,
		&u.Profile.ProfilePhoto, &u.CreatedAt, &u.UpdatedAt}
}

func (s *userScan) user() auth.User {
	u := s.u
	u.Role = auth.Role(s.role)
	u.Profile.Skills = nonNil(u.Profile.Skills)
	u.CreatedAt = u.CreatedAt.UTC()
	u.UpdatedAt = u.UpdatedAt.UTC()
	return u
}

func scanUser(row pgx.Row) (auth.User, error) {
	var s userScan
	if err := row.Scan(s.fields()...); err != nil {
		return auth.User{}, err
	}
	return s.user(), nil
}

func (r *UserRepository) Create(ctx context.Context, u auth.User) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, fullname, email, phone_number, password_hash, role,
			bio, skills, resume, resume_original_name, profile_photo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`, u.ID, u.Fullname, strings.ToLower(u.Email), u.PhoneNumber, u.PasswordHash, string(u.Role),
		u.Profile.Bio, nonNil(u.Profile.Skills), u.Profile.Resume, u.Profile.ResumeOriginalName,
		u.Profile.ProfilePhoto, u.CreatedAt, u.UpdatedAt)
	if isUniqueViolation(err) {
		return auth.ErrUserAlreadyExists
	}
	return err
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (auth.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users u WHERE u.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return auth.User{}, auth.ErrUserNotFound
	}
	return u, err
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (auth.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users u WHERE u.email = $1`,
		strings.ToLower(strings.TrimSpace(email))))
	if errors.Is(err, pgx.ErrNoRows) {
		return auth.User{}, auth.ErrUserNotFound
	}
	return u, err
}

func (r *UserRepository) Update(ctx context.Context, u auth.User) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE users SET fullname = $2, email = $3, phone_number = $4, bio = $5, skills = $6,
			resume = $7, resume_original_name = $8, profile_photo = $9, updated_at = $10
		WHERE id = $1
	`, u.ID, u.Fullname, strings.ToLower(u.Email), u.PhoneNumber, u.Profile.Bio, nonNil(u.Profile.Skills),
		u.Profile.Resume, u.Profile.ResumeOriginalName, u.Profile.ProfilePhoto, u.UpdatedAt)
	if isUniqueViolation(err) {
		return auth.ErrUserAlreadyExists
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return auth.ErrUserNotFound
	}
	return nil
}

func nonNil(xs []string) []string {
	if xs == nil {
		return []string{}
	}
	return xs
}
