package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestViolations(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "applications_job_applicant_key"})
	fk := &pgconn.PgError{Code: "23503", ConstraintName: "applications_job_id_fkey"}

	assert.True(t, isUniqueViolation(unique))
	assert.False(t, isUniqueViolation(fk))
	assert.False(t, isUniqueViolation(errors.New("23505")))
	assert.False(t, isUniqueViolation(nil))

	assert.True(t, isForeignKeyViolation(fk, "applications_job_id_fkey"))
	assert.True(t, isForeignKeyViolation(fk, ""))
	assert.False(t, isForeignKeyViolation(fk, "applications_applicant_id_fkey"))
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%golang%", likePattern("golang"))
	assert.Equal(t, `%100\% remote\_ok%`, likePattern("100% remote_ok"))
	assert.Equal(t, `%a\\b%`, likePattern(`a\b`))
}
