package postgres

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nnreact/job-portal/pkg/application"
	"github.com/nnreact/job-portal/pkg/auth"
	"github.com/nnreact/job-portal/pkg/company"
	"github.com/nnreact/job-portal/pkg/job"
	"github.com/nnreact/job-portal/pkg/matcher"
	storage "github.com/nnreact/job-portal/pkg/storage/postgres"
)

// testPool connects to TEST_DATABASE_URL and applies migrations. Tests using
// it are skipped when the variable is unset.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	pool, err := storage.Connect(ctx, dsn, storage.Options{MaxConns: 4})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, storage.Migrate(ctx, pool))
	return pool
}

func seedUser(t *testing.T, repo *UserRepository, role auth.Role, skills ...string) auth.User {
	t.Helper()
	now := time.Now().UTC().Truncate(time.Microsecond)
	u := auth.User{
		ID:           uuid.New(),
		Fullname:     "Test " + string(role),
		Email:        uuid.NewString() + "@example.com",
		PhoneNumber:  "123",
		PasswordHash: "hash",
		Role:         role,
		Profile:      auth.Profile{Skills: skills, Resume: "/uploads/cv.pdf"},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func TestRepositoriesRoundTrip(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	users := NewUserRepository(pool)
	companies := NewCompanyRepository(pool)
	jobs := NewJobRepository(pool)
	apps := NewApplicationRepository(pool)

	recruiter := seedUser(t, users, auth.RoleRecruiter)
	student := seedUser(t, users, auth.RoleStudent, "go", "sql")

	dup := recruiter
	dup.ID = uuid.New()
	assert.ErrorIs(t, users.Create(ctx, dup), auth.ErrUserAlreadyExists)

	got, err := users.GetByEmail(ctx, student.Email)
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "sql"}, got.Profile.Skills)
	_, err = users.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, auth.ErrUserNotFound)

	now := time.Now().UTC()
	c := company.Company{ID: uuid.New(), Name: "Acme " + uuid.NewString(), OwnerID: recruiter.ID, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, companies.Create(ctx, c))
	sameName := c
	sameName.ID = uuid.New()
	assert.ErrorIs(t, companies.Create(ctx, sameName), company.ErrCompanyExists)

	j := job.Job{
		ID: uuid.New(), Title: "Gopher " + uuid.NewString(), Description: "Write 100% Go",
		Skills: []string{"go", "sql", "docker"}, Salary: 10, Position: 1,
		CompanyID: c.ID, CreatedBy: recruiter.ID, CreatedAt: now,
	}
	require.NoError(t, jobs.Create(ctx, j))

	found, err := jobs.Search(ctx, j.Title[:10])
	require.NoError(t, err)
	assert.NotEmpty(t, found)

	pct := 66.67
	a := application.Application{
		ID: uuid.New(), JobID: j.ID, ApplicantID: student.ID, Status: application.StatusPending,
		MatchPercentage: &pct, MatchSource: matcher.SourceInline, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, apps.Create(ctx, a))

	again := a
	again.ID = uuid.New()
	assert.ErrorIs(t, apps.Create(ctx, again), application.ErrAlreadyApplied)

	exists, err := apps.Exists(ctx, j.ID, student.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	loaded, err := jobs.GetByID(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a.ID}, loaded.Applications)
	assert.Equal(t, c.Name, loaded.Company.Name)

	applied, err := apps.ListByApplicant(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, applied, 1)
	assert.Equal(t, j.ID, applied[0].Job.ID)
	assert.Equal(t, 66.67, *applied[0].MatchPercentage)

	applicants, err := apps.ListByJob(ctx, j.ID)
	require.NoError(t, err)
	require.Len(t, applicants, 1)
	assert.Equal(t, student.ID, applicants[0].Applicant.ID)

	require.NoError(t, apps.UpdateStatus(ctx, a.ID, application.StatusPending, application.StatusAccepted))
	assert.ErrorIs(t, apps.UpdateStatus(ctx, a.ID, application.StatusPending, application.StatusRejected), application.ErrInvalidTransition)
	assert.ErrorIs(t, apps.UpdateStatus(ctx, uuid.New(), application.StatusPending, application.StatusRejected), application.ErrApplicationNotFound)
}

func TestConcurrentApplyCreatesOne(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	users := NewUserRepository(pool)
	companies := NewCompanyRepository(pool)
	jobs := NewJobRepository(pool)
	apps := NewApplicationRepository(pool)

	recruiter := seedUser(t, users, auth.RoleRecruiter)
	student := seedUser(t, users, auth.RoleStudent, "go")
	now := time.Now().UTC()
	c := company.Company{ID: uuid.New(), Name: "Race " + uuid.NewString(), OwnerID: recruiter.ID, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, companies.Create(ctx, c))
	j := job.Job{ID: uuid.New(), Title: "Race", Description: "d", Position: 1, Salary: 1, CompanyID: c.ID, CreatedBy: recruiter.ID, CreatedAt: now}
	require.NoError(t, jobs.Create(ctx, j))

	const n = 8
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = apps.Create(ctx, application.Application{
				ID: uuid.New(), JobID: j.ID, ApplicantID: student.ID, Status: application.StatusPending,
				CreatedAt: now, UpdatedAt: now,
			})
		}(i)
	}
	wg.Wait()

	ok := 0
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		assert.ErrorIs(t, err, application.ErrAlreadyApplied)
	}
	assert.Equal(t, 1, ok)

	loaded, err := jobs.GetByID(ctx, j.ID)
	require.NoError(t, err)
	assert.Len(t, loaded.Applications, 1)
}
