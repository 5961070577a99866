package job

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nnreact/job-portal/pkg/company"
)

type repoMock struct{ mock.Mock }

func (m *repoMock) Create(ctx context.Context, j Job) error {
	return m.Called(ctx, j).Error(0)
}

func (m *repoMock) GetByID(ctx context.Context, id uuid.UUID) (Job, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Job), args.Error(1)
}

func (m *repoMock) Search(ctx context.Context, keyword string) ([]Job, error) {
	args := m.Called(ctx, keyword)
	return args.Get(0).([]Job), args.Error(1)
}

func (m *repoMock) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]Job, error) {
	args := m.Called(ctx, creatorID)
	return args.Get(0).([]Job), args.Error(1)
}

type companiesMock struct {
	mock.Mock
	company.Repository
}

func (m *companiesMock) GetByID(ctx context.Context, id uuid.UUID) (company.Company, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(company.Company), args.Error(1)
}

func validPost(companyID uuid.UUID) PostInput {
	return PostInput{
		Title:           "Backend engineer",
		Description:     "Build <b>APIs</b>",
		Requirements:    "3 years Go, SQL",
		Skills:          "go, sql, docker, go",
		Salary:          12,
		Location:        "Remote",
		JobType:         "Full-time",
		ExperienceLevel: 0,
		Position:        2,
		CompanyID:       companyID.String(),
	}
}

func TestPost(t *testing.T) {
	ctx := context.Background()
	creator := uuid.New()
	acme := company.Company{ID: uuid.New(), Name: "Acme"}

	repo, companies := &repoMock{}, &companiesMock{}
	companies.On("GetByID", ctx, acme.ID).Return(acme, nil)
	repo.On("Create", ctx, mock.Anything).Return(nil)

	j, err := NewService(repo, companies).Post(ctx, creator, validPost(acme.ID))
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "sql", "docker"}, j.Skills)
	assert.Equal(t, []string{"3 years Go", "SQL"}, j.Requirements)
	assert.Equal(t, "Build APIs", j.Description)
	assert.Equal(t, creator, j.CreatedBy)
	assert.Equal(t, "Acme", j.Company.Name)
	assert.Empty(t, j.Applications)
	repo.AssertExpectations(t)
}

func TestPostValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&repoMock{}, &companiesMock{})

	in := validPost(uuid.New())
	in.Skills = " "
	_, err := svc.Post(ctx, uuid.New(), in)
	assert.ErrorIs(t, err, ErrMissingFields)

	in = validPost(uuid.New())
	in.Position = 0
	_, err = svc.Post(ctx, uuid.New(), in)
	assert.ErrorIs(t, err, ErrMissingFields)

	in = validPost(uuid.New())
	in.CompanyID = "not-a-uuid"
	_, err = svc.Post(ctx, uuid.New(), in)
	assert.ErrorIs(t, err, company.ErrCompanyNotFound)
}

func TestPostUnknownCompany(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	companies := &companiesMock{}
	companies.On("GetByID", ctx, id).Return(company.Company{}, company.ErrCompanyNotFound)

	_, err := NewService(&repoMock{}, companies).Post(ctx, uuid.New(), validPost(id))
	assert.ErrorIs(t, err, company.ErrCompanyNotFound)
}

func TestList(t *testing.T) {
	ctx := context.Background()
	repo := &repoMock{}
	repo.On("Search", ctx, "go").Return([]Job{{Title: "Go dev"}}, nil)

	jobs, err := NewService(repo, &companiesMock{}).List(ctx, "  go ")
	require.NoError(t, err)
	assert.Len(t, jobs, 1)
}
