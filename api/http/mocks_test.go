package http

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/nnreact/job-portal/pkg/application"
	"github.com/nnreact/job-portal/pkg/auth"
	"github.com/nnreact/job-portal/pkg/company"
	"github.com/nnreact/job-portal/pkg/health"
	"github.com/nnreact/job-portal/pkg/job"
)

type authMock struct{ mock.Mock }

func (m *authMock) Register(ctx context.Context, in auth.RegisterInput) (auth.User, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(auth.User), args.Error(1)
}

func (m *authMock) Login(ctx context.Context, in auth.LoginInput) (auth.Session, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(auth.Session), args.Error(1)
}

func (m *authMock) Logout(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *authMock) Get(ctx context.Context, id uuid.UUID) (auth.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(auth.User), args.Error(1)
}

func (m *authMock) UpdateProfile(ctx context.Context, id uuid.UUID, in auth.ProfileUpdate) (auth.User, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).(auth.User), args.Error(1)
}

type companyMock struct{ mock.Mock }

func (m *companyMock) Register(ctx context.Context, owner uuid.UUID, name string) (company.Company, error) {
	args := m.Called(ctx, owner, name)
	return args.Get(0).(company.Company), args.Error(1)
}

func (m *companyMock) List(ctx context.Context, owner uuid.UUID) ([]company.Company, error) {
	args := m.Called(ctx, owner)
	return args.Get(0).([]company.Company), args.Error(1)
}

func (m *companyMock) Get(ctx context.Context, id uuid.UUID) (company.Company, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(company.Company), args.Error(1)
}

func (m *companyMock) Update(ctx context.Context, owner, id uuid.UUID, in company.UpdateInput) (company.Company, error) {
	args := m.Called(ctx, owner, id, in)
	return args.Get(0).(company.Company), args.Error(1)
}

type jobMock struct{ mock.Mock }

func (m *jobMock) Post(ctx context.Context, creator uuid.UUID, in job.PostInput) (job.Job, error) {
	args := m.Called(ctx, creator, in)
	return args.Get(0).(job.Job), args.Error(1)
}

func (m *jobMock) List(ctx context.Context, keyword string) ([]job.Job, error) {
	args := m.Called(ctx, keyword)
	return args.Get(0).([]job.Job), args.Error(1)
}

func (m *jobMock) Get(ctx context.Context, id uuid.UUID) (job.Job, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(job.Job), args.Error(1)
}

func (m *jobMock) ListByCreator(ctx context.Context, creator uuid.UUID) ([]job.Job, error) {
	args := m.Called(ctx, creator)
	return args.Get(0).([]job.Job), args.Error(1)
}

type applicationMock struct{ mock.Mock }

func (m *applicationMock) Apply(ctx context.Context, applicant uuid.UUID, jobID string) (application.ApplyResult, error) {
	args := m.Called(ctx, applicant, jobID)
	return args.Get(0).(application.ApplyResult), args.Error(1)
}

func (m *applicationMock) ListApplied(ctx context.Context, applicant uuid.UUID) ([]application.Application, error) {
	args := m.Called(ctx, applicant)
	return args.Get(0).([]application.Application), args.Error(1)
}

func (m *applicationMock) ListApplicants(ctx context.Context, jobID string) (application.JobApplicants, error) {
	args := m.Called(ctx, jobID)
	return args.Get(0).(application.JobApplicants), args.Error(1)
}

func (m *applicationMock) UpdateStatus(ctx context.Context, id, status string) (application.Application, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(application.Application), args.Error(1)
}

type readinessMock struct{ mock.Mock }

func (m *readinessMock) Ready(ctx context.Context) (health.Report, error) {
	args := m.Called(ctx)
	return args.Get(0).(health.Report), args.Error(1)
}
