package auth

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/nnreact/job-portal/pkg/media"
)

type userRepoMock struct{ mock.Mock }

func (m *userRepoMock) Create(ctx context.Context, user User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(User), args.Error(1)
}

func (m *userRepoMock) GetByEmail(ctx context.Context, email string) (User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(User), args.Error(1)
}

func (m *userRepoMock) Update(ctx context.Context, user User) error {
	return m.Called(ctx, user).Error(0)
}

type tokensMock struct{ mock.Mock }

func (m *tokensMock) Generate(ctx context.Context, user User) (Token, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(Token), args.Error(1)
}

type revokerMock struct{ mock.Mock }

func (m *revokerMock) Revoke(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

type mediaMock struct{ mock.Mock }

func (m *mediaMock) Save(ctx context.Context, name string, data []byte) (media.Object, error) {
	args := m.Called(ctx, name, data)
	return args.Get(0).(media.Object), args.Error(1)
}

func (m *mediaMock) Delete(ctx context.Context, uri string) error {
	return m.Called(ctx, uri).Error(0)
}
