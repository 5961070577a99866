package company

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nnreact/job-portal/pkg/media"
	"github.com/nnreact/job-portal/pkg/validation"
)

type UseCase interface {
	Register(ctx context.Context, ownerID uuid.UUID, name string) (Company, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]Company, error)
	Get(ctx context.Context, id uuid.UUID) (Company, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, in UpdateInput) (Company, error)
}

// UpdateInput carries a partial update. Empty fields are left unchanged.
type UpdateInput struct {
	Name        string
	Description string
	Website     string `validate:"omitempty,url"`
	Location    string
	Logo        *media.Upload
}

type service struct {
	repo  Repository
	media media.Store
	now   func() time.Time
}

func NewService(repo Repository, store media.Store) UseCase {
	return &service{repo: repo, media: store, now: func() time.Time { return time.Now().UTC() }}
}

func (s *service) Register(ctx context.Context, ownerID uuid.UUID, name string) (Company, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Company{}, ErrNameRequired
	}
	now := s.now()
	c := Company{
		ID:        uuid.New(),
		Name:      name,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return Company{}, err
	}
	return c, nil
}

func (s *service) List(ctx context.Context, ownerID uuid.UUID) ([]Company, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (Company, error) {
	return s.repo.GetByID(ctx, id)
}

// Update is allowed to the owner only; other callers see ErrCompanyNotFound.
func (s *service) Update(ctx context.Context, ownerID, id uuid.UUID, in UpdateInput) (Company, error) {
	in.Website = strings.TrimSpace(in.Website)
	if err := validation.Struct(in); err != nil {
		return Company{}, err
	}
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Company{}, err
	}
	if c.OwnerID != ownerID {
		return Company{}, ErrCompanyNotFound
	}

	if v := strings.TrimSpace(in.Name); v != "" {
		c.Name = v
	}
	if v := validation.Sanitize(in.Description); v != "" {
		c.Description = v
	}
	if in.Website != "" {
		c.Website = in.Website
	}
	if v := strings.TrimSpace(in.Location); v != "" {
		c.Location = v
	}

	var oldLogo, newLogo string
	if in.Logo != nil && len(in.Logo.Data) > 0 {
		obj, err := s.media.Save(ctx, in.Logo.Name, in.Logo.Data)
		if err != nil {
			return Company{}, fmt.Errorf("save logo: %w", err)
		}
		if obj.Kind != media.KindImage {
			_ = s.media.Delete(ctx, obj.URI)
			return Company{}, fmt.Errorf("save logo: %w", media.ErrUnsupportedType)
		}
		oldLogo, newLogo = c.Logo, obj.URI
		c.Logo = newLogo
	}
	c.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, c); err != nil {
		if newLogo != "" {
			_ = s.media.Delete(ctx, newLogo)
		}
		return Company{}, err
	}
	if oldLogo != "" {
		_ = s.media.Delete(ctx, oldLogo)
	}
	return c, nil
}
