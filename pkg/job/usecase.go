package job

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nnreact/job-portal/pkg/company"
	"github.com/nnreact/job-portal/pkg/nlp"
	"github.com/nnreact/job-portal/pkg/validation"
)

type UseCase interface {
	Post(ctx context.Context, creatorID uuid.UUID, in PostInput) (Job, error)
	List(ctx context.Context, keyword string) ([]Job, error)
	Get(ctx context.Context, id uuid.UUID) (Job, error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]Job, error)
}

// PostInput mirrors the posting form. Requirements and Skills are comma
// separated lists.
type PostInput struct {
	Title           string  `validate:"notblank"`
	Description     string  `validate:"notblank"`
	Requirements    string  `validate:"notblank"`
	Skills          string  `validate:"notblank"`
	Salary          float64 `validate:"required,gt=0"`
	Location        string  `validate:"notblank"`
	JobType         string  `validate:"notblank"`
	ExperienceLevel int     `validate:"gte=0"`
	Position        int     `validate:"required,gte=1"`
	CompanyID       string  `validate:"notblank"`
}

type service struct {
	repo      Repository
	companies company.Repository
	now       func() time.Time
}

func NewService(repo Repository, companies company.Repository) UseCase {
	return &service{repo: repo, companies: companies, now: func() time.Time { return time.Now().UTC() }}
}

func (s *service) Post(ctx context.Context, creatorID uuid.UUID, in PostInput) (Job, error) {
	if err := validation.Struct(in); err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) && verrs.Missing() {
			return Job{}, ErrMissingFields
		}
		return Job{}, err
	}

	companyID, err := uuid.Parse(strings.TrimSpace(in.CompanyID))
	if err != nil {
		return Job{}, company.ErrCompanyNotFound
	}
	c, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		return Job{}, fmt.Errorf("load company: %w", err)
	}

	j := Job{
		ID:              uuid.New(),
		Title:           strings.TrimSpace(in.Title),
		Description:     validation.Sanitize(in.Description),
		Requirements:    nlp.SplitList(in.Requirements),
		Skills:          nlp.SplitList(in.Skills),
		Salary:          in.Salary,
		ExperienceLevel: in.ExperienceLevel,
		Location:        strings.TrimSpace(in.Location),
		JobType:         strings.TrimSpace(in.JobType),
		Position:        in.Position,
		CompanyID:       c.ID,
		Company:         &c,
		CreatedBy:       creatorID,
		CreatedAt:       s.now(),
		Applications:    []uuid.UUID{},
	}
	if err := s.repo.Create(ctx, j); err != nil {
		return Job{}, err
	}
	return j, nil
}

func (s *service) List(ctx context.Context, keyword string) ([]Job, error) {
	return s.repo.Search(ctx, strings.TrimSpace(keyword))
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (Job, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]Job, error) {
	return s.repo.ListByCreator(ctx, creatorID)
}
