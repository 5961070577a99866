package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/nnreact/job-portal/pkg/media"
	"github.com/nnreact/job-portal/pkg/nlp"
	"github.com/nnreact/job-portal/pkg/validation"
)

// UseCase describes account and profile behaviour.
type UseCase interface {
	Register(ctx context.Context, in RegisterInput) (User, error)
	Login(ctx context.Context, in LoginInput) (Session, error)
	Logout(ctx context.Context, token string) error
	Get(ctx context.Context, id uuid.UUID) (User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, in ProfileUpdate) (User, error)
}

type RegisterInput struct {
	Fullname    string `validate:"notblank"`
	Email       string `validate:"notblank,email"`
	PhoneNumber string `validate:"notblank"`
	Password    string `validate:"notblank"`
	Role        Role   `validate:"notblank,oneof=student recruiter"`
	Photo       *media.Upload
}

type LoginInput struct {
	Email    string `validate:"notblank"`
	Password string `validate:"notblank"`
	Role     Role   `validate:"notblank"`
}

// ProfileUpdate carries a partial update. Empty fields are left unchanged.
type ProfileUpdate struct {
	Fullname    string
	Email       string `validate:"omitempty,email"`
	PhoneNumber string
	Bio         string
	// Skills is a comma separated list.
	Skills string
	File   *media.Upload
}

type Session struct {
	User  User
	Token Token
}

type service struct {
	repo    UserRepository
	tokens  TokenGenerator
	revoker TokenRevoker
	media   media.Store
	cost    int
	now     func() time.Time
}

// NewService returns the default UseCase. revoker may be nil.
func NewService(repo UserRepository, tokens TokenGenerator, revoker TokenRevoker, store media.Store) UseCase {
	return &service{
		repo:    repo,
		tokens:  tokens,
		revoker: revoker,
		media:   store,
		cost:    bcrypt.DefaultCost,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) Register(ctx context.Context, in RegisterInput) (User, error) {
	in.Email = normalizeEmail(in.Email)
	if err := validate(in); err != nil {
		return User{}, err
	}

	// fast path; the unique index decides
	if _, err := s.repo.GetByEmail(ctx, in.Email); err == nil {
		return User{}, ErrUserAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return User{}, fmt.Errorf("lookup user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	now := s.now()
	user := User{
		ID:           uuid.New(),
		Fullname:     strings.TrimSpace(in.Fullname),
		Email:        in.Email,
		PhoneNumber:  strings.TrimSpace(in.PhoneNumber),
		PasswordHash: string(hash),
		Role:         in.Role,
		Profile:      Profile{Skills: []string{}},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	var photo media.Object
	if in.Photo != nil && len(in.Photo.Data) > 0 {
		photo, err = s.media.Save(ctx, in.Photo.Name, in.Photo.Data)
		if err != nil {
			return User{}, fmt.Errorf("%w: %w", ErrUploadFailed, err)
		}
		user.Profile.ProfilePhoto = photo.URI
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if photo.URI != "" {
			_ = s.media.Delete(ctx, photo.URI)
		}
		return User{}, err
	}
	return user, nil
}

func (s *service) Login(ctx context.Context, in LoginInput) (Session, error) {
	in.Email = normalizeEmail(in.Email)
	if err := validate(in); err != nil {
		return Session{}, err
	}

	user, err := s.repo.GetByEmail(ctx, in.Email)
	if errors.Is(err, ErrUserNotFound) {
		return Session{}, ErrInvalidCredentials
	}
	if err != nil {
		return Session{}, fmt.Errorf("lookup user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		return Session{}, ErrInvalidCredentials
	}
	if user.Role != in.Role {
		return Session{}, ErrRoleMismatch
	}

	token, err := s.tokens.Generate(ctx, user)
	if err != nil {
		return Session{}, fmt.Errorf("issue token: %w", err)
	}
	return Session{User: user, Token: token}, nil
}

func (s *service) Logout(ctx context.Context, token string) error {
	if s.revoker == nil || strings.TrimSpace(token) == "" {
		return nil
	}
	return s.revoker.Revoke(ctx, token)
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) UpdateProfile(ctx context.Context, userID uuid.UUID, in ProfileUpdate) (User, error) {
	in.Email = normalizeEmail(in.Email)
	if err := validate(in); err != nil {
		return User{}, err
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return User{}, err
	}

	var uploaded media.Object
	if in.File != nil && len(in.File.Data) > 0 {
		uploaded, err = s.media.Save(ctx, in.File.Name, in.File.Data)
		if err != nil {
			return User{}, fmt.Errorf("%w: %w", ErrUploadFailed, err)
		}
	}

	if v := strings.TrimSpace(in.Fullname); v != "" {
		user.Fullname = v
	}
	if in.Email != "" {
		user.Email = in.Email
	}
	if v := strings.TrimSpace(in.PhoneNumber); v != "" {
		user.PhoneNumber = v
	}
	if v := validation.Sanitize(in.Bio); v != "" {
		user.Profile.Bio = v
	}
	if strings.TrimSpace(in.Skills) != "" {
		user.Profile.Skills = nlp.SplitList(in.Skills)
	}

	var replaced string
	switch uploaded.Kind {
	case media.KindDocument:
		replaced = user.Profile.Resume
		user.Profile.Resume = uploaded.URI
		user.Profile.ResumeOriginalName = uploaded.OriginalName
	case media.KindImage:
		replaced = user.Profile.ProfilePhoto
		user.Profile.ProfilePhoto = uploaded.URI
	}
	user.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, user); err != nil {
		if uploaded.URI != "" {
			_ = s.media.Delete(ctx, uploaded.URI)
		}
		return User{}, err
	}
	if replaced != "" {
		_ = s.media.Delete(ctx, replaced)
	}
	return user, nil
}

func validate(v any) error {
	err := validation.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validation.Errors
	if errors.As(err, &verrs) && verrs.Missing() {
		return ErrMissingFields
	}
	return err
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
