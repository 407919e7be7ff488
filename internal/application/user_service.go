package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-users-tasks-api/internal/domain/apperror"
	"github.com/oksasatya/go-users-tasks-api/internal/domain/entity"
	repo "github.com/oksasatya/go-users-tasks-api/internal/domain/repository"
	"github.com/oksasatya/go-users-tasks-api/pkg/helpers"
)

const (
	DefaultPerPage    = 5
	defaultLookupSize = 10
	maxLookupSize     = 50
)

var ErrStorageUnavailable = errors.New("avatar storage not configured")

var allowedAvatarTypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
}

// Service implements the user use cases. Reads of a single user go through
// Cache first; writes update the repository and then the cache. The two are
// not updated atomically: a lost cache write is repaired by the next miss.
type Service struct {
	Repo    repo.UserRepository
	Cache   repo.UserCache
	JWT     *helpers.JWTManager
	Hasher  PasswordHasher
	Logger  *logrus.Logger
	PerPage int

	// Optional collaborators; nil disables the feature.
	Index   UserIndex
	Avatars AvatarStore
	Events  EventPublisher
}

func NewService(users repo.UserRepository, cache repo.UserCache, jwt *helpers.JWTManager, hasher PasswordHasher, logger *logrus.Logger, perPage int) *Service {
	if cache == nil {
		cache = repo.NopUserCache{}
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	return &Service{
		Repo:    users,
		Cache:   cache,
		JWT:     jwt,
		Hasher:  hasher,
		Logger:  logger,
		PerPage: perPage,
	}
}

type UserPage struct {
	Items      []entity.UserView
	Pagination entity.Pagination
}

type LoginResult struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	User      entity.UserView `json:"user"`
}

// normalizePage clamps page to 1 and replaces a non-positive perPage with the default.
func normalizePage(page, perPage, def int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = def
	}
	return page, perPage
}

func (s *Service) GetUsersByPage(ctx context.Context, page, perPage int, name, email string) (*UserPage, error) {
	page, perPage = normalizePage(page, perPage, s.PerPage)
	items, total, err := s.Repo.GetUsersByPage(ctx, page, perPage, name, email)
	if err != nil {
		return nil, err
	}
	return &UserPage{Items: items, Pagination: entity.NewPagination(total, page, perPage)}, nil
}

func (s *Service) GetAll(ctx context.Context) ([]entity.UserView, error) {
	return s.Repo.GetAll(ctx)
}

func (s *Service) Search(ctx context.Context, name string) ([]entity.UserView, error) {
	return s.Repo.Search(ctx, name)
}

// GetOne returns the projection of a user, from the cache when present.
func (s *Service) GetOne(ctx context.Context, id string) (*entity.UserView, error) {
	v, hit, err := s.Cache.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user cache get: %w", err)
	}
	if hit {
		userCacheHits.Add(1)
		return v, nil
	}
	userCacheMisses.Add(1)

	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := u.View()
	if err := s.Cache.Set(ctx, view); err != nil {
		return nil, fmt.Errorf("user cache set: %w", err)
	}
	return &view, nil
}

func (s *Service) Create(ctx context.Context, in CreateUserInput) (*entity.UserView, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	name, err := entity.ValidateUserName(in.Name)
	if err != nil {
		return nil, err
	}
	email, err := entity.ValidateEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if err := entity.ValidatePassword(in.Password); err != nil {
		return nil, err
	}
	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	if err := s.Repo.CheckUserByEmail(ctx, email); err != nil {
		return nil, err
	}

	u := &entity.User{Name: name, Email: email, Password: hash}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, err
	}
	view := u.View()
	if err := s.Cache.Set(ctx, view); err != nil {
		return nil, fmt.Errorf("user cache set: %w", err)
	}

	s.index(ctx, view)
	s.publish(ctx, entity.EventUserCreated, u)
	s.Logger.WithField("user_id", u.ID).Info("user created")
	return &view, nil
}

func (s *Service) Update(ctx context.Context, in UpdateUserInput, id string) (*entity.UserView, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if in.Name != nil {
		name, err := entity.ValidateUserName(*in.Name)
		if err != nil {
			return nil, err
		}
		u.Name = name
	}
	if in.Email != nil {
		email, err := entity.ValidateEmail(*in.Email)
		if err != nil {
			return nil, err
		}
		if email != u.Email {
			if err := s.Repo.CheckUserByEmail(ctx, email); err != nil {
				return nil, err
			}
		}
		u.Email = email
	}

	if err := s.Repo.Update(ctx, u); err != nil {
		return nil, err
	}
	view := u.View()
	if err := s.Cache.Set(ctx, view); err != nil {
		return nil, fmt.Errorf("user cache set: %w", err)
	}
	s.index(ctx, view)
	return &view, nil
}

// Delete removes the user's tasks before the user itself.
func (s *Service) Delete(ctx context.Context, id string) error {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Repo.DeleteUserTasks(ctx, id); err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.Cache.Delete(ctx, id); err != nil {
		return fmt.Errorf("user cache delete: %w", err)
	}

	if s.Index != nil {
		if err := s.Index.Remove(ctx, id); err != nil {
			s.Logger.WithError(err).WithField("user_id", id).Warn("es remove failed")
		}
	}
	s.publish(ctx, entity.EventUserDeleted, u)
	s.Logger.WithField("user_id", id).Info("user deleted")
	return nil
}

// Login checks the credentials and issues a signed token valid for JWT.TTL.
func (s *Service) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	u, err := s.Repo.GetByEmail(ctx, entity.NormalizeEmail(in.Email))
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.Unauthorized("login failed: email or password incorrect")
		}
		return nil, err
	}
	if !s.Hasher.Compare(u.Password, in.Password) {
		return nil, apperror.Unauthorized("login failed: email or password incorrect")
	}

	token, exp, err := s.JWT.Generate(u.ID, u.Email, u.Name)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate token failed")
		return nil, err
	}
	return &LoginResult{Token: token, ExpiresAt: exp, User: u.View()}, nil
}

// Lookup searches the full-text index. Without an index it returns no results.
func (s *Service) Lookup(ctx context.Context, q string, size int) ([]entity.UserView, error) {
	if s.Index == nil {
		return []entity.UserView{}, nil
	}
	if size <= 0 || size > maxLookupSize {
		size = defaultLookupSize
	}
	return s.Index.Search(ctx, q, size)
}

// UploadAvatar stores the image and points the user's avatar_url at it.
func (s *Service) UploadAvatar(ctx context.Context, id string, r io.Reader, filename, contentType string) (*entity.UserView, error) {
	if s.Avatars == nil {
		return nil, ErrStorageUnavailable
	}
	if _, ok := allowedAvatarTypes[contentType]; !ok {
		return nil, apperror.InvalidArgument("avatar", "avatar must be a png, jpeg or webp image")
	}
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	url, err := s.Avatars.Upload(ctx, id, r, filename, contentType)
	if err != nil {
		return nil, fmt.Errorf("upload avatar: %w", err)
	}
	u.AvatarURL = url
	if err := s.Repo.Update(ctx, u); err != nil {
		return nil, err
	}
	view := u.View()
	if err := s.Cache.Set(ctx, view); err != nil {
		return nil, fmt.Errorf("user cache set: %w", err)
	}
	s.index(ctx, view)
	return &view, nil
}

func (s *Service) index(ctx context.Context, v entity.UserView) {
	if s.Index == nil {
		return
	}
	if err := s.Index.Index(ctx, v); err != nil {
		s.Logger.WithError(err).WithField("user_id", v.ID).Warn("es index failed")
	}
}

func (s *Service) publish(ctx context.Context, eventType string, u *entity.User) {
	if s.Events == nil {
		return
	}
	ev := entity.UserEvent{Type: eventType, UserID: u.ID, Name: u.Name, Email: u.Email, OccurredAt: time.Now().UTC()}
	if err := s.Events.PublishJSON(ctx, eventType, ev); err != nil {
		s.Logger.WithError(err).WithField("event", eventType).Warn("publish user event failed")
	}
}
