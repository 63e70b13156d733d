package repos

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/gitscope/gitscope/internal/git"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service struct {
	repos *Repository

	gitSvc GitService

	logger *zap.Logger
}

func NewService(repos *Repository, gitSvc GitService, logger *zap.Logger) *Service {
	return &Service{
		repos: repos,

		gitSvc: gitSvc,

		logger: logger,
	}
}

// Register registers a working copy. The path must be absolute and, unless
// the draft allows a missing repository, must already hold one.
func (s *Service) Register(ctx context.Context, draft RepoDraft) (*Repo, error) {
	s.logger.Info("registering repository",
		zap.String("name", draft.Name),
		zap.String("path", draft.Path))

	if !filepath.IsAbs(draft.Path) {
		return nil, fmt.Errorf("%w: path must be absolute", ErrNotAllowed)
	}
	draft.Path = filepath.Clean(draft.Path)

	if !draft.AllowMissing && !s.gitSvc.RepositoryExists(draft.Path) {
		return nil, fmt.Errorf("%w: no repository at %s", git.ErrRepositoryNotFound, draft.Path)
	}

	repo, err := s.repos.Create(ctx, &draft)
	if err != nil {
		s.logger.Error("failed to register repository", zap.Error(err))
		return nil, err
	}

	s.logger.Info("repository registered", zap.String("id", repo.ID.String()))
	return repo, nil
}

// Get retrieves a registration by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Repo, error) {
	s.logger.Debug("getting registration", zap.String("id", id.String()))

	repo, err := s.repos.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get registration", zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}

	return repo, nil
}

// GetByPath retrieves a registration by its working-copy path.
func (s *Service) GetByPath(ctx context.Context, path string) (*Repo, error) {
	return s.repos.GetByPath(ctx, filepath.Clean(path))
}

// List retrieves all registrations.
func (s *Service) List(ctx context.Context) ([]Repo, error) {
	s.logger.Debug("listing registrations")

	repositories, err := s.repos.List(ctx)
	if err != nil {
		s.logger.Error("failed to list registrations", zap.Error(err))
		return nil, err
	}

	return repositories, nil
}

// Update applies an update function to a registration.
func (s *Service) Update(ctx context.Context, id uuid.UUID, updater func(*Repo) error) error {
	s.logger.Info("updating registration", zap.String("id", id.String()))

	if err := s.repos.Update(ctx, id, updater); err != nil {
		s.logger.Error("failed to update registration", zap.String("id", id.String()), zap.Error(err))
		return err
	}

	return nil
}

// Remove deletes a registration. The working copy itself is left alone.
func (s *Service) Remove(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("removing registration", zap.String("id", id.String()))

	if err := s.repos.Delete(ctx, id); err != nil {
		s.logger.Error("failed to remove registration", zap.String("id", id.String()), zap.Error(err))
		return err
	}

	return nil
}

// FindByURI finds the registration whose working copy contains the resource.
func (s *Service) FindByURI(ctx context.Context, uri string) (*Repo, error) {
	repositories, err := s.repos.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range repositories {
		if repositories[i].Repository().Contains(uri) {
			return &repositories[i], nil
		}
	}

	return nil, fmt.Errorf("%w: no registration contains %s", ErrNotFound, uri)
}

// Status builds the working-directory status of a registered repository.
func (s *Service) Status(ctx context.Context, id uuid.UUID) (*git.WorkingDirectoryStatus, error) {
	repo, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.gitSvc.Status(ctx, repo.Path)
}

// Branches lists the branches of a registered repository.
func (s *Service) Branches(ctx context.Context, id uuid.UUID) ([]git.Branch, error) {
	repo, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.gitSvc.Branches(ctx, repo.Path)
}

// Log walks the commit history of a registered repository.
func (s *Service) Log(ctx context.Context, id uuid.UUID, opts LogOptions) ([]git.CommitWithChanges, error) {
	repo, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.gitSvc.Log(ctx, repo.Path, opts)
}

// Blame attributes a file of a registered repository to commits.
func (s *Service) Blame(ctx context.Context, id uuid.UUID, opts BlameOptions) (*git.FileBlame, error) {
	repo, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.gitSvc.Blame(ctx, repo.Path, opts)
}
