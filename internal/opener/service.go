package opener

import (
	"context"
	"fmt"

	"github.com/gitscope/gitscope/internal/repos"
	"go.uber.org/zap"
)

// Service resolves resource URIs against the registered repositories. It is
// provided to the container under both capability roles.
type Service struct {
	config Config

	reposSvc *repos.Service

	logger *zap.Logger
}

func NewService(config Config, reposSvc *repos.Service, logger *zap.Logger) *Service {
	return &Service{
		config: config,

		reposSvc: reposSvc,

		logger: logger,
	}
}

// CanHandle implements ResourceHandler.
func (s *Service) CanHandle(ctx context.Context, uri string) bool {
	_, err := s.reposSvc.FindByURI(ctx, uri)
	return err == nil
}

// Open implements URIOpener.
func (s *Service) Open(ctx context.Context, req OpenRequest) (*Location, error) {
	s.logger.Debug("opening resource",
		zap.String("uri", req.URI),
		zap.Int("line", req.Line))

	repo, err := s.reposSvc.FindByURI(ctx, req.URI)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotHandled, req.URI)
	}

	repository := repo.Repository()

	location := &Location{
		RepoID:       repo.ID,
		Repository:   repository,
		RelativePath: repository.RelativePath(req.URI),
		Line:         req.Line,
		EditorURL:    s.editorURL(req),
	}

	s.logger.Info("resource resolved",
		zap.String("uri", req.URI),
		zap.String("repo_id", repo.ID.String()),
		zap.String("relative_path", location.RelativePath))

	return location, nil
}

func (s *Service) editorURL(req OpenRequest) string {
	url := fmt.Sprintf("%s://file%s", s.config.editorScheme(), req.URI)
	if req.Line > 0 {
		url = fmt.Sprintf("%s:%d", url, req.Line)
	}
	return url
}

var (
	_ ResourceHandler = (*Service)(nil)
	_ URIOpener       = (*Service)(nil)
)
