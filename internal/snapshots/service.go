package snapshots

import (
	"context"
	"errors"

	"github.com/gitscope/gitscope/internal/repos"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service struct {
	snapshots *Repository

	reposSvc *repos.Service
	metrics  *metrics

	logger *zap.Logger
}

func NewService(snapshots *Repository, reposSvc *repos.Service, metrics *metrics, logger *zap.Logger) *Service {
	return &Service{
		snapshots: snapshots,

		reposSvc: reposSvc,
		metrics:  metrics,

		logger: logger,
	}
}

// Capture records the current working-directory status of a registered
// repository. When the status structurally equals the latest recorded
// snapshot nothing is stored and the existing snapshot is returned; the
// second result reports whether a new snapshot was created.
func (s *Service) Capture(ctx context.Context, repoID uuid.UUID) (*Snapshot, bool, error) {
	s.logger.Info("capturing status snapshot", zap.String("repo_id", repoID.String()))

	status, err := s.reposSvc.Status(ctx, repoID)
	if err != nil {
		s.logger.Error("failed to read status", zap.Error(err))
		return nil, false, err
	}

	latest, err := s.snapshots.Latest(ctx, repoID)
	if err != nil && !errors.Is(err, ErrNoSnapshots) {
		s.logger.Error("failed to read latest snapshot", zap.Error(err))
		return nil, false, err
	}

	if latest != nil && latest.Status.Equal(status) {
		s.metrics.unchanged.Inc()
		s.logger.Debug("status unchanged, snapshot skipped",
			zap.String("repo_id", repoID.String()),
			zap.Uint64("seq", latest.Seq))
		return latest, false, nil
	}

	snapshot, err := s.snapshots.Create(ctx, repoID, status)
	if err != nil {
		s.logger.Error("failed to store snapshot", zap.Error(err))
		return nil, false, err
	}

	s.metrics.captured.Inc()
	s.logger.Info("snapshot captured",
		zap.String("repo_id", repoID.String()),
		zap.Uint64("seq", snapshot.Seq))

	return snapshot, true, nil
}

// ListByRepo retrieves all snapshots of a repository, oldest first.
func (s *Service) ListByRepo(ctx context.Context, repoID uuid.UUID) ([]Snapshot, error) {
	s.logger.Debug("listing snapshots", zap.String("repo_id", repoID.String()))

	result, err := s.snapshots.ListByRepo(ctx, repoID)
	if err != nil {
		s.logger.Error("failed to list snapshots", zap.Error(err))
		return nil, err
	}

	return result, nil
}

// Latest retrieves the most recent snapshot of a repository.
func (s *Service) Latest(ctx context.Context, repoID uuid.UUID) (*Snapshot, error) {
	return s.snapshots.Latest(ctx, repoID)
}

// Prune drops all but the most recent keep snapshots of a repository.
func (s *Service) Prune(ctx context.Context, repoID uuid.UUID, keep int) (int, error) {
	s.logger.Info("pruning snapshots",
		zap.String("repo_id", repoID.String()),
		zap.Int("keep", keep))

	deleted, err := s.snapshots.Prune(ctx, repoID, keep)
	if err != nil {
		s.logger.Error("failed to prune snapshots", zap.Error(err))
		return 0, err
	}

	return deleted, nil
}
