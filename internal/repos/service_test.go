package repos

import (
	"context"
	"errors"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/gitscope/gitscope/internal/git"
	"go.uber.org/zap/zaptest"
)

type stubGitService struct {
	exists bool
	status *git.WorkingDirectoryStatus
}

func (s *stubGitService) Status(_ context.Context, _ string) (*git.WorkingDirectoryStatus, error) {
	return s.status, nil
}

func (s *stubGitService) Branches(_ context.Context, _ string) ([]git.Branch, error) {
	return nil, nil
}

func (s *stubGitService) Log(_ context.Context, _ string, _ LogOptions) ([]git.CommitWithChanges, error) {
	return nil, nil
}

func (s *stubGitService) Blame(_ context.Context, _ string, _ BlameOptions) (*git.FileBlame, error) {
	return nil, nil
}

func (s *stubGitService) RepositoryExists(_ string) bool {
	return s.exists
}

func newTestService(t *testing.T, gitSvc GitService) *Service {
	t.Helper()

	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return NewService(NewRepository(db), gitSvc, zaptest.NewLogger(t))
}

func TestService_RegisterAndGet(t *testing.T) {
	service := newTestService(t, &stubGitService{exists: true})

	repo, err := service.Register(context.Background(), RepoDraft{
		Name: "gitscope",
		Path: "/work/gitscope",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	got, err := service.Get(context.Background(), repo.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Name != "gitscope" || got.Path != "/work/gitscope" {
		t.Errorf("unexpected registration: %+v", got)
	}

	byPath, err := service.GetByPath(context.Background(), "/work/gitscope")
	if err != nil {
		t.Fatalf("GetByPath failed: %v", err)
	}
	if byPath.ID != repo.ID {
		t.Errorf("expected registration %s, got %s", repo.ID, byPath.ID)
	}
}

func TestService_RegisterConflicts(t *testing.T) {
	service := newTestService(t, &stubGitService{exists: true})

	_, err := service.Register(context.Background(), RepoDraft{Name: "one", Path: "/work/one"})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if _, err := service.Register(context.Background(), RepoDraft{Name: "one", Path: "/work/other"}); !errors.Is(err, ErrConflict) {
		t.Errorf("expected ErrConflict for duplicate name, got %v", err)
	}
	if _, err := service.Register(context.Background(), RepoDraft{Name: "two", Path: "/work/one"}); !errors.Is(err, ErrConflict) {
		t.Errorf("expected ErrConflict for duplicate path, got %v", err)
	}
}

func TestService_RegisterMissingRepository(t *testing.T) {
	service := newTestService(t, &stubGitService{exists: false})

	_, err := service.Register(context.Background(), RepoDraft{Name: "missing", Path: "/work/missing"})
	if !errors.Is(err, git.ErrRepositoryNotFound) {
		t.Errorf("expected ErrRepositoryNotFound, got %v", err)
	}

	if _, err := service.Register(context.Background(), RepoDraft{
		Name:         "missing",
		Path:         "/work/missing",
		AllowMissing: true,
	}); err != nil {
		t.Errorf("expected AllowMissing to bypass the check, got %v", err)
	}
}

func TestService_RegisterRelativePath(t *testing.T) {
	service := newTestService(t, &stubGitService{exists: true})

	if _, err := service.Register(context.Background(), RepoDraft{Name: "rel", Path: "work/rel"}); !errors.Is(err, ErrNotAllowed) {
		t.Errorf("expected ErrNotAllowed for a relative path, got %v", err)
	}
}

func TestService_UpdateImmutableFields(t *testing.T) {
	service := newTestService(t, &stubGitService{exists: true})

	repo, err := service.Register(context.Background(), RepoDraft{Name: "stable", Path: "/work/stable"})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	err = service.Update(context.Background(), repo.ID, func(r *Repo) error {
		r.Name = "renamed"
		return nil
	})
	if !errors.Is(err, ErrNotAllowed) {
		t.Errorf("expected ErrNotAllowed for a rename, got %v", err)
	}

	err = service.Update(context.Background(), repo.ID, func(r *Repo) error {
		r.Path = "/work/elsewhere"
		return nil
	})
	if !errors.Is(err, ErrNotAllowed) {
		t.Errorf("expected ErrNotAllowed for a path change, got %v", err)
	}

	err = service.Update(context.Background(), repo.ID, func(r *Repo) error {
		r.Description = "updated"
		return nil
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := service.Get(context.Background(), repo.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Description != "updated" {
		t.Errorf("expected updated description, got %q", got.Description)
	}
}

func TestService_Remove(t *testing.T) {
	service := newTestService(t, &stubGitService{exists: true})

	repo, err := service.Register(context.Background(), RepoDraft{Name: "gone", Path: "/work/gone"})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if err := service.Remove(context.Background(), repo.ID); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	if _, err := service.Get(context.Background(), repo.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after removal, got %v", err)
	}
	if _, err := service.GetByPath(context.Background(), "/work/gone"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected path index removed, got %v", err)
	}
}

func TestService_FindByURI(t *testing.T) {
	service := newTestService(t, &stubGitService{exists: true})

	repo, err := service.Register(context.Background(), RepoDraft{Name: "host", Path: "/work/host"})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	found, err := service.FindByURI(context.Background(), "/work/host/src/main.go")
	if err != nil {
		t.Fatalf("FindByURI failed: %v", err)
	}
	if found.ID != repo.ID {
		t.Errorf("expected registration %s, got %s", repo.ID, found.ID)
	}

	if _, err := service.FindByURI(context.Background(), "/elsewhere/main.go"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for an outside URI, got %v", err)
	}
}

func TestService_StatusPassthrough(t *testing.T) {
	want := &git.WorkingDirectoryStatus{Exists: true, BranchName: "main"}
	service := newTestService(t, &stubGitService{exists: true, status: want})

	repo, err := service.Register(context.Background(), RepoDraft{Name: "status", Path: "/work/status"})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	status, err := service.Status(context.Background(), repo.ID)
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	if !status.Equal(want) {
		t.Errorf("expected status passthrough, got %+v", status)
	}
}
