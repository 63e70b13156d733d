package repos

import (
	"path/filepath"
	"testing"

	"github.com/gitscope/gitscope/internal/git"
	gogit "github.com/go-git/go-git/v6"
	"go.uber.org/zap/zaptest"
)

func TestGitAdapter_RepositoryExists(t *testing.T) {
	adapter := NewGitAdapter(git.NewService(git.Config{}, zaptest.NewLogger(t)))

	repoPath := filepath.Join(t.TempDir(), "repo")
	if _, err := gogit.PlainInit(repoPath, false); err != nil {
		t.Fatal(err)
	}
	if !adapter.RepositoryExists(repoPath) {
		t.Error("expected an initialized repository to exist")
	}

	barePath := filepath.Join(t.TempDir(), "bare")
	if _, err := gogit.PlainInit(barePath, true); err != nil {
		t.Fatal(err)
	}
	if !adapter.RepositoryExists(barePath) {
		t.Error("expected a bare repository to exist")
	}

	if adapter.RepositoryExists(t.TempDir()) {
		t.Error("expected a plain directory not to hold a repository")
	}
	if adapter.RepositoryExists(filepath.Join(t.TempDir(), "nowhere")) {
		t.Error("expected a missing path not to hold a repository")
	}
}
