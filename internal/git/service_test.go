package git

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v6"
	gitconfig "github.com/go-git/go-git/v6/config"
	"github.com/go-git/go-git/v6/plumbing"
	"github.com/go-git/go-git/v6/plumbing/object"
	"go.uber.org/zap/zaptest"
)

func initTestRepo(t *testing.T) (string, *gogit.Repository, *gogit.Worktree) {
	t.Helper()

	repoPath := filepath.Join(t.TempDir(), "repo")
	if err := os.MkdirAll(repoPath, 0755); err != nil {
		t.Fatal(err)
	}

	repo, err := gogit.PlainInit(repoPath, false)
	if err != nil {
		t.Fatal(err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		t.Fatal(err)
	}

	return repoPath, repo, worktree
}

func commitFile(t *testing.T, repoPath string, worktree *gogit.Worktree, name, content, message string) plumbing.Hash {
	t.Helper()

	if err := os.WriteFile(filepath.Join(repoPath, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := worktree.Add(name); err != nil {
		t.Fatal(err)
	}

	hash, err := worktree.Commit(message, &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  "Test Author",
			Email: "test@example.com",
			When:  time.Now(),
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	return hash
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(Config{}, zaptest.NewLogger(t))
}

func TestService_StatusClean(t *testing.T) {
	repoPath, _, worktree := initTestRepo(t)
	head := commitFile(t, repoPath, worktree, "a.txt", "content", "initial commit")

	service := newTestService(t)

	status, err := service.Status(context.Background(), repoPath)
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}

	if !status.Exists {
		t.Error("expected repository to exist")
	}
	if status.BranchName != "master" {
		t.Errorf("expected branch 'master', got %q", status.BranchName)
	}
	if status.SHA != head.String() {
		t.Errorf("expected HEAD %s, got %s", head.String(), status.SHA)
	}
	if len(status.Changes) != 0 {
		t.Errorf("expected a clean worktree, got %d changes", len(status.Changes))
	}
}

func TestService_StatusDirty(t *testing.T) {
	repoPath, _, worktree := initTestRepo(t)
	commitFile(t, repoPath, worktree, "tracked.txt", "v1", "initial commit")

	// Modify a tracked file and drop an untracked one
	if err := os.WriteFile(filepath.Join(repoPath, "tracked.txt"), []byte("v2"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(repoPath, "untracked.txt"), []byte("new"), 0644); err != nil {
		t.Fatal(err)
	}

	service := newTestService(t)

	status, err := service.Status(context.Background(), repoPath)
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}

	if len(status.Changes) != 2 {
		t.Fatalf("expected 2 changes, got %d", len(status.Changes))
	}

	byFile := map[string]FileChange{}
	for _, change := range status.Changes {
		byFile[filepath.Base(change.URI)] = change
	}

	tracked, ok := byFile["tracked.txt"]
	if !ok || tracked.Status != StatusModified {
		t.Errorf("expected tracked.txt to be Modified, got %+v", tracked)
	}
	if tracked.Staged == nil || *tracked.Staged {
		t.Error("expected tracked.txt change to be unstaged")
	}

	untracked, ok := byFile["untracked.txt"]
	if !ok || untracked.Status != StatusNew {
		t.Errorf("expected untracked.txt to be New, got %+v", untracked)
	}
}

func TestService_StatusMissingRepository(t *testing.T) {
	service := newTestService(t)

	status, err := service.Status(context.Background(), filepath.Join(t.TempDir(), "nowhere"))
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}

	if status.Exists {
		t.Error("expected Exists=false for a missing repository")
	}
	if len(status.Changes) != 0 {
		t.Error("expected no changes for a missing repository")
	}
}

func TestService_StatusAheadBehind(t *testing.T) {
	repoPath, repo, worktree := initTestRepo(t)
	first := commitFile(t, repoPath, worktree, "a.txt", "v1", "initial commit")
	commitFile(t, repoPath, worktree, "a.txt", "v2", "second commit")

	// Simulate a fetched upstream that still points at the first commit.
	remoteRef := plumbing.NewHashReference(plumbing.NewRemoteReferenceName("origin", "master"), first)
	if err := repo.Storer.SetReference(remoteRef); err != nil {
		t.Fatal(err)
	}

	cfg, err := repo.Config()
	if err != nil {
		t.Fatal(err)
	}
	cfg.Branches["master"] = &gitconfig.Branch{
		Name:   "master",
		Remote: "origin",
		Merge:  plumbing.NewBranchReferenceName("master"),
	}
	if err := repo.SetConfig(cfg); err != nil {
		t.Fatal(err)
	}

	service := newTestService(t)

	status, err := service.Status(context.Background(), repoPath)
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}

	if status.UpstreamBranch != "origin/master" {
		t.Errorf("expected upstream 'origin/master', got %q", status.UpstreamBranch)
	}
	if status.AheadBehind == nil {
		t.Fatal("expected ahead/behind to be computed")
	}
	if status.AheadBehind.Ahead != 1 || status.AheadBehind.Behind != 0 {
		t.Errorf("expected (1 ahead, 0 behind), got (%d, %d)",
			status.AheadBehind.Ahead, status.AheadBehind.Behind)
	}
}

func TestService_Log(t *testing.T) {
	repoPath, _, worktree := initTestRepo(t)
	first := commitFile(t, repoPath, worktree, "a.txt", "v1", "initial commit")
	second := commitFile(t, repoPath, worktree, "a.txt", "v2", "second commit\n\nwith a body")

	service := newTestService(t)

	commits, err := service.Log(context.Background(), LogRequest{Path: repoPath})
	if err != nil {
		t.Fatalf("Log failed: %v", err)
	}

	if len(commits) != 2 {
		t.Fatalf("expected 2 commits, got %d", len(commits))
	}

	latest := commits[0]
	if latest.SHA != second.String() {
		t.Errorf("expected newest commit first, got %s", latest.SHA)
	}
	if latest.Summary != "second commit" {
		t.Errorf("expected summary 'second commit', got %q", latest.Summary)
	}
	if latest.Body != "with a body" {
		t.Errorf("expected body 'with a body', got %q", latest.Body)
	}
	if len(latest.ParentSHAs) != 1 || latest.ParentSHAs[0] != first.String() {
		t.Errorf("expected parent %s, got %v", first.String(), latest.ParentSHAs)
	}
	if len(latest.Changes) != 1 || latest.Changes[0].Status != StatusModified {
		t.Errorf("expected one Modified change, got %+v", latest.Changes)
	}

	initial := commits[1]
	if len(initial.Changes) != 1 || initial.Changes[0].Status != StatusNew {
		t.Errorf("expected one New change in the initial commit, got %+v", initial.Changes)
	}
	if initial.Changes[0].CommitSHA != first.String() {
		t.Errorf("expected change attributed to %s, got %s", first.String(), initial.Changes[0].CommitSHA)
	}
}

func TestService_LogMaxCount(t *testing.T) {
	repoPath, _, worktree := initTestRepo(t)
	commitFile(t, repoPath, worktree, "a.txt", "v1", "first")
	commitFile(t, repoPath, worktree, "a.txt", "v2", "second")
	commitFile(t, repoPath, worktree, "a.txt", "v3", "third")

	service := newTestService(t)

	commits, err := service.Log(context.Background(), LogRequest{Path: repoPath, MaxCount: 2})
	if err != nil {
		t.Fatalf("Log failed: %v", err)
	}

	if len(commits) != 2 {
		t.Errorf("expected 2 commits, got %d", len(commits))
	}
}

func TestService_Blame(t *testing.T) {
	repoPath, _, worktree := initTestRepo(t)
	first := commitFile(t, repoPath, worktree, "a.txt", "line one\n", "initial commit")
	second := commitFile(t, repoPath, worktree, "a.txt", "line one\nline two\n", "append a line")

	service := newTestService(t)

	blame, err := service.Blame(context.Background(), BlameRequest{Path: repoPath, File: "a.txt"})
	if err != nil {
		t.Fatalf("Blame failed: %v", err)
	}

	if len(blame.Lines) != 2 {
		t.Fatalf("expected 2 blamed lines, got %d", len(blame.Lines))
	}
	if blame.Lines[0].Line != 1 || blame.Lines[0].SHA != first.String() {
		t.Errorf("expected line 1 attributed to %s, got %+v", first.String(), blame.Lines[0])
	}
	if blame.Lines[1].Line != 2 || blame.Lines[1].SHA != second.String() {
		t.Errorf("expected line 2 attributed to %s, got %+v", second.String(), blame.Lines[1])
	}
	if len(blame.Commits) != 2 {
		t.Errorf("expected 2 contributing commits, got %d", len(blame.Commits))
	}
}

func TestService_BlameMissingFile(t *testing.T) {
	repoPath, _, worktree := initTestRepo(t)
	commitFile(t, repoPath, worktree, "a.txt", "content", "initial commit")

	service := newTestService(t)

	if _, err := service.Blame(context.Background(), BlameRequest{Path: repoPath, File: "missing.txt"}); !errors.Is(err, ErrFileNotFound) {
		t.Errorf("expected ErrFileNotFound, got %v", err)
	}
}

func TestService_BadRefClassified(t *testing.T) {
	repoPath, _, worktree := initTestRepo(t)
	commitFile(t, repoPath, worktree, "a.txt", "content", "initial commit")

	service := newTestService(t)

	if _, err := service.Blame(context.Background(), BlameRequest{Path: repoPath, File: "a.txt", Ref: "no-such-ref"}); !errors.Is(err, ErrBranchNotFound) {
		t.Errorf("expected ErrBranchNotFound from Blame, got %v", err)
	}
	if _, err := service.Log(context.Background(), LogRequest{Path: repoPath, Ref: "no-such-ref"}); !errors.Is(err, ErrBranchNotFound) {
		t.Errorf("expected ErrBranchNotFound from Log, got %v", err)
	}
}

func TestService_TimeoutClassified(t *testing.T) {
	repoPath, _, worktree := initTestRepo(t)
	commitFile(t, repoPath, worktree, "a.txt", "content\n", "initial commit")

	// A deadline this short is always expired by the first check.
	service := NewService(Config{Timeout: time.Nanosecond}, zaptest.NewLogger(t))

	if _, err := service.Status(context.Background(), repoPath); !errors.Is(err, ErrTimeout) {
		t.Errorf("expected ErrTimeout from Status, got %v", err)
	}
	if _, err := service.Branches(context.Background(), repoPath); !errors.Is(err, ErrTimeout) {
		t.Errorf("expected ErrTimeout from Branches, got %v", err)
	}
	if _, err := service.Log(context.Background(), LogRequest{Path: repoPath}); !errors.Is(err, ErrTimeout) {
		t.Errorf("expected ErrTimeout from Log, got %v", err)
	}
	if _, err := service.Blame(context.Background(), BlameRequest{Path: repoPath, File: "a.txt"}); !errors.Is(err, ErrTimeout) {
		t.Errorf("expected ErrTimeout from Blame, got %v", err)
	}
}

func TestService_Branches(t *testing.T) {
	repoPath, _, worktree := initTestRepo(t)
	commitFile(t, repoPath, worktree, "a.txt", "content", "initial commit")

	err := worktree.Checkout(&gogit.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName("feature"),
		Create: true,
	})
	if err != nil {
		t.Fatal(err)
	}

	service := newTestService(t)

	branches, err := service.Branches(context.Background(), repoPath)
	if err != nil {
		t.Fatalf("Branches failed: %v", err)
	}

	names := map[string]Branch{}
	for _, branch := range branches {
		names[branch.Name] = branch
	}

	for _, want := range []string{"master", "feature"} {
		branch, ok := names[want]
		if !ok {
			t.Errorf("expected branch %q in listing", want)
			continue
		}
		if branch.Type != BranchLocal {
			t.Errorf("expected %q to be a local branch", want)
		}
		if branch.Tip == nil || branch.Tip.SHA == "" {
			t.Errorf("expected %q to have a tip commit", want)
		}
	}
}
