package git

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing"
	"github.com/go-git/go-git/v6/plumbing/object"
	"github.com/go-git/go-git/v6/plumbing/storer"
	"github.com/go-git/go-git/v6/utils/merkletrie"
	"go.uber.org/zap"
)

type Service struct {
	config Config
	logger *zap.Logger
}

// NewService creates a new git inspection service.
func NewService(config Config, logger *zap.Logger) *Service {
	return &Service{
		config: config,
		logger: logger,
	}
}

// Status builds a working-directory status snapshot for the repository at
// path. A location that holds no repository yields Exists=false, not an
// error.
func (s *Service) Status(ctx context.Context, path string) (*WorkingDirectoryStatus, error) {
	s.logger.Debug("reading status", zap.String("path", path))

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	repo, err := git.PlainOpen(path)
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return &WorkingDirectoryStatus{Exists: false}, nil
	}
	if err != nil {
		s.logger.Error("failed to open repository", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrNotARepository, err)
	}

	status := &WorkingDirectoryStatus{Exists: true}

	head, err := repo.Head()
	switch {
	case err == nil:
		status.SHA = head.Hash().String()
		if head.Name().IsBranch() {
			status.BranchName = head.Name().Short()
		}
	case errors.Is(err, plumbing.ErrReferenceNotFound):
		// unborn repository, no commits yet
	default:
		s.logger.Error("failed to resolve HEAD", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrNotARepository, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		s.logger.Error("failed to get worktree", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrNotARepository, err)
	}

	wtStatus, err := worktree.Status()
	if err != nil {
		s.logger.Error("failed to read worktree status", zap.Error(err))
		return nil, wrapContext(ctx, err)
	}
	status.Changes = fileChanges(path, wtStatus)

	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, wrapContext(ctx, ctxErr)
	}

	if status.BranchName != "" {
		upstream, distance, upErr := s.upstream(repo, status.BranchName, head.Hash())
		if upErr != nil {
			s.logger.Warn("failed to compute upstream distance",
				zap.String("branch", status.BranchName), zap.Error(upErr))
		} else {
			status.UpstreamBranch = upstream
			status.AheadBehind = distance
		}
	}

	s.logger.Debug("status read",
		zap.String("path", path),
		zap.Int("changes", len(status.Changes)))

	return status, nil
}

// Branches retrieves all local and remote-tracking branches.
func (s *Service) Branches(ctx context.Context, path string) ([]Branch, error) {
	s.logger.Debug("listing branches", zap.String("path", path))

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	repo, err := git.PlainOpen(path)
	if err != nil {
		s.logger.Error("failed to open repository", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrNotARepository, err)
	}

	cfg, err := repo.Config()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotARepository, err)
	}

	var branches []Branch

	local, err := repo.Branches()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotARepository, err)
	}
	err = local.ForEach(func(ref *plumbing.Reference) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		name := ref.Name().Short()
		branch := Branch{
			Name: name,
			Type: BranchLocal,
			Tip:  s.tip(repo, ref),
		}
		if bc, ok := cfg.Branches[name]; ok && bc.Merge != "" {
			branch.Remote = bc.Remote
			branch.Upstream = bc.Remote + "/" + bc.Merge.Short()
		}
		branches = append(branches, branch)
		return nil
	})
	if err != nil {
		return nil, wrapContext(ctx, err)
	}

	refs, err := repo.References()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotARepository, err)
	}
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if !ref.Name().IsRemote() || ref.Type() != plumbing.HashReference {
			return nil
		}
		name := ref.Name().Short()
		remote, _, _ := strings.Cut(name, "/")
		branches = append(branches, Branch{
			Name:   name,
			Type:   BranchRemote,
			Tip:    s.tip(repo, ref),
			Remote: remote,
		})
		return nil
	})
	if err != nil {
		return nil, wrapContext(ctx, err)
	}

	s.logger.Debug("branches listed",
		zap.String("path", path),
		zap.Int("count", len(branches)))

	return branches, nil
}

// Log walks the commit history from the requested ref and attaches the file
// changes each commit introduced against its first parent.
func (s *Service) Log(ctx context.Context, req LogRequest) ([]CommitWithChanges, error) {
	s.logger.Debug("reading log",
		zap.String("path", req.Path),
		zap.String("ref", req.Ref))

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	repo, err := git.PlainOpen(req.Path)
	if err != nil {
		s.logger.Error("failed to open repository", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrNotARepository, err)
	}

	from, err := s.resolve(repo, req.Ref)
	if err != nil {
		return nil, err
	}

	iter, err := repo.Log(&git.LogOptions{From: from})
	if err != nil {
		s.logger.Error("failed to walk history", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrNotARepository, err)
	}

	maxCount := req.MaxCount
	if maxCount <= 0 {
		maxCount = s.config.maxLogEntries()
	}

	var commits []CommitWithChanges
	err = iter.ForEach(func(c *object.Commit) error {
		if len(commits) >= maxCount {
			return storer.ErrStop
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		changes, chErr := s.commitChanges(ctx, req.Path, c)
		if chErr != nil {
			return chErr
		}

		commits = append(commits, CommitWithChanges{
			Commit:  toCommit(c),
			Changes: changes,
		})
		return nil
	})
	if err != nil {
		s.logger.Error("failed to read log", zap.Error(err))
		return nil, wrapContext(ctx, err)
	}

	s.logger.Debug("log read",
		zap.String("path", req.Path),
		zap.Int("count", len(commits)))

	return commits, nil
}

// Blame attributes every line of a file to the commit that last touched it.
func (s *Service) Blame(ctx context.Context, req BlameRequest) (*FileBlame, error) {
	s.logger.Debug("blaming file",
		zap.String("path", req.Path),
		zap.String("file", req.File))

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	repo, err := git.PlainOpen(req.Path)
	if err != nil {
		s.logger.Error("failed to open repository", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrNotARepository, err)
	}

	from, err := s.resolve(repo, req.Ref)
	if err != nil {
		return nil, err
	}

	commit, err := repo.CommitObject(from)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBranchNotFound, err)
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, wrapContext(ctx, ctxErr)
	}

	result, err := git.Blame(commit, req.File)
	if err != nil {
		s.logger.Error("failed to blame file", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}

	blame := &FileBlame{
		URI:   req.Path + "/" + req.File,
		Lines: make([]BlameLine, 0, len(result.Lines)),
	}

	seen := make(map[string]bool)
	for i, line := range result.Lines {
		sha := line.Hash.String()
		blame.Lines = append(blame.Lines, BlameLine{SHA: sha, Line: i + 1})

		if seen[sha] {
			continue
		}
		seen[sha] = true

		lineCommit, commitErr := repo.CommitObject(line.Hash)
		if commitErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrNotARepository, commitErr)
		}
		blame.Commits = append(blame.Commits, toCommit(lineCommit))
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, wrapContext(ctx, ctxErr)
	}

	s.logger.Debug("file blamed",
		zap.String("file", req.File),
		zap.Int("lines", len(blame.Lines)),
		zap.Int("commits", len(blame.Commits)))

	return blame, nil
}

// upstream resolves the configured upstream of a local branch and the
// ahead/behind distance to it. A branch without an upstream yields empty
// values, not an error.
func (s *Service) upstream(repo *git.Repository, branch string, local plumbing.Hash) (string, *AheadBehind, error) {
	cfg, err := repo.Config()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrNotARepository, err)
	}

	bc, ok := cfg.Branches[branch]
	if !ok || bc.Merge == "" {
		return "", nil, nil
	}
	upstream := bc.Remote + "/" + bc.Merge.Short()

	ref, err := repo.Reference(plumbing.NewRemoteReferenceName(bc.Remote, bc.Merge.Short()), true)
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		// configured but never fetched
		return upstream, nil, nil
	}
	if err != nil {
		return upstream, nil, fmt.Errorf("%w: %w", ErrNoUpstreamBranch, err)
	}

	distance, err := s.distance(repo, local, ref.Hash())
	if err != nil {
		return upstream, nil, err
	}

	return upstream, distance, nil
}

// distance counts the commits each tip holds beyond the merge base.
func (s *Service) distance(repo *git.Repository, local, remote plumbing.Hash) (*AheadBehind, error) {
	if local == remote {
		return &AheadBehind{}, nil
	}

	localCommit, err := repo.CommitObject(local)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotARepository, err)
	}
	remoteCommit, err := repo.CommitObject(remote)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotARepository, err)
	}

	bases, err := localCommit.MergeBase(remoteCommit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotARepository, err)
	}

	exclude := make([]plumbing.Hash, 0, len(bases))
	for _, base := range bases {
		exclude = append(exclude, base.Hash)
	}

	ahead, err := countExclusive(localCommit, exclude)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotARepository, err)
	}
	behind, err := countExclusive(remoteCommit, exclude)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotARepository, err)
	}

	return &AheadBehind{Ahead: ahead, Behind: behind}, nil
}

// countExclusive counts commits reachable from tip but not from any of the
// excluded commits.
func countExclusive(tip *object.Commit, exclude []plumbing.Hash) (int, error) {
	count := 0
	iter := object.NewCommitPreorderIter(tip, nil, exclude)
	err := iter.ForEach(func(*object.Commit) error {
		count++
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// commitChanges diffs a commit against its first parent.
func (s *Service) commitChanges(ctx context.Context, root string, c *object.Commit) ([]CommittedFileChange, error) {
	tree, err := c.Tree()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotARepository, err)
	}

	var parentTree *object.Tree
	if c.NumParents() > 0 {
		parent, parentErr := c.Parent(0)
		if parentErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrNotARepository, parentErr)
		}
		parentTree, err = parent.Tree()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNotARepository, err)
		}
	}

	treeChanges, err := object.DiffTreeWithOptions(ctx, parentTree, tree, object.DefaultDiffTreeOptions)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotARepository, err)
	}

	sha := c.Hash.String()
	changes := make([]CommittedFileChange, 0, len(treeChanges))
	for _, tc := range treeChanges {
		action, actionErr := tc.Action()
		if actionErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrNotARepository, actionErr)
		}

		change := FileChange{URI: root + "/" + tc.To.Name}
		switch action {
		case merkletrie.Insert:
			change.Status = StatusNew
		case merkletrie.Delete:
			change.Status = StatusDeleted
			change.URI = root + "/" + tc.From.Name
		case merkletrie.Modify:
			if tc.From.Name != tc.To.Name {
				change.Status = StatusRenamed
				change.PreviousURI = root + "/" + tc.From.Name
			} else {
				change.Status = StatusModified
			}
		}

		changes = append(changes, CommittedFileChange{
			FileChange: change,
			CommitSHA:  sha,
		})
	}

	return changes, nil
}

// fileChanges maps a go-git worktree status onto the snapshot model. A file
// staged and then modified again contributes two entries, one per side of
// the index.
func fileChanges(root string, status git.Status) []FileChange {
	var changes []FileChange
	for file, fs := range status {
		uri := root + "/" + file

		if fs.Staging == git.UpdatedButUnmerged || fs.Worktree == git.UpdatedButUnmerged {
			changes = append(changes, FileChange{URI: uri, Status: StatusConflicted})
			continue
		}

		if fs.Staging == git.Untracked {
			changes = append(changes, FileChange{URI: uri, Status: StatusNew, Staged: ptr(false)})
			continue
		}

		if mapped, ok := codeStatus(fs.Staging); ok {
			change := FileChange{URI: uri, Status: mapped, Staged: ptr(true)}
			if fs.Extra != "" && (mapped == StatusRenamed || mapped == StatusCopied) {
				change.PreviousURI = root + "/" + fs.Extra
			}
			changes = append(changes, change)
		}
		if mapped, ok := codeStatus(fs.Worktree); ok {
			changes = append(changes, FileChange{URI: uri, Status: mapped, Staged: ptr(false)})
		}
	}

	sort.Slice(changes, func(i, j int) bool {
		if changes[i].URI != changes[j].URI {
			return changes[i].URI < changes[j].URI
		}
		return changes[i].Status.Compare(changes[j].Status) < 0
	})

	return changes
}

func codeStatus(code git.StatusCode) (FileStatus, bool) {
	switch code {
	case git.Added:
		return StatusNew, true
	case git.Copied:
		return StatusCopied, true
	case git.Modified:
		return StatusModified, true
	case git.Renamed:
		return StatusRenamed, true
	case git.Deleted:
		return StatusDeleted, true
	}
	return 0, false
}

// resolve turns a ref string into a commit hash, defaulting to HEAD.
func (s *Service) resolve(repo *git.Repository, ref string) (plumbing.Hash, error) {
	if ref == "" {
		head, err := repo.Head()
		if err != nil {
			return plumbing.ZeroHash, fmt.Errorf("%w: %w", ErrBranchNotFound, err)
		}
		return head.Hash(), nil
	}

	hash, err := repo.ResolveRevision(plumbing.Revision(ref))
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("%w: %q: %w", ErrBranchNotFound, ref, err)
	}
	return *hash, nil
}

func (s *Service) tip(repo *git.Repository, ref *plumbing.Reference) *Commit {
	commit, err := repo.CommitObject(ref.Hash())
	if err != nil {
		s.logger.Warn("failed to get tip commit",
			zap.String("ref", ref.Name().String()), zap.Error(err))
		return nil
	}
	tip := toCommit(commit)
	return &tip
}

func toCommit(c *object.Commit) Commit {
	summary, body, _ := strings.Cut(c.Message, "\n")

	parents := make([]string, 0, len(c.ParentHashes))
	for _, p := range c.ParentHashes {
		parents = append(parents, p.String())
	}

	return Commit{
		SHA:     c.Hash.String(),
		Summary: strings.TrimSpace(summary),
		Body:    strings.TrimSpace(body),
		Author: CommitIdentity{
			Name:  c.Author.Name,
			Email: c.Author.Email,
			When:  c.Author.When,
		},
		ParentSHAs: parents,
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.config.Timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.config.Timeout)
}

// wrapContext classifies context failures onto the error taxonomy.
func wrapContext(ctx context.Context, err error) error {
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	case errors.Is(ctx.Err(), context.Canceled):
		return fmt.Errorf("%w: %w", ErrOperationCancelled, err)
	}
	return fmt.Errorf("%w: %w", ErrNotARepository, err)
}

func ptr(b bool) *bool {
	return &b
}
