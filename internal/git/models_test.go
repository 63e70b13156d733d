package git

import "testing"

func TestWorkingDirectoryStatus_EqualNil(t *testing.T) {
	var left, right *WorkingDirectoryStatus

	if !left.Equal(right) {
		t.Error("two absent statuses must be equal")
	}

	defined := &WorkingDirectoryStatus{Exists: true}
	if defined.Equal(nil) {
		t.Error("defined status must not equal absent status")
	}
	if (*WorkingDirectoryStatus)(nil).Equal(defined) {
		t.Error("absent status must not equal defined status")
	}
}

func TestWorkingDirectoryStatus_EqualReflexiveSymmetric(t *testing.T) {
	statuses := []*WorkingDirectoryStatus{
		{Exists: true},
		{Exists: true, BranchName: "main", SHA: "abc123"},
		{
			Exists:         true,
			BranchName:     "main",
			UpstreamBranch: "origin/main",
			AheadBehind:    &AheadBehind{Ahead: 2, Behind: 1},
			Changes: []FileChange{
				{URI: "/repo/a.go", Status: StatusModified, Staged: ptr(false)},
			},
		},
	}

	for i, status := range statuses {
		if !status.Equal(status) {
			t.Errorf("status %d must equal itself", i)
		}
		for j, other := range statuses {
			if status.Equal(other) != other.Equal(status) {
				t.Errorf("Equal must be symmetric for statuses %d and %d", i, j)
			}
		}
	}
}

func TestWorkingDirectoryStatus_EqualFields(t *testing.T) {
	base := func() *WorkingDirectoryStatus {
		return &WorkingDirectoryStatus{
			Exists:         true,
			BranchName:     "main",
			UpstreamBranch: "origin/main",
			SHA:            "abc123",
			AheadBehind:    &AheadBehind{Ahead: 1, Behind: 0},
			Changes: []FileChange{
				{URI: "/repo/a.go", Status: StatusModified, Staged: ptr(true)},
			},
		}
	}

	if !base().Equal(base()) {
		t.Fatal("identical snapshots must be equal")
	}

	mutations := map[string]func(*WorkingDirectoryStatus){
		"exists":       func(s *WorkingDirectoryStatus) { s.Exists = false },
		"branch":       func(s *WorkingDirectoryStatus) { s.BranchName = "other" },
		"upstream":     func(s *WorkingDirectoryStatus) { s.UpstreamBranch = "origin/other" },
		"sha":          func(s *WorkingDirectoryStatus) { s.SHA = "def456" },
		"ahead/behind": func(s *WorkingDirectoryStatus) { s.AheadBehind = &AheadBehind{Ahead: 3, Behind: 0} },
		"change count": func(s *WorkingDirectoryStatus) { s.Changes = nil },
		"change content": func(s *WorkingDirectoryStatus) {
			s.Changes[0].Status = StatusDeleted
		},
	}

	for name, mutate := range mutations {
		mutated := base()
		mutate(mutated)
		if base().Equal(mutated) {
			t.Errorf("snapshots differing in %s must not be equal", name)
		}
	}
}

func TestWorkingDirectoryStatus_EqualChangeCount(t *testing.T) {
	one := &WorkingDirectoryStatus{
		Exists:  true,
		Changes: []FileChange{{URI: "/repo/a.go", Status: StatusNew}},
	}
	two := &WorkingDirectoryStatus{
		Exists: true,
		Changes: []FileChange{
			{URI: "/repo/a.go", Status: StatusNew},
			{URI: "/repo/b.go", Status: StatusNew},
		},
	}

	if one.Equal(two) {
		t.Error("snapshots with different change counts must not be equal")
	}
}

func TestRepository_RelativePath(t *testing.T) {
	tests := []struct {
		name string
		root string
		uri  string
		want string
	}{
		{"nested file", "/work/repo", "/work/repo/src/main.go", "src/main.go"},
		{"trailing slash root", "/work/repo/", "/work/repo/src/main.go", "src/main.go"},
		{"repository root itself", "/work/repo", "/work/repo", ""},
		{"outside the repository", "/work/repo", "/elsewhere/main.go", "/elsewhere/main.go"},
		{"sibling with common prefix", "/work/repo", "/work/repository/main.go", "/work/repository/main.go"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := Repository{RootURI: tt.root}
			if got := repo.RelativePath(tt.uri); got != tt.want {
				t.Errorf("RelativePath(%q) = %q, want %q", tt.uri, got, tt.want)
			}
		})
	}
}

func TestRepository_Contains(t *testing.T) {
	repo := Repository{RootURI: "/work/repo"}

	if !repo.Contains("/work/repo/src/main.go") {
		t.Error("nested resource must be contained")
	}
	if !repo.Contains("/work/repo") {
		t.Error("root must be contained")
	}
	if repo.Contains("/work/repository/main.go") {
		t.Error("sibling with common prefix must not be contained")
	}
}
