package git

import "testing"

var allStatuses = []FileStatus{
	StatusNew, StatusCopied, StatusModified, StatusRenamed, StatusDeleted, StatusConflicted,
}

func TestFileStatus_Text(t *testing.T) {
	tests := []struct {
		status FileStatus
		staged bool
		want   string
	}{
		{StatusNew, false, "New"},
		{StatusNew, true, "Added"},
		{StatusCopied, false, "Copied"},
		{StatusModified, false, "Modified"},
		{StatusRenamed, false, "Renamed"},
		{StatusDeleted, false, "Deleted"},
		{StatusConflicted, false, "Conflicted"},
	}

	for _, tt := range tests {
		if got := tt.status.Text(tt.staged); got != tt.want {
			t.Errorf("Text(%v, staged=%v) = %q, want %q", tt.status, tt.staged, got, tt.want)
		}
	}
}

func TestFileStatus_StagedOnlyMattersForNew(t *testing.T) {
	for _, status := range allStatuses {
		if status == StatusNew {
			continue
		}
		if status.Text(true) != status.Text(false) {
			t.Errorf("staged flag must not change the text of %v", status)
		}
	}
}

func TestFileStatus_AbbreviationIsFirstCharacter(t *testing.T) {
	for _, status := range allStatuses {
		for _, staged := range []bool{false, true} {
			text := status.Text(staged)
			if got := status.Abbreviation(staged); got != text[:1] {
				t.Errorf("Abbreviation(%v, staged=%v) = %q, want first character of %q", status, staged, got, text)
			}
		}
	}
}

func TestFileStatus_CompareOrdersByDeclaration(t *testing.T) {
	for i, left := range allStatuses {
		if left.Compare(left) != 0 {
			t.Errorf("%v must compare equal to itself", left)
		}
		for _, right := range allStatuses[i+1:] {
			if left.Compare(right) >= 0 {
				t.Errorf("%v must order before %v", left, right)
			}
			if right.Compare(left) <= 0 {
				t.Errorf("%v must order after %v", right, left)
			}
		}
	}
}
