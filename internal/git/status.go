package git

// FileStatus classifies a file's modification kind within a snapshot. The
// declaration order is the canonical sort order for change lists.
type FileStatus int

const (
	StatusNew FileStatus = iota
	StatusCopied
	StatusModified
	StatusRenamed
	StatusDeleted
	StatusConflicted
)

// Text renders the status as a human word. The staged flag only matters for
// StatusNew: a staged addition reads "Added", an untracked file reads "New".
func (s FileStatus) Text(staged bool) string {
	switch s {
	case StatusNew:
		if staged {
			return "Added"
		}
		return "New"
	case StatusCopied:
		return "Copied"
	case StatusModified:
		return "Modified"
	case StatusRenamed:
		return "Renamed"
	case StatusDeleted:
		return "Deleted"
	case StatusConflicted:
		return "Conflicted"
	}
	return "Unknown"
}

// Abbreviation is the single-letter form of the status, always the first
// character of Text.
func (s FileStatus) Abbreviation(staged bool) string {
	return s.Text(staged)[:1]
}

// Compare total-orders statuses by declaration order.
func (s FileStatus) Compare(other FileStatus) int {
	return int(s) - int(other)
}

func (s FileStatus) String() string {
	return s.Text(false)
}
