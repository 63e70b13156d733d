package git

// LogRequest represents a request for commit history.
type LogRequest struct {
	Path     string // Repository path
	Ref      string // Branch or ref to walk from (optional, defaults to HEAD)
	MaxCount int    // Maximum commits to return (optional, defaults from config)
}

// BlameRequest represents a request for per-line attribution of a file.
type BlameRequest struct {
	Path string // Repository path
	File string // File path relative to the repository root
	Ref  string // Ref to blame at (optional, defaults to HEAD)
}
