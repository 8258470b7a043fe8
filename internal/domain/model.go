package domain

// Issue is one rule violation found on a single line of a file.
type Issue struct {
	Rule    string `json:"rule"`
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// FileIssues groups the issues found in one file, in line then rule order.
type FileIssues struct {
	Path   string  `json:"path"`
	Issues []Issue `json:"issues"`
}

// CheckResult is the aggregate of a check run. Only files with at least one
// issue are present, in the order the files were supplied.
type CheckResult struct {
	Checked int          `json:"checked"`
	Files   []FileIssues `json:"files"`
}

// Add records issues for path. Empty issue lists are dropped.
func (r *CheckResult) Add(path string, issues []Issue) {
	if len(issues) == 0 {
		return
	}
	r.Files = append(r.Files, FileIssues{Path: path, Issues: issues})
}

// Passed reports whether no file produced an issue.
func (r *CheckResult) Passed() bool { return len(r.Files) == 0 }

// IssueCount returns the total number of issues across all files.
func (r *CheckResult) IssueCount() int {
	n := 0
	for _, f := range r.Files {
		n += len(f.Issues)
	}
	return n
}

// Paths returns the files with issues in report order.
func (r *CheckResult) Paths() []string {
	paths := make([]string, 0, len(r.Files))
	for _, f := range r.Files {
		paths = append(paths, f.Path)
	}
	return paths
}

// IssuesFor returns the issues recorded for path, or nil.
func (r *CheckResult) IssuesFor(path string) []Issue {
	for _, f := range r.Files {
		if f.Path == path {
			return f.Issues
		}
	}
	return nil
}
