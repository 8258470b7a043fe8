package tui

import (
	"fmt"
	"strings"

	"github.com/openkraft/devtool/internal/domain"
)

// RenderCheckProgress renders the line printed before checking starts.
func RenderCheckProgress(count int) string {
	return fmt.Sprintf("Checking %d files\n", count)
}

// RenderCheckResult renders the issue report. Report lines are never styled
// so the output stays stable for scripts:
//
//	<path>:
//	  line <N>: [<rule>] <message>
func RenderCheckResult(result *domain.CheckResult) string {
	var b strings.Builder
	for _, f := range result.Files {
		fmt.Fprintf(&b, "\n%s:\n", f.Path)
		for _, issue := range f.Issues {
			fmt.Fprintf(&b, "  line %d: [%s] %s\n", issue.Line, issue.Rule, issue.Message)
		}
	}
	return b.String()
}

// RenderCheckSummary renders the closing pass/fail line.
func RenderCheckSummary(result *domain.CheckResult) string {
	if result.Passed() {
		return "\n" + passStyle.Render("✓") + " " + titleStyle.Render("No issues found") + "\n"
	}
	msg := fmt.Sprintf("%d %s in %d %s",
		result.IssueCount(), plural(result.IssueCount(), "issue", "issues"),
		len(result.Files), plural(len(result.Files), "file", "files"),
	)
	return "\n" + failStyle.Render("✗") + " " + titleStyle.Render(msg) + "\n"
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
