package check

import (
	"strings"

	"github.com/openkraft/devtool/internal/domain"
)

// CheckContent applies every rule to every line of content. Issues are
// ordered by line, then by the order of rules.
func CheckContent(content string, rules []Rule) []domain.Issue {
	var issues []domain.Issue
	for i, line := range SplitLines(content) {
		for _, r := range rules {
			if issue, ok := ApplyRule(r, line, i+1); ok {
				issues = append(issues, issue)
			}
		}
	}
	return issues
}

// SplitLines splits on "\n", strips a trailing "\r" from each line and does
// not emit an empty final line for content ending in a newline.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// ShouldIgnore reports whether path contains any of patterns.
func ShouldIgnore(path string, patterns []string) bool {
	for _, p := range patterns {
		if p != "" && strings.Contains(path, p) {
			return true
		}
	}
	return false
}

// FilterIgnored drops paths matching any ignore pattern, preserving order.
func FilterIgnored(paths []string, patterns []string) []string {
	kept := make([]string, 0, len(paths))
	for _, p := range paths {
		if !ShouldIgnore(p, patterns) {
			kept = append(kept, p)
		}
	}
	return kept
}
