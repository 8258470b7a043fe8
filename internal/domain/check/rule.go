// Package check implements the line-based rule engine behind `devtool check`.
package check

import (
	"strings"

	"github.com/openkraft/devtool/internal/domain"
)

// Rule is one of the known line rules. Unrecognised identifiers from
// configuration parse to RuleSkip.
type Rule int

const (
	RuleSkip Rule = iota
	RuleNoTodo
	RuleNoFixme
)

type ruleDef struct {
	id      string
	needle  string
	message string
}

var ruleDefs = map[Rule]ruleDef{
	RuleNoTodo:  {id: "no-todo", needle: "TODO", message: "Found TODO comment"},
	RuleNoFixme: {id: "no-fixme", needle: "FIXME", message: "Found FIXME comment"},
}

// KnownRules lists every rule that can fire, in canonical order.
var KnownRules = []Rule{RuleNoTodo, RuleNoFixme}

// ParseRule maps a configuration identifier to its Rule.
func ParseRule(id string) Rule {
	for _, r := range KnownRules {
		if ruleDefs[r].id == id {
			return r
		}
	}
	return RuleSkip
}

// ParseRules maps identifiers in order. Unknown identifiers become RuleSkip
// so positions line up with the configuration.
func ParseRules(ids []string) []Rule {
	rules := make([]Rule, len(ids))
	for i, id := range ids {
		rules[i] = ParseRule(id)
	}
	return rules
}

// String returns the configuration identifier, or "skip".
func (r Rule) String() string {
	if def, ok := ruleDefs[r]; ok {
		return def.id
	}
	return "skip"
}

// Matches reports whether the rule fires on line.
func (r Rule) Matches(line string) bool {
	def, ok := ruleDefs[r]
	if !ok {
		return false
	}
	return strings.Contains(line, def.needle)
}

// ApplyRule evaluates r against a single line. lineNumber is 1-based.
func ApplyRule(r Rule, line string, lineNumber int) (domain.Issue, bool) {
	if !r.Matches(line) {
		return domain.Issue{}, false
	}
	return domain.Issue{
		Rule:    r.String(),
		Line:    lineNumber,
		Message: ruleDefs[r].message,
	}, true
}
