package classify

import "strings"

// Verdict is the outcome of evaluating a rule list against a piece of text.
type Verdict int

const (
	// VerdictNone means no rule matched.
	VerdictNone Verdict = iota
	// VerdictAccept means the first matching rule accepts the text.
	VerdictAccept
	// VerdictReject means the first matching rule rejects the text.
	VerdictReject
)

// Rule pairs a lowercase pattern with the verdict returned when the pattern
// occurs as a substring of the text under test.
type Rule struct {
	Pattern string
	Verdict Verdict
}

// Evaluate scans rules in order and returns the verdict of the first rule
// whose pattern occurs in text. Callers must lowercase text beforehand;
// patterns are matched verbatim. Precedence between rule families is
// expressed purely by ordering: placing all reject rules ahead of the
// accept rules makes exclusion win whenever both would match.
func Evaluate(text string, rules []Rule) Verdict {
	for _, r := range rules {
		if r.Pattern == "" {
			continue
		}
		if strings.Contains(text, r.Pattern) {
			return r.Verdict
		}
	}
	return VerdictNone
}

// reject builds a rule per pattern, each rejecting on match.
func reject(patterns []string) []Rule {
	return rulesWithVerdict(patterns, VerdictReject)
}

// accept builds a rule per pattern, each accepting on match.
func accept(patterns []string) []Rule {
	return rulesWithVerdict(patterns, VerdictAccept)
}

func rulesWithVerdict(patterns []string, v Verdict) []Rule {
	rules := make([]Rule, 0, len(patterns))
	for _, p := range patterns {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		rules = append(rules, Rule{Pattern: p, Verdict: v})
	}
	return rules
}
