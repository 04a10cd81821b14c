package classify

import "testing"

func TestEvaluate_FirstMatchWins(t *testing.T) {
	rules := []Rule{
		{Pattern: "blocked", Verdict: VerdictReject},
		{Pattern: "allowed", Verdict: VerdictAccept},
	}

	tests := []struct {
		name string
		text string
		want Verdict
	}{
		{"no match", "nothing relevant here", VerdictNone},
		{"accept", "this text is allowed", VerdictAccept},
		{"reject", "this text is blocked", VerdictReject},
		{"reject beats accept when both present", "allowed but also blocked", VerdictReject},
		{"empty text", "", VerdictNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(tt.text, rules); got != tt.want {
				t.Errorf("Evaluate(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestEvaluate_OrderDeterminesPrecedence(t *testing.T) {
	// The same patterns flipped: accept listed first now wins.
	rules := []Rule{
		{Pattern: "allowed", Verdict: VerdictAccept},
		{Pattern: "blocked", Verdict: VerdictReject},
	}
	if got := Evaluate("allowed but also blocked", rules); got != VerdictAccept {
		t.Errorf("Evaluate() = %v, want VerdictAccept", got)
	}
}

func TestRuleBuilders_SkipBlankPatterns(t *testing.T) {
	rules := accept([]string{" keep ", "", "  "})
	if len(rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(rules))
	}
	if rules[0].Pattern != "keep" {
		t.Errorf("pattern = %q, want %q", rules[0].Pattern, "keep")
	}
	if rules[0].Verdict != VerdictAccept {
		t.Errorf("verdict = %v, want VerdictAccept", rules[0].Verdict)
	}
}
