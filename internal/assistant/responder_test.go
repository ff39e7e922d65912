package assistant

import (
	"context"
	"strings"
	"testing"
)

func TestKeywordResponderBranches(t *testing.T) {
	r := NewKeywordResponder()

	cases := []struct {
		name    string
		prompt  string
		marker  string
	}{
		{"overspend", "Am I overspending this month?", "higher than planned"},
		{"over budget", "Are we OVER BUDGET already?", "higher than planned"},
		{"save", "How can I save more?", "personalized saving tips"},
		{"reduce", "How can I reduce spending?", "personalized saving tips"},
		{"category", "Which category costs the most?", "top 3 spending categories"},
		{"spending", "Show my spending breakdown", "top 3 spending categories"},
		{"budget", "How is my budget doing?", "49% used"},
		{"plan", "Help me plan ahead", "49% used"},
		{"fallback", "Hello there!", "happy to help"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := r.Respond(context.Background(), tc.prompt, "")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(got, tc.marker) {
				t.Fatalf("prompt %q: response %q missing marker %q", tc.prompt, got, tc.marker)
			}
		})
	}
}

func TestKeywordResponderPriority(t *testing.T) {
	r := NewKeywordResponder()

	// "reduce spending" matches both the savings and the category branch;
	// savings has priority.
	got, err := r.Respond(context.Background(), "How can I reduce spending?", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "personalized saving tips") {
		t.Fatalf("expected the savings branch to win, got %q", got)
	}

	// "overspend" also contains "spend"; the overspend branch must win over
	// everything below it.
	got, err = r.Respond(context.Background(), "will this overspend my plan", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "higher than planned") {
		t.Fatalf("expected the overspend branch to win, got %q", got)
	}
}
