package agent

import "strings"

// Classifier decides from free-form evaluation text whether the task is
// finished. Implementations must be pure functions of the text so the loop's
// termination behavior stays deterministic and swappable: a backend that
// returns a structured completion signal can be plugged in here without
// touching the loop's control flow.
type Classifier interface {
	Classify(evaluation string) bool
}

// KeywordClassifier is the substring-based completion heuristic. Matching is
// case-insensitive. It returns true when any of these hold:
//
//  1. the literal marker "**done**" appears
//  2. the literal phrase "task evaluation: complete" appears
//  3. both "complete" and "task" appear anywhere in the text
//
// Rule 3 is deliberately permissive and over-triggers on text like "the task
// is not yet complete". That behavior is part of the contract consumers rely
// on; do not tighten it here without changing the contract.
type KeywordClassifier struct{}

// Classify applies the heuristic to the evaluation text.
func (KeywordClassifier) Classify(evaluation string) bool {
	text := strings.ToLower(evaluation)

	if strings.Contains(text, "**done**") {
		return true
	}
	if strings.Contains(text, "task evaluation: complete") {
		return true
	}
	return strings.Contains(text, "complete") && strings.Contains(text, "task")
}
