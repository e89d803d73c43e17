package agent

import "fmt"

// truncateResult caps a tool result's size before it enters prompt context.
// Oversized output keeps its head and tail with an elision marker in between,
// so both the beginning and the end of the output remain visible to the
// backend. A maxChars of 0 disables truncation.
func truncateResult(output string, maxChars int) string {
	if maxChars <= 0 || len(output) <= maxChars {
		return output
	}
	half := maxChars / 2
	removed := len(output) - maxChars
	return output[:half] +
		fmt.Sprintf("\n\n[Tool output truncated: %d characters removed from the middle. Re-run the tool with narrower parameters to see specific parts.]\n\n", removed) +
		output[len(output)-half:]
}
