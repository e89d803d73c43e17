package agent

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
)

// callSignature computes a deterministic signature for an executed tool call
// (name + hash of its arguments).
func callSignature(name string, args map[string]interface{}) string {
	encoded, _ := json.Marshal(args)
	h := sha256.Sum256(encoded)
	return fmt.Sprintf("%s:%x", name, h[:8])
}

// detectRepeatedCalls reports whether the last windowSize signatures form a
// repeating pattern of length 1, 2, or 3. Fewer than windowSize calls never
// count as a repeat.
func detectRepeatedCalls(sigs []string, windowSize int) bool {
	if windowSize <= 0 || len(sigs) < windowSize {
		return false
	}
	window := sigs[len(sigs)-windowSize:]

	for patternLen := 1; patternLen <= 3; patternLen++ {
		if windowSize%patternLen != 0 {
			continue
		}
		pattern := window[:patternLen]
		allMatch := true
		for i := patternLen; i < windowSize && allMatch; i += patternLen {
			for j := 0; j < patternLen; j++ {
				if window[i+j] != pattern[j] {
					allMatch = false
					break
				}
			}
		}
		if allMatch {
			return true
		}
	}
	return false
}
