package evaluation

import (
	"math"

	"gitlab.com/codetrial.net/internal/domain"
)

// Score converts an execution result into a 0..100 percentage, rounded
// half-up. Zero test cases score zero. The score is computed once at submit
// time and persisted with the attempt; it is never recomputed retroactively.
func Score(result *domain.ExecutionResult, totalTestCases int) int {
	if totalTestCases <= 0 {
		return 0
	}
	return int(math.Round(float64(result.Passed) / float64(totalTestCases) * 100))
}
