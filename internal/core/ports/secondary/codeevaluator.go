package secondary

import (
	"context"

	"gitlab.com/codetrial.net/internal/domain"
)

// CodeEvaluator grades source code against a test case set. Implementations
// are the remote sandbox client and the local heuristic fallback; the
// orchestrator selects between them, so a real interpreter can replace the
// fallback without touching callers.
type CodeEvaluator interface {
	// Evaluate executes code against test cases and returns per-case verdicts.
	Evaluate(ctx context.Context, code, language string, testCases []domain.TestCase) (*domain.ExecutionResult, error)
}
