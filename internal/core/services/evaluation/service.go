package evaluation

import (
	"context"

	"gitlab.com/codetrial.net/internal/domain"
)

// IExecutionService defines the interface for grading submitted code
type IExecutionService interface {
	// Execute grades code against a test case set. It always produces a
	// result: remote sandbox failures degrade to the fallback evaluator and
	// are logged, never propagated to the caller.
	Execute(ctx context.Context, code, language string, testCases []domain.TestCase) *domain.ExecutionResult
}
