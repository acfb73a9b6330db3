package evaluation_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"gitlab.com/codetrial.net/internal/core/services/evaluation"
	"gitlab.com/codetrial.net/internal/domain"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}
func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Warn(string, ...interface{})  {}

type stubEvaluator struct {
	result *domain.ExecutionResult
	err    error
	calls  int
}

func (s *stubEvaluator) Evaluate(_ context.Context, _, _ string, _ []domain.TestCase) (*domain.ExecutionResult, error) {
	s.calls++
	return s.result, s.err
}

func TestExecutePrefersRemote(t *testing.T) {
	remote := &stubEvaluator{result: &domain.ExecutionResult{Success: true, Passed: 2, Status: domain.StatusSuccess}}
	fallback := &stubEvaluator{result: &domain.ExecutionResult{Success: true, Passed: 1, Status: domain.StatusPartial}}
	svc := evaluation.NewExecutionService(remote, fallback, noopLogger{})

	result := svc.Execute(context.Background(), "code", "python", nil)

	assert.Equal(t, 2, result.Passed)
	assert.Equal(t, 1, remote.calls)
	assert.Zero(t, fallback.calls)
}

func TestExecuteFallsBackOnRemoteFailure(t *testing.T) {
	remote := &stubEvaluator{err: errors.New("connection refused")}
	fallback := &stubEvaluator{result: &domain.ExecutionResult{Success: true, Passed: 1, Status: domain.StatusPartial}}
	svc := evaluation.NewExecutionService(remote, fallback, noopLogger{})

	result := svc.Execute(context.Background(), "code", "python", nil)

	// A remote outage never surfaces to the caller.
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Passed)
	assert.Equal(t, 1, remote.calls)
	assert.Equal(t, 1, fallback.calls)
}

func TestExecuteWithoutRemote(t *testing.T) {
	fallback := &stubEvaluator{result: &domain.ExecutionResult{Success: true, Status: domain.StatusSuccess}}
	svc := evaluation.NewExecutionService(nil, fallback, noopLogger{})

	result := svc.Execute(context.Background(), "code", "go", nil)

	assert.True(t, result.Success)
	assert.Equal(t, 1, fallback.calls)
}

func TestExecuteEndToEndWithFallbackEvaluator(t *testing.T) {
	remote := &stubEvaluator{err: errors.New("dns failure")}
	svc := evaluation.NewExecutionService(remote, evaluation.NewFallbackEvaluator(), noopLogger{})

	result := svc.Execute(context.Background(), additionCode, "python", []domain.TestCase{
		{Input: "2, 2", ExpectedOutput: "4"},
	})

	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Passed)
	assert.Equal(t, domain.StatusSuccess, result.Status)
}
