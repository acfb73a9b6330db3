package domain

// Status represents the status of an execution
type Status string

const (
	StatusSuccess Status = "success"
	StatusPartial Status = "partial"
	StatusError   Status = "error"
)

// ExecutionResult represents the uniform outcome of evaluating code against a
// test case set, whichever evaluator produced it.
// Invariant: Passed+Failed == len(TestResults) == number of input test cases
// whenever Success is true.
type ExecutionResult struct {
	Success         bool         `json:"success"`
	Output          string       `json:"output"`
	Passed          int          `json:"passed"`
	Failed          int          `json:"failed"`
	ExecutionTimeMs int64        `json:"execution_time_ms"`
	Status          Status       `json:"status"`
	TestResults     []TestResult `json:"testResults"`
	Error           *string      `json:"error"`
}
