package domain

// TestResult represents the verdict for a single test case, in the same order
// as the challenge's test case set.
type TestResult struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expectedOutput"`
	ActualOutput   string `json:"actualOutput"`
	Passed         bool   `json:"passed"`
	Description    string `json:"description"`
	Error          string `json:"error,omitempty"`
}
