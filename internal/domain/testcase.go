package domain

// TestCase represents a single test case owned by a challenge. Candidates never
// receive the expected output; Redacted strips it before serialization.
type TestCase struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expectedOutput,omitempty"`
	Description    string `json:"description"`
}

// Redacted returns a copy safe to serve to non-admin callers.
func (tc TestCase) Redacted() TestCase {
	return TestCase{
		Input:       tc.Input,
		Description: tc.Description,
	}
}

// RedactTestCases strips expected outputs from a whole test case set.
func RedactTestCases(testCases []TestCase) []TestCase {
	redacted := make([]TestCase, len(testCases))
	for i, tc := range testCases {
		redacted[i] = tc.Redacted()
	}
	return redacted
}
