// package sandbox contains the HTTP client for the remote code-execution backend
package sandbox

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	"gitlab.com/codetrial.net/internal/config"
	"gitlab.com/codetrial.net/internal/core/ports/primary"
	"gitlab.com/codetrial.net/internal/core/ports/secondary"
	"gitlab.com/codetrial.net/internal/domain"
)

// Classified failure reasons. None of these ever reach an API caller: the
// orchestrator logs them and degrades to the fallback evaluator.
var (
	ErrUnreachable = errors.New("sandbox unreachable")
	ErrTimeout     = errors.New("sandbox request timed out")
	ErrBadStatus   = errors.New("sandbox returned unexpected status")
	ErrBadResponse = errors.New("sandbox returned malformed response")
)

type executeRequest struct {
	Code      string         `json:"code"`
	Language  string         `json:"language"`
	TestCases []wireTestCase `json:"testCases"`
}

// wireTestCase always serializes all three fields, empty strings included.
type wireTestCase struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expectedOutput"`
	Description    string `json:"description"`
}

type executeResponse struct {
	Output          string              `json:"output"`
	Passed          int                 `json:"passed"`
	Failed          int                 `json:"failed"`
	ExecutionTimeMs int64               `json:"execution_time_ms"`
	Status          string              `json:"status"`
	TestResults     []domain.TestResult `json:"testResults"`
	Error           *string             `json:"error"`
}

var _ secondary.CodeEvaluator = (*Client)(nil)

// Client implements the CodeEvaluator interface against a remote sandboxed
// execution service.
type Client struct {
	cfg        *config.SandboxConfig
	httpClient *http.Client
	logger     primary.Logger
}

// NewClient creates a new sandbox client
func NewClient(cfg *config.SandboxConfig, logger primary.Logger) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// Evaluate sends the submission to the remote backend and normalizes its
// response. The call is bounded by the configured timeout and abandons the
// connection cleanly on cancellation.
func (c *Client) Evaluate(ctx context.Context, code, language string, testCases []domain.TestCase) (*domain.ExecutionResult, error) {
	wire := make([]wireTestCase, len(testCases))
	for i, tc := range testCases {
		wire[i] = wireTestCase{
			Input:          tc.Input,
			ExpectedOutput: tc.ExpectedOutput,
			Description:    tc.Description,
		}
	}

	payload, err := json.Marshal(executeRequest{
		Code:      code,
		Language:  strings.ToLower(language),
		TestCases: wire,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal execution request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	endpoint := c.cfg.BaseURL + "/execute"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build execution request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("Calling sandbox API", "endpoint", endpoint, "language", language)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode)
	}

	var out executeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}

	return mapResponse(&out), nil
}

// mapResponse converts the wire response into the uniform execution result,
// defaulting absent fields to zero values and empty collections.
func mapResponse(out *executeResponse) *domain.ExecutionResult {
	testResults := out.TestResults
	if testResults == nil {
		testResults = []domain.TestResult{}
	}

	status := domain.Status(out.Status)
	if status == "" {
		status = domain.StatusSuccess
	}

	return &domain.ExecutionResult{
		Success:         true,
		Output:          out.Output,
		Passed:          out.Passed,
		Failed:          out.Failed,
		ExecutionTimeMs: out.ExecutionTimeMs,
		Status:          status,
		TestResults:     testResults,
		Error:           out.Error,
	}
}

func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %v", ErrUnreachable, err)
}
