package config

import (
	"os"
	"strconv"
	"time"
)

// SandboxConfig configures the remote code-execution backend. It is injected
// into the execution orchestrator explicitly so tests can point it at a fake
// endpoint or disable the remote path altogether.
type SandboxConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	Enabled bool
}

func NewSandboxConfig() *SandboxConfig {
	baseURL := os.Getenv("SANDBOX_API_URL")
	if baseURL == "" {
		baseURL = "https://app.daytona.io/api"
	}
	timeoutSec, err := strconv.Atoi(os.Getenv("SANDBOX_TIMEOUT_SEC"))
	if err != nil || timeoutSec <= 0 {
		timeoutSec = 30
	}
	return &SandboxConfig{
		BaseURL: baseURL,
		APIKey:  os.Getenv("SANDBOX_API_KEY"),
		Timeout: time.Duration(timeoutSec) * time.Second,
		Enabled: os.Getenv("SANDBOX_DISABLED") != "true",
	}
}
