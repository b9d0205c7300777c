package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of LLM task being performed.
type TaskType string

const (
	// TaskChallenge critiques an answer against its question's requirements.
	TaskChallenge TaskType = "challenge"
	// TaskImprove rewrites an answer using the critique.
	TaskImprove TaskType = "improve"
)

// TaskConfig holds per-task LLM parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
	JSON        bool
}

// LLMConfig holds all configuration for the coaching LLM.
type LLMConfig struct {
	Enabled    bool
	LogCalls   bool
	Endpoint   string
	Model      string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns the configuration used when no environment
// variables are set. Coaching through the LLM is off by default.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Endpoint:   "http://localhost:11434",
		Model:      "llama3.2",
		TimeoutMs:  15000,
		MaxRetries: 1,
		Tasks: map[TaskType]TaskConfig{
			TaskChallenge: {Temperature: 0.2, MaxTokens: 1024, TimeoutMs: 20000, JSON: true},
			TaskImprove:   {Temperature: 0.4, MaxTokens: 512, TimeoutMs: 15000},
		},
	}
}

// LoadConfig overlays MVPCOACH_LLM_* environment variables on the defaults.
// Malformed values are ignored.
func LoadConfig() LLMConfig {
	cfg := DefaultConfig()

	envBool("MVPCOACH_LLM_ENABLED", &cfg.Enabled)
	envBool("MVPCOACH_LLM_LOG_CALLS", &cfg.LogCalls)
	if v := os.Getenv("MVPCOACH_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("MVPCOACH_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if n, ok := envInt("MVPCOACH_LLM_TIMEOUT_MS"); ok && n > 0 {
		cfg.TimeoutMs = n
	}
	if n, ok := envInt("MVPCOACH_LLM_MAX_RETRIES"); ok && n >= 0 {
		cfg.MaxRetries = n
	}

	cfg.overrideTaskTimeout(TaskChallenge, "MVPCOACH_LLM_CHALLENGE_TIMEOUT_MS")
	cfg.overrideTaskTimeout(TaskImprove, "MVPCOACH_LLM_IMPROVE_TIMEOUT_MS")
	return cfg
}

// TaskTimeout returns the task-specific timeout when set, otherwise the
// global one.
func (c LLMConfig) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func (c *LLMConfig) overrideTaskTimeout(task TaskType, name string) {
	n, ok := envInt(name)
	if !ok || n <= 0 {
		return
	}
	tc := c.Tasks[task]
	tc.TimeoutMs = n
	c.Tasks[task] = tc
}

func envBool(name string, dst *bool) {
	if v := os.Getenv(name); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func envInt(name string) (int, bool) {
	v := os.Getenv(name)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}
