package llm

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
	"time"
)

// GenerateRequest holds the parameters for one generation call.
type GenerateRequest struct {
	Task         TaskType
	SystemPrompt string
	UserPrompt   string
	Temperature  *float64 // nil uses task default
	MaxTokens    *int     // nil uses task default
}

// GenerateResponse holds the result of a generation call.
type GenerateResponse struct {
	Text      string
	Model     string
	LatencyMs int64
	Attempts  int
}

// LLMClient provides access to a language model for text generation.
type LLMClient interface {
	// Generate sends a prompt and returns the raw text response.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// Available reports whether the model server is reachable.
	Available(ctx context.Context) bool
}

type ollamaClient struct {
	cfg      LLMConfig
	http     *http.Client
	observer Observer
}

// NewOllamaClient creates an LLMClient backed by a local Ollama server.
func NewOllamaClient(cfg LLMConfig, observer Observer) LLMClient {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &ollamaClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: 5 * time.Second}).DialContext,
			},
		},
		observer: observer,
	}
}

type ollamaRequest struct {
	Model   string        `json:"model"`
	System  string        `json:"system,omitempty"`
	Prompt  string        `json:"prompt"`
	Stream  bool          `json:"stream"`
	Format  string        `json:"format,omitempty"`
	Options ollamaOptions `json:"options"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

type ollamaResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

func (c *ollamaClient) body(req GenerateRequest) ([]byte, error) {
	tc := c.cfg.Tasks[req.Task]
	opts := ollamaOptions{Temperature: tc.Temperature, NumPredict: tc.MaxTokens}
	if req.Temperature != nil {
		opts.Temperature = *req.Temperature
	}
	if req.MaxTokens != nil {
		opts.NumPredict = *req.MaxTokens
	}
	payload := ollamaRequest{
		Model:   c.cfg.Model,
		System:  req.SystemPrompt,
		Prompt:  req.UserPrompt,
		Options: opts,
	}
	if tc.JSON {
		payload.Format = "json"
	}
	return json.Marshal(payload)
}

func (c *ollamaClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	body, err := c.body(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	timeout := time.Duration(c.cfg.TaskTimeout(req.Task)) * time.Millisecond
	maxAttempts := c.cfg.MaxRetries + 1
	start := time.Now()

	var (
		lastErr  error
		attempts int
	)
	for attempts < maxAttempts {
		attempts++
		text, model, err := c.attempt(ctx, body, timeout)
		if err == nil {
			latency := time.Since(start).Milliseconds()
			c.observer.OnCallComplete(LLMCallEvent{
				Task: req.Task, Model: model, LatencyMs: latency,
				Attempts: attempts, Success: true,
			})
			return &GenerateResponse{Text: text, Model: model, LatencyMs: latency, Attempts: attempts}, nil
		}
		lastErr = err
		if ctx.Err() != nil || errors.Is(err, ErrOllamaUnavailable) {
			break
		}
	}

	c.observer.OnCallComplete(LLMCallEvent{
		Task: req.Task, Model: c.cfg.Model, LatencyMs: time.Since(start).Milliseconds(),
		Attempts: attempts, ErrorCode: errorCode(lastErr),
	})
	if errors.Is(lastErr, ErrTimeout) || errors.Is(lastErr, ErrOllamaUnavailable) {
		return nil, lastErr
	}
	return nil, fmt.Errorf("%w after %d attempt(s): %w", ErrRetryExhausted, attempts, lastErr)
}

// attempt performs one HTTP round trip bounded by its own timeout so a slow
// first try does not starve the retry.
func (c *ollamaClient) attempt(ctx context.Context, body []byte, timeout time.Duration) (string, string, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(attemptCtx, http.MethodPost, c.url("/api/generate"), bytes.NewReader(body))
	if err != nil {
		return "", "", fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		if attemptCtx.Err() == context.DeadlineExceeded {
			return "", "", fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		if isConnectionError(err) {
			return "", "", fmt.Errorf("%w: %v", ErrOllamaUnavailable, err)
		}
		return "", "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		if attemptCtx.Err() == context.DeadlineExceeded {
			return "", "", fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return "", "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("ollama returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var out ollamaResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	return out.Response, out.Model, nil
}

func (c *ollamaClient) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url("/api/tags"), nil)
	if err != nil {
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func (c *ollamaClient) url(path string) string {
	return strings.TrimRight(c.cfg.Endpoint, "/") + path
}

func isConnectionError(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return opErr.Op == "dial"
	}
	return false
}
