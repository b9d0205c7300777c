package llm

import (
	"io"
	"log/slog"
)

// LLMCallEvent records metadata about a single LLM invocation.
type LLMCallEvent struct {
	Task      TaskType
	Model     string
	LatencyMs int64
	Attempts  int
	Success   bool
	ErrorCode string
}

// Observer receives events about LLM calls.
type Observer interface {
	OnCallComplete(event LLMCallEvent)
}

// LogObserver writes one structured line per call.
type LogObserver struct {
	logger *slog.Logger
}

func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{logger: slog.New(slog.NewTextHandler(w, nil))}
}

func (o *LogObserver) OnCallComplete(event LLMCallEvent) {
	status := "ok"
	if !event.Success {
		status = "err:" + event.ErrorCode
	}
	o.logger.Info("llm_call",
		"task", string(event.Task),
		"model", event.Model,
		"latency_ms", event.LatencyMs,
		"attempts", event.Attempts,
		"status", status,
	)
}

// NoopObserver discards all events.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(LLMCallEvent) {}
