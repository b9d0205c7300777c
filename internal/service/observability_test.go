package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogUseCaseObserver(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "record-answer",
		Duration: 12 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"seq": 3},
	})
	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name: "complete-session",
		Err:  errors.New("boom"),
	})

	out := buf.String()
	assert.Contains(t, out, "use_case=record-answer")
	assert.Contains(t, out, "duration_ms=12")
	assert.Contains(t, out, "seq=3")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "error=boom")
}

func TestNewLogUseCaseObserver_NilWriter(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}

type countingObserver struct{ names []string }

func (c *countingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	c.names = append(c.names, e.Name)
}

func TestUseCaseObserverOrNoop(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop(nil))
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop([]UseCaseObserver{nil}))

	a, b := &countingObserver{}, &countingObserver{}
	assert.Same(t, a, useCaseObserverOrNoop([]UseCaseObserver{nil, a}))

	both := useCaseObserverOrNoop([]UseCaseObserver{a, nil, b})
	both.ObserveUseCase(context.Background(), UseCaseEvent{Name: "start-session"})
	assert.Equal(t, []string{"start-session"}, a.names)
	assert.Equal(t, []string{"start-session"}, b.names)
}

func TestLogUseCaseObserver_SortsFields(t *testing.T) {
	var buf bytes.Buffer
	NewLogUseCaseObserver(&buf).ObserveUseCase(context.Background(), UseCaseEvent{
		Name:    "record-answer",
		Success: true,
		Fields:  map[string]any{"session_id": "abc", "question_id": "problem", "seq": 2},
	})

	out := buf.String()
	q := strings.Index(out, "question_id=problem")
	s := strings.Index(out, "seq=2")
	id := strings.Index(out, "session_id=abc")
	assert.True(t, q >= 0 && q < s && s < id, out)
}
