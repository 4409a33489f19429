package runner

import (
	"context"

	"go.uber.org/zap"
)

// Handler receives check events during execution.
type Handler interface {
	// Event is called for each check event as it occurs. Returning an error
	// stops the run.
	Event(ctx context.Context, event Event, result *Result) error

	// Err is called for errors outside any single check.
	Err(text string) error
}

// MultiHandler fans out events to several handlers in order.
type MultiHandler []Handler

// NewMultiHandler creates a handler that dispatches to each of handlers.
func NewMultiHandler(handlers ...Handler) MultiHandler {
	return MultiHandler(handlers)
}

// Event dispatches to every handler, stopping on the first error.
func (m MultiHandler) Event(ctx context.Context, event Event, result *Result) error {
	for _, h := range m {
		if err := h.Event(ctx, event, result); err != nil {
			return err
		}
	}

	return nil
}

// Err dispatches to every handler.
func (m MultiHandler) Err(text string) error {
	for _, h := range m {
		if err := h.Err(text); err != nil {
			return err
		}
	}

	return nil
}

// ResultHandler records terminal events and diagnostics output into the
// Result. The runner always installs it first.
type ResultHandler struct{}

// NewResultHandler creates a handler that accumulates results.
func NewResultHandler() *ResultHandler {
	return &ResultHandler{}
}

// Event updates the result accumulator.
func (*ResultHandler) Event(_ context.Context, event Event, result *Result) error {
	switch {
	case event.Action == ActionOutput:
		result.AddOutput(event)
	case event.Action.IsTerminal():
		result.Add(event)
	}

	return nil
}

// Err is a no-op.
func (*ResultHandler) Err(string) error {
	return nil
}

// LogHandler reports failed and errored checks to a zap logger at debug
// level, and warnings carried by passing checks.
type LogHandler struct {
	log *zap.Logger
}

// NewLogHandler creates a handler logging to log.
func NewLogHandler(log *zap.Logger) *LogHandler {
	return &LogHandler{log: log}
}

// Event logs terminal events that carry findings.
func (h *LogHandler) Event(_ context.Context, event Event, _ *Result) error {
	if !event.Action.IsTerminal() || event.Action == ActionSkip {
		return nil
	}

	if event.Action == ActionPass && len(event.Diagnostics) == 0 {
		return nil
	}

	fields := []zap.Field{
		zap.String("relation", event.Relation()),
		zap.String("rule", event.RuleName()),
		zap.String("action", string(event.Action)),
		zap.Int("diagnostics", len(event.Diagnostics)),
	}

	if event.Error != nil {
		fields = append(fields, zap.Error(event.Error))
	}

	h.log.Debug("check finished", fields...)

	return nil
}

// Err logs text as a warning.
func (h *LogHandler) Err(text string) error {
	h.log.Warn(text)

	return nil
}

// StopOnFailHandler stops the run once the result holds maxFails failed or
// errored checks. It must run after ResultHandler.
type StopOnFailHandler struct {
	maxFails int
}

// NewStopOnFailHandler creates a handler that stops after maxFails failures.
// Zero or less never stops.
func NewStopOnFailHandler(maxFails int) *StopOnFailHandler {
	return &StopOnFailHandler{maxFails: maxFails}
}

// Event returns ErrMaxFailures when the limit is reached.
func (h *StopOnFailHandler) Event(_ context.Context, event Event, result *Result) error {
	if h.maxFails <= 0 {
		return nil
	}

	if event.Action != ActionFail && event.Action != ActionError {
		return nil
	}

	if result.Failed+result.Errors >= h.maxFails {
		return ErrMaxFailures
	}

	return nil
}

// Err is a no-op.
func (*StopOnFailHandler) Err(string) error {
	return nil
}
