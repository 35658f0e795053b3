package service

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// Library use case names reported to a UseCaseObserver.
const (
	UseCasePublish    = "publish-prompt"
	UseCaseToggleLike = "toggle-like"
)

// UseCaseEvent describes one finished library use case.
type UseCaseEvent struct {
	UseCase   string
	StartedAt time.Time
	Duration  time.Duration
	Err       error

	PromptID       string
	AssignmentType string
	// Like is the state shown to the user after a toggle, nil for other use cases.
	Like *LikeResult
	// RolledBack is set when a failed like write restored the local flag.
	RolledBack bool
}

func (e UseCaseEvent) Success() bool { return e.Err == nil }

type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver drops every event.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

type logUseCaseObserver struct {
	logger *slog.Logger
}

// NewLogUseCaseObserver logs library events to w in slog's text format.
// A nil writer yields NoopUseCaseObserver.
func NewLogUseCaseObserver(w io.Writer) UseCaseObserver {
	if w == nil {
		return NoopUseCaseObserver{}
	}
	return &logUseCaseObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logUseCaseObserver) ObserveUseCase(ctx context.Context, e UseCaseEvent) {
	attrs := []slog.Attr{
		slog.String("use_case", e.UseCase),
		slog.Bool("success", e.Success()),
		slog.Int64("duration_ms", e.Duration.Milliseconds()),
	}
	if e.PromptID != "" {
		attrs = append(attrs, slog.String("prompt_id", e.PromptID))
	}
	if e.AssignmentType != "" {
		attrs = append(attrs, slog.String("assignment_type", e.AssignmentType))
	}
	if e.Like != nil {
		attrs = append(attrs, slog.Bool("liked", e.Like.Liked), slog.Int("likes", e.Like.Likes))
	}
	if e.RolledBack {
		attrs = append(attrs, slog.Bool("rolled_back", true))
	}

	level := slog.LevelInfo
	if e.Err != nil {
		level = slog.LevelError
		attrs = append(attrs, slog.String("error", e.Err.Error()))
	}
	o.logger.LogAttrs(ctx, level, "prompt library", attrs...)
}

func useCaseObserverOrNoop(observers []UseCaseObserver) UseCaseObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopUseCaseObserver{}
}
