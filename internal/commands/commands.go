// Package commands implements the user-triggered actions of the tutorial panel.
//
// Every handler recovers its failures locally and reports them to the user
// through a ports.Notifier; callers only get a success flag or an outcome.
package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aretw0/quest/internal/logging"
	"github.com/aretw0/quest/pkg/domain"
	"github.com/aretw0/quest/pkg/ports"
)

// User-facing messages.
const (
	TitleError         = "Error"
	TitleNotYet        = "Not yet!"
	TitleHint          = "Hint!"
	TitleDone          = "Well done!"
	TitleNoTask        = "Quest"
	TitleDiagnostics   = "Diagnostics"
	MsgTryAgain        = "Try one more time!"
	MsgNoStep          = "Couldn't retrieve current step!"
	MsgNoTask          = "No task loaded"
	MsgNoInstructions  = "No instructions"
	MsgCopied          = "Diagnostics copied to clipboard."
	msgTaskNotLoaded   = "Task '%s' was not loaded successfully, does it exist?"
	msgTaskComplete    = "You finished '%s'!"
	msgCheckFailed     = "Checking the current step failed: %v"
	msgDiagnosticsFail = "Could not copy diagnostics: %v"
)

// Engine is the part of the quest engine the commands drive.
type Engine interface {
	LoadTask(ctx context.Context, name string) error
	CheckCurrentStep(ctx context.Context) (domain.Outcome, error)
	Settings(ctx context.Context) (*domain.Settings, error)
}

// Handler executes panel commands.
type Handler struct {
	engine      Engine
	notifier    ports.Notifier
	clipboard   ports.Clipboard
	diagnostics ports.Diagnostics
	logger      *slog.Logger
}

// Option configures the Handler.
type Option func(*Handler)

// WithClipboard sets the clipboard used by CopyDiagnostics.
func WithClipboard(c ports.Clipboard) Option {
	return func(h *Handler) {
		h.clipboard = c
	}
}

// WithDiagnostics sets the diagnostics source used by CopyDiagnostics.
func WithDiagnostics(d ports.Diagnostics) Option {
	return func(h *Handler) {
		h.diagnostics = d
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Handler) {
		h.logger = logger
	}
}

// New creates a command handler.
func New(engine Engine, notifier ports.Notifier, opts ...Option) *Handler {
	h := &Handler{
		engine:   engine,
		notifier: notifier,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) notify(level domain.NoticeLevel, title, body string) {
	h.notifier.Notify(domain.Notice{Title: title, Body: body, Level: level})
}

// StartTask loads (or reloads) a task by name.
func (h *Handler) StartTask(ctx context.Context, name string) bool {
	if err := h.engine.LoadTask(ctx, name); err != nil {
		h.logger.WarnContext(ctx, "start task failed", "task", name, "error", err)
		h.notify(domain.NoticeError, TitleError, fmt.Sprintf(msgTaskNotLoaded, name))
		return false
	}
	return true
}

// RestartTask reloads the active task from its first step.
func (h *Handler) RestartTask(ctx context.Context) bool {
	settings, err := h.engine.Settings(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "restart task failed", "error", err)
		h.notify(domain.NoticeError, TitleError, err.Error())
		return false
	}
	if settings.Progress.IsEmpty() {
		h.notify(domain.NoticeInfo, TitleNoTask, MsgNoTask)
		return false
	}
	return h.StartTask(ctx, settings.Progress.Name)
}

// SubmitStep validates the current step and reports the result.
func (h *Handler) SubmitStep(ctx context.Context) domain.Outcome {
	settings, err := h.engine.Settings(ctx)
	if err != nil {
		h.notify(domain.NoticeError, TitleError, fmt.Sprintf(msgCheckFailed, err))
		return domain.OutcomeNotSatisfied
	}
	if settings.Progress.IsEmpty() {
		h.notify(domain.NoticeInfo, TitleNoTask, MsgNoTask)
		return domain.OutcomeAlreadyFinished
	}

	outcome, err := h.engine.CheckCurrentStep(ctx)
	switch {
	case errors.Is(err, domain.ErrStepNotFound):
		h.logger.WarnContext(ctx, "step not found", "error", err)
		h.notify(domain.NoticeError, TitleError, MsgNoStep)
		return domain.OutcomeStepNotFound
	case err != nil:
		h.logger.ErrorContext(ctx, "check failed", "error", err)
		h.notify(domain.NoticeError, TitleError, fmt.Sprintf(msgCheckFailed, err))
		return outcome
	}

	switch outcome {
	case domain.OutcomeNotSatisfied:
		h.notify(domain.NoticeError, TitleNotYet, MsgTryAgain)
	case domain.OutcomeAdvanced:
		if settings.Progress.CurrentStep+1 == len(settings.Progress.Steps) {
			h.notify(domain.NoticeInfo, TitleDone, fmt.Sprintf(msgTaskComplete, settings.Progress.Name))
		}
	}
	return outcome
}

// ShowHint displays a step description. Empty arguments fall back to defaults.
func (h *Handler) ShowHint(message, title string) {
	if message == "" {
		message = MsgNoInstructions
	}
	if title == "" {
		title = TitleHint
	}
	h.notify(domain.NoticeInfo, title, message)
}

// CopyDiagnostics writes the diagnostics dump to the clipboard.
func (h *Handler) CopyDiagnostics(ctx context.Context) bool {
	if h.diagnostics == nil || h.clipboard == nil {
		h.notify(domain.NoticeError, TitleDiagnostics, fmt.Sprintf(msgDiagnosticsFail, "not configured"))
		return false
	}

	dump, err := h.diagnostics.Dump(ctx)
	if err == nil {
		err = h.clipboard.WriteAll(dump)
	}
	if err != nil {
		h.logger.WarnContext(ctx, "copy diagnostics failed", "error", err)
		h.notify(domain.NoticeError, TitleDiagnostics, fmt.Sprintf(msgDiagnosticsFail, err))
		return false
	}

	h.notify(domain.NoticeInfo, TitleDiagnostics, MsgCopied)
	return true
}
