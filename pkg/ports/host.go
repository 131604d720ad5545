package ports

import (
	"context"

	"github.com/aretw0/quest/pkg/domain"
)

// Notifier displays a modal notice to the user.
type Notifier interface {
	Notify(notice domain.Notice)
}

// NotifierFunc adapts a plain function to the Notifier interface.
type NotifierFunc func(domain.Notice)

// Notify calls f(notice).
func (f NotifierFunc) Notify(notice domain.Notice) { f(notice) }

// Clipboard is the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// Diagnostics produces the anonymized diagnostics dump copied by the user.
type Diagnostics interface {
	Dump(ctx context.Context) (string, error)
}
