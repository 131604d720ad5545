// Package clipboard adapts the system clipboard to ports.Clipboard.
package clipboard

import (
	"errors"
	"sync"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no clipboard utility is available (e.g. headless Linux).
var ErrUnsupported = errors.New("clipboard is not supported on this system")

// System writes to the OS clipboard.
type System struct{}

// WriteAll implements ports.Clipboard.
func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}

// Buffer is an in-process clipboard. Safe for concurrent use.
type Buffer struct {
	mu   sync.Mutex
	text string
}

// WriteAll implements ports.Clipboard.
func (b *Buffer) WriteAll(text string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.text = text
	return nil
}

// Text returns the last written content.
func (b *Buffer) Text() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.text
}
