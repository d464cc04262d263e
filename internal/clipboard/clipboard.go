// Package clipboard wraps access to the system clipboard. Every provider may
// fail with ErrUnavailable; callers treat that as "nothing happened".
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// ErrUnavailable is returned when the clipboard cannot be read or written.
var ErrUnavailable = errors.New("clipboard unavailable")

// Provider reads and writes plain text.
type Provider interface {
	ReadText() (string, error)
	WriteText(text string) error
}

// System uses the platform clipboard (xclip, xsel, wl-clipboard, pbcopy, ...).
// When no platform tool exists, writes fall back to an OSC 52 escape sequence
// sent to Fallback so terminals that support it still receive the text.
type System struct {
	Fallback io.Writer
}

// NewSystem returns a System provider. fallback may be nil to disable OSC 52.
func NewSystem(fallback io.Writer) *System {
	return &System{Fallback: fallback}
}

// ReadText returns the clipboard contents.
func (s *System) ReadText() (string, error) {
	if clipboard.Unsupported {
		return "", fmt.Errorf("%w: no clipboard utility found", ErrUnavailable)
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return text, nil
}

// WriteText stores text in the clipboard.
func (s *System) WriteText(text string) error {
	if !clipboard.Unsupported {
		err := clipboard.WriteAll(text)
		if err == nil {
			return nil
		}
		log.Printf("[clipboard] system write failed: %v", err)
	}
	if s.Fallback == nil {
		return fmt.Errorf("%w: no clipboard utility found", ErrUnavailable)
	}
	if _, err := osc52.New(text).WriteTo(s.Fallback); err != nil {
		return fmt.Errorf("%w: osc52: %v", ErrUnavailable, err)
	}
	return nil
}

// Memory is an in-process clipboard.
type Memory struct {
	mu   sync.Mutex
	text string
	has  bool
}

// NewMemory returns a Memory clipboard, optionally pre-filled.
func NewMemory(initial ...string) *Memory {
	m := &Memory{}
	if len(initial) > 0 {
		m.text = initial[0]
		m.has = true
	}
	return m
}

// ReadText returns the stored text, or ErrUnavailable if nothing was written.
func (m *Memory) ReadText() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.has {
		return "", fmt.Errorf("%w: empty", ErrUnavailable)
	}
	return m.text, nil
}

// WriteText stores text.
func (m *Memory) WriteText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	m.has = true
	return nil
}

// Disabled always fails. Used when the clipboard is switched off in config.
type Disabled struct{}

func (Disabled) ReadText() (string, error) {
	return "", fmt.Errorf("%w: disabled", ErrUnavailable)
}

func (Disabled) WriteText(string) error {
	return fmt.Errorf("%w: disabled", ErrUnavailable)
}
