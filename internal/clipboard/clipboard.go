package clipboard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/atotto/clipboard"
)

var ErrUnavailable = errors.New("clipboard unavailable")

// Copier places text on the system clipboard
type Copier interface {
	Copy(ctx context.Context, text string) error
}

// Config for clipboard access
type Config struct {
	Enabled bool
	Timeout time.Duration
}

// DefaultConfig returns sensible defaults for clipboard access
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Timeout: 3 * time.Second,
	}
}

// New returns the system copier, or Nop when copying is disabled.
func New(config Config) Copier {
	if !config.Enabled {
		return Nop{}
	}
	return &System{timeout: config.Timeout, write: clipboard.WriteAll}
}

// System copies through the platform clipboard tool (wl-copy, xclip, pbcopy, ...)
type System struct {
	timeout time.Duration
	write   func(string) error
}

func (s *System) Copy(ctx context.Context, text string) error {
	if text == "" {
		return fmt.Errorf("cannot copy empty text")
	}
	if clipboard.Unsupported {
		return fmt.Errorf("%w: no clipboard utility found (install wl-clipboard, xclip, or xsel)", ErrUnavailable)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	// The clipboard library has no context support, so the write runs in
	// its own goroutine and is abandoned on timeout.
	done := make(chan error, 1)
	go func() {
		done <- s.write(text)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("clipboard copy timed out: %w", ctx.Err())
	}
}

// Nop is a Copier that does nothing and reports copying as disabled.
type Nop struct{}

func (Nop) Copy(ctx context.Context, text string) error {
	return fmt.Errorf("%w: clipboard disabled in config", ErrUnavailable)
}

// Memory records copied values. Useful in tests.
type Memory struct {
	mu     sync.Mutex
	values []string
}

func (m *Memory) Copy(ctx context.Context, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values = append(m.values, text)
	return nil
}

// Last returns the most recently copied value.
func (m *Memory) Last() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.values) == 0 {
		return ""
	}
	return m.values[len(m.values)-1]
}
