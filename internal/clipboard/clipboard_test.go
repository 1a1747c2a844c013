package clipboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/atotto/clipboard"
)

func TestNew(t *testing.T) {
	if _, ok := New(Config{Enabled: false}).(Nop); !ok {
		t.Error("disabled config should give Nop copier")
	}
	if _, ok := New(DefaultConfig()).(*System); !ok {
		t.Error("enabled config should give System copier")
	}
}

func TestSystem_Copy(t *testing.T) {
	if clipboard.Unsupported {
		t.Skip("no clipboard utility on this host")
	}

	var got string
	s := &System{timeout: time.Second, write: func(text string) error {
		got = text
		return nil
	}}

	if err := s.Copy(context.Background(), "#3498DB"); err != nil {
		t.Fatalf("Copy: %v", err)
	}
	if got != "#3498DB" {
		t.Errorf("wrote %q, want #3498DB", got)
	}
}

func TestSystem_CopyEmpty(t *testing.T) {
	s := &System{timeout: time.Second, write: func(string) error { return nil }}
	if err := s.Copy(context.Background(), ""); err == nil {
		t.Error("expected error for empty text")
	}
}

func TestSystem_CopyTimeout(t *testing.T) {
	if clipboard.Unsupported {
		t.Skip("no clipboard utility on this host")
	}

	block := make(chan struct{})
	defer close(block)
	s := &System{timeout: 10 * time.Millisecond, write: func(string) error {
		<-block
		return nil
	}}

	err := s.Copy(context.Background(), "#FFFFFF")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}
}

func TestSystem_CopyWriteError(t *testing.T) {
	if clipboard.Unsupported {
		t.Skip("no clipboard utility on this host")
	}

	boom := errors.New("boom")
	s := &System{timeout: time.Second, write: func(string) error { return boom }}
	if err := s.Copy(context.Background(), "#FFFFFF"); !errors.Is(err, boom) {
		t.Errorf("expected wrapped write error, got %v", err)
	}
}

func TestNop_Copy(t *testing.T) {
	if err := (Nop{}).Copy(context.Background(), "x"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestMemory(t *testing.T) {
	m := &Memory{}
	if m.Last() != "" {
		t.Error("empty memory should have no last value")
	}
	_ = m.Copy(context.Background(), "a")
	_ = m.Copy(context.Background(), "b")
	if m.Last() != "b" {
		t.Errorf("Last() = %q, want b", m.Last())
	}
}
