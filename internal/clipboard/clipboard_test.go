package clipboard

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/atotto/clipboard"
)

func TestMemoryEmptyIsUnavailable(t *testing.T) {
	m := NewMemory()
	if _, err := m.ReadText(); !errors.Is(err, ErrUnavailable) {
		t.Errorf("ReadText on empty memory error = %v, want ErrUnavailable", err)
	}
}

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory()
	if err := m.WriteText("ff0000"); err != nil {
		t.Fatalf("WriteText error = %v", err)
	}
	got, err := m.ReadText()
	if err != nil || got != "ff0000" {
		t.Errorf("ReadText = %q, %v; want ff0000", got, err)
	}
}

func TestMemoryPrefilled(t *testing.T) {
	m := NewMemory("00ff00")
	if got, _ := m.ReadText(); got != "00ff00" {
		t.Errorf("ReadText = %q, want 00ff00", got)
	}
}

func TestDisabledAlwaysFails(t *testing.T) {
	var p Provider = Disabled{}
	if _, err := p.ReadText(); !errors.Is(err, ErrUnavailable) {
		t.Errorf("ReadText error = %v", err)
	}
	if err := p.WriteText("x"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("WriteText error = %v", err)
	}
}

func TestSystemFallsBackToOSC52(t *testing.T) {
	if !clipboard.Unsupported {
		t.Skip("platform clipboard present; fallback path not reachable")
	}
	var buf bytes.Buffer
	s := NewSystem(&buf)
	if err := s.WriteText("abcdef"); err != nil {
		t.Fatalf("WriteText error = %v", err)
	}
	want := base64.StdEncoding.EncodeToString([]byte("abcdef"))
	if !strings.Contains(buf.String(), want) {
		t.Errorf("OSC 52 output %q does not contain %q", buf.String(), want)
	}
	if _, err := s.ReadText(); !errors.Is(err, ErrUnavailable) {
		t.Errorf("ReadText error = %v, want ErrUnavailable", err)
	}
}

func TestSystemWithoutFallback(t *testing.T) {
	if !clipboard.Unsupported {
		t.Skip("platform clipboard present")
	}
	s := NewSystem(nil)
	if err := s.WriteText("abcdef"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("WriteText error = %v, want ErrUnavailable", err)
	}
}
