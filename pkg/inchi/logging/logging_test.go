package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestAbbrev(t *testing.T) {
	if got := Abbrev("k", "short", 10).Value.String(); got != "short" {
		t.Fatalf("Abbrev kept %q", got)
	}
	got := Abbrev("k", strings.Repeat("x", 20), 5).Value.String()
	if got != "xxxxx...(20 bytes)" {
		t.Fatalf("Abbrev = %q", got)
	}
	if got := Abbrev("k", "abc", 0).Value.String(); got != "abc" {
		t.Fatalf("non-positive max should keep value, got %q", got)
	}
}

func TestNewWritesThroughSlog(t *testing.T) {
	var buf bytes.Buffer
	l := New(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	l.With("op", "GetINCHI").Warn(context.Background(), "library warning", "code", 1)
	out := buf.String()
	for _, want := range []string{"level=WARN", "op=GetINCHI", "code=1", "library warning"} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output %q missing %q", out, want)
		}
	}
}

func TestDiscard(t *testing.T) {
	Discard().Error(context.Background(), "dropped")
}

func TestNilFollowsDefault(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	l := New(nil)
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	l.Info(context.Background(), "after swap")
	if !strings.Contains(buf.String(), "after swap") {
		t.Fatalf("record not routed to the current default: %q", buf.String())
	}
}
