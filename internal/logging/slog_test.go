package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func newTestLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels_WriteExpectedOutput(t *testing.T) {
	log, buf := newTestLogger(t)
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	out := buf.String()

	tests := []struct {
		level string
		msg   string
		key   string
		val   string
	}{
		{"DEBUG", "dbg", "a", "1"},
		{"INFO", "inf", "b", "2"},
		{"WARN", "wrn", "c", "3"},
		{"ERROR", "err", "d", "4"},
	}

	for _, tc := range tests {
		if !strings.Contains(out, "level="+tc.level) {
			t.Fatalf("expected line with level=%s in output:\n%s", tc.level, out)
		}
		if !strings.Contains(out, "msg="+tc.msg) {
			t.Fatalf("expected line with msg=%q in output:\n%s", tc.msg, out)
		}
		if !strings.Contains(out, tc.key+"="+tc.val) {
			t.Fatalf("expected attribute %s=%s in output:\n%s", tc.key, tc.val, out)
		}
	}
}

func TestSlogLogger_With_AddsAttributes(t *testing.T) {
	log, buf := newTestLogger(t)

	log.With("component", "feed", "user", "1").Info(context.Background(), "hello", "k", "v")

	out := buf.String()
	for _, s := range []string{"level=INFO", "msg=hello", "component=feed", "user=1", "k=v"} {
		if !strings.Contains(out, s) {
			t.Fatalf("expected %q in output, got:\n%s", s, out)
		}
	}
}

func TestNop_DiscardsWithoutPanicking(t *testing.T) {
	l := Nop()
	ctx := context.TODO()
	l.Info(ctx, "ignored")
	l.With("a", 1).Error(ctx, "ignored")
}

func TestSlogLogger_NilContextAndLogger(t *testing.T) {
	log, buf := newTestLogger(t)

	//nolint:staticcheck // a nil context must not panic
	log.Info(nil, "no ctx")
	if !strings.Contains(buf.String(), "msg=\"no ctx\"") {
		t.Fatalf("expected record without context, got:\n%s", buf.String())
	}

	NewSlogLogger(nil).Error(context.Background(), "dropped")
}

func TestSlogLogger_WithoutArgsReturnsSameLogger(t *testing.T) {
	log, _ := newTestLogger(t)
	if log.With() != Logger(log) {
		t.Fatal("With() without args should return the receiver")
	}
}
