package glyphatlas

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// recordingHandler keeps every record it handles.
type recordingHandler struct {
	mu      sync.Mutex
	level   slog.Level
	records []slog.Record
}

func (h *recordingHandler) Enabled(_ context.Context, l slog.Level) bool { return l >= h.level }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r.Clone())
	return nil
}

func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(string) slog.Handler      { return h }

func useRecordingLogger(t *testing.T, level slog.Level) *recordingHandler {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })
	h := &recordingHandler{level: level}
	SetLogger(slog.New(h))
	return h
}

func TestDiscardHandler(t *testing.T) {
	h := discard{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("discard.Enabled(%v) = true, want false", level)
		}
	}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("discard.Handle() = %v, want nil", err)
	}
	if _, ok := h.WithAttrs([]slog.Attr{slog.String("key", "val")}).(discard); !ok {
		t.Error("discard.WithAttrs() did not return discard")
	}
	if _, ok := h.WithGroup("group").(discard); !ok {
		t.Error("discard.WithGroup() did not return discard")
	}
}

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger should not be enabled for %v", level)
		}
	}
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	custom := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	SetLogger(custom)

	got := Logger()
	if got != custom {
		t.Error("Logger() did not return the custom logger set via SetLogger")
	}

	got.Info("test message", "key", "value")
	if !strings.Contains(buf.String(), "test message") {
		t.Errorf("expected log output to contain 'test message', got: %s", buf.String())
	}
}

func TestSetLoggerNilRestoresSilent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(slog.Default())
	SetLogger(nil)

	l := Logger()
	if l == nil {
		t.Fatal("SetLogger(nil) left a nil logger")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should produce a disabled logger")
	}
}

func TestLoggerConcurrentAccess(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var wg sync.WaitGroup
	const goroutines = 50

	for i := 0; i < goroutines; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			Logger().Debug("concurrent read")
		}()
		go func() {
			defer wg.Done()
			SetLogger(slog.Default())
			SetLogger(nil)
		}()
	}

	wg.Wait()
}

func BenchmarkLoggerDisabledLog(b *testing.B) {
	l := Logger()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Debug("message", "key", "value")
	}
}

func TestBuildInfoRecords(t *testing.T) {
	h := useRecordingLogger(t, slog.LevelInfo)

	b := newTestBuilder(t, WithLayout(smallLayout))
	if _, err := b.Build(&bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}

	var msgs []string
	for _, r := range h.records {
		if r.Level != slog.LevelInfo {
			t.Errorf("unexpected %v record %q", r.Level, r.Message)
		}
		msgs = append(msgs, r.Message)
	}
	want := []string{"glyphatlas: building atlas", "glyphatlas: atlas complete"}
	if strings.Join(msgs, "|") != strings.Join(want, "|") {
		t.Errorf("Build logged %q, want %q", msgs, want)
	}
}

func TestRenderGlyphDebugAttrs(t *testing.T) {
	h := useRecordingLogger(t, slog.LevelDebug)

	b := newTestBuilder(t, WithLayout(smallLayout))
	if _, err := b.RenderGlyph('A'); err != nil {
		t.Fatal(err)
	}
	if len(h.records) != 1 {
		t.Fatalf("RenderGlyph logged %d records, want 1", len(h.records))
	}

	// Attributes stay typed values; nothing is preformatted into strings.
	attrs := map[string]slog.Value{}
	h.records[0].Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value
		return true
	})
	if v := attrs["rune"]; v.Kind() != slog.KindInt64 || v.Int64() != 'A' {
		t.Errorf("rune attr = %v (%v), want int 'A'", v, v.Kind())
	}
	for _, key := range []string{"code", "w", "h"} {
		if v, ok := attrs[key]; !ok || v.Kind() == slog.KindString {
			t.Errorf("%s attr = %v, want a numeric value", key, v)
		}
	}
}
