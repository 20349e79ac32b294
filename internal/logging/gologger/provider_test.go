package gologger

import (
	"context"
	"testing"

	glog "github.com/goliatone/go-logger/glog"
)

func TestNewProviderRejectsUnknownFormat(t *testing.T) {
	if _, err := NewProvider(Config{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestProviderAppliesStaticFields(t *testing.T) {
	p, err := NewProvider(Config{Level: "debug", Format: "console", Fields: map[string]any{"site": "suffix"}})
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}
	logger := p.GetLogger("sitecms.pages")
	if logger == nil {
		t.Fatal("expected logger")
	}
	logger.Debug("pages.resolve", "slug", "home")
}

func TestAdapterDelegatesAndClonesFields(t *testing.T) {
	stub := &stubLogger{}
	a := adapt(stub)

	a.Trace("t")
	a.Debug("d")
	a.Info("i")
	a.Warn("w")
	a.Error("e")
	a.Fatal("f")

	fields := map[string]any{"slug": "home"}
	a.WithFields(fields)
	fields["slug"] = "about"
	if len(stub.fields) != 1 || stub.fields[0]["slug"] != "home" {
		t.Fatalf("expected cloned fields, got %v", stub.fields)
	}

	ctx := context.WithValue(context.Background(), struct{}{}, "v")
	a.WithContext(ctx)
	if len(stub.contexts) != 1 || stub.contexts[0] != ctx {
		t.Fatalf("expected context forwarding, got %v", stub.contexts)
	}

	want := []string{"trace", "debug", "info", "warn", "error", "fatal"}
	if len(stub.calls) != len(want) {
		t.Fatalf("expected %d calls, got %v", len(want), stub.calls)
	}
	for i := range want {
		if stub.calls[i] != want[i] {
			t.Fatalf("call %d: want %s got %s", i, want[i], stub.calls[i])
		}
	}
}

func TestGlogLevel(t *testing.T) {
	cases := map[string]string{
		"warning": glog.Warn,
		" INFO ":  glog.Info,
		"bogus":   "",
	}
	for in, want := range cases {
		if got := glogLevel(in); got != want {
			t.Fatalf("glogLevel(%q) = %q, want %q", in, got, want)
		}
	}
}

type stubLogger struct {
	calls    []string
	fields   []map[string]any
	contexts []context.Context
}

var _ glog.Logger = (*stubLogger)(nil)
var _ glog.FieldsLogger = (*stubLogger)(nil)

func (s *stubLogger) Trace(string, ...any) { s.calls = append(s.calls, "trace") }
func (s *stubLogger) Debug(string, ...any) { s.calls = append(s.calls, "debug") }
func (s *stubLogger) Info(string, ...any)  { s.calls = append(s.calls, "info") }
func (s *stubLogger) Warn(string, ...any)  { s.calls = append(s.calls, "warn") }
func (s *stubLogger) Error(string, ...any) { s.calls = append(s.calls, "error") }
func (s *stubLogger) Fatal(string, ...any) { s.calls = append(s.calls, "fatal") }

func (s *stubLogger) WithContext(ctx context.Context) glog.Logger {
	s.contexts = append(s.contexts, ctx)
	return s
}

func (s *stubLogger) WithFields(fields map[string]any) glog.Logger {
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	s.fields = append(s.fields, copied)
	return s
}
