package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	calls []string
	args  []string
}

func (f *fakeExec) record(name, arg string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, arg)
	return nil
}

func (f *fakeExec) Show(ctx context.Context) error    { return f.record("feed", "") }
func (f *fakeExec) Refresh(ctx context.Context) error { return f.record("refresh", "") }
func (f *fakeExec) Pick(ctx context.Context, path string) error {
	return f.record("pick", path)
}
func (f *fakeExec) Camera(ctx context.Context) error { return f.record("camera", "") }
func (f *fakeExec) Caption(ctx context.Context, text string) error {
	return f.record("caption", text)
}
func (f *fakeExec) Clear(ctx context.Context) error  { return f.record("clear", "") }
func (f *fakeExec) Upload(ctx context.Context) error { return f.record("upload", "") }
func (f *fakeExec) Status(ctx context.Context) error { return f.record("status", "") }

func silence(t *testing.T) {
	t.Helper()
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	silence(t)

	input := bufio.NewReader(strings.NewReader(strings.Join([]string{
		"help",
		"feed",
		"pick /tmp/img.jpg",
		"caption   Golden chanterelle  near the oak ",
		"status",
		"u",
		"",
		"foobar",
		"r",
		"camera",
		"clear",
		"exit",
		"upload",
	}, "\n")))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, input)

	wantCalls := []string{"feed", "pick", "caption", "status", "upload", "refresh", "camera", "clear"}
	if strings.Join(exec.calls, ",") != strings.Join(wantCalls, ",") {
		t.Fatalf("calls: got %v, want %v", exec.calls, wantCalls)
	}
	if exec.args[1] != "/tmp/img.jpg" {
		t.Fatalf("pick arg: got %q", exec.args[1])
	}
	if exec.args[2] != "Golden chanterelle  near the oak" {
		t.Fatalf("caption arg: got %q", exec.args[2])
	}
}

func TestRunREPL_StopsAtEOF(t *testing.T) {
	silence(t)

	input := bufio.NewReader(strings.NewReader("pick\nupload"))
	exec := &fakeExec{}

	runREPL(context.Background(), exec, func() string { return "s" }, input)

	if strings.Join(exec.calls, ",") != "pick,upload" {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
	if exec.args[0] != "" {
		t.Fatalf("pick without path should pass empty arg, got %q", exec.args[0])
	}
}

func TestRunREPL_Quit(t *testing.T) {
	silence(t)

	input := bufio.NewReader(strings.NewReader("quit\nfeed\n"))
	exec := &fakeExec{}

	runREPL(context.Background(), exec, func() string { return "s" }, input)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
