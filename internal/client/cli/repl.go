package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Show(ctx context.Context) error
	Refresh(ctx context.Context) error
	Pick(ctx context.Context, path string) error
	Camera(ctx context.Context) error
	Caption(ctx context.Context, text string) error
	Clear(ctx context.Context) error
	Upload(ctx context.Context) error
	Status(ctx context.Context) error
}

const helpText = `Available commands:
  (f)eed           show the feed
  (r)efresh        reload the feed
  pick [path]      select an image (prompts when no path is given)
  camera           take a photo
  caption [text]   set the caption (prompts for several lines when no text)
  clear            drop the selected image and caption
  (u)pload         post the selected image with its caption
  status           show the pending post
  exit | quit      leave the program`

// runREPL starts a simple read–eval–print loop for the community client.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF or when the user types "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("cc %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}

		cmd, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
		rest = strings.TrimSpace(rest)
		if cmd == "" {
			continue
		}

		switch cmd {
		case "help":
			printlnFn(helpText)

		case "f", "feed":
			_ = a.Show(ctx)

		case "r", "refresh":
			_ = a.Refresh(ctx)

		case "pick":
			_ = a.Pick(ctx, rest)

		case "camera":
			_ = a.Camera(ctx)

		case "caption":
			_ = a.Caption(ctx, rest)

		case "clear":
			_ = a.Clear(ctx)

		case "u", "upload":
			_ = a.Upload(ctx)

		case "status":
			_ = a.Status(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
