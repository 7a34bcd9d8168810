package cli

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/dmitrijs2005/capcheck/internal/client/picker"
	"github.com/dmitrijs2005/capcheck/internal/client/services"
	"github.com/dmitrijs2005/capcheck/internal/logging"
)

// Screen is the part of services.Controller the CLI drives.
type Screen interface {
	Mount(ctx context.Context) error
	Reload(ctx context.Context) error
	PickImage(ctx context.Context, req picker.Request) error
	SetCaption(caption string)
	ClearSelection(ctx context.Context)
	Upload(ctx context.Context) (services.UploadResult, error)
	View() services.View
}

// ModeSource reports the current connectivity mode.
type ModeSource interface {
	Mode() services.Mode
}

type App struct {
	screen Screen
	modes  ModeSource
	reader *bufio.Reader
	out    io.Writer
	log    logging.Logger
}

// NewApp returns an App reading commands from reader and writing to out. The
// same reader serves picker and caption prompts.
func NewApp(screen Screen, modes ModeSource, reader *bufio.Reader, out io.Writer, log logging.Logger) *App {
	return &App{
		screen: screen,
		modes:  modes,
		reader: reader,
		out:    out,
		log:    log.With("component", "cli"),
	}
}

// NewPrompter returns a picker prompter asking on out and reading from
// reader. Pass the reader the App uses so prompts and commands share input.
func NewPrompter(reader *bufio.Reader, out io.Writer) picker.Prompter {
	return func(prompt string) (string, error) {
		return GetSimpleText(reader, prompt, out)
	}
}

// Run mounts the screen and blocks in the REPL until the user exits or input
// ends.
func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to Cap Check community (type 'help' for commands)")

	if err := a.screen.Mount(ctx); err != nil {
		a.log.Warn(ctx, "initial load failed", "error", err)
	}
	_ = a.Show(ctx)

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) getStatus() string {
	var parts []string
	if id := a.screen.View().Identity; id != "" {
		parts = append(parts, "user "+id)
	}
	if a.modes != nil {
		parts = append(parts, string(a.modes.Mode()))
	}
	if len(parts) == 0 {
		return ""
	}
	return "(" + strings.Join(parts, " ") + ")"
}
