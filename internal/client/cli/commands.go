package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/capcheck/internal/client/picker"
	"github.com/dmitrijs2005/capcheck/internal/client/services"
)

func (a *App) Show(ctx context.Context) error {
	renderFeed(a.out, a.screen.View(), termWidth())
	return nil
}

func (a *App) Refresh(ctx context.Context) error {
	printlnFn("Loading posts...")
	err := a.screen.Reload(ctx)
	if err != nil {
		a.log.Warn(ctx, "refresh failed", "error", err)
	}
	renderFeed(a.out, a.screen.View(), termWidth())
	return err
}

func (a *App) Pick(ctx context.Context, path string) error {
	return a.pick(ctx, picker.Request{Source: picker.SourceLibrary, Path: path})
}

func (a *App) Camera(ctx context.Context) error {
	return a.pick(ctx, picker.Request{Source: picker.SourceCamera})
}

func (a *App) pick(ctx context.Context, req picker.Request) error {
	before := a.screen.View().Image

	if err := a.screen.PickImage(ctx, req); err != nil {
		printlnFn("Could not select image:", err)
		return err
	}

	after := a.screen.View().Image
	switch {
	case after == nil:
		printlnFn("No image selected.")
	case before != nil && *before == *after:
		printlnFn("No new image selected, keeping", after.URI)
	default:
		printlnFn("Selected", after.URI)
	}
	return nil
}

func (a *App) Caption(ctx context.Context, text string) error {
	if text == "" {
		var err error
		text, err = GetMultiline(a.reader, "Write a caption...", a.out)
		if err != nil {
			return err
		}
	}
	a.screen.SetCaption(text)
	return nil
}

func (a *App) Clear(ctx context.Context) error {
	a.screen.ClearSelection(ctx)
	a.screen.SetCaption("")
	printlnFn("Pending post cleared.")
	return nil
}

func (a *App) Upload(ctx context.Context) error {
	v := a.screen.View()
	if v.CanUpload {
		printlnFn("Uploading...")
	}

	res, err := a.screen.Upload(ctx)
	switch {
	case errors.Is(err, services.ErrUploadDisabled):
		printlnFn(disabledReason(v))
		return err
	case err != nil:
		return err
	}

	if res.RefreshErr != nil {
		printlnFn("Photo uploaded, but the feed could not be refreshed:", res.RefreshErr)
	}
	renderFeed(a.out, a.screen.View(), termWidth())
	return nil
}

func disabledReason(v services.View) string {
	switch {
	case v.Submitting:
		return "An upload is already in progress."
	case v.Image == nil:
		return "Please select an image first."
	case v.Caption == "":
		return "Please write a caption first."
	default:
		return "Upload is not available right now."
	}
}

func (a *App) Status(ctx context.Context) error {
	renderComposer(a.out, a.screen.View())
	return nil
}

// ConsoleNotifier prints alerts as blocking messages on the terminal.
type ConsoleNotifier struct {
	println func(a ...any) (int, error)
}

func NewConsoleNotifier() *ConsoleNotifier {
	return &ConsoleNotifier{}
}

func (n *ConsoleNotifier) Alert(_ context.Context, title, message string) {
	p := n.println
	if p == nil {
		p = printlnFn
	}
	_, _ = p(fmt.Sprintf("[%s] %s", title, message))
}
