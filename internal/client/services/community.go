// Package services contains application services for the community client.
// This file defines the community screen controller: identity bootstrap, feed
// loading, image selection, caption editing and the upload workflow.
package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrijs2005/capcheck/internal/client/client"
	"github.com/dmitrijs2005/capcheck/internal/client/identity"
	"github.com/dmitrijs2005/capcheck/internal/client/models"
	"github.com/dmitrijs2005/capcheck/internal/client/picker"
	"github.com/dmitrijs2005/capcheck/internal/client/submission"
	"github.com/dmitrijs2005/capcheck/internal/logging"
)

// ErrUploadDisabled is returned by Upload when no image is selected, the
// caption is empty or another upload is still in flight.
var ErrUploadDisabled = errors.New("upload is not allowed")

const (
	SuccessTitle   = "Success"
	SuccessMessage = "Photo uploaded!"
	ErrorTitle     = "Error"
)

// Phase is the feed lifecycle of the screen.
type Phase int

const (
	PhaseInitializing Phase = iota
	PhaseLoading
	PhaseLoaded
	PhaseLoadFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseInitializing:
		return "initializing"
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseLoadFailed:
		return "load failed"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Notifier shows a blocking message to the user.
type Notifier interface {
	Alert(ctx context.Context, title, message string)
}

// Options tune controller behaviour.
type Options struct {
	// KeepFeedOnError preserves the previous feed when a reload fails.
	// By default a failed reload empties it.
	KeepFeedOnError bool
	// Cleaner, if set, is told when a selected image is posted or dropped.
	Cleaner Cleaner
}

// UploadResult reports the feed refresh that follows a successful upload.
// A refresh failure never turns the upload into a failure.
type UploadResult struct {
	RefreshErr error
}

// View is a point-in-time copy of the screen state for rendering.
type View struct {
	Phase      Phase
	Identity   string
	Posts      []models.Post
	LoadErr    error
	Image      *models.SelectedImage
	Caption    string
	Submitting bool
	CanUpload  bool
}

// Loading reports whether a feed request is in flight.
func (v View) Loading() bool {
	return v.Phase == PhaseInitializing || v.Phase == PhaseLoading
}

// Controller owns the community screen state. All methods are safe for
// concurrent use; remote calls are made without holding the lock.
type Controller struct {
	store    identity.Store
	api      client.Client
	picker   picker.Picker
	builder  *submission.Builder
	notifier Notifier
	log      logging.Logger
	opts     Options

	mu         sync.Mutex
	identity   string
	phase      Phase
	posts      []models.Post
	loadErr    error
	loadSeq    uint64
	image      *models.SelectedImage
	caption    string
	submitting bool
	// inflight is the URI being uploaded; its file stays until the upload ends.
	inflight string
}

// NewController wires a controller. The initial phase is PhaseInitializing
// until Mount runs.
func NewController(store identity.Store, api client.Client, p picker.Picker, b *submission.Builder,
	n Notifier, log logging.Logger, opts Options) *Controller {
	return &Controller{
		store:    store,
		api:      api,
		picker:   p,
		builder:  b,
		notifier: n,
		log:      log.With("component", "community"),
		opts:     opts,
	}
}

// Mount establishes the identity and performs the initial feed load.
// An identity failure is logged and leaves the feed empty; no alert is shown.
func (c *Controller) Mount(ctx context.Context) error {
	if _, err := c.ensureIdentity(ctx); err != nil {
		c.mu.Lock()
		c.phase = PhaseLoadFailed
		c.loadErr = err
		c.mu.Unlock()
		return err
	}
	return c.Reload(ctx)
}

func (c *Controller) ensureIdentity(ctx context.Context) (string, error) {
	c.mu.Lock()
	id := c.identity
	c.mu.Unlock()
	if id != "" {
		return id, nil
	}

	id, err := c.store.EnsureIdentity(ctx)
	if err != nil {
		c.log.Error(ctx, "identity bootstrap failed", "error", err)
		return "", err
	}

	c.mu.Lock()
	c.identity = id
	c.mu.Unlock()
	c.log.Debug(ctx, "identity ready", "user_id", id)
	return id, nil
}

// Reload fetches the feed and replaces the current one. Only the latest
// issued load may change state; an overtaken response is discarded and
// Reload returns nil for it.
func (c *Controller) Reload(ctx context.Context) error {
	id, err := c.ensureIdentity(ctx)
	if err != nil {
		c.mu.Lock()
		c.loadSeq++
		c.phase = PhaseLoadFailed
		c.loadErr = err
		c.mu.Unlock()
		return err
	}

	c.mu.Lock()
	c.loadSeq++
	seq := c.loadSeq
	c.phase = PhaseLoading
	c.mu.Unlock()

	posts, err := c.api.FetchPhotos(client.WithIdentity(ctx, id))

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.loadSeq {
		c.log.Debug(ctx, "discarding stale feed response", "seq", seq, "latest", c.loadSeq)
		return nil
	}

	if err != nil {
		c.log.Warn(ctx, "error loading posts", "error", err)
		c.phase = PhaseLoadFailed
		c.loadErr = err
		if !c.opts.KeepFeedOnError {
			c.posts = nil
		}
		return err
	}

	c.posts = posts
	c.phase = PhaseLoaded
	c.loadErr = nil
	c.log.Debug(ctx, "feed loaded", "posts", len(posts))
	return nil
}

// PickImage asks the picker for an image. A cancelled pick keeps the current
// selection.
func (c *Controller) PickImage(ctx context.Context, req picker.Request) error {
	sel, err := c.picker.PickImage(ctx, req)
	if err != nil {
		return fmt.Errorf("pick image: %w", err)
	}
	if sel.Cancelled || sel.Image == nil {
		c.log.Debug(ctx, "image pick cancelled")
		return nil
	}

	c.mu.Lock()
	prev := c.image
	c.image = sel.Image
	inflight := c.inflight
	c.mu.Unlock()

	if prev != nil && prev.URI != sel.Image.URI && prev.URI != inflight {
		c.discard(ctx, prev.URI)
	}
	return nil
}

func (c *Controller) SetCaption(caption string) {
	c.mu.Lock()
	c.caption = caption
	c.mu.Unlock()
}

// ClearSelection drops the pending image.
func (c *Controller) ClearSelection(ctx context.Context) {
	c.mu.Lock()
	prev := c.image
	c.image = nil
	inflight := c.inflight
	c.mu.Unlock()

	if prev != nil && prev.URI != inflight {
		c.discard(ctx, prev.URI)
	}
}

func (c *Controller) discard(ctx context.Context, uri string) {
	if c.opts.Cleaner == nil {
		return
	}
	if err := c.opts.Cleaner.Discard(ctx, uri); err != nil {
		c.log.Warn(ctx, "cannot discard image", "uri", uri, "error", err)
	}
}

// CanUpload reports whether the upload action is enabled.
func (c *Controller) CanUpload() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.canUploadLocked()
}

func (c *Controller) canUploadLocked() bool {
	return c.image != nil && c.caption != "" && !c.submitting
}

// Upload submits the pending post. On success the submitted image and
// caption are cleared, a success alert is shown and exactly one feed reload
// is awaited; its outcome is reported in UploadResult. Inputs changed while
// the upload was in flight are left alone. On failure an error alert is
// shown and the inputs are kept for another attempt.
func (c *Controller) Upload(ctx context.Context) (UploadResult, error) {
	c.mu.Lock()
	if !c.canUploadLocked() {
		c.mu.Unlock()
		return UploadResult{}, ErrUploadDisabled
	}
	c.submitting = true
	img := *c.image
	caption := c.caption
	c.inflight = img.URI
	c.mu.Unlock()

	err := c.submit(ctx, img, caption)

	c.mu.Lock()
	c.submitting = false
	c.inflight = ""
	selected := c.image != nil && c.image.URI == img.URI
	if err == nil {
		if selected {
			c.image = nil
		}
		if c.caption == caption {
			c.caption = ""
		}
	}
	c.mu.Unlock()

	if err != nil && !selected {
		c.discard(ctx, img.URI)
	}
	if err != nil {
		c.log.Warn(ctx, "upload error", "error", err)
		c.notifier.Alert(ctx, ErrorTitle, userMessage(err))
		return UploadResult{}, err
	}

	c.log.Info(ctx, "photo uploaded")
	if c.opts.Cleaner != nil {
		if err := c.opts.Cleaner.Uploaded(ctx, img.URI); err != nil {
			c.log.Warn(ctx, "cannot clean up uploaded image", "uri", img.URI, "error", err)
		}
	}
	c.notifier.Alert(ctx, SuccessTitle, SuccessMessage)

	return UploadResult{RefreshErr: c.Reload(ctx)}, nil
}

func (c *Controller) submit(ctx context.Context, img models.SelectedImage, caption string) error {
	id, err := c.ensureIdentity(ctx)
	if err != nil {
		return err
	}
	payload := c.builder.Build(img, caption, id)
	return c.api.UploadPhoto(client.WithIdentity(ctx, id), payload)
}

func userMessage(err error) string {
	var ue *client.UploadError
	if errors.As(err, &ue) {
		if ue.Message == "" {
			return client.DefaultUploadMessage
		}
		return ue.Message
	}
	return err.Error()
}

// View returns a snapshot of the screen state.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := View{
		Phase:      c.phase,
		Identity:   c.identity,
		Posts:      slices.Clone(c.posts),
		LoadErr:    c.loadErr,
		Caption:    c.caption,
		Submitting: c.submitting,
		CanUpload:  c.canUploadLocked(),
	}
	if c.image != nil {
		img := *c.image
		v.Image = &img
	}
	return v
}
