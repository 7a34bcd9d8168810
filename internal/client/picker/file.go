package picker

import (
	"context"
	"fmt"
	"image/jpeg"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/capcheck/internal/client/models"
	"github.com/dmitrijs2005/capcheck/internal/client/submission"
	"github.com/dmitrijs2005/capcheck/internal/filex"
	"github.com/dmitrijs2005/capcheck/internal/logging"
)

// FilePicker picks images from a directory on disk.
type FilePicker struct {
	prompt     Prompter
	libraryDir string
	workDir    string
	quality    float64
	tracker    Tracker
	log        logging.Logger
}

type Option func(*FilePicker)

// WithTracker registers t for compressed copies. When tracking fails the
// copy is removed and the original image is used.
func WithTracker(t Tracker) Option {
	return func(p *FilePicker) {
		p.tracker = t
	}
}

var _ Picker = (*FilePicker)(nil)

// NewFilePicker returns a picker resolving relative paths against
// libraryDir. JPEG images are re-encoded at quality (0 < quality < 1) into
// workDir/preupload; quality >= 1 keeps originals.
func NewFilePicker(prompt Prompter, libraryDir, workDir string, quality float64, log logging.Logger, opts ...Option) *FilePicker {
	if quality <= 0 {
		quality = DefaultQuality
	}
	p := &FilePicker{
		prompt:     prompt,
		libraryDir: libraryDir,
		workDir:    workDir,
		quality:    quality,
		log:        log.With("component", "picker"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *FilePicker) PickImage(ctx context.Context, req Request) (models.Selection, error) {
	if err := ctx.Err(); err != nil {
		return models.Selection{}, err
	}

	if req.Source == SourceCamera {
		p.log.Warn(ctx, "camera is not available in the terminal client")
		return models.Cancelled(), nil
	}

	answer := req.Path
	if answer == "" {
		var err error
		answer, err = p.prompt("Enter image path (empty line to cancel)")
		if err != nil {
			p.log.Debug(ctx, "image prompt aborted", "error", err)
			return models.Cancelled(), nil
		}
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return models.Cancelled(), nil
	}

	path, err := filex.LocalPath(answer)
	if err != nil {
		p.log.Warn(ctx, "unusable image reference", "uri", answer, "error", err)
		return models.Cancelled(), nil
	}
	if !filepath.IsAbs(path) && p.libraryDir != "" {
		path = filepath.Join(p.libraryDir, path)
	}

	contentType, err := sniff(path)
	if err != nil {
		p.log.Warn(ctx, "cannot open image", "path", path, "error", err)
		return models.Cancelled(), nil
	}
	if !strings.HasPrefix(contentType, "image/") {
		p.log.Warn(ctx, "not a still image", "path", path, "content_type", contentType)
		return models.Cancelled(), nil
	}

	fileType := submission.FileType(path)
	uri := path

	if contentType == "image/jpeg" && p.quality < 1 {
		compressed, err := p.compress(path, fileType)
		switch {
		case err != nil:
			p.log.Warn(ctx, "compression failed, using original", "path", path, "error", err)
		case p.tracker != nil:
			if err := p.tracker.Track(ctx, compressed, path); err != nil {
				p.log.Warn(ctx, "cannot track compressed copy, using original", "path", path, "error", err)
				_ = os.Remove(compressed)
				break
			}
			uri = compressed
		default:
			uri = compressed
		}
	}

	p.log.Debug(ctx, "image selected", "uri", uri, "type", fileType)
	return models.Picked(models.SelectedImage{URI: uri, FileType: fileType}), nil
}

func sniff(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return "", err
	}
	if fi.IsDir() {
		return "", fmt.Errorf("%s is a directory", path)
	}

	head := make([]byte, 512)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", err
	}
	return http.DetectContentType(head[:n]), nil
}

func (p *FilePicker) compress(path, fileType string) (string, error) {
	src, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer src.Close()

	img, err := jpeg.Decode(src)
	if err != nil {
		return "", fmt.Errorf("decode jpeg: %w", err)
	}

	dir, err := filex.EnsureSubDir(p.workDir, "preupload")
	if err != nil {
		return "", fmt.Errorf("error creating dir: %w", err)
	}

	localPath := filepath.Join(dir, uuid.NewString()+"."+fileType)
	out, err := os.Create(localPath)
	if err != nil {
		return "", fmt.Errorf("error creating file: %w", err)
	}
	defer out.Close()

	if err := jpeg.Encode(out, img, &jpeg.Options{Quality: int(p.quality * 100)}); err != nil {
		return "", fmt.Errorf("encode jpeg: %w", err)
	}
	return localPath, nil
}
