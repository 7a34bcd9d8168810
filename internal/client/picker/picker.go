// Package picker obtains a local still image for the pending post.
//
// A pick either yields one image or a cancelled outcome. Cancellation,
// a missing file and a non-image file are all normal outcomes, not errors;
// the caller keeps its previous selection in that case.
package picker

import (
	"context"

	"github.com/dmitrijs2005/capcheck/internal/client/models"
)

// DefaultQuality is the JPEG re-encoding quality, as a fraction of original.
const DefaultQuality = 0.7

type Source string

const (
	SourceLibrary Source = "library"
	SourceCamera  Source = "camera"
)

// Request describes one pick. A non-empty Path answers the prompt upfront.
type Request struct {
	Source Source
	Path   string
}

//go:generate mockgen -destination=mocks/picker_mock.go -package=mocks . Picker

type Picker interface {
	PickImage(ctx context.Context, req Request) (models.Selection, error)
}

// Prompter asks the user a question and returns the answer.
type Prompter func(prompt string) (string, error)

// Tracker is told about every compressed copy the picker writes.
type Tracker interface {
	Track(ctx context.Context, localPath, sourcePath string) error
}
