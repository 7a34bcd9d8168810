// Package submission assembles the upload payload from the pending selection,
// the caption and the identity.
package submission

import (
	"strings"

	"github.com/dmitrijs2005/capcheck/internal/client/models"
)

// Defaults are the placeholder metadata fields attached to every post.
type Defaults struct {
	Latitude   string
	Longitude  string
	MushroomID string
}

// DefaultDefaults returns the values the service expects when nothing better
// is known.
func DefaultDefaults() Defaults {
	return Defaults{Latitude: "0", Longitude: "0", MushroomID: "1"}
}

// Builder is pure: the same inputs always give the same payload.
type Builder struct {
	defaults Defaults
}

func NewBuilder(d Defaults) *Builder {
	return &Builder{defaults: d}
}

// Build never fails; an unusable file name degrades to the default type.
func (b *Builder) Build(img models.SelectedImage, caption string, identity string) models.SubmissionPayload {
	ext := img.FileType
	if !validExt(ext) {
		ext = FileType(img.URI)
	}

	return models.SubmissionPayload{
		Photo: models.PhotoPart{
			URI:         img.URI,
			FileName:    "upload." + ext,
			ContentType: "image/" + ext,
		},
		UserID:     identity,
		Caption:    caption,
		Latitude:   b.defaults.Latitude,
		Longitude:  b.defaults.Longitude,
		MushroomID: b.defaults.MushroomID,
	}
}

// FileType returns the extension of the last path segment of uri, case
// preserved, or models.DefaultFileType when there is none.
//
//	FileType("/a/b/photo.png") == "png"
//	FileType("/a/b/noext")     == "jpg"
//	FileType("/a/b/x.JPG")     == "JPG"
func FileType(uri string) string {
	if i := strings.IndexAny(uri, "?#"); i >= 0 {
		uri = uri[:i]
	}
	name := uri[strings.LastIndex(uri, "/")+1:]

	dot := strings.LastIndex(name, ".")
	if dot < 0 {
		return models.DefaultFileType
	}
	ext := name[dot+1:]
	if !validExt(ext) {
		return models.DefaultFileType
	}
	return ext
}

func validExt(ext string) bool {
	if ext == "" || len(ext) > 10 {
		return false
	}
	for _, r := range ext {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}
