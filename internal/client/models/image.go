package models

// DefaultFileType is used when an image reference carries no usable extension.
const DefaultFileType = "jpg"

// SelectedImage is the image the user picked and has not submitted yet.
type SelectedImage struct {
	// URI is the local location handle: a path or a file:// URI.
	URI string
	// FileType is the extension inferred from URI, e.g. "png".
	FileType string
}

// Selection is the outcome of one pick: either an image or a cancellation.
type Selection struct {
	Image     *SelectedImage
	Cancelled bool
}

// Cancelled is the outcome of a pick the user aborted.
func Cancelled() Selection {
	return Selection{Cancelled: true}
}

// Picked wraps a successfully selected image.
func Picked(img SelectedImage) Selection {
	return Selection{Image: &img}
}
