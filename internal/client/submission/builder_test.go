package submission

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/capcheck/internal/client/models"
)

func TestFileType(t *testing.T) {
	tests := []struct {
		uri  string
		want string
	}{
		{"/a/b/photo.png", "png"},
		{"/a/b/noext", "jpg"},
		{"/a/b/x.JPG", "JPG"},
		{"/tmp/img.jpg", "jpg"},
		{"file:///data/cache/ImagePicker/abc.heic", "heic"},
		{"/a/b.dir/noext", "jpg"},
		{"/a/b/photo.", "jpg"},
		{"/a/b/.hidden", "hidden"},
		{"/a/b/weird.j p", "jpg"},
		{"/a/b/img.webp?size=large#top", "webp"},
		{"", "jpg"},
		{"/", "jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			assert.Equal(t, tt.want, FileType(tt.uri))
		})
	}
}

func TestBuild_ChanterellePayload(t *testing.T) {
	b := NewBuilder(DefaultDefaults())

	got := b.Build(models.SelectedImage{URI: "/tmp/img.jpg"}, "Chanterelle", "1")

	want := models.SubmissionPayload{
		Photo: models.PhotoPart{
			URI:         "/tmp/img.jpg",
			FileName:    "upload.jpg",
			ContentType: "image/jpg",
		},
		UserID:     "1",
		Caption:    "Chanterelle",
		Latitude:   "0",
		Longitude:  "0",
		MushroomID: "1",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_PrefersKnownFileType(t *testing.T) {
	b := NewBuilder(DefaultDefaults())

	got := b.Build(models.SelectedImage{URI: "/x/abc", FileType: "png"}, "", "1")

	assert.Equal(t, "upload.png", got.Photo.FileName)
	assert.Equal(t, "image/png", got.Photo.ContentType)
	assert.Equal(t, "", got.Caption)
}

func TestBuild_UsesConfiguredDefaults(t *testing.T) {
	b := NewBuilder(Defaults{Latitude: "51.5", Longitude: "-0.12", MushroomID: "7"})

	got := b.Build(models.SelectedImage{URI: "/x/a.PNG"}, "Fly agaric", "u-9")

	assert.Equal(t, "51.5", got.Latitude)
	assert.Equal(t, "-0.12", got.Longitude)
	assert.Equal(t, "7", got.MushroomID)
	assert.Equal(t, "image/PNG", got.Photo.ContentType)
	assert.Equal(t, "u-9", got.UserID)
}

func TestBuild_IsDeterministic(t *testing.T) {
	b := NewBuilder(DefaultDefaults())
	img := models.SelectedImage{URI: "/a/b/photo.png"}

	assert.Equal(t, b.Build(img, "c", "1"), b.Build(img, "c", "1"))
}
