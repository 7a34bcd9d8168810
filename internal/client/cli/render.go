package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/dmitrijs2005/capcheck/internal/client/models"
	"github.com/dmitrijs2005/capcheck/internal/client/services"
)

const (
	defaultWidth = 80
	minWidth     = 20
)

// getTermSize is a test seam for term.GetSize.
var getTermSize = term.GetSize

func termWidth() int {
	w, _, err := getTermSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

// renderFeed writes the feed state: loading, empty or the posts in order.
func renderFeed(w io.Writer, v services.View, width int) {
	if width < minWidth {
		width = minWidth
	}

	switch {
	case v.Loading():
		fmt.Fprintln(w, "Loading posts...")
		return
	case len(v.Posts) == 0:
		fmt.Fprintln(w, "No posts yet.")
		if v.LoadErr != nil {
			fmt.Fprintln(w, "(last load failed, type 'refresh' to try again)")
		}
		return
	}

	rule := strings.Repeat("-", width)
	for _, p := range v.Posts {
		fmt.Fprintln(w, rule)
		renderPost(w, p, width)
	}
	fmt.Fprintln(w, rule)
	if v.LoadErr != nil {
		fmt.Fprintln(w, "(showing previous posts, last load failed)")
	}
}

func renderPost(w io.Writer, p models.Post, width int) {
	header := fmt.Sprintf("#%s by user %s", p.ID, p.UserID)
	if p.CreatedAt != "" {
		header += " on " + p.CreatedAt
	}
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, "  photo: "+p.PhotoURL)
	for _, line := range wrap(p.Caption, width-2) {
		fmt.Fprintln(w, "  "+line)
	}
}

// renderComposer writes the pending post: selected image, caption and
// whether the upload action is enabled.
func renderComposer(w io.Writer, v services.View) {
	if v.Image != nil {
		fmt.Fprintf(w, "Image:   %s (%s)\n", v.Image.URI, v.Image.FileType)
	} else {
		fmt.Fprintln(w, "Image:   none")
	}
	if v.Caption != "" {
		fmt.Fprintf(w, "Caption: %q\n", v.Caption)
	} else {
		fmt.Fprintln(w, "Caption: none")
	}

	switch {
	case v.Submitting:
		fmt.Fprintln(w, "Upload:  in progress")
	case v.CanUpload:
		fmt.Fprintln(w, "Upload:  ready")
	default:
		fmt.Fprintln(w, "Upload:  disabled")
	}
}

// wrap breaks s into lines of at most width runes on word boundaries. Words
// longer than width are kept whole. Explicit newlines are preserved.
func wrap(s string, width int) []string {
	if s == "" {
		return nil
	}
	if width < 1 {
		width = 1
	}

	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		cur := words[0]
		for _, word := range words[1:] {
			if len([]rune(cur))+1+len([]rune(word)) > width {
				lines = append(lines, cur)
				cur = word
				continue
			}
			cur += " " + word
		}
		lines = append(lines, cur)
	}
	return lines
}
