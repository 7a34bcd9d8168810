package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidPost = errors.New("invalid post")

// FlexString is a scalar the feed may encode as a JSON string or number
// (ids, coordinates). It is kept in its textual form.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("value must be a string or number: %w", err)
	}
	*f = FlexString(n.String())
	return nil
}

// Post is one community submission as returned by the feed.
type Post struct {
	ID         FlexString `json:"id"`
	UserID     FlexString `json:"user_id"`
	PhotoURL   string     `json:"photo_url"`
	Caption    string     `json:"caption"`
	Latitude   FlexString `json:"latitude"`
	Longitude  FlexString `json:"longitude"`
	MushroomID FlexString `json:"mushroom_id"`
	CreatedAt  string     `json:"created_at"`
}

// Validate checks the fields rendering relies on.
func (p Post) Validate() error {
	var missing []string
	if p.ID == "" {
		missing = append(missing, "id")
	}
	if p.UserID == "" {
		missing = append(missing, "user_id")
	}
	if strings.TrimSpace(p.PhotoURL) == "" {
		missing = append(missing, "photo_url")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidPost, strings.Join(missing, ", "))
	}
	return nil
}
