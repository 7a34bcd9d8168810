// Package netx contains HTTP helpers used by the API client: multipart form
// encoding and extraction of server error messages.
package netx

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
)

// FormField is a text part.
type FormField struct {
	Name  string
	Value string
}

// FormFile is a binary part with its own filename and content type.
type FormFile struct {
	FieldName   string
	FileName    string
	ContentType string
	Content     io.Reader
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// EncodeMultipart writes the file part followed by the fields and returns the
// body together with its Content-Type (boundary included).
func EncodeMultipart(file FormFile, fields []FormField) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(file.FieldName), quoteEscaper.Replace(file.FileName)))
	h.Set("Content-Type", file.ContentType)

	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", fmt.Errorf("create part %s: %w", file.FieldName, err)
	}
	if _, err := io.Copy(part, file.Content); err != nil {
		return nil, "", fmt.Errorf("copy %s: %w", file.FieldName, err)
	}

	for _, f := range fields {
		if err := w.WriteField(f.Name, f.Value); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", f.Name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}
	return body, w.FormDataContentType(), nil
}

// ErrorMessage returns the "message" member of a JSON error body, or
// fallback when the body has none.
func ErrorMessage(body []byte, fallback string) string {
	var payload struct {
		Message any `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return fallback
	}
	msg, ok := payload.Message.(string)
	if !ok || strings.TrimSpace(msg) == "" {
		return fallback
	}
	return msg
}
