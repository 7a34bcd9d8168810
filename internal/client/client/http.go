package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/dmitrijs2005/capcheck/internal/client/models"
	"github.com/dmitrijs2005/capcheck/internal/common"
	"github.com/dmitrijs2005/capcheck/internal/filex"
	"github.com/dmitrijs2005/capcheck/internal/logging"
	"github.com/dmitrijs2005/capcheck/internal/netx"
)

const maxResponseBody = 8 << 20

// HTTPClient talks to the service over HTTPS. It never retries.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient validates baseURL. A nil hc means a default http.Client with
// no timeout of its own.
func NewHTTPClient(baseURL string, hc *http.Client, log logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be an absolute http(s) url", baseURL)
	}
	if hc == nil {
		hc = &http.Client{}
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
		log:     log.With("component", "api"),
	}, nil
}

func (c *HTTPClient) endpoint(path string) string {
	return c.baseURL + path
}

type feedResponse struct {
	UserPhotos *[]json.RawMessage `json:"userphotos"`
}

// FetchPhotos returns the whole feed in server order. Records that fail
// validation are dropped and logged.
func (c *HTTPClient) FetchPhotos(ctx context.Context) ([]models.Post, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(common.UserPhotosPath), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFeedLoad, err)
	}
	req.Header.Set("Accept", "application/json")
	if id, ok := IdentityFrom(ctx); ok {
		req.Header.Set(common.IdentityHeaderName, id)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFeedLoad, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBody))
		return nil, fmt.Errorf("%w: %s", ErrFeedLoad, resp.Status)
	}

	var fr feedResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBody)).Decode(&fr); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrFeedLoad, err)
	}
	if fr.UserPhotos == nil {
		return nil, fmt.Errorf("%w: response has no userphotos", ErrFeedLoad)
	}

	posts := make([]models.Post, 0, len(*fr.UserPhotos))
	for i, raw := range *fr.UserPhotos {
		var p models.Post
		if err := json.Unmarshal(raw, &p); err != nil {
			c.log.Warn(ctx, "dropping malformed post", "index", i, "error", err)
			continue
		}
		if err := p.Validate(); err != nil {
			c.log.Warn(ctx, "dropping invalid post", "index", i, "error", err)
			continue
		}
		posts = append(posts, p)
	}
	return posts, nil
}

// UploadPhoto posts payload as multipart/form-data. Every failure is an
// *UploadError.
func (c *HTTPClient) UploadPhoto(ctx context.Context, payload models.SubmissionPayload) error {
	path, err := filex.LocalPath(payload.Photo.URI)
	if err != nil {
		return &UploadError{Kind: UploadLocal, Message: "could not read the selected image", Err: err}
	}
	f, err := os.Open(path)
	if err != nil {
		return &UploadError{Kind: UploadLocal, Message: "could not read the selected image", Err: err}
	}
	defer f.Close()

	fields := make([]netx.FormField, 0, 5)
	for _, fld := range payload.Fields() {
		fields = append(fields, netx.FormField{Name: fld.Name, Value: fld.Value})
	}

	body, contentType, err := netx.EncodeMultipart(netx.FormFile{
		FieldName:   "photo",
		FileName:    payload.Photo.FileName,
		ContentType: payload.Photo.ContentType,
		Content:     f,
	}, fields)
	if err != nil {
		return &UploadError{Kind: UploadLocal, Message: "could not read the selected image", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(common.UserPhotosPath), body)
	if err != nil {
		return &UploadError{Kind: UploadNetwork, Message: DefaultUploadMessage, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", contentType)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "upload transport error", "error", err)
		return &UploadError{Kind: UploadNetwork, Message: "Upload failed. Please try again.", Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return &UploadError{Kind: UploadNetwork, Status: resp.StatusCode, Message: "Upload failed. Please try again.", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := netx.ErrorMessage(respBody, DefaultUploadMessage)
		c.log.Warn(ctx, "upload rejected", "status", resp.StatusCode, "message", msg)
		return &UploadError{
			Kind:    UploadRejected,
			Status:  resp.StatusCode,
			Message: msg,
			Err:     fmt.Errorf("server responded %s", resp.Status),
		}
	}

	if len(strings.TrimSpace(string(respBody))) > 0 && !json.Valid(respBody) {
		return &UploadError{
			Kind:    UploadNetwork,
			Status:  resp.StatusCode,
			Message: "malformed response from server",
			Err:     errors.New("response body is not JSON"),
		}
	}

	c.log.Info(ctx, "photo uploaded", "status", resp.StatusCode, "file", payload.Photo.FileName)
	return nil
}

// Ping reports whether the service answers at all; any HTTP status counts.
func (c *HTTPClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	_ = resp.Body.Close()
	return nil
}
