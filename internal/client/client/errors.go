package client

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable = errors.New("server unavailable")
	ErrFeedLoad    = errors.New("feed load failed")
)

// DefaultUploadMessage is shown when the server gives no reason.
const DefaultUploadMessage = "upload failed"

// UploadKind tells why an upload failed.
type UploadKind int

const (
	// UploadRejected: the server answered with a non-2xx status.
	UploadRejected UploadKind = iota + 1
	// UploadNetwork: no usable answer (transport error, timeout, malformed body).
	UploadNetwork
	// UploadLocal: the photo could not be read from the device.
	UploadLocal
)

func (k UploadKind) String() string {
	switch k {
	case UploadRejected:
		return "rejected"
	case UploadNetwork:
		return "network"
	case UploadLocal:
		return "local"
	default:
		return fmt.Sprintf("UploadKind(%d)", int(k))
	}
}

// UploadError is the only error UploadPhoto returns. Error() is the message
// meant for the user.
type UploadError struct {
	Kind    UploadKind
	Status  int
	Message string
	Err     error
}

func (e *UploadError) Error() string {
	return e.Message
}

func (e *UploadError) Unwrap() error {
	return e.Err
}
