package client

import (
	"context"

	"github.com/dmitrijs2005/capcheck/internal/client/models"
)

//go:generate mockgen -destination=mocks/client_mock.go -package=mocks . Client

type Client interface {
	FetchPhotos(ctx context.Context) ([]models.Post, error)
	UploadPhoto(ctx context.Context, payload models.SubmissionPayload) error
	Ping(ctx context.Context) error
}
