// Package logging is the structured logger every client package receives.
// Records go through log/slog; New fans them out to zerolog and Sentry.
package logging

import "context"

// Logger logs a message with key/value attributes, e.g.
//
//	log.Info(ctx, "feed loaded", "posts", len(posts), "seq", seq)
//
// The context is handed to the slog handlers, so trace data carried in it
// reaches Sentry.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With binds attributes to every record of the returned logger.
	With(args ...any) Logger
}
