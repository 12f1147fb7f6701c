// Package logging is the structured logger used by the server and the client.
package logging

import "context"

// Logger writes leveled records. Trailing args are key/value pairs:
//
//	log.Info(ctx, "contact created", "user_id", uid, "contact_id", id)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a logger that prefixes every record with args.
	With(args ...any) Logger
}
