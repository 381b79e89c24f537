package logging

import "context"

type contextKey string

const (
	commandKey        contextKey = "command"
	notificationIDKey contextKey = "notification_id"
)

// WithCommand adds the running CLI command name to the context.
func WithCommand(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, commandKey, name)
}

// WithNotificationID adds a notification ID to the context.
func WithNotificationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, notificationIDKey, id)
}

// GetCommand retrieves the command name from the context.
// Returns empty string if not present.
func GetCommand(ctx context.Context) string {
	if name, ok := ctx.Value(commandKey).(string); ok {
		return name
	}
	return ""
}

// GetNotificationID retrieves the notification ID from the context.
// Returns empty string if not present.
func GetNotificationID(ctx context.Context) string {
	if id, ok := ctx.Value(notificationIDKey).(string); ok {
		return id
	}
	return ""
}
