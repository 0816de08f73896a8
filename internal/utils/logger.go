package utils

import (
	"context"
	"log"
	"strings"
)

type requestIDKey struct{}

// WithRequestID carries the request id down to services that log.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func RequestIDFrom(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

const maxLogMessage = 512

var logMessageReplacer = strings.NewReplacer("\r", " ", "\n", " ", "\t", " ")

// LogEvent prints one line tagged with module, action and request id.
// Messages are flattened to a single line and truncated.
func LogEvent(requestID, module, action, message string) {
	log.Printf("[%s] action=%s request_id=%s msg=%s",
		strings.ToUpper(strings.TrimSpace(module)),
		action,
		strings.TrimSpace(requestID),
		FlattenLogMessage(message),
	)
}

func FlattenLogMessage(msg string) string {
	msg = strings.TrimSpace(logMessageReplacer.Replace(msg))
	if len(msg) > maxLogMessage {
		msg = msg[:maxLogMessage] + "..."
	}
	return msg
}
