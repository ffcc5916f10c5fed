package logging

import "context"

type contextKey string

const (
	documentKey  contextKey = "document"
	operationKey contextKey = "operation"
)

// WithDocument adds a document name to the context.
func WithDocument(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, documentKey, name)
}

// WithOperation adds a storage operation name (save, load, list) to the context.
func WithOperation(ctx context.Context, op string) context.Context {
	return context.WithValue(ctx, operationKey, op)
}

// GetDocument retrieves the document name from the context.
// Returns empty string if not present.
func GetDocument(ctx context.Context) string {
	if name, ok := ctx.Value(documentKey).(string); ok {
		return name
	}
	return ""
}

// GetOperation retrieves the operation name from the context.
// Returns empty string if not present.
func GetOperation(ctx context.Context) string {
	if op, ok := ctx.Value(operationKey).(string); ok {
		return op
	}
	return ""
}
