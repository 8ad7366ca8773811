package contextutil

import "context"

type requestIDKey struct{}

// WithRequestID anexa o request id ao contexto
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// GetRequestID retorna o request id do contexto, ou "" se ausente
func GetRequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey{}).(string); ok {
		return rid
	}
	return ""
}
