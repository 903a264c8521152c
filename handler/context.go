package handler

import (
	"context"
	"net/http"
)

// Type contextKey is a custom contextKey type, with the underlying type string.
// This is necessary to prevent name collisions with external packages.
type contextKey string

const requestIDContextKey = contextKey("requestID")

// contextSetRequestID returns a new copy of the request carrying id.
func (h *Handler) contextSetRequestID(r *http.Request, id string) *http.Request {
	ctx := context.WithValue(r.Context(), requestIDContextKey, id)
	return r.WithContext(ctx)
}

// contextGetRequestID returns the request id, or an empty string for requests
// that did not pass through logRequest.
func (h *Handler) contextGetRequestID(r *http.Request) string {
	id, _ := r.Context().Value(requestIDContextKey).(string)
	return id
}
