// Package api holds the response envelopes shared by every HTTP handler.
package api

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse acknowledges an operation with no resource body, such as DELETE.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse is returned by /login.
type TokenResponse struct {
	Token string `json:"token"`
}
