package wardrobe

import (
	"encoding/json"
	"fmt"
)

// APIError is a non-2xx response from the backend. Message carries the
// server's own message when one was supplied, otherwise "HTTP {status}".
// All endpoints, including the multipart upload path, normalize their
// HTTP failures to this one kind.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string { return e.Message }

// DecodeError is a 2xx response whose body did not decode into the
// expected shape. Kept distinct from APIError so callers can tell a
// misbehaving server from a refusing one.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: malformed response: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// newAPIError extracts the server's message from an error body. The
// backend emits {"message": ...} on most routes and {"error": ...} on
// a few older ones; either counts. An absent or unparseable body falls
// back to the bare status.
func newAPIError(statusCode int, body []byte) *APIError {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	msg := ""
	if err := json.Unmarshal(body, &payload); err == nil {
		msg = payload.Message
		if msg == "" {
			msg = payload.Error
		}
	}
	if msg == "" {
		msg = fmt.Sprintf("HTTP %d", statusCode)
	}
	return &APIError{StatusCode: statusCode, Message: msg}
}
