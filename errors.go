package ionap

import "fmt"

// AuthError reports missing or placeholder credentials. It is returned
// before any network call is issued.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	return "authentication: " + e.Reason
}

// RemoteError reports a response status outside the 2xx range. The
// response body is carried as a [Payload] so the caller can render the
// status and body distinctly; the structured-or-raw decode rule applies
// to error bodies the same as to successful ones.
type RemoteError struct {
	StatusCode int
	Payload    Payload
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote returned %d: %s", e.StatusCode, e.Payload.String())
}

// UnsupportedOperationError reports a sub-resource kind the active
// dialect does not expose for the given direction. No network call is
// issued.
type UnsupportedOperationError struct {
	Dialect   string
	Direction Direction
	Kind      SubResourceKind
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("API %s does not support %s for %s transactions", e.Dialect, e.Kind, e.Direction)
}
