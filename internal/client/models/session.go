package models

// Phase is the position of a session in its lifecycle.
type Phase string

const (
	PhaseUninitialized Phase = "uninitialized"
	PhaseLoading       Phase = "loading"
	PhaseAuthenticated Phase = "authenticated"
	PhaseAnonymous     Phase = "anonymous"
)

// SessionState is an immutable snapshot of the session. IsLoading is true
// exactly when Phase is PhaseLoading. Error holds the message of the last
// failed operation and is cleared when a new operation starts.
type SessionState struct {
	Phase     Phase
	User      *User
	IsLoading bool
	Error     string
}

// IsAuthenticated reports whether a user is signed in.
func (s SessionState) IsAuthenticated() bool {
	return s.Phase == PhaseAuthenticated && s.User != nil
}
