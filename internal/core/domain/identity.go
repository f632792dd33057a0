package domain

// Identity is the verified actor behind a bearer token. It is derived per
// request from the auth service and never persisted by this process.
type Identity struct {
	ID       string
	Email    string
	Metadata map[string]any
}
