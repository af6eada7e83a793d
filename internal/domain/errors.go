package domain

import "errors"

// The three failure kinds the account service reports. Every operation error
// wraps exactly one of these; the HTTP layer translates them to status codes
// with errors.Is and never inspects messages.
var (
	// ErrBadRequest covers malformed input, missing credential or profile
	// fields, identity mismatches, and callers lacking admin privilege.
	ErrBadRequest = errors.New("bad request")

	// ErrNotAuthorized means the input was well-formed but the supplied
	// credentials did not match the stored ones.
	ErrNotAuthorized = errors.New("not authorized")

	// ErrNotFound means a referenced user, company, or membership does not
	// exist or is not visible in the current state (inactive users are not
	// resolvable by username).
	ErrNotFound = errors.New("not found")
)
