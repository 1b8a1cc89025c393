package ports

import "context"

// UserDirectory confirms that a user exists in the identity service.
type UserDirectory interface {
	// Verify returns nil when the user exists, an ObjectNotFoundError when the
	// identity service does not know them and an UpstreamError when the check failed.
	Verify(ctx context.Context, userID string) error
}
