package ports

import "context"

// LoginThrottle bounds repeated failed logins per email address.
type LoginThrottle interface {
	// Allow reports whether another attempt is permitted right now.
	Allow(ctx context.Context, email string) (bool, error)
	// RecordFailure notes a failed attempt against the email.
	RecordFailure(ctx context.Context, email string) error
	// Reset clears the failure count after a successful login.
	Reset(ctx context.Context, email string) error
}
