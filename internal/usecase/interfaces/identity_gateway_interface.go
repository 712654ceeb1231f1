package interfaces

import "context"

// IIdentityGateway resolves back-office users.
//
// GetUserRole returns the role name of an active user, or "" when the user
// does not exist.
type IIdentityGateway interface {
	GetUserRole(ctx context.Context, userID string) (string, error)
}
