package identity

import "context"

type Repository interface {
	GetUserID(ctx context.Context, telegramID int64) (string, error)
	UpsertConnection(ctx context.Context, conn *Connection) error
}

// Authenticator verifies credentials against the external auth provider and
// returns the account id. It never touches telegram_connections.
type Authenticator interface {
	SignIn(ctx context.Context, email, password string) (string, error)
	SignUp(ctx context.Context, email, password string) (string, error)
}
