package fields

import (
	"context"

	"campo-app-go/internal/domain/access"
)

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	CreateField(ctx context.Context, field *Field) error
	ListFieldsByUser(ctx context.Context, userID string) ([]UserField, error)
	AddMembership(ctx context.Context, member *access.Membership) error
	GetMembership(ctx context.Context, userID, fieldID string) (*access.Membership, error)
	ListMembers(ctx context.Context, fieldID string) ([]access.Membership, error)
	CreateInvitation(ctx context.Context, invitation *Invitation) error
	GetInvitationByCode(ctx context.Context, code string) (*Invitation, error)
	// DeleteInvitation returns the number of rows removed.
	DeleteInvitation(ctx context.Context, id string) (int64, error)
}

type Authorizer interface {
	AuthorizeField(ctx context.Context, userID, fieldID string, minRole access.Role) error
}
