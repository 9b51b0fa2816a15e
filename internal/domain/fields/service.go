package fields

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"campo-app-go/internal/domain/access"
	"github.com/google/uuid"
)

type Service struct {
	repo  Repository
	authz Authorizer
}

func NewService(repo Repository, authz Authorizer) *Service {
	return &Service{repo: repo, authz: authz}
}

// CreateField inserts the field and the creator's owner membership together.
func (s *Service) CreateField(ctx context.Context, userID, name string) (*Field, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	field := Field{ID: uuid.NewString(), Name: name}
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		if err := tx.CreateField(ctx, &field); err != nil {
			return fmt.Errorf("create field: %w", err)
		}

		member := access.Membership{
			ID:      uuid.NewString(),
			UserID:  userID,
			FieldID: field.ID,
			Role:    access.RoleOwner,
		}
		if err := tx.AddMembership(ctx, &member); err != nil {
			return fmt.Errorf("add owner: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &field, nil
}

func (s *Service) ListFields(ctx context.Context, userID string) ([]UserField, error) {
	return s.repo.ListFieldsByUser(ctx, userID)
}

func (s *Service) ListMembers(ctx context.Context, userID, fieldID string) ([]access.Membership, error) {
	if err := s.authz.AuthorizeField(ctx, userID, fieldID, access.RoleOwner); err != nil {
		return nil, err
	}
	return s.repo.ListMembers(ctx, fieldID)
}

// GenerateInvitation mints a join code for a field the caller owns. Codes are
// not checked for collisions.
func (s *Service) GenerateInvitation(ctx context.Context, userID, fieldID string) (*Invitation, error) {
	if err := s.authz.AuthorizeField(ctx, userID, fieldID, access.RoleOwner); err != nil {
		return nil, err
	}

	code, err := generateCode(invitationCodeLength)
	if err != nil {
		return nil, fmt.Errorf("generate code: %w", err)
	}

	invitation := Invitation{ID: uuid.NewString(), Code: code, FieldID: fieldID}
	if err := s.repo.CreateInvitation(ctx, &invitation); err != nil {
		return nil, fmt.Errorf("create invitation: %w", err)
	}
	return &invitation, nil
}

// RedeemInvitation joins the caller to the code's field as a member and burns
// the code. Redeeming into a field the caller already belongs to burns the
// code and succeeds. The membership insert and the delete share a
// transaction, so a failed insert keeps the code, and of two concurrent
// redemptions only the one whose delete removes the row commits.
func (s *Service) RedeemInvitation(ctx context.Context, userID, code string) (RedeemResult, error) {
	code = normalizeCode(code)
	if code == "" {
		return RedeemResult{}, ErrCodeRequired
	}

	var result RedeemResult
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		invitation, err := tx.GetInvitationByCode(ctx, code)
		if err != nil {
			return err
		}
		result.FieldID = invitation.FieldID

		_, err = tx.GetMembership(ctx, userID, invitation.FieldID)
		switch {
		case err == nil:
			result.AlreadyMember = true
		case errors.Is(err, access.ErrMembershipNotFound):
			member := access.Membership{
				ID:      uuid.NewString(),
				UserID:  userID,
				FieldID: invitation.FieldID,
				Role:    access.RoleMember,
			}
			if err := tx.AddMembership(ctx, &member); err != nil {
				return fmt.Errorf("add member: %w", err)
			}
		default:
			return err
		}

		deleted, err := tx.DeleteInvitation(ctx, invitation.ID)
		if err != nil {
			return fmt.Errorf("delete invitation: %w", err)
		}
		if deleted == 0 {
			return ErrInvitationNotFound
		}
		return nil
	})
	if err != nil {
		return RedeemResult{}, err
	}

	return result, nil
}
