package access

import (
	"context"
	"errors"
	"strings"
)

// Service is the single place where an account is checked against a field,
// directly or through the plot/campaign/record that belongs to it.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) AuthorizeField(ctx context.Context, userID, fieldID string, minRole Role) error {
	userID = strings.TrimSpace(userID)
	fieldID = strings.TrimSpace(fieldID)
	if userID == "" || fieldID == "" {
		return ErrForbidden
	}

	member, err := s.repo.GetMembership(ctx, userID, fieldID)
	if err != nil {
		if errors.Is(err, ErrMembershipNotFound) {
			return ErrForbidden
		}
		return err
	}
	if !member.Role.Satisfies(minRole) {
		return ErrForbidden
	}
	return nil
}

// RoleIn returns the caller's role in a field, or ErrForbidden.
func (s *Service) RoleIn(ctx context.Context, userID, fieldID string) (Role, error) {
	member, err := s.repo.GetMembership(ctx, userID, fieldID)
	if err != nil {
		if errors.Is(err, ErrMembershipNotFound) {
			return 0, ErrForbidden
		}
		return 0, err
	}
	return member.Role, nil
}

func (s *Service) AuthorizePlot(ctx context.Context, userID, plotID string) (string, error) {
	return s.authorizeVia(ctx, userID, plotID, ErrPlotNotFound, s.repo.GetPlotFieldID)
}

func (s *Service) AuthorizeCampaign(ctx context.Context, userID, campaignID string) (string, error) {
	return s.authorizeVia(ctx, userID, campaignID, ErrCampaignNotFound, s.repo.GetCampaignFieldID)
}

func (s *Service) AuthorizeRainfall(ctx context.Context, userID, recordID string) (string, error) {
	return s.authorizeVia(ctx, userID, recordID, ErrRainfallNotFound, s.repo.GetRainfallFieldID)
}

func (s *Service) AuthorizeHarvest(ctx context.Context, userID, recordID string) (string, error) {
	return s.authorizeVia(ctx, userID, recordID, ErrHarvestNotFound, s.repo.GetHarvestFieldID)
}

func (s *Service) ListFieldIDs(ctx context.Context, userID string) ([]string, error) {
	return s.repo.ListFieldIDsByUser(ctx, userID)
}

func (s *Service) authorizeVia(
	ctx context.Context,
	userID, entityID string,
	notFound error,
	resolve func(context.Context, string) (string, error),
) (string, error) {
	entityID = strings.TrimSpace(entityID)
	if entityID == "" {
		return "", notFound
	}

	fieldID, err := resolve(ctx, entityID)
	if err != nil {
		return "", err
	}
	if err := s.AuthorizeField(ctx, userID, fieldID, RoleMember); err != nil {
		return "", err
	}
	return fieldID, nil
}
