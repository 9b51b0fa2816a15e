package plots

import (
	"context"
	"fmt"
	"math"
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

func (s *Service) ListPlots(ctx context.Context, userID, fieldID string) ([]Plot, error) {
	if err := s.authz.AuthorizeField(ctx, userID, fieldID, access.RoleMember); err != nil {
		return nil, err
	}
	return s.repo.ListPlotsByField(ctx, fieldID)
}

func (s *Service) CreatePlot(ctx context.Context, userID, fieldID, name string, area float64) (*Plot, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if area < 0 || math.IsNaN(area) || math.IsInf(area, 0) {
		return nil, ErrInvalidArea
	}
	if err := s.authz.AuthorizeField(ctx, userID, fieldID, access.RoleMember); err != nil {
		return nil, err
	}

	plot := Plot{ID: uuid.NewString(), FieldID: fieldID, Name: name, Area: area}
	if err := s.repo.CreatePlot(ctx, &plot); err != nil {
		return nil, fmt.Errorf("create plot: %w", err)
	}
	return &plot, nil
}

func (s *Service) ListCampaigns(ctx context.Context, userID, plotID string) ([]Campaign, error) {
	if _, err := s.authz.AuthorizePlot(ctx, userID, plotID); err != nil {
		return nil, err
	}

	campaigns, err := s.repo.ListCampaignsByPlot(ctx, plotID)
	if err != nil {
		return nil, err
	}
	SortCampaigns(campaigns)
	return campaigns, nil
}

func (s *Service) CreateCampaign(ctx context.Context, userID, plotID, name string) (*Campaign, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if _, err := s.authz.AuthorizePlot(ctx, userID, plotID); err != nil {
		return nil, err
	}

	campaign := Campaign{ID: uuid.NewString(), PlotID: plotID, Name: name}
	if err := s.repo.CreateCampaign(ctx, &campaign); err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}
	return &campaign, nil
}
