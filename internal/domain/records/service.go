package records

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"campo-app-go/internal/domain/access"
	"github.com/google/uuid"
)

type Service struct {
	repo  Repository
	authz Authorizer
	now   func() time.Time
}

func NewService(repo Repository, authz Authorizer) *Service {
	return &Service{
		repo:  repo,
		authz: authz,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) CreateRainfall(ctx context.Context, userID string, input CreateRainfallInput) (*Rainfall, error) {
	if input.ObservedAt.IsZero() {
		return nil, ErrInvalidDate
	}
	if !validMagnitude(input.Millimeters) {
		return nil, ErrInvalidMillimeters
	}
	if err := s.authz.AuthorizeField(ctx, userID, input.FieldID, access.RoleMember); err != nil {
		return nil, err
	}

	record := Rainfall{
		ID:          uuid.NewString(),
		FieldID:     input.FieldID,
		Millimeters: input.Millimeters,
		ObservedAt:  input.ObservedAt.UTC(),
	}
	if err := s.repo.CreateRainfall(ctx, &record); err != nil {
		return nil, fmt.Errorf("create rainfall: %w", err)
	}
	return &record, nil
}

// CreateHarvest stamps the record with the server clock. A zero or absent
// moisture reading is stored as NULL.
func (s *Service) CreateHarvest(ctx context.Context, userID string, input CreateHarvestInput) (*Harvest, error) {
	if !validMagnitude(input.Yield) {
		return nil, ErrInvalidYield
	}
	if input.UnitID <= 0 {
		return nil, ErrUnitRequired
	}
	var moisture *float64
	if input.Moisture != nil && *input.Moisture != 0 {
		value := *input.Moisture
		if !validMagnitude(value) || value > 100 {
			return nil, ErrInvalidMoisture
		}
		moisture = &value
	}
	if _, err := s.authz.AuthorizeCampaign(ctx, userID, input.CampaignID); err != nil {
		return nil, err
	}

	record := Harvest{
		ID:         uuid.NewString(),
		CampaignID: input.CampaignID,
		UnitID:     input.UnitID,
		Yield:      input.Yield,
		Moisture:   moisture,
		CreatedAt:  s.now(),
	}
	if err := s.repo.CreateHarvest(ctx, &record); err != nil {
		return nil, fmt.Errorf("create harvest: %w", err)
	}
	return &record, nil
}

func (s *Service) DeleteRainfall(ctx context.Context, userID, recordID string) error {
	if _, err := s.authz.AuthorizeRainfall(ctx, userID, recordID); err != nil {
		return err
	}
	return s.repo.DeleteRainfall(ctx, recordID)
}

func (s *Service) DeleteHarvest(ctx context.Context, userID, recordID string) error {
	if _, err := s.authz.AuthorizeHarvest(ctx, userID, recordID); err != nil {
		return err
	}
	return s.repo.DeleteHarvest(ctx, recordID)
}

// ListRainfall returns the newest records of one field, or of every field
// the account belongs to when fieldID is empty.
func (s *Service) ListRainfall(ctx context.Context, userID, fieldID string) ([]RainfallView, error) {
	fieldID = strings.TrimSpace(fieldID)
	if fieldID != "" {
		if err := s.authz.AuthorizeField(ctx, userID, fieldID, access.RoleMember); err != nil {
			return nil, err
		}
		return s.repo.ListRainfallByFields(ctx, []string{fieldID}, ListLimit)
	}

	fieldIDs, err := s.authz.ListFieldIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(fieldIDs) == 0 {
		return []RainfallView{}, nil
	}
	return s.repo.ListRainfallByFields(ctx, fieldIDs, ListLimit)
}

// ListHarvests walks fields → plots → campaigns when no campaign is given,
// stopping at the first empty level.
func (s *Service) ListHarvests(ctx context.Context, userID, campaignID string) (HarvestList, error) {
	campaignID = strings.TrimSpace(campaignID)
	if campaignID != "" {
		if _, err := s.authz.AuthorizeCampaign(ctx, userID, campaignID); err != nil {
			return HarvestList{}, err
		}
		campaign, err := s.repo.GetCampaignRef(ctx, campaignID)
		if err != nil {
			return HarvestList{}, err
		}
		harvests, err := s.repo.ListHarvestsByCampaigns(ctx, []string{campaignID}, ListLimit)
		if err != nil {
			return HarvestList{}, err
		}
		return HarvestList{Harvests: harvests, Campaign: campaign}, nil
	}

	empty := HarvestList{Harvests: []HarvestView{}}

	fieldIDs, err := s.authz.ListFieldIDs(ctx, userID)
	if err != nil {
		return HarvestList{}, err
	}
	if len(fieldIDs) == 0 {
		return empty, nil
	}

	plotIDs, err := s.repo.ListPlotIDsByFields(ctx, fieldIDs)
	if err != nil {
		return HarvestList{}, err
	}
	if len(plotIDs) == 0 {
		return empty, nil
	}

	campaignIDs, err := s.repo.ListCampaignIDsByPlots(ctx, plotIDs)
	if err != nil {
		return HarvestList{}, err
	}
	if len(campaignIDs) == 0 {
		return empty, nil
	}

	harvests, err := s.repo.ListHarvestsByCampaigns(ctx, campaignIDs, ListLimit)
	if err != nil {
		return HarvestList{}, err
	}
	return HarvestList{Harvests: harvests}, nil
}

func validMagnitude(value float64) bool {
	return value >= 0 && !math.IsNaN(value) && !math.IsInf(value, 0)
}
