package plots

import (
	"context"
	"errors"
	"sort"
	"testing"

	"campo-app-go/internal/domain/access"
)

type fakePlotsRepo struct {
	plots     map[string]*Plot
	campaigns map[string]*Campaign
	createErr error
}

func newFakePlotsRepo() *fakePlotsRepo {
	return &fakePlotsRepo{
		plots:     make(map[string]*Plot),
		campaigns: make(map[string]*Campaign),
	}
}

func (r *fakePlotsRepo) ListPlotsByField(ctx context.Context, fieldID string) ([]Plot, error) {
	var result []Plot
	for _, plot := range r.plots {
		if plot.FieldID == fieldID {
			result = append(result, *plot)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *fakePlotsRepo) CreatePlot(ctx context.Context, plot *Plot) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.plots[plot.ID] = plot
	return nil
}

func (r *fakePlotsRepo) ListCampaignsByPlot(ctx context.Context, plotID string) ([]Campaign, error) {
	var result []Campaign
	for _, campaign := range r.campaigns {
		if campaign.PlotID == plotID {
			result = append(result, *campaign)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *fakePlotsRepo) CreateCampaign(ctx context.Context, campaign *Campaign) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.campaigns[campaign.ID] = campaign
	return nil
}

type fakeAuthorizer struct {
	repo    *fakePlotsRepo
	members map[string]string // userID -> fieldID
}

func (a fakeAuthorizer) AuthorizeField(ctx context.Context, userID, fieldID string, minRole access.Role) error {
	if a.members[userID] != fieldID {
		return access.ErrForbidden
	}
	return nil
}

func (a fakeAuthorizer) AuthorizePlot(ctx context.Context, userID, plotID string) (string, error) {
	plot, ok := a.repo.plots[plotID]
	if !ok {
		return "", access.ErrPlotNotFound
	}
	if err := a.AuthorizeField(ctx, userID, plot.FieldID, access.RoleMember); err != nil {
		return "", err
	}
	return plot.FieldID, nil
}

func newTestService() (*Service, *fakePlotsRepo) {
	repo := newFakePlotsRepo()
	authz := fakeAuthorizer{repo: repo, members: map[string]string{"user-1": "field-1", "user-2": "field-2"}}
	return NewService(repo, authz), repo
}

func TestListPlotsAuthorized(t *testing.T) {
	svc, repo := newTestService()
	repo.plots["p2"] = &Plot{ID: "p2", FieldID: "field-1", Name: "Lote B", Area: 10}
	repo.plots["p1"] = &Plot{ID: "p1", FieldID: "field-1", Name: "Lote A", Area: 20.5}
	repo.plots["p3"] = &Plot{ID: "p3", FieldID: "field-2", Name: "Other"}

	result, err := svc.ListPlots(context.Background(), "user-1", "field-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(result) != 2 || result[0].Name != "Lote A" || result[1].Name != "Lote B" {
		t.Fatalf("unexpected plots %+v", result)
	}
}

func TestListPlotsForbidden(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.ListPlots(context.Background(), "user-2", "field-1"); !errors.Is(err, access.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestCreatePlot(t *testing.T) {
	svc, repo := newTestService()

	plot, err := svc.CreatePlot(context.Background(), "user-1", "field-1", " Lote 1 ", 35.5)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if plot.Name != "Lote 1" || plot.Area != 35.5 || plot.FieldID != "field-1" {
		t.Fatalf("unexpected plot %+v", plot)
	}
	if _, ok := repo.plots[plot.ID]; !ok {
		t.Fatalf("expected plot stored")
	}

	if _, err := svc.CreatePlot(context.Background(), "user-2", "field-1", "X", 1); !errors.Is(err, access.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := svc.CreatePlot(context.Background(), "user-1", "field-1", "X", -1); !errors.Is(err, ErrInvalidArea) {
		t.Fatalf("expected ErrInvalidArea, got %v", err)
	}
	if _, err := svc.CreatePlot(context.Background(), "user-1", "field-1", "", 1); !errors.Is(err, ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
}

func TestCreateCampaignChecksPlot(t *testing.T) {
	svc, repo := newTestService()
	repo.plots["p1"] = &Plot{ID: "p1", FieldID: "field-1", Name: "Lote A"}

	campaign, err := svc.CreateCampaign(context.Background(), "user-1", "p1", "Soja 24/25")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if campaign.PlotID != "p1" {
		t.Fatalf("expected plot p1, got %s", campaign.PlotID)
	}

	if _, err := svc.CreateCampaign(context.Background(), "user-1", "missing", "Soja 24/25"); !errors.Is(err, access.ErrPlotNotFound) {
		t.Fatalf("expected ErrPlotNotFound, got %v", err)
	}
	if _, err := svc.CreateCampaign(context.Background(), "user-2", "p1", "Soja 24/25"); !errors.Is(err, access.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if len(repo.campaigns) != 1 {
		t.Fatalf("expected exactly one campaign stored, got %d", len(repo.campaigns))
	}
}

func TestListCampaignsSorted(t *testing.T) {
	svc, repo := newTestService()
	repo.plots["p1"] = &Plot{ID: "p1", FieldID: "field-1", Name: "Lote A"}
	repo.campaigns["a"] = &Campaign{ID: "a", PlotID: "p1", Name: "Soja 24/25"}
	repo.campaigns["b"] = &Campaign{ID: "b", PlotID: "p1", Name: "Maíz 26/27"}
	repo.campaigns["c"] = &Campaign{ID: "c", PlotID: "p1", Name: "Trigo"}

	result, err := svc.ListCampaigns(context.Background(), "user-1", "p1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	got := names(result)
	want := []string{"Maíz 26/27", "Soja 24/25", "Trigo"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}

	if _, err := svc.ListCampaigns(context.Background(), "user-2", "p1"); !errors.Is(err, access.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
