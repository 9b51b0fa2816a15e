package catalog

import (
	"net/http"

	catalogdomain "campo-app-go/internal/domain/catalog"
	fieldsdomain "campo-app-go/internal/domain/fields"
	commonhandler "campo-app-go/internal/transport/httpserver/handler/common"
	"golang.org/x/sync/errgroup"
)

type formFieldResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	IsOwner bool   `json:"is_owner"`
}

type harvestFormResponse struct {
	Fields []formFieldResponse `json:"fields"`
	Units  []unitResponse      `json:"units"`
}

type campaignFormResponse struct {
	Fields []formFieldResponse `json:"fields"`
	Crops  []cropResponse      `json:"crops"`
}

// HarvestForm loads the caller's fields and the harvest units in parallel.
func (h *Handlers) HarvestForm(w http.ResponseWriter, r *http.Request) {
	var req telegramRequest
	if !commonhandler.DecodeJSON(w, r, &req) {
		return
	}
	userID, ok := commonhandler.ResolveUser(w, r, h.Identity, h.log, "forms.harvest", req.TelegramID)
	if !ok {
		return
	}

	var (
		fields []fieldsdomain.UserField
		units  []catalogdomain.MeasurementUnit
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		fields, err = h.Fields.ListFields(ctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		units, err = h.Catalog.ListHarvestUnits(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		commonhandler.WriteServiceError(w, h.log, "forms.harvest: load failed", err, "user_id", userID)
		return
	}

	commonhandler.WriteJSON(w, http.StatusOK, harvestFormResponse{
		Fields: toFormFields(fields),
		Units:  toUnitResponses(units),
	})
}

// CampaignForm loads the caller's fields and the crop list in parallel.
func (h *Handlers) CampaignForm(w http.ResponseWriter, r *http.Request) {
	var req telegramRequest
	if !commonhandler.DecodeJSON(w, r, &req) {
		return
	}
	userID, ok := commonhandler.ResolveUser(w, r, h.Identity, h.log, "forms.campaign", req.TelegramID)
	if !ok {
		return
	}

	var (
		fields []fieldsdomain.UserField
		crops  []catalogdomain.CropType
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		fields, err = h.Fields.ListFields(ctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		crops, err = h.Catalog.ListCrops(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		commonhandler.WriteServiceError(w, h.log, "forms.campaign: load failed", err, "user_id", userID)
		return
	}

	commonhandler.WriteJSON(w, http.StatusOK, campaignFormResponse{
		Fields: toFormFields(fields),
		Crops:  toCropResponses(crops),
	})
}

func toFormFields(fields []fieldsdomain.UserField) []formFieldResponse {
	result := make([]formFieldResponse, 0, len(fields))
	for _, field := range fields {
		result = append(result, formFieldResponse{ID: field.ID, Name: field.Name, IsOwner: field.IsOwner()})
	}
	return result
}
