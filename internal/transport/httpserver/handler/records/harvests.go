package records

import (
	"net/http"
	"time"

	recordsdomain "campo-app-go/internal/domain/records"
	commonhandler "campo-app-go/internal/transport/httpserver/handler/common"
	"github.com/go-chi/chi/v5"
)

type createHarvestRequest struct {
	TelegramID commonhandler.FlexInt   `json:"telegram_id"`
	CampaignID string                  `json:"campaign_id"`
	Yield      commonhandler.FlexFloat `json:"yield"`
	UnitID     commonhandler.FlexInt   `json:"unit_id"`
	Moisture   commonhandler.FlexFloat `json:"moisture"`
}

type harvestResponse struct {
	ID           string    `json:"id"`
	CampaignID   string    `json:"campaign_id"`
	CampaignName string    `json:"campaign_name,omitempty"`
	PlotName     string    `json:"plot_name,omitempty"`
	FieldName    string    `json:"field_name,omitempty"`
	UnitID       int64     `json:"unit_id"`
	UnitName     string    `json:"unit_name,omitempty"`
	Yield        float64   `json:"yield"`
	Moisture     *float64  `json:"moisture"`
	CreatedAt    time.Time `json:"created_at"`
}

type campaignRefResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type harvestListResponse struct {
	Harvests []harvestResponse    `json:"harvests"`
	Campaign *campaignRefResponse `json:"campaign,omitempty"`
}

func (h *Handlers) CreateHarvest(w http.ResponseWriter, r *http.Request) {
	var req createHarvestRequest
	if !commonhandler.DecodeJSON(w, r, &req) {
		return
	}
	userID, ok := commonhandler.ResolveUser(w, r, h.Identity, h.log, "harvests.create", req.TelegramID)
	if !ok {
		return
	}
	if !req.Yield.Set {
		commonhandler.WriteInvalidRequest(w, "yield is required")
		return
	}

	record, err := h.Records.CreateHarvest(r.Context(), userID, recordsdomain.CreateHarvestInput{
		CampaignID: req.CampaignID,
		Yield:      req.Yield.Value,
		UnitID:     req.UnitID.Value,
		Moisture:   req.Moisture.Ptr(),
	})
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, "harvests.create: create failed", err, "user_id", userID, "campaign_id", req.CampaignID)
		return
	}

	commonhandler.WriteJSON(w, http.StatusCreated, createdResponse{Success: true, ID: record.ID})
}

// ListHarvests takes telegram_id and an optional campaign_id from the query.
func (h *Handlers) ListHarvests(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	telegramID, err := commonhandler.ParseQueryInt(query.Get("telegram_id"))
	if err != nil {
		commonhandler.WriteInvalidRequest(w, "invalid telegram_id")
		return
	}
	userID, ok := commonhandler.ResolveUser(w, r, h.Identity, h.log, "harvests.list", telegramID)
	if !ok {
		return
	}

	campaignID := query.Get("campaign_id")
	list, err := h.Records.ListHarvests(r.Context(), userID, campaignID)
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, "harvests.list: list failed", err, "user_id", userID, "campaign_id", campaignID)
		return
	}

	resp := harvestListResponse{Harvests: make([]harvestResponse, 0, len(list.Harvests))}
	for _, view := range list.Harvests {
		resp.Harvests = append(resp.Harvests, harvestResponse{
			ID:           view.ID,
			CampaignID:   view.CampaignID,
			CampaignName: view.CampaignName,
			PlotName:     view.PlotName,
			FieldName:    view.FieldName,
			UnitID:       view.UnitID,
			UnitName:     view.UnitName,
			Yield:        view.Yield,
			Moisture:     view.Moisture,
			CreatedAt:    view.CreatedAt,
		})
	}
	if list.Campaign != nil {
		resp.Campaign = &campaignRefResponse{ID: list.Campaign.ID, Name: list.Campaign.Name}
	}
	commonhandler.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handlers) DeleteHarvest(w http.ResponseWriter, r *http.Request) {
	telegramID, err := commonhandler.ParseQueryInt(r.URL.Query().Get("telegram_id"))
	if err != nil {
		commonhandler.WriteInvalidRequest(w, "invalid telegram_id")
		return
	}
	userID, ok := commonhandler.ResolveUser(w, r, h.Identity, h.log, "harvests.delete", telegramID)
	if !ok {
		return
	}

	recordID := chi.URLParam(r, "id")
	if err := h.Records.DeleteHarvest(r.Context(), userID, recordID); err != nil {
		commonhandler.WriteServiceError(w, h.log, "harvests.delete: delete failed", err, "user_id", userID, "record_id", recordID)
		return
	}

	commonhandler.WriteSuccess(w)
}
