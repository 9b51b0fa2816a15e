package plots

import (
	"net/http"
	"time"

	commonhandler "campo-app-go/internal/transport/httpserver/handler/common"
)

type listPlotsRequest struct {
	TelegramID commonhandler.FlexInt `json:"telegram_id"`
	FieldID    string                `json:"field_id"`
}

type createPlotRequest struct {
	TelegramID commonhandler.FlexInt   `json:"telegram_id"`
	FieldID    string                  `json:"field_id"`
	Name       string                  `json:"name"`
	Area       commonhandler.FlexFloat `json:"ha"`
}

type listCampaignsRequest struct {
	TelegramID commonhandler.FlexInt `json:"telegram_id"`
	PlotID     string                `json:"plot_id"`
}

type createCampaignRequest struct {
	TelegramID commonhandler.FlexInt `json:"telegram_id"`
	PlotID     string                `json:"plot_id"`
	Name       string                `json:"name"`
}

type plotResponse struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Area float64 `json:"ha"`
}

type plotListResponse struct {
	Plots []plotResponse `json:"plots"`
}

type createPlotResponse struct {
	Success bool   `json:"success"`
	PlotID  string `json:"plot_id"`
}

type campaignResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type campaignListResponse struct {
	Campaigns []campaignResponse `json:"campaigns"`
}

type createCampaignResponse struct {
	Success    bool   `json:"success"`
	CampaignID string `json:"campaign_id"`
}

func (h *Handlers) ListPlots(w http.ResponseWriter, r *http.Request) {
	var req listPlotsRequest
	if !commonhandler.DecodeJSON(w, r, &req) {
		return
	}
	userID, ok := commonhandler.ResolveUser(w, r, h.Identity, h.log, "plots.list", req.TelegramID)
	if !ok {
		return
	}

	plots, err := h.Plots.ListPlots(r.Context(), userID, req.FieldID)
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, "plots.list: list failed", err, "user_id", userID, "field_id", req.FieldID)
		return
	}

	resp := plotListResponse{Plots: make([]plotResponse, 0, len(plots))}
	for _, plot := range plots {
		resp.Plots = append(resp.Plots, plotResponse{ID: plot.ID, Name: plot.Name, Area: plot.Area})
	}
	commonhandler.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handlers) CreatePlot(w http.ResponseWriter, r *http.Request) {
	var req createPlotRequest
	if !commonhandler.DecodeJSON(w, r, &req) {
		return
	}
	userID, ok := commonhandler.ResolveUser(w, r, h.Identity, h.log, "plots.create", req.TelegramID)
	if !ok {
		return
	}

	plot, err := h.Plots.CreatePlot(r.Context(), userID, req.FieldID, req.Name, req.Area.Value)
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, "plots.create: create failed", err, "user_id", userID, "field_id", req.FieldID)
		return
	}

	commonhandler.WriteJSON(w, http.StatusCreated, createPlotResponse{Success: true, PlotID: plot.ID})
}

// ListCampaigns returns the plot's campaigns newest season first.
func (h *Handlers) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	var req listCampaignsRequest
	if !commonhandler.DecodeJSON(w, r, &req) {
		return
	}
	userID, ok := commonhandler.ResolveUser(w, r, h.Identity, h.log, "campaigns.list", req.TelegramID)
	if !ok {
		return
	}

	campaigns, err := h.Plots.ListCampaigns(r.Context(), userID, req.PlotID)
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, "campaigns.list: list failed", err, "user_id", userID, "plot_id", req.PlotID)
		return
	}

	resp := campaignListResponse{Campaigns: make([]campaignResponse, 0, len(campaigns))}
	for _, campaign := range campaigns {
		resp.Campaigns = append(resp.Campaigns, campaignResponse{ID: campaign.ID, Name: campaign.Name, CreatedAt: campaign.CreatedAt})
	}
	commonhandler.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handlers) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if !commonhandler.DecodeJSON(w, r, &req) {
		return
	}
	userID, ok := commonhandler.ResolveUser(w, r, h.Identity, h.log, "campaigns.create", req.TelegramID)
	if !ok {
		return
	}

	campaign, err := h.Plots.CreateCampaign(r.Context(), userID, req.PlotID, req.Name)
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, "campaigns.create: create failed", err, "user_id", userID, "plot_id", req.PlotID)
		return
	}

	commonhandler.WriteJSON(w, http.StatusCreated, createCampaignResponse{Success: true, CampaignID: campaign.ID})
}
