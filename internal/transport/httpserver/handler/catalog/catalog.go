package catalog

import (
	"net/http"

	catalogdomain "campo-app-go/internal/domain/catalog"
	commonhandler "campo-app-go/internal/transport/httpserver/handler/common"
)

type telegramRequest struct {
	TelegramID commonhandler.FlexInt `json:"telegram_id"`
}

type unitsRequest struct {
	TelegramID commonhandler.FlexInt `json:"telegram_id"`
	UnitTypeID commonhandler.FlexInt `json:"unit_type_id"`
}

type unitResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	UnitTypeID *int64 `json:"unit_type_id"`
}

type cropResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type unitListResponse struct {
	Units []unitResponse `json:"units"`
}

type cropListResponse struct {
	Crops []cropResponse `json:"crops"`
}

func (h *Handlers) ListCrops(w http.ResponseWriter, r *http.Request) {
	var req telegramRequest
	if !commonhandler.DecodeJSON(w, r, &req) {
		return
	}
	if _, ok := commonhandler.ResolveUser(w, r, h.Identity, h.log, "crops.list", req.TelegramID); !ok {
		return
	}

	crops, err := h.Catalog.ListCrops(r.Context())
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, "crops.list: list failed", err)
		return
	}
	commonhandler.WriteJSON(w, http.StatusOK, cropListResponse{Crops: toCropResponses(crops)})
}

func (h *Handlers) ListUnits(w http.ResponseWriter, r *http.Request) {
	var req unitsRequest
	if !commonhandler.DecodeJSON(w, r, &req) {
		return
	}
	if _, ok := commonhandler.ResolveUser(w, r, h.Identity, h.log, "units.list", req.TelegramID); !ok {
		return
	}

	units, err := h.Catalog.ListUnits(r.Context(), req.UnitTypeID.Ptr())
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, "units.list: list failed", err)
		return
	}
	commonhandler.WriteJSON(w, http.StatusOK, unitListResponse{Units: toUnitResponses(units)})
}

func toUnitResponses(units []catalogdomain.MeasurementUnit) []unitResponse {
	result := make([]unitResponse, 0, len(units))
	for _, unit := range units {
		result = append(result, unitResponse{ID: unit.ID, Name: unit.Name, UnitTypeID: unit.UnitTypeID})
	}
	return result
}

func toCropResponses(crops []catalogdomain.CropType) []cropResponse {
	result := make([]cropResponse, 0, len(crops))
	for _, crop := range crops {
		result = append(result, cropResponse{ID: crop.ID, Name: crop.Name})
	}
	return result
}
