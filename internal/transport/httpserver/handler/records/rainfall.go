package records

import (
	"net/http"
	"time"

	recordsdomain "campo-app-go/internal/domain/records"
	commonhandler "campo-app-go/internal/transport/httpserver/handler/common"
	"github.com/go-chi/chi/v5"
)

type createRainfallRequest struct {
	TelegramID  commonhandler.FlexInt   `json:"telegram_id"`
	FieldID     string                  `json:"field_id"`
	Date        string                  `json:"date"`
	Millimeters commonhandler.FlexFloat `json:"mm"`
}

type rainfallResponse struct {
	ID          string    `json:"id"`
	FieldID     string    `json:"field_id"`
	FieldName   string    `json:"field_name,omitempty"`
	Millimeters float64   `json:"mm"`
	Date        time.Time `json:"date"`
}

type rainfallListResponse struct {
	Rainfall []rainfallResponse `json:"rainfall"`
}

type createdResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

func (h *Handlers) CreateRainfall(w http.ResponseWriter, r *http.Request) {
	var req createRainfallRequest
	if !commonhandler.DecodeJSON(w, r, &req) {
		return
	}
	userID, ok := commonhandler.ResolveUser(w, r, h.Identity, h.log, "rainfall.create", req.TelegramID)
	if !ok {
		return
	}

	observedAt, err := commonhandler.ParseTimestamp(req.Date)
	if err != nil {
		commonhandler.WriteInvalidRequest(w, "invalid date")
		return
	}
	if !req.Millimeters.Set {
		commonhandler.WriteInvalidRequest(w, "mm is required")
		return
	}

	record, err := h.Records.CreateRainfall(r.Context(), userID, recordsdomain.CreateRainfallInput{
		FieldID:     req.FieldID,
		ObservedAt:  observedAt,
		Millimeters: req.Millimeters.Value,
	})
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, "rainfall.create: create failed", err, "user_id", userID, "field_id", req.FieldID)
		return
	}

	commonhandler.WriteJSON(w, http.StatusCreated, createdResponse{Success: true, ID: record.ID})
}

// ListRainfall takes telegram_id and an optional field_id from the query.
func (h *Handlers) ListRainfall(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	telegramID, err := commonhandler.ParseQueryInt(query.Get("telegram_id"))
	if err != nil {
		commonhandler.WriteInvalidRequest(w, "invalid telegram_id")
		return
	}
	userID, ok := commonhandler.ResolveUser(w, r, h.Identity, h.log, "rainfall.list", telegramID)
	if !ok {
		return
	}

	fieldID := query.Get("field_id")
	views, err := h.Records.ListRainfall(r.Context(), userID, fieldID)
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, "rainfall.list: list failed", err, "user_id", userID, "field_id", fieldID)
		return
	}

	resp := rainfallListResponse{Rainfall: make([]rainfallResponse, 0, len(views))}
	for _, view := range views {
		resp.Rainfall = append(resp.Rainfall, rainfallResponse{
			ID:          view.ID,
			FieldID:     view.FieldID,
			FieldName:   view.FieldName,
			Millimeters: view.Millimeters,
			Date:        view.ObservedAt,
		})
	}
	commonhandler.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handlers) DeleteRainfall(w http.ResponseWriter, r *http.Request) {
	telegramID, err := commonhandler.ParseQueryInt(r.URL.Query().Get("telegram_id"))
	if err != nil {
		commonhandler.WriteInvalidRequest(w, "invalid telegram_id")
		return
	}
	userID, ok := commonhandler.ResolveUser(w, r, h.Identity, h.log, "rainfall.delete", telegramID)
	if !ok {
		return
	}

	recordID := chi.URLParam(r, "id")
	if err := h.Records.DeleteRainfall(r.Context(), userID, recordID); err != nil {
		commonhandler.WriteServiceError(w, h.log, "rainfall.delete: delete failed", err, "user_id", userID, "record_id", recordID)
		return
	}

	commonhandler.WriteSuccess(w)
}
