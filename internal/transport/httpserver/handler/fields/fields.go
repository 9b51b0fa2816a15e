package fields

import (
	"net/http"
	"time"

	commonhandler "campo-app-go/internal/transport/httpserver/handler/common"
)

type telegramRequest struct {
	TelegramID commonhandler.FlexInt `json:"telegram_id"`
}

type createFieldRequest struct {
	TelegramID commonhandler.FlexInt `json:"telegram_id"`
	Name       string                `json:"name"`
}

type fieldRequest struct {
	TelegramID commonhandler.FlexInt `json:"telegram_id"`
	FieldID    string                `json:"field_id"`
}

type joinRequest struct {
	TelegramID commonhandler.FlexInt `json:"telegram_id"`
	Code       string                `json:"code"`
}

type fieldResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	IsOwner bool   `json:"is_owner"`
}

type fieldListResponse struct {
	Fields []fieldResponse `json:"fields"`
}

type createFieldResponse struct {
	Success bool   `json:"success"`
	FieldID string `json:"field_id"`
}

type joinResponse struct {
	Success bool   `json:"success"`
	FieldID string `json:"field_id"`
	Message string `json:"message,omitempty"`
}

type memberResponse struct {
	UserID   string    `json:"user_id"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

type memberListResponse struct {
	Members []memberResponse `json:"members"`
}

type invitationResponse struct {
	Code string `json:"code"`
}

func (h *Handlers) ListFields(w http.ResponseWriter, r *http.Request) {
	var req telegramRequest
	if !commonhandler.DecodeJSON(w, r, &req) {
		return
	}
	userID, ok := commonhandler.ResolveUser(w, r, h.Identity, h.log, "fields.list", req.TelegramID)
	if !ok {
		return
	}

	fields, err := h.Fields.ListFields(r.Context(), userID)
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, "fields.list: list failed", err, "user_id", userID)
		return
	}

	resp := fieldListResponse{Fields: make([]fieldResponse, 0, len(fields))}
	for _, field := range fields {
		resp.Fields = append(resp.Fields, fieldResponse{ID: field.ID, Name: field.Name, IsOwner: field.IsOwner()})
	}
	commonhandler.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handlers) CreateField(w http.ResponseWriter, r *http.Request) {
	var req createFieldRequest
	if !commonhandler.DecodeJSON(w, r, &req) {
		return
	}
	userID, ok := commonhandler.ResolveUser(w, r, h.Identity, h.log, "fields.create", req.TelegramID)
	if !ok {
		return
	}

	field, err := h.Fields.CreateField(r.Context(), userID, req.Name)
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, "fields.create: create failed", err, "user_id", userID)
		return
	}

	commonhandler.WriteJSON(w, http.StatusCreated, createFieldResponse{Success: true, FieldID: field.ID})
}

func (h *Handlers) JoinField(w http.ResponseWriter, r *http.Request) {
	var req joinRequest
	if !commonhandler.DecodeJSON(w, r, &req) {
		return
	}
	userID, ok := commonhandler.ResolveUser(w, r, h.Identity, h.log, "fields.join", req.TelegramID)
	if !ok {
		return
	}

	result, err := h.Fields.RedeemInvitation(r.Context(), userID, req.Code)
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, "fields.join: redeem failed", err, "user_id", userID)
		return
	}

	resp := joinResponse{Success: true, FieldID: result.FieldID}
	if result.AlreadyMember {
		resp.Message = "already a member of this field"
	}
	commonhandler.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handlers) ListMembers(w http.ResponseWriter, r *http.Request) {
	var req fieldRequest
	if !commonhandler.DecodeJSON(w, r, &req) {
		return
	}
	userID, ok := commonhandler.ResolveUser(w, r, h.Identity, h.log, "fields.members", req.TelegramID)
	if !ok {
		return
	}

	members, err := h.Fields.ListMembers(r.Context(), userID, req.FieldID)
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, "fields.members: list failed", err, "user_id", userID, "field_id", req.FieldID)
		return
	}

	resp := memberListResponse{Members: make([]memberResponse, 0, len(members))}
	for _, member := range members {
		resp.Members = append(resp.Members, memberResponse{
			UserID:   member.UserID,
			Role:     member.Role.String(),
			JoinedAt: member.CreatedAt,
		})
	}
	commonhandler.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handlers) CreateInvitation(w http.ResponseWriter, r *http.Request) {
	var req fieldRequest
	if !commonhandler.DecodeJSON(w, r, &req) {
		return
	}
	userID, ok := commonhandler.ResolveUser(w, r, h.Identity, h.log, "invitations.create", req.TelegramID)
	if !ok {
		return
	}

	invitation, err := h.Fields.GenerateInvitation(r.Context(), userID, req.FieldID)
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, "invitations.create: generate failed", err, "user_id", userID, "field_id", req.FieldID)
		return
	}

	h.log.Info("invitations.create: generated", "user_id", userID, "field_id", req.FieldID)
	commonhandler.WriteJSON(w, http.StatusOK, invitationResponse{Code: invitation.Code})
}
