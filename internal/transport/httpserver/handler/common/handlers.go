package common

import (
	"net/http"
	"strings"

	identitydomain "campo-app-go/internal/domain/identity"
	"campo-app-go/pkg/logger"
)

type Handlers struct {
	Identity *identitydomain.Service
	log      logger.Logger
}

func New(identity *identitydomain.Service, log logger.Logger) *Handlers {
	return &Handlers{
		Identity: identity,
		log:      log,
	}
}

type healthResponse struct {
	Status string `json:"status"`
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

type authRequest struct {
	TelegramID FlexInt `json:"telegram_id"`
	Email      string  `json:"email"`
	Password   string  `json:"password"`
	Action     string  `json:"action"`
}

type authResponse struct {
	Success bool   `json:"success"`
	UserID  string `json:"user_id"`
}

// Auth signs in or registers and links the chat identity to the account.
func (h *Handlers) Auth(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	userID, err := h.Identity.Link(r.Context(), identitydomain.LinkInput{
		TelegramID: req.TelegramID.Value,
		Email:      req.Email,
		Password:   req.Password,
		Mode:       identitydomain.Mode(strings.TrimSpace(req.Action)),
	})
	if err != nil {
		WriteServiceError(w, h.log, "telegram.auth: link failed", err, "telegram_id", req.TelegramID.Value, "action", req.Action)
		return
	}

	h.log.Info("telegram.auth: linked", "telegram_id", req.TelegramID.Value, "user_id", userID)
	writeJSON(w, http.StatusOK, authResponse{Success: true, UserID: userID})
}

type checkRequest struct {
	TelegramID FlexInt `json:"telegram_id"`
}

type checkResponse struct {
	Registered bool    `json:"registered"`
	UserID     *string `json:"user_id"`
}

// Check reports whether the chat identity is linked. Lookup failures are
// logged and answered as unregistered.
func (h *Handlers) Check(w http.ResponseWriter, r *http.Request) {
	var req checkRequest
	if err := decodeJSON(r, &req); err != nil || !req.TelegramID.Set || req.TelegramID.Value == 0 {
		writeJSON(w, http.StatusOK, checkResponse{})
		return
	}

	userID, linked, err := h.Identity.Check(r.Context(), req.TelegramID.Value)
	if err != nil {
		h.log.InternalError("telegram.check: lookup failed", err, "telegram_id", req.TelegramID.Value)
		writeJSON(w, http.StatusOK, checkResponse{})
		return
	}
	if !linked {
		writeJSON(w, http.StatusOK, checkResponse{})
		return
	}
	writeJSON(w, http.StatusOK, checkResponse{Registered: true, UserID: &userID})
}
