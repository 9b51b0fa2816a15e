package common

import (
	"context"
	"net/http"

	identitydomain "campo-app-go/internal/domain/identity"
	"campo-app-go/pkg/logger"
)

type UserResolver interface {
	Resolve(ctx context.Context, telegramID int64) (string, error)
}

// ResolveUser turns the request's telegram id into an account id, writing the
// failure response when it cannot.
func ResolveUser(w http.ResponseWriter, r *http.Request, users UserResolver, log logger.Logger, op string, telegramID FlexInt) (string, bool) {
	if !telegramID.Set || telegramID.Value == 0 {
		WriteInvalidRequest(w, "telegram_id is required")
		return "", false
	}

	userID, err := users.Resolve(r.Context(), telegramID.Value)
	if err != nil {
		WriteServiceError(w, log, op+": resolve telegram", err, "telegram_id", telegramID.Value)
		return "", false
	}
	return userID, true
}

var _ UserResolver = (*identitydomain.Service)(nil)
