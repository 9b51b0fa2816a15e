package common

import (
	"errors"
	"net/http"

	"campo-app-go/internal/domain/access"
	"campo-app-go/internal/domain/fields"
	"campo-app-go/internal/domain/identity"
	"campo-app-go/internal/domain/plots"
	"campo-app-go/internal/domain/records"
	"campo-app-go/pkg/logger"
)

type errorClass struct {
	target  error
	status  int
	code    string
	message string
}

// An empty message means the error text is sent as is.
var errorClasses = []errorClass{
	{identity.ErrNotLinked, http.StatusUnauthorized, "telegram_not_linked", "telegram not linked"},
	{identity.ErrInvalidCredentials, http.StatusUnauthorized, "invalid_credentials", ""},
	{identity.ErrRegistrationFailed, http.StatusBadRequest, "registration_failed", ""},
	{identity.ErrInvalidTelegramID, http.StatusBadRequest, "invalid_request", ""},
	{identity.ErrInvalidMode, http.StatusBadRequest, "invalid_request", ""},
	{identity.ErrMissingCredentials, http.StatusBadRequest, "invalid_request", ""},
	{access.ErrForbidden, http.StatusForbidden, "forbidden", "forbidden"},
	{access.ErrPlotNotFound, http.StatusNotFound, "plot_not_found", "plot not found"},
	{access.ErrCampaignNotFound, http.StatusNotFound, "campaign_not_found", "campaign not found"},
	{access.ErrRainfallNotFound, http.StatusNotFound, "rainfall_not_found", "rainfall record not found"},
	{access.ErrHarvestNotFound, http.StatusNotFound, "harvest_not_found", "harvest record not found"},
	{fields.ErrInvitationNotFound, http.StatusNotFound, "invitation_not_found", "invalid or expired code"},
	{fields.ErrNameRequired, http.StatusBadRequest, "invalid_request", ""},
	{fields.ErrCodeRequired, http.StatusBadRequest, "invalid_request", ""},
	{plots.ErrNameRequired, http.StatusBadRequest, "invalid_request", ""},
	{plots.ErrInvalidArea, http.StatusBadRequest, "invalid_request", ""},
	{records.ErrInvalidDate, http.StatusBadRequest, "invalid_request", ""},
	{records.ErrInvalidMillimeters, http.StatusBadRequest, "invalid_request", ""},
	{records.ErrInvalidYield, http.StatusBadRequest, "invalid_request", ""},
	{records.ErrInvalidMoisture, http.StatusBadRequest, "invalid_request", ""},
	{records.ErrUnitRequired, http.StatusBadRequest, "invalid_request", ""},
}

// WriteServiceError maps a service error onto the response envelope. Known
// outcomes are logged as business errors, everything else as internal.
func WriteServiceError(w http.ResponseWriter, log logger.Logger, op string, err error, args ...any) {
	for _, class := range errorClasses {
		if !errors.Is(err, class.target) {
			continue
		}
		message := class.message
		if message == "" {
			message = err.Error()
		}
		log.BusinessError(op, err, args...)
		writeError(w, class.status, class.code, message)
		return
	}

	log.InternalError(op, err, args...)
	writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
}

func WriteInvalidRequest(w http.ResponseWriter, message string) {
	writeError(w, http.StatusBadRequest, "invalid_request", message)
}
