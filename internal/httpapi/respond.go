package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"crimpqc/internal/bootstrap/logging"
	domaincrimping "crimpqc/internal/domain/crimping"
	"crimpqc/internal/errs"
	"crimpqc/internal/usecase/auth"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"message": msg})
}

// writeError maps domain failures to status codes. Unexpected errors are
// logged with full detail and answered with a generic body so internals
// never leak to clients.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domaincrimping.ErrOrderNotFound),
		errors.Is(err, domaincrimping.ErrRecordNotFound):
		writeMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domaincrimping.ErrOrderClosed),
		errors.Is(err, domaincrimping.ErrOrderHasPassed):
		writeMessage(w, http.StatusConflict, err.Error())
	case errors.Is(err, domaincrimping.ErrOrderIDMismatch),
		errors.Is(err, domaincrimping.ErrOrderIDRequired),
		errors.Is(err, domaincrimping.ErrOrderNoRequired),
		errors.Is(err, domaincrimping.ErrRecordIDRequired),
		errors.Is(err, domaincrimping.ErrToolNoRequired),
		errors.Is(err, domaincrimping.ErrAuditorRequired),
		errors.Is(err, domaincrimping.ErrInvalidAuditState):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, auth.ErrUnauthenticated):
		writeMessage(w, http.StatusUnauthorized, err.Error())
	default:
		logging.Error(r.Context(), "request failed", slog.Any("err", errs.Loggable(err)))
		writeMessage(w, http.StatusInternalServerError, "internal error")
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
