package httpapi

import (
	"net/http"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type checkTokenRequest struct {
	EmployeeID string `json:"employeeId"`
	Token      string `json:"token"`
}

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := a.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (a *API) handleCheckToken(w http.ResponseWriter, r *http.Request) {
	var req checkTokenRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := a.auth.ValidateToken(r.Context(), req.EmployeeID, req.Token)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (a *API) handleListUsers(w http.ResponseWriter, r *http.Request) {
	summaries, err := a.auth.ListUserSummaries(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}
