package httpapi

import "net/http"

func (a *API) handleListTerminals(w http.ResponseWriter, r *http.Request) {
	items, err := a.crimping.ListTerminals(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (a *API) handleListWires(w http.ResponseWriter, r *http.Request) {
	items, err := a.crimping.ListWires(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (a *API) handleListTools(w http.ResponseWriter, r *http.Request) {
	items, err := a.crimping.ListTools(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (a *API) handleListStandards(w http.ResponseWriter, r *http.Request) {
	items, err := a.crimping.ListStandards(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}
