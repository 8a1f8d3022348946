package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	domaincrimping "crimpqc/internal/domain/crimping"
	"crimpqc/internal/ports"
	"crimpqc/internal/usecase/crimping"
)

type toolUpdateRequest struct {
	ToolNo string `json:"toolNo"`
}

type auditRequest struct {
	Status      int                        `json:"status"`
	AuditorName string                     `json:"auditorName"`
	AuditNote   *string                    `json:"auditNote"`
	Samples     []crimping.SampleOverwrite `json:"samples"`
}

func (a *API) handleListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := a.crimping.ListOrders(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (a *API) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := a.crimping.GetOrder(r.Context(), chi.URLParam(r, "orderID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (a *API) handleListOrdersByCreator(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employeeId")

	includeClosed := true
	if raw := r.URL.Query().Get("includeClosed"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid includeClosed value")
			return
		}
		includeClosed = parsed
	}

	orders, err := a.crimping.ListOrdersByCreator(r.Context(), employeeID, includeClosed)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (a *API) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var order ports.ProductionOrder
	if !decodeJSON(w, r, &order) {
		return
	}

	created, err := a.crimping.CreateOrder(r.Context(), order)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/orders/"+created.ID)
	writeJSON(w, http.StatusCreated, created)
}

func (a *API) handleUpdateOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "orderID")

	var order ports.ProductionOrder
	if !decodeJSON(w, r, &order) {
		return
	}
	if order.ID != "" && order.ID != id {
		writeError(w, r, domaincrimping.ErrOrderIDMismatch)
		return
	}

	if err := a.crimping.UpdateOrder(r.Context(), id, order); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleDeleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := a.crimping.DeleteOrder(r.Context(), chi.URLParam(r, "orderID")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleToggleClose(w http.ResponseWriter, r *http.Request) {
	var isClosed bool
	if !decodeJSON(w, r, &isClosed) {
		return
	}

	if err := a.crimping.ToggleClose(r.Context(), chi.URLParam(r, "orderID"), isClosed); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleUpdateTool(w http.ResponseWriter, r *http.Request) {
	var req toolUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := a.crimping.UpdateToolNo(r.Context(), chi.URLParam(r, "orderID"), req.ToolNo); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleAddRecord(w http.ResponseWriter, r *http.Request) {
	var record ports.InspectionRecord
	if !decodeJSON(w, r, &record) {
		return
	}

	created, err := a.crimping.AddRecord(r.Context(), chi.URLParam(r, "orderID"), record)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (a *API) handleAuditRecord(w http.ResponseWriter, r *http.Request) {
	var req auditRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	err := a.crimping.AuditRecord(r.Context(), chi.URLParam(r, "recordID"), crimping.AuditRecordInput{
		Status:      req.Status,
		AuditorName: req.AuditorName,
		AuditNote:   req.AuditNote,
		Samples:     req.Samples,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleDeleteRecord(w http.ResponseWriter, r *http.Request) {
	if err := a.crimping.DeleteRecord(r.Context(), chi.URLParam(r, "recordID")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
