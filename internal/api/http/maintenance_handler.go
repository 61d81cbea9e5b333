package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"frota-backend/internal/domain"
	"frota-backend/internal/service"
)

type maintenanceHandler struct {
	maintenances service.MaintenanceService
}

func (h *maintenanceHandler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	records, err := h.maintenances.ListMaintenances(r.Context(),
		q.Get("vehicle_id"), domain.MaintenanceStatus(q.Get("status")))
	if err != nil {
		writeError(w, err)
		return
	}
	if records == nil {
		records = []domain.Maintenance{}
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *maintenanceHandler) create(w http.ResponseWriter, r *http.Request) {
	var m domain.Maintenance
	if err := decodeBody(r, &m); err != nil {
		writeError(w, err)
		return
	}
	created, err := h.maintenances.CreateMaintenance(r.Context(), &m)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *maintenanceHandler) get(w http.ResponseWriter, r *http.Request) {
	m, err := h.maintenances.GetMaintenance(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (h *maintenanceHandler) update(w http.ResponseWriter, r *http.Request) {
	var m domain.Maintenance
	if err := decodeBody(r, &m); err != nil {
		writeError(w, err)
		return
	}
	m.ID = mux.Vars(r)["id"]
	updated, err := h.maintenances.UpdateMaintenance(r.Context(), &m)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *maintenanceHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.maintenances.DeleteMaintenance(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
