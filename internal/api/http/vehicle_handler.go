package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"frota-backend/internal/domain"
	"frota-backend/internal/service"
)

type vehicleHandler struct {
	vehicles service.VehicleService
}

func (h *vehicleHandler) list(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.vehicles.ListVehicles(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if vehicles == nil {
		vehicles = []domain.Vehicle{}
	}
	writeJSON(w, http.StatusOK, vehicles)
}

func (h *vehicleHandler) create(w http.ResponseWriter, r *http.Request) {
	var vehicle domain.Vehicle
	if err := decodeBody(r, &vehicle); err != nil {
		writeError(w, err)
		return
	}
	created, err := h.vehicles.CreateVehicle(r.Context(), &vehicle)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *vehicleHandler) get(w http.ResponseWriter, r *http.Request) {
	vehicle, err := h.vehicles.GetVehicle(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

func (h *vehicleHandler) update(w http.ResponseWriter, r *http.Request) {
	var vehicle domain.Vehicle
	if err := decodeBody(r, &vehicle); err != nil {
		writeError(w, err)
		return
	}
	vehicle.ID = mux.Vars(r)["id"]
	updated, err := h.vehicles.UpdateVehicle(r.Context(), &vehicle)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *vehicleHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.vehicles.DeleteVehicle(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *vehicleHandler) layout(w http.ResponseWriter, r *http.Request) {
	layout, err := h.vehicles.GetVehicleLayout(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, layout)
}
