package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"frota-backend/internal/domain"
	"frota-backend/internal/repository"
	"frota-backend/internal/service"
)

type tireHandler struct {
	tires service.TireService
}

func (h *tireHandler) list(w http.ResponseWriter, r *http.Request) {
	filter := repository.TireFilter{
		Status:    domain.TireStatus(r.URL.Query().Get("status")),
		VehicleID: r.URL.Query().Get("vehicle_id"),
	}
	tires, err := h.tires.ListTires(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	if tires == nil {
		tires = []domain.Tire{}
	}
	writeJSON(w, http.StatusOK, tires)
}

func (h *tireHandler) create(w http.ResponseWriter, r *http.Request) {
	var tire domain.Tire
	if err := decodeBody(r, &tire); err != nil {
		writeError(w, err)
		return
	}
	created, err := h.tires.CreateTire(r.Context(), &tire)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *tireHandler) get(w http.ResponseWriter, r *http.Request) {
	tire, err := h.tires.GetTire(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tire)
}

func (h *tireHandler) update(w http.ResponseWriter, r *http.Request) {
	var tire domain.Tire
	if err := decodeBody(r, &tire); err != nil {
		writeError(w, err)
		return
	}
	tire.ID = mux.Vars(r)["id"]
	updated, err := h.tires.UpdateTire(r.Context(), &tire)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *tireHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.tires.DeleteTire(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// movementResult pairs the tire's new state with the appended ledger entry.
type movementResult struct {
	Tire     *domain.Tire         `json:"tire"`
	Movement *domain.TireMovement `json:"movement"`
}

func (h *tireHandler) requestMovement(w http.ResponseWriter, r *http.Request) {
	var req domain.MovementRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	tire, movement, err := h.tires.RequestMovement(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, movementResult{Tire: tire, Movement: movement})
}

func (h *tireHandler) listMovements(w http.ResponseWriter, r *http.Request) {
	h.writeMovements(w, r, domain.MovementFilter{TireID: mux.Vars(r)["id"]})
}

func (h *tireHandler) listAllMovements(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	h.writeMovements(w, r, domain.MovementFilter{
		TireID:    q.Get("tire_id"),
		VehicleID: q.Get("vehicle_id"),
		Type:      domain.MovementType(q.Get("type")),
		DateFrom:  q.Get("from"),
		DateTo:    q.Get("to"),
	})
}

func (h *tireHandler) writeMovements(w http.ResponseWriter, r *http.Request, filter domain.MovementFilter) {
	movements, err := h.tires.ListMovements(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	if movements == nil {
		movements = []domain.TireMovement{}
	}
	writeJSON(w, http.StatusOK, movements)
}
