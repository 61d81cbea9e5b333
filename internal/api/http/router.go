// Package http exposes the fleet services as a JSON API under /api/v1.
package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"frota-backend/internal/security"
	"frota-backend/internal/service"
)

// Services bundles the business services the API depends on.
type Services struct {
	Tire        service.TireService
	Vehicle     service.VehicleService
	Maintenance service.MaintenanceService
	Auth        service.AuthService
}

// NewRouter wires every route. Auth endpoints are public; everything else
// requires a bearer token.
func NewRouter(services *Services, tokens security.TokenManager) *mux.Router {
	router := mux.NewRouter()
	router.Use(loggingMiddleware)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()

	authHandler := &authHandler{auth: services.Auth}
	api.HandleFunc("/auth/register", authHandler.register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.login).Methods(http.MethodPost)

	protected := api.NewRoute().Subrouter()
	protected.Use(authMiddleware(tokens))

	tires := &tireHandler{tires: services.Tire}
	protected.HandleFunc("/tires", tires.list).Methods(http.MethodGet)
	protected.HandleFunc("/tires", tires.create).Methods(http.MethodPost)
	protected.HandleFunc("/tires/{id}", tires.get).Methods(http.MethodGet)
	protected.HandleFunc("/tires/{id}", tires.update).Methods(http.MethodPut)
	protected.HandleFunc("/tires/{id}", tires.delete).Methods(http.MethodDelete)
	protected.HandleFunc("/tires/{id}/movements", tires.listMovements).Methods(http.MethodGet)
	protected.HandleFunc("/tires/{id}/movements", tires.requestMovement).Methods(http.MethodPost)
	protected.HandleFunc("/movements", tires.listAllMovements).Methods(http.MethodGet)

	vehicles := &vehicleHandler{vehicles: services.Vehicle}
	protected.HandleFunc("/vehicles", vehicles.list).Methods(http.MethodGet)
	protected.HandleFunc("/vehicles", vehicles.create).Methods(http.MethodPost)
	protected.HandleFunc("/vehicles/{id}", vehicles.get).Methods(http.MethodGet)
	protected.HandleFunc("/vehicles/{id}", vehicles.update).Methods(http.MethodPut)
	protected.HandleFunc("/vehicles/{id}", vehicles.delete).Methods(http.MethodDelete)
	protected.HandleFunc("/vehicles/{id}/layout", vehicles.layout).Methods(http.MethodGet)

	maintenances := &maintenanceHandler{maintenances: services.Maintenance}
	protected.HandleFunc("/maintenances", maintenances.list).Methods(http.MethodGet)
	protected.HandleFunc("/maintenances", maintenances.create).Methods(http.MethodPost)
	protected.HandleFunc("/maintenances/{id}", maintenances.get).Methods(http.MethodGet)
	protected.HandleFunc("/maintenances/{id}", maintenances.update).Methods(http.MethodPut)
	protected.HandleFunc("/maintenances/{id}", maintenances.delete).Methods(http.MethodDelete)

	return router
}
