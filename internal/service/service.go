// Package service holds the business layer: the movement engine, the
// vehicle registry with its delete cascade, maintenance tracking and
// operator authentication. Services validate against current state and
// hand the storage layer fully computed write batches.
package service

import (
	"context"

	"frota-backend/internal/domain"
	"frota-backend/internal/repository"
)

type TireService interface {
	CreateTire(ctx context.Context, tire *domain.Tire) (*domain.Tire, error)
	GetTire(ctx context.Context, id string) (*domain.Tire, error)
	ListTires(ctx context.Context, filter repository.TireFilter) ([]domain.Tire, error)

	// UpdateTire edits descriptive attributes. Status and placement are
	// never writable here; a condition change is recorded as a
	// ConditionChange ledger entry instead of a silent overwrite.
	UpdateTire(ctx context.Context, tire *domain.Tire) (*domain.Tire, error)
	DeleteTire(ctx context.Context, id string) error

	// RequestMovement runs one movement through validation, the transition
	// table and the atomic dual write. Returns the tire's new state and
	// the appended ledger entry.
	RequestMovement(ctx context.Context, tireID string, req domain.MovementRequest) (*domain.Tire, *domain.TireMovement, error)
	ListMovements(ctx context.Context, filter domain.MovementFilter) ([]domain.TireMovement, error)

	// LowTreadTires lists mounted tires whose last measured tread depth is
	// at or below the threshold. Feeds the scheduled fleet check.
	LowTreadTires(ctx context.Context, thresholdMm float64) ([]domain.Tire, error)
}

// PositionSlot is one mounting slot of a vehicle's layout together with
// its occupant, if any.
type PositionSlot struct {
	Position domain.TirePosition `json:"position"`
	Label    string              `json:"label"`
	Spare    bool                `json:"spare"`
	Tire     *domain.Tire        `json:"tire,omitempty"`
}

// VehicleLayout is a vehicle's resolved axle layout populated with the
// tires currently mounted on it, plus the in-stock tires available to
// fill empty slots.
type VehicleLayout struct {
	Vehicle   domain.Vehicle    `json:"vehicle"`
	Layout    domain.AxleLayout `json:"layout"`
	Slots     []PositionSlot    `json:"slots"`
	Available []domain.Tire     `json:"available"`
}

type VehicleService interface {
	CreateVehicle(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error)
	GetVehicle(ctx context.Context, id string) (*domain.Vehicle, error)
	ListVehicles(ctx context.Context) ([]domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error)

	// DeleteVehicle dismounts every tire still on the vehicle (each with
	// its own Dismount ledger entry), drops the vehicle's maintenance
	// records and removes the vehicle, all in one atomic batch.
	DeleteVehicle(ctx context.Context, id string) error

	GetVehicleLayout(ctx context.Context, id string) (*VehicleLayout, error)
}

type MaintenanceService interface {
	CreateMaintenance(ctx context.Context, m *domain.Maintenance) (*domain.Maintenance, error)
	GetMaintenance(ctx context.Context, id string) (*domain.Maintenance, error)
	ListMaintenances(ctx context.Context, vehicleID string, status domain.MaintenanceStatus) ([]domain.Maintenance, error)
	UpdateMaintenance(ctx context.Context, m *domain.Maintenance) (*domain.Maintenance, error)
	DeleteMaintenance(ctx context.Context, id string) error

	// ActivateDue opens every SCHEDULED maintenance whose scheduled date
	// has arrived. Returns the activated records.
	ActivateDue(ctx context.Context, today string) ([]domain.Maintenance, error)
}

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

type EmailService interface {
	SendLowTreadAlert(ctx context.Context, to []string, tires []domain.Tire) error
}
