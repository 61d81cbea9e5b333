package repository

import (
	"context"

	"frota-backend/internal/domain"
)

// TireFilter narrows tire listings.
type TireFilter struct {
	Status    domain.TireStatus
	VehicleID string
}

// TireRepository owns tire current-state records and every write path that
// touches the movement ledger. The ledger has no standalone append: a
// movement can only be persisted together with the tire state it describes,
// so the transition engine cannot apply one half of the dual write.
type TireRepository interface {
	// Create persists a new tire and its synthesized StockIn movement as
	// one atomic unit.
	Create(ctx context.Context, tire *domain.Tire, stockIn *domain.TireMovement) error
	GetByID(ctx context.Context, id string) (*domain.Tire, error)
	List(ctx context.Context, filter TireFilter) ([]domain.Tire, error)

	// Update writes attribute edits that carry no movement (brand, notes,
	// dimensions and the like).
	Update(ctx context.Context, tire *domain.Tire) error

	// ApplyMovement persists the tire's full new state (lifecycle fields
	// and any attribute edits riding along) and appends its ledger entry
	// atomically. For Mount movements the target position's occupancy is
	// re-validated inside the same transaction; a slot taken since the
	// caller's pre-check fails the whole batch with PositionOccupiedError.
	ApplyMovement(ctx context.Context, tire *domain.Tire, movement *domain.TireMovement) error

	// DeleteWithMovements removes the tire and cascades deletion of its
	// entire movement history in one atomic unit.
	DeleteWithMovements(ctx context.Context, id string) error
}

// MovementRepository is the read side of the ledger. Ordering is always
// date descending, then insertion sequence descending for same-date ties.
type MovementRepository interface {
	List(ctx context.Context, filter domain.MovementFilter) ([]domain.TireMovement, error)
}

// VehicleRepository is the vehicle registry.
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) error
	GetByID(ctx context.Context, id string) (*domain.Vehicle, error)
	List(ctx context.Context) ([]domain.Vehicle, error)
	Update(ctx context.Context, vehicle *domain.Vehicle) error

	// DeleteCascade removes the vehicle, applies the already-computed
	// dismounts (tire states paired one-to-one with synthesized Dismount
	// movements) and drops the vehicle's maintenance records, all within
	// a single atomic batch.
	DeleteCascade(ctx context.Context, vehicleID string, dismounted []domain.Tire, movements []domain.TireMovement) error
}

type MaintenanceRepository interface {
	Create(ctx context.Context, m *domain.Maintenance) error
	GetByID(ctx context.Context, id string) (*domain.Maintenance, error)
	List(ctx context.Context, vehicleID string, status domain.MaintenanceStatus) ([]domain.Maintenance, error)
	Update(ctx context.Context, m *domain.Maintenance) error
	Delete(ctx context.Context, id string) error
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Store bundles one backend's repositories. Each backend package returns a
// fully wired Store.
type Store struct {
	Tires        TireRepository
	Movements    MovementRepository
	Vehicles     VehicleRepository
	Maintenances MaintenanceRepository
	Users        UserRepository
}
