package memory

import (
	"sync"

	"frota-backend/internal/domain"
)

// core holds every collection behind one mutex. The ledger lives in an
// append-only slice; seq is the same-date tiebreaker the other backends
// assign at insert time.
type core struct {
	mu           sync.RWMutex
	tires        map[string]domain.Tire
	movements    []domain.TireMovement
	vehicles     map[string]domain.Vehicle
	maintenances map[string]domain.Maintenance
	users        map[string]domain.User
	seq          int64

	batchErr error
}
