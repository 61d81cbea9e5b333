// Package memory is a mutex-guarded in-process store. It backs the
// "memory" database driver for local development and gives tests a store
// with real atomic-batch semantics, including injectable batch failure.
package memory

import (
	"time"

	"frota-backend/internal/domain"
	"frota-backend/internal/repository"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// NewStore wires every repository around one shared core so multi-document
// batches are serialized the same way the real backends serialize
// transactions.
func NewStore() *Store {
	c := &core{
		tires:        make(map[string]domain.Tire),
		vehicles:     make(map[string]domain.Vehicle),
		maintenances: make(map[string]domain.Maintenance),
		users:        make(map[string]domain.User),
	}
	return &Store{
		Store: repository.Store{
			Tires:        &tireRepository{core: c},
			Movements:    &movementRepository{core: c},
			Vehicles:     &vehicleRepository{core: c},
			Maintenances: &maintenanceRepository{core: c},
			Users:        &userRepository{core: c},
		},
		core: c,
	}
}

// Store is the repository bundle plus test hooks on the shared core.
type Store struct {
	repository.Store
	core *core
}

// FailNextBatch makes the next atomic batch fail with err before applying
// any of its writes. Tests use it to prove all-or-nothing behavior.
func (s *Store) FailNextBatch(err error) {
	s.core.mu.Lock()
	defer s.core.mu.Unlock()
	s.core.batchErr = err
}

func (c *core) appendMovement(mv domain.TireMovement) domain.TireMovement {
	c.seq++
	mv.Seq = c.seq
	if mv.ID == "" {
		mv.ID = uuid.New().String()
	}
	mv.CreatedOn = time.Now().Format(dateLayout)
	c.movements = append(c.movements, mv)
	return mv
}

// consumeBatchErr pops the injected failure. Callers hold the write lock.
func (c *core) consumeBatchErr() error {
	err := c.batchErr
	c.batchErr = nil
	return err
}
