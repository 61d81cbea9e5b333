package memory

import (
	"context"
	"sort"
	"time"

	"frota-backend/internal/domain"
	"frota-backend/internal/repository"

	"github.com/google/uuid"
)

type tireRepository struct {
	core *core
}

func (r *tireRepository) Create(ctx context.Context, tire *domain.Tire, stockIn *domain.TireMovement) error {
	c := r.core
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.consumeBatchErr(); err != nil {
		return err
	}
	if tire.ID == "" {
		tire.ID = uuid.New().String()
	}
	now := time.Now().Format(dateLayout)
	tire.CreatedOn = now
	tire.UpdatedOn = now
	c.tires[tire.ID] = *tire

	stockIn.TireID = tire.ID
	*stockIn = c.appendMovement(*stockIn)
	return nil
}

func (r *tireRepository) GetByID(ctx context.Context, id string) (*domain.Tire, error) {
	c := r.core
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.tires[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &t, nil
}

func (r *tireRepository) List(ctx context.Context, filter repository.TireFilter) ([]domain.Tire, error) {
	c := r.core
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []domain.Tire
	for _, t := range c.tires {
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		if filter.VehicleID != "" && (t.CurrentVehicleID == nil || *t.CurrentVehicleID != filter.VehicleID) {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FireNumber < out[j].FireNumber })
	return out, nil
}

func (r *tireRepository) Update(ctx context.Context, tire *domain.Tire) error {
	c := r.core
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.tires[tire.ID]; !ok {
		return domain.ErrNotFound
	}
	tire.UpdatedOn = time.Now().Format(dateLayout)
	c.tires[tire.ID] = *tire
	return nil
}

func (r *tireRepository) ApplyMovement(ctx context.Context, tire *domain.Tire, movement *domain.TireMovement) error {
	c := r.core
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.consumeBatchErr(); err != nil {
		return err
	}
	if _, ok := c.tires[tire.ID]; !ok {
		return domain.ErrNotFound
	}

	// Mounts re-validate occupancy against committed state under the same
	// lock that applies the write.
	if movement.Type == domain.MovementTypeMount && tire.CurrentVehicleID != nil && tire.CurrentPosition != nil {
		for _, other := range c.tires {
			if other.ID == tire.ID || !other.Mounted() {
				continue
			}
			if *other.CurrentVehicleID == *tire.CurrentVehicleID && *other.CurrentPosition == *tire.CurrentPosition {
				return &domain.PositionOccupiedError{
					VehicleID:          *tire.CurrentVehicleID,
					Position:           *tire.CurrentPosition,
					OccupantTireID:     other.ID,
					OccupantFireNumber: other.FireNumber,
				}
			}
		}
	}

	tire.UpdatedOn = time.Now().Format(dateLayout)
	c.tires[tire.ID] = *tire
	*movement = c.appendMovement(*movement)
	return nil
}

func (r *tireRepository) DeleteWithMovements(ctx context.Context, id string) error {
	c := r.core
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.consumeBatchErr(); err != nil {
		return err
	}
	if _, ok := c.tires[id]; !ok {
		return domain.ErrNotFound
	}
	delete(c.tires, id)
	kept := c.movements[:0]
	for _, mv := range c.movements {
		if mv.TireID != id {
			kept = append(kept, mv)
		}
	}
	c.movements = kept
	return nil
}
