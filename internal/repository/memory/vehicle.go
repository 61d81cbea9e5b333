package memory

import (
	"context"
	"sort"
	"time"

	"frota-backend/internal/domain"

	"github.com/google/uuid"
)

type vehicleRepository struct {
	core *core
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	c := r.core
	c.mu.Lock()
	defer c.mu.Unlock()
	if vehicle.ID == "" {
		vehicle.ID = uuid.New().String()
	}
	now := time.Now().Format(dateLayout)
	vehicle.CreatedOn = now
	vehicle.UpdatedOn = now
	c.vehicles[vehicle.ID] = *vehicle
	return nil
}

func (r *vehicleRepository) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	c := r.core
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.vehicles[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &v, nil
}

func (r *vehicleRepository) List(ctx context.Context) ([]domain.Vehicle, error) {
	c := r.core
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []domain.Vehicle
	for _, v := range c.vehicles {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Plate < out[j].Plate })
	return out, nil
}

func (r *vehicleRepository) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	c := r.core
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.vehicles[vehicle.ID]; !ok {
		return domain.ErrNotFound
	}
	vehicle.UpdatedOn = time.Now().Format(dateLayout)
	c.vehicles[vehicle.ID] = *vehicle
	return nil
}

func (r *vehicleRepository) DeleteCascade(ctx context.Context, vehicleID string, dismounted []domain.Tire, movements []domain.TireMovement) error {
	c := r.core
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.consumeBatchErr(); err != nil {
		return err
	}
	if _, ok := c.vehicles[vehicleID]; !ok {
		return domain.ErrNotFound
	}
	for i := range dismounted {
		t := dismounted[i]
		if _, ok := c.tires[t.ID]; !ok {
			return domain.ErrNotFound
		}
		t.UpdatedOn = time.Now().Format(dateLayout)
		c.tires[t.ID] = t
		movements[i] = c.appendMovement(movements[i])
	}
	for id, m := range c.maintenances {
		if m.VehicleID == vehicleID {
			delete(c.maintenances, id)
		}
	}
	delete(c.vehicles, vehicleID)
	return nil
}
