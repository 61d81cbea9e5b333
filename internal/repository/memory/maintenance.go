package memory

import (
	"context"
	"sort"
	"time"

	"frota-backend/internal/domain"

	"github.com/google/uuid"
)

type maintenanceRepository struct {
	core *core
}

func (r *maintenanceRepository) Create(ctx context.Context, m *domain.Maintenance) error {
	c := r.core
	c.mu.Lock()
	defer c.mu.Unlock()
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	now := time.Now().Format(dateLayout)
	m.CreatedOn = now
	m.UpdatedOn = now
	c.maintenances[m.ID] = *m
	return nil
}

func (r *maintenanceRepository) GetByID(ctx context.Context, id string) (*domain.Maintenance, error) {
	c := r.core
	c.mu.RLock()
	defer c.mu.RUnlock()
	m, ok := c.maintenances[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &m, nil
}

func (r *maintenanceRepository) List(ctx context.Context, vehicleID string, status domain.MaintenanceStatus) ([]domain.Maintenance, error) {
	c := r.core
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []domain.Maintenance
	for _, m := range c.maintenances {
		if vehicleID != "" && m.VehicleID != vehicleID {
			continue
		}
		if status != "" && m.Status != status {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].OpenDate != out[j].OpenDate {
			return out[i].OpenDate > out[j].OpenDate
		}
		return out[i].CreatedOn > out[j].CreatedOn
	})
	return out, nil
}

func (r *maintenanceRepository) Update(ctx context.Context, m *domain.Maintenance) error {
	c := r.core
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.maintenances[m.ID]; !ok {
		return domain.ErrNotFound
	}
	m.UpdatedOn = time.Now().Format(dateLayout)
	c.maintenances[m.ID] = *m
	return nil
}

func (r *maintenanceRepository) Delete(ctx context.Context, id string) error {
	c := r.core
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.maintenances[id]; !ok {
		return domain.ErrNotFound
	}
	delete(c.maintenances, id)
	return nil
}
