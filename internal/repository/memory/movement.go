package memory

import (
	"context"
	"sort"

	"frota-backend/internal/domain"
)

type movementRepository struct {
	core *core
}

func (r *movementRepository) List(ctx context.Context, filter domain.MovementFilter) ([]domain.TireMovement, error) {
	c := r.core
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []domain.TireMovement
	for _, mv := range c.movements {
		if filter.TireID != "" && mv.TireID != filter.TireID {
			continue
		}
		if filter.VehicleID != "" && (mv.VehicleID == nil || *mv.VehicleID != filter.VehicleID) {
			continue
		}
		if filter.Type != "" && mv.Type != filter.Type {
			continue
		}
		if filter.DateFrom != "" && mv.Date < filter.DateFrom {
			continue
		}
		if filter.DateTo != "" && mv.Date > filter.DateTo {
			continue
		}
		out = append(out, mv)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].Seq > out[j].Seq
	})
	return out, nil
}
