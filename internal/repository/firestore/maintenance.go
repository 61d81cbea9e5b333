package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"frota-backend/internal/domain"

	"github.com/google/uuid"
)

type maintenanceRepository struct {
	client *firestore.Client
}

func (r *maintenanceRepository) Create(ctx context.Context, m *domain.Maintenance) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	now := time.Now().Format(dateLayout)
	m.CreatedOn = now
	m.UpdatedOn = now
	_, err := r.client.Collection(collMaintenances).Doc(m.ID).Set(ctx, m)
	return err
}

func (r *maintenanceRepository) GetByID(ctx context.Context, id string) (*domain.Maintenance, error) {
	snap, err := r.client.Collection(collMaintenances).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	var m domain.Maintenance
	if err := snap.DataTo(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *maintenanceRepository) List(ctx context.Context, vehicleID string, status domain.MaintenanceStatus) ([]domain.Maintenance, error) {
	q := r.client.Collection(collMaintenances).Query
	if vehicleID != "" {
		q = q.Where("VehicleID", "==", vehicleID)
	}
	if status != "" {
		q = q.Where("Status", "==", string(status))
	}
	q = q.OrderBy("OpenDate", firestore.Desc)

	snaps, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]domain.Maintenance, 0, len(snaps))
	for _, snap := range snaps {
		var m domain.Maintenance
		if err := snap.DataTo(&m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *maintenanceRepository) Update(ctx context.Context, m *domain.Maintenance) error {
	ref := r.client.Collection(collMaintenances).Doc(m.ID)
	if _, err := ref.Get(ctx); err != nil {
		if isNotFound(err) {
			return domain.ErrNotFound
		}
		return err
	}
	m.UpdatedOn = time.Now().Format(dateLayout)
	_, err := ref.Set(ctx, m)
	return err
}

func (r *maintenanceRepository) Delete(ctx context.Context, id string) error {
	ref := r.client.Collection(collMaintenances).Doc(id)
	if _, err := ref.Get(ctx); err != nil {
		if isNotFound(err) {
			return domain.ErrNotFound
		}
		return err
	}
	_, err := ref.Delete(ctx)
	return err
}
