package firestore

import (
	"context"

	"cloud.google.com/go/firestore"

	"frota-backend/internal/domain"
)

type movementRepository struct {
	client *firestore.Client
}

func (r *movementRepository) List(ctx context.Context, filter domain.MovementFilter) ([]domain.TireMovement, error) {
	q := r.client.Collection(collMovements).Query
	if filter.TireID != "" {
		q = q.Where("TireID", "==", filter.TireID)
	}
	if filter.VehicleID != "" {
		q = q.Where("VehicleID", "==", filter.VehicleID)
	}
	if filter.Type != "" {
		q = q.Where("Type", "==", string(filter.Type))
	}
	if filter.DateFrom != "" {
		q = q.Where("Date", ">=", filter.DateFrom)
	}
	if filter.DateTo != "" {
		q = q.Where("Date", "<=", filter.DateTo)
	}
	q = q.OrderBy("Date", firestore.Desc).OrderBy("Seq", firestore.Desc)

	snaps, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	movements := make([]domain.TireMovement, 0, len(snaps))
	for _, snap := range snaps {
		var mv domain.TireMovement
		if err := snap.DataTo(&mv); err != nil {
			return nil, err
		}
		movements = append(movements, mv)
	}
	return movements, nil
}
