package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"frota-backend/internal/domain"

	"github.com/google/uuid"
)

type vehicleRepository struct {
	client *firestore.Client
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	if vehicle.ID == "" {
		vehicle.ID = uuid.New().String()
	}
	now := time.Now().Format(dateLayout)
	vehicle.CreatedOn = now
	vehicle.UpdatedOn = now
	_, err := r.client.Collection(collVehicles).Doc(vehicle.ID).Set(ctx, vehicle)
	return err
}

func (r *vehicleRepository) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	snap, err := r.client.Collection(collVehicles).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	var vehicle domain.Vehicle
	if err := snap.DataTo(&vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *vehicleRepository) List(ctx context.Context) ([]domain.Vehicle, error) {
	snaps, err := r.client.Collection(collVehicles).Query.
		OrderBy("Plate", firestore.Asc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	vehicles := make([]domain.Vehicle, 0, len(snaps))
	for _, snap := range snaps {
		var vehicle domain.Vehicle
		if err := snap.DataTo(&vehicle); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, vehicle)
	}
	return vehicles, nil
}

func (r *vehicleRepository) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	ref := r.client.Collection(collVehicles).Doc(vehicle.ID)
	if _, err := ref.Get(ctx); err != nil {
		if isNotFound(err) {
			return domain.ErrNotFound
		}
		return err
	}
	vehicle.UpdatedOn = time.Now().Format(dateLayout)
	_, err := ref.Set(ctx, vehicle)
	return err
}

func (r *vehicleRepository) DeleteCascade(ctx context.Context, vehicleID string, dismounted []domain.Tire, movements []domain.TireMovement) error {
	now := time.Now().Format(dateLayout)
	for i := range movements {
		movements[i].ID = uuid.New().String()
		movements[i].CreatedOn = now
	}
	for i := range dismounted {
		dismounted[i].UpdatedOn = now
	}

	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		ref := r.client.Collection(collVehicles).Doc(vehicleID)
		if _, err := tx.Get(ref); err != nil {
			if isNotFound(err) {
				return domain.ErrNotFound
			}
			return err
		}
		maintQ := r.client.Collection(collMaintenances).Query.Where("VehicleID", "==", vehicleID)
		maintSnaps, err := tx.Documents(maintQ).GetAll()
		if err != nil {
			return err
		}
		seq, err := readSeq(tx, r.client)
		if err != nil {
			return err
		}

		for i := range dismounted {
			seq++
			movements[i].Seq = seq
			if err := tx.Set(r.client.Collection(collTires).Doc(dismounted[i].ID), &dismounted[i]); err != nil {
				return err
			}
			if err := tx.Set(r.client.Collection(collMovements).Doc(movements[i].ID), &movements[i]); err != nil {
				return err
			}
		}
		if len(dismounted) > 0 {
			if err := writeSeq(tx, r.client, seq); err != nil {
				return err
			}
		}
		for _, snap := range maintSnaps {
			if err := tx.Delete(snap.Ref); err != nil {
				return err
			}
		}
		return tx.Delete(ref)
	})
}
