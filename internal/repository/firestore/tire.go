package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"frota-backend/internal/domain"
	"frota-backend/internal/repository"

	"github.com/google/uuid"
)

type tireRepository struct {
	client *firestore.Client
}

func (r *tireRepository) Create(ctx context.Context, tire *domain.Tire, stockIn *domain.TireMovement) error {
	if tire.ID == "" {
		tire.ID = uuid.New().String()
	}
	now := time.Now().Format(dateLayout)
	tire.CreatedOn = now
	tire.UpdatedOn = now

	stockIn.TireID = tire.ID
	stockIn.ID = uuid.New().String()
	stockIn.CreatedOn = now

	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		seq, err := readSeq(tx, r.client)
		if err != nil {
			return err
		}
		stockIn.Seq = seq + 1
		if err := writeSeq(tx, r.client, stockIn.Seq); err != nil {
			return err
		}
		if err := tx.Set(r.client.Collection(collTires).Doc(tire.ID), tire); err != nil {
			return err
		}
		return tx.Set(r.client.Collection(collMovements).Doc(stockIn.ID), stockIn)
	})
}

func (r *tireRepository) GetByID(ctx context.Context, id string) (*domain.Tire, error) {
	snap, err := r.client.Collection(collTires).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	var tire domain.Tire
	if err := snap.DataTo(&tire); err != nil {
		return nil, err
	}
	return &tire, nil
}

func (r *tireRepository) List(ctx context.Context, filter repository.TireFilter) ([]domain.Tire, error) {
	q := r.client.Collection(collTires).Query
	if filter.Status != "" {
		q = q.Where("Status", "==", string(filter.Status))
	}
	if filter.VehicleID != "" {
		q = q.Where("CurrentVehicleID", "==", filter.VehicleID)
	}
	q = q.OrderBy("FireNumber", firestore.Asc)

	snaps, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	tires := make([]domain.Tire, 0, len(snaps))
	for _, snap := range snaps {
		var tire domain.Tire
		if err := snap.DataTo(&tire); err != nil {
			return nil, err
		}
		tires = append(tires, tire)
	}
	return tires, nil
}

func (r *tireRepository) Update(ctx context.Context, tire *domain.Tire) error {
	ref := r.client.Collection(collTires).Doc(tire.ID)
	if _, err := ref.Get(ctx); err != nil {
		if isNotFound(err) {
			return domain.ErrNotFound
		}
		return err
	}
	tire.UpdatedOn = time.Now().Format(dateLayout)
	_, err := ref.Set(ctx, tire)
	return err
}

func (r *tireRepository) ApplyMovement(ctx context.Context, tire *domain.Tire, movement *domain.TireMovement) error {
	movement.ID = uuid.New().String()
	movement.CreatedOn = time.Now().Format(dateLayout)
	tire.UpdatedOn = movement.CreatedOn

	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		ref := r.client.Collection(collTires).Doc(tire.ID)
		if _, err := tx.Get(ref); err != nil {
			if isNotFound(err) {
				return domain.ErrNotFound
			}
			return err
		}

		// Mounts re-validate occupancy against committed state inside the
		// transaction that applies the write.
		if movement.Type == domain.MovementTypeMount && tire.CurrentVehicleID != nil && tire.CurrentPosition != nil {
			q := r.client.Collection(collTires).Query.
				Where("Status", "==", string(domain.TireStatusMounted)).
				Where("CurrentVehicleID", "==", *tire.CurrentVehicleID).
				Where("CurrentPosition", "==", string(*tire.CurrentPosition))
			snaps, err := tx.Documents(q).GetAll()
			if err != nil {
				return err
			}
			for _, snap := range snaps {
				if snap.Ref.ID == tire.ID {
					continue
				}
				var occupant domain.Tire
				if err := snap.DataTo(&occupant); err != nil {
					return err
				}
				return &domain.PositionOccupiedError{
					VehicleID:          *tire.CurrentVehicleID,
					Position:           *tire.CurrentPosition,
					OccupantTireID:     occupant.ID,
					OccupantFireNumber: occupant.FireNumber,
				}
			}
		}

		seq, err := readSeq(tx, r.client)
		if err != nil {
			return err
		}
		movement.Seq = seq + 1
		if err := writeSeq(tx, r.client, movement.Seq); err != nil {
			return err
		}
		if err := tx.Set(ref, tire); err != nil {
			return err
		}
		return tx.Set(r.client.Collection(collMovements).Doc(movement.ID), movement)
	})
}

func (r *tireRepository) DeleteWithMovements(ctx context.Context, id string) error {
	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		ref := r.client.Collection(collTires).Doc(id)
		if _, err := tx.Get(ref); err != nil {
			if isNotFound(err) {
				return domain.ErrNotFound
			}
			return err
		}
		q := r.client.Collection(collMovements).Query.Where("TireID", "==", id)
		snaps, err := tx.Documents(q).GetAll()
		if err != nil {
			return err
		}
		for _, snap := range snaps {
			if err := tx.Delete(snap.Ref); err != nil {
				return err
			}
		}
		return tx.Delete(ref)
	})
}
