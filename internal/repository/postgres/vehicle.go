package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"frota-backend/internal/domain"
	"frota-backend/internal/logger"
	"frota-backend/internal/repository"

	"github.com/google/uuid"
)

type vehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

const vehicleColumns = `id, plate, fleet_no, brand, model, type, status, department,
	axle_configuration, odometer_km, notes, created_on, updated_on`

func (r *vehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	if vehicle.ID == "" {
		vehicle.ID = uuid.New().String()
	}
	now := time.Now().Format(dateLayout)
	vehicle.CreatedOn = now
	vehicle.UpdatedOn = now

	query := `INSERT INTO vehicles (` + vehicleColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())`
	_, err := r.db.ExecContext(ctx, query,
		vehicle.ID, vehicle.Plate, vehicle.FleetNo, vehicle.Brand, vehicle.Model,
		vehicle.Type, vehicle.Status, vehicle.Department, vehicle.AxleConfiguration,
		nullInt64(vehicle.OdometerKm), vehicle.Notes)
	if err != nil {
		return fmt.Errorf("insert vehicle: %w", err)
	}
	return nil
}

func (r *vehicleRepository) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`
	v, err := scanVehicle(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return v, err
}

func (r *vehicleRepository) List(ctx context.Context) ([]domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles ORDER BY plate`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, *v)
	}
	return vehicles, rows.Err()
}

func (r *vehicleRepository) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	query := `UPDATE vehicles SET plate = $2, fleet_no = $3, brand = $4, model = $5,
	          type = $6, status = $7, department = $8, axle_configuration = $9,
	          odometer_km = $10, notes = $11, updated_on = NOW()
	          WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query,
		vehicle.ID, vehicle.Plate, vehicle.FleetNo, vehicle.Brand, vehicle.Model,
		vehicle.Type, vehicle.Status, vehicle.Department, vehicle.AxleConfiguration,
		nullInt64(vehicle.OdometerKm), vehicle.Notes)
	if err != nil {
		return fmt.Errorf("update vehicle: %w", err)
	}
	return requireRow(res)
}

// DeleteCascade applies the precomputed dismounts, drops the vehicle's
// maintenance records and deletes the vehicle, all in one transaction.
// Placement must be cleared before the vehicle row goes away because of
// the tires foreign key.
func (r *vehicleRepository) DeleteCascade(ctx context.Context, vehicleID string, dismounted []domain.Tire, movements []domain.TireMovement) error {
	if len(dismounted) != len(movements) {
		return fmt.Errorf("cascade mismatch: %d tires, %d movements", len(dismounted), len(movements))
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin vehicle delete: %w", err)
	}
	defer tx.Rollback()

	for i := range dismounted {
		t := &dismounted[i]
		res, err := tx.ExecContext(ctx,
			`UPDATE tires SET status = $2, condition = $3, current_vehicle_id = NULL,
			 current_position = NULL, last_odometer_km = $4, tread_depth_mm = $5, updated_on = NOW()
			 WHERE id = $1`,
			t.ID, t.Status, t.Condition, nullInt64(t.LastOdometerKm), nullFloat64(t.TreadDepthMm))
		if err != nil {
			return fmt.Errorf("cascade dismount tire %s: %w", t.ID, err)
		}
		if err := requireRow(res); err != nil {
			return fmt.Errorf("cascade dismount tire %s: %w", t.ID, err)
		}
		if err := insertMovement(ctx, tx, &movements[i]); err != nil {
			return err
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM maintenances WHERE vehicle_id = $1`, vehicleID); err != nil {
		return fmt.Errorf("delete vehicle maintenances: %w", err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1`, vehicleID)
	if err != nil {
		return fmt.Errorf("delete vehicle: %w", err)
	}
	if err := requireRow(res); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit vehicle delete: %w", err)
	}
	logger.Info("vehicle deleted with cascade", "vehicle_id", vehicleID, "dismounted", len(dismounted))
	return nil
}

func scanVehicle(row rowScanner) (*domain.Vehicle, error) {
	var v domain.Vehicle
	var odometer sql.NullInt64
	var createdOn, updatedOn sql.NullTime

	err := row.Scan(&v.ID, &v.Plate, &v.FleetNo, &v.Brand, &v.Model, &v.Type, &v.Status,
		&v.Department, &v.AxleConfiguration, &odometer, &v.Notes, &createdOn, &updatedOn)
	if err != nil {
		return nil, err
	}
	v.OdometerKm = int64Ptr(odometer)
	v.CreatedOn = dateString(createdOn)
	v.UpdatedOn = dateString(updatedOn)
	return &v, nil
}
