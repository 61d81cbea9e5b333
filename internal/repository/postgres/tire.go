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

type tireRepository struct {
	db *sql.DB
}

func NewTireRepository(db *sql.DB) repository.TireRepository {
	return &tireRepository{db: db}
}

const tireColumns = `id, fire_number, brand, model, dimensions, dot, purchase_date, cost_cents,
	status, condition, current_vehicle_id, current_position, last_odometer_km, tread_depth_mm,
	notes, created_on, updated_on`

func (r *tireRepository) Create(ctx context.Context, tire *domain.Tire, stockIn *domain.TireMovement) error {
	if tire.ID == "" {
		tire.ID = uuid.New().String()
	}
	now := time.Now().Format(dateLayout)
	tire.CreatedOn = now
	tire.UpdatedOn = now

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tire create: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO tires (` + tireColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW(), NOW())`
	_, err = tx.ExecContext(ctx, query,
		tire.ID, tire.FireNumber, tire.Brand, tire.Model, tire.Dimensions, tire.DOT,
		nullDate(tire.PurchaseDate), tire.CostCents, tire.Status, tire.Condition,
		tire.CurrentVehicleID, tire.CurrentPosition,
		nullInt64(tire.LastOdometerKm), nullFloat64(tire.TreadDepthMm), tire.Notes)
	if err != nil {
		return fmt.Errorf("insert tire: %w", err)
	}

	stockIn.TireID = tire.ID
	if err := insertMovement(ctx, tx, stockIn); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *tireRepository) GetByID(ctx context.Context, id string) (*domain.Tire, error) {
	query := `SELECT ` + tireColumns + ` FROM tires WHERE id = $1`
	tire, err := scanTire(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return tire, err
}

func (r *tireRepository) List(ctx context.Context, filter repository.TireFilter) ([]domain.Tire, error) {
	query := `SELECT ` + tireColumns + ` FROM tires WHERE 1=1`
	args := []any{}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.VehicleID != "" {
		args = append(args, filter.VehicleID)
		query += fmt.Sprintf(" AND current_vehicle_id = $%d", len(args))
	}
	query += " ORDER BY fire_number"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tires: %w", err)
	}
	defer rows.Close()

	var tires []domain.Tire
	for rows.Next() {
		t, err := scanTire(rows)
		if err != nil {
			return nil, err
		}
		tires = append(tires, *t)
	}
	return tires, rows.Err()
}

func (r *tireRepository) Update(ctx context.Context, tire *domain.Tire) error {
	query := `UPDATE tires SET fire_number = $2, brand = $3, model = $4, dimensions = $5,
	          dot = $6, purchase_date = $7, cost_cents = $8, condition = $9, notes = $10,
	          tread_depth_mm = $11, last_odometer_km = $12, updated_on = NOW()
	          WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query,
		tire.ID, tire.FireNumber, tire.Brand, tire.Model, tire.Dimensions, tire.DOT,
		nullDate(tire.PurchaseDate), tire.CostCents, tire.Condition, tire.Notes,
		nullFloat64(tire.TreadDepthMm), nullInt64(tire.LastOdometerKm))
	if err != nil {
		return fmt.Errorf("update tire: %w", err)
	}
	return requireRow(res)
}

// ApplyMovement is the dual-write primitive: the tire's new state and the
// ledger entry commit together or not at all. Mounts re-validate occupancy
// against committed state inside the transaction, which closes the
// read-then-write race between two movement requests for the same slot.
func (r *tireRepository) ApplyMovement(ctx context.Context, tire *domain.Tire, movement *domain.TireMovement) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin movement: %w", err)
	}
	defer tx.Rollback()

	if movement.Type == domain.MovementTypeMount && tire.CurrentVehicleID != nil && tire.CurrentPosition != nil {
		var occupantID, occupantFire string
		err := tx.QueryRowContext(ctx,
			`SELECT id, fire_number FROM tires
			 WHERE status = $1 AND current_vehicle_id = $2 AND current_position = $3 AND id <> $4
			 FOR UPDATE`,
			domain.TireStatusMounted, *tire.CurrentVehicleID, *tire.CurrentPosition, tire.ID).
			Scan(&occupantID, &occupantFire)
		switch {
		case err == nil:
			return &domain.PositionOccupiedError{
				VehicleID:          *tire.CurrentVehicleID,
				Position:           *tire.CurrentPosition,
				OccupantTireID:     occupantID,
				OccupantFireNumber: occupantFire,
			}
		case !errors.Is(err, sql.ErrNoRows):
			return fmt.Errorf("occupancy check: %w", err)
		}
	}

	query := `UPDATE tires SET fire_number = $2, brand = $3, model = $4, dimensions = $5,
	          dot = $6, purchase_date = $7, cost_cents = $8, status = $9, condition = $10,
	          current_vehicle_id = $11, current_position = $12, last_odometer_km = $13,
	          tread_depth_mm = $14, notes = $15, updated_on = NOW()
	          WHERE id = $1`
	res, err := tx.ExecContext(ctx, query,
		tire.ID, tire.FireNumber, tire.Brand, tire.Model, tire.Dimensions, tire.DOT,
		nullDate(tire.PurchaseDate), tire.CostCents, tire.Status, tire.Condition,
		tire.CurrentVehicleID, tire.CurrentPosition,
		nullInt64(tire.LastOdometerKm), nullFloat64(tire.TreadDepthMm), tire.Notes)
	if err != nil {
		return fmt.Errorf("apply movement: update tire: %w", err)
	}
	if err := requireRow(res); err != nil {
		return err
	}

	if err := insertMovement(ctx, tx, movement); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit movement: %w", err)
	}
	logger.Debug("movement applied", "tire_id", tire.ID, "type", movement.Type, "seq", movement.Seq)
	return nil
}

func (r *tireRepository) DeleteWithMovements(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tire delete: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tire_movements WHERE tire_id = $1`, id); err != nil {
		return fmt.Errorf("delete tire movements: %w", err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM tires WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tire: %w", err)
	}
	if err := requireRow(res); err != nil {
		return err
	}
	return tx.Commit()
}

// insertMovement appends one ledger row inside the caller's transaction and
// fills the store-assigned id, seq and created_on.
func insertMovement(ctx context.Context, tx *sql.Tx, mv *domain.TireMovement) error {
	if mv.ID == "" {
		mv.ID = uuid.New().String()
	}
	mv.CreatedOn = time.Now().Format(dateLayout)
	query := `INSERT INTO tire_movements (id, tire_id, type, movement_date, vehicle_id, odometer_km,
	          from_position, to_position, from_condition, to_condition, cost_cents, destination,
	          notes, tread_depth_mm)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	          RETURNING seq`
	err := tx.QueryRowContext(ctx, query,
		mv.ID, mv.TireID, mv.Type, mv.Date, mv.VehicleID, nullInt64(mv.OdometerKm),
		mv.FromPosition, mv.ToPosition, mv.FromCondition, mv.ToCondition,
		nullInt64(mv.CostCents), mv.Destination, mv.Notes, nullFloat64(mv.TreadDepthMm)).
		Scan(&mv.Seq)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTire(row rowScanner) (*domain.Tire, error) {
	var t domain.Tire
	var purchaseDate, createdOn, updatedOn sql.NullTime
	var vehicleID, position sql.NullString
	var odometer sql.NullInt64
	var tread sql.NullFloat64

	err := row.Scan(&t.ID, &t.FireNumber, &t.Brand, &t.Model, &t.Dimensions, &t.DOT,
		&purchaseDate, &t.CostCents, &t.Status, &t.Condition, &vehicleID, &position,
		&odometer, &tread, &t.Notes, &createdOn, &updatedOn)
	if err != nil {
		return nil, err
	}
	t.PurchaseDate = dateString(purchaseDate)
	t.CreatedOn = dateString(createdOn)
	t.UpdatedOn = dateString(updatedOn)
	t.CurrentVehicleID = stringPtr(vehicleID)
	t.LastOdometerKm = int64Ptr(odometer)
	t.TreadDepthMm = float64Ptr(tread)
	if position.Valid && position.String != "" {
		p := domain.TirePosition(position.String)
		t.CurrentPosition = &p
	}
	return &t, nil
}
