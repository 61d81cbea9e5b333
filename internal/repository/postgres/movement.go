package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"frota-backend/internal/domain"
	"frota-backend/internal/repository"
)

type movementRepository struct {
	db *sql.DB
}

func NewMovementRepository(db *sql.DB) repository.MovementRepository {
	return &movementRepository{db: db}
}

func (r *movementRepository) List(ctx context.Context, filter domain.MovementFilter) ([]domain.TireMovement, error) {
	query := `SELECT id, tire_id, type, movement_date, vehicle_id, odometer_km,
	          from_position, to_position, from_condition, to_condition, cost_cents,
	          destination, notes, tread_depth_mm, seq, created_on
	          FROM tire_movements WHERE 1=1`
	args := []any{}
	if filter.TireID != "" {
		args = append(args, filter.TireID)
		query += fmt.Sprintf(" AND tire_id = $%d", len(args))
	}
	if filter.VehicleID != "" {
		args = append(args, filter.VehicleID)
		query += fmt.Sprintf(" AND vehicle_id = $%d", len(args))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if filter.DateFrom != "" {
		args = append(args, filter.DateFrom)
		query += fmt.Sprintf(" AND movement_date >= $%d", len(args))
	}
	if filter.DateTo != "" {
		args = append(args, filter.DateTo)
		query += fmt.Sprintf(" AND movement_date <= $%d", len(args))
	}
	// seq breaks same-date ties deterministically
	query += " ORDER BY movement_date DESC, seq DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var movements []domain.TireMovement
	for rows.Next() {
		mv, err := scanMovement(rows)
		if err != nil {
			return nil, err
		}
		movements = append(movements, *mv)
	}
	return movements, rows.Err()
}

func scanMovement(row rowScanner) (*domain.TireMovement, error) {
	var mv domain.TireMovement
	var date, createdOn sql.NullTime
	var vehicleID, fromPos, toPos, fromCond, toCond sql.NullString
	var odometer, cost sql.NullInt64
	var tread sql.NullFloat64

	err := row.Scan(&mv.ID, &mv.TireID, &mv.Type, &date, &vehicleID, &odometer,
		&fromPos, &toPos, &fromCond, &toCond, &cost,
		&mv.Destination, &mv.Notes, &tread, &mv.Seq, &createdOn)
	if err != nil {
		return nil, err
	}
	mv.Date = dateString(date)
	mv.CreatedOn = dateString(createdOn)
	mv.VehicleID = stringPtr(vehicleID)
	mv.OdometerKm = int64Ptr(odometer)
	mv.CostCents = int64Ptr(cost)
	mv.TreadDepthMm = float64Ptr(tread)
	if p := stringPtr(fromPos); p != nil {
		pos := domain.TirePosition(*p)
		mv.FromPosition = &pos
	}
	if p := stringPtr(toPos); p != nil {
		pos := domain.TirePosition(*p)
		mv.ToPosition = &pos
	}
	if c := stringPtr(fromCond); c != nil {
		cond := domain.TireCondition(*c)
		mv.FromCondition = &cond
	}
	if c := stringPtr(toCond); c != nil {
		cond := domain.TireCondition(*c)
		mv.ToCondition = &cond
	}
	return &mv, nil
}
