package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"frota-backend/internal/domain"
	"frota-backend/internal/repository"

	"github.com/google/uuid"
)

type maintenanceRepository struct {
	db *sql.DB
}

func NewMaintenanceRepository(db *sql.DB) repository.MaintenanceRepository {
	return &maintenanceRepository{db: db}
}

const maintenanceColumns = `id, vehicle_id, type, status, invoice_number, description,
	open_date, close_date, scheduled_date, cost_cents, mechanic, odometer_km, notes,
	created_on, updated_on`

func (r *maintenanceRepository) Create(ctx context.Context, m *domain.Maintenance) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	now := time.Now().Format(dateLayout)
	m.CreatedOn = now
	m.UpdatedOn = now

	query := `INSERT INTO maintenances (` + maintenanceColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())`
	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.VehicleID, m.Type, m.Status, m.InvoiceNumber, m.Description,
		nullDate(m.OpenDate), nullDate(m.CloseDate), nullDate(m.ScheduledDate),
		m.CostCents, m.Mechanic, nullInt64(m.OdometerKm), m.Notes)
	if err != nil {
		return fmt.Errorf("insert maintenance: %w", err)
	}
	return nil
}

func (r *maintenanceRepository) GetByID(ctx context.Context, id string) (*domain.Maintenance, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenances WHERE id = $1`
	m, err := scanMaintenance(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return m, err
}

func (r *maintenanceRepository) List(ctx context.Context, vehicleID string, status domain.MaintenanceStatus) ([]domain.Maintenance, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenances WHERE 1=1`
	args := []any{}
	if vehicleID != "" {
		args = append(args, vehicleID)
		query += fmt.Sprintf(" AND vehicle_id = $%d", len(args))
	}
	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	query += " ORDER BY open_date DESC NULLS LAST, created_on DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list maintenances: %w", err)
	}
	defer rows.Close()

	var out []domain.Maintenance
	for rows.Next() {
		m, err := scanMaintenance(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}
	return out, rows.Err()
}

func (r *maintenanceRepository) Update(ctx context.Context, m *domain.Maintenance) error {
	query := `UPDATE maintenances SET type = $2, status = $3, invoice_number = $4,
	          description = $5, open_date = $6, close_date = $7, scheduled_date = $8,
	          cost_cents = $9, mechanic = $10, odometer_km = $11, notes = $12, updated_on = NOW()
	          WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query,
		m.ID, m.Type, m.Status, m.InvoiceNumber, m.Description,
		nullDate(m.OpenDate), nullDate(m.CloseDate), nullDate(m.ScheduledDate),
		m.CostCents, m.Mechanic, nullInt64(m.OdometerKm), m.Notes)
	if err != nil {
		return fmt.Errorf("update maintenance: %w", err)
	}
	return requireRow(res)
}

func (r *maintenanceRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM maintenances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete maintenance: %w", err)
	}
	return requireRow(res)
}

func scanMaintenance(row rowScanner) (*domain.Maintenance, error) {
	var m domain.Maintenance
	var openDate, closeDate, scheduledDate, createdOn, updatedOn sql.NullTime
	var odometer sql.NullInt64

	err := row.Scan(&m.ID, &m.VehicleID, &m.Type, &m.Status, &m.InvoiceNumber, &m.Description,
		&openDate, &closeDate, &scheduledDate, &m.CostCents, &m.Mechanic, &odometer, &m.Notes,
		&createdOn, &updatedOn)
	if err != nil {
		return nil, err
	}
	m.OpenDate = dateString(openDate)
	m.CloseDate = dateString(closeDate)
	m.ScheduledDate = dateString(scheduledDate)
	m.CreatedOn = dateString(createdOn)
	m.UpdatedOn = dateString(updatedOn)
	m.OdometerKm = int64Ptr(odometer)
	return &m, nil
}
