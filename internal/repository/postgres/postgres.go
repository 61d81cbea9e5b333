package postgres

import (
	"database/sql"
	"time"

	"frota-backend/internal/repository"

	_ "github.com/lib/pq"
)

const dateLayout = "2006-01-02"

// NewStore wires all Postgres-backed repositories over one connection pool.
func NewStore(db *sql.DB) *repository.Store {
	return &repository.Store{
		Tires:        NewTireRepository(db),
		Movements:    NewMovementRepository(db),
		Vehicles:     NewVehicleRepository(db),
		Maintenances: NewMaintenanceRepository(db),
		Users:        NewUserRepository(db),
	}
}

func nullInt64(p *int64) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *p, Valid: true}
}

func nullFloat64(p *float64) sql.NullFloat64 {
	if p == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *p, Valid: true}
}

func nullDate(s string) sql.NullTime {
	if s == "" {
		return sql.NullTime{}
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t, Valid: true}
}

func dateString(t sql.NullTime) string {
	if !t.Valid {
		return ""
	}
	return t.Time.Format(dateLayout)
}

func int64Ptr(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}

func float64Ptr(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}

func stringPtr(s sql.NullString) *string {
	if !s.Valid || s.String == "" {
		return nil
	}
	v := s.String
	return &v
}
