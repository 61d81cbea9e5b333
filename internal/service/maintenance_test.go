package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frota-backend/internal/domain"
)

func TestCreateMaintenanceValidation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	vehicle := f.createVehicle(t, "ABC1D23", "4x2")

	var validation *domain.ValidationError

	_, err := f.maintenance.CreateMaintenance(ctx, &domain.Maintenance{Description: "x"})
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "vehicle_id", validation.Field)

	_, err = f.maintenance.CreateMaintenance(ctx, &domain.Maintenance{
		VehicleID: "missing", Description: "x",
	})
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "vehicle_id", validation.Field)

	_, err = f.maintenance.CreateMaintenance(ctx, &domain.Maintenance{
		VehicleID:   vehicle.ID,
		Description: "Revisão",
		Status:      domain.MaintenanceStatusScheduled,
	})
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "scheduled_date", validation.Field)
}

func TestCreateMaintenanceDefaults(t *testing.T) {
	f := newFixture()
	vehicle := f.createVehicle(t, "ABC1D23", "4x2")

	m, err := f.maintenance.CreateMaintenance(context.Background(), &domain.Maintenance{
		VehicleID:   vehicle.ID,
		Description: "Freios rangendo",
		OpenDate:    "2026-05-01",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.MaintenanceTypeCorrective, m.Type)
	assert.Equal(t, domain.MaintenanceStatusOpen, m.Status)
	assert.NotEmpty(t, m.ID)
}

func TestActivateDue(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	vehicle := f.createVehicle(t, "ABC1D23", "4x2")

	due, err := f.maintenance.CreateMaintenance(ctx, &domain.Maintenance{
		VehicleID:     vehicle.ID,
		Type:          domain.MaintenanceTypePreventive,
		Status:        domain.MaintenanceStatusScheduled,
		Description:   "Revisão 250 mil km",
		ScheduledDate: "2026-05-10",
	})
	require.NoError(t, err)

	future, err := f.maintenance.CreateMaintenance(ctx, &domain.Maintenance{
		VehicleID:     vehicle.ID,
		Type:          domain.MaintenanceTypePreventive,
		Status:        domain.MaintenanceStatusScheduled,
		Description:   "Revisão 300 mil km",
		ScheduledDate: "2026-09-01",
	})
	require.NoError(t, err)

	activated, err := f.maintenance.ActivateDue(ctx, "2026-05-15")
	require.NoError(t, err)
	require.Len(t, activated, 1)
	assert.Equal(t, due.ID, activated[0].ID)
	assert.Equal(t, domain.MaintenanceStatusOpen, activated[0].Status)
	assert.Equal(t, "2026-05-15", activated[0].OpenDate)

	stored, err := f.maintenance.GetMaintenance(ctx, future.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.MaintenanceStatusScheduled, stored.Status)
}

func TestUpdateMaintenanceKeepsVehicle(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	vehicle := f.createVehicle(t, "ABC1D23", "4x2")

	m, err := f.maintenance.CreateMaintenance(ctx, &domain.Maintenance{
		VehicleID:   vehicle.ID,
		Description: "Troca de embreagem",
		OpenDate:    "2026-05-01",
	})
	require.NoError(t, err)

	edited := *m
	edited.VehicleID = "other-vehicle"
	edited.Status = domain.MaintenanceStatusCompleted
	edited.CloseDate = "2026-05-03"
	updated, err := f.maintenance.UpdateMaintenance(ctx, &edited)
	require.NoError(t, err)
	assert.Equal(t, vehicle.ID, updated.VehicleID)
	assert.Equal(t, domain.MaintenanceStatusCompleted, updated.Status)
}
