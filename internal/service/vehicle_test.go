package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frota-backend/internal/domain"
)

func TestDeleteVehicleCascades(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	vehicle := f.createVehicle(t, "ABC1D23", "4x2")

	first := f.createTire(t, "F-101")
	second := f.createTire(t, "F-102")
	for i, tire := range []*domain.Tire{first, second} {
		pos := []domain.TirePosition{domain.PositionFE, domain.PositionFD}[i]
		_, _, err := f.tires.RequestMovement(ctx, tire.ID, domain.MovementRequest{
			Type: domain.MovementTypeMount, Date: "2026-05-02",
			VehicleID: vehicle.ID, Position: pos,
		})
		require.NoError(t, err)
	}
	_, err := f.maintenance.CreateMaintenance(ctx, &domain.Maintenance{
		VehicleID:   vehicle.ID,
		Description: "Troca de óleo",
		OpenDate:    "2026-05-01",
	})
	require.NoError(t, err)

	require.NoError(t, f.vehicles.DeleteVehicle(ctx, vehicle.ID))

	_, err = f.vehicles.GetVehicle(ctx, vehicle.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Both tires survive the cascade, back in stock with a Dismount entry
	// explaining why.
	for _, tire := range []*domain.Tire{first, second} {
		stored, err := f.tires.GetTire(ctx, tire.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.TireStatusInStock, stored.Status)
		assert.True(t, stored.PlacementConsistent())

		history, err := f.tires.ListMovements(ctx, domain.MovementFilter{TireID: tire.ID})
		require.NoError(t, err)
		require.Len(t, history, 3)
		assert.Equal(t, domain.MovementTypeDismount, history[0].Type)
		assert.Contains(t, history[0].Notes, "ABC1D23")
	}

	records, err := f.maintenance.ListMaintenances(ctx, vehicle.ID, "")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestDeleteVehicleAtomicity(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	vehicle := f.createVehicle(t, "ABC1D23", "4x2")
	tire := f.createTire(t, "F-101")
	_, _, err := f.tires.RequestMovement(ctx, tire.ID, domain.MovementRequest{
		Type: domain.MovementTypeMount, Date: "2026-05-02",
		VehicleID: vehicle.ID, Position: domain.PositionFE,
	})
	require.NoError(t, err)

	injected := errors.New("storage unavailable")
	f.store.FailNextBatch(injected)
	require.ErrorIs(t, f.vehicles.DeleteVehicle(ctx, vehicle.ID), injected)

	// Vehicle, placement and ledger all untouched.
	_, err = f.vehicles.GetVehicle(ctx, vehicle.ID)
	require.NoError(t, err)
	stored, err := f.tires.GetTire(ctx, tire.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TireStatusMounted, stored.Status)
	history, err := f.tires.ListMovements(ctx, domain.MovementFilter{TireID: tire.ID})
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestDeleteVehicleWithoutTires(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	vehicle := f.createVehicle(t, "ABC1D23", "4x2")
	require.NoError(t, f.vehicles.DeleteVehicle(ctx, vehicle.ID))
	_, err := f.vehicles.GetVehicle(ctx, vehicle.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetVehicleLayout(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	vehicle := f.createVehicle(t, "ABC1D23", "4x2")
	tire := f.createTire(t, "F-101")
	_, _, err := f.tires.RequestMovement(ctx, tire.ID, domain.MovementRequest{
		Type: domain.MovementTypeMount, Date: "2026-05-02",
		VehicleID: vehicle.ID, Position: domain.PositionTDEI,
	})
	require.NoError(t, err)

	spare := f.createTire(t, "F-102")

	layout, err := f.vehicles.GetVehicleLayout(ctx, vehicle.ID)
	require.NoError(t, err)
	assert.Equal(t, "4x2 (Rodagem Dupla Traseira)", layout.Layout.Label)
	require.Len(t, layout.Slots, 7, "6 regular slots plus one spare")

	require.Len(t, layout.Available, 1)
	assert.Equal(t, spare.ID, layout.Available[0].ID)

	occupied := 0
	for _, slot := range layout.Slots {
		if slot.Position == domain.PositionTDEI {
			require.NotNil(t, slot.Tire)
			assert.Equal(t, "F-101", slot.Tire.FireNumber)
			occupied++
			continue
		}
		assert.Nil(t, slot.Tire)
		if slot.Position == domain.PositionEstepe1 {
			assert.True(t, slot.Spare)
		}
	}
	assert.Equal(t, 1, occupied)
}

func TestCreateVehicleValidation(t *testing.T) {
	f := newFixture()
	_, err := f.vehicles.CreateVehicle(context.Background(), &domain.Vehicle{})
	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "plate", validation.Field)
}
