package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frota-backend/internal/domain"
	"frota-backend/internal/repository"
	"frota-backend/internal/repository/memory"
)

type fixture struct {
	store       *memory.Store
	tires       TireService
	vehicles    VehicleService
	maintenance MaintenanceService
}

func newFixture() *fixture {
	store := memory.NewStore()
	return &fixture{
		store:       store,
		tires:       NewTireService(store.Tires, store.Movements, store.Vehicles),
		vehicles:    NewVehicleService(store.Vehicles, store.Tires),
		maintenance: NewMaintenanceService(store.Maintenances, store.Vehicles),
	}
}

func (f *fixture) createVehicle(t *testing.T, plate, axleConfig string) *domain.Vehicle {
	t.Helper()
	vehicle, err := f.vehicles.CreateVehicle(context.Background(), &domain.Vehicle{
		Plate:             plate,
		Brand:             "Volvo",
		Model:             "FH 460",
		AxleConfiguration: axleConfig,
	})
	require.NoError(t, err)
	return vehicle
}

func (f *fixture) createTire(t *testing.T, fireNumber string) *domain.Tire {
	t.Helper()
	depth := 18.0
	tire, err := f.tires.CreateTire(context.Background(), &domain.Tire{
		FireNumber:   fireNumber,
		Brand:        "Michelin",
		Model:        "X Multi Z",
		Dimensions:   "295/80R22.5",
		PurchaseDate: "2026-01-15",
		TreadDepthMm: &depth,
	})
	require.NoError(t, err)
	return tire
}

func TestCreateTireRecordsStockIn(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	tire := f.createTire(t, "F-101")
	assert.Equal(t, domain.TireStatusInStock, tire.Status)
	assert.Equal(t, domain.TireConditionNew, tire.Condition)
	assert.True(t, tire.PlacementConsistent())

	history, err := f.tires.ListMovements(ctx, domain.MovementFilter{TireID: tire.ID})
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, domain.MovementTypeStockIn, history[0].Type)
	assert.Equal(t, int64(1), history[0].Seq)
}

func TestCreateTireValidation(t *testing.T) {
	f := newFixture()
	_, err := f.tires.CreateTire(context.Background(), &domain.Tire{Brand: "Michelin", Dimensions: "295/80R22.5"})
	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "fire_number", validation.Field)
}

func TestMountFlow(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	vehicle := f.createVehicle(t, "ABC1D23", "4x2")
	tire := f.createTire(t, "F-101")

	km := int64(250000)
	mounted, mv, err := f.tires.RequestMovement(ctx, tire.ID, domain.MovementRequest{
		Type:       domain.MovementTypeMount,
		Date:       "2026-05-02",
		VehicleID:  vehicle.ID,
		Position:   domain.PositionFE,
		OdometerKm: &km,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TireStatusMounted, mounted.Status)
	require.NotNil(t, mounted.CurrentVehicleID)
	assert.Equal(t, vehicle.ID, *mounted.CurrentVehicleID)
	assert.Equal(t, int64(2), mv.Seq, "stock-in took seq 1")

	stored, err := f.tires.GetTire(ctx, tire.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TireStatusMounted, stored.Status)
}

func TestMountOccupiedPosition(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	vehicle := f.createVehicle(t, "ABC1D23", "4x2")

	first := f.createTire(t, "F-101")
	_, _, err := f.tires.RequestMovement(ctx, first.ID, domain.MovementRequest{
		Type: domain.MovementTypeMount, Date: "2026-05-02",
		VehicleID: vehicle.ID, Position: domain.PositionFE,
	})
	require.NoError(t, err)

	second := f.createTire(t, "F-102")
	_, _, err = f.tires.RequestMovement(ctx, second.ID, domain.MovementRequest{
		Type: domain.MovementTypeMount, Date: "2026-05-03",
		VehicleID: vehicle.ID, Position: domain.PositionFE,
	})

	var occupied *domain.PositionOccupiedError
	require.ErrorAs(t, err, &occupied)
	assert.Equal(t, "F-101", occupied.OccupantFireNumber)
	assert.Equal(t, first.ID, occupied.OccupantTireID)

	// The rejected mount must leave no trace in the ledger.
	history, err := f.tires.ListMovements(ctx, domain.MovementFilter{TireID: second.ID})
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, domain.MovementTypeStockIn, history[0].Type)
}

func TestConcurrentMountsSamePosition(t *testing.T) {
	// Two mounts racing for the same slot: exactly one may commit, the
	// other gets the occupied rejection from whichever check catches it.
	for i := 0; i < 50; i++ {
		f := newFixture()
		ctx := context.Background()
		vehicle := f.createVehicle(t, "ABC1D23", "4x2")
		first := f.createTire(t, "F-101")
		second := f.createTire(t, "F-102")

		req := domain.MovementRequest{
			Type: domain.MovementTypeMount, Date: "2026-05-02",
			VehicleID: vehicle.ID, Position: domain.PositionFE,
		}

		start := make(chan struct{})
		errs := make(chan error, 2)
		for _, id := range []string{first.ID, second.ID} {
			id := id
			go func() {
				<-start
				_, _, err := f.tires.RequestMovement(ctx, id, req)
				errs <- err
			}()
		}
		close(start)

		var failures []error
		for j := 0; j < 2; j++ {
			if err := <-errs; err != nil {
				failures = append(failures, err)
			}
		}
		require.Len(t, failures, 1, "exactly one mount must commit")
		var occupied *domain.PositionOccupiedError
		require.ErrorAs(t, failures[0], &occupied)

		mounted, err := f.tires.ListTires(ctx, repository.TireFilter{
			Status: domain.TireStatusMounted, VehicleID: vehicle.ID,
		})
		require.NoError(t, err)
		require.Len(t, mounted, 1, "one occupant per position")
	}
}

func TestMountOccupancyRecheckedAtCommit(t *testing.T) {
	// Drive the storage primitive directly, past the service pre-check,
	// to confirm the commit-time re-check still rejects a taken slot.
	f := newFixture()
	ctx := context.Background()
	vehicle := f.createVehicle(t, "ABC1D23", "4x2")
	first := f.createTire(t, "F-101")
	_, _, err := f.tires.RequestMovement(ctx, first.ID, domain.MovementRequest{
		Type: domain.MovementTypeMount, Date: "2026-05-02",
		VehicleID: vehicle.ID, Position: domain.PositionFE,
	})
	require.NoError(t, err)

	second := f.createTire(t, "F-102")
	next, mv, err := domain.Transition(*second, domain.MovementRequest{
		Type: domain.MovementTypeMount, Date: "2026-05-02",
		VehicleID: vehicle.ID, Position: domain.PositionFE,
	})
	require.NoError(t, err)

	err = f.store.Tires.ApplyMovement(ctx, &next, &mv)
	var occupied *domain.PositionOccupiedError
	require.ErrorAs(t, err, &occupied)
	assert.Equal(t, "F-101", occupied.OccupantFireNumber)

	// The rejected mount left no trace.
	stored, err := f.tires.GetTire(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TireStatusInStock, stored.Status)

	history, err := f.tires.ListMovements(ctx, domain.MovementFilter{TireID: second.ID})
	require.NoError(t, err)
	require.Len(t, history, 1)
}

func TestMountPositionOutsideLayout(t *testing.T) {
	f := newFixture()
	vehicle := f.createVehicle(t, "ABC1D23", "Carro")
	tire := f.createTire(t, "F-101")

	_, _, err := f.tires.RequestMovement(context.Background(), tire.ID, domain.MovementRequest{
		Type: domain.MovementTypeMount, Date: "2026-05-02",
		VehicleID: vehicle.ID, Position: domain.PositionTDEI,
	})
	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "position", validation.Field)
}

func TestMountUnknownVehicle(t *testing.T) {
	f := newFixture()
	tire := f.createTire(t, "F-101")

	_, _, err := f.tires.RequestMovement(context.Background(), tire.ID, domain.MovementRequest{
		Type: domain.MovementTypeMount, Date: "2026-05-02",
		VehicleID: "missing", Position: domain.PositionFE,
	})
	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "vehicle_id", validation.Field)
}

func TestMovementAtomicity(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	vehicle := f.createVehicle(t, "ABC1D23", "4x2")
	tire := f.createTire(t, "F-101")

	injected := errors.New("storage unavailable")
	f.store.FailNextBatch(injected)

	_, _, err := f.tires.RequestMovement(ctx, tire.ID, domain.MovementRequest{
		Type: domain.MovementTypeMount, Date: "2026-05-02",
		VehicleID: vehicle.ID, Position: domain.PositionFE,
	})
	require.ErrorIs(t, err, injected)

	// Neither half of the dual write may have landed.
	stored, err := f.tires.GetTire(ctx, tire.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TireStatusInStock, stored.Status)
	assert.Nil(t, stored.CurrentVehicleID)

	history, err := f.tires.ListMovements(ctx, domain.MovementFilter{TireID: tire.ID})
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestLedgerOrdering(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	vehicle := f.createVehicle(t, "ABC1D23", "4x2")
	tire := f.createTire(t, "F-101")

	// Backdated entries and same-date ties: listing must come back by
	// business date descending, then insertion order descending.
	steps := []domain.MovementRequest{
		{Type: domain.MovementTypeMount, Date: "2026-05-10", VehicleID: vehicle.ID, Position: domain.PositionFE},
		{Type: domain.MovementTypeDismount, Date: "2026-05-10"},
		{Type: domain.MovementTypeToRepair, Date: "2026-05-08", Destination: "Borracharia Silva"},
	}
	for _, req := range steps {
		_, _, err := f.tires.RequestMovement(ctx, tire.ID, req)
		require.NoError(t, err)
	}

	history, err := f.tires.ListMovements(ctx, domain.MovementFilter{TireID: tire.ID})
	require.NoError(t, err)
	require.Len(t, history, 4)
	assert.Equal(t, domain.MovementTypeDismount, history[0].Type, "same-date tie broken by insertion order")
	assert.Equal(t, domain.MovementTypeMount, history[1].Type)
	assert.Equal(t, domain.MovementTypeToRepair, history[2].Type)
	assert.Equal(t, domain.MovementTypeStockIn, history[3].Type)
}

func TestScrappedTireRejectsMovements(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	tire := f.createTire(t, "F-101")

	_, _, err := f.tires.RequestMovement(ctx, tire.ID, domain.MovementRequest{
		Type: domain.MovementTypeScrap, Date: "2026-05-02",
		ToCondition: domain.TireConditionEndOfLife,
	})
	require.NoError(t, err)

	_, _, err = f.tires.RequestMovement(ctx, tire.ID, domain.MovementRequest{
		Type: domain.MovementTypeToRepair, Date: "2026-05-03",
	})
	assert.ErrorIs(t, err, domain.ErrTireScrapped)
}

func TestUpdateTireConditionGoesThroughLedger(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	tire := f.createTire(t, "F-101")

	edited := *tire
	edited.Notes = "recapado em maio"
	edited.Condition = domain.TireConditionRetread1
	updated, err := f.tires.UpdateTire(ctx, &edited)
	require.NoError(t, err)
	assert.Equal(t, domain.TireConditionRetread1, updated.Condition)

	history, err := f.tires.ListMovements(ctx, domain.MovementFilter{TireID: tire.ID})
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, domain.MovementTypeConditionChange, history[0].Type)
	require.NotNil(t, history[0].FromCondition)
	assert.Equal(t, domain.TireConditionNew, *history[0].FromCondition)

	// The attribute edit landed in the same batch as the movement.
	stored, err := f.tires.GetTire(ctx, tire.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TireConditionRetread1, stored.Condition)
	assert.Equal(t, "recapado em maio", stored.Notes)
}

func TestUpdateTireConditionEditIsAtomic(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	tire := f.createTire(t, "F-101")

	injected := errors.New("storage unavailable")
	f.store.FailNextBatch(injected)

	edited := *tire
	edited.Notes = "recapado em maio"
	edited.Condition = domain.TireConditionRetread1
	_, err := f.tires.UpdateTire(ctx, &edited)
	require.ErrorIs(t, err, injected)

	// The failed edit must leave condition, attributes and ledger alone.
	stored, err := f.tires.GetTire(ctx, tire.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TireConditionNew, stored.Condition)
	assert.Empty(t, stored.Notes)

	history, err := f.tires.ListMovements(ctx, domain.MovementFilter{TireID: tire.ID})
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestUpdateTireCannotTouchLifecycle(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	tire := f.createTire(t, "F-101")

	vehicleID := "veh-sneaky"
	position := domain.PositionFE
	edited := *tire
	edited.Status = domain.TireStatusMounted
	edited.CurrentVehicleID = &vehicleID
	edited.CurrentPosition = &position

	updated, err := f.tires.UpdateTire(ctx, &edited)
	require.NoError(t, err)
	assert.Equal(t, domain.TireStatusInStock, updated.Status)
	assert.Nil(t, updated.CurrentVehicleID)
	assert.Nil(t, updated.CurrentPosition)
}

func TestDeleteTireRemovesHistory(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	tire := f.createTire(t, "F-101")
	other := f.createTire(t, "F-102")

	require.NoError(t, f.tires.DeleteTire(ctx, tire.ID))

	_, err := f.tires.GetTire(ctx, tire.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	history, err := f.tires.ListMovements(ctx, domain.MovementFilter{TireID: tire.ID})
	require.NoError(t, err)
	assert.Empty(t, history)

	// Unrelated tires keep their entries.
	history, err = f.tires.ListMovements(ctx, domain.MovementFilter{TireID: other.ID})
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestLowTreadTires(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	vehicle := f.createVehicle(t, "ABC1D23", "4x2")

	worn := f.createTire(t, "F-101")
	fresh := f.createTire(t, "F-102")
	for i, tire := range []*domain.Tire{worn, fresh} {
		pos := []domain.TirePosition{domain.PositionFE, domain.PositionFD}[i]
		_, _, err := f.tires.RequestMovement(ctx, tire.ID, domain.MovementRequest{
			Type: domain.MovementTypeMount, Date: "2026-05-02",
			VehicleID: vehicle.ID, Position: pos,
		})
		require.NoError(t, err)
	}

	depth := 2.5
	_, _, err := f.tires.RequestMovement(ctx, worn.ID, domain.MovementRequest{
		Type: domain.MovementTypeTreadMeasurement, Date: "2026-05-03",
		TreadDepthMm: &depth,
	})
	require.NoError(t, err)

	low, err := f.tires.LowTreadTires(ctx, 3.0)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, "F-101", low[0].FireNumber)
}

func TestListTiresFilters(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	vehicle := f.createVehicle(t, "ABC1D23", "4x2")
	mounted := f.createTire(t, "F-101")
	f.createTire(t, "F-102")

	_, _, err := f.tires.RequestMovement(ctx, mounted.ID, domain.MovementRequest{
		Type: domain.MovementTypeMount, Date: "2026-05-02",
		VehicleID: vehicle.ID, Position: domain.PositionFE,
	})
	require.NoError(t, err)

	inStock, err := f.tires.ListTires(ctx, repository.TireFilter{Status: domain.TireStatusInStock})
	require.NoError(t, err)
	require.Len(t, inStock, 1)
	assert.Equal(t, "F-102", inStock[0].FireNumber)

	onVehicle, err := f.tires.ListTires(ctx, repository.TireFilter{VehicleID: vehicle.ID})
	require.NoError(t, err)
	require.Len(t, onVehicle, 1)
	assert.Equal(t, "F-101", onVehicle[0].FireNumber)
}
