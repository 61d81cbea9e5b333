package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stockTire() Tire {
	depth := 18.0
	return Tire{
		ID:           "tire-1",
		FireNumber:   "F-101",
		Brand:        "Michelin",
		Model:        "X Multi Z",
		Dimensions:   "295/80R22.5",
		Status:       TireStatusInStock,
		Condition:    TireConditionNew,
		TreadDepthMm: &depth,
	}
}

func mountedTire() Tire {
	t := stockTire()
	vehicle := "veh-1"
	pos := PositionFE
	t.Status = TireStatusMounted
	t.CurrentVehicleID = &vehicle
	t.CurrentPosition = &pos
	return t
}

func TestTransitionMount(t *testing.T) {
	km := int64(120000)
	next, mv, err := Transition(stockTire(), MovementRequest{
		Type:       MovementTypeMount,
		Date:       "2026-03-10",
		VehicleID:  "veh-1",
		Position:   PositionFD,
		OdometerKm: &km,
	})
	require.NoError(t, err)

	assert.Equal(t, TireStatusMounted, next.Status)
	require.NotNil(t, next.CurrentVehicleID)
	assert.Equal(t, "veh-1", *next.CurrentVehicleID)
	require.NotNil(t, next.CurrentPosition)
	assert.Equal(t, PositionFD, *next.CurrentPosition)
	assert.Equal(t, &km, next.LastOdometerKm)
	assert.True(t, next.PlacementConsistent())

	assert.Equal(t, MovementTypeMount, mv.Type)
	require.NotNil(t, mv.VehicleID)
	assert.Equal(t, "veh-1", *mv.VehicleID)
	assert.Nil(t, mv.FromPosition)
	require.NotNil(t, mv.ToPosition)
	assert.Equal(t, PositionFD, *mv.ToPosition)
}

func TestTransitionMountRequiresStock(t *testing.T) {
	_, _, err := Transition(mountedTire(), MovementRequest{
		Type:      MovementTypeMount,
		Date:      "2026-03-10",
		VehicleID: "veh-2",
		Position:  PositionFE,
	})
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestTransitionDismount(t *testing.T) {
	next, mv, err := Transition(mountedTire(), MovementRequest{
		Type: MovementTypeDismount,
		Date: "2026-03-11",
	})
	require.NoError(t, err)

	assert.Equal(t, TireStatusInStock, next.Status)
	assert.Nil(t, next.CurrentVehicleID)
	assert.Nil(t, next.CurrentPosition)
	assert.True(t, next.PlacementConsistent())

	// The entry keeps the vehicle the tire left and its old slot.
	require.NotNil(t, mv.VehicleID)
	assert.Equal(t, "veh-1", *mv.VehicleID)
	require.NotNil(t, mv.FromPosition)
	assert.Equal(t, PositionFE, *mv.FromPosition)
	assert.Nil(t, mv.ToPosition)
}

func TestTransitionDismountRequiresMounted(t *testing.T) {
	_, _, err := Transition(stockTire(), MovementRequest{
		Type: MovementTypeDismount,
		Date: "2026-03-11",
	})
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestTransitionToRepairClearsPlacement(t *testing.T) {
	// A tire can go straight from mounted to the repair shop without an
	// explicit dismount first; it must not stay attached to the vehicle.
	next, mv, err := Transition(mountedTire(), MovementRequest{
		Type:        MovementTypeToRepair,
		Date:        "2026-03-12",
		Destination: "Borracharia Silva",
	})
	require.NoError(t, err)

	assert.Equal(t, TireStatusInRepair, next.Status)
	assert.Nil(t, next.CurrentVehicleID)
	assert.Nil(t, next.CurrentPosition)
	assert.True(t, next.PlacementConsistent())
	assert.Equal(t, "Borracharia Silva", mv.Destination)
}

func TestTransitionFromRepair(t *testing.T) {
	tire := stockTire()
	tire.Status = TireStatusInRepair

	cost := int64(45000)
	next, mv, err := Transition(tire, MovementRequest{
		Type:        MovementTypeFromRepair,
		Date:        "2026-03-20",
		ToCondition: TireConditionRepaired,
		CostCents:   &cost,
	})
	require.NoError(t, err)

	assert.Equal(t, TireStatusInStock, next.Status)
	assert.Equal(t, TireConditionRepaired, next.Condition)
	require.NotNil(t, mv.FromCondition)
	assert.Equal(t, TireConditionNew, *mv.FromCondition)
	require.NotNil(t, mv.ToCondition)
	assert.Equal(t, TireConditionRepaired, *mv.ToCondition)
	assert.Equal(t, &cost, mv.CostCents)
}

func TestTransitionFromRepairRequiresInRepair(t *testing.T) {
	_, _, err := Transition(stockTire(), MovementRequest{
		Type: MovementTypeFromRepair,
		Date: "2026-03-20",
	})
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestTransitionScrapIsTerminal(t *testing.T) {
	next, _, err := Transition(mountedTire(), MovementRequest{
		Type:        MovementTypeScrap,
		Date:        "2026-04-01",
		ToCondition: TireConditionEndOfLife,
	})
	require.NoError(t, err)
	assert.Equal(t, TireStatusScrapped, next.Status)
	assert.Nil(t, next.CurrentVehicleID)
	assert.True(t, next.PlacementConsistent())

	// Nothing moves a scrapped tire, not even a measurement.
	for _, typ := range []MovementType{
		MovementTypeMount, MovementTypeDismount, MovementTypeToRepair,
		MovementTypeFromRepair, MovementTypeScrap,
		MovementTypeConditionChange, MovementTypeTreadMeasurement,
	} {
		_, _, err := Transition(next, MovementRequest{
			Type:      typ,
			Date:      "2026-04-02",
			VehicleID: "veh-1",
			Position:  PositionFE,
		})
		assert.ErrorIs(t, err, ErrTireScrapped, "type %s", typ)
	}
}

func TestTransitionTreadMeasurement(t *testing.T) {
	depth := 9.5
	next, mv, err := Transition(mountedTire(), MovementRequest{
		Type:         MovementTypeTreadMeasurement,
		Date:         "2026-03-15",
		TreadDepthMm: &depth,
	})
	require.NoError(t, err)

	// Measurement is status-neutral: the tire stays where it is.
	assert.Equal(t, TireStatusMounted, next.Status)
	require.NotNil(t, next.CurrentPosition)
	assert.Equal(t, PositionFE, *next.CurrentPosition)
	assert.Equal(t, &depth, next.TreadDepthMm)
	assert.Equal(t, &depth, mv.TreadDepthMm)
}

func TestTransitionConditionChange(t *testing.T) {
	next, mv, err := Transition(stockTire(), MovementRequest{
		Type:        MovementTypeConditionChange,
		Date:        "2026-03-16",
		ToCondition: TireConditionRetread1,
	})
	require.NoError(t, err)

	assert.Equal(t, TireStatusInStock, next.Status)
	assert.Equal(t, TireConditionRetread1, next.Condition)
	require.NotNil(t, mv.FromCondition)
	assert.Equal(t, TireConditionNew, *mv.FromCondition)
}

func TestMovementRequestValidate(t *testing.T) {
	cases := []struct {
		name string
		req  MovementRequest
	}{
		{"stock-in rejected", MovementRequest{Type: MovementTypeStockIn, Date: "2026-01-01"}},
		{"unknown type", MovementRequest{Type: "TELEPORT", Date: "2026-01-01"}},
		{"missing date", MovementRequest{Type: MovementTypeDismount}},
		{"bad date format", MovementRequest{Type: MovementTypeDismount, Date: "01/02/2026"}},
		{"mount without vehicle", MovementRequest{Type: MovementTypeMount, Date: "2026-01-01", Position: PositionFE}},
		{"mount without position", MovementRequest{Type: MovementTypeMount, Date: "2026-01-01", VehicleID: "veh-1"}},
		{"mount unknown position", MovementRequest{Type: MovementTypeMount, Date: "2026-01-01", VehicleID: "veh-1", Position: "XX"}},
		{"unknown condition", MovementRequest{Type: MovementTypeDismount, Date: "2026-01-01", ToCondition: "WORN"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var validation *ValidationError
			require.ErrorAs(t, tc.req.Validate(), &validation)
		})
	}
}
