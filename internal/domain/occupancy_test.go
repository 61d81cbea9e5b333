package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mountedAt(id, fireNumber, vehicleID string, pos TirePosition) Tire {
	return Tire{
		ID:               id,
		FireNumber:       fireNumber,
		Status:           TireStatusMounted,
		CurrentVehicleID: &vehicleID,
		CurrentPosition:  &pos,
	}
}

func TestFindOccupant(t *testing.T) {
	tires := []Tire{
		mountedAt("t1", "F-1", "veh-1", PositionFE),
		mountedAt("t2", "F-2", "veh-1", PositionFD),
		mountedAt("t3", "F-3", "veh-2", PositionFE),
		{ID: "t4", FireNumber: "F-4", Status: TireStatusInStock},
	}

	occ := FindOccupant(tires, "veh-1", PositionFE, "")
	require.NotNil(t, occ)
	assert.Equal(t, "t1", occ.ID)

	// Same position on another vehicle is a different slot.
	occ = FindOccupant(tires, "veh-2", PositionFD, "")
	assert.Nil(t, occ)

	// A tire never blocks its own slot.
	occ = FindOccupant(tires, "veh-1", PositionFE, "t1")
	assert.Nil(t, occ)

	// Unmounted tires hold no slot regardless of stale fields.
	occ = FindOccupant(tires, "veh-1", PositionTDEI, "")
	assert.Nil(t, occ)
}

func TestFindOccupantIgnoresInconsistentRows(t *testing.T) {
	vehicle := "veh-1"
	tires := []Tire{
		{ID: "bad", Status: TireStatusMounted, CurrentVehicleID: &vehicle},
	}
	assert.Nil(t, FindOccupant(tires, "veh-1", PositionFE, ""))
}
