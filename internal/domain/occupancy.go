package domain

// FindOccupant scans current tire state for a mounted tire occupying the
// given (vehicle, position) slot, skipping excludeTireID so a tire's own
// re-validation stays idempotent. Pure query: placement fields on Tire are
// authoritative, the ledger is never replayed to answer occupancy.
func FindOccupant(tires []Tire, vehicleID string, position TirePosition, excludeTireID string) *Tire {
	for i := range tires {
		t := &tires[i]
		if t.ID == excludeTireID {
			continue
		}
		if t.Status != TireStatusMounted || t.CurrentVehicleID == nil || t.CurrentPosition == nil {
			continue
		}
		if *t.CurrentVehicleID == vehicleID && *t.CurrentPosition == position {
			return t
		}
	}
	return nil
}
