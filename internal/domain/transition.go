package domain

import "time"

// statusAfter maps a movement type to the tire status it produces. Types
// absent from the map (condition change, tread measurement) leave the
// status untouched.
var statusAfter = map[MovementType]TireStatus{
	MovementTypeStockIn:    TireStatusInStock,
	MovementTypeMount:      TireStatusMounted,
	MovementTypeDismount:   TireStatusInStock,
	MovementTypeToRepair:   TireStatusInRepair,
	MovementTypeFromRepair: TireStatusInStock,
	MovementTypeScrap:      TireStatusScrapped,
}

// allowedFrom lists the statuses a movement type may start from. A nil
// entry means any status (scrapped tires are rejected before this table is
// consulted: SCRAPPED is terminal for every type).
var allowedFrom = map[MovementType][]TireStatus{
	MovementTypeMount:            {TireStatusInStock},
	MovementTypeDismount:         {TireStatusMounted},
	MovementTypeFromRepair:       {TireStatusInRepair},
	MovementTypeToRepair:         nil,
	MovementTypeScrap:            nil,
	MovementTypeConditionChange:  nil,
	MovementTypeTreadMeasurement: nil,
}

// Validate checks the request's own consistency: type known, business date
// parseable, Mount carrying its target. Runs before any store access.
func (r *MovementRequest) Validate() error {
	switch r.Type {
	case MovementTypeMount, MovementTypeDismount, MovementTypeToRepair,
		MovementTypeFromRepair, MovementTypeScrap,
		MovementTypeConditionChange, MovementTypeTreadMeasurement:
	case MovementTypeStockIn:
		// StockIn only ever happens implicitly at tire creation.
		return NewValidationError("type", "stock-in is recorded automatically when a tire is created")
	default:
		return NewValidationError("type", "unknown movement type")
	}

	if r.Date == "" {
		return NewValidationError("date", "movement date is required")
	}
	if _, err := time.Parse("2006-01-02", r.Date); err != nil {
		return NewValidationError("date", "movement date must be YYYY-MM-DD")
	}

	if r.Type == MovementTypeMount {
		if r.VehicleID == "" {
			return NewValidationError("vehicle_id", "target vehicle is required for mount")
		}
		if r.Position == "" {
			return NewValidationError("position", "target position is required for mount")
		}
		if !r.Position.Known() {
			return NewValidationError("position", "unknown position key")
		}
	}

	if r.ToCondition != "" && !validCondition(r.ToCondition) {
		return NewValidationError("to_condition", "unknown tire condition")
	}
	return nil
}

func validCondition(c TireCondition) bool {
	switch c {
	case TireConditionNew, TireConditionRetread1, TireConditionRetread2,
		TireConditionRepaired, TireConditionEndOfLife:
		return true
	}
	return false
}

// Transition computes the tire state after a movement request and the
// ledger entry describing it. Pure: no store access, no occupancy or layout
// knowledge. The caller validates those against the vehicle registry and
// the occupancy check before committing, and the storage layer persists the
// returned pair as one atomic unit.
//
// The movement's from* fields snapshot the tire as passed in; its ID, Seq
// and CreatedOn are left for the store to assign on append.
func Transition(tire Tire, req MovementRequest) (Tire, TireMovement, error) {
	if err := req.Validate(); err != nil {
		return Tire{}, TireMovement{}, err
	}
	if tire.Status == TireStatusScrapped {
		return Tire{}, TireMovement{}, ErrTireScrapped
	}
	if from, ok := allowedFrom[req.Type]; ok && from != nil && !statusIn(tire.Status, from) {
		return Tire{}, TireMovement{}, NewValidationError("type",
			"movement "+string(req.Type)+" is not allowed from status "+string(tire.Status))
	}

	toCondition := tire.Condition
	if req.ToCondition != "" {
		toCondition = req.ToCondition
	}

	mv := TireMovement{
		TireID:        tire.ID,
		Type:          req.Type,
		Date:          req.Date,
		OdometerKm:    req.OdometerKm,
		FromPosition:  tire.CurrentPosition,
		FromCondition: conditionPtr(tire.Condition),
		ToCondition:   conditionPtr(toCondition),
		CostCents:     req.CostCents,
		Destination:   req.Destination,
		Notes:         req.Notes,
		TreadDepthMm:  req.TreadDepthMm,
	}

	// Vehicle context: the mount target, or for removals the vehicle the
	// tire is leaving.
	switch {
	case req.Type == MovementTypeMount:
		v := req.VehicleID
		mv.VehicleID = &v
	case req.VehicleID != "":
		v := req.VehicleID
		mv.VehicleID = &v
	case tire.CurrentVehicleID != nil:
		v := *tire.CurrentVehicleID
		mv.VehicleID = &v
	}

	next := tire
	next.Condition = toCondition
	if req.OdometerKm != nil {
		next.LastOdometerKm = req.OdometerKm
	}
	if req.TreadDepthMm != nil {
		next.TreadDepthMm = req.TreadDepthMm
	}
	if s, ok := statusAfter[req.Type]; ok {
		next.Status = s
	}

	switch req.Type {
	case MovementTypeMount:
		v, p := req.VehicleID, req.Position
		next.CurrentVehicleID = &v
		next.CurrentPosition = &p
		mv.ToPosition = &p
	case MovementTypeDismount, MovementTypeToRepair, MovementTypeScrap:
		// A tire pulled for repair or scrapped cannot stay "mounted"
		// even when it was never dismounted first.
		next.CurrentVehicleID = nil
		next.CurrentPosition = nil
	}

	return next, mv, nil
}

func statusIn(s TireStatus, set []TireStatus) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

func conditionPtr(c TireCondition) *TireCondition { return &c }
