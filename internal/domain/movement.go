package domain

type MovementType string

const (
	MovementTypeStockIn          MovementType = "STOCK_IN"
	MovementTypeMount            MovementType = "MOUNT"
	MovementTypeDismount         MovementType = "DISMOUNT"
	MovementTypeToRepair         MovementType = "TO_REPAIR"
	MovementTypeFromRepair       MovementType = "FROM_REPAIR"
	MovementTypeScrap            MovementType = "SCRAP"
	MovementTypeConditionChange  MovementType = "CONDITION_CHANGE"
	MovementTypeTreadMeasurement MovementType = "TREAD_MEASUREMENT"
)

// TireMovement is one immutable ledger entry. Entries are created only by
// the transition engine, in the same atomic batch as the tire update they
// describe, and are never edited afterwards. The only deletion path is the
// cascade when the parent tire is deleted.
type TireMovement struct {
	ID     string       `json:"id"`
	TireID string       `json:"tire_id"`
	Type   MovementType `json:"type"`
	Date   string       `json:"date"` // business date, not system clock

	VehicleID  *string `json:"vehicle_id,omitempty"`
	OdometerKm *int64  `json:"odometer_km,omitempty"`

	// Snapshot of the transition: from* captured from the tire's state
	// before mutation, to* reflecting the requested new state.
	FromPosition  *TirePosition  `json:"from_position,omitempty"`
	ToPosition    *TirePosition  `json:"to_position,omitempty"`
	FromCondition *TireCondition `json:"from_condition,omitempty"`
	ToCondition   *TireCondition `json:"to_condition,omitempty"`

	CostCents    *int64   `json:"cost_cents,omitempty"`
	Destination  string   `json:"destination,omitempty"` // repair shop, scrap yard
	Notes        string   `json:"notes,omitempty"`
	TreadDepthMm *float64 `json:"tread_depth_mm,omitempty"`

	// Seq is the store-assigned insertion counter. Listings order by
	// Date desc then Seq desc so same-date entries stay deterministic.
	Seq       int64  `json:"seq"`
	CreatedOn string `json:"created_on"`
}

// MovementFilter narrows ledger listings.
type MovementFilter struct {
	TireID    string
	VehicleID string
	Type      MovementType
	DateFrom  string
	DateTo    string
}

// MovementRequest is a caller's request to move a tire through one state
// transition. Which fields are required depends on Type; Validate enforces
// that before any store access.
type MovementRequest struct {
	Type MovementType `json:"type"`
	Date string       `json:"date"`

	VehicleID string       `json:"vehicle_id,omitempty"` // Mount target
	Position  TirePosition `json:"position,omitempty"`   // Mount target

	// Optional condition override; defaults to the tire's current
	// condition when empty.
	ToCondition TireCondition `json:"to_condition,omitempty"`

	OdometerKm   *int64   `json:"odometer_km,omitempty"`
	TreadDepthMm *float64 `json:"tread_depth_mm,omitempty"`
	CostCents    *int64   `json:"cost_cents,omitempty"`
	Destination  string   `json:"destination,omitempty"`
	Notes        string   `json:"notes,omitempty"`
}
