package domain

type TireStatus string

const (
	TireStatusInStock  TireStatus = "IN_STOCK"
	TireStatusMounted  TireStatus = "MOUNTED"
	TireStatusInRepair TireStatus = "IN_REPAIR"
	TireStatusScrapped TireStatus = "SCRAPPED"
)

type TireCondition string

const (
	TireConditionNew       TireCondition = "NEW"
	TireConditionRetread1  TireCondition = "RETREAD_1"
	TireConditionRetread2  TireCondition = "RETREAD_2"
	TireConditionRepaired  TireCondition = "REPAIRED"
	TireConditionEndOfLife TireCondition = "END_OF_LIFE"
)

// Tire is the authoritative current-state record for one physical tire.
// Placement (CurrentVehicleID, CurrentPosition) is the single source of
// truth for what is mounted where; occupancy questions are answered from
// these fields, never by replaying the movement ledger.
type Tire struct {
	ID         string `json:"id"`
	FireNumber string `json:"fire_number"` // human-assigned marking number
	Brand      string `json:"brand"`
	Model      string `json:"model"`
	Dimensions string `json:"dimensions"` // e.g. 295/80R22.5
	DOT        string `json:"dot,omitempty"`

	PurchaseDate string `json:"purchase_date,omitempty"`
	CostCents    int64  `json:"cost_cents,omitempty"`

	Status    TireStatus    `json:"status"`
	Condition TireCondition `json:"condition"`

	// Set if and only if Status == MOUNTED.
	CurrentVehicleID *string       `json:"current_vehicle_id,omitempty"`
	CurrentPosition  *TirePosition `json:"current_position,omitempty"`

	LastOdometerKm *int64   `json:"last_odometer_km,omitempty"`
	TreadDepthMm   *float64 `json:"tread_depth_mm,omitempty"`
	Notes          string   `json:"notes,omitempty"`

	CreatedOn string `json:"created_on"`
	UpdatedOn string `json:"updated_on"`
}

// Mounted reports whether the tire currently occupies a vehicle position.
func (t *Tire) Mounted() bool {
	return t.Status == TireStatusMounted && t.CurrentVehicleID != nil && t.CurrentPosition != nil
}

// PlacementConsistent checks the core invariant: MOUNTED implies both
// placement fields are set, any other status implies both are nil.
func (t *Tire) PlacementConsistent() bool {
	if t.Status == TireStatusMounted {
		return t.CurrentVehicleID != nil && t.CurrentPosition != nil
	}
	return t.CurrentVehicleID == nil && t.CurrentPosition == nil
}
