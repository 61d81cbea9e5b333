package domain

type VehicleStatus string

const (
	VehicleStatusActive      VehicleStatus = "ACTIVE"
	VehicleStatusMaintenance VehicleStatus = "MAINTENANCE"
	VehicleStatusInactive    VehicleStatus = "INACTIVE"
	VehicleStatusSold        VehicleStatus = "SOLD"
)

type VehicleType string

const (
	VehicleTypeTruck      VehicleType = "TRUCK"
	VehicleTypeTrailer    VehicleType = "TRAILER"
	VehicleTypeVan        VehicleType = "VAN"
	VehicleTypeCar        VehicleType = "CAR"
	VehicleTypeMotorcycle VehicleType = "MOTORCYCLE"
	VehicleTypeOther      VehicleType = "OTHER"
)

// Vehicle is the registry record the tire subsystem resolves layouts and
// odometer context against.
type Vehicle struct {
	ID         string        `json:"id"`
	Plate      string        `json:"plate"`
	FleetNo    string        `json:"fleet_no,omitempty"`
	Brand      string        `json:"brand"`
	Model      string        `json:"model"`
	Type       VehicleType   `json:"type"`
	Status     VehicleStatus `json:"status"`
	Department string        `json:"department,omitempty"`

	// AxleConfiguration feeds ResolveLayout; empty means the generic
	// 4-position fallback.
	AxleConfiguration string `json:"axle_configuration,omitempty"`

	OdometerKm *int64 `json:"odometer_km,omitempty"`
	Notes      string `json:"notes,omitempty"`

	CreatedOn string `json:"created_on"`
	UpdatedOn string `json:"updated_on"`
}
