package domain

type MaintenanceType string

const (
	MaintenanceTypePreventive MaintenanceType = "PREVENTIVE"
	MaintenanceTypeCorrective MaintenanceType = "CORRECTIVE"
)

type MaintenanceStatus string

const (
	MaintenanceStatusScheduled    MaintenanceStatus = "SCHEDULED"
	MaintenanceStatusOpen         MaintenanceStatus = "OPEN"
	MaintenanceStatusInProgress   MaintenanceStatus = "IN_PROGRESS"
	MaintenanceStatusWaitingParts MaintenanceStatus = "WAITING_PARTS"
	MaintenanceStatusCompleted    MaintenanceStatus = "COMPLETED"
	MaintenanceStatusCancelled    MaintenanceStatus = "CANCELLED"
)

// Maintenance is one workshop entry for a vehicle.
type Maintenance struct {
	ID            string            `json:"id"`
	VehicleID     string            `json:"vehicle_id"`
	Type          MaintenanceType   `json:"type"`
	Status        MaintenanceStatus `json:"status"`
	InvoiceNumber string            `json:"invoice_number,omitempty"`
	Description   string            `json:"description"`

	OpenDate      string `json:"open_date,omitempty"`
	CloseDate     string `json:"close_date,omitempty"`
	ScheduledDate string `json:"scheduled_date,omitempty"`

	CostCents  int64  `json:"cost_cents,omitempty"`
	Mechanic   string `json:"mechanic,omitempty"`
	OdometerKm *int64 `json:"odometer_km,omitempty"`
	Notes      string `json:"notes,omitempty"`

	CreatedOn string `json:"created_on"`
	UpdatedOn string `json:"updated_on"`
}
