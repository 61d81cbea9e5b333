package jobs

import (
	"context"
	"time"

	"frota-backend/internal/logger"
)

// SendLowTreadAlerts finds mounted tires whose last measured tread depth
// is at or below the configured threshold and emails the fleet contacts.
func (jr *JobRunner) SendLowTreadAlerts() {
	jr.runWithRecovery("SendLowTreadAlerts", func() {
		ctx := context.Background()

		threshold := jr.config.Alerts.MinTreadDepthMm
		low, err := jr.services.Tire.LowTreadTires(ctx, threshold)
		if err != nil {
			logger.Error("Failed to query low tread tires", "error", err)
			return
		}
		if len(low) == 0 {
			logger.Debug("No tires below tread threshold", "threshold_mm", threshold)
			return
		}

		logger.Info("Tires below tread threshold",
			"count", len(low), "threshold_mm", threshold)
		for _, t := range low {
			logger.Debug("Low tread tire",
				"tire_id", t.ID,
				"fire_number", t.FireNumber,
				"tread_depth_mm", t.TreadDepthMm)
		}

		if err := jr.services.Email.SendLowTreadAlert(ctx, jr.config.Email.AlertTo, low); err != nil {
			logger.Error("Failed to send low tread alert", "error", err)
		}
	})
}

// ActivateScheduledMaintenance opens maintenance records whose scheduled
// date has arrived.
func (jr *JobRunner) ActivateScheduledMaintenance() {
	jr.runWithRecovery("ActivateScheduledMaintenance", func() {
		ctx := context.Background()

		today := time.Now().Format("2006-01-02")
		activated, err := jr.services.Maintenance.ActivateDue(ctx, today)
		if err != nil {
			logger.Error("Failed to activate scheduled maintenances", "error", err)
			return
		}

		logger.Info("Activated scheduled maintenances", "count", len(activated))
		for _, m := range activated {
			logger.Debug("Maintenance opened",
				"maintenance_id", m.ID,
				"vehicle_id", m.VehicleID,
				"scheduled_date", m.ScheduledDate)
		}
	})
}
