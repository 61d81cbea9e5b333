package service

import (
	"context"

	"frota-backend/internal/domain"
	"frota-backend/internal/logger"
	"frota-backend/internal/repository"
)

type maintenanceService struct {
	maintenanceRepo repository.MaintenanceRepository
	vehicleRepo     repository.VehicleRepository
}

func NewMaintenanceService(
	maintenanceRepo repository.MaintenanceRepository,
	vehicleRepo repository.VehicleRepository,
) MaintenanceService {
	return &maintenanceService{
		maintenanceRepo: maintenanceRepo,
		vehicleRepo:     vehicleRepo,
	}
}

func (s *maintenanceService) CreateMaintenance(ctx context.Context, m *domain.Maintenance) (*domain.Maintenance, error) {
	if m.VehicleID == "" {
		return nil, domain.NewValidationError("vehicle_id", "vehicle is required")
	}
	if _, err := s.vehicleRepo.GetByID(ctx, m.VehicleID); err != nil {
		if err == domain.ErrNotFound {
			return nil, domain.NewValidationError("vehicle_id", "vehicle does not exist")
		}
		return nil, err
	}
	if m.Description == "" {
		return nil, domain.NewValidationError("description", "description is required")
	}
	if m.Type == "" {
		m.Type = domain.MaintenanceTypeCorrective
	}
	if m.Status == "" {
		m.Status = domain.MaintenanceStatusOpen
	}
	if m.Status == domain.MaintenanceStatusScheduled && m.ScheduledDate == "" {
		return nil, domain.NewValidationError("scheduled_date", "scheduled maintenance needs a date")
	}
	if err := s.maintenanceRepo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *maintenanceService) GetMaintenance(ctx context.Context, id string) (*domain.Maintenance, error) {
	return s.maintenanceRepo.GetByID(ctx, id)
}

func (s *maintenanceService) ListMaintenances(ctx context.Context, vehicleID string, status domain.MaintenanceStatus) ([]domain.Maintenance, error) {
	return s.maintenanceRepo.List(ctx, vehicleID, status)
}

func (s *maintenanceService) UpdateMaintenance(ctx context.Context, m *domain.Maintenance) (*domain.Maintenance, error) {
	current, err := s.maintenanceRepo.GetByID(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	m.VehicleID = current.VehicleID
	m.CreatedOn = current.CreatedOn
	if err := s.maintenanceRepo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *maintenanceService) DeleteMaintenance(ctx context.Context, id string) error {
	return s.maintenanceRepo.Delete(ctx, id)
}

func (s *maintenanceService) ActivateDue(ctx context.Context, today string) ([]domain.Maintenance, error) {
	scheduled, err := s.maintenanceRepo.List(ctx, "", domain.MaintenanceStatusScheduled)
	if err != nil {
		return nil, err
	}
	var activated []domain.Maintenance
	for _, m := range scheduled {
		if m.ScheduledDate == "" || m.ScheduledDate > today {
			continue
		}
		m.Status = domain.MaintenanceStatusOpen
		m.OpenDate = today
		if err := s.maintenanceRepo.Update(ctx, &m); err != nil {
			return activated, err
		}
		activated = append(activated, m)
	}
	if len(activated) > 0 {
		logger.WithService("maintenance").Info("scheduled maintenances opened",
			"count", len(activated))
	}
	return activated, nil
}
