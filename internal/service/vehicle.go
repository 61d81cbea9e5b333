package service

import (
	"context"
	"time"

	"frota-backend/internal/domain"
	"frota-backend/internal/logger"
	"frota-backend/internal/repository"
)

type vehicleService struct {
	vehicleRepo repository.VehicleRepository
	tireRepo    repository.TireRepository
}

func NewVehicleService(
	vehicleRepo repository.VehicleRepository,
	tireRepo repository.TireRepository,
) VehicleService {
	return &vehicleService{
		vehicleRepo: vehicleRepo,
		tireRepo:    tireRepo,
	}
}

func (s *vehicleService) CreateVehicle(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	if vehicle.Plate == "" {
		return nil, domain.NewValidationError("plate", "plate is required")
	}
	if vehicle.Type == "" {
		vehicle.Type = domain.VehicleTypeTruck
	}
	if vehicle.Status == "" {
		vehicle.Status = domain.VehicleStatusActive
	}
	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, err
	}
	logger.WithService("vehicle").Info("vehicle created",
		"vehicle_id", vehicle.ID, "plate", vehicle.Plate)
	return vehicle, nil
}

func (s *vehicleService) GetVehicle(ctx context.Context, id string) (*domain.Vehicle, error) {
	return s.vehicleRepo.GetByID(ctx, id)
}

func (s *vehicleService) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	return s.vehicleRepo.List(ctx)
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	current, err := s.vehicleRepo.GetByID(ctx, vehicle.ID)
	if err != nil {
		return nil, err
	}
	vehicle.CreatedOn = current.CreatedOn
	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

func (s *vehicleService) DeleteVehicle(ctx context.Context, id string) error {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	mounted, err := s.tireRepo.List(ctx, repository.TireFilter{
		Status:    domain.TireStatusMounted,
		VehicleID: id,
	})
	if err != nil {
		return err
	}

	// Each mounted tire gets a real Dismount through the transition
	// engine, so the ledger explains why the tire went back to stock.
	today := time.Now().Format("2006-01-02")
	dismounted := make([]domain.Tire, 0, len(mounted))
	movements := make([]domain.TireMovement, 0, len(mounted))
	for _, tire := range mounted {
		next, mv, err := domain.Transition(tire, domain.MovementRequest{
			Type:  domain.MovementTypeDismount,
			Date:  today,
			Notes: "Desmontado: veículo " + vehicle.Plate + " removido da frota",
		})
		if err != nil {
			return err
		}
		dismounted = append(dismounted, next)
		movements = append(movements, mv)
	}

	if err := s.vehicleRepo.DeleteCascade(ctx, id, dismounted, movements); err != nil {
		return err
	}
	logger.WithService("vehicle").Info("vehicle deleted",
		"vehicle_id", id, "plate", vehicle.Plate, "dismounted_tires", len(dismounted))
	return nil
}

func (s *vehicleService) GetVehicleLayout(ctx context.Context, id string) (*VehicleLayout, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	mounted, err := s.tireRepo.List(ctx, repository.TireFilter{
		Status:    domain.TireStatusMounted,
		VehicleID: id,
	})
	if err != nil {
		return nil, err
	}

	byPosition := make(map[domain.TirePosition]*domain.Tire, len(mounted))
	for i := range mounted {
		if mounted[i].CurrentPosition != nil {
			byPosition[*mounted[i].CurrentPosition] = &mounted[i]
		}
	}

	layout := domain.ResolveLayout(vehicle.AxleConfiguration)
	slots := make([]PositionSlot, 0, len(layout.Regular)+len(layout.Spares))
	for _, pos := range layout.Regular {
		slots = append(slots, PositionSlot{
			Position: pos,
			Label:    pos.Label(),
			Tire:     byPosition[pos],
		})
	}
	for _, pos := range layout.Spares {
		slots = append(slots, PositionSlot{
			Position: pos,
			Label:    pos.Label(),
			Spare:    true,
			Tire:     byPosition[pos],
		})
	}

	available, err := s.tireRepo.List(ctx, repository.TireFilter{
		Status: domain.TireStatusInStock,
	})
	if err != nil {
		return nil, err
	}

	return &VehicleLayout{
		Vehicle:   *vehicle,
		Layout:    layout,
		Slots:     slots,
		Available: available,
	}, nil
}
