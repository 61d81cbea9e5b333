package service

import (
	"context"
	"time"

	"frota-backend/internal/domain"
	"frota-backend/internal/logger"
	"frota-backend/internal/repository"
)

type tireService struct {
	tireRepo     repository.TireRepository
	movementRepo repository.MovementRepository
	vehicleRepo  repository.VehicleRepository
}

func NewTireService(
	tireRepo repository.TireRepository,
	movementRepo repository.MovementRepository,
	vehicleRepo repository.VehicleRepository,
) TireService {
	return &tireService{
		tireRepo:     tireRepo,
		movementRepo: movementRepo,
		vehicleRepo:  vehicleRepo,
	}
}

func (s *tireService) CreateTire(ctx context.Context, tire *domain.Tire) (*domain.Tire, error) {
	if tire.FireNumber == "" {
		return nil, domain.NewValidationError("fire_number", "fire number is required")
	}
	if tire.Brand == "" {
		return nil, domain.NewValidationError("brand", "brand is required")
	}
	if tire.Dimensions == "" {
		return nil, domain.NewValidationError("dimensions", "dimensions are required")
	}
	if tire.Condition == "" {
		tire.Condition = domain.TireConditionNew
	}

	// Every tire enters the fleet in stock; placement comes later through
	// a Mount movement.
	tire.Status = domain.TireStatusInStock
	tire.CurrentVehicleID = nil
	tire.CurrentPosition = nil

	date := tire.PurchaseDate
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	condition := tire.Condition
	stockIn := domain.TireMovement{
		Type:         domain.MovementTypeStockIn,
		Date:         date,
		ToCondition:  &condition,
		TreadDepthMm: tire.TreadDepthMm,
		Notes:        "Entrada em estoque",
	}
	if tire.CostCents > 0 {
		cost := tire.CostCents
		stockIn.CostCents = &cost
	}

	if err := s.tireRepo.Create(ctx, tire, &stockIn); err != nil {
		return nil, err
	}
	logger.WithService("tire").Info("tire created",
		"tire_id", tire.ID, "fire_number", tire.FireNumber)
	return tire, nil
}

func (s *tireService) GetTire(ctx context.Context, id string) (*domain.Tire, error) {
	return s.tireRepo.GetByID(ctx, id)
}

func (s *tireService) ListTires(ctx context.Context, filter repository.TireFilter) ([]domain.Tire, error) {
	return s.tireRepo.List(ctx, filter)
}

func (s *tireService) UpdateTire(ctx context.Context, tire *domain.Tire) (*domain.Tire, error) {
	current, err := s.tireRepo.GetByID(ctx, tire.ID)
	if err != nil {
		return nil, err
	}

	// Lifecycle fields belong to the movement engine. The edit keeps the
	// stored status and placement no matter what the caller sent.
	tire.Status = current.Status
	tire.CurrentVehicleID = current.CurrentVehicleID
	tire.CurrentPosition = current.CurrentPosition
	tire.CreatedOn = current.CreatedOn

	// A changed condition goes through the ledger so the history records
	// when and from what it changed. The edited attributes ride in the
	// same batch as the movement: the edit is all-or-nothing.
	if tire.Condition != "" && tire.Condition != current.Condition {
		req := domain.MovementRequest{
			Type:        domain.MovementTypeConditionChange,
			Date:        time.Now().Format("2006-01-02"),
			ToCondition: tire.Condition,
		}
		_, mv, err := domain.Transition(*current, req)
		if err != nil {
			return nil, err
		}
		if err := s.tireRepo.ApplyMovement(ctx, tire, &mv); err != nil {
			return nil, err
		}
		return tire, nil
	}

	tire.Condition = current.Condition
	if err := s.tireRepo.Update(ctx, tire); err != nil {
		return nil, err
	}
	return tire, nil
}

func (s *tireService) DeleteTire(ctx context.Context, id string) error {
	if err := s.tireRepo.DeleteWithMovements(ctx, id); err != nil {
		return err
	}
	logger.WithService("tire").Info("tire deleted with movement history", "tire_id", id)
	return nil
}

func (s *tireService) RequestMovement(ctx context.Context, tireID string, req domain.MovementRequest) (*domain.Tire, *domain.TireMovement, error) {
	tire, err := s.tireRepo.GetByID(ctx, tireID)
	if err != nil {
		return nil, nil, err
	}

	if req.Type == domain.MovementTypeMount {
		if err := s.validateMountTarget(ctx, tire, req); err != nil {
			return nil, nil, err
		}
	}

	next, mv, err := domain.Transition(*tire, req)
	if err != nil {
		return nil, nil, err
	}
	if err := s.tireRepo.ApplyMovement(ctx, &next, &mv); err != nil {
		return nil, nil, err
	}

	logger.WithService("tire").Info("movement applied",
		"tire_id", tireID, "type", string(req.Type), "seq", mv.Seq)
	return &next, &mv, nil
}

// validateMountTarget checks the vehicle exists, the position belongs to
// its layout and the slot is free. The storage layer re-checks occupancy
// inside the write transaction; this pass exists to reject early with the
// occupant's fire number in hand.
func (s *tireService) validateMountTarget(ctx context.Context, tire *domain.Tire, req domain.MovementRequest) error {
	vehicle, err := s.vehicleRepo.GetByID(ctx, req.VehicleID)
	if err != nil {
		if err == domain.ErrNotFound {
			return domain.NewValidationError("vehicle_id", "target vehicle does not exist")
		}
		return err
	}

	layout := domain.ResolveLayout(vehicle.AxleConfiguration)
	if !layout.Contains(req.Position) {
		return domain.NewValidationError("position",
			"position "+string(req.Position)+" is not part of layout "+layout.Label)
	}

	mounted, err := s.tireRepo.List(ctx, repository.TireFilter{
		Status:    domain.TireStatusMounted,
		VehicleID: req.VehicleID,
	})
	if err != nil {
		return err
	}
	if occ := domain.FindOccupant(mounted, req.VehicleID, req.Position, tire.ID); occ != nil {
		return &domain.PositionOccupiedError{
			VehicleID:          req.VehicleID,
			Position:           req.Position,
			OccupantTireID:     occ.ID,
			OccupantFireNumber: occ.FireNumber,
		}
	}
	return nil
}

func (s *tireService) ListMovements(ctx context.Context, filter domain.MovementFilter) ([]domain.TireMovement, error) {
	return s.movementRepo.List(ctx, filter)
}

func (s *tireService) LowTreadTires(ctx context.Context, thresholdMm float64) ([]domain.Tire, error) {
	mounted, err := s.tireRepo.List(ctx, repository.TireFilter{Status: domain.TireStatusMounted})
	if err != nil {
		return nil, err
	}
	var low []domain.Tire
	for _, t := range mounted {
		if t.TreadDepthMm != nil && *t.TreadDepthMm <= thresholdMm {
			low = append(low, t)
		}
	}
	return low, nil
}
