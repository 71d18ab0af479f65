package usecase

import (
	"context"
	"fmt"
	"time"

	"goldentouch-booking/internal/data/entity"
	"goldentouch-booking/internal/data/repository"
	"goldentouch-booking/pkg/utils"

	"go.uber.org/zap"
)

const statusCheckListCap = 1000

type StatusService interface {
	CreateStatusCheck(ctx context.Context, clientName string) (*entity.StatusCheck, error)
	GetStatusChecks(ctx context.Context) ([]entity.StatusCheck, error)
}

type statusService struct {
	repo repository.StatusCheckRepository
	log  *zap.Logger
}

func NewStatusService(repo repository.StatusCheckRepository, log *zap.Logger) StatusService {
	return &statusService{
		repo: repo,
		log:  log.With(zap.String("service", "status")),
	}
}

func (s *statusService) CreateStatusCheck(ctx context.Context, clientName string) (*entity.StatusCheck, error) {
	check := &entity.StatusCheck{
		ID:         utils.GenerateUUIDString(),
		ClientName: clientName,
		Timestamp:  time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, check); err != nil {
		s.log.Error("Failed to create status check", zap.Error(err))
		return nil, fmt.Errorf("failed to create status check")
	}

	return check, nil
}

func (s *statusService) GetStatusChecks(ctx context.Context) ([]entity.StatusCheck, error) {
	checks, err := s.repo.FindAll(ctx, statusCheckListCap)
	if err != nil {
		s.log.Error("Failed to list status checks", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch status checks")
	}

	return checks, nil
}
