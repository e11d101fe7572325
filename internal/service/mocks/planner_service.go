package mocks

import (
	"context"
	"time"

	"film-server/planner/internal/models"
	"film-server/planner/internal/planner"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Mock PlannerService
type PlannerService struct {
	mock.Mock
}

func (m *PlannerService) BuildPlan(ctx context.Context, projectID uuid.UUID, startDate time.Time) (*planner.PlanResult, error) {
	args := m.Called(ctx, projectID, startDate)
	result, _ := args.Get(0).(*planner.PlanResult)
	return result, args.Error(1)
}

func (m *PlannerService) CommitPlan(ctx context.Context, projectID uuid.UUID, days []models.ProposedDay) error {
	args := m.Called(ctx, projectID, days)
	return args.Error(0)
}
