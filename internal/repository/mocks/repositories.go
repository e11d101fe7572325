package mocks

import (
	"context"

	"film-server/planner/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Mock SceneRepository
type SceneRepository struct {
	mock.Mock
}

func (m *SceneRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]models.Scene, error) {
	args := m.Called(ctx, projectID)
	scenes, _ := args.Get(0).([]models.Scene)
	return scenes, args.Error(1)
}

// Mock LocationRepository
type LocationRepository struct {
	mock.Mock
}

func (m *LocationRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]models.Location, error) {
	args := m.Called(ctx, projectID)
	locations, _ := args.Get(0).([]models.Location)
	return locations, args.Error(1)
}

// Mock CrewRepository
type CrewRepository struct {
	mock.Mock
}

func (m *CrewRepository) ListAssignedRoles(ctx context.Context, projectID uuid.UUID, categories []models.RoleCategory) ([]models.Role, error) {
	args := m.Called(ctx, projectID, categories)
	roles, _ := args.Get(0).([]models.Role)
	return roles, args.Error(1)
}

func (m *CrewRepository) ListCharacterAssignments(ctx context.Context, projectID uuid.UUID, characters []string) ([]models.CharacterAssignment, error) {
	args := m.Called(ctx, projectID, characters)
	assignments, _ := args.Get(0).([]models.CharacterAssignment)
	return assignments, args.Error(1)
}

// Mock PlanRepository
type PlanRepository struct {
	mock.Mock
}

func (m *PlanRepository) ReplacePlan(ctx context.Context, projectID uuid.UUID, days []models.ProposedDay, calls [][]models.CrewCall) error {
	args := m.Called(ctx, projectID, days, calls)
	return args.Error(0)
}
