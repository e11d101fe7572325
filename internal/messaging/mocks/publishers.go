package mocks

import (
	"context"

	"film-server/planner/internal/messaging"

	"github.com/stretchr/testify/mock"
)

// Mock PlanEventPublisher
type PlanEventPublisher struct {
	mock.Mock
}

func (m *PlanEventPublisher) PublishPlanCommitted(ctx context.Context, event messaging.PlanCommittedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
