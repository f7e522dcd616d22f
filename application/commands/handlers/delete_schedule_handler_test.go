package handlers

import (
	"context"
	"errors"
	"testing"

	"migration-schedules/application/commands"
	"migration-schedules/application/ports/mocks"
	pkgerrors "migration-schedules/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDeleteScheduleHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	schedules := new(mocks.MockScheduleRepository)
	publisher := new(mocks.MockEventPublisher)
	id := mustID(t, "m-1")

	schedules.On("GetByID", ctx, id).Return(existingSchedule(), nil)
	schedules.On("Delete", ctx, id).Return(nil)
	publisher.On("Publish", ctx, mock.AnythingOfType("events.ScheduleDeleted")).Return(nil)

	handler := NewDeleteScheduleHandler(schedules, publisher, fixedClock, zap.NewNop())
	err := handler.Handle(ctx, commands.DeleteScheduleCommand{MigrationID: "m-1", DeletedBy: "ops@example.com"})

	require.NoError(t, err)
	schedules.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestDeleteScheduleHandler_Handle_NotFound(t *testing.T) {
	ctx := context.Background()
	schedules := new(mocks.MockScheduleRepository)
	id := mustID(t, "gone")

	schedules.On("GetByID", ctx, id).Return(nil, nil)

	handler := NewDeleteScheduleHandler(schedules, nil, fixedClock, zap.NewNop())
	err := handler.Handle(ctx, commands.DeleteScheduleCommand{MigrationID: "gone"})

	require.Error(t, err)
	assert.True(t, pkgerrors.IsNotFound(err))
	assert.Equal(t, "Migration schedule with ID gone does not exist", err.Error())
	schedules.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteScheduleHandler_Handle_DeleteFails(t *testing.T) {
	ctx := context.Background()
	schedules := new(mocks.MockScheduleRepository)
	id := mustID(t, "m-1")

	schedules.On("GetByID", ctx, id).Return(existingSchedule(), nil)
	schedules.On("Delete", ctx, id).Return(errors.New("access denied"))

	handler := NewDeleteScheduleHandler(schedules, nil, fixedClock, zap.NewNop())
	err := handler.Handle(ctx, commands.DeleteScheduleCommand{MigrationID: "m-1"})

	require.Error(t, err)
	assert.Equal(t, 500, pkgerrors.HTTPStatusOf(err))
	assert.Equal(t, "access denied", pkgerrors.ClientMessage(err))
}

func TestDeleteScheduleHandler_Handle_MissingID(t *testing.T) {
	handler := NewDeleteScheduleHandler(new(mocks.MockScheduleRepository), nil, fixedClock, zap.NewNop())

	err := handler.Handle(context.Background(), commands.DeleteScheduleCommand{})

	assert.True(t, pkgerrors.IsValidation(err))
}
