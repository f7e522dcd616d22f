package handlers

import (
	"context"
	"errors"
	"testing"
	"time"

	"migration-schedules/application/commands"
	"migration-schedules/application/ports/mocks"
	"migration-schedules/domain/core/entities"
	pkgerrors "migration-schedules/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

type createFixture struct {
	schedules *mocks.MockScheduleRepository
	apps      *mocks.MockApplicationRepository
	waves     *mocks.MockWaveRepository
	publisher *mocks.MockEventPublisher
	handler   *CreateScheduleHandler
}

func newCreateFixture() *createFixture {
	f := &createFixture{
		schedules: new(mocks.MockScheduleRepository),
		apps:      new(mocks.MockApplicationRepository),
		waves:     new(mocks.MockWaveRepository),
		publisher: new(mocks.MockEventPublisher),
	}
	f.handler = NewCreateScheduleHandler(f.schedules, f.apps, f.waves, f.publisher, fixedClock, zap.NewNop())
	return f
}

func TestCreateScheduleHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	f := newCreateFixture()

	f.apps.On("GetByID", ctx, "app-1").Return(&entities.Application{AppID: "app-1", AppName: "Payroll"}, nil)
	f.waves.On("GetByID", ctx, "wave-1").Return(&entities.Wave{WaveID: "wave-1"}, nil)
	f.schedules.On("Save", ctx, mock.AnythingOfType("*entities.MigrationSchedule")).Return(nil)
	f.publisher.On("Publish", ctx, mock.AnythingOfType("events.ScheduleCreated")).Return(nil)

	cmd := commands.CreateScheduleCommand{
		ApplicationID: "app-1",
		ScheduledDate: "2025-03-01",
		WaveID:        "wave-1",
		CreatedBy:     "jane@example.com",
	}

	// Act
	schedule, err := f.handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, schedule.MigrationID)
	assert.Equal(t, "app-1", schedule.ApplicationID)
	assert.Equal(t, "wave-1", schedule.WaveID)
	assert.Equal(t, "2025-03-01", schedule.ScheduledDate)
	assert.Equal(t, entities.DefaultStatus, schedule.Status)
	assert.Equal(t, "jane@example.com", schedule.CreatedBy)
	assert.Equal(t, entities.Timestamp(fixedNow), schedule.LastUpdated)
	f.apps.AssertExpectations(t)
	f.waves.AssertExpectations(t)
	f.schedules.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
}

func TestCreateScheduleHandler_Handle_GeneratesFreshIDs(t *testing.T) {
	ctx := context.Background()
	f := newCreateFixture()

	f.apps.On("GetByID", ctx, "app-1").Return(&entities.Application{AppID: "app-1"}, nil)
	f.schedules.On("Save", ctx, mock.Anything).Return(nil)
	f.publisher.On("Publish", ctx, mock.Anything).Return(nil)

	cmd := commands.CreateScheduleCommand{ApplicationID: "app-1", ScheduledDate: "2025-01-01", Status: "Planned"}
	first, err := f.handler.Handle(ctx, cmd)
	require.NoError(t, err)
	second, err := f.handler.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.NotEqual(t, first.MigrationID, second.MigrationID)
	assert.Equal(t, "Planned", first.Status)
	assert.Empty(t, first.WaveID)
	f.waves.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestCreateScheduleHandler_Handle_MissingFields(t *testing.T) {
	ctx := context.Background()
	f := newCreateFixture()

	_, err := f.handler.Handle(ctx, commands.CreateScheduleCommand{ScheduledDate: "2025-01-01"})
	assert.True(t, pkgerrors.IsValidation(err))
	assert.Equal(t, "application_id is required", err.Error())

	_, err = f.handler.Handle(ctx, commands.CreateScheduleCommand{ApplicationID: "app-1"})
	assert.True(t, pkgerrors.IsValidation(err))
	assert.Equal(t, "scheduled_date is required", err.Error())

	f.apps.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	f.schedules.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCreateScheduleHandler_Handle_UnknownApplication(t *testing.T) {
	ctx := context.Background()
	f := newCreateFixture()

	f.apps.On("GetByID", ctx, "ghost").Return(nil, nil)

	_, err := f.handler.Handle(ctx, commands.CreateScheduleCommand{ApplicationID: "ghost", ScheduledDate: "2025-01-01"})

	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidation(err))
	assert.Equal(t, "Application with ID ghost does not exist", err.Error())
	f.schedules.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCreateScheduleHandler_Handle_UnknownWave(t *testing.T) {
	ctx := context.Background()
	f := newCreateFixture()

	f.apps.On("GetByID", ctx, "app-1").Return(&entities.Application{AppID: "app-1"}, nil)
	f.waves.On("GetByID", ctx, "wave-x").Return(nil, nil)

	_, err := f.handler.Handle(ctx, commands.CreateScheduleCommand{ApplicationID: "app-1", ScheduledDate: "2025-01-01", WaveID: "wave-x"})

	require.Error(t, err)
	assert.Equal(t, "Wave with ID wave-x does not exist", err.Error())
	assert.Equal(t, 400, pkgerrors.HTTPStatusOf(err))
}

func TestCreateScheduleHandler_Handle_StorageFailure(t *testing.T) {
	ctx := context.Background()
	f := newCreateFixture()

	f.apps.On("GetByID", ctx, "app-1").Return(&entities.Application{AppID: "app-1"}, nil)
	f.schedules.On("Save", ctx, mock.Anything).Return(errors.New("throttled"))

	_, err := f.handler.Handle(ctx, commands.CreateScheduleCommand{ApplicationID: "app-1", ScheduledDate: "2025-01-01"})

	require.Error(t, err)
	assert.Equal(t, 500, pkgerrors.HTTPStatusOf(err))
	assert.Equal(t, "throttled", pkgerrors.ClientMessage(err))
	f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestCreateScheduleHandler_Handle_PublishFailureIsIgnored(t *testing.T) {
	ctx := context.Background()
	f := newCreateFixture()

	f.apps.On("GetByID", ctx, "app-1").Return(&entities.Application{AppID: "app-1"}, nil)
	f.schedules.On("Save", ctx, mock.Anything).Return(nil)
	f.publisher.On("Publish", ctx, mock.Anything).Return(errors.New("bus down"))

	schedule, err := f.handler.Handle(ctx, commands.CreateScheduleCommand{ApplicationID: "app-1", ScheduledDate: "2025-01-01"})

	require.NoError(t, err)
	assert.NotNil(t, schedule)
}
