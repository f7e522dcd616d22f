// Package mocks provides testify mocks for the application ports.
package mocks

import (
	"context"

	"migration-schedules/application/ports"
	"migration-schedules/domain/core/entities"
	"migration-schedules/domain/core/valueobjects"
	"migration-schedules/domain/events"

	"github.com/stretchr/testify/mock"
)

// MockScheduleRepository is a mock implementation of ports.ScheduleRepository
type MockScheduleRepository struct {
	mock.Mock
}

func (m *MockScheduleRepository) GetByID(ctx context.Context, id valueobjects.MigrationID) (*entities.MigrationSchedule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MigrationSchedule), args.Error(1)
}

func (m *MockScheduleRepository) Save(ctx context.Context, schedule *entities.MigrationSchedule) error {
	args := m.Called(ctx, schedule)
	return args.Error(0)
}

func (m *MockScheduleRepository) Update(ctx context.Context, id valueobjects.MigrationID, changes ports.ScheduleChanges) (*entities.MigrationSchedule, error) {
	args := m.Called(ctx, id, changes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MigrationSchedule), args.Error(1)
}

func (m *MockScheduleRepository) Delete(ctx context.Context, id valueobjects.MigrationID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockScheduleRepository) ListAll(ctx context.Context) ([]*entities.MigrationSchedule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.MigrationSchedule), args.Error(1)
}

// MockApplicationRepository is a mock implementation of ports.ApplicationRepository
type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) GetByID(ctx context.Context, appID string) (*entities.Application, error) {
	args := m.Called(ctx, appID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Application), args.Error(1)
}

// MockWaveRepository is a mock implementation of ports.WaveRepository
type MockWaveRepository struct {
	mock.Mock
}

func (m *MockWaveRepository) GetByID(ctx context.Context, waveID string) (*entities.Wave, error) {
	args := m.Called(ctx, waveID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Wave), args.Error(1)
}

// MockEventPublisher is a mock implementation of ports.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event events.DomainEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
