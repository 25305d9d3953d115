package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/SathilaT2001/ceylon-serenity-resort/internal/booking"
	"github.com/SathilaT2001/ceylon-serenity-resort/internal/database"
	"github.com/SathilaT2001/ceylon-serenity-resort/internal/service"
)

// MockService is a mock implementation of service.ReservationService.
type MockService struct {
	mock.Mock
}

func (m *MockService) RoomTypes(ctx context.Context) []booking.RoomType {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]booking.RoomType)
}

func (m *MockService) AddOnServices(ctx context.Context) []booking.Service {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]booking.Service)
}

func (m *MockService) CreateReservation(ctx context.Context, req *service.CreateReservationRequest) (*database.Reservation, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*database.Reservation), args.Error(1)
}

func (m *MockService) GetReservation(ctx context.Context, id string) (*database.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*database.Reservation), args.Error(1)
}

func (m *MockService) ListReservations(ctx context.Context) ([]database.Reservation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]database.Reservation), args.Error(1)
}

func (m *MockService) ListGuests(ctx context.Context) ([]database.Guest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]database.Guest), args.Error(1)
}

func (m *MockService) ListRooms(ctx context.Context) ([]database.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]database.Room), args.Error(1)
}

func (m *MockService) CreateRoom(ctx context.Context, room *database.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockService) UpdateRoom(ctx context.Context, room *database.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockService) DeleteRoom(ctx context.Context, roomNo int) error {
	args := m.Called(ctx, roomNo)
	return args.Error(0)
}

func (m *MockService) ListServiceRecords(ctx context.Context) ([]database.ServiceRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]database.ServiceRecord), args.Error(1)
}

func (m *MockService) CreateServiceRecord(ctx context.Context, rec *database.ServiceRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockService) UpdateServiceRecord(ctx context.Context, rec *database.ServiceRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockService) DeleteServiceRecord(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
