package usecase

import (
	"context"

	"cowork-booking/internal/data/backend"
	"cowork-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) FindPaymentSettings(ctx context.Context) (*entity.PaymentSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PaymentSettings), args.Error(1)
}

func (m *MockSettingsRepository) UpdatePaymentSettings(ctx context.Context, s *entity.PaymentSettings) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

type MockSpaceRepository struct {
	mock.Mock
}

func (m *MockSpaceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Space, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Space), args.Error(1)
}

func (m *MockSpaceRepository) FindSeats(ctx context.Context, spaceID uuid.UUID) ([]entity.Seat, error) {
	args := m.Called(ctx, spaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Seat), args.Error(1)
}

func (m *MockSpaceRepository) FindDecorations(ctx context.Context, spaceID uuid.UUID) ([]entity.Decoration, error) {
	args := m.Called(ctx, spaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Decoration), args.Error(1)
}

type MockBookingSeatRepository struct {
	mock.Mock
}

func (m *MockBookingSeatRepository) FindBookedSeatIDs(ctx context.Context, spaceID uuid.UUID, window entity.TimeWindow) ([]string, error) {
	args := m.Called(ctx, spaceID, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockPackageClient struct {
	mock.Mock
}

func (m *MockPackageClient) FetchUserPackages(ctx context.Context, userID string, role entity.MemberRole) ([]entity.UserPackage, error) {
	args := m.Called(ctx, userID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.UserPackage), args.Error(1)
}

func (m *MockPackageClient) ApplyPackage(ctx context.Context, req backend.ApplyPackageRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
