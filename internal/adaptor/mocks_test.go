package adaptor

import (
	"context"

	"cowork-booking/internal/data/entity"
	"cowork-booking/internal/dto/request"
	"cowork-booking/internal/dto/response"

	"github.com/stretchr/testify/mock"
)

type MockSeatMapService struct {
	mock.Mock
}

func (m *MockSeatMapService) GetSeatMap(ctx context.Context, spaceID string, req *request.SeatMapQuery) (*response.SeatMapResponse, error) {
	args := m.Called(ctx, spaceID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.SeatMapResponse), args.Error(1)
}

func (m *MockSeatMapService) ReplaySelection(ctx context.Context, spaceID string, req *request.SelectionRequest) (*response.SelectionResponse, error) {
	args := m.Called(ctx, spaceID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.SelectionResponse), args.Error(1)
}

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) ListPackages(ctx context.Context, userID string, role entity.MemberRole) (*response.PackagesResponse, error) {
	args := m.Called(ctx, userID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.PackagesResponse), args.Error(1)
}

func (m *MockBookingService) Quote(ctx context.Context, userID string, role entity.MemberRole, req *request.QuoteRequest) (*response.QuoteResponse, error) {
	args := m.Called(ctx, userID, role, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.QuoteResponse), args.Error(1)
}

func (m *MockBookingService) ApplyPackage(ctx context.Context, userID string, req *request.ApplyPackageRequest) error {
	args := m.Called(ctx, userID, req)
	return args.Error(0)
}

type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) GetPaymentSettings(ctx context.Context) (*entity.PaymentSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PaymentSettings), args.Error(1)
}

func (m *MockSettingsService) GetPaymentSettingsResponse(ctx context.Context) (*response.PaymentSettingsResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.PaymentSettingsResponse), args.Error(1)
}

func (m *MockSettingsService) UpdatePaymentSettings(ctx context.Context, req *request.UpdatePaymentSettingsRequest) (*response.PaymentSettingsResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.PaymentSettingsResponse), args.Error(1)
}

func (m *MockSettingsService) Invalidate() {
	m.Called()
}
