package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/segyhp/consignment-engine/internal/domain"
	"github.com/segyhp/consignment-engine/internal/mocks"
	"github.com/segyhp/consignment-engine/internal/opendays"
	customError "github.com/segyhp/consignment-engine/pkg/errors"
)

type staticOpenDays opendays.WeeklyConfig

func (s staticOpenDays) GetWeeklyOpenDaysConfig(context.Context) opendays.WeeklyConfig {
	return opendays.WeeklyConfig(s)
}

func monToFri() staticOpenDays {
	cfg, _ := opendays.ParseWeeklyConfig(weekdaysOnly())
	return staticOpenDays(cfg)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestQuotePeriod_SkipsWeekend(t *testing.T) {
	service := &RentalService{OpenDays: monToFri()}

	period, err := service.QuotePeriod(context.Background(), date(2024, 1, 5), 2)

	require.NoError(t, err)
	assert.Equal(t, date(2024, 1, 8), period.EndDate)
	assert.Equal(t, 4, period.CalendarDaySpan)
}

func TestQuotePeriod_Errors(t *testing.T) {
	tests := []struct {
		name     string
		openDays int
		provider staticOpenDays
		code     string
	}{
		{name: "zero days", openDays: 0, provider: monToFri(), code: customError.ErrCodeValidation},
		{name: "over the cap", openDays: 366, provider: monToFri(), code: customError.ErrCodeValidation},
		{name: "all closed", openDays: 3, provider: staticOpenDays{time.Monday: false}, code: customError.ErrCodeInvalidConfiguration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &RentalService{OpenDays: tt.provider}

			_, err := service.QuotePeriod(context.Background(), date(2024, 1, 1), tt.openDays)

			assert.Equal(t, tt.code, customError.Code(err))
		})
	}
}

func TestCountOpenDays(t *testing.T) {
	service := &RentalService{OpenDays: monToFri()}

	assert.Equal(t, 5, service.CountOpenDays(context.Background(), date(2024, 1, 1), date(2024, 1, 5)))
	assert.Equal(t, 5, service.CountOpenDays(context.Background(), date(2024, 1, 1), date(2024, 1, 7)))
	assert.Equal(t, 0, service.CountOpenDays(context.Background(), date(2024, 1, 7), date(2024, 1, 1)))
}

func TestCreateRental_Success(t *testing.T) {
	mockRentalRepo := &mocks.MockRentalRepository{}
	mockCubbyRepo := &mocks.MockCubbyRepository{}
	service := NewRentalService(mockRentalRepo, mockCubbyRepo, monToFri(), 90, nil)

	cubbyID := uuid.New()
	rentalID := uuid.New()

	mockCubbyRepo.On("GetByID", mock.Anything, cubbyID).Return(&domain.Cubby{ID: cubbyID, Status: "active"}, nil)
	mockRentalRepo.On("CountOverlapping", mock.Anything, cubbyID, date(2024, 1, 1), date(2024, 1, 5)).Return(0, nil)
	mockRentalRepo.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.Rental) bool {
		return r.SellerID == "S1" && r.OpenDays == 5 && r.Status == domain.RentalStatusActive
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Rental).ID = rentalID
	}).Return(nil)

	rental, err := service.CreateRental(context.Background(), &domain.CreateRentalRequest{
		CubbyID:   cubbyID.String(),
		SellerID:  "S1",
		StartDate: "2024-01-01",
		OpenDays:  5,
	})

	require.NoError(t, err)
	assert.Equal(t, rentalID, rental.ID)
	assert.Equal(t, date(2024, 1, 5), rental.EndDate)

	mockCubbyRepo.AssertExpectations(t)
	mockRentalRepo.AssertExpectations(t)
}

func TestCreateRental_CubbyChecks(t *testing.T) {
	cubbyID := uuid.New()
	request := &domain.CreateRentalRequest{
		CubbyID:   cubbyID.String(),
		SellerID:  "S1",
		StartDate: "2024-01-01",
		OpenDays:  5,
	}

	t.Run("missing cubby", func(t *testing.T) {
		mockCubbyRepo := &mocks.MockCubbyRepository{}
		mockCubbyRepo.On("GetByID", mock.Anything, cubbyID).Return(nil, sql.ErrNoRows)
		service := NewRentalService(&mocks.MockRentalRepository{}, mockCubbyRepo, monToFri(), 0, nil)

		_, err := service.CreateRental(context.Background(), request)

		assert.Equal(t, customError.ErrCodeCubbyNotFound, customError.Code(err))
	})

	t.Run("retired cubby", func(t *testing.T) {
		mockCubbyRepo := &mocks.MockCubbyRepository{}
		mockCubbyRepo.On("GetByID", mock.Anything, cubbyID).Return(&domain.Cubby{ID: cubbyID, Status: "retired"}, nil)
		service := NewRentalService(&mocks.MockRentalRepository{}, mockCubbyRepo, monToFri(), 0, nil)

		_, err := service.CreateRental(context.Background(), request)

		assert.Equal(t, customError.ErrCodeCubbyUnavailable, customError.Code(err))
	})

	t.Run("overlapping rental", func(t *testing.T) {
		mockRentalRepo := &mocks.MockRentalRepository{}
		mockCubbyRepo := &mocks.MockCubbyRepository{}
		mockCubbyRepo.On("GetByID", mock.Anything, cubbyID).Return(&domain.Cubby{ID: cubbyID, Status: "active"}, nil)
		mockRentalRepo.On("CountOverlapping", mock.Anything, cubbyID, mock.Anything, mock.Anything).Return(1, nil)
		service := NewRentalService(mockRentalRepo, mockCubbyRepo, monToFri(), 0, nil)

		_, err := service.CreateRental(context.Background(), request)

		assert.Equal(t, customError.ErrCodeCubbyUnavailable, customError.Code(err))
		mockRentalRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestCreateRental_InvalidInputTouchesNothing(t *testing.T) {
	mockRentalRepo := &mocks.MockRentalRepository{}
	mockCubbyRepo := &mocks.MockCubbyRepository{}
	service := NewRentalService(mockRentalRepo, mockCubbyRepo, monToFri(), 0, nil)

	requests := []*domain.CreateRentalRequest{
		{CubbyID: "not-a-uuid", SellerID: "S1", StartDate: "2024-01-01", OpenDays: 5},
		{CubbyID: uuid.NewString(), SellerID: "S1", StartDate: "someday", OpenDays: 5},
		{CubbyID: uuid.NewString(), SellerID: "S1", StartDate: "2024-01-01", OpenDays: 0},
	}

	for _, request := range requests {
		_, err := service.CreateRental(context.Background(), request)
		assert.Equal(t, customError.ErrCodeValidation, customError.Code(err))
	}

	mockCubbyRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestGetRental(t *testing.T) {
	mockRentalRepo := &mocks.MockRentalRepository{}
	service := NewRentalService(mockRentalRepo, nil, monToFri(), 0, nil)

	found := uuid.New()
	missing := uuid.New()
	mockRentalRepo.On("GetByID", mock.Anything, found).Return(&domain.Rental{ID: found}, nil)
	mockRentalRepo.On("GetByID", mock.Anything, missing).Return(nil, sql.ErrNoRows)

	rental, err := service.GetRental(context.Background(), found.String())
	require.NoError(t, err)
	assert.Equal(t, found, rental.ID)

	_, err = service.GetRental(context.Background(), missing.String())
	assert.Equal(t, customError.ErrCodeRentalNotFound, customError.Code(err))

	_, err = service.GetRental(context.Background(), "nope")
	assert.Equal(t, customError.ErrCodeValidation, customError.Code(err))
}

func TestListSellerRentals_EmptyIsNotNil(t *testing.T) {
	mockRentalRepo := &mocks.MockRentalRepository{}
	mockRentalRepo.On("ListBySeller", mock.Anything, "S1").Return(nil, nil)
	service := NewRentalService(mockRentalRepo, nil, monToFri(), 0, nil)

	rentals, err := service.ListSellerRentals(context.Background(), "S1")

	require.NoError(t, err)
	assert.NotNil(t, rentals)
	assert.Empty(t, rentals)
}

func TestExpireRentals(t *testing.T) {
	mockRentalRepo := &mocks.MockRentalRepository{}
	service := NewRentalService(mockRentalRepo, nil, monToFri(), 0, nil)

	asOf := time.Date(2024, 3, 10, 0, 5, 0, 0, time.UTC)
	mockRentalRepo.On("ExpireEnded", mock.Anything, date(2024, 3, 10)).Return(int64(3), nil).Once()
	mockRentalRepo.On("ExpireEnded", mock.Anything, date(2024, 3, 11)).Return(int64(0), errors.New("deadlock")).Once()

	expired, err := service.ExpireRentals(context.Background(), asOf)
	require.NoError(t, err)
	assert.Equal(t, int64(3), expired)

	_, err = service.ExpireRentals(context.Background(), asOf.AddDate(0, 0, 1))
	assert.Equal(t, customError.ErrCodeDatabaseError, customError.Code(err))
}
