package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/segyhp/consignment-engine/internal/domain"
	"github.com/segyhp/consignment-engine/internal/logger"
	"github.com/segyhp/consignment-engine/internal/opendays"
	"github.com/segyhp/consignment-engine/internal/repository"
	customError "github.com/segyhp/consignment-engine/pkg/errors"
	"github.com/segyhp/consignment-engine/pkg/utils"
)

const defaultMaxRentalOpenDays = 365

type RentalService struct {
	RentalRepo  repository.RentalRepository
	CubbyRepo   repository.CubbyRepository
	OpenDays    ConfigProvider
	MaxOpenDays int
	log         *zap.Logger
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	cubbyRepo repository.CubbyRepository,
	openDays ConfigProvider,
	maxOpenDays int,
	log *zap.Logger,
) *RentalService {
	return &RentalService{
		RentalRepo:  rentalRepo,
		CubbyRepo:   cubbyRepo,
		OpenDays:    openDays,
		MaxOpenDays: maxOpenDays,
		log:         logger.OrNop(log),
	}
}

// QuotePeriod computes the calendar end date for a rental of openDays open days
func (s *RentalService) QuotePeriod(ctx context.Context, start time.Time, openDays int) (*domain.RentalPeriod, error) {
	if limit := s.maxOpenDays(); openDays > limit {
		return nil, customError.WrapValidation("rentals are limited to %d open days", limit)
	}

	return opendays.Period(start, openDays, s.OpenDays.GetWeeklyOpenDaysConfig(ctx))
}

// CountOpenDays counts the shop-open days in [start, end]
func (s *RentalService) CountOpenDays(ctx context.Context, start, end time.Time) int {
	return opendays.CountOpenDays(start, end, s.OpenDays.GetWeeklyOpenDaysConfig(ctx))
}

// CreateRental rents a cubby to a seller for the requested number of open days
func (s *RentalService) CreateRental(ctx context.Context, request *domain.CreateRentalRequest) (*domain.Rental, error) {
	cubbyID, err := uuid.Parse(request.CubbyID)
	if err != nil {
		return nil, customError.WrapValidation("invalid cubby id %q", request.CubbyID)
	}
	start, err := utils.ParseDate(request.StartDate)
	if err != nil {
		return nil, customError.WrapValidation("%v", err)
	}

	// 1. Work out the period first so a bad request never touches the database
	period, err := s.QuotePeriod(ctx, start, request.OpenDays)
	if err != nil {
		return nil, err
	}

	// 2. The cubby must exist and be rentable
	cubby, err := s.CubbyRepo.GetByID(ctx, cubbyID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, customError.WrapCubbyNotFound(request.CubbyID)
	}
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	if cubby.Status != "active" {
		return nil, customError.WrapCubbyUnavailable(request.CubbyID)
	}

	// 3. No other active rental may overlap the computed window
	overlapping, err := s.RentalRepo.CountOverlapping(ctx, cubbyID, period.StartDate, period.EndDate)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	if overlapping > 0 {
		return nil, customError.WrapCubbyUnavailable(request.CubbyID)
	}

	// 4. Persist only the dates; the period itself is derived data
	rental := &domain.Rental{
		CubbyID:   cubbyID,
		SellerID:  request.SellerID,
		StartDate: period.StartDate,
		EndDate:   period.EndDate,
		OpenDays:  period.RequestedOpenDays,
		Status:    domain.RentalStatusActive,
	}
	if err := s.RentalRepo.Create(ctx, rental); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	logger.OrNop(s.log).Info("rental created",
		zap.String("rental_id", rental.ID.String()),
		zap.String("cubby_id", request.CubbyID),
		zap.String("seller_id", request.SellerID),
		zap.String("start_date", utils.FormatDate(rental.StartDate)),
		zap.String("end_date", utils.FormatDate(rental.EndDate)),
	)

	return rental, nil
}

// GetRental returns a single rental
func (s *RentalService) GetRental(ctx context.Context, rentalID string) (*domain.Rental, error) {
	id, err := uuid.Parse(rentalID)
	if err != nil {
		return nil, customError.WrapValidation("invalid rental id %q", rentalID)
	}

	rental, err := s.RentalRepo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, customError.WrapRentalNotFound(rentalID)
	}
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	return rental, nil
}

// ListSellerRentals returns every rental of a seller, newest first
func (s *RentalService) ListSellerRentals(ctx context.Context, sellerID string) ([]*domain.Rental, error) {
	rentals, err := s.RentalRepo.ListBySeller(ctx, sellerID)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	if rentals == nil {
		rentals = []*domain.Rental{}
	}

	return rentals, nil
}

// ExpireRentals closes active rentals that ended before asOf
func (s *RentalService) ExpireRentals(ctx context.Context, asOf time.Time) (int64, error) {
	expired, err := s.RentalRepo.ExpireEnded(ctx, utils.DateOnly(asOf))
	if err != nil {
		return 0, customError.WrapDatabaseError(err)
	}

	logger.OrNop(s.log).Info("expired rentals", zap.Int64("count", expired), zap.String("as_of", utils.FormatDate(asOf)))
	return expired, nil
}

func (s *RentalService) maxOpenDays() int {
	if s.MaxOpenDays <= 0 {
		return defaultMaxRentalOpenDays
	}
	return s.MaxOpenDays
}
