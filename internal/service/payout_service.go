package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/segyhp/consignment-engine/internal/domain"
	"github.com/segyhp/consignment-engine/internal/logger"
	"github.com/segyhp/consignment-engine/internal/repository"
	customError "github.com/segyhp/consignment-engine/pkg/errors"
)

type PayoutService struct {
	EarningRepo repository.EarningRepository
	log         *zap.Logger
}

func NewPayoutService(earningRepo repository.EarningRepository, log *zap.Logger) *PayoutService {
	return &PayoutService{
		EarningRepo: earningRepo,
		log:         logger.OrNop(log),
	}
}

// GetSellerBalance totals what the shop owes a seller for sold items not yet paid out
func (s *PayoutService) GetSellerBalance(ctx context.Context, sellerID string) (*domain.SellerBalance, error) {
	if sellerID == "" {
		return nil, customError.WrapValidation("seller id is required")
	}

	earnings, err := s.EarningRepo.ListUnpaidBySeller(ctx, sellerID)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	balance := &domain.SellerBalance{
		SellerID:       sellerID,
		UnpaidEarnings: len(earnings),
		GrossAmount:    decimal.Zero,
		Commission:     decimal.Zero,
		AmountOwed:     decimal.Zero,
	}
	for _, e := range earnings {
		balance.GrossAmount = balance.GrossAmount.Add(e.GrossAmount)
		balance.Commission = balance.Commission.Add(e.CommissionAmount)
		balance.AmountOwed = balance.AmountOwed.Add(e.NetAmount)
	}

	return balance, nil
}

// CreatePayout pays out every unpaid earning of a seller in one batch
func (s *PayoutService) CreatePayout(ctx context.Context, sellerID string, request *domain.CreatePayoutRequest) (*domain.Payout, error) {
	if sellerID == "" {
		return nil, customError.WrapValidation("seller id is required")
	}

	earnings, err := s.EarningRepo.ListUnpaidBySeller(ctx, sellerID)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	if len(earnings) == 0 {
		return nil, customError.WrapNoUnpaidEarnings(sellerID)
	}

	amount := decimal.Zero
	ids := make([]uuid.UUID, 0, len(earnings))
	for _, e := range earnings {
		amount = amount.Add(e.NetAmount)
		ids = append(ids, e.ID)
	}

	payout := &domain.Payout{
		ID:       uuid.New(),
		SellerID: sellerID,
		Amount:   amount,
		Method:   request.Method,
	}
	if err := s.EarningRepo.CreatePayout(ctx, payout, ids); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	logger.OrNop(s.log).Info("payout created",
		zap.String("payout_id", payout.ID.String()),
		zap.String("seller_id", sellerID),
		zap.String("amount", amount.StringFixed(2)),
		zap.Int("earnings", len(ids)),
	)

	return payout, nil
}
