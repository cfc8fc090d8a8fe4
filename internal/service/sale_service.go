package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/segyhp/consignment-engine/internal/domain"
	"github.com/segyhp/consignment-engine/internal/logger"
	"github.com/segyhp/consignment-engine/internal/repository"
	"github.com/segyhp/consignment-engine/internal/settlement"
	customError "github.com/segyhp/consignment-engine/pkg/errors"
)

type SaleService struct {
	SaleRepo    repository.SaleRepository
	ItemRepo    repository.ItemRepository
	EarningRepo repository.EarningRepository
	Engine      *settlement.Engine
	log         *zap.Logger
}

func NewSaleService(
	saleRepo repository.SaleRepository,
	itemRepo repository.ItemRepository,
	earningRepo repository.EarningRepository,
	engine *settlement.Engine,
	log *zap.Logger,
) *SaleService {
	return &SaleService{
		SaleRepo:    saleRepo,
		ItemRepo:    itemRepo,
		EarningRepo: earningRepo,
		Engine:      engine,
		log:         logger.OrNop(log),
	}
}

// Checkout settles a cart and records the sale.
//
// Only a failure to store the sale header aborts the checkout. Every later step
// is attempted independently; failures are logged and returned as receipt
// warnings, and steps that already succeeded stay in place.
func (s *SaleService) Checkout(ctx context.Context, request *domain.CheckoutRequest) (*domain.Receipt, error) {
	log := logger.OrNop(s.log)
	engine := s.Engine
	if engine == nil {
		engine = settlement.NewEngine(settlement.DefaultCommissionRate)
	}

	// 1. Compute the settlement; invalid carts stop here before any write
	settled, err := engine.Settle(toCartLines(request.Items), domain.PaymentMethod(request.PaymentMethod))
	if err != nil {
		return nil, err
	}

	// 2. Save the sale header; everything else references its ID
	sale := &domain.Sale{
		TotalAmount:   settled.TotalAmount,
		PaymentMethod: string(settled.PaymentMethod),
	}
	if err := s.SaleRepo.CreateSale(ctx, sale); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	settled.SaleID = sale.ID.String()

	receipt := &domain.Receipt{Sale: sale, Settlement: settled}
	saleLog := log.With(zap.String("sale_id", settled.SaleID))
	warn := func(msg string, err error, fields ...zap.Field) {
		saleLog.Warn(msg, append(fields, zap.Error(err))...)
		receipt.Warnings = append(receipt.Warnings, fmt.Sprintf("%s: %v", msg, err))
	}

	// 3. Sale lines
	items := make([]*domain.SaleItem, 0, len(settled.Lines))
	for _, line := range settled.Lines {
		items = append(items, &domain.SaleItem{
			SaleID:    sale.ID,
			ItemID:    line.ItemID,
			Quantity:  line.CartQuantity,
			PriceSold: line.UnitPrice,
		})
	}
	if err := s.SaleRepo.CreateSaleItems(ctx, items); err != nil {
		warn("sale items not recorded", err)
	}

	// 4. Stock, one item at a time
	for _, line := range settled.Lines {
		remaining, err := s.ItemRepo.DecrementQuantity(ctx, line.ItemID, line.CartQuantity)
		if err != nil {
			warn(fmt.Sprintf("stock for item %s not updated", line.ItemID), err, zap.String("item_id", line.ItemID))
			continue
		}
		if remaining != line.ResultingQuantity {
			saleLog.Info("stock changed since the cart was built",
				zap.String("item_id", line.ItemID),
				zap.Int("expected", line.ResultingQuantity),
				zap.Int("actual", remaining),
			)
		}
	}

	// 5. Seller earnings for consigned lines
	for _, line := range settled.Lines {
		if line.SellerID == nil || *line.SellerID == "" {
			continue
		}
		earning := &domain.SellerEarning{
			SellerID:         *line.SellerID,
			SaleID:           sale.ID,
			ItemID:           line.ItemID,
			GrossAmount:      line.GrossAmount,
			CommissionAmount: line.CommissionAmount,
			NetAmount:        line.NetAmount,
			Status:           domain.EarningStatusUnpaid,
		}
		if err := s.EarningRepo.Create(ctx, earning); err != nil {
			warn(fmt.Sprintf("earning for item %s not recorded", line.ItemID), err,
				zap.String("item_id", line.ItemID),
				zap.String("seller_id", *line.SellerID),
			)
		}
	}

	saleLog.Info("checkout completed",
		zap.String("total", settled.TotalAmount.StringFixed(2)),
		zap.String("payment_method", sale.PaymentMethod),
		zap.Int("lines", len(settled.Lines)),
		zap.Int("warnings", len(receipt.Warnings)),
	)

	return receipt, nil
}

// GetSale returns a stored sale with its lines
func (s *SaleService) GetSale(ctx context.Context, saleID string) (*domain.SaleDetailResponse, error) {
	id, err := uuid.Parse(saleID)
	if err != nil {
		return nil, customError.WrapValidation("invalid sale id %q", saleID)
	}

	sale, err := s.SaleRepo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, customError.WrapSaleNotFound(saleID)
	}
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	items, err := s.SaleRepo.GetItems(ctx, id)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	if items == nil {
		items = []*domain.SaleItem{}
	}

	return &domain.SaleDetailResponse{Sale: sale, Items: items}, nil
}

func toCartLines(requests []domain.CartLineRequest) []domain.CartLine {
	lines := make([]domain.CartLine, 0, len(requests))
	for _, r := range requests {
		lines = append(lines, domain.CartLine{
			ItemID:         r.ItemID,
			UnitPrice:      r.Price,
			Quantity:       r.Quantity,
			CartQuantity:   r.CartQuantity,
			SellerID:       r.SellerID,
			CommissionRate: r.CommissionRate,
		})
	}
	return lines
}
