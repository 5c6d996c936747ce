package services

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog"
	"github.com/tahsin/lingora/internal/app/models"
	"github.com/tahsin/lingora/internal/pkg/apperrors"
	"github.com/tahsin/lingora/internal/pkg/payments"
)

// SettlementResult reports both steps of a settlement. The payment insert and
// the cart cleanup are independent store operations; RemovedCount can be lower
// than the number of referenced items when cleanup partially failed.
type SettlementResult struct {
	PaymentID    int64
	RemovedCount int64
}

// PaymentService defines the interface for payment operations
type PaymentService interface {
	CreateIntent(ctx context.Context, price float64) (string, error)
	Settle(ctx context.Context, payment *models.Payment) (*SettlementResult, error)
}

// paymentStore is the slice of the payment repository this service needs
type paymentStore interface {
	Create(ctx context.Context, payment *models.Payment) (int64, error)
}

// cartCleaner is the slice of the cart repository settlement needs
type cartCleaner interface {
	DeleteMany(ctx context.Context, ids []int64) (int64, error)
}

type paymentServiceImpl struct {
	paymentRepo paymentStore
	cartRepo    cartCleaner
	gateway     payments.IntentCreator
	logger      zerolog.Logger
}

// NewPaymentService creates a new payment service instance
func NewPaymentService(paymentRepo paymentStore, cartRepo cartCleaner, gateway payments.IntentCreator, logger zerolog.Logger) PaymentService {
	return &paymentServiceImpl{
		paymentRepo: paymentRepo,
		cartRepo:    cartRepo,
		gateway:     gateway,
		logger:      logger,
	}
}

// CreateIntent converts the decimal price to the smallest currency unit and
// asks the processor for a payment intent. Provider failures are surfaced,
// never retried.
func (s *paymentServiceImpl) CreateIntent(ctx context.Context, price float64) (string, error) {
	if price <= 0 {
		return "", apperrors.ErrInvalidAmount
	}

	amountCents := int64(math.Round(price * 100))

	secret, err := s.gateway.CreateIntent(ctx, amountCents)
	if err != nil {
		s.logger.Error().Err(err).Int64("amountCents", amountCents).Msg("Payment intent creation failed")
		return "", err
	}
	return secret, nil
}

// Settle records the payment, then removes the cart items it references.
// The two steps are deliberately not atomic: if cleanup fails after the
// payment row exists, the result still carries the payment id with a zero
// removed count and no compensation is attempted.
func (s *paymentServiceImpl) Settle(ctx context.Context, payment *models.Payment) (*SettlementResult, error) {
	if payment == nil || payment.StudentEmail == "" {
		return nil, apperrors.NewValidationError("student email cannot be empty")
	}

	paymentID, err := s.paymentRepo.Create(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("error recording payment: %w", err)
	}

	removed, err := s.cartRepo.DeleteMany(ctx, payment.CartItemIDs)
	if err != nil {
		s.logger.Error().Err(err).Int64("paymentID", paymentID).
			Ints64("cartItemIDs", payment.CartItemIDs).
			Msg("Cart cleanup failed after payment was recorded")
		removed = 0
	}

	return &SettlementResult{
		PaymentID:    paymentID,
		RemovedCount: removed,
	}, nil
}
