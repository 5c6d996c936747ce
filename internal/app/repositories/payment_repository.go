package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tahsin/lingora/internal/app/models"
	"github.com/tahsin/lingora/internal/pkg/logger"
)

// PaymentRepository handles payment record database operations.
// Payment rows are written once and never mutated.
type PaymentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPaymentRepository creates a new PaymentRepository
func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a payment record
func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) (int64, error) {
	sql, args, err := r.sb.Insert("payments").
		Columns("student_email", "amount", "transaction_id", "cart_item_ids", "class_names").
		Values(payment.StudentEmail, payment.Amount, payment.TransactionID,
			payment.CartItemIDs, payment.ClassNames).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create payment SQL")
		return 0, fmt.Errorf("failed to build create payment query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create payment query")
		return 0, fmt.Errorf("error creating payment: %w", err)
	}

	return id, nil
}
