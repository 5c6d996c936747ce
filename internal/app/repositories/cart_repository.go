package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tahsin/lingora/internal/app/models"
	"github.com/tahsin/lingora/internal/pkg/logger"
)

// CartRepository handles cart item database operations
type CartRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCartRepository creates a new CartRepository
func NewCartRepository(db *pgxpool.Pool) *CartRepository {
	return &CartRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetByStudentEmail retrieves the cart items owned by the given email
func (r *CartRepository) GetByStudentEmail(ctx context.Context, email string) ([]*models.CartItem, error) {
	sql, args, err := r.sb.Select("id", "student_email", "class_id", "class_name", "image_url", "price", "created_at").
		From("cart_items").
		Where(squirrel.Eq{"student_email": email}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get cart items SQL")
		return nil, fmt.Errorf("failed to build get cart items query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get cart items query")
		return nil, fmt.Errorf("error querying cart items: %w", err)
	}
	defer rows.Close()

	items := []*models.CartItem{}
	for rows.Next() {
		item := &models.CartItem{}
		if err := rows.Scan(&item.ID, &item.StudentEmail, &item.ClassID, &item.ClassName,
			&item.ImageURL, &item.Price, &item.CreatedAt); err != nil {
			logger.Error().Err(err).Msg("Error scanning cart item row")
			return nil, fmt.Errorf("error scanning cart item row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating cart item rows")
		return nil, fmt.Errorf("error iterating cart item rows: %w", err)
	}

	return items, nil
}

// Create inserts a new cart item
func (r *CartRepository) Create(ctx context.Context, item *models.CartItem) (int64, error) {
	sql, args, err := r.sb.Insert("cart_items").
		Columns("student_email", "class_id", "class_name", "image_url", "price").
		Values(item.StudentEmail, item.ClassID, item.ClassName, item.ImageURL, item.Price).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create cart item SQL")
		return 0, fmt.Errorf("failed to build create cart item query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create cart item query")
		return 0, fmt.Errorf("error creating cart item: %w", err)
	}

	return id, nil
}

// Delete removes exactly one cart item by id. A missing id is a zero-effect success.
func (r *CartRepository) Delete(ctx context.Context, id int64) (int64, error) {
	sql, args, err := r.sb.Delete("cart_items").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete cart item SQL")
		return 0, fmt.Errorf("failed to build delete cart item query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("cartItemID", id).Msg("Error executing delete cart item query")
		return 0, fmt.Errorf("error deleting cart item: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}

// DeleteMany removes every cart item whose id appears in ids and reports how
// many rows went away. Missing ids simply do not count.
func (r *CartRepository) DeleteMany(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	sql, args, err := r.sb.Delete("cart_items").
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete cart items SQL")
		return 0, fmt.Errorf("failed to build delete cart items query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Ints64("cartItemIDs", ids).Msg("Error executing delete cart items query")
		return 0, fmt.Errorf("error deleting cart items: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}
