package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tahsin/lingora/internal/app/models"
	"github.com/tahsin/lingora/internal/pkg/logger"
)

// ClassRepository handles class offering database operations
type ClassRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewClassRepository creates a new ClassRepository
func NewClassRepository(db *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetAll retrieves class offerings, optionally filtered by instructor email.
// An empty filter returns every class.
func (r *ClassRepository) GetAll(ctx context.Context, instructorEmail string) ([]*models.Class, error) {
	builder := r.sb.Select("id", "name", "image_url", "instructor_name", "instructor_email",
		"available_seats", "price", "status", "feedback", "created_at").
		From("classes").
		OrderBy("id ASC")

	if instructorEmail != "" {
		builder = builder.Where(squirrel.Eq{"instructor_email": instructorEmail})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all classes SQL")
		return nil, fmt.Errorf("failed to build get all classes query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all classes query")
		return nil, fmt.Errorf("error querying classes: %w", err)
	}
	defer rows.Close()

	classes := []*models.Class{}
	for rows.Next() {
		class := &models.Class{}
		if err := rows.Scan(&class.ID, &class.Name, &class.ImageURL, &class.InstructorName,
			&class.InstructorEmail, &class.AvailableSeats, &class.Price, &class.Status,
			&class.Feedback, &class.CreatedAt); err != nil {
			logger.Error().Err(err).Msg("Error scanning class row during get all")
			return nil, fmt.Errorf("error scanning class row: %w", err)
		}
		classes = append(classes, class)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating class rows")
		return nil, fmt.Errorf("error iterating class rows: %w", err)
	}

	return classes, nil
}

// Create inserts a new class offering
func (r *ClassRepository) Create(ctx context.Context, class *models.Class) (int64, error) {
	sql, args, err := r.sb.Insert("classes").
		Columns("name", "image_url", "instructor_name", "instructor_email",
			"available_seats", "price", "status").
		Values(class.Name, class.ImageURL, class.InstructorName, class.InstructorEmail,
			class.AvailableSeats, class.Price, class.Status).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create class SQL")
		return 0, fmt.Errorf("failed to build create class query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create class query")
		return 0, fmt.Errorf("error creating class: %w", err)
	}

	return id, nil
}

// UpdateStatus overwrites the moderation status of a class
func (r *ClassRepository) UpdateStatus(ctx context.Context, id int64, status models.ClassStatus) (int64, error) {
	sql, args, err := r.sb.Update("classes").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update class status SQL")
		return 0, fmt.Errorf("failed to build update class status query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("classID", id).Msg("Error executing update class status query")
		return 0, fmt.Errorf("error updating class status: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}

// UpdateFeedback sets the feedback text without touching the status
func (r *ClassRepository) UpdateFeedback(ctx context.Context, id int64, feedback string) (int64, error) {
	sql, args, err := r.sb.Update("classes").
		Set("feedback", feedback).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update class feedback SQL")
		return 0, fmt.Errorf("failed to build update class feedback query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("classID", id).Msg("Error executing update class feedback query")
		return 0, fmt.Errorf("error updating class feedback: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}
