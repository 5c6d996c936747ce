package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tahsin/lingora/internal/app/models"
	"github.com/tahsin/lingora/internal/pkg/logger"
)

// InstructorRepository handles instructor profile database operations.
// Instructor profiles are read-only reference data seeded at startup.
type InstructorRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewInstructorRepository creates a new InstructorRepository
func NewInstructorRepository(db *pgxpool.Pool) *InstructorRepository {
	return &InstructorRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetAll retrieves all instructor profiles
func (r *InstructorRepository) GetAll(ctx context.Context) ([]*models.Instructor, error) {
	sql, args, err := r.sb.Select("id", "name", "email", "image_url", "classes_taught", "students_enrolled").
		From("instructors").
		OrderBy("students_enrolled DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all instructors SQL")
		return nil, fmt.Errorf("failed to build get all instructors query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all instructors query")
		return nil, fmt.Errorf("error querying instructors: %w", err)
	}
	defer rows.Close()

	instructors := []*models.Instructor{}
	for rows.Next() {
		instructor := &models.Instructor{}
		if err := rows.Scan(&instructor.ID, &instructor.Name, &instructor.Email,
			&instructor.ImageURL, &instructor.ClassesTaught, &instructor.StudentsEnrolled); err != nil {
			logger.Error().Err(err).Msg("Error scanning instructor row during get all")
			return nil, fmt.Errorf("error scanning instructor row: %w", err)
		}
		instructors = append(instructors, instructor)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating instructor rows")
		return nil, fmt.Errorf("error iterating instructor rows: %w", err)
	}

	return instructors, nil
}

// Count returns the number of instructor profiles
func (r *InstructorRepository) Count(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").From("instructors").ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building count instructors SQL")
		return 0, fmt.Errorf("failed to build count instructors query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error counting instructors")
		return 0, fmt.Errorf("error counting instructors: %w", err)
	}

	return count, nil
}

// Create inserts an instructor profile. Used by the startup seed only.
func (r *InstructorRepository) Create(ctx context.Context, instructor *models.Instructor) (int64, error) {
	sql, args, err := r.sb.Insert("instructors").
		Columns("name", "email", "image_url", "classes_taught", "students_enrolled").
		Values(instructor.Name, instructor.Email, instructor.ImageURL,
			instructor.ClassesTaught, instructor.StudentsEnrolled).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create instructor SQL")
		return 0, fmt.Errorf("failed to build create instructor query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create instructor query")
		return 0, fmt.Errorf("error creating instructor: %w", err)
	}

	return id, nil
}
