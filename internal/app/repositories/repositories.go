package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository       *UserRepository
	ClassRepository      *ClassRepository
	InstructorRepository *InstructorRepository
	CartRepository       *CartRepository
	PaymentRepository    *PaymentRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db),
		ClassRepository:      NewClassRepository(db),
		InstructorRepository: NewInstructorRepository(db),
		CartRepository:       NewCartRepository(db),
		PaymentRepository:    NewPaymentRepository(db),
	}
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation error.
func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" // 23505 is unique_violation
}
