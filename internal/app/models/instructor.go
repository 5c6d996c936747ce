package models

// Instructor defines the read-only instructor profile based on the
// 'instructors' table. This is seeded reference data, not an account.
type Instructor struct {
	ID               int64   `json:"id" db:"id"`
	Name             string  `json:"name" db:"name"`
	Email            string  `json:"email" db:"email"`
	ImageURL         *string `json:"imageUrl,omitempty" db:"image_url"`
	ClassesTaught    int     `json:"classesTaught" db:"classes_taught"`
	StudentsEnrolled int     `json:"studentsEnrolled" db:"students_enrolled"`
}
