package student

import "context"

type StudentRepository interface {
	// List returns the roster ordered by id
	List(ctx context.Context) ([]Student, error)

	GetByID(ctx context.Context, id int) (Student, error)

	Count(ctx context.Context) (int, error)

	// CreateMany inserts the seed roster in one transaction
	CreateMany(ctx context.Context, students []Student) error
}
