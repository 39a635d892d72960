package student

import "context"

type StudentService interface {
	List(ctx context.Context) (ListStudentResponse, error)

	// Seed inserts the roster when the store holds no students yet
	Seed(ctx context.Context, roster []Student) (int, error)
}
