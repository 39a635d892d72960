package student

type Status string

const (
	StatusAcademicLeave Status = "academic_leave"
)

type Student struct {
	ID      int
	Name    string
	Status  *Status
	Details *string
}

// OnLeave reports whether the student is excluded from attendance grids.
func (s Student) OnLeave() bool {
	return s.Status != nil && *s.Status == StatusAcademicLeave
}
