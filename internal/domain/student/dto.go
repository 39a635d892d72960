package student

type StudentResponse struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Status  *string `json:"status"`
	Details *string `json:"details"`
}

type ListStudentResponse struct {
	Students []StudentResponse `json:"students"`
}

func ToResponse(s Student) StudentResponse {
	var status *string
	if s.Status != nil {
		v := string(*s.Status)
		status = &v
	}
	return StudentResponse{
		ID:      s.ID,
		Name:    s.Name,
		Status:  status,
		Details: s.Details,
	}
}
