package http

import (
	"net/http"

	"github.com/cmlabs-hris/attendance-tracker/internal/domain/student"
	"github.com/cmlabs-hris/attendance-tracker/internal/handler/http/response"
)

type StudentHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type studentHandlerImpl struct {
	studentService student.StudentService
}

func NewStudentHandler(studentService student.StudentService) StudentHandler {
	return &studentHandlerImpl{
		studentService: studentService,
	}
}

// List implements StudentHandler.
func (h *studentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.studentService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, result)
}
