package http

import (
	"net/http"

	"github.com/cmlabs-hris/attendance-tracker/internal/domain/reason"
	"github.com/cmlabs-hris/attendance-tracker/internal/handler/http/response"
)

type ReasonHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type reasonHandlerImpl struct {
	catalog *reason.Catalog
}

func NewReasonHandler(catalog *reason.Catalog) ReasonHandler {
	return &reasonHandlerImpl{
		catalog: catalog,
	}
}

type listReasonResponse struct {
	Reasons []reason.Reason `json:"reasons"`
	Unknown string          `json:"unknown"`
}

// List implements ReasonHandler.
func (h *reasonHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, listReasonResponse{
		Reasons: h.catalog.All(),
		Unknown: h.catalog.Unknown(),
	})
}
