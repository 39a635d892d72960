package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordWriteAndRejection(t *testing.T) {
	before := testutil.ToFloat64(writesTotal.WithLabelValues(OperationHoliday))
	RecordWrite(OperationHoliday)
	assert.Equal(t, before+1, testutil.ToFloat64(writesTotal.WithLabelValues(OperationHoliday)))

	before = testutil.ToFloat64(rejectionsTotal.WithLabelValues(OperationSchedule, RejectValidation))
	RecordRejection(OperationSchedule, RejectValidation)
	assert.Equal(t, before+1, testutil.ToFloat64(rejectionsTotal.WithLabelValues(OperationSchedule, RejectValidation)))
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/schedule/{date}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	r.Handle("/metrics", Handler())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/schedule/2024-03-05", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `route="/schedule/{date}"`)
}
