package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-tracker/internal/domain/reason"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/student"
	"github.com/cmlabs-hris/attendance-tracker/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-tracker/internal/repository/memory"
	attendanceService "github.com/cmlabs-hris/attendance-tracker/internal/service/attendance"
	holidayService "github.com/cmlabs-hris/attendance-tracker/internal/service/holiday"
	reportService "github.com/cmlabs-hris/attendance-tracker/internal/service/report"
	scheduleService "github.com/cmlabs-hris/attendance-tracker/internal/service/schedule"
	studentService "github.com/cmlabs-hris/attendance-tracker/internal/service/student"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const handlerTestSecret = "test-secret-key-for-jwt"

func newTestServer(t *testing.T, jwtService jwt.Service) *httptest.Server {
	t.Helper()
	store := memory.NewStore()
	leave := student.StatusAcademicLeave
	require.NoError(t, store.Students().CreateMany(context.Background(), []student.Student{
		{ID: 1, Name: "On Leave", Status: &leave},
		{ID: 2, Name: "Regular"},
	}))

	catalog := reason.Default()
	router := NewRouter(RouterOptions{
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		JWTService: jwtService,
	}, Handlers{
		Student:    NewStudentHandler(studentService.NewStudentService(store.Students())),
		Reason:     NewReasonHandler(catalog),
		Holiday:    NewHolidayHandler(holidayService.NewHolidayService(store.Holidays())),
		Schedule:   NewScheduleHandler(scheduleService.NewScheduleService(store.Schedules(), store.Holidays())),
		Attendance: NewAttendanceHandler(attendanceService.NewAttendanceService(store.Attendance(), store.Schedules(), store.Holidays(), store.Students(), catalog)),
		Report:     NewReportHandler(reportService.NewReportService(store.Students(), store.Attendance())),
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]interface{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && resp.Header.Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp, out
}

func TestRouter_DayFlow(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/students", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["students"], 2)

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/schedule/2024-03-05", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Nil(t, body["schedule"])

	resp, body = doJSON(t, http.MethodPost, srv.URL+"/schedule", "", map[string]interface{}{
		"date":  "2024-03-05",
		"pairs": []map[string]interface{}{{"number": 2, "type": "regular"}},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/attendance", "", map[string]interface{}{
		"date": "2024-03-05", "pair": 2, "student_id": 2, "status": "absent", "reason": "Family", "comment": "overslept",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/attendance/2024-03-05", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	rows := body["attendance"].([]interface{})
	require.Len(t, rows, 1)
	row := rows[0].(map[string]interface{})
	assert.Equal(t, "Family", row["reason"])
	assert.Equal(t, float64(2), row["hours"])

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/report/2024-03", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	report := body["report"].([]interface{})
	require.Len(t, report, 2)
	assert.Equal(t, "No absences.", report[0].(map[string]interface{})["reasons"])
	assert.Equal(t, "Family (1 times: overslept)", report[1].(map[string]interface{})["reasons"])
}

func TestRouter_WriteRejections(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/schedule", "", map[string]interface{}{
		"date":  "2024-03-05",
		"pairs": []map[string]interface{}{{"number": 1, "type": "regular"}, {"number": 5, "type": "regular"}},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])

	resp, body = doJSON(t, http.MethodPost, srv.URL+"/schedule", "", map[string]interface{}{
		"date":  "2024-03-09",
		"pairs": []map[string]interface{}{{"number": 2, "type": "regular"}},
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "DAY_NOT_WORKING", body["code"])

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/attendance", "", map[string]interface{}{
		"date": "2024-03-05", "pair": 2, "student_id": 42, "status": "absent",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/holidays", bytes.NewBufferString("{"))
	require.NoError(t, err)
	raw, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	raw.Body.Close()
	assert.Equal(t, http.StatusBadRequest, raw.StatusCode)

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/attendance/05.03.2024", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRouter_HolidaysAndDays(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/holidays", "", map[string]interface{}{"date": "2024-03-08", "isHoliday": true})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	_, body := doJSON(t, http.MethodGet, srv.URL+"/holidays/2024-03-08", "", nil)
	assert.Equal(t, true, body["isHoliday"])

	_, body = doJSON(t, http.MethodGet, srv.URL+"/holidays?month=2024-03", "", nil)
	assert.Equal(t, []interface{}{"2024-03-08"}, body["holidays"])

	_, body = doJSON(t, http.MethodGet, srv.URL+"/days/2024-03-08", "", nil)
	assert.Equal(t, true, body["blocked"])

	_, body = doJSON(t, http.MethodGet, srv.URL+"/days/2024-03-08?force_workday=true", "", nil)
	assert.Equal(t, false, body["blocked"])

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/days/2024-03-08?force_workday=maybe", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	_, body = doJSON(t, http.MethodGet, srv.URL+"/reasons", "", nil)
	assert.Len(t, body["reasons"], 9)
	assert.Equal(t, "Unknown", body["unknown"])
}

func TestRouter_ExportAndOps(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, err := http.Get(srv.URL + "/report/2024-03/export?format=csv")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attendance_2024-03.csv")

	resp, err = http.Get(srv.URL + "/report/2024-03/export")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attendance_2024-03.xlsx")

	resp, err = http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_EditorTokenGuardsWrites(t *testing.T) {
	jwtService := jwt.NewJWTService(handlerTestSecret, time.Hour)
	srv := newTestServer(t, jwtService)
	payload := map[string]interface{}{"date": "2024-03-08", "isHoliday": true}

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/holidays", "", payload)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	_, plain, err := jwtService.JWTAuth().Encode(map[string]interface{}{
		"type": "viewer",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, err)
	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/holidays", plain, payload)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	token, err := jwtService.GenerateEditorToken("curator")
	require.NoError(t, err)
	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/holidays", token.Token, payload)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/holidays/2024-03-08", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
