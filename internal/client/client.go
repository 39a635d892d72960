// Package client is a typed consumer of the attendance REST surface.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-tracker/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/holiday"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/reason"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/report"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/schedule"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/student"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/workday"
)

const defaultTimeout = 15 * time.Second

// Client talks to one attendance server.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

type Option func(*Client)

// WithToken sends an editor token on every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is a non-2xx answer from the server.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Details    map[string]string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("attendance API error [%d] %s: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("attendance API error [%d]: %s", e.StatusCode, e.Message)
}

// IsDayNotWorking reports whether err is the server refusing a write on a
// holiday or weekend.
func IsDayNotWorking(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == "DAY_NOT_WORKING"
}

type successResponse struct {
	Success bool `json:"success"`
}

type ReasonList struct {
	Reasons []reason.Reason `json:"reasons"`
	Unknown string          `json:"unknown"`
}

func (c *Client) Students(ctx context.Context) (student.ListStudentResponse, error) {
	var out student.ListStudentResponse
	err := c.do(ctx, http.MethodGet, "/students", nil, &out)
	return out, err
}

func (c *Client) Reasons(ctx context.Context) (ReasonList, error) {
	var out ReasonList
	err := c.do(ctx, http.MethodGet, "/reasons", nil, &out)
	return out, err
}

func (c *Client) Day(ctx context.Context, date string, forceWorkday bool) (workday.Day, error) {
	var out workday.Day
	path := "/days/" + url.PathEscape(date)
	if forceWorkday {
		path += "?force_workday=" + strconv.FormatBool(forceWorkday)
	}
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

func (c *Client) Holiday(ctx context.Context, date string) (holiday.HolidayStatusResponse, error) {
	var out holiday.HolidayStatusResponse
	err := c.do(ctx, http.MethodGet, "/holidays/"+url.PathEscape(date), nil, &out)
	return out, err
}

func (c *Client) Holidays(ctx context.Context, month string) (holiday.ListHolidayResponse, error) {
	var out holiday.ListHolidayResponse
	err := c.do(ctx, http.MethodGet, "/holidays?month="+url.QueryEscape(month), nil, &out)
	return out, err
}

func (c *Client) SetHoliday(ctx context.Context, req holiday.SetHolidayRequest) error {
	return c.do(ctx, http.MethodPost, "/holidays", req, &successResponse{})
}

func (c *Client) Schedule(ctx context.Context, date string) (schedule.GetScheduleResponse, error) {
	var out schedule.GetScheduleResponse
	err := c.do(ctx, http.MethodGet, "/schedule/"+url.PathEscape(date), nil, &out)
	return out, err
}

func (c *Client) SaveSchedule(ctx context.Context, req schedule.SaveScheduleRequest) error {
	return c.do(ctx, http.MethodPost, "/schedule", req, &successResponse{})
}

func (c *Client) Attendance(ctx context.Context, date string) (attendance.ListAttendanceResponse, error) {
	var out attendance.ListAttendanceResponse
	err := c.do(ctx, http.MethodGet, "/attendance/"+url.PathEscape(date), nil, &out)
	return out, err
}

func (c *Client) WriteAttendance(ctx context.Context, req attendance.WriteAttendanceRequest) error {
	return c.do(ctx, http.MethodPost, "/attendance", req, &successResponse{})
}

func (c *Client) Report(ctx context.Context, month string) (report.MonthlyReport, error) {
	var out report.MonthlyReport
	err := c.do(ctx, http.MethodGet, "/report/"+url.PathEscape(month), nil, &out)
	return out, err
}

// Export downloads the rendered report file.
func (c *Client) Export(ctx context.Context, month string, format report.ExportFormat) ([]byte, error) {
	path := fmt.Sprintf("/report/%s/export?format=%s", url.PathEscape(month), url.QueryEscape(string(format)))
	resp, err := c.send(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read export: %w", err)
	}
	return content, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	resp, err := c.send(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}
	defer resp.Body.Close()

	apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	var payload struct {
		Error   string            `json:"error"`
		Code    string            `json:"code"`
		Details map[string]string `json:"details"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Error != "" {
		apiErr.Message = payload.Error
		apiErr.Code = payload.Code
		apiErr.Details = payload.Details
	}
	return nil, apiErr
}
