package router_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"vet-clinic-api/internal/router"

	"github.com/rs/zerolog"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(router.NewRouter(router.Options{Log: zerolog.Nop()}))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_PatientLifecycle(t *testing.T) {
	ts := newTestServer(t)

	// 1) Crear paciente
	st, body := doReq(t, ts.URL, "POST", "/api/patients", map[string]any{
		"name":        "Max",
		"species":     "Dog",
		"breed":       "Golden Retriever",
		"age":         5,
		"gender":      "male",
		"owner_name":  "Laura Pérez",
		"owner_phone": "555-0101",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create patient, got %d body=%s", st, string(body))
	}

	var created struct {
		ID      int64  `json:"id"`
		Name    string `json:"name"`
		Species string `json:"species"`
		Breed   string `json:"breed"`
	}
	if err := json.Unmarshal(body, &created); err != nil {
		t.Fatalf("unmarshal create response: %v", err)
	}
	if created.ID != 1 {
		t.Fatalf("expected first patient id 1, got %d", created.ID)
	}
	if created.Name != "Max" || created.Species != "Dog" || created.Breed != "Golden Retriever" {
		t.Fatalf("create response mismatch: %+v", created)
	}

	// 2) GET lo devuelve
	st, body = doReq(t, ts.URL, "GET", "/api/patients/1", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 get patient, got %d body=%s", st, string(body))
	}

	// 3) PUT parcial: solo age cambia, el resto se preserva
	st, body = doReq(t, ts.URL, "PUT", "/api/patients/1", map[string]any{
		"age": 6,
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 update patient, got %d body=%s", st, string(body))
	}
	var updated struct {
		Name      string `json:"name"`
		Age       int    `json:"age"`
		OwnerName string `json:"owner_name"`
	}
	_ = json.Unmarshal(body, &updated)
	if updated.Age != 6 {
		t.Fatalf("expected age 6 after update, got %d", updated.Age)
	}
	if updated.Name != "Max" || updated.OwnerName != "Laura Pérez" {
		t.Fatalf("partial update clobbered untouched fields: %+v", updated)
	}

	// 4) DELETE
	st, _ = doReq(t, ts.URL, "DELETE", "/api/patients/1", nil)
	if st != http.StatusNoContent {
		t.Fatalf("expected 204 delete patient, got %d", st)
	}

	// 5) GET ahora 404 con mensaje
	st, body = doReq(t, ts.URL, "GET", "/api/patients/1", nil)
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", st)
	}
	var errResp struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(body, &errResp)
	if errResp.Message == "" {
		t.Fatalf("expected error message in 404 body, got %s", string(body))
	}

	// 6) DELETE repetido también 404
	st, _ = doReq(t, ts.URL, "DELETE", "/api/patients/1", nil)
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", st)
	}
}

func TestHTTP_CreatePatient_ValidationErrors(t *testing.T) {
	ts := newTestServer(t)

	// name faltante y age negativa
	st, body := doReq(t, ts.URL, "POST", "/api/patients", map[string]any{
		"species": "Cat",
		"age":     -1,
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid patient, got %d body=%s", st, string(body))
	}

	var resp struct {
		Message string `json:"message"`
		Errors  []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("unmarshal validation response: %v", err)
	}
	if resp.Message == "" || len(resp.Errors) != 2 {
		t.Fatalf("expected 2 field errors, got %+v", resp)
	}

	fields := map[string]bool{}
	for _, fe := range resp.Errors {
		fields[fe.Field] = true
	}
	if !fields["name"] || !fields["age"] {
		t.Fatalf("expected errors on name and age, got %+v", resp.Errors)
	}
}

func TestHTTP_AppointmentStatusPatch(t *testing.T) {
	ts := newTestServer(t)

	date := time.Now().UTC().Format(time.RFC3339)
	st, body := doReq(t, ts.URL, "POST", "/api/appointments", map[string]any{
		"patient_id": 1,
		"doctor_id":  1,
		"date":       date,
		"type":       "checkup",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create appointment, got %d body=%s", st, string(body))
	}
	var appt struct {
		ID     int64  `json:"id"`
		Status string `json:"status"`
	}
	_ = json.Unmarshal(body, &appt)
	if appt.Status != "scheduled" {
		t.Fatalf("expected default status scheduled, got %q", appt.Status)
	}

	// status inválido => 400 y el registro no cambia
	st, _ = doReq(t, ts.URL, "PATCH", fmt.Sprintf("/api/appointments/%d/status", appt.ID), map[string]any{
		"status": "done",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid status, got %d", st)
	}

	st, body = doReq(t, ts.URL, "GET", fmt.Sprintf("/api/appointments/%d", appt.ID), nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 get appointment, got %d", st)
	}
	_ = json.Unmarshal(body, &appt)
	if appt.Status != "scheduled" {
		t.Fatalf("invalid patch must not touch the record, status=%q", appt.Status)
	}

	// status válido => 200
	st, body = doReq(t, ts.URL, "PATCH", fmt.Sprintf("/api/appointments/%d/status", appt.ID), map[string]any{
		"status": "in_progress",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 patch status, got %d body=%s", st, string(body))
	}
	_ = json.Unmarshal(body, &appt)
	if appt.Status != "in_progress" {
		t.Fatalf("expected status in_progress, got %q", appt.Status)
	}
}

func TestHTTP_AppointmentsByDate(t *testing.T) {
	ts := newTestServer(t)

	now := time.Now().UTC()
	yesterday := now.AddDate(0, 0, -1)

	for _, d := range []time.Time{now, now, yesterday} {
		st, body := doReq(t, ts.URL, "POST", "/api/appointments", map[string]any{
			"patient_id": 1,
			"doctor_id":  1,
			"date":       d.Format(time.RFC3339),
			"type":       "vaccination",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", st, string(body))
		}
	}

	// token "today"
	st, body := doReq(t, ts.URL, "GET", "/api/appointments/date/today", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list by today, got %d body=%s", st, string(body))
	}
	var list []map[string]any
	_ = json.Unmarshal(body, &list)
	if len(list) != 2 {
		t.Fatalf("expected 2 appointments today, got %d", len(list))
	}

	// fecha explícita YYYY-MM-DD
	st, body = doReq(t, ts.URL, "GET", "/api/appointments/date/"+yesterday.Format("2006-01-02"), nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list by date, got %d body=%s", st, string(body))
	}
	list = nil
	_ = json.Unmarshal(body, &list)
	if len(list) != 1 {
		t.Fatalf("expected 1 appointment yesterday, got %d", len(list))
	}

	// fecha inválida => 400
	st, _ = doReq(t, ts.URL, "GET", "/api/appointments/date/not-a-date", nil)
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad date, got %d", st)
	}
}

func TestHTTP_RecentPatients(t *testing.T) {
	ts := newTestServer(t)

	for _, name := range []string{"Max", "Luna", "Rocky"} {
		st, body := doReq(t, ts.URL, "POST", "/api/patients", map[string]any{
			"name":    name,
			"species": "Dog",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create patient, got %d body=%s", st, string(body))
		}
	}

	// Citas: Rocky la más reciente, luego Luna, luego Max
	now := time.Now().UTC()
	for i, patientID := range []int64{1, 2, 3} {
		st, body := doReq(t, ts.URL, "POST", "/api/appointments", map[string]any{
			"patient_id": patientID,
			"doctor_id":  1,
			"date":       now.Add(time.Duration(i) * time.Hour).Format(time.RFC3339),
			"type":       "checkup",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create appointment, got %d body=%s", st, string(body))
		}
	}

	// Luna borrada: su cita queda colgante y se omite
	st, _ := doReq(t, ts.URL, "DELETE", "/api/patients/2", nil)
	if st != http.StatusNoContent {
		t.Fatalf("expected 204 delete patient, got %d", st)
	}

	st, body := doReq(t, ts.URL, "GET", "/api/patients/recent/5", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 recent patients, got %d body=%s", st, string(body))
	}
	var recent []struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	_ = json.Unmarshal(body, &recent)
	if len(recent) != 2 {
		t.Fatalf("expected 2 recent patients (dangling skipped), got %d", len(recent))
	}
	if recent[0].Name != "Rocky" || recent[1].Name != "Max" {
		t.Fatalf("expected [Rocky Max] by recency, got %+v", recent)
	}

	// limit trunca
	st, body = doReq(t, ts.URL, "GET", "/api/patients/recent/1", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}
	recent = nil
	_ = json.Unmarshal(body, &recent)
	if len(recent) != 1 || recent[0].Name != "Rocky" {
		t.Fatalf("expected only Rocky with limit 1, got %+v", recent)
	}
}

func TestHTTP_DashboardDefaults(t *testing.T) {
	ts := newTestServer(t)

	for _, name := range []string{"Max", "Luna", "Rocky"} {
		st, body := doReq(t, ts.URL, "POST", "/api/patients", map[string]any{
			"name":    name,
			"species": "Cat",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", st, string(body))
		}
	}

	// Sin analytic de hoy: métricas de analytics en 0, conteos reales
	st, body := doReq(t, ts.URL, "GET", "/api/dashboard", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 dashboard, got %d body=%s", st, string(body))
	}

	var m struct {
		AppointmentsToday int     `json:"appointmentsToday"`
		TotalPatients     int     `json:"totalPatients"`
		AvgWaitTime       float64 `json:"avgWaitTime"`
		WeeklyRevenue     float64 `json:"weeklyRevenue"`
	}
	if err := json.Unmarshal(body, &m); err != nil {
		t.Fatalf("unmarshal dashboard: %v", err)
	}
	if m.TotalPatients != 3 {
		t.Fatalf("expected 3 patients, got %d", m.TotalPatients)
	}
	if m.AppointmentsToday != 0 || m.AvgWaitTime != 0 || m.WeeklyRevenue != 0 {
		t.Fatalf("expected zero defaults without analytics, got %+v", m)
	}
}

func TestHTTP_ScheduleTimeRange(t *testing.T) {
	ts := newTestServer(t)

	// start > end => 400
	st, body := doReq(t, ts.URL, "POST", "/api/schedules", map[string]any{
		"staff_id":   1,
		"date":       time.Now().UTC().Format(time.RFC3339),
		"start_time": "17:00",
		"end_time":   "09:00",
		"type":       "appointments",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for inverted time range, got %d body=%s", st, string(body))
	}

	st, body = doReq(t, ts.URL, "POST", "/api/schedules", map[string]any{
		"staff_id":   1,
		"date":       time.Now().UTC().Format(time.RFC3339),
		"start_time": "09:00",
		"end_time":   "17:00",
		"type":       "appointments",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create schedule, got %d body=%s", st, string(body))
	}
}

func TestHTTP_LowStockProducts(t *testing.T) {
	ts := newTestServer(t)

	products := []map[string]any{
		{"name": "Dog Food 10kg", "category": "food", "price": 35.5, "quantity": 2, "reorder_level": 5},
		{"name": "Amoxicillin", "category": "medicine", "price": 12.0, "quantity": 50, "reorder_level": 10},
		{"name": "Syringes", "category": "supplies", "price": 0.5, "quantity": 10, "reorder_level": 10},
	}
	for _, p := range products {
		st, body := doReq(t, ts.URL, "POST", "/api/products", p)
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create product, got %d body=%s", st, string(body))
		}
	}

	// quantity <= reorder_level cuenta como bajo
	st, body := doReq(t, ts.URL, "GET", "/api/products/low-stock", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 low stock, got %d body=%s", st, string(body))
	}
	var low []struct {
		Name string `json:"name"`
	}
	_ = json.Unmarshal(body, &low)
	if len(low) != 2 {
		t.Fatalf("expected 2 low stock products, got %d (%+v)", len(low), low)
	}
}

func TestHTTP_UserResponseOmitsPassword(t *testing.T) {
	ts := newTestServer(t)

	st, body := doReq(t, ts.URL, "POST", "/api/users", map[string]any{
		"username": "drgarcia",
		"password": "s3cret-pass",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create user, got %d body=%s", st, string(body))
	}
	if strings.Contains(string(body), "password") || strings.Contains(string(body), "s3cret") {
		t.Fatalf("user response leaks password material: %s", string(body))
	}

	// username duplicado => 409
	st, _ = doReq(t, ts.URL, "POST", "/api/users", map[string]any{
		"username": "drgarcia",
		"password": "otro-pass-123",
	})
	if st != http.StatusConflict {
		t.Fatalf("expected 409 duplicate username, got %d", st)
	}
}

func TestHTTP_Health(t *testing.T) {
	ts := newTestServer(t)

	st, body := doReq(t, ts.URL, "GET", "/health", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("expected 200 ok, got %d body=%s", st, string(body))
	}
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
