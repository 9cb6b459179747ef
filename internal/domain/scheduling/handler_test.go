package scheduling

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func newTestHandler(store *mockStore) (*Handler, *echo.Echo) {
	h := NewHandler(newTestService(store))
	e := echo.New()
	return h, e
}

func httpStatus(t *testing.T, err error) int {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T: %v", err, err)
	}
	return he.Code
}

func TestHandler_AvailableDoctors(t *testing.T) {
	store := newMockStore()
	clinicID := uuid.New()
	store.addDoctor(clinicID)
	h, e := newTestHandler(store)
	req := httptest.NewRequest(http.MethodGet, "/?clinic_id="+clinicID.String()+"&date=2025-03-10", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.AvailableDoctors(c); err != nil { t.Fatalf("unexpected error: %v", err) }
	if rec.Code != http.StatusOK { t.Errorf("expected 200, got %d", rec.Code) }
	if !strings.Contains(rec.Body.String(), "open_slots") { t.Errorf("expected open_slots in body: %s", rec.Body.String()) }
}

func TestHandler_AvailableDoctors_BadDate(t *testing.T) {
	store := newMockStore()
	h, e := newTestHandler(store)
	req := httptest.NewRequest(http.MethodGet, "/?clinic_id="+uuid.New().String()+"&date=10-03-2025", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	err := h.AvailableDoctors(c)
	if got := httpStatus(t, err); got != http.StatusBadRequest { t.Errorf("expected 400, got %d", got) }
}

func TestHandler_CheckSlot_UnknownDoctorIs404(t *testing.T) {
	store := newMockStore()
	h, e := newTestHandler(store)
	url := "/?clinic_id=" + uuid.New().String() + "&doctor_id=" + uuid.New().String() + "&start_at=2025-03-10T09:00:00Z"
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	err := h.CheckSlot(c)
	if got := httpStatus(t, err); got != http.StatusNotFound { t.Errorf("expected 404, got %d", got) }
}

func TestHandler_CheckSlot_Open(t *testing.T) {
	store := newMockStore()
	clinicID := uuid.New()
	d := store.addDoctor(clinicID)
	h, e := newTestHandler(store)
	url := "/?clinic_id=" + clinicID.String() + "&doctor_id=" + d.ID.String() + "&start_at=2025-03-10T09:00:00Z"
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.CheckSlot(c); err != nil { t.Fatalf("unexpected error: %v", err) }
	if !strings.Contains(rec.Body.String(), `"available":true`) { t.Errorf("expected available=true, got %s", rec.Body.String()) }
}

func TestHandler_Book_Success(t *testing.T) {
	store := newMockStore()
	clinicID := uuid.New()
	d := store.addDoctor(clinicID)
	h, e := newTestHandler(store)
	body := `{"patient_id":"` + uuid.New().String() + `","doctor_id":"` + d.ID.String() + `","clinic_id":"` + clinicID.String() + `","start_at":"2025-03-10T09:00:00Z","note":"checkup"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.Book(c); err != nil { t.Fatalf("unexpected error: %v", err) }
	if rec.Code != http.StatusCreated { t.Errorf("expected 201, got %d", rec.Code) }
}

func TestHandler_Book_WeekendIs409(t *testing.T) {
	store := newMockStore()
	clinicID := uuid.New()
	d := store.addDoctor(clinicID)
	h, e := newTestHandler(store)
	body := `{"patient_id":"` + uuid.New().String() + `","doctor_id":"` + d.ID.String() + `","clinic_id":"` + clinicID.String() + `","start_at":"2025-03-08T09:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	err := h.Book(c)
	if got := httpStatus(t, err); got != http.StatusConflict { t.Errorf("expected 409, got %d", got) }
}

func TestHandler_Book_ConflictIs409(t *testing.T) {
	store := newMockStore()
	clinicID := uuid.New()
	d := store.addDoctor(clinicID)
	nineAM := utc(2025, time.March, 10, 9, 0)
	store.Insert(nil, &Appointment{StartAt: nineAM, DoctorID: d.ID, PatientID: uuid.New(), ClinicID: clinicID})
	h, e := newTestHandler(store)
	body := `{"patient_id":"` + uuid.New().String() + `","doctor_id":"` + d.ID.String() + `","clinic_id":"` + clinicID.String() + `","start_at":"2025-03-10T09:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	err := h.Book(c)
	if got := httpStatus(t, err); got != http.StatusConflict { t.Errorf("expected 409, got %d", got) }
}

func TestHandler_Book_BreakIs400(t *testing.T) {
	store := newMockStore()
	clinicID := uuid.New()
	d := store.addDoctor(clinicID)
	h, e := newTestHandler(store)
	body := `{"patient_id":"` + uuid.New().String() + `","doctor_id":"` + d.ID.String() + `","clinic_id":"` + clinicID.String() + `","start_at":"2025-03-10T12:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	err := h.Book(c)
	if got := httpStatus(t, err); got != http.StatusBadRequest { t.Errorf("expected 400, got %d", got) }
}

func TestHandler_Book_MissingFieldsIs400(t *testing.T) {
	store := newMockStore()
	h, e := newTestHandler(store)
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	err := h.Book(c)
	if got := httpStatus(t, err); got != http.StatusBadRequest { t.Errorf("expected 400, got %d", got) }
}

func TestHandler_GetAppointment_NotFound(t *testing.T) {
	store := newMockStore()
	h, e := newTestHandler(store)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id"); c.SetParamValues(uuid.New().String())
	err := h.GetAppointment(c)
	if got := httpStatus(t, err); got != http.StatusNotFound { t.Errorf("expected 404, got %d", got) }
}

func TestHandler_ListClinicAppointments(t *testing.T) {
	store := newMockStore()
	clinicID := uuid.New()
	d := store.addDoctor(clinicID)
	patientID := store.addPatient("Maria Lopez")
	h, e := newTestHandler(store)
	if _, err := h.svc.Book(nil, BookingRequest{PatientID: patientID, DoctorID: d.ID, ClinicID: clinicID, StartAt: utc(2025, time.March, 10, 9, 0)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id"); c.SetParamValues(clinicID.String())
	if err := h.ListClinicAppointments(c); err != nil { t.Fatalf("unexpected error: %v", err) }
	if rec.Code != http.StatusOK { t.Errorf("expected 200, got %d", rec.Code) }
	body := rec.Body.String()
	if !strings.Contains(body, "doctor_name") || !strings.Contains(body, "Maria Lopez") {
		t.Errorf("expected joined names in body: %s", body)
	}
}

func TestHandler_ListClinicAppointments_BadID(t *testing.T) {
	store := newMockStore()
	h, e := newTestHandler(store)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id"); c.SetParamValues("not-a-uuid")
	err := h.ListClinicAppointments(c)
	if got := httpStatus(t, err); got != http.StatusBadRequest { t.Errorf("expected 400, got %d", got) }
}

func TestHandler_Cancel(t *testing.T) {
	store := newMockStore()
	clinicID := uuid.New()
	d := store.addDoctor(clinicID)
	h, e := newTestHandler(store)
	a, err := h.svc.Book(nil, BookingRequest{PatientID: uuid.New(), DoctorID: d.ID, ClinicID: clinicID, StartAt: utc(2025, time.March, 10, 9, 0)})
	if err != nil { t.Fatalf("unexpected error: %v", err) }
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id"); c.SetParamValues(a.ID.String())
	if err := h.Cancel(c); err != nil { t.Fatalf("unexpected error: %v", err) }
	if rec.Code != http.StatusNoContent { t.Errorf("expected 204, got %d", rec.Code) }
}
