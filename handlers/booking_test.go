package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"doctorportal/auth"
	"doctorportal/middleware"
	"doctorportal/models"
	"doctorportal/services/appointment"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeAppointmentService struct {
	byPatient map[string][]models.Booking
	created   []models.Booking
}

func (f *fakeAppointmentService) Create(b models.Booking) (*appointment.CreateResult, error) {
	for i := range f.created {
		e := f.created[i]
		if e.Treatment == b.Treatment && e.Date == b.Date && e.Patient == b.Patient {
			return &appointment.CreateResult{Success: false, Booking: &f.created[i]}, nil
		}
	}
	f.created = append(f.created, b)
	return &appointment.CreateResult{Success: true, Result: &mongo.InsertOneResult{}}, nil
}

func (f *fakeAppointmentService) ListByPatient(patient string) ([]models.Booking, error) {
	return f.byPatient[patient], nil
}

func (f *fakeAppointmentService) GetByID(id string) (*models.Booking, error) {
	return nil, nil
}

func (f *fakeAppointmentService) MarkPaid(id string, p models.Payment) (*mongo.UpdateResult, error) {
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func newBookingRouter(svc appointment.AppointmentService, tm *auth.TokenManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookingHandler(svc)
	r := gin.New()
	r.GET("/booking", middleware.Authenticated(tm), h.ListBookings)
	r.POST("/booking", h.CreateBooking)
	return r
}

func TestListBookings(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour)
	svc := &fakeAppointmentService{byPatient: map[string][]models.Booking{
		"a@x.com": {{Treatment: "Teeth Cleaning", Date: "May 11, 2022", Slot: "08.00 AM - 09.00 AM", Patient: "a@x.com"}},
	}}
	router := newBookingRouter(svc, tm)

	t.Run("No Token Is Unauthorized", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/booking?patient=a@x.com", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Foreign Patient Is Forbidden", func(t *testing.T) {
		token, _ := tm.Issue("b@x.com")
		req := httptest.NewRequest("GET", "/booking?patient=a@x.com", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("Own Bookings Returned", func(t *testing.T) {
		token, _ := tm.Issue("a@x.com")
		req := httptest.NewRequest("GET", "/booking?patient=a@x.com", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Teeth Cleaning")
	})
}

func TestCreateBookingEndpoint(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour)
	svc := &fakeAppointmentService{byPatient: map[string][]models.Booking{}}
	router := newBookingRouter(svc, tm)

	body := `{"treatment":"Teeth Cleaning","date":"May 11, 2022","slot":"08.00 AM - 09.00 AM","patient":"a@x.com"}`

	t.Run("First Request Succeeds", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/booking", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"success":true`)
	})

	t.Run("Duplicate Request Reports Existing Booking", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/booking", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"success":false`)
		assert.Contains(t, rr.Body.String(), `"booking"`)
	})
}
