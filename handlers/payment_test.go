package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeGateway struct {
	lastAmount   int64
	clientSecret string
}

func (f *fakeGateway) CreateIntent(amountMinorUnits int64) (string, error) {
	f.lastAmount = amountMinorUnits
	return f.clientSecret, nil
}

func TestCreatePaymentIntent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gw := &fakeGateway{clientSecret: "pi_123_secret_456"}
	h := NewPaymentHandler(gw)

	router := gin.New()
	router.POST("/create-payment-intent", h.CreatePaymentIntent)

	t.Run("Price Converted To Minor Units", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/create-payment-intent", strings.NewReader(`{"price":19.99}`))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.EqualValues(t, 1999, gw.lastAmount)
		assert.Contains(t, rr.Body.String(), "pi_123_secret_456")
	})

	t.Run("Missing Price Rejected", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/create-payment-intent", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
