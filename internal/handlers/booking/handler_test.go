package booking_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotelier/config"
	"hotelier/infras/metrics"
	otelMocks "hotelier/infras/otel/mocks"
	bookingMocks "hotelier/internal/domains/booking/mocks"
	"hotelier/internal/domains/booking/model"
	bookingService "hotelier/internal/domains/booking/service"
	hotelDomain "hotelier/internal/domains/hotel"
	"hotelier/internal/domains/invoice"
	"hotelier/internal/events"
	handler "hotelier/internal/handlers/booking"
	"hotelier/shared/cache"
	cacheMocks "hotelier/shared/cache/mocks"
	"hotelier/shared/constant"
	"hotelier/shared/timezone"
)

type testRouter struct {
	router chi.Router
	repo   *bookingMocks.MockBooking
	cache  *cacheMocks.MockRedisCache
}

func newTestRouter(t *testing.T) testRouter {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.App.Name = "hotelier"
	cfg.Cache.TTL = 3600
	cfg.Hotel.Name = "Nile View Hotel"

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	svc := bookingService.New(
		mockRepo,
		hotelDomain.NewRegistry(cfg),
		invoice.NewGenerator(),
		events.New(cfg, nil),
		cfg,
		mockCache,
		metrics.New(cfg, prometheus.NewRegistry()),
		otelMocks.NewOtel(),
	)

	h := handler.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	h.Router(router)

	return testRouter{router: router, repo: mockRepo, cache: mockCache}
}

func (e testRouter) allowAsyncCacheWork() {
	e.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	e.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	e.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func (e testRouter) serve(method, target, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}

	recorder := httptest.NewRecorder()
	e.router.ServeHTTP(recorder, httptest.NewRequest(method, target, reader))

	return recorder
}

func errorMessage(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

	return body.Error
}

func storedTestBooking() model.Booking {
	checkIn, _ := timezone.Parse(constant.BookingDateFormat, "2026-10-01")
	checkOut, _ := timezone.Parse(constant.BookingDateFormat, "2026-10-03")

	return model.Booking{
		ID:          "b-1001",
		GuestName:   "Mona Hassan",
		GuestEmail:  "mona@example.com",
		GuestPhone:  "+20 100 000 0000",
		RoomNumber:  2,
		RoomType:    "Double Room",
		Guests:      2,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		TotalAmount: 1600,
		Status:      constant.BookingStatusPendingPayment,
	}
}

func TestHandler_CreateBooking(t *testing.T) {
	createBody := func(mutate func(m map[string]any)) string {
		m := map[string]any{
			"room_number": 2,
			"guest_name":  "Mona Hassan",
			"guest_email": "mona@example.com",
			"guest_phone": "+20 100 000 0000",
			"guests":      2,
			"check_in":    "2026-10-01",
			"check_out":   "2026-10-03",
		}
		if mutate != nil {
			mutate(m)
		}

		raw, _ := json.Marshal(m)

		return string(raw)
	}

	t.Run("creates a pending booking", func(t *testing.T) {
		env := newTestRouter(t)
		env.allowAsyncCacheWork()

		env.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)

		recorder := env.serve(http.MethodPost, "/bookings", createBody(nil))

		require.Equal(t, http.StatusCreated, recorder.Code)

		var body struct {
			Data struct {
				ID          string `json:"id"`
				Status      string `json:"status"`
				TotalAmount int64  `json:"total_amount"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

		assert.NotEmpty(t, body.Data.ID)
		assert.Equal(t, constant.BookingStatusPendingPayment, body.Data.Status)
		assert.Equal(t, int64(1600), body.Data.TotalAmount)

		time.Sleep(20 * time.Millisecond)
	})

	t.Run("rejects too many guests with an error envelope", func(t *testing.T) {
		env := newTestRouter(t)

		recorder := env.serve(http.MethodPost, "/bookings", createBody(func(m map[string]any) {
			m["guests"] = 3
		}))

		require.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, errorMessage(t, recorder), "at most 2 guests")
	})

	t.Run("rejects an inverted date range with an error envelope", func(t *testing.T) {
		env := newTestRouter(t)

		recorder := env.serve(http.MethodPost, "/bookings", createBody(func(m map[string]any) {
			m["check_in"] = "2026-03-10"
			m["check_out"] = "2026-03-08"
		}))

		require.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, errorMessage(t, recorder), "check-out must be after check-in")
	})

	t.Run("rejects a body that fails validation", func(t *testing.T) {
		env := newTestRouter(t)

		recorder := env.serve(http.MethodPost, "/bookings", createBody(func(m map[string]any) {
			m["guest_email"] = "not-an-email"
		}))

		require.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.NotEmpty(t, errorMessage(t, recorder))
	})
}

func TestHandler_PaymentFlow(t *testing.T) {
	t.Run("serves the payment page data", func(t *testing.T) {
		env := newTestRouter(t)
		env.allowAsyncCacheWork()

		env.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)

		env.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedTestBooking(), nil)

		recorder := env.serve(http.MethodGet, "/bookings/b-1001/payment", "")

		require.Equal(t, http.StatusOK, recorder.Code)

		var body struct {
			Data struct {
				GuestName   string `json:"guest_name"`
				Status      string `json:"status"`
				TotalAmount int64  `json:"total_amount"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

		assert.Equal(t, "Mona Hassan", body.Data.GuestName)
		assert.Equal(t, constant.BookingStatusPendingPayment, body.Data.Status)
		assert.Equal(t, int64(1600), body.Data.TotalAmount)

		time.Sleep(20 * time.Millisecond)
	})

	t.Run("confirms the payment", func(t *testing.T) {
		env := newTestRouter(t)
		env.allowAsyncCacheWork()

		env.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedTestBooking(), nil)

		env.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		recorder := env.serve(http.MethodPost, "/bookings/b-1001/payment", "")

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Payment confirmed")

		time.Sleep(20 * time.Millisecond)
	})

	t.Run("returns not found for an unknown booking", func(t *testing.T) {
		env := newTestRouter(t)

		env.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)

		env.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{}, nil)

		recorder := env.serve(http.MethodGet, "/bookings/missing/payment", "")

		require.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Contains(t, errorMessage(t, recorder), "booking not found")
	})
}
