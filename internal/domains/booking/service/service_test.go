package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotelier/config"
	"hotelier/infras/metrics"
	otelMocks "hotelier/infras/otel/mocks"
	bookingMocks "hotelier/internal/domains/booking/mocks"
	"hotelier/internal/domains/booking/model"
	"hotelier/internal/domains/booking/model/dto"
	"hotelier/internal/domains/booking/service"
	"hotelier/internal/domains/hotel"
	"hotelier/internal/domains/invoice"
	"hotelier/internal/events"
	"hotelier/shared/cache"
	cacheMocks "hotelier/shared/cache/mocks"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
)

type testEnv struct {
	svc      service.Booking
	repo     *bookingMocks.MockBooking
	cache    *cacheMocks.MockRedisCache
	registry *hotel.Registry
	metrics  *metrics.Metrics
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.App.Name = "hotelier"
	cfg.Cache.TTL = 3600
	cfg.Hotel.Name = "Nile View Hotel"

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	registry := hotel.NewRegistry(cfg)
	m := metrics.New(cfg, prometheus.NewRegistry())

	svc := service.New(
		mockRepo,
		registry,
		invoice.NewGenerator(),
		events.New(cfg, nil),
		cfg,
		mockCache,
		m,
		otelMocks.NewOtel(),
	)

	return testEnv{
		svc:      svc,
		repo:     mockRepo,
		cache:    mockCache,
		registry: registry,
		metrics:  m,
	}
}

func (e testEnv) allowAsyncCacheWork() {
	e.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	e.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	e.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

// waitAsync gives the fire-and-forget cache goroutines time to finish before
// the mock controller checks expectations.
func waitAsync() {
	time.Sleep(20 * time.Millisecond)
}

func validCreateRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		RoomNumber: 1,
		GuestName:  "Salma Hassan",
		GuestEmail: "salma@example.com",
		GuestPhone: "+20 100 222 3333",
		Guests:     1,
		CheckIn:    "2026-09-01",
		CheckOut:   "2026-09-05",
	}
}

func TestBookingService_Create(t *testing.T) {
	t.Run("successful booking prices the stay and reserves a unit", func(t *testing.T) {
		env := newTestEnv(t)
		env.allowAsyncCacheWork()

		env.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)

		room := env.registry.RoomByNumber(1)
		require.NotNil(t, room)
		before := room.Available()

		res, err := env.svc.Create(context.Background(), validCreateRequest())

		require.NoError(t, err)
		assert.NotEmpty(t, res.ID)
		assert.Equal(t, constant.BookingStatusPendingPayment, res.Status)
		assert.Equal(t, 4, res.Nights)
		assert.Equal(t, int64(2000), res.TotalAmount)
		assert.Equal(t, before-1, room.Available())
		assert.Equal(t, float64(1), testutil.ToFloat64(env.metrics.BookingsCreated))

		waitAsync()
	})

	t.Run("rejects unknown room", func(t *testing.T) {
		env := newTestEnv(t)

		req := validCreateRequest()
		req.RoomNumber = 99

		_, err := env.svc.Create(context.Background(), req)

		assert.Error(t, err)
	})

	t.Run("rejects party larger than the room occupancy", func(t *testing.T) {
		env := newTestEnv(t)

		req := validCreateRequest()
		req.Guests = 4

		_, err := env.svc.Create(context.Background(), req)

		assert.Error(t, err)

		room := env.registry.RoomByNumber(1)
		require.NotNil(t, room)
		assert.Equal(t, 5, room.Available())
	})

	t.Run("rejects check-out on or before check-in", func(t *testing.T) {
		env := newTestEnv(t)

		req := validCreateRequest()
		req.CheckIn = "2026-09-05"
		req.CheckOut = "2026-09-05"

		_, err := env.svc.Create(context.Background(), req)

		assert.Error(t, err)
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		env := newTestEnv(t)

		req := validCreateRequest()
		req.CheckIn = "01-09-2026"

		_, err := env.svc.Create(context.Background(), req)

		assert.Error(t, err)
	})

	t.Run("rejects booking when the room is sold out", func(t *testing.T) {
		env := newTestEnv(t)

		room := env.registry.RoomByNumber(1)
		require.NotNil(t, room)

		for room.CheckAvailability() {
			require.NoError(t, room.Book())
		}

		_, err := env.svc.Create(context.Background(), validCreateRequest())

		assert.Error(t, err)
		assert.Equal(t, 0, room.Available())
	})

	t.Run("releases the unit when persistence fails", func(t *testing.T) {
		env := newTestEnv(t)

		env.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		room := env.registry.RoomByNumber(1)
		require.NotNil(t, room)
		before := room.Available()

		_, err := env.svc.Create(context.Background(), validCreateRequest())

		assert.Error(t, err)
		assert.Equal(t, before, room.Available())
	})
}

func storedBooking() model.Booking {
	checkIn, _ := time.Parse(constant.BookingDateFormat, "2026-09-01")
	checkOut, _ := time.Parse(constant.BookingDateFormat, "2026-09-05")

	return model.Booking{
		ID:          "2fca9df1-7b83-4a6e-9c3e-2a45a83a3f61",
		GuestName:   "Salma Hassan",
		GuestEmail:  "salma@example.com",
		GuestPhone:  "+20 100 222 3333",
		RoomNumber:  1,
		RoomType:    "Single Room",
		Guests:      1,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		TotalAmount: 2000,
		Status:      constant.BookingStatusPendingPayment,
	}
}

func TestBookingService_Get(t *testing.T) {
	t.Run("returns the booking on cache miss", func(t *testing.T) {
		env := newTestEnv(t)
		env.allowAsyncCacheWork()

		env.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)

		env.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedBooking(), nil)

		res, err := env.svc.Get(context.Background(), storedBooking().ID)

		require.NoError(t, err)
		assert.Equal(t, "Single Room", res.RoomType)
		assert.Equal(t, int64(2000), res.TotalAmount)

		waitAsync()
	})

	t.Run("returns not found for an unknown id", func(t *testing.T) {
		env := newTestEnv(t)

		env.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)

		env.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{}, nil)

		_, err := env.svc.Get(context.Background(), "missing-id")

		assert.Error(t, err)
	})
}

func TestBookingService_ConfirmPayment(t *testing.T) {
	t.Run("moves the booking to confirmed", func(t *testing.T) {
		env := newTestEnv(t)
		env.allowAsyncCacheWork()

		env.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedBooking(), nil)

		env.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, constant.BookingStatusConfirmed, fields[model.FieldStatus])

				return nil
			})

		err := env.svc.ConfirmPayment(context.Background(), storedBooking().ID)

		require.NoError(t, err)
		assert.Equal(t, float64(1), testutil.ToFloat64(env.metrics.BookingsConfirmed))

		waitAsync()
	})

	t.Run("fails for an unknown booking", func(t *testing.T) {
		env := newTestEnv(t)

		env.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{}, nil)

		err := env.svc.ConfirmPayment(context.Background(), "missing-id")

		assert.Error(t, err)
	})
}

func TestBookingService_Invoice(t *testing.T) {
	env := newTestEnv(t)

	booking := storedBooking()
	booking.Status = constant.BookingStatusConfirmed

	env.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(booking, nil)

	res, err := env.svc.Invoice(context.Background(), booking.ID)

	require.NoError(t, err)
	assert.Equal(t, booking.ID, res.BookingID)
	assert.Equal(t, constant.BookingStatusConfirmed, res.Status)
	assert.NotEmpty(t, res.QRCode)
}

func TestBookingService_Rate(t *testing.T) {
	t.Run("records the rating on the booking and the room", func(t *testing.T) {
		env := newTestEnv(t)
		env.allowAsyncCacheWork()

		env.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedBooking(), nil)

		env.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		err := env.svc.Rate(context.Background(), dto.RateBookingRequest{Stars: 4}, storedBooking().ID)

		require.NoError(t, err)

		room := env.registry.RoomByType("Single Room")
		require.NotNil(t, room)
		assert.Equal(t, 4.0, room.AverageRating())

		waitAsync()
	})

	t.Run("rejects an out of range rating without persisting", func(t *testing.T) {
		env := newTestEnv(t)

		env.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedBooking(), nil)

		err := env.svc.Rate(context.Background(), dto.RateBookingRequest{Stars: 6}, storedBooking().ID)

		assert.Error(t, err)

		room := env.registry.RoomByType("Single Room")
		require.NotNil(t, room)
		assert.Equal(t, 0.0, room.AverageRating())
	})
}

func TestBookingService_UpdateStatus(t *testing.T) {
	t.Run("applies a free-form status override", func(t *testing.T) {
		env := newTestEnv(t)
		env.allowAsyncCacheWork()

		env.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		env.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, "Checked Out", fields[model.FieldStatus])

				return nil
			})

		ctx := context.WithValue(context.Background(), constant.ContextKeyAdminUser, "admin")
		err := env.svc.UpdateStatus(ctx, dto.UpdateStatusRequest{Status: "Checked Out"}, storedBooking().ID)

		require.NoError(t, err)

		waitAsync()
	})

	t.Run("fails for an unknown booking", func(t *testing.T) {
		env := newTestEnv(t)

		env.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := env.svc.UpdateStatus(context.Background(), dto.UpdateStatusRequest{Status: "Checked Out"}, "missing-id")

		assert.Error(t, err)
	})
}

func TestBookingService_Delete(t *testing.T) {
	t.Run("keeps the unit consumed by default", func(t *testing.T) {
		env := newTestEnv(t)
		env.allowAsyncCacheWork()

		env.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedBooking(), nil)

		env.repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		room := env.registry.RoomByType("Single Room")
		require.NotNil(t, room)
		before := room.Available()

		err := env.svc.Delete(context.Background(), storedBooking().ID, false)

		require.NoError(t, err)
		assert.Equal(t, before, room.Available())
		assert.Equal(t, float64(1), testutil.ToFloat64(env.metrics.BookingsDeleted))

		waitAsync()
	})

	t.Run("releases the unit when asked to", func(t *testing.T) {
		env := newTestEnv(t)
		env.allowAsyncCacheWork()

		env.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedBooking(), nil)

		env.repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		room := env.registry.RoomByType("Single Room")
		require.NotNil(t, room)
		before := room.Available()

		err := env.svc.Delete(context.Background(), storedBooking().ID, true)

		require.NoError(t, err)
		assert.Equal(t, before+1, room.Available())

		waitAsync()
	})
}
