package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"hotelier/config"
	"hotelier/infras/metrics"
	"hotelier/infras/otel"
	"hotelier/internal/domains/booking/model"
	"hotelier/internal/domains/booking/model/dto"
	"hotelier/internal/domains/booking/repository"
	"hotelier/internal/domains/hotel"
	"hotelier/internal/domains/invoice"
	"hotelier/internal/events"
	"hotelier/shared"
	"hotelier/shared/cache"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
	"hotelier/shared/timezone"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"

	rejectReasonRoomNotFound      = "room_not_found"
	rejectReasonOccupancyExceeded = "occupancy_exceeded"
	rejectReasonInvalidDates      = "invalid_dates"
	rejectReasonSoldOut           = "sold_out"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	ConfirmPayment(ctx context.Context, id string) error
	Invoice(ctx context.Context, id string) (dto.InvoiceResponse, error)
	Rate(ctx context.Context, req dto.RateBookingRequest, id string) error
	UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) error
	Delete(ctx context.Context, id string, releaseRoom bool) error
}

type serviceImpl struct {
	repo      repository.Booking
	registry  *hotel.Registry
	invoices  invoice.Generator
	publisher events.Publisher
	cfg       *config.Config
	cache     cache.RedisCache
	metrics   *metrics.Metrics
	otel      otel.Otel
}

func New(
	repo repository.Booking,
	registry *hotel.Registry,
	invoices invoice.Generator,
	publisher events.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	metrics *metrics.Metrics,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:      repo,
		registry:  registry,
		invoices:  invoices,
		publisher: publisher,
		cfg:       cfg,
		cache:     cache,
		metrics:   metrics,
		otel:      otel,
	}
}

// Create validates the booking request against the room inventory, reserves a
// unit and persists the booking. The unit is released again when persistence
// fails, so the inventory never leaks on a failed insert.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	room := s.registry.RoomByNumber(req.RoomNumber)
	if room == nil {
		s.metrics.BookingsRejected.WithLabelValues(rejectReasonRoomNotFound).Inc()

		return res, failure.BadRequestFromString("room does not exist") // nolint:wrapcheck
	}

	if req.Guests > room.MaxOccupancy {
		s.metrics.BookingsRejected.WithLabelValues(rejectReasonOccupancyExceeded).Inc()

		return res, failure.BadRequestFromString(fmt.Sprintf("room accommodates at most %d guests", room.MaxOccupancy)) // nolint:wrapcheck
	}

	checkIn, err := timezone.Parse(constant.BookingDateFormat, req.CheckIn)
	if err != nil {
		s.metrics.BookingsRejected.WithLabelValues(rejectReasonInvalidDates).Inc()

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid check-in date: %v", err)) // nolint:wrapcheck
	}

	checkOut, err := timezone.Parse(constant.BookingDateFormat, req.CheckOut)
	if err != nil {
		s.metrics.BookingsRejected.WithLabelValues(rejectReasonInvalidDates).Inc()

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid check-out date: %v", err)) // nolint:wrapcheck
	}

	if !checkOut.After(checkIn) {
		s.metrics.BookingsRejected.WithLabelValues(rejectReasonInvalidDates).Inc()

		return res, failure.BadRequestFromString("check-out must be after check-in") // nolint:wrapcheck
	}

	if err = room.Book(); err != nil {
		s.metrics.BookingsRejected.WithLabelValues(rejectReasonSoldOut).Inc()

		return res, err
	}

	booking := req.ToModel(room, checkIn, checkOut)

	if err = s.repo.Insert(ctx, booking); err != nil {
		room.Release()

		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	s.metrics.BookingsCreated.Inc()

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)

		if err := s.publisher.PublishBookingEvent(c, events.BookingEvent{
			Type:        events.TypeBookingCreated,
			BookingID:   booking.ID,
			RoomType:    booking.RoomType,
			Status:      booking.Status,
			TotalAmount: booking.TotalAmount,
			OccurredAt:  timezone.Now(),
		}); err != nil {
			log.Error().Err(err).Msg("failed to publish booking created event")
		}
	}()

	return res.FromModel(booking), nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res = dto.GetBookingsResponse{
		Bookings:  dto.BookingResponse{}.FromModels(models),
		Total:     total,
		TotalPage: shared.CalculateTotalPage(total, req.Limit),
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	res = res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// ConfirmPayment simulates a successful payment and moves the booking from
// pending to confirmed.
func (s *serviceImpl) ConfirmPayment(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ConfirmPayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	updatedFields := map[string]any{
		model.FieldStatus:        constant.BookingStatusConfirmed,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: booking.GuestName,
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to confirm booking payment")

		return fmt.Errorf("failed to confirm booking payment: %w", err)
	}

	s.metrics.BookingsConfirmed.Inc()

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidateBookingCaches(c, id)

		if err := s.publisher.PublishBookingEvent(c, events.BookingEvent{
			Type:        events.TypeBookingConfirmed,
			BookingID:   booking.ID,
			RoomType:    booking.RoomType,
			Status:      constant.BookingStatusConfirmed,
			TotalAmount: booking.TotalAmount,
			OccurredAt:  timezone.Now(),
		}); err != nil {
			log.Error().Err(err).Msg("failed to publish booking confirmed event")
		}
	}()

	return nil
}

// Invoice renders the confirmation payload with the QR encoded invoice.
func (s *serviceImpl) Invoice(ctx context.Context, id string) (res dto.InvoiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Invoice")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	details := invoice.Details{
		BookingID:   booking.ID,
		GuestName:   booking.GuestName,
		RoomType:    booking.RoomType,
		TotalAmount: booking.TotalAmount,
		CheckIn:     booking.CheckIn.Format(constant.BookingDateFormat),
		CheckOut:    booking.CheckOut.Format(constant.BookingDateFormat),
	}

	qr, err := s.invoices.Generate(details)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate invoice qr")

		return res, fmt.Errorf("failed to generate invoice qr: %w", err)
	}

	return dto.InvoiceResponse{
		BookingID:   booking.ID,
		GuestName:   booking.GuestName,
		RoomType:    booking.RoomType,
		TotalAmount: booking.TotalAmount,
		CheckIn:     details.CheckIn,
		CheckOut:    details.CheckOut,
		Status:      booking.Status,
		QRCode:      qr,
	}, nil
}

// Rate records a guest rating on the booking and on the rated room type.
// Out-of-range ratings are rejected, never silently dropped.
func (s *serviceImpl) Rate(ctx context.Context, req dto.RateBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Rate")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	if room := s.registry.RoomByType(booking.RoomType); room != nil {
		if err = room.AddRating(req.Stars); err != nil {
			return err
		}
	} else if req.Stars < constant.RatingMin || req.Stars > constant.RatingMax {
		return failure.BadRequestFromString(fmt.Sprintf("rating must be between %d and %d", constant.RatingMin, constant.RatingMax)) // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldRating:        req.Stars,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: booking.GuestName,
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to record booking rating")

		return fmt.Errorf("failed to record booking rating: %w", err)
	}

	s.metrics.RatingsRecorded.Inc()

	go func() {
		s.invalidateBookingCaches(context.WithoutCancel(ctx), id)
	}()

	return nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyAdminUser).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		return failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return fmt.Errorf("failed to update booking status: %w", err)
	}

	go func() {
		s.invalidateBookingCaches(context.WithoutCancel(ctx), id)
	}()

	return nil
}

// Delete removes a booking. The reserved unit stays consumed unless the admin
// explicitly asks for it to be released back into the inventory.
func (s *serviceImpl) Delete(ctx context.Context, id string, releaseRoom bool) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	if releaseRoom {
		if room := s.registry.RoomByType(booking.RoomType); room != nil {
			room.Release()
		}
	}

	s.metrics.BookingsDeleted.Inc()

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidateBookingCaches(c, id)

		if err := s.publisher.PublishBookingEvent(c, events.BookingEvent{
			Type:        events.TypeBookingDeleted,
			BookingID:   booking.ID,
			RoomType:    booking.RoomType,
			Status:      booking.Status,
			TotalAmount: booking.TotalAmount,
			OccurredAt:  timezone.Now(),
		}); err != nil {
			log.Error().Err(err).Msg("failed to publish booking deleted event")
		}
	}()

	return nil
}

func (s *serviceImpl) getBooking(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) invalidateBookingCaches(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking from cache")
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllBooking)
	shared.InvalidateCaches(ctx, s.cache, cacheCountBooking)
}
