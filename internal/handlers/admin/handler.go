package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hotelier/infras/otel"
	adminDto "hotelier/internal/domains/admin/model/dto"
	adminService "hotelier/internal/domains/admin/service"
	bookingModel "hotelier/internal/domains/booking/model"
	bookingDto "hotelier/internal/domains/booking/model/dto"
	bookingService "hotelier/internal/domains/booking/service"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/validator"
	"hotelier/transport/http/middleware"
	"hotelier/transport/http/response"
)

type Handler struct {
	admin    adminService.Admin
	bookings bookingService.Booking
	auth     middleware.Auth
	otel     otel.Otel
}

func New(admin adminService.Admin, bookings bookingService.Booking, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		admin:    admin,
		bookings: bookings,
		auth:     auth,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/admin", func(routerGroup chi.Router) {
		routerGroup.Post("/login", handler.Login)
		routerGroup.Post("/refresh", handler.RefreshToken)

		routerGroup.Group(func(protected chi.Router) {
			protected.Use(handler.auth.AdminOnly)
			protected.Get("/bookings", handler.GetBookings)
			protected.Patch("/bookings/{id}/status", handler.UpdateBookingStatus)
			protected.Delete("/bookings/{id}", handler.DeleteBooking)
		})
	})
}

// Login authenticates the administrator and returns a token pair.
// @Summary Admin login
// @Description Authenticate with the admin credentials and receive a JWT pair.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body adminDto.LoginRequest true "Login Request"
// @Success 200 {object} response.Data[adminDto.LoginResponse] "Tokens"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/admin/login [post]
func (handler *Handler) Login(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := adminDto.LoginRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.admin.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to login")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// RefreshToken exchanges a refresh token for a new token pair.
// @Summary Refresh admin tokens
// @Description Exchange a valid refresh token for a new JWT pair.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body adminDto.RefreshTokenRequest true "Refresh Token Request"
// @Success 200 {object} response.Data[adminDto.RefreshTokenResponse] "Tokens"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/admin/refresh [post]
func (handler *Handler) RefreshToken(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RefreshToken")
	defer scope.End()

	req := adminDto.RefreshTokenRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.admin.RefreshToken(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to refresh token")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetBookings retrieves all bookings for review.
// @Summary Get all bookings
// @Description Retrieve all bookings with optional filtering and pagination.
// @Tags Admin
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Param room_type query string false "Filter by room type"
// @Success 200 {object} response.Data[bookingDto.GetBookingsResponse] "List of bookings"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	status := request.URL.Query().Get(bookingModel.FieldStatus)
	roomType := request.URL.Query().Get(bookingModel.FieldRoomType)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if status != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    bookingModel.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    bookingModel.TableName,
		})
	}

	if roomType != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    bookingModel.FieldRoomType,
			Operator: gDto.FilterOperatorEq,
			Value:    roomType,
			Table:    bookingModel.TableName,
		})
	}

	bookings, err := handler.bookings.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, bookings)
}

// UpdateBookingStatus overrides the status of a booking.
// @Summary Update booking status
// @Description Set a new status on the booking, free-form text is allowed.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body bookingDto.UpdateStatusRequest true "Update Status Request"
// @Success 200 {object} response.Message "Booking status updated"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/admin/bookings/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateBookingStatus(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBookingStatus")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := bookingDto.UpdateStatusRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.bookings.UpdateStatus(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking status")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Booking status updated")
}

// DeleteBooking removes a booking, optionally releasing the room unit.
// @Summary Delete a booking
// @Description Delete a booking. Pass release_room=true to return the unit to the inventory.
// @Tags Admin
// @Produce json
// @Param id path string true "Booking ID"
// @Param release_room query bool false "Release the reserved unit back to the inventory"
// @Success 200 {object} response.Message "Booking deleted"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/admin/bookings/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	releaseRoom := false
	if value := shared.ConvertStringToBool(request.URL.Query().Get(constant.RequestParamReleaseRoom)); value != nil {
		releaseRoom = *value
	}

	if err := handler.bookings.Delete(ctx, id, releaseRoom); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete booking")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyAdminUser).(string)
	scope.AddEvent("Booking " + id + " deleted by " + user)

	response.WithMessage(writer, http.StatusOK, "Booking deleted")
}
