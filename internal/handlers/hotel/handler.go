package hotel

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hotelier/infras/otel"
	"hotelier/internal/domains/hotel/service"
	"hotelier/shared/constant"
	"hotelier/shared/failure"
	"hotelier/transport/http/response"
)

type Handler struct {
	service service.Hotel
	otel    otel.Otel
}

func New(service service.Hotel, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/hotel", handler.GetHotel)

	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/available", handler.GetAvailableRooms)
		routerGroup.Get("/{number}", handler.GetRoomByNumber)
	})
}

// GetHotel returns the hotel profile together with its room catalogue.
// @Summary Get hotel overview
// @Description Retrieve the hotel profile and all of its rooms.
// @Tags Hotel
// @Produce json
// @Success 200 {object} response.Data[dto.HotelResponse] "Hotel overview"
// @Router /v1/hotel [get]
func (handler *Handler) GetHotel(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotel")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, handler.service.Overview(ctx))
}

// GetRooms returns every room with live availability and average rating.
// @Summary Get all rooms
// @Description Retrieve all rooms with availability and average ratings.
// @Tags Hotel
// @Produce json
// @Success 200 {object} response.Data[dto.RoomResponse] "List of rooms"
// @Router /v1/rooms [get]
func (handler *Handler) GetRooms(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, handler.service.Rooms(ctx))
}

// GetAvailableRooms returns only the rooms with units left to book.
// @Summary Get available rooms
// @Description Retrieve the rooms that still have available units.
// @Tags Hotel
// @Produce json
// @Success 200 {object} response.Data[dto.RoomResponse] "List of available rooms"
// @Router /v1/rooms/available [get]
func (handler *Handler) GetAvailableRooms(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableRooms")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, handler.service.AvailableRooms(ctx))
}

// GetRoomByNumber returns a single room by its number.
// @Summary Get room by number
// @Description Retrieve one room with availability and average rating.
// @Tags Hotel
// @Produce json
// @Param number path int true "Room number"
// @Success 200 {object} response.Data[dto.RoomResponse] "Room details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/rooms/{number} [get]
func (handler *Handler) GetRoomByNumber(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByNumber")
	defer scope.End()

	number, err := strconv.Atoi(chi.URLParam(request, constant.RequestParamRoomNumber))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid room number")

		response.WithError(writer, failure.BadRequestFromString("room number must be an integer"))

		return
	}

	room, err := handler.service.Room(ctx, number)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, room)
}
