package service

import (
	"context"

	"hotelier/infras/otel"
	"hotelier/internal/domains/hotel"
	"hotelier/internal/domains/hotel/dto"
	"hotelier/shared/constant"
	"hotelier/shared/failure"
)

type Hotel interface {
	Overview(ctx context.Context) dto.HotelResponse
	Rooms(ctx context.Context) []dto.RoomResponse
	AvailableRooms(ctx context.Context) []dto.RoomResponse
	Room(ctx context.Context, number int) (dto.RoomResponse, error)
}

type serviceImpl struct {
	registry *hotel.Registry
	otel     otel.Otel
}

func New(registry *hotel.Registry, otel otel.Otel) Hotel {
	return &serviceImpl{
		registry: registry,
		otel:     otel,
	}
}

func (s *serviceImpl) Overview(ctx context.Context) dto.HotelResponse {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Overview")
	defer scope.End()

	return dto.HotelResponse{
		Name:    s.registry.Profile.Name,
		Address: s.registry.Profile.Address,
		Phone:   s.registry.Profile.Phone,
		Rooms:   dto.RoomResponse{}.FromRooms(s.registry.Rooms()),
	}
}

func (s *serviceImpl) Rooms(ctx context.Context) []dto.RoomResponse {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Rooms")
	defer scope.End()

	return dto.RoomResponse{}.FromRooms(s.registry.Rooms())
}

func (s *serviceImpl) AvailableRooms(ctx context.Context) []dto.RoomResponse {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AvailableRooms")
	defer scope.End()

	return dto.RoomResponse{}.FromRooms(s.registry.AvailableRooms())
}

func (s *serviceImpl) Room(ctx context.Context, number int) (res dto.RoomResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Room")
	defer scope.End()
	defer scope.TraceIfError(err)

	room := s.registry.RoomByNumber(number)
	if room == nil {
		return res, failure.NotFound("room") // nolint:wrapcheck
	}

	return res.FromRoom(room), nil
}
