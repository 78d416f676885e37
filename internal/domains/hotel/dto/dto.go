package dto

import "hotelier/internal/domains/hotel"

type RoomResponse struct {
	Number        int     `json:"number"`
	Type          string  `json:"type"`
	Rate          int64   `json:"rate"`
	Description   string  `json:"description"`
	MaxOccupancy  int     `json:"max_occupancy"`
	Available     int     `json:"available"`
	AverageRating float64 `json:"average_rating"`
}

func (d RoomResponse) FromRoom(room *hotel.Room) RoomResponse {
	return RoomResponse{
		Number:        room.Number,
		Type:          room.Type,
		Rate:          room.Rate,
		Description:   room.Description,
		MaxOccupancy:  room.MaxOccupancy,
		Available:     room.Available(),
		AverageRating: room.AverageRating(),
	}
}

func (d RoomResponse) FromRooms(rooms []*hotel.Room) []RoomResponse {
	responses := make([]RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		responses = append(responses, d.FromRoom(room))
	}

	return responses
}

type HotelResponse struct {
	Name    string         `json:"name"`
	Address string         `json:"address"`
	Phone   string         `json:"phone"`
	Rooms   []RoomResponse `json:"rooms"`
}
