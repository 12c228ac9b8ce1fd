package service

import (
	"context"

	"roomstay-backend/internal/domain"
	"roomstay-backend/internal/repository"
)

type roomService struct {
	roomRepo repository.RoomRepository
}

func NewRoomService(roomRepo repository.RoomRepository) RoomService {
	return &roomService{roomRepo: roomRepo}
}

func (s *roomService) AddRoom(ctx context.Context, room *domain.Room) error {
	if room.Status == "" {
		room.Status = domain.RoomStatusAvailable
	}
	return s.roomRepo.Create(ctx, room)
}

func (s *roomService) UpdateRoom(ctx context.Context, room *domain.Room) error {
	return s.roomRepo.Update(ctx, room)
}

func (s *roomService) DeleteRoom(ctx context.Context, id int32) error {
	return s.roomRepo.Delete(ctx, id)
}

func (s *roomService) ListRooms(ctx context.Context) ([]domain.Room, error) {
	return s.roomRepo.List(ctx)
}

func (s *roomService) GetRoom(ctx context.Context, id int32) (*domain.Room, error) {
	return s.roomRepo.GetByID(ctx, id)
}
