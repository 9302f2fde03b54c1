package service

import (
	"context"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/repository"
)

type notificationService struct {
	noteRepo repository.NotificationRepository
}

func NewNotificationService(noteRepo repository.NotificationRepository) NotificationService {
	return &notificationService{noteRepo: noteRepo}
}

func (s *notificationService) ListNotifications(ctx context.Context) ([]domain.MotorcycleNotification, error) {
	return s.noteRepo.List(ctx)
}
