package notification

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"alerto-backend/internal/domain"
	"alerto-backend/internal/repository"
)

type Service interface {
	Create(ctx context.Context, notif *domain.Notification) error
	List(ctx context.Context, userID uuid.UUID, unreadOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error)
	MarkAsRead(ctx context.Context, id uuid.UUID) error
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) error
	GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)

	NotifyZoneAlert(ctx context.Context, userID uuid.UUID, zone *domain.Zone, locationName string) error
}

type service struct {
	notifRepo repository.NotificationRepository
}

func NewService(notifRepo repository.NotificationRepository) Service {
	return &service{notifRepo: notifRepo}
}

func (s *service) Create(ctx context.Context, notif *domain.Notification) error {
	return s.notifRepo.Create(ctx, notif)
}

func (s *service) List(ctx context.Context, userID uuid.UUID, unreadOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error) {
	notifications, total, err := s.notifRepo.ListByUser(ctx, userID, unreadOnly, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Notification]{}, err
	}

	return domain.NewPaginatedResponse(notifications, params.Page, params.PageSize, total), nil
}

func (s *service) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	return s.notifRepo.MarkAsRead(ctx, id)
}

func (s *service) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return s.notifRepo.MarkAllAsRead(ctx, userID)
}

func (s *service) GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.notifRepo.CountUnread(ctx, userID)
}

func (s *service) NotifyZoneAlert(ctx context.Context, userID uuid.UUID, zone *domain.Zone, locationName string) error {
	data, _ := json.Marshal(map[string]string{
		"zone_id":       zone.ID.String(),
		"disaster_type": string(zone.DisasterType),
		"danger_level":  string(zone.DangerLevel),
	})

	notif := &domain.Notification{
		ID:      uuid.New(),
		UserID:  userID,
		Type:    domain.NotifZoneAlert,
		Title:   "Hazard zone alert",
		Message: locationName + " is inside the " + zone.Name + " hazard zone.",
		Data:    data,
	}

	return s.notifRepo.Create(ctx, notif)
}
