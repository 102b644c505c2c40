package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/freshalert/freshalert-backend/domain"
	"github.com/freshalert/freshalert-backend/entities"
	"github.com/freshalert/freshalert-backend/internal/utils"
	"github.com/freshalert/freshalert-backend/pkg/inventory"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Mailer sends an expiry alert e-mail. nil disables mailing.
type Mailer func(toEmail string, subject string, body string) error

type (
	NotificationService interface {
		GetNotifications(ctx context.Context, userID string, unreadOnly bool, page, limit int) ([]domain.NotificationResponse, int64, error)
		MarkAsRead(ctx context.Context, id string, userID string) (domain.NotificationResponse, error)
		MarkAllAsRead(ctx context.Context, userID string) error
		SweepExpiringItems(ctx context.Context) (int, error)
	}

	notificationService struct {
		notificationRepository NotificationRepository
		inventoryRepository    inventory.InventoryRepository
		mailer                 Mailer
		now                    inventory.Clock
	}
)

func NewNotificationService(
	notificationRepository NotificationRepository,
	inventoryRepository inventory.InventoryRepository,
	mailer Mailer,
	clock inventory.Clock,
) NotificationService {
	if clock == nil {
		clock = time.Now
	}
	return &notificationService{
		notificationRepository: notificationRepository,
		inventoryRepository:    inventoryRepository,
		mailer:                 mailer,
		now:                    clock,
	}
}

func toNotificationResponse(notification *entities.Notification) domain.NotificationResponse {
	response := domain.NotificationResponse{
		ID:        notification.ID.String(),
		Type:      notification.Type,
		Title:     notification.Title,
		Message:   notification.Message,
		IsRead:    notification.IsRead,
		CreatedAt: notification.CreatedAt,
	}
	if notification.InventoryItemID != nil {
		response.InventoryItemID = notification.InventoryItemID.String()
	}
	return response
}

func (s *notificationService) GetNotifications(ctx context.Context, userID string, unreadOnly bool, page, limit int) ([]domain.NotificationResponse, int64, error) {
	notifications, count, err := s.notificationRepository.GetNotifications(ctx, userID, unreadOnly, page, limit)
	if err != nil {
		return nil, 0, err
	}

	var response []domain.NotificationResponse
	for _, notification := range notifications {
		response = append(response, toNotificationResponse(notification))
	}

	return response, count, nil
}

func (s *notificationService) MarkAsRead(ctx context.Context, id string, userID string) (domain.NotificationResponse, error) {
	notification, err := s.notificationRepository.GetNotificationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotificationResponse{}, domain.ErrNotificationNotFound
		}
		return domain.NotificationResponse{}, err
	}

	// Same answer for someone else's notification as for a missing one.
	if notification.UserID.String() != userID {
		return domain.NotificationResponse{}, domain.ErrNotificationNotFound
	}

	notification.IsRead = true
	if err := s.notificationRepository.UpdateNotification(ctx, notification); err != nil {
		return domain.NotificationResponse{}, err
	}

	return toNotificationResponse(notification), nil
}

func (s *notificationService) MarkAllAsRead(ctx context.Context, userID string) error {
	return s.notificationRepository.MarkAllAsRead(ctx, userID)
}

// SweepExpiringItems finds items entering the expiring_soon window or already
// expired that have not been alerted, records a notification per item, flags
// the item as notified and mails the owner. Returns how many alerts were
// created.
func (s *notificationService) SweepExpiringItems(ctx context.Context) (int, error) {
	today := s.now()
	deadline := today.AddDate(0, 0, inventory.ExpiringSoonWindowDays)

	items, err := s.inventoryRepository.GetUnnotifiedItemsDueBy(ctx, deadline)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, item := range items {
		status := inventory.ComputeStatus(item.ExpiryDate, today)

		name := "An item"
		if item.Product != nil {
			name = item.Product.Name
		}

		var notificationType, title, message string
		switch status {
		case entities.StatusExpired:
			notificationType = entities.NotificationExpired
			title = fmt.Sprintf("%s has expired", name)
			message = fmt.Sprintf("%s expired on %s. Check it before use.", name, item.ExpiryDate.Format("2006-01-02"))
		case entities.StatusExpiringSoon:
			notificationType = entities.NotificationExpiringSoon
			days := inventory.DaysUntilExpiry(item.ExpiryDate, today)
			if days == 0 {
				title = fmt.Sprintf("%s expires today", name)
			} else {
				title = fmt.Sprintf("%s expires in %d day(s)", name, days)
			}
			message = fmt.Sprintf("%s expires on %s. Use it soon.", name, item.ExpiryDate.Format("2006-01-02"))
		default:
			continue
		}

		itemID := item.ID
		notification := &entities.Notification{
			ID:              uuid.New(),
			UserID:          item.UserID,
			InventoryItemID: &itemID,
			Type:            notificationType,
			Title:           title,
			Message:         message,
		}
		if err := s.notificationRepository.CreateNotification(ctx, notification); err != nil {
			return created, err
		}

		item.Notified = true
		item.Status = status
		if err := s.inventoryRepository.UpdateItem(ctx, item); err != nil {
			return created, err
		}
		created++

		if s.mailer != nil && item.User != nil && item.User.Email != "" {
			if err := s.mailer(item.User.Email, title, message); err != nil {
				utils.ErrorLogger.Printf("Error sending expiry mail to %s: %v", item.User.Email, err)
			}
		}
	}

	return created, nil
}
