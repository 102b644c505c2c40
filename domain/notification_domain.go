package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetNotifications = "notifications retrieved successfully"
	MessageSuccessMarkAsRead       = "notification marked as read"
	MessageSuccessMarkAllAsRead    = "all notifications marked as read"

	MessageFailedGetNotifications = "failed to retrieve notifications"
	MessageFailedMarkAsRead       = "failed to mark notification as read"
	MessageFailedMarkAllAsRead    = "failed to mark all notifications as read"

	ErrNotificationNotFound = errors.New("notification not found")
)

type (
	NotificationResponse struct {
		ID              string    `json:"id"`
		Type            string    `json:"notification_type"`
		Title           string    `json:"title"`
		Message         string    `json:"message"`
		InventoryItemID string    `json:"inventory_item_id,omitempty"`
		IsRead          bool      `json:"is_read"`
		CreatedAt       time.Time `json:"created_at"`
	}
)
