package entities

import (
	"github.com/google/uuid"
)

const (
	NotificationExpiringSoon = "expiring_soon"
	NotificationExpired      = "expired"
	NotificationLowStock     = "low_stock"
)

type Notification struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID          uuid.UUID  `gorm:"index" json:"user_id"`
	InventoryItemID *uuid.UUID `json:"inventory_item_id,omitempty"`
	Type            string     `json:"notification_type"` // "expiring_soon", "expired", "low_stock"
	Title           string     `json:"title"`
	Message         string     `gorm:"type:text" json:"message"`
	IsRead          bool       `gorm:"default:false" json:"is_read"`

	User          *User          `gorm:"foreignKey:UserID"`
	InventoryItem *InventoryItem `gorm:"foreignKey:InventoryItemID"`
	Timestamp
}
