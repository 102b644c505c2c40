package entities

import (
	"github.com/google/uuid"
	"time"
)

const (
	StatusFresh        = "fresh"
	StatusExpiringSoon = "expiring_soon"
	StatusExpired      = "expired"
)

type InventoryItem struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID `gorm:"index:idx_inventory_user_expiry" json:"user_id"`
	ProductID    uuid.UUID `json:"product_id"`
	Quantity     int       `gorm:"default:1" json:"quantity"`
	PurchaseDate time.Time `json:"purchase_date"`
	ExpiryDate   time.Time `gorm:"index:idx_inventory_user_expiry" json:"expiry_date"`
	Location     string    `json:"location,omitempty"`
	Notes        string    `gorm:"type:text" json:"notes,omitempty"`
	Status       string    `gorm:"index" json:"status"` // "fresh", "expiring_soon", "expired"
	Notified     bool      `gorm:"default:false" json:"notified"`

	User    *User    `gorm:"foreignKey:UserID"`
	Product *Product `gorm:"foreignKey:ProductID"`
	Timestamp
}
