package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessScanItem         = "item added to inventory successfully"
	MessageSuccessGetInventory     = "inventory items retrieved successfully"
	MessageSuccessUpdateItem       = "inventory item updated successfully"
	MessageSuccessConsumeItem      = "item marked as consumed"
	MessageSuccessGetDashboard     = "dashboard statistics retrieved successfully"
	MessageSuccessGetExpiringItems = "expiring items retrieved successfully"
	MessageSuccessGetExpiredItems  = "expired items retrieved successfully"
	MessageSuccessGroupItems       = "item counts retrieved successfully"

	MessageFailedScanItem         = "failed to add item to inventory"
	MessageFailedGetInventory     = "failed to retrieve inventory items"
	MessageFailedUpdateItem       = "failed to update inventory item"
	MessageFailedConsumeItem      = "failed to mark item as consumed"
	MessageFailedGetDashboard     = "failed to retrieve dashboard statistics"
	MessageFailedGetExpiringItems = "failed to retrieve expiring items"
	MessageFailedGetExpiredItems  = "failed to retrieve expired items"
	MessageFailedGroupItems       = "failed to retrieve item counts"

	ErrItemNotFound      = errors.New("inventory item not found")
	ErrExpiryDateInPast  = errors.New("expiry date cannot be in the past")
	ErrInvalidExpiryDate = errors.New("invalid expiry date")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
)

type (
	ScanItemRequest struct {
		QRCode     string `json:"qr_code" validate:"required"`
		ExpiryDate string `json:"expiry_date" validate:"required"`
		Quantity   int    `json:"quantity" validate:"omitempty,min=1"`
		Location   string `json:"location" validate:"omitempty"`
		Notes      string `json:"notes" validate:"omitempty"`

		// Used only when the scanned code is not known yet.
		ProductName     string `json:"product_name" validate:"omitempty"`
		ProductBrand    string `json:"product_brand" validate:"omitempty"`
		ProductCategory string `json:"product_category" validate:"omitempty"`
	}

	UpdateInventoryItemRequest struct {
		Quantity   int    `json:"quantity" validate:"omitempty,min=1"`
		ExpiryDate string `json:"expiry_date" validate:"omitempty"`
		Location   string `json:"location" validate:"omitempty"`
		Notes      string `json:"notes" validate:"omitempty"`
		Notified   *bool  `json:"notified" validate:"omitempty"`
	}

	InventoryItemResponse struct {
		ID              string          `json:"id"`
		Product         ProductResponse `json:"product"`
		Quantity        int             `json:"quantity"`
		PurchaseDate    time.Time       `json:"purchase_date"`
		ExpiryDate      time.Time       `json:"expiry_date"`
		Location        string          `json:"location,omitempty"`
		Notes           string          `json:"notes,omitempty"`
		Status          string          `json:"status"`
		Notified        bool            `json:"notified"`
		DaysUntilExpiry int             `json:"days_until_expiry"`
		CreatedAt       time.Time       `json:"created_at"`
	}

	DashboardStatsResponse struct {
		TotalItems   int `json:"total_items"`
		ExpiringSoon int `json:"expiring_soon"`
		Expired      int `json:"expired"`
		AddedToday   int `json:"added_today"`
		FreshItems   int `json:"fresh_items"`
	}

	LocationCount struct {
		Location string `json:"location"`
		Count    int    `json:"count"`
	}

	CategoryCount struct {
		Category string `json:"category"`
		Count    int    `json:"count"`
	}
)
