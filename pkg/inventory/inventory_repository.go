package inventory

import (
	"context"
	"time"

	"github.com/freshalert/freshalert-backend/entities"
	"gorm.io/gorm"
)

type (
	InventoryRepository interface {
		AddItem(ctx context.Context, item *entities.InventoryItem) error
		GetItemByID(ctx context.Context, id string) (*entities.InventoryItem, error)
		UpdateItem(ctx context.Context, item *entities.InventoryItem) error
		DeleteItem(ctx context.Context, id string) error
		GetItems(ctx context.Context, userID string, status string, page, limit int) ([]*entities.InventoryItem, int64, error)
		GetAllItems(ctx context.Context, userID string) ([]*entities.InventoryItem, error)
		GetItemsByExpiryRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]*entities.InventoryItem, error)
		GetExpiredItems(ctx context.Context, userID string, before time.Time) ([]*entities.InventoryItem, error)
		GetUnnotifiedItemsDueBy(ctx context.Context, deadline time.Time) ([]*entities.InventoryItem, error)
	}

	inventoryRepository struct {
		db *gorm.DB
	}
)

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) AddItem(ctx context.Context, item *entities.InventoryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *inventoryRepository) GetItemByID(ctx context.Context, id string) (*entities.InventoryItem, error) {
	var item entities.InventoryItem
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Where("id = ?", id).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *inventoryRepository) UpdateItem(ctx context.Context, item *entities.InventoryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *inventoryRepository) DeleteItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.InventoryItem{}).Error
}

func (r *inventoryRepository) GetItems(ctx context.Context, userID string, status string, page, limit int) ([]*entities.InventoryItem, int64, error) {
	var items []*entities.InventoryItem
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if status != "all" && status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Model(&entities.InventoryItem{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Preload("Product").
		Offset(offset).Limit(limit).
		Order("expiry_date asc").
		Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, count, nil
}

// GetAllItems loads a user's full inventory in one query so dashboard and
// grouping counts come from the same snapshot.
func (r *inventoryRepository) GetAllItems(ctx context.Context, userID string) ([]*entities.InventoryItem, error) {
	var items []*entities.InventoryItem
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *inventoryRepository) GetItemsByExpiryRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]*entities.InventoryItem, error) {
	var items []*entities.InventoryItem
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ? AND expiry_date BETWEEN ? AND ?", userID, startDate, endDate).
		Order("expiry_date asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *inventoryRepository) GetExpiredItems(ctx context.Context, userID string, before time.Time) ([]*entities.InventoryItem, error) {
	var items []*entities.InventoryItem
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ? AND expiry_date < ?", userID, before).
		Order("expiry_date desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetUnnotifiedItemsDueBy returns items across all users that reach expiry on
// or before the deadline and have not been alerted yet.
func (r *inventoryRepository) GetUnnotifiedItemsDueBy(ctx context.Context, deadline time.Time) ([]*entities.InventoryItem, error) {
	var items []*entities.InventoryItem
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("User").
		Where("notified = ? AND expiry_date <= ?", false, deadline).
		Order("expiry_date asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
