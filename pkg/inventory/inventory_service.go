package inventory

import (
	"context"
	"errors"
	"time"

	"github.com/freshalert/freshalert-backend/domain"
	"github.com/freshalert/freshalert-backend/entities"
	"github.com/freshalert/freshalert-backend/pkg/product"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DefaultExpiringWindowDays = 7

// Clock supplies "now" so expiry classification stays deterministic in tests.
type Clock func() time.Time

type (
	InventoryService interface {
		ScanItem(ctx context.Context, req domain.ScanItemRequest, userID string) (domain.InventoryItemResponse, error)
		GetItems(ctx context.Context, userID string, status string, page, limit int) ([]domain.InventoryItemResponse, int64, error)
		GetItemByID(ctx context.Context, id string, userID string) (domain.InventoryItemResponse, error)
		UpdateItem(ctx context.Context, id string, req domain.UpdateInventoryItemRequest, userID string) error
		ConsumeItem(ctx context.Context, id string, userID string) error
		GetDashboardStats(ctx context.Context, userID string) (domain.DashboardStatsResponse, error)
		GetExpiringItems(ctx context.Context, userID string, days int) ([]domain.InventoryItemResponse, error)
		GetExpiredItems(ctx context.Context, userID string) ([]domain.InventoryItemResponse, error)
		GroupItemsByLocation(ctx context.Context, userID string) ([]domain.LocationCount, error)
		GroupItemsByCategory(ctx context.Context, userID string) ([]domain.CategoryCount, error)
	}

	inventoryService struct {
		inventoryRepository InventoryRepository
		productRepository   product.ProductRepository
		now                 Clock
	}
)

func NewInventoryService(inventoryRepository InventoryRepository, productRepository product.ProductRepository, clock Clock) InventoryService {
	if clock == nil {
		clock = time.Now
	}
	return &inventoryService{
		inventoryRepository: inventoryRepository,
		productRepository:   productRepository,
		now:                 clock,
	}
}

// PlaceholderName builds a product name from the first eight characters of a
// scan code, used when a new code arrives without product hints.
func PlaceholderName(qrCode string) string {
	code := qrCode
	if len(code) > 8 {
		code = code[:8]
	}
	return "Product " + code
}

func (s *inventoryService) toItemResponse(item *entities.InventoryItem, today time.Time) domain.InventoryItemResponse {
	response := domain.InventoryItemResponse{
		ID:              item.ID.String(),
		Quantity:        item.Quantity,
		PurchaseDate:    item.PurchaseDate,
		ExpiryDate:      item.ExpiryDate,
		Location:        item.Location,
		Notes:           item.Notes,
		Status:          ComputeStatus(item.ExpiryDate, today),
		Notified:        item.Notified,
		DaysUntilExpiry: DaysUntilExpiry(item.ExpiryDate, today),
		CreatedAt:       item.CreatedAt,
	}
	if item.Product != nil {
		response.Product = product.ToProductResponse(item.Product)
	}
	return response
}

func (s *inventoryService) ScanItem(ctx context.Context, req domain.ScanItemRequest, userID string) (domain.InventoryItemResponse, error) {
	expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
	if err != nil {
		return domain.InventoryItemResponse{}, domain.ErrInvalidExpiryDate
	}

	today := s.now()

	// Reject before any write happens.
	if DaysUntilExpiry(expiryDate, today) < 0 {
		return domain.InventoryItemResponse{}, domain.ErrExpiryDateInPast
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return domain.InventoryItemResponse{}, domain.ErrInvalidQuantity
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.InventoryItemResponse{}, domain.ErrParseUUID
	}

	name := req.ProductName
	if name == "" {
		name = PlaceholderName(req.QRCode)
	}

	resolved, err := s.productRepository.GetOrCreateProduct(ctx, &entities.Product{
		ID:       uuid.New(),
		QRCode:   req.QRCode,
		Name:     name,
		Brand:    req.ProductBrand,
		Category: req.ProductCategory,
	})
	if err != nil {
		return domain.InventoryItemResponse{}, err
	}

	item := &entities.InventoryItem{
		ID:           uuid.New(),
		UserID:       userUUID,
		ProductID:    resolved.ID,
		Quantity:     quantity,
		PurchaseDate: today,
		ExpiryDate:   expiryDate,
		Location:     req.Location,
		Notes:        req.Notes,
		Status:       ComputeStatus(expiryDate, today),
	}

	if err := s.inventoryRepository.AddItem(ctx, item); err != nil {
		return domain.InventoryItemResponse{}, err
	}

	item.Product = resolved
	return s.toItemResponse(item, today), nil
}

func (s *inventoryService) GetItems(ctx context.Context, userID string, status string, page, limit int) ([]domain.InventoryItemResponse, int64, error) {
	items, count, err := s.inventoryRepository.GetItems(ctx, userID, status, page, limit)
	if err != nil {
		return nil, 0, err
	}

	today := s.now()
	var response []domain.InventoryItemResponse
	for _, item := range items {
		response = append(response, s.toItemResponse(item, today))
	}

	return response, count, nil
}

// getOwnedItem fetches an item and enforces ownership. A row owned by someone
// else answers the same not-found error as a missing row.
func (s *inventoryService) getOwnedItem(ctx context.Context, id string, userID string) (*entities.InventoryItem, error) {
	item, err := s.inventoryRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}
	if item.UserID.String() != userID {
		return nil, domain.ErrItemNotFound
	}
	return item, nil
}

func (s *inventoryService) GetItemByID(ctx context.Context, id string, userID string) (domain.InventoryItemResponse, error) {
	item, err := s.getOwnedItem(ctx, id, userID)
	if err != nil {
		return domain.InventoryItemResponse{}, err
	}
	return s.toItemResponse(item, s.now()), nil
}

func (s *inventoryService) UpdateItem(ctx context.Context, id string, req domain.UpdateInventoryItemRequest, userID string) error {
	item, err := s.getOwnedItem(ctx, id, userID)
	if err != nil {
		return err
	}

	if req.Quantity > 0 {
		item.Quantity = req.Quantity
	}
	if req.ExpiryDate != "" {
		expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return domain.ErrInvalidExpiryDate
		}
		item.ExpiryDate = expiryDate
	}
	if req.Location != "" {
		item.Location = req.Location
	}
	if req.Notes != "" {
		item.Notes = req.Notes
	}
	if req.Notified != nil {
		item.Notified = *req.Notified
	}

	// Status is never taken from the caller; recompute on every persist.
	item.Status = ComputeStatus(item.ExpiryDate, s.now())

	return s.inventoryRepository.UpdateItem(ctx, item)
}

func (s *inventoryService) ConsumeItem(ctx context.Context, id string, userID string) error {
	item, err := s.getOwnedItem(ctx, id, userID)
	if err != nil {
		return err
	}
	return s.inventoryRepository.DeleteItem(ctx, item.ID.String())
}

func (s *inventoryService) GetDashboardStats(ctx context.Context, userID string) (domain.DashboardStatsResponse, error) {
	items, err := s.inventoryRepository.GetAllItems(ctx, userID)
	if err != nil {
		return domain.DashboardStatsResponse{}, err
	}
	return ComputeDashboardStats(items, s.now()), nil
}

func (s *inventoryService) GetExpiringItems(ctx context.Context, userID string, days int) ([]domain.InventoryItemResponse, error) {
	if days <= 0 {
		days = DefaultExpiringWindowDays
	}

	today := s.now()
	start := truncateToDate(today)
	end := start.AddDate(0, 0, days)

	items, err := s.inventoryRepository.GetItemsByExpiryRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	var response []domain.InventoryItemResponse
	for _, item := range items {
		response = append(response, s.toItemResponse(item, today))
	}
	return response, nil
}

func (s *inventoryService) GetExpiredItems(ctx context.Context, userID string) ([]domain.InventoryItemResponse, error) {
	today := s.now()

	items, err := s.inventoryRepository.GetExpiredItems(ctx, userID, truncateToDate(today))
	if err != nil {
		return nil, err
	}

	var response []domain.InventoryItemResponse
	for _, item := range items {
		response = append(response, s.toItemResponse(item, today))
	}
	return response, nil
}

func (s *inventoryService) GroupItemsByLocation(ctx context.Context, userID string) ([]domain.LocationCount, error) {
	items, err := s.inventoryRepository.GetAllItems(ctx, userID)
	if err != nil {
		return nil, err
	}
	return GroupByLocation(items), nil
}

func (s *inventoryService) GroupItemsByCategory(ctx context.Context, userID string) ([]domain.CategoryCount, error) {
	items, err := s.inventoryRepository.GetAllItems(ctx, userID)
	if err != nil {
		return nil, err
	}
	return GroupByCategory(items), nil
}
