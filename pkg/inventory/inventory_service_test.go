package inventory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/freshalert/freshalert-backend/domain"
	"github.com/freshalert/freshalert-backend/entities"
	"github.com/freshalert/freshalert-backend/pkg/product"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entities.User{},
		&entities.Product{},
		&entities.InventoryItem{},
		&entities.Notification{},
		&entities.Category{},
	)
	require.NoError(t, err)
	return db
}

func seedUser(t *testing.T, db *gorm.DB) uuid.UUID {
	user := entities.User{
		ID:       uuid.New(),
		Name:     "Test User",
		Email:    fmt.Sprintf("%s@example.com", uuid.NewString()),
		Password: "secret",
	}
	require.NoError(t, db.Create(&user).Error)
	return user.ID
}

// fixedClock pins "today" to 2026-01-10.
func fixedClock() time.Time {
	return time.Date(2026, time.January, 10, 12, 0, 0, 0, time.UTC)
}

func newTestService(db *gorm.DB) InventoryService {
	return NewInventoryService(
		NewInventoryRepository(db),
		product.NewProductRepository(db),
		fixedClock,
	)
}

func TestScanItemCreatesProductAndItem(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db)
	service := newTestService(db)

	res, err := service.ScanItem(context.Background(), domain.ScanItemRequest{
		QRCode:     "ABC12345XYZ",
		ExpiryDate: "2026-02-01",
		Location:   "Fridge",
	}, userID.String())
	require.NoError(t, err)

	assert.Equal(t, "Product ABC12345", res.Product.Name)
	assert.Equal(t, "ABC12345XYZ", res.Product.QRCode)
	assert.Equal(t, 1, res.Quantity)
	assert.Equal(t, entities.StatusFresh, res.Status)
	assert.Equal(t, "Fridge", res.Location)

	var itemCount, productCount int64
	db.Model(&entities.InventoryItem{}).Count(&itemCount)
	db.Model(&entities.Product{}).Count(&productCount)
	assert.Equal(t, int64(1), itemCount)
	assert.Equal(t, int64(1), productCount)
}

func TestScanItemUsesProductHintsForNewCode(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db)
	service := newTestService(db)

	res, err := service.ScanItem(context.Background(), domain.ScanItemRequest{
		QRCode:          "MILK001",
		ExpiryDate:      "2026-01-12",
		Quantity:        2,
		ProductName:     "Whole Milk",
		ProductBrand:    "Dairyland",
		ProductCategory: "Dairy",
	}, userID.String())
	require.NoError(t, err)

	assert.Equal(t, "Whole Milk", res.Product.Name)
	assert.Equal(t, "Dairyland", res.Product.Brand)
	assert.Equal(t, "Dairy", res.Product.Category)
	assert.Equal(t, 2, res.Quantity)
	assert.Equal(t, entities.StatusExpiringSoon, res.Status)
}

func TestScanItemReusesExistingProduct(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db)
	service := newTestService(db)

	first, err := service.ScanItem(context.Background(), domain.ScanItemRequest{
		QRCode:      "SHARED01",
		ExpiryDate:  "2026-02-01",
		ProductName: "Orange Juice",
	}, userID.String())
	require.NoError(t, err)

	// Hints on a known code are ignored; the stored product wins.
	second, err := service.ScanItem(context.Background(), domain.ScanItemRequest{
		QRCode:      "SHARED01",
		ExpiryDate:  "2026-02-05",
		ProductName: "Something Else",
	}, userID.String())
	require.NoError(t, err)

	assert.Equal(t, first.Product.ID, second.Product.ID)
	assert.Equal(t, "Orange Juice", second.Product.Name)

	var productCount int64
	db.Model(&entities.Product{}).Count(&productCount)
	assert.Equal(t, int64(1), productCount)
}

func TestScanItemRejectsPastExpiry(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db)
	service := newTestService(db)

	_, err := service.ScanItem(context.Background(), domain.ScanItemRequest{
		QRCode:     "OLDFOOD1",
		ExpiryDate: "2026-01-09",
	}, userID.String())
	assert.ErrorIs(t, err, domain.ErrExpiryDateInPast)

	// Rejected before any write: no product either.
	var itemCount, productCount int64
	db.Model(&entities.InventoryItem{}).Count(&itemCount)
	db.Model(&entities.Product{}).Count(&productCount)
	assert.Equal(t, int64(0), itemCount)
	assert.Equal(t, int64(0), productCount)
}

func TestScanItemAcceptsExpiryToday(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db)
	service := newTestService(db)

	res, err := service.ScanItem(context.Background(), domain.ScanItemRequest{
		QRCode:     "TODAY001",
		ExpiryDate: "2026-01-10",
	}, userID.String())
	require.NoError(t, err)

	assert.Equal(t, entities.StatusExpiringSoon, res.Status)
	assert.Equal(t, 0, res.DaysUntilExpiry)
}

func TestScanItemInvalidExpiryFormat(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db)
	service := newTestService(db)

	_, err := service.ScanItem(context.Background(), domain.ScanItemRequest{
		QRCode:     "BADDATE1",
		ExpiryDate: "01/10/2026",
	}, userID.String())
	assert.ErrorIs(t, err, domain.ErrInvalidExpiryDate)
}

func TestUpdateItemRecomputesStatus(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db)
	service := newTestService(db)

	res, err := service.ScanItem(context.Background(), domain.ScanItemRequest{
		QRCode:     "YOGURT01",
		ExpiryDate: "2026-02-01",
	}, userID.String())
	require.NoError(t, err)
	assert.Equal(t, entities.StatusFresh, res.Status)

	err = service.UpdateItem(context.Background(), res.ID, domain.UpdateInventoryItemRequest{
		ExpiryDate: "2026-01-11",
	}, userID.String())
	require.NoError(t, err)

	var item entities.InventoryItem
	require.NoError(t, db.Where("id = ?", res.ID).First(&item).Error)
	assert.Equal(t, entities.StatusExpiringSoon, item.Status)
}

func TestItemOwnershipAnswersNotFound(t *testing.T) {
	db := setupTestDB(t)
	ownerID := seedUser(t, db)
	strangerID := seedUser(t, db)
	service := newTestService(db)

	res, err := service.ScanItem(context.Background(), domain.ScanItemRequest{
		QRCode:     "PRIVATE1",
		ExpiryDate: "2026-02-01",
	}, ownerID.String())
	require.NoError(t, err)

	_, err = service.GetItemByID(context.Background(), res.ID, strangerID.String())
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	err = service.UpdateItem(context.Background(), res.ID, domain.UpdateInventoryItemRequest{Quantity: 5}, strangerID.String())
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	err = service.ConsumeItem(context.Background(), res.ID, strangerID.String())
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	// The owner still sees it.
	_, err = service.GetItemByID(context.Background(), res.ID, ownerID.String())
	assert.NoError(t, err)
}

func TestConsumeItemRemovesFromQueriesAndStats(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db)
	service := newTestService(db)

	keep, err := service.ScanItem(context.Background(), domain.ScanItemRequest{
		QRCode:     "KEEP0001",
		ExpiryDate: "2026-02-01",
	}, userID.String())
	require.NoError(t, err)

	consume, err := service.ScanItem(context.Background(), domain.ScanItemRequest{
		QRCode:     "EATEN001",
		ExpiryDate: "2026-02-01",
	}, userID.String())
	require.NoError(t, err)

	require.NoError(t, service.ConsumeItem(context.Background(), consume.ID, userID.String()))

	stats, err := service.GetDashboardStats(context.Background(), userID.String())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalItems)

	items, count, err := service.GetItems(context.Background(), userID.String(), "all", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	require.Len(t, items, 1)
	assert.Equal(t, keep.ID, items[0].ID)

	_, err = service.GetItemByID(context.Background(), consume.ID, userID.String())
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func seedItem(t *testing.T, db *gorm.DB, userID uuid.UUID, expiry time.Time, location string, category string) *entities.InventoryItem {
	p := entities.Product{
		ID:       uuid.New(),
		QRCode:   uuid.NewString(),
		Name:     "Seeded Product",
		Category: category,
	}
	require.NoError(t, db.Create(&p).Error)

	item := entities.InventoryItem{
		ID:         uuid.New(),
		UserID:     userID,
		ProductID:  p.ID,
		Quantity:   1,
		ExpiryDate: expiry,
		Location:   location,
		Status:     ComputeStatus(expiry, fixedClock()),
	}
	require.NoError(t, db.Create(&item).Error)
	return &item
}

func TestGetDashboardStats(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db)
	otherID := seedUser(t, db)
	service := newTestService(db)

	seedItem(t, db, userID, date(2026, time.January, 5), "Fridge", "")  // expired
	seedItem(t, db, userID, date(2026, time.January, 10), "Fridge", "") // diff 0
	seedItem(t, db, userID, date(2026, time.January, 13), "Pantry", "") // diff 3
	seedItem(t, db, userID, date(2026, time.January, 14), "Pantry", "") // diff 4

	// Another user's item must not leak into the stats.
	seedItem(t, db, otherID, date(2026, time.January, 5), "Fridge", "")

	stats, err := service.GetDashboardStats(context.Background(), userID.String())
	require.NoError(t, err)

	assert.Equal(t, 4, stats.TotalItems)
	assert.Equal(t, 1, stats.Expired)
	assert.Equal(t, 2, stats.ExpiringSoon)
	assert.Equal(t, 1, stats.FreshItems)
}

func TestGetExpiringAndExpiredItems(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db)
	service := newTestService(db)

	seedItem(t, db, userID, date(2026, time.January, 5), "", "")
	soon := seedItem(t, db, userID, date(2026, time.January, 12), "", "")
	seedItem(t, db, userID, date(2026, time.January, 25), "", "")

	expiring, err := service.GetExpiringItems(context.Background(), userID.String(), 7)
	require.NoError(t, err)
	require.Len(t, expiring, 1)
	assert.Equal(t, soon.ID.String(), expiring[0].ID)
	assert.Equal(t, 2, expiring[0].DaysUntilExpiry)

	expired, err := service.GetExpiredItems(context.Background(), userID.String())
	require.NoError(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, entities.StatusExpired, expired[0].Status)
}

func TestGroupItems(t *testing.T) {
	db := setupTestDB(t)
	userID := seedUser(t, db)
	service := newTestService(db)

	seedItem(t, db, userID, date(2026, time.February, 1), "Fridge", "Dairy")
	seedItem(t, db, userID, date(2026, time.February, 1), "Fridge", "Dairy")
	seedItem(t, db, userID, date(2026, time.February, 1), "Pantry", "Snacks")
	seedItem(t, db, userID, date(2026, time.February, 1), "", "")

	byLocation, err := service.GroupItemsByLocation(context.Background(), userID.String())
	require.NoError(t, err)
	assert.Equal(t, []domain.LocationCount{
		{Location: "Fridge", Count: 2},
		{Location: "", Count: 1},
		{Location: "Pantry", Count: 1},
	}, byLocation)

	byCategory, err := service.GroupItemsByCategory(context.Background(), userID.String())
	require.NoError(t, err)
	assert.Equal(t, []domain.CategoryCount{
		{Category: "Dairy", Count: 2},
		{Category: "", Count: 1},
		{Category: "Snacks", Count: 1},
	}, byCategory)
}
