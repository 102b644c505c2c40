package inventory

import (
	"testing"
	"time"

	"github.com/freshalert/freshalert-backend/domain"
	"github.com/freshalert/freshalert-backend/entities"
	"github.com/stretchr/testify/assert"
)

func itemWithExpiry(expiry time.Time) *entities.InventoryItem {
	return &entities.InventoryItem{ExpiryDate: expiry}
}

func TestComputeDashboardStats(t *testing.T) {
	today := date(2026, time.January, 10)

	items := []*entities.InventoryItem{
		itemWithExpiry(date(2026, time.January, 5)),  // expired
		itemWithExpiry(date(2026, time.January, 10)), // expiring_soon, diff 0
		itemWithExpiry(date(2026, time.January, 13)), // expiring_soon, diff 3
		itemWithExpiry(date(2026, time.January, 14)), // fresh, diff 4
	}

	stats := ComputeDashboardStats(items, today)

	assert.Equal(t, 4, stats.TotalItems)
	assert.Equal(t, 1, stats.Expired)
	assert.Equal(t, 2, stats.ExpiringSoon)
	assert.Equal(t, 1, stats.FreshItems)
	assert.Equal(t, 0, stats.AddedToday)
}

func TestComputeDashboardStatsAddedToday(t *testing.T) {
	today := date(2026, time.January, 10)

	fresh := itemWithExpiry(date(2026, time.February, 1))
	fresh.CreatedAt = time.Date(2026, time.January, 10, 14, 30, 0, 0, time.UTC)

	expired := itemWithExpiry(date(2026, time.January, 1))
	expired.CreatedAt = time.Date(2026, time.January, 10, 9, 0, 0, 0, time.UTC)

	old := itemWithExpiry(date(2026, time.February, 1))
	old.CreatedAt = time.Date(2026, time.January, 9, 9, 0, 0, 0, time.UTC)

	stats := ComputeDashboardStats([]*entities.InventoryItem{fresh, expired, old}, today)

	// added_today cross-cuts the freshness buckets.
	assert.Equal(t, 3, stats.TotalItems)
	assert.Equal(t, 2, stats.AddedToday)
	assert.Equal(t, 1, stats.Expired)
	assert.Equal(t, 2, stats.FreshItems)
}

func TestComputeDashboardStatsEmpty(t *testing.T) {
	stats := ComputeDashboardStats(nil, date(2026, time.January, 10))
	assert.Equal(t, domain.DashboardStatsResponse{}, stats)
}

func TestGroupByLocation(t *testing.T) {
	items := []*entities.InventoryItem{
		{Location: "Fridge"},
		{Location: "Fridge"},
		{Location: "Pantry"},
		{Location: ""},
	}

	counts := GroupByLocation(items)

	assert.Equal(t, []domain.LocationCount{
		{Location: "Fridge", Count: 2},
		{Location: "", Count: 1},
		{Location: "Pantry", Count: 1},
	}, counts)
}

func TestGroupByCategory(t *testing.T) {
	dairy := &entities.Product{Category: "Dairy"}
	meat := &entities.Product{Category: "Meat"}

	items := []*entities.InventoryItem{
		{Product: dairy},
		{Product: dairy},
		{Product: meat},
		{Product: &entities.Product{}},
		{Product: nil},
	}

	counts := GroupByCategory(items)

	// Equal counts order by category ascending, so "" sorts first.
	assert.Equal(t, []domain.CategoryCount{
		{Category: "", Count: 2},
		{Category: "Dairy", Count: 2},
		{Category: "Meat", Count: 1},
	}, counts)
}
