package inventory

import (
	"sort"
	"time"

	"github.com/freshalert/freshalert-backend/domain"
	"github.com/freshalert/freshalert-backend/entities"
)

// ComputeDashboardStats derives every dashboard counter from a single
// snapshot of a user's items. added_today overlaps the freshness buckets by
// definition; the other three partition the total.
func ComputeDashboardStats(items []*entities.InventoryItem, today time.Time) domain.DashboardStatsResponse {
	stats := domain.DashboardStatsResponse{TotalItems: len(items)}
	t := truncateToDate(today)

	for _, item := range items {
		switch ComputeStatus(item.ExpiryDate, today) {
		case entities.StatusExpired:
			stats.Expired++
		case entities.StatusExpiringSoon:
			stats.ExpiringSoon++
		default:
			stats.FreshItems++
		}

		if truncateToDate(item.CreatedAt).Equal(t) {
			stats.AddedToday++
		}
	}

	return stats
}

// GroupByLocation counts items per storage location. Items without a location
// fall into the "" bucket. Ordered by count descending, then location
// ascending so equal counts stay deterministic.
func GroupByLocation(items []*entities.InventoryItem) []domain.LocationCount {
	counts := make(map[string]int)
	for _, item := range items {
		counts[item.Location]++
	}

	result := make([]domain.LocationCount, 0, len(counts))
	for location, count := range counts {
		result = append(result, domain.LocationCount{Location: location, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Location < result[j].Location
	})
	return result
}

// GroupByCategory counts items per product category with the same ordering
// rules as GroupByLocation.
func GroupByCategory(items []*entities.InventoryItem) []domain.CategoryCount {
	counts := make(map[string]int)
	for _, item := range items {
		category := ""
		if item.Product != nil {
			category = item.Product.Category
		}
		counts[category]++
	}

	result := make([]domain.CategoryCount, 0, len(counts))
	for category, count := range counts {
		result = append(result, domain.CategoryCount{Category: category, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Category < result[j].Category
	})
	return result
}
