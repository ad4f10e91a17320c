package benchmarks

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rperset/setstock/internal/core/domain"
)

func benchListings(n int) []domain.Listing {
	listings := make([]domain.Listing, 0, n)
	for i := 0; i < n; i++ {
		price := decimal.NewFromInt(int64(5 + i%200))
		listings = append(listings, domain.Listing{
			Item: domain.Item{
				ID:              fmt.Sprintf("lst-%04d", i),
				ProjectID:       fmt.Sprintf("proj-%d", i%20),
				Name:            fmt.Sprintf("Item %d", i%500),
				Department:      domain.DepartmentGrip,
				QuantityInitial: 10,
				QuantityCurrent: 10,
				Price:           &price,
				SurplusAction:   domain.SurplusMarketplace,
			},
			ProductionName: fmt.Sprintf("Production %d", i%20),
		})
	}
	return listings
}

func benchRequests(n int) []domain.Item {
	requests := make([]domain.Item, 0, n)
	for i := 0; i < n; i++ {
		estimate := decimal.NewFromInt(int64(20 + i%100))
		requests = append(requests, domain.Item{
			ID:              fmt.Sprintf("req-%04d", i),
			ProjectID:       "proj-buyer",
			Name:            fmt.Sprintf("item %d", i%500),
			Department:      domain.DepartmentGrip,
			QuantityInitial: 5,
			Price:           &estimate,
		})
	}
	return requests
}

func BenchmarkMatchOpportunities(b *testing.B) {
	sizes := []struct {
		requests int
		listings int
	}{
		{10, 100},
		{50, 1000},
		{200, 5000},
	}

	for _, size := range sizes {
		requests := benchRequests(size.requests)
		listings := benchListings(size.listings)

		b.Run(fmt.Sprintf("req%d_lst%d", size.requests, size.listings), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = domain.MatchOpportunities(requests, listings, "proj-buyer")
			}
		})
	}
}

func BenchmarkPlanDisposition(b *testing.B) {
	now := time.Now()
	price := decimal.NewFromInt(45)
	resale := decimal.NewFromInt(20)

	b.Run("whole_item", func(b *testing.B) {
		item := domain.Item{
			ID:              "itm-bench",
			ProjectID:       "proj-a",
			Name:            "Apple box",
			Department:      domain.DepartmentGrip,
			QuantityInitial: 10,
			QuantityCurrent: 10,
			Price:           &price,
		}

		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = domain.PlanDisposition(item, domain.SurplusMarketplace, domain.SplitNone, &resale, now)
		}
	})

	b.Run("split_only_new", func(b *testing.B) {
		item := domain.Item{
			ID:              "itm-bench",
			ProjectID:       "proj-a",
			Name:            "Gaffer tape",
			Department:      domain.DepartmentGrip,
			QuantityInitial: 10,
			QuantityCurrent: 10,
			QuantityStarted: 3,
			Price:           &price,
		}

		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = domain.PlanDisposition(item, domain.SurplusMarketplace, domain.SplitOnlyNew, &resale, now)
		}
	})
}

func BenchmarkPricing(b *testing.B) {
	asking := decimal.RequireFromString("12.50")
	original := decimal.NewFromInt(60)
	listing := domain.Listing{
		Item: domain.Item{
			ID:            "lst-bench",
			Name:          "Director's chair",
			Price:         &asking,
			OriginalPrice: &original,
			SurplusAction: domain.SurplusBuyBack,
		},
	}

	b.Run("effective_listing_price", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = domain.EffectiveListingPrice(listing)
		}
	})

	b.Run("platform_fee", func(b *testing.B) {
		total := decimal.RequireFromString("487.50")
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = domain.PlatformFee(total)
		}
	})
}
