package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rperset/setstock/internal/core/domain"
)

func listing(id, projectID, name string, action domain.SurplusAction, price float64) domain.Listing {
	p := decimal.NewFromFloat(price)
	return domain.Listing{
		Item: domain.Item{
			ID:            id,
			ProjectID:     projectID,
			Name:          name,
			SurplusAction: action,
			Price:         &p,
		},
		ProductionName: "Production " + projectID,
	}
}

func request(id, name string, estimate float64) domain.Item {
	item := domain.Item{ID: id, ProjectID: "proj-a", Name: name}
	if estimate > 0 {
		p := decimal.NewFromFloat(estimate)
		item.Price = &p
	}
	return item
}

func TestMatchOpportunities_CheapestWins(t *testing.T) {
	requests := []domain.Item{request("req-1", "ND filter", 400)}
	listings := []domain.Listing{
		listing("lst-b", "proj-b", "nd filter", domain.SurplusMarketplace, 250),
		listing("lst-c", "proj-c", "ND Filter ", domain.SurplusMarketplace, 210),
	}

	opps := domain.MatchOpportunities(requests, listings, "proj-a")
	require.Len(t, opps, 1)
	assert.Equal(t, "lst-c", opps[0].Listing.ID)
	assert.True(t, opps[0].Cost.Equal(decimal.NewFromFloat(210)))
	assert.True(t, opps[0].Saving.Equal(decimal.NewFromFloat(190)))
}

func TestMatchOpportunities_TieBreaksByListingID(t *testing.T) {
	requests := []domain.Item{request("req-1", "apple box", 0)}
	listings := []domain.Listing{
		listing("lst-z", "proj-b", "apple box", domain.SurplusMarketplace, 22.50),
		listing("lst-a", "proj-c", "apple box", domain.SurplusMarketplace, 22.50),
	}

	opps := domain.MatchOpportunities(requests, listings, "proj-a")
	require.Len(t, opps, 1)
	assert.Equal(t, "lst-a", opps[0].Listing.ID)
	assert.True(t, opps[0].Saving.IsZero(), "no estimate means no saving claim")
}

func TestMatchOpportunities_OwnListingsExcluded(t *testing.T) {
	requests := []domain.Item{request("req-1", "led tubes", 110)}
	listings := []domain.Listing{
		listing("lst-own", "proj-a", "led tubes", domain.SurplusMarketplace, 40),
	}

	assert.Empty(t, domain.MatchOpportunities(requests, listings, "proj-a"))
}

func TestMatchOpportunities_OwnBuyBackIncluded(t *testing.T) {
	requests := []domain.Item{request("req-1", "foam core", 12)}

	own := listing("lst-own", "proj-a", "foam core", domain.SurplusBuyBack, 3)
	own.OriginalPrice = decimalPtr(decimal.NewFromFloat(12))

	opps := domain.MatchOpportunities(requests, []domain.Listing{own}, "proj-a")
	require.Len(t, opps, 1)
	assert.Equal(t, "lst-own", opps[0].Listing.ID)
	assert.True(t, opps[0].Cost.Equal(decimal.NewFromFloat(9)),
		"buy-back stock offered back at the platform discount")
}

func TestMatchOpportunities_SkipsPurchasedAndBlank(t *testing.T) {
	bought := request("req-1", "gaffer tape", 10)
	bought.Purchased = true
	blank := request("req-2", "   ", 10)

	listings := []domain.Listing{
		listing("lst-b", "proj-b", "gaffer tape", domain.SurplusMarketplace, 4),
	}

	assert.Empty(t, domain.MatchOpportunities([]domain.Item{bought, blank}, listings, "proj-a"))
}

func TestMatchOpportunities_Deterministic(t *testing.T) {
	requests := []domain.Item{
		request("req-1", "c-stand", 80),
		request("req-2", "sandbag", 15),
	}
	listings := []domain.Listing{
		listing("lst-1", "proj-b", "sandbag", domain.SurplusMarketplace, 6),
		listing("lst-2", "proj-c", "c-stand", domain.SurplusMarketplace, 55),
		listing("lst-3", "proj-d", "c-stand", domain.SurplusMarketplace, 60),
	}

	first := domain.MatchOpportunities(requests, listings, "proj-a")
	for range 10 {
		again := domain.MatchOpportunities(requests, listings, "proj-a")
		assert.Equal(t, first, again)
	}

	require.Len(t, first, 2)
	assert.Equal(t, "req-1", first[0].Request.ID, "output ordered by request order")
	assert.Equal(t, "lst-2", first[0].Listing.ID)
	assert.Equal(t, "req-2", first[1].Request.ID)
}
