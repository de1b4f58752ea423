package forecast

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/V1p3er/anbargar/internal/domain"
)

// SentinelDays is emitted for items with stock but no sales in the window.
// It sorts after every finite prediction and never counts toward risk.
const SentinelDays = 999

// Suggestion strings, tiered by days until stockout.
const (
	SuggestionUrgent       = "Restock urgently."
	SuggestionSoon         = "Plan a restock soon."
	SuggestionMonitor      = "Monitor stock levels closely."
	SuggestionHealthy      = "Stock levels are healthy."
	SuggestionInsufficient = "Not enough sales data."
)

// Prediction is one item's stockout estimate.
type Prediction struct {
	ItemID            uuid.UUID `json:"item_id"`
	ItemName          string    `json:"item_name"`
	CurrentQuantity   float64   `json:"current_quantity"`
	AvgDailySales     float64   `json:"avg_daily_sales"`
	DaysUntilStockout int       `json:"days_until_stockout"`
	Suggestion        string    `json:"suggestion"`
}

// Result is the full predictor output.
type Result struct {
	Predictions       []Prediction `json:"predictions"`
	TotalLowStockRisk int          `json:"total_low_stock_risk"`
}

// Predict estimates, for every stocked item of the business, how many days
// of inventory remain at the recent sales pace. lookbackDays <= 0 uses the
// configured default.
func (s *Service) Predict(ctx context.Context, businessID uuid.UUID, lookbackDays int) (*Result, error) {
	if lookbackDays <= 0 {
		lookbackDays = s.cfg.DefaultLookbackDays
	}

	cacheKey := fmt.Sprintf("forecast:%s:%d", businessID, lookbackDays)
	if s.cache != nil {
		var cached Result
		if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	cutoff := s.now().AddDate(0, 0, -lookbackDays)

	items, err := s.items.List(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	result := &Result{Predictions: []Prediction{}}
	for _, item := range items {
		total, err := s.ledger.TotalForItem(ctx, businessID, item.ID)
		if err != nil {
			return nil, fmt.Errorf("total quantity for item: %w", err)
		}
		if total == 0 {
			continue
		}

		sales, err := s.sales.SalesSince(ctx, businessID, item.ID, cutoff)
		if err != nil {
			return nil, fmt.Errorf("sales for item: %w", err)
		}

		rate := burnRate(sales)
		p := Prediction{
			ItemID:          item.ID,
			ItemName:        item.Name,
			CurrentQuantity: total,
		}

		if rate > 0 {
			daysLeft := int(total / rate)
			p.AvgDailySales = math.Round(rate*100) / 100
			p.DaysUntilStockout = daysLeft
			switch {
			case daysLeft <= 3:
				p.Suggestion = SuggestionUrgent
				result.TotalLowStockRisk++
			case daysLeft <= 7:
				p.Suggestion = SuggestionSoon
				result.TotalLowStockRisk++
			case daysLeft <= 14:
				p.Suggestion = SuggestionMonitor
			default:
				p.Suggestion = SuggestionHealthy
			}
		} else {
			p.DaysUntilStockout = SentinelDays
			p.Suggestion = SuggestionInsufficient
		}

		result.Predictions = append(result.Predictions, p)
	}

	sort.SliceStable(result.Predictions, func(i, j int) bool {
		return result.Predictions[i].DaysUntilStockout < result.Predictions[j].DaysUntilStockout
	})

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, result); err != nil {
			s.log.WarnContext(ctx, "forecast cache write failed", "error", err)
		}
	}

	return result, nil
}

// burnRate averages sold quantity over the distinct calendar days that had
// any sale. Days without sales do not enter the denominator.
func burnRate(sales []domain.Sale) float64 {
	if len(sales) == 0 {
		return 0
	}

	daily := make(map[string]float64)
	for _, s := range sales {
		day := s.At.Format("2006-01-02")
		daily[day] += s.Quantity
	}

	var sum float64
	for _, q := range daily {
		sum += q
	}
	return sum / float64(len(daily))
}
