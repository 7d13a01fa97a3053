package services

import (
	"sort"
	"strconv"
	"strings"

	"github.com/mern-eats/sales-api/internal/models"
	"github.com/shopspring/decimal"
)

// DefaultTopItems is the size of the popular items ranking
const DefaultTopItems = 10

const unknownItemName = "Unknown Item"

// BuildPopularItems ranks menu items by quantity sold. Line items without
// their own price are valued at the average price seen for the same menu
// item elsewhere in orders. The result is sorted by quantity, descending,
// with ties kept in first-seen order, and truncated to limit entries.
func BuildPopularItems(orders []models.Order, limit int) []models.PopularItem {
	if limit <= 0 {
		limit = DefaultTopItems
	}

	avgPrices := averageUnitPrices(orders)
	index := make(map[string]int)
	items := make([]models.PopularItem, 0)

	for i := range orders {
		for j := range orders[i].CartItems {
			line := &orders[i].CartItems[j]
			id := strings.TrimSpace(line.MenuItemID)
			if id == "" {
				continue
			}

			quantity := ParseQuantity(line.Quantity)
			unitPrice := avgPrices[id]
			if line.HasPrice() {
				unitPrice = decimal.NewFromInt(*line.Price)
			}
			revenue := unitPrice.Mul(decimal.NewFromInt(quantity)).Shift(-2)

			pos, ok := index[id]
			if !ok {
				name := strings.TrimSpace(line.Name)
				if name == "" {
					name = unknownItemName
				}
				pos = len(items)
				index[id] = pos
				items = append(items, models.PopularItem{MenuItemID: id, Name: name, Revenue: decimal.Zero})
			}
			items[pos].Count += quantity
			items[pos].Revenue = items[pos].Revenue.Add(revenue)
		}
	}

	sort.SliceStable(items, func(a, b int) bool {
		return items[a].Count > items[b].Count
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}

// averageUnitPrices maps menu item id to the mean of its priced line
// items, in minor units. Items never priced are absent (zero value).
func averageUnitPrices(orders []models.Order) map[string]decimal.Decimal {
	type tally struct {
		sum   int64
		count int64
	}
	tallies := make(map[string]*tally)
	for i := range orders {
		for j := range orders[i].CartItems {
			line := &orders[i].CartItems[j]
			id := strings.TrimSpace(line.MenuItemID)
			if id == "" || !line.HasPrice() {
				continue
			}
			t, ok := tallies[id]
			if !ok {
				t = &tally{}
				tallies[id] = t
			}
			t.sum += *line.Price
			t.count++
		}
	}

	avg := make(map[string]decimal.Decimal, len(tallies))
	for id, t := range tallies {
		avg[id] = decimal.NewFromInt(t.sum).Div(decimal.NewFromInt(t.count))
	}
	return avg
}

// ParseQuantity reads the leading integer of a stored quantity ("3",
// " 2 pcs", "4.5" → 4). Anything without leading digits, negative values
// and overflowing values count as 0.
func ParseQuantity(raw string) int64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	if s[0] == '+' {
		s = s[1:]
	} else if s[0] == '-' {
		return 0
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}

	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0
	}
	return n
}
