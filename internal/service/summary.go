package service

import (
	"github.com/shopspring/decimal"

	"github.com/medsupply/orderflow/internal/domain"
)

// BuildSummary turns the catalog plus the current quantities into the display
// summary. Items come out in catalog iteration order; products with a
// quantity of zero or less are skipped entirely. Pure function: empty or
// nil inputs yield an empty summary with a zero grand total.
func BuildSummary(products []domain.Product, quantities map[string]int) domain.OrderSummary {
	summary := domain.OrderSummary{
		Items:      make([]domain.OrderLineItem, 0, len(quantities)),
		GrandTotal: decimal.Zero,
	}

	for _, p := range products {
		qty := quantities[p.ID]
		if qty <= 0 {
			continue
		}

		lineTotal := p.PricePerUnit.Mul(decimal.NewFromInt(int64(qty)))
		summary.Items = append(summary.Items, domain.OrderLineItem{
			ProductID: p.ID,
			Name:      p.Name,
			ImageRef:  p.ImageRef,
			Quantity:  qty,
			LineTotal: lineTotal,
		})
		summary.GrandTotal = summary.GrandTotal.Add(lineTotal)
	}

	return summary
}
