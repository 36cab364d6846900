// Package services contains stateless domain services for the item bounded context.
// Domain services enforce business rules that operate purely on domain types
// and have zero external dependencies beyond stdlib and the domain layer.
package services

import (
	"time"

	"github.com/ghuser/storefront/services/item/domain/models"
)

// ApplyItemPatch overlays the non-nil fields of patch onto item and refreshes
// UpdatedAt, even for an empty patch. ID and CreatedAt are never touched.
//
// UpdatedAt is strictly increasing: when now does not move past the previous
// value (coarse clocks, rapid successive updates) it advances by one nanosecond.
func ApplyItemPatch(item models.Item, patch models.ItemPatch, now time.Time) models.Item {
	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Price != nil {
		item.Price = *patch.Price
	}
	if patch.Quantity != nil {
		item.Quantity = *patch.Quantity
	}
	if patch.Category != nil {
		c := *patch.Category
		item.Category = &c
	}

	now = now.UTC()
	if !now.After(item.UpdatedAt) {
		now = item.UpdatedAt.Add(time.Nanosecond)
	}
	item.UpdatedAt = now
	return item
}
