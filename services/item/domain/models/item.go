package models

import "time"

// Item is the core aggregate for this bounded context.
// ID and CreatedAt never change after creation.
type Item struct {
	ID        string
	Name      string
	Price     float64
	Quantity  int
	Category  *string // nil when the item has no category
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ItemDraft carries the caller-supplied fields of a new Item.
type ItemDraft struct {
	Name     string
	Price    float64
	Quantity int
	Category *string
}

// ItemPatch lists the fields a partial update replaces; nil means unchanged.
type ItemPatch struct {
	Name     *string
	Price    *float64
	Quantity *int
	Category *string
}

// NewItem builds an Item from a draft. CreatedAt and UpdatedAt are both set to now (UTC).
func NewItem(id string, d ItemDraft, now time.Time) Item {
	now = now.UTC()
	return Item{
		ID:        id,
		Name:      d.Name,
		Price:     d.Price,
		Quantity:  d.Quantity,
		Category:  cloneString(d.Category),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
