package handlers

import (
	"time"

	"github.com/ghuser/storefront/services/item/domain/models"
)

// CreateItemRequest is the request body for POST /items.
type CreateItemRequest struct {
	Name     string   `json:"name"               validate:"required,min=1,max=100" example:"Claw hammer"`
	Price    *float64 `json:"price"              validate:"required,gt=0"          example:"19.99"`
	Quantity *float64 `json:"quantity,omitempty" validate:"omitempty,integer,gte=0" example:"10" swaggertype:"integer"`
	Category *string  `json:"category,omitempty"                                   example:"tools"`
} // @name CreateItemRequest

// UpdateItemRequest is the request body for PATCH /items/{id}. Absent fields
// are left unchanged; present ones obey the creation rules.
type UpdateItemRequest struct {
	Name     *string  `json:"name,omitempty"     validate:"omitempty,min=1,max=100" example:"Framing hammer"`
	Price    *float64 `json:"price,omitempty"    validate:"omitempty,gt=0"          example:"24.50"`
	Quantity *float64 `json:"quantity,omitempty" validate:"omitempty,integer,gte=0" example:"4" swaggertype:"integer"`
	Category *string  `json:"category,omitempty"                                    example:"tools"`
} // @name UpdateItemRequest

// ItemResponse is the JSON representation of an Item.
type ItemResponse struct {
	ID        string    `json:"id"                 example:"1"`
	Name      string    `json:"name"               example:"Claw hammer"`
	Price     float64   `json:"price"              example:"19.99"`
	Quantity  int       `json:"quantity"           example:"10"`
	Category  *string   `json:"category,omitempty" example:"tools"`
	CreatedAt time.Time `json:"createdAt"          example:"2025-01-15T10:30:00Z"`
	UpdatedAt time.Time `json:"updatedAt"          example:"2025-01-15T10:30:00Z"`
} // @name ItemResponse

func (r *CreateItemRequest) toDraft() models.ItemDraft {
	d := models.ItemDraft{Name: r.Name, Price: *r.Price, Category: r.Category}
	if r.Quantity != nil {
		d.Quantity = int(*r.Quantity)
	}
	return d
}

func (r *UpdateItemRequest) toPatch() models.ItemPatch {
	return models.ItemPatch{
		Name:     r.Name,
		Price:    r.Price,
		Quantity: wholeNumber(r.Quantity),
		Category: r.Category,
	}
}

// wholeNumber converts a quantity that already passed the integer check.
func wholeNumber(f *float64) *int {
	if f == nil {
		return nil
	}
	n := int(*f)
	return &n
}

func toItemResponse(item models.Item) ItemResponse {
	return ItemResponse{
		ID:        item.ID,
		Name:      item.Name,
		Price:     item.Price,
		Quantity:  item.Quantity,
		Category:  item.Category,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

func toItemResponses(items []models.Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toItemResponse(item))
	}
	return out
}
