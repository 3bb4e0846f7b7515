package request

import "voicehub/internal/usecase"

// CatalogRowRequest is one parsed row of a menu upload. The dashboard's
// upload collaborator has already decoded the CSV; this endpoint only sees
// the tuples.
type CatalogRowRequest struct {
	Name      string  `json:"name" binding:"required"`
	Category  string  `json:"category"`
	Price     float64 `json:"price"`
	Available *bool   `json:"available"`
}

// ReplaceMenuRequest replaces a restaurant's whole catalog.
type ReplaceMenuRequest struct {
	RestaurantID string              `json:"restaurant_id"`
	Items        []CatalogRowRequest `json:"items" binding:"required"`
}

func (r ReplaceMenuRequest) ToRows() []usecase.CatalogRow {
	rows := make([]usecase.CatalogRow, 0, len(r.Items))
	for _, it := range r.Items {
		available := true
		if it.Available != nil {
			available = *it.Available
		}
		rows = append(rows, usecase.CatalogRow{
			Name:      it.Name,
			Category:  it.Category,
			Price:     it.Price,
			Available: available,
		})
	}
	return rows
}

// SetAvailabilityRequest toggles one item. Pointer binding distinguishes
// "available": false from an absent field.
type SetAvailabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}
