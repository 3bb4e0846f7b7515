package response

import (
	"voicehub/internal/domain/entities"
	"voicehub/internal/usecase"
)

type ModifierGroupView struct {
	Name    string   `json:"name"`
	Options []string `json:"options"`
}

type MenuItemView struct {
	ItemID    string              `json:"item_id"`
	Name      string              `json:"name"`
	Category  string              `json:"category"`
	Price     float64             `json:"price"`
	Available bool                `json:"available"`
	Modifiers []ModifierGroupView `json:"modifiers"`
}

func FromMenuItem(it entities.MenuItem) MenuItemView {
	view := MenuItemView{
		ItemID:    it.ItemID,
		Name:      it.Name,
		Category:  it.Category,
		Price:     Round2(it.Price),
		Available: it.Available,
		Modifiers: []ModifierGroupView{},
	}
	for _, m := range it.Modifiers {
		view.Modifiers = append(view.Modifiers, ModifierGroupView{Name: m.Name, Options: m.Options})
	}
	return view
}

func FromMenuItems(items []entities.MenuItem) []MenuItemView {
	out := make([]MenuItemView, 0, len(items))
	for _, it := range items {
		out = append(out, FromMenuItem(it))
	}
	return out
}

type MenuSearchResponse struct {
	Matches []MenuItemView `json:"matches"`
	Notes   string         `json:"notes"`
}

func FromMenuSearchResult(res usecase.MenuSearchResult) MenuSearchResponse {
	return MenuSearchResponse{
		Matches: FromMenuItems(res.Matches),
		Notes:   res.Notes,
	}
}

type MenuResponse struct {
	Items []MenuItemView `json:"items"`
}

type SetAvailabilityResponse struct {
	ItemID    string `json:"item_id"`
	Available bool   `json:"available"`
}
