package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"voicehub/internal/domain/entities"
	"voicehub/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrMenuItemNotFound  = errors.New("menu item not found")
	ErrInvalidCatalogRow = errors.New("invalid catalog row")
)

const defaultSearchLimit = 20

// CatalogRow is one parsed line of a menu upload: the CSV has already been
// decoded by the upload collaborator, so the use case only sees tuples.
type CatalogRow struct {
	Name      string
	Category  string
	Price     float64
	Available bool
}

// MenuSearchResult carries the matches plus a spoken-friendly note the
// voice agent reads back to the caller.
type MenuSearchResult struct {
	Matches []entities.MenuItem
	Notes   string
}

// IMenuUseCase exposes catalog operations for the voice tools and the
// dashboard.
//
//   - GetMenu / SearchMenu are read paths and fail open: a storage error
//     degrades to an empty catalog so the voice call can continue.
//   - SetAvailability / ReplaceCatalog are dashboard writes and fail closed.

type IMenuUseCase interface {
	GetMenu(ctx context.Context, restaurantID string) []entities.MenuItem
	SearchMenu(ctx context.Context, restaurantID, query string, limit int) MenuSearchResult
	SetAvailability(ctx context.Context, itemID string, available bool) error
	ReplaceCatalog(ctx context.Context, restaurantID string, rows []CatalogRow) ([]entities.MenuItem, error)
}

type MenuUseCase struct {
	repo interfaces.IMenuRepository
}

var _ IMenuUseCase = (*MenuUseCase)(nil)

func NewMenuUseCase(repo interfaces.IMenuRepository) *MenuUseCase {
	return &MenuUseCase{repo: repo}
}

func (u *MenuUseCase) GetMenu(ctx context.Context, restaurantID string) []entities.MenuItem {
	items, err := u.repo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		log.Printf("[menu][usecase] list failed restaurant_id=%s err=%v", restaurantID, err)
		return []entities.MenuItem{}
	}
	if items == nil {
		items = []entities.MenuItem{}
	}
	return items
}

func (u *MenuUseCase) SearchMenu(ctx context.Context, restaurantID, query string, limit int) MenuSearchResult {
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	items := u.GetMenu(ctx, restaurantID)

	query = strings.TrimSpace(query)
	if query == "" {
		if len(items) > limit {
			items = items[:limit]
		}
		return MenuSearchResult{
			Matches: items,
			Notes:   fmt.Sprintf("listing full menu (%d items)", len(items)),
		}
	}

	q := strings.ToLower(query)
	matches := make([]entities.MenuItem, 0, limit)
	total := 0
	for _, it := range items {
		if !strings.Contains(strings.ToLower(it.Name), q) && !strings.Contains(strings.ToLower(it.Category), q) {
			continue
		}
		total++
		if len(matches) < limit {
			matches = append(matches, it)
		}
	}
	return MenuSearchResult{
		Matches: matches,
		Notes:   fmt.Sprintf("%d match(es) for %q", total, query),
	}
}

func (u *MenuUseCase) SetAvailability(ctx context.Context, itemID string, available bool) error {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return ErrMenuItemNotFound
	}

	found, err := u.repo.SetAvailability(ctx, itemID, available)
	if err != nil {
		log.Printf("[menu][usecase] availability update failed item_id=%s err=%v", itemID, err)
		return err
	}
	if !found {
		return ErrMenuItemNotFound
	}
	log.Printf("[menu][usecase] availability updated item_id=%s available=%t", itemID, available)
	return nil
}

func (u *MenuUseCase) ReplaceCatalog(ctx context.Context, restaurantID string, rows []CatalogRow) ([]entities.MenuItem, error) {
	items := make([]entities.MenuItem, 0, len(rows))
	for i, row := range rows {
		name := strings.TrimSpace(row.Name)
		if name == "" || row.Price < 0 {
			return nil, fmt.Errorf("%w: row %d", ErrInvalidCatalogRow, i+1)
		}
		items = append(items, entities.MenuItem{
			ItemID:       uuid.NewString(),
			RestaurantID: restaurantID,
			Name:         name,
			Category:     strings.TrimSpace(row.Category),
			Price:        row.Price,
			Available:    row.Available,
		})
	}

	if err := u.repo.ReplaceForRestaurant(ctx, restaurantID, items); err != nil {
		log.Printf("[menu][usecase] catalog replace failed restaurant_id=%s rows=%d err=%v", restaurantID, len(items), err)
		return nil, err
	}
	log.Printf("[menu][usecase] catalog replaced restaurant_id=%s rows=%d", restaurantID, len(items))
	return items, nil
}
