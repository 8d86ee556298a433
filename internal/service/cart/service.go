// Package cart implements the cart engine: pricing, identity-based merging
// and the quantity lifecycle of a single user's line items. Every operation
// is a full load-modify-save cycle over the cart store; nothing is cached
// between calls, and a failed operation never writes.
package cart

import (
	"context"
	"errors"

	"cafecart/internal/domain"
	"github.com/google/uuid"
)

type Service struct {
	store    store
	catalog  catalog
	notifier notifier
}

type store interface {
	Load(ctx context.Context, userID string) ([]domain.LineItem, error)
	Save(ctx context.Context, userID string, items []domain.LineItem) error
}

type catalog interface {
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	GetSize(ctx context.Context, id string) (*domain.Size, error)
	GetToppings(ctx context.Context, ids []string) ([]domain.Topping, error)
}

type notifier interface {
	CartChanged(ctx context.Context, userID string)
}

// New builds the engine. notifier may be nil when nothing observes changes.
func New(store store, catalog catalog, notifier notifier) *Service {
	return &Service{store: store, catalog: catalog, notifier: notifier}
}

type AddItemInput struct {
	ProductID  string   `json:"productId"`
	SizeID     *string  `json:"sizeId,omitempty"`
	ToppingIDs []string `json:"toppingIds"`
	Quantity   int      `json:"quantity"`
}

type EditInput struct {
	SizeID     *string  `json:"sizeId,omitempty"`
	ToppingIDs []string `json:"toppingIds"`
}

// AddItem prices the requested configuration from the catalog and either
// merges it into an existing configuration-identical line item (quantity
// bump, snapshot prices untouched) or appends a new item.
func (s *Service) AddItem(ctx context.Context, userID string, in AddItemInput) (*domain.LineItem, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}
	if in.ProductID == "" {
		return nil, errors.New("productId required")
	}
	if in.Quantity < 1 {
		return nil, errors.New("quantity must be positive")
	}

	product, err := s.catalog.GetProduct(ctx, in.ProductID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}

	size, err := s.resolveSize(ctx, in.SizeID)
	if err != nil {
		return nil, err
	}
	toppings, err := s.resolveToppings(ctx, in.ToppingIDs)
	if err != nil {
		return nil, err
	}

	candidate := buildItem(*product, size, toppings, in.Quantity)

	items, err := s.store.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := &candidate
	merged := false
	for i := range items {
		if items[i].SameConfiguration(candidate) {
			items[i].Quantity += in.Quantity
			items[i].LineTotal = items[i].UnitPrice * int64(items[i].Quantity)
			result = &items[i]
			merged = true
			break
		}
	}
	if !merged {
		candidate.ID = uuid.NewString()
		items = append(items, candidate)
		result = &items[len(items)-1]
	}

	if err := s.store.Save(ctx, userID, items); err != nil {
		return nil, err
	}
	s.notifyChanged(ctx, userID)
	return result, nil
}

// UpdateQuantity applies a signed delta to a line item's quantity. A result
// of zero or less removes the item entirely.
func (s *Service) UpdateQuantity(ctx context.Context, userID, lineItemID string, delta int) (*domain.Cart, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}

	items, err := s.store.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	idx := indexOf(items, lineItemID)
	if idx < 0 {
		return nil, domain.ErrItemNotFound
	}

	newQty := items[idx].Quantity + delta
	if newQty <= 0 {
		items = append(items[:idx], items[idx+1:]...)
	} else {
		items[idx].Quantity = newQty
		items[idx].LineTotal = items[idx].UnitPrice * int64(newQty)
	}

	if err := s.store.Save(ctx, userID, items); err != nil {
		return nil, err
	}
	s.notifyChanged(ctx, userID)
	return &domain.Cart{UserID: userID, Items: items}, nil
}

// RemoveItem deletes the line item with the given id. Removing an item that
// is already gone succeeds; deletes are idempotent.
func (s *Service) RemoveItem(ctx context.Context, userID, lineItemID string) error {
	if userID == "" {
		return domain.ErrUnauthenticated
	}

	items, err := s.store.Load(ctx, userID)
	if err != nil {
		return err
	}

	kept := items[:0]
	for _, item := range items {
		if item.ID != lineItemID {
			kept = append(kept, item)
		}
	}

	if err := s.store.Save(ctx, userID, kept); err != nil {
		return err
	}
	s.notifyChanged(ctx, userID)
	return nil
}

// EditConfiguration replaces a line item's size and toppings, repricing from
// the item's stored base price and the newly resolved options. Quantity is
// kept, and the item keeps its identity: no merge scan runs even if the edit
// makes it configuration-identical to another item.
func (s *Service) EditConfiguration(ctx context.Context, userID, lineItemID string, in EditInput) (*domain.LineItem, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}

	items, err := s.store.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	idx := indexOf(items, lineItemID)
	if idx < 0 {
		return nil, domain.ErrItemNotFound
	}

	size, err := s.resolveSize(ctx, in.SizeID)
	if err != nil {
		return nil, err
	}
	toppings, err := s.resolveToppings(ctx, in.ToppingIDs)
	if err != nil {
		return nil, err
	}

	item := &items[idx]
	applySize(item, size)
	applyToppings(item, toppings)
	item.UnitPrice = item.BasePrice + item.SizePriceAdd + item.ToppingPriceTotal
	item.LineTotal = item.UnitPrice * int64(item.Quantity)

	if err := s.store.Save(ctx, userID, items); err != nil {
		return nil, err
	}
	s.notifyChanged(ctx, userID)
	return item, nil
}

// Clear replaces the cart with an empty list, e.g. after checkout.
func (s *Service) Clear(ctx context.Context, userID string) error {
	if userID == "" {
		return domain.ErrUnauthenticated
	}
	if err := s.store.Save(ctx, userID, nil); err != nil {
		return err
	}
	s.notifyChanged(ctx, userID)
	return nil
}

// Get returns the user's cart. An unresolved identity reads as empty.
func (s *Service) Get(ctx context.Context, userID string) (domain.Cart, error) {
	if userID == "" {
		return domain.Cart{}, nil
	}
	items, err := s.store.Load(ctx, userID)
	if err != nil {
		return domain.Cart{}, err
	}
	return domain.Cart{UserID: userID, Items: items}, nil
}

// Total is the sum of line totals; zero for an empty cart.
func (s *Service) Total(ctx context.Context, userID string) (int64, error) {
	c, err := s.Get(ctx, userID)
	if err != nil {
		return 0, err
	}
	return c.Total(), nil
}

// ItemCount is the sum of quantities; zero for an empty cart.
func (s *Service) ItemCount(ctx context.Context, userID string) (int, error) {
	c, err := s.Get(ctx, userID)
	if err != nil {
		return 0, err
	}
	return c.ItemCount(), nil
}

// resolveSize looks a size up by id. A nil/blank id, or an id unknown to the
// catalog, resolves to "no size" rather than an error.
func (s *Service) resolveSize(ctx context.Context, sizeID *string) (*domain.Size, error) {
	if sizeID == nil || *sizeID == "" {
		return nil, nil
	}
	size, err := s.catalog.GetSize(ctx, *sizeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return size, nil
}

// resolveToppings deduplicates the requested ids (first occurrence wins) and
// resolves them through the catalog, which drops unknown ids.
func (s *Service) resolveToppings(ctx context.Context, ids []string) ([]domain.Topping, error) {
	deduped := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		deduped = append(deduped, id)
	}
	if len(deduped) == 0 {
		return nil, nil
	}
	return s.catalog.GetToppings(ctx, deduped)
}

func buildItem(product domain.Product, size *domain.Size, toppings []domain.Topping, quantity int) domain.LineItem {
	item := domain.LineItem{
		ProductID:    product.ID,
		ProductName:  product.Name,
		ProductImage: product.Image,
		BasePrice:    product.BasePrice,
		Quantity:     quantity,
	}
	applySize(&item, size)
	applyToppings(&item, toppings)
	item.UnitPrice = item.BasePrice + item.SizePriceAdd + item.ToppingPriceTotal
	item.LineTotal = item.UnitPrice * int64(quantity)
	return item
}

func applySize(item *domain.LineItem, size *domain.Size) {
	if size == nil {
		item.SizeID = nil
		item.SizeName = ""
		item.SizePriceAdd = 0
		return
	}
	id := size.ID
	item.SizeID = &id
	item.SizeName = size.Name
	item.SizePriceAdd = size.PriceAdd
}

func applyToppings(item *domain.LineItem, toppings []domain.Topping) {
	item.ToppingIDs = make([]string, 0, len(toppings))
	item.ToppingNames = make([]string, 0, len(toppings))
	item.ToppingPriceTotal = 0
	for _, t := range toppings {
		item.ToppingIDs = append(item.ToppingIDs, t.ID)
		item.ToppingNames = append(item.ToppingNames, t.Name)
		item.ToppingPriceTotal += t.Price
	}
}

func indexOf(items []domain.LineItem, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Service) notifyChanged(ctx context.Context, userID string) {
	if s.notifier != nil {
		s.notifier.CartChanged(ctx, userID)
	}
}
