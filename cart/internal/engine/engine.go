// Package engine holds the cart state machine: a deterministic reducer over
// five commands (add, remove, update quantity, clear, load) with totals
// recomputed as a pure function of the line items after every command.
package engine

import (
	"github.com/shopspring/decimal"

	"github.com/organicstore/storefront/catalog/pkg/response"
)

// LineItem is a product snapshot plus the chosen quantity. The quantity is
// clamped against the stock captured at snapshot time; a line item never
// holds a quantity outside (0, stock].
type LineItem struct {
	response.Product
	Quantity int64 `json:"quantity"`
}

type State struct {
	Items      []LineItem      `json:"items"`
	TotalItems int64           `json:"totalItems"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

func NewState() State {
	return State{Items: []LineItem{}, TotalPrice: decimal.Zero}
}

// AddItem merges the product into the cart. An existing line grows by
// quantity clamped to the snapshot stock; a new line is inserted with
// quantity clamped the same way. A clamp that lands at or below zero is a
// zero-effect command, never a retained zero-quantity row.
func AddItem(s State, product response.Product, quantity int64) State {
	for i, item := range s.Items {
		if item.ID != product.ID {
			continue
		}
		merged := min(item.Quantity+quantity, product.Stock)
		items := copyItems(s.Items)
		if merged <= 0 {
			items = append(items[:i], items[i+1:]...)
		} else {
			items[i].Quantity = merged
		}
		return recompute(State{Items: items})
	}

	clamped := min(quantity, product.Stock)
	if clamped <= 0 {
		return recompute(State{Items: copyItems(s.Items)})
	}
	items := append(copyItems(s.Items), LineItem{Product: product, Quantity: clamped})
	return recompute(State{Items: items})
}

// RemoveItem deletes the matching line item; an absent id is a no-op.
func RemoveItem(s State, productId int) State {
	items := make([]LineItem, 0, len(s.Items))
	for _, item := range s.Items {
		if item.ID == productId {
			continue
		}
		items = append(items, item)
	}
	return recompute(State{Items: items})
}

// UpdateQuantity sets the line quantity clamped into [0, stock]; a clamped
// result of zero removes the line instead of keeping a zero-quantity row.
// An absent id is a no-op.
func UpdateQuantity(s State, productId int, quantity int64) State {
	items := make([]LineItem, 0, len(s.Items))
	for _, item := range s.Items {
		if item.ID == productId {
			clamped := max(0, min(quantity, item.Stock))
			if clamped == 0 {
				continue
			}
			item.Quantity = clamped
		}
		items = append(items, item)
	}
	return recompute(State{Items: items})
}

func Clear(State) State {
	return NewState()
}

// Load replaces the line items wholesale, trusting the caller to supply
// well-formed entries (the storage bridge owns that contract).
func Load(_ State, items []LineItem) State {
	if items == nil {
		items = []LineItem{}
	}
	return recompute(State{Items: items})
}

func recompute(s State) State {
	totalItems := int64(0)
	totalPrice := decimal.Zero
	for _, item := range s.Items {
		totalItems += item.Quantity
		totalPrice = totalPrice.Add(item.Price.Mul(decimal.NewFromInt(item.Quantity)))
	}
	s.TotalItems = totalItems
	s.TotalPrice = totalPrice
	return s
}

func copyItems(items []LineItem) []LineItem {
	copied := make([]LineItem, len(items))
	copy(copied, items)
	return copied
}
