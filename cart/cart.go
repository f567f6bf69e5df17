// Package cart implements the storefront cart as a pure reducer over a
// fixed action set. State never carries derived values; totals are
// recomputed on every read so that every surface that displays them agrees.
package cart

import "github.com/StephenRJohns/5JKitchens/models"

// Orders at or above this subtotal ship free; everything else pays the flat
// surcharge. Amounts are integer cents.
const (
	FreeShippingThresholdCents int64 = 5000
	FlatShippingCents          int64 = 799
)

// Item pairs a product with a positive quantity. A quantity of zero is
// never stored; reducing to zero removes the item.
type Item struct {
	Product  models.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

// State is the full cart state: the ordered item list plus the drawer
// visibility flag.
type State struct {
	Items  []Item `json:"items"`
	IsOpen bool   `json:"isOpen"`
}

// Action is the sealed set of cart mutations.
type Action interface {
	isAction()
}

// AddItem appends the product or increments its quantity when already
// present. Quantity <= 0 is treated as the default of 1. Adding always
// opens the drawer.
type AddItem struct {
	Product  models.Product
	Quantity int
}

// RemoveItem deletes the matching entry entirely, regardless of quantity.
type RemoveItem struct {
	ProductID string
}

// UpdateQuantity sets the entry's quantity to exactly the given value;
// values <= 0 remove the item.
type UpdateQuantity struct {
	ProductID string
	Quantity  int
}

// ClearCart empties the item list without touching the visibility flag.
type ClearCart struct{}

// OpenCart and CloseCart toggle visibility only.
type OpenCart struct{}
type CloseCart struct{}

func (AddItem) isAction()        {}
func (RemoveItem) isAction()     {}
func (UpdateQuantity) isAction() {}
func (ClearCart) isAction()      {}
func (OpenCart) isAction()       {}
func (CloseCart) isAction()      {}

// Reduce applies an action to a state and returns the next state. The input
// state is never mutated.
func Reduce(state State, action Action) State {
	switch a := action.(type) {
	case AddItem:
		qty := a.Quantity
		if qty <= 0 {
			qty = 1
		}
		next := State{Items: copyItems(state.Items), IsOpen: true}
		for i := range next.Items {
			if next.Items[i].Product.ID == a.Product.ID {
				next.Items[i].Quantity += qty
				return next
			}
		}
		next.Items = append(next.Items, Item{Product: a.Product, Quantity: qty})
		return next

	case RemoveItem:
		return State{Items: removeByID(state.Items, a.ProductID), IsOpen: state.IsOpen}

	case UpdateQuantity:
		if a.Quantity <= 0 {
			return State{Items: removeByID(state.Items, a.ProductID), IsOpen: state.IsOpen}
		}
		next := State{Items: copyItems(state.Items), IsOpen: state.IsOpen}
		for i := range next.Items {
			if next.Items[i].Product.ID == a.ProductID {
				next.Items[i].Quantity = a.Quantity
			}
		}
		return next

	case ClearCart:
		return State{Items: []Item{}, IsOpen: state.IsOpen}

	case OpenCart:
		return State{Items: copyItems(state.Items), IsOpen: true}

	case CloseCart:
		return State{Items: copyItems(state.Items), IsOpen: false}

	default:
		return state
	}
}

// TotalItems is the sum of all stored quantities.
func (s State) TotalItems() int {
	total := 0
	for _, item := range s.Items {
		total += item.Quantity
	}
	return total
}

// SubtotalCents is the sum of unit price times quantity over all items.
func (s State) SubtotalCents() int64 {
	var subtotal int64
	for _, item := range s.Items {
		subtotal += item.Product.PriceCents * int64(item.Quantity)
	}
	return subtotal
}

// ShippingCents is free at or above the threshold, else the flat surcharge.
// An empty cart ships nothing and pays nothing.
func (s State) ShippingCents() int64 {
	if len(s.Items) == 0 {
		return 0
	}
	if s.SubtotalCents() >= FreeShippingThresholdCents {
		return 0
	}
	return FlatShippingCents
}

// TotalCents is subtotal plus shipping.
func (s State) TotalCents() int64 {
	return s.SubtotalCents() + s.ShippingCents()
}

func copyItems(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

func removeByID(items []Item, productID string) []Item {
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if item.Product.ID != productID {
			out = append(out, item)
		}
	}
	return out
}
