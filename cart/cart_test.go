package cart

import (
	"math/rand"
	"testing"

	"github.com/StephenRJohns/5JKitchens/models"

	"github.com/stretchr/testify/assert"
)

var (
	classicButter = models.Product{ID: "1", Name: "Classic Butter", Slug: "classic-butter", PriceCents: 899, Category: "butter"}
	herbButter    = models.Product{ID: "3", Name: "Herb Butter", Slug: "herb-butter", PriceCents: 1099, Category: "butter"}
	buttermilk    = models.Product{ID: "7", Name: "Cultured Buttermilk", Slug: "cultured-buttermilk", PriceCents: 799, Category: "dairy"}
)

func TestAddItem(t *testing.T) {
	t.Run("appends new entry with default quantity", func(t *testing.T) {
		state := Reduce(State{}, AddItem{Product: classicButter})

		assert.Len(t, state.Items, 1)
		assert.Equal(t, 1, state.Items[0].Quantity)
		assert.True(t, state.IsOpen, "adding an item must reveal the cart")
	})

	t.Run("increments existing entry instead of replacing", func(t *testing.T) {
		state := Reduce(State{}, AddItem{Product: classicButter, Quantity: 2})
		state = Reduce(state, AddItem{Product: classicButter, Quantity: 3})

		assert.Len(t, state.Items, 1)
		assert.Equal(t, 5, state.Items[0].Quantity)
	})

	t.Run("opens the cart even when it was closed", func(t *testing.T) {
		state := State{IsOpen: false}
		state = Reduce(state, AddItem{Product: herbButter})
		assert.True(t, state.IsOpen)
	})

	t.Run("does not mutate the previous state", func(t *testing.T) {
		before := Reduce(State{}, AddItem{Product: classicButter, Quantity: 1})
		_ = Reduce(before, AddItem{Product: classicButter, Quantity: 9})
		assert.Equal(t, 1, before.Items[0].Quantity)
	})
}

func TestRemoveItem(t *testing.T) {
	state := Reduce(State{}, AddItem{Product: classicButter, Quantity: 4})
	state = Reduce(state, AddItem{Product: herbButter})

	state = Reduce(state, RemoveItem{ProductID: classicButter.ID})

	assert.Len(t, state.Items, 1)
	assert.Equal(t, herbButter.ID, state.Items[0].Product.ID)
}

func TestUpdateQuantity(t *testing.T) {
	t.Run("sets quantity exactly, not incrementally", func(t *testing.T) {
		state := Reduce(State{}, AddItem{Product: classicButter, Quantity: 5})
		state = Reduce(state, UpdateQuantity{ProductID: classicButter.ID, Quantity: 2})

		assert.Equal(t, 2, state.Items[0].Quantity)
	})

	t.Run("zero removes the item entirely", func(t *testing.T) {
		state := Reduce(State{}, AddItem{Product: classicButter})
		state = Reduce(state, UpdateQuantity{ProductID: classicButter.ID, Quantity: 0})
		assert.Empty(t, state.Items)
	})

	t.Run("negative removes the item entirely", func(t *testing.T) {
		state := Reduce(State{}, AddItem{Product: classicButter})
		state = Reduce(state, UpdateQuantity{ProductID: classicButter.ID, Quantity: -1})
		assert.Empty(t, state.Items)
	})
}

func TestClearAndVisibility(t *testing.T) {
	state := Reduce(State{}, AddItem{Product: classicButter})
	state = Reduce(state, CloseCart{})
	assert.False(t, state.IsOpen)

	state = Reduce(state, ClearCart{})
	assert.Empty(t, state.Items)
	assert.False(t, state.IsOpen, "clear must preserve the visibility flag")

	state = Reduce(state, OpenCart{})
	assert.True(t, state.IsOpen)
	assert.Empty(t, state.Items, "visibility toggles must not touch items")
}

func TestTotalItemsMatchesQuantities(t *testing.T) {
	actions := []Action{
		AddItem{Product: classicButter, Quantity: 3},
		AddItem{Product: herbButter, Quantity: 2},
		UpdateQuantity{ProductID: herbButter.ID, Quantity: 7},
		AddItem{Product: buttermilk},
		RemoveItem{ProductID: classicButter.ID},
	}

	state := State{}
	for _, a := range actions {
		state = Reduce(state, a)

		sum := 0
		for _, item := range state.Items {
			sum += item.Quantity
		}
		assert.Equal(t, sum, state.TotalItems())
		assert.GreaterOrEqual(t, state.TotalItems(), 0)
	}
}

func TestSubtotalIsOrderIndependent(t *testing.T) {
	actions := []Action{
		AddItem{Product: classicButter, Quantity: 2},
		AddItem{Product: herbButter, Quantity: 1},
		AddItem{Product: buttermilk, Quantity: 3},
	}

	base := State{}
	for _, a := range actions {
		base = Reduce(base, a)
	}

	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 10; trial++ {
		shuffled := make([]Action, len(actions))
		copy(shuffled, actions)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		state := State{}
		for _, a := range shuffled {
			state = Reduce(state, a)
		}
		assert.Equal(t, base.SubtotalCents(), state.SubtotalCents())
	}
}

func TestShippingThreshold(t *testing.T) {
	t.Run("exactly at threshold ships free", func(t *testing.T) {
		fifty := models.Product{ID: "x", PriceCents: 5000}
		state := Reduce(State{}, AddItem{Product: fifty})

		assert.Equal(t, int64(5000), state.SubtotalCents())
		assert.Equal(t, int64(0), state.ShippingCents())
	})

	t.Run("one cent under pays the flat surcharge", func(t *testing.T) {
		almost := models.Product{ID: "y", PriceCents: 4999}
		state := Reduce(State{}, AddItem{Product: almost})

		assert.Equal(t, int64(4999), state.SubtotalCents())
		assert.Equal(t, int64(799), state.ShippingCents())
	})
}

func TestCheckoutExample(t *testing.T) {
	// Classic Butter $8.99 x3 plus Herb Butter $10.99 x1
	state := Reduce(State{}, AddItem{Product: classicButter, Quantity: 3})
	state = Reduce(state, AddItem{Product: herbButter, Quantity: 1})

	assert.Equal(t, int64(3796), state.SubtotalCents())
	assert.Equal(t, int64(799), state.ShippingCents())
	assert.Equal(t, int64(4595), state.TotalCents())
}
