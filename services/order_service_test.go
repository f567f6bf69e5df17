package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/StephenRJohns/5JKitchens/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Create(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func validCheckout() CheckoutRequest {
	return CheckoutRequest{
		FirstName: "Joan",
		LastName:  "Baker",
		Email:     "joan@example.com",
		Address1:  "12 Churn Lane",
		City:      "Madison",
		State:     "WI",
		Zip:       "53703",
		Items: []CheckoutLineItem{
			{ProductID: "1", Name: "Classic Butter", PriceCents: 899, Quantity: 3},
			{ProductID: "3", Name: "Herb Butter", PriceCents: 1099, Quantity: 1},
		},
		SubtotalCents: 3796,
	}
}

func TestCheckout(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid submission persists a pending order", func(t *testing.T) {
		repo := new(MockOrderRepository)
		svc := NewOrderService(repo)

		var created *models.Order
		repo.On("Create", ctx, mock.AnythingOfType("*models.Order")).
			Run(func(args mock.Arguments) { created = args.Get(1).(*models.Order) }).
			Return(nil).Once()

		orderID, fieldErrors, err := svc.Checkout(ctx, validCheckout())

		assert.NoError(t, err)
		assert.Empty(t, fieldErrors)
		assert.NotEqual(t, uuid.Nil, orderID)
		assert.Equal(t, "pending", created.Status)
		assert.Equal(t, "US", created.Country, "country defaults to US")
		assert.Equal(t, int64(3796), created.SubtotalCents)

		var items []CheckoutLineItem
		assert.NoError(t, json.Unmarshal([]byte(created.Items), &items))
		assert.Len(t, items, 2)
	})

	t.Run("Missing required fields return a field error map without persisting", func(t *testing.T) {
		repo := new(MockOrderRepository)
		svc := NewOrderService(repo)

		req := validCheckout()
		req.FirstName = ""
		req.Zip = ""

		orderID, fieldErrors, err := svc.Checkout(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, uuid.Nil, orderID)
		assert.Contains(t, fieldErrors, "firstName")
		assert.Contains(t, fieldErrors, "zip")
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("Invalid email fails validation", func(t *testing.T) {
		repo := new(MockOrderRepository)
		svc := NewOrderService(repo)

		req := validCheckout()
		req.Email = "not an email"

		_, fieldErrors, err := svc.Checkout(ctx, req)

		assert.NoError(t, err)
		assert.Contains(t, fieldErrors, "email")
		repo.AssertNotCalled(t, "Create")
	})
}
