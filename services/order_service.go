package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/StephenRJohns/5JKitchens/models"

	"github.com/google/uuid"
)

type IOrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
}

// CheckoutLineItem is one line of the submitted cart snapshot.
type CheckoutLineItem struct {
	ProductID  string `json:"productId"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
	Quantity   int    `json:"quantity"`
}

// CheckoutRequest carries the shipping form plus the cart contents.
type CheckoutRequest struct {
	FirstName     string             `json:"firstName"`
	LastName      string             `json:"lastName"`
	Email         string             `json:"email"`
	Phone         string             `json:"phone"`
	Address1      string             `json:"address1"`
	Address2      string             `json:"address2"`
	City          string             `json:"city"`
	State         string             `json:"state"`
	Zip           string             `json:"zip"`
	Country       string             `json:"country"`
	Items         []CheckoutLineItem `json:"items"`
	SubtotalCents int64              `json:"subtotalCents"`
}

// OrderService validates and persists checkout submissions. Checkout is a
// placeholder: no payment is charged and the order stays pending.
type OrderService struct {
	orderRepo IOrderRepository
}

func NewOrderService(orderRepo IOrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// Checkout returns a non-empty field error map when validation fails;
// nothing is persisted in that case.
func (s *OrderService) Checkout(ctx context.Context, req CheckoutRequest) (uuid.UUID, map[string]string, error) {
	fieldErrors := map[string]string{}

	required := map[string]string{
		"firstName": req.FirstName,
		"lastName":  req.LastName,
		"email":     req.Email,
		"address1":  req.Address1,
		"city":      req.City,
		"state":     req.State,
		"zip":       req.Zip,
	}
	for field, value := range required {
		if value == "" {
			fieldErrors[field] = "This field is required."
		}
	}

	if req.Email != "" && !emailPattern.MatchString(req.Email) {
		fieldErrors["email"] = "Please enter a valid email address."
	}

	if len(fieldErrors) > 0 {
		return uuid.Nil, fieldErrors, nil
	}

	itemsJSON, err := json.Marshal(req.Items)
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("serialize items: %w", err)
	}

	country := req.Country
	if country == "" {
		country = "US"
	}

	order := &models.Order{
		ID:            uuid.New(),
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Phone:         req.Phone,
		Address1:      req.Address1,
		Address2:      req.Address2,
		City:          req.City,
		State:         req.State,
		Zip:           req.Zip,
		Country:       country,
		Items:         string(itemsJSON),
		SubtotalCents: req.SubtotalCents,
		Status:        "pending",
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return uuid.Nil, nil, fmt.Errorf("create order: %w", err)
	}

	return order.ID, nil, nil
}
