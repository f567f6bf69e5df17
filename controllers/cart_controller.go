package controllers

import (
	"net/http"

	"github.com/StephenRJohns/5JKitchens/cart"
	"github.com/StephenRJohns/5JKitchens/models"
	"github.com/StephenRJohns/5JKitchens/repository"
	"github.com/StephenRJohns/5JKitchens/types"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const cartCookieName = "cart_id"
const cartCookieMaxAge = 60 * 60 * 24 * 7

// CartController holds the server side of the cart: each request loads the
// reducer state for the cart cookie, applies one action, and stores the
// result. Totals are derived on every response, never stored.
type CartController struct {
	repo *repository.CartRepository
}

func NewCartController(repo *repository.CartRepository) *CartController {
	return &CartController{repo: repo}
}

func (cc *CartController) cartID(c *gin.Context) string {
	if id, err := c.Cookie(cartCookieName); err == nil && id != "" {
		return id
	}
	id := uuid.NewString()
	c.SetCookie(cartCookieName, id, cartCookieMaxAge, "/", "", false, true)
	return id
}

func cartResponse(state cart.State) gin.H {
	return gin.H{
		"items":         state.Items,
		"isOpen":        state.IsOpen,
		"totalItems":    state.TotalItems(),
		"subtotalCents": state.SubtotalCents(),
		"shippingCents": state.ShippingCents(),
		"totalCents":    state.TotalCents(),
	}
}

// dispatch loads, reduces, saves, and responds with the new state.
func (cc *CartController) dispatch(c *gin.Context, action cart.Action) {
	cartID := cc.cartID(c)
	ctx := c.Request.Context()

	state, err := cc.repo.Get(ctx, cartID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart."})
		return
	}

	state = cart.Reduce(state, action)

	if err := cc.repo.Save(ctx, cartID, state); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart."})
		return
	}

	c.JSON(http.StatusOK, cartResponse(state))
}

func (cc *CartController) Get(c *gin.Context) {
	state, err := cc.repo.Get(c.Request.Context(), cc.cartID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart."})
		return
	}
	c.JSON(http.StatusOK, cartResponse(state))
}

func (cc *CartController) AddItem(c *gin.Context) {
	var req types.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product id required."})
		return
	}

	product := models.GetProductByID(req.ProductID)
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found."})
		return
	}

	cc.dispatch(c, cart.AddItem{Product: *product, Quantity: req.Quantity})
}

func (cc *CartController) UpdateQuantity(c *gin.Context) {
	var req types.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity required."})
		return
	}

	cc.dispatch(c, cart.UpdateQuantity{
		ProductID: c.Param("product_id"),
		Quantity:  req.Quantity,
	})
}

func (cc *CartController) RemoveItem(c *gin.Context) {
	cc.dispatch(c, cart.RemoveItem{ProductID: c.Param("product_id")})
}

func (cc *CartController) Clear(c *gin.Context) {
	cc.dispatch(c, cart.ClearCart{})
}

func (cc *CartController) Open(c *gin.Context) {
	cc.dispatch(c, cart.OpenCart{})
}

func (cc *CartController) Close(c *gin.Context) {
	cc.dispatch(c, cart.CloseCart{})
}
