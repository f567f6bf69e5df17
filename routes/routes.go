package routes

import (
	"time"

	"github.com/StephenRJohns/5JKitchens/controllers"
	"github.com/StephenRJohns/5JKitchens/middleware"
	"github.com/StephenRJohns/5JKitchens/services"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Controllers groups everything the router needs.
type Controllers struct {
	Auth       *controllers.AuthController
	Users      *controllers.UserController
	Newsletter *controllers.NewsletterController
	Checkout   *controllers.CheckoutController
	Cart       *controllers.CartController
	Products   *controllers.ProductController
}

// Register wires the full HTTP surface. Everything under /api/admin except
// login and logout sits behind the admin guard.
func Register(r *gin.Engine, ctrl Controllers, tokens *services.TokenService) {
	api := r.Group("/api")

	// Public storefront
	api.GET("/products", ctrl.Products.List)
	api.GET("/products/:slug", ctrl.Products.GetBySlug)
	api.GET("/products/:slug/related", ctrl.Products.Related)

	api.GET("/cart", ctrl.Cart.Get)
	api.POST("/cart/items", ctrl.Cart.AddItem)
	api.PUT("/cart/items/:product_id", ctrl.Cart.UpdateQuantity)
	api.DELETE("/cart/items/:product_id", ctrl.Cart.RemoveItem)
	api.DELETE("/cart", ctrl.Cart.Clear)
	api.POST("/cart/open", ctrl.Cart.Open)
	api.POST("/cart/close", ctrl.Cart.Close)

	api.POST("/checkout", ctrl.Checkout.Checkout)
	api.POST("/newsletter/subscribe", ctrl.Newsletter.Subscribe)

	// Admin session endpoints stay outside the guard
	api.POST("/admin/login", middleware.LoginRateLimit(rate.Every(time.Minute/10), 5), ctrl.Auth.Login)
	api.POST("/admin/logout", ctrl.Auth.Logout)

	admin := api.Group("/admin")
	admin.Use(middleware.AdminGuard(tokens))
	{
		admin.GET("/users", ctrl.Users.List)
		admin.POST("/users", ctrl.Users.Create)
		admin.PUT("/users/:id", ctrl.Users.Update)
		admin.DELETE("/users/:id", ctrl.Users.Delete)
		admin.POST("/users/:id/newsletter", ctrl.Users.ToggleNewsletter)
		admin.POST("/newsletter/send", ctrl.Newsletter.Send)
	}
}
