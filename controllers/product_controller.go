package controllers

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/StephenRJohns/5JKitchens/models"

	"github.com/gin-gonic/gin"
)

type ProductController struct{}

func NewProductController() *ProductController {
	return &ProductController{}
}

// List returns the catalog, optionally filtered by category or featured
// flag and sorted by price or name.
func (pc *ProductController) List(c *gin.Context) {
	products := make([]models.Product, len(models.Products))
	copy(products, models.Products)

	if category := c.Query("category"); category != "" {
		filtered := products[:0]
		for _, p := range products {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	if featured, err := strconv.ParseBool(c.Query("featured")); err == nil && featured {
		filtered := products[:0]
		for _, p := range products {
			if p.Featured {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	switch c.Query("sort") {
	case "price_asc":
		sort.SliceStable(products, func(i, j int) bool { return products[i].PriceCents < products[j].PriceCents })
	case "price_desc":
		sort.SliceStable(products, func(i, j int) bool { return products[i].PriceCents > products[j].PriceCents })
	case "name":
		sort.SliceStable(products, func(i, j int) bool { return products[i].Name < products[j].Name })
	}

	c.JSON(http.StatusOK, products)
}

func (pc *ProductController) GetBySlug(c *gin.Context) {
	product := models.GetProductBySlug(c.Param("slug"))
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found."})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (pc *ProductController) Related(c *gin.Context) {
	product := models.GetProductBySlug(c.Param("slug"))
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found."})
		return
	}
	c.JSON(http.StatusOK, models.GetRelatedProducts(product, 3))
}
