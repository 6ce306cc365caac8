package handlers

import (
	"errors"
	"log"

	"vogue/internal/models"
	"vogue/internal/repositories"
	"vogue/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the product routes. The paths predate a REST
// layout and are kept for existing storefront clients.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/products", h.HandleCreateProduct)
	router.Get("/getProducts", h.HandleGetProducts)
	router.Get("/getUpdateProducts", h.HandleSearchProducts)
	router.Get("/getProductsByCategory", h.HandleGetProductsByCategory)
	router.Get("/getProduct/:id", h.HandleGetProductByID)
	router.Get("/getRecentProducts", h.HandleGetRecentProducts)
	router.Get("/getTrendingProducts", h.HandleGetTrendingProducts)
	router.Get("/getProductsCount", h.HandleGetProductsCount)
	router.Put("/updateProducts/:id", h.HandleUpdateProduct)
	router.Delete("/deleteProduct/:id", h.HandleDeleteProduct)
}

// HandleCreateProduct stores the product in the request body.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		log.Printf("Error parsing product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	product.ID = ""

	if err := h.service.CreateProduct(c.UserContext(), &product); err != nil {
		log.Printf("Error creating product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to add product.",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Product added successfully!",
		"id":      product.ID,
	})
}

// HandleGetProducts lists every product. Query filters are ignored here;
// getUpdateProducts applies them.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts(c.UserContext())
	if err != nil {
		return h.listFailed(c, err)
	}
	return c.JSON(models.NewProductViews(products))
}

// productSearchQuery holds the optional filters of getUpdateProducts.
type productSearchQuery struct {
	Category string `query:"category"`
	Name     string `query:"name"`
}

// HandleSearchProducts lists products filtered by category and name.
func (h *ProductHandler) HandleSearchProducts(c *fiber.Ctx) error {
	var q productSearchQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid query parameters"})
	}

	products, err := h.service.SearchProducts(c.UserContext(), q.Category, q.Name)
	if err != nil {
		return h.listFailed(c, err)
	}
	return c.JSON(models.NewProductViews(products))
}

type categoryQuery struct {
	Category string `query:"category" validate:"required"`
}

// HandleGetProductsByCategory lists the products of the required category.
func (h *ProductHandler) HandleGetProductsByCategory(c *fiber.Ctx) error {
	var q categoryQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid query parameters"})
	}
	if err := h.validate.Struct(q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Category is required.",
		})
	}

	products, err := h.service.GetProductsByCategory(c.UserContext(), q.Category)
	if err != nil {
		return h.listFailed(c, err)
	}
	return c.JSON(models.NewProductViews(products))
}

// HandleGetProductByID retrieves a single product.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	productID := c.Params("id")
	product, err := h.service.GetProductByID(c.UserContext(), productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		}
		log.Printf("Error getting product by ID %s: %v", productID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve product.",
		})
	}
	return c.JSON(product)
}

// HandleGetRecentProducts lists the newest products of the last three days.
func (h *ProductHandler) HandleGetRecentProducts(c *fiber.Ctx) error {
	products, err := h.service.GetRecentProducts(c.UserContext())
	if err != nil {
		return h.listFailed(c, err)
	}
	return c.JSON(products)
}

// HandleGetTrendingProducts lists trending products, newest first.
func (h *ProductHandler) HandleGetTrendingProducts(c *fiber.Ctx) error {
	products, err := h.service.GetTrendingProducts(c.UserContext())
	if err != nil {
		return h.listFailed(c, err)
	}
	return c.JSON(models.NewProductViews(products))
}

// HandleGetProductsCount responds with the product count as a bare number.
func (h *ProductHandler) HandleGetProductsCount(c *fiber.Ctx) error {
	n, err := h.service.CountProducts(c.UserContext())
	if err != nil {
		log.Printf("Error counting products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to count products.",
		})
	}
	return c.JSON(n)
}

// HandleUpdateProduct applies a partial update. Unlike the other routes its
// 500 response carries the error text in "details"; clients read it.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	productID := c.Params("id")

	var patch models.ProductPatch
	if err := c.BodyParser(&patch); err != nil {
		log.Printf("Error parsing product update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	product, err := h.service.UpdateProduct(c.UserContext(), productID, patch)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
		}
		log.Printf("Error updating product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to update product.",
			"details": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Product updated successfully!",
		"product": product,
	})
}

// HandleDeleteProduct deletes a product by ID.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	productID := c.Params("id")
	if err := h.service.DeleteProduct(c.UserContext(), productID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		}
		log.Printf("Error deleting product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete product",
		})
	}
	return c.JSON(fiber.Map{"message": "Product deleted successfully"})
}

func (h *ProductHandler) listFailed(c *fiber.Ctx, err error) error {
	log.Printf("Error retrieving products: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Failed to retrieve products.",
	})
}
