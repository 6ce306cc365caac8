package handlers

import (
	"errors"
	"log"

	"vogue/internal/models"
	"vogue/internal/repositories"
	"vogue/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ReviewHandler handles HTTP requests for reviews. Reviews cannot be edited.
type ReviewHandler struct {
	service *services.ReviewService
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(service *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// RegisterRoutes registers the review routes.
func (h *ReviewHandler) RegisterRoutes(router fiber.Router) {
	reviewRoutes := router.Group("/reviews")
	reviewRoutes.Post("/", h.HandleCreateReview)
	reviewRoutes.Get("/", h.HandleGetReviews)
	reviewRoutes.Delete("/:id", h.HandleDeleteReview)
}

// HandleCreateReview stores the review in the request body.
func (h *ReviewHandler) HandleCreateReview(c *fiber.Ctx) error {
	var review models.Review
	if err := c.BodyParser(&review); err != nil {
		log.Printf("Error parsing review request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	review.ID = ""

	if err := h.service.CreateReview(c.UserContext(), &review); err != nil {
		log.Printf("Error adding review: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add review."})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Review added successfully!",
		"review":  review,
	})
}

// HandleGetReviews lists reviews, newest first.
func (h *ReviewHandler) HandleGetReviews(c *fiber.Ctx) error {
	reviews, err := h.service.GetAllReviews(c.UserContext())
	if err != nil {
		log.Printf("Error retrieving reviews: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve reviews."})
	}
	return c.JSON(reviews)
}

// HandleDeleteReview deletes a review by ID.
func (h *ReviewHandler) HandleDeleteReview(c *fiber.Ctx) error {
	reviewID := c.Params("id")
	if err := h.service.DeleteReview(c.UserContext(), reviewID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Review not found"})
		}
		log.Printf("Error deleting review: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete review."})
	}
	return c.JSON(fiber.Map{"message": "Review deleted successfully"})
}
