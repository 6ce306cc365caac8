package handlers

import (
	"errors"
	"log"

	"vogue/internal/repositories"
	"vogue/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OfferHandler handles HTTP requests for offers.
type OfferHandler struct {
	service *services.OfferService
}

// NewOfferHandler creates a new OfferHandler.
func NewOfferHandler(service *services.OfferService) *OfferHandler {
	return &OfferHandler{service: service}
}

// RegisterRoutes registers the offer routes.
func (h *OfferHandler) RegisterRoutes(router fiber.Router) {
	offerRoutes := router.Group("/offers")
	offerRoutes.Post("/", h.HandleCreateOffer)
	offerRoutes.Get("/", h.HandleGetOffers)
	offerRoutes.Put("/:id", h.HandleUpdateOffer)
	offerRoutes.Delete("/:id", h.HandleDeleteOffer)
}

// OfferRequest represents the request body for creating or updating an offer.
type OfferRequest struct {
	ImageURL    string `json:"imageUrl"`
	Description string `json:"description"`
}

// HandleCreateOffer stores a new offer.
func (h *OfferHandler) HandleCreateOffer(c *fiber.Ctx) error {
	var req OfferRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing offer request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	offer, err := h.service.CreateOffer(c.UserContext(), req.ImageURL, req.Description)
	if err != nil {
		log.Printf("Error adding offer: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add offer."})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Offer added successfully!",
		"offer":   offer,
	})
}

// HandleGetOffers lists offers, newest first.
func (h *OfferHandler) HandleGetOffers(c *fiber.Ctx) error {
	offers, err := h.service.GetAllOffers(c.UserContext())
	if err != nil {
		log.Printf("Error retrieving offers: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve offers."})
	}
	return c.JSON(offers)
}

// HandleUpdateOffer replaces the image URL and description of an offer.
func (h *OfferHandler) HandleUpdateOffer(c *fiber.Ctx) error {
	offerID := c.Params("id")

	var req OfferRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing offer update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	offer, err := h.service.UpdateOffer(c.UserContext(), offerID, req.ImageURL, req.Description)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Offer not found"})
		}
		log.Printf("Error updating offer: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update offer."})
	}

	return c.JSON(fiber.Map{
		"message": "Offer updated successfully!",
		"offer":   offer,
	})
}

// HandleDeleteOffer deletes an offer by ID.
func (h *OfferHandler) HandleDeleteOffer(c *fiber.Ctx) error {
	offerID := c.Params("id")
	if err := h.service.DeleteOffer(c.UserContext(), offerID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Offer not found"})
		}
		log.Printf("Error deleting offer: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete offer."})
	}
	return c.JSON(fiber.Map{"message": "Offer deleted successfully"})
}
