package handlers

import (
	"log"

	"vogue/internal/services"

	"github.com/gofiber/fiber/v2"
)

// VisitHandler handles the visit tracking endpoint.
type VisitHandler struct {
	service *services.VisitService
}

// NewVisitHandler creates a new VisitHandler.
func NewVisitHandler(service *services.VisitService) *VisitHandler {
	return &VisitHandler{service: service}
}

// RegisterRoutes registers the visit routes.
func (h *VisitHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/track-visit", h.HandleTrackVisit)
}

// HandleTrackVisit counts the visit and responds with the new total.
func (h *VisitHandler) HandleTrackVisit(c *fiber.Ctx) error {
	count, err := h.service.TrackVisit(c.UserContext())
	if err != nil {
		log.Printf("Error tracking visit: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to track visit."})
	}
	return c.JSON(fiber.Map{"count": count})
}
