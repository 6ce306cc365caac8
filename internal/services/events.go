package services

import "log"

// Routing keys of the catalog events.
const (
	EventProductCreated = "product.created"
	EventProductUpdated = "product.updated"
	EventProductDeleted = "product.deleted"
	EventOfferCreated   = "offer.created"
	EventOfferUpdated   = "offer.updated"
	EventOfferDeleted   = "offer.deleted"
	EventReviewCreated  = "review.created"
	EventReviewDeleted  = "review.deleted"
)

// EventPublisher publishes catalog change events. *rabbitmq.Client
// implements it.
type EventPublisher interface {
	Publish(routingKey string, payload interface{}) error
}

// publish sends an event without failing the caller; the store write has
// already succeeded at this point.
func publish(p EventPublisher, routingKey string, payload interface{}) {
	if p == nil {
		return
	}
	if err := p.Publish(routingKey, payload); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", routingKey, err)
	}
}

type deletedEvent struct {
	ID string `json:"id"`
}
