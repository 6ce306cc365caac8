package models

import "time"

// Offer is a promotional banner shown on the storefront.
type Offer struct {
	ID          string    `json:"_id" bson:"_id,omitempty" gorm:"primaryKey;type:varchar(36)"`
	ImageURL    string    `json:"imageUrl" bson:"imageUrl"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt" gorm:"index"`
}
