package models

import "time"

// Review is a customer review. Reviews are not tied to a product.
type Review struct {
	ID        string    `json:"_id" bson:"_id,omitempty" gorm:"primaryKey;type:varchar(36)"`
	User      string    `json:"user" bson:"user"`
	Rating    float64   `json:"rating" bson:"rating"`
	Text      string    `json:"text" bson:"text"`
	Img       string    `json:"img,omitempty" bson:"img,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt" gorm:"index"`
}
