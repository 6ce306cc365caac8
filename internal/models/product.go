package models

import "time"

// Product represents a catalog listing.
type Product struct {
	ID          string    `json:"_id" bson:"_id,omitempty" gorm:"primaryKey;type:varchar(36)"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	MRP         float64   `json:"mrp" bson:"mrp"`
	Price       float64   `json:"price" bson:"price"`
	Category    string    `json:"category" bson:"category" gorm:"index"`
	Sizes       []string  `json:"sizes" bson:"sizes" gorm:"serializer:json"`
	Colors      []string  `json:"colors" bson:"colors" gorm:"serializer:json"`
	IsTrending  bool      `json:"isTrending" bson:"isTrending" gorm:"index"`
	Images      []string  `json:"images" bson:"images" gorm:"serializer:json"`
	Date        string    `json:"date" bson:"date"`
	Time        string    `json:"time" bson:"time"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt" gorm:"index"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Normalize replaces nil lists with empty ones so stored documents and
// responses never carry null arrays.
func (p *Product) Normalize() {
	if p.Sizes == nil {
		p.Sizes = []string{}
	}
	if p.Colors == nil {
		p.Colors = []string{}
	}
	if p.Images == nil {
		p.Images = []string{}
	}
}

// PrimaryImage returns the first image of the product, or "" when it has none.
func (p Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// ProductView is the list representation of a product, carrying the derived
// img field. img is never persisted.
type ProductView struct {
	Product
	Img string `json:"img,omitempty"`
}

// NewProductViews projects products into their list representation.
func NewProductViews(products []Product) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, ProductView{Product: p, Img: p.PrimaryImage()})
	}
	return views
}

// ProductPatch holds the fields of a partial product update. Nil fields are
// left untouched.
type ProductPatch struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	MRP         *float64  `json:"mrp"`
	Price       *float64  `json:"price"`
	Category    *string   `json:"category"`
	Sizes       *[]string `json:"sizes"`
	Colors      *[]string `json:"colors"`
	IsTrending  *bool     `json:"isTrending"`
	Images      *[]string `json:"images"`
	Date        *string   `json:"date"`
	Time        *string   `json:"time"`
}

// Fields returns the patched fields keyed by their document name.
func (pp ProductPatch) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if pp.Title != nil {
		fields["title"] = *pp.Title
	}
	if pp.Description != nil {
		fields["description"] = *pp.Description
	}
	if pp.MRP != nil {
		fields["mrp"] = *pp.MRP
	}
	if pp.Price != nil {
		fields["price"] = *pp.Price
	}
	if pp.Category != nil {
		fields["category"] = *pp.Category
	}
	if pp.Sizes != nil {
		fields["sizes"] = nonNil(*pp.Sizes)
	}
	if pp.Colors != nil {
		fields["colors"] = nonNil(*pp.Colors)
	}
	if pp.IsTrending != nil {
		fields["isTrending"] = *pp.IsTrending
	}
	if pp.Images != nil {
		fields["images"] = nonNil(*pp.Images)
	}
	if pp.Date != nil {
		fields["date"] = *pp.Date
	}
	if pp.Time != nil {
		fields["time"] = *pp.Time
	}
	return fields
}

// Apply writes the patched fields onto p.
func (pp ProductPatch) Apply(p *Product) {
	if pp.Title != nil {
		p.Title = *pp.Title
	}
	if pp.Description != nil {
		p.Description = *pp.Description
	}
	if pp.MRP != nil {
		p.MRP = *pp.MRP
	}
	if pp.Price != nil {
		p.Price = *pp.Price
	}
	if pp.Category != nil {
		p.Category = *pp.Category
	}
	if pp.Sizes != nil {
		p.Sizes = nonNil(*pp.Sizes)
	}
	if pp.Colors != nil {
		p.Colors = nonNil(*pp.Colors)
	}
	if pp.IsTrending != nil {
		p.IsTrending = *pp.IsTrending
	}
	if pp.Images != nil {
		p.Images = nonNil(*pp.Images)
	}
	if pp.Date != nil {
		p.Date = *pp.Date
	}
	if pp.Time != nil {
		p.Time = *pp.Time
	}
}

// ProductQuery describes a product lookup. Zero values disable the
// corresponding filter; filters are combined with AND.
type ProductQuery struct {
	Category     string
	Name         string // case-insensitive substring of Title
	TrendingOnly bool
	CreatedAfter time.Time
	NewestFirst  bool
	Limit        int
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
