package models

// VisitKey identifies the one visit counter record.
const VisitKey = "site"

// Visit is the process-wide visit counter.
type Visit struct {
	ID    string `json:"-" bson:"_id" gorm:"primaryKey;type:varchar(36)"`
	Count int64  `json:"count" bson:"count" gorm:"not null;default:0"`
}
