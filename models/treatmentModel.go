package models

import (
	"time"
)

// TreatmentItem model. AverageRating is derived from the item's reviews and is
// NULL exactly when the item has no reviews; it is rewritten inside the same
// transaction as every review mutation.
type TreatmentItem struct {
	ID            uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Title         string    `gorm:"column:title;not null;index" json:"title"`
	Price         *float64  `gorm:"column:price" json:"price"`
	Description   *string   `gorm:"column:description" json:"description"`
	CategoryID    uint      `gorm:"column:category_id;not null;index" json:"category_id"`
	TypeID        uint      `gorm:"column:type_id;not null;index" json:"type_id"`
	AverageRating *float64  `gorm:"column:average_rating" json:"average_rating"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Category ItemCategory `gorm:"foreignKey:CategoryID;references:ID" json:"-"`
	Type     ItemType     `gorm:"foreignKey:TypeID;references:ID" json:"-"`
	Reviews  []ItemReview `gorm:"foreignKey:ItemID;references:ID" json:"reviews,omitempty"`
}

func (TreatmentItem) TableName() string {
	return "treatment_item"
}

// ItemReview model
type ItemReview struct {
	ID          uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	ItemID      uint      `gorm:"column:item_id;not null;index" json:"item_id"`
	IsHelped    bool      `gorm:"column:is_helped;not null" json:"is_helped"`
	Rating      float64   `gorm:"column:rating;not null;check:rating >= 1 AND rating <= 10" json:"rating"`
	UsageCount  int       `gorm:"column:usage_count;not null;check:usage_count >= 1" json:"usage_count"`
	UsagePeriod *string   `gorm:"column:usage_period" json:"usage_period"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Item TreatmentItem `gorm:"foreignKey:ItemID;references:ID" json:"-"`
}

func (ItemReview) TableName() string {
	return "item_review"
}
