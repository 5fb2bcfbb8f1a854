package db

import (
	"time"

	"github.com/cardfolio/internal/card"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BusinessCard is the persisted card record, exactly one per user. The
// identifier is assigned on first insert; a draft without one has never
// been saved. Theme and layout are stored as structured JSON columns.
type BusinessCard struct {
	ID          string                          `gorm:"primaryKey;size:36"`
	UserID      string                          `gorm:"uniqueIndex;not null;size:36"`
	Title       string                          `gorm:"size:255"`
	Company     string                          `gorm:"size:255"`
	Phone       string                          `gorm:"size:50"`
	Email       string                          `gorm:"size:255"`
	Website     string                          `gorm:"size:255"`
	AvatarURL   string                          `gorm:"size:500"`
	Theme       datatypes.JSONType[card.Theme]  `gorm:"not null"`
	Shape       string                          `gorm:"size:20;default:rectangle"`
	Layout      datatypes.JSONType[card.Layout] `gorm:"not null"`
	IsPublished bool                            `gorm:"default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName keeps the table aligned with the public schema name.
func (BusinessCard) TableName() string {
	return "business_cards"
}

// BeforeCreate assigns the opaque identifier on insert.
func (c *BusinessCard) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// Snapshot converts the stored row into the domain view a draft hydrates
// from.
func (c *BusinessCard) Snapshot() card.Snapshot {
	return card.Snapshot{
		ID:        c.ID,
		Title:     c.Title,
		Company:   c.Company,
		Phone:     c.Phone,
		Email:     c.Email,
		Website:   c.Website,
		AvatarURL: c.AvatarURL,
		Theme:     c.Theme.Data(),
		Layout:    c.Layout.Data(),
		Shape:     card.Shape(c.Shape),
		Published: c.IsPublished,
	}
}
