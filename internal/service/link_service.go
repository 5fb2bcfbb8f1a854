package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cardfolio/internal/db"
	"gorm.io/gorm"
)

var (
	// ErrCardNotSaved is returned when a link is added before the card has
	// been committed at least once.
	ErrCardNotSaved = errors.New("card must be saved before adding links")
	// ErrUsernameRequired is returned when a link is added without a handle.
	ErrUsernameRequired = errors.New("social link username is required")
)

// LinkService creates and deletes social link rows. Links are written
// individually and immediately, never batched with the card save.
type LinkService struct {
	db *gorm.DB
}

// NewLinkService constructs a LinkService.
func NewLinkService(gdb *gorm.DB) *LinkService {
	return &LinkService{db: gdb}
}

// AddLink inserts a social link for a saved card. Validation failures are
// rejected locally before any remote call.
func (s *LinkService) AddLink(cardID, platform, username, url string) (*db.SocialLink, error) {
	if strings.TrimSpace(cardID) == "" {
		return nil, ErrCardNotSaved
	}
	if strings.TrimSpace(username) == "" {
		return nil, ErrUsernameRequired
	}

	link := db.SocialLink{
		CardID:   cardID,
		Platform: strings.TrimSpace(platform),
		Username: strings.TrimSpace(username),
		URL:      strings.TrimSpace(url),
	}
	if err := s.db.Create(&link).Error; err != nil {
		return nil, fmt.Errorf("insert social link: %w", err)
	}
	return &link, nil
}

// RemoveLink deletes a social link by identifier, scoped to the owning
// card so one account cannot remove another's links. Deleting an id that
// does not exist on the card is a no-op success.
func (s *LinkService) RemoveLink(cardID, id string) error {
	if err := s.db.Delete(&db.SocialLink{}, "id = ? AND card_id = ?", id, cardID).Error; err != nil {
		return fmt.Errorf("delete social link: %w", err)
	}
	return nil
}
