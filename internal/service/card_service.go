package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cardfolio/internal/card"
	"github.com/cardfolio/internal/db"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	// ErrCardConflict is returned when more than one card row exists for a
	// user. The schema forbids it; if it is ever observed the commit must
	// fail rather than silently pick a row.
	ErrCardConflict = errors.New("multiple cards found for user")
	// ErrCardMissing is returned when an update targets an identifier that
	// no longer exists in the store.
	ErrCardMissing = errors.New("card not found for update")
	// ErrInvalidDraft is returned when a draft carries values outside the
	// known enumerations.
	ErrInvalidDraft = errors.New("draft has invalid theme, shape or layout values")
)

// CardService loads and commits business cards. It decides insert versus
// update from the draft identifier and never changes the owner after the
// first insert. Concurrent commits for the same user are not coordinated
// here; callers keep an advisory in-flight guard.
type CardService struct {
	db        *gorm.DB
	sanitizer *bluemonday.Policy
}

// NewCardService constructs a CardService.
func NewCardService(gdb *gorm.DB) *CardService {
	return &CardService{db: gdb, sanitizer: bluemonday.StrictPolicy()}
}

// Load fetches the card owned by userID together with its social links.
// A missing card is a normal outcome and yields (nil, nil, nil); finding
// more than one row for the user is ErrCardConflict.
func (s *CardService) Load(userID string) (*db.BusinessCard, []db.SocialLink, error) {
	var cards []db.BusinessCard
	if err := s.db.Where("user_id = ?", userID).Limit(2).Find(&cards).Error; err != nil {
		return nil, nil, fmt.Errorf("load card: %w", err)
	}

	switch len(cards) {
	case 0:
		return nil, nil, nil
	case 1:
	default:
		return nil, nil, ErrCardConflict
	}

	record := cards[0]
	var links []db.SocialLink
	if err := s.db.Where("card_id = ?", record.ID).Order("created_at ASC, id ASC").Find(&links).Error; err != nil {
		return nil, nil, fmt.Errorf("load social links: %w", err)
	}

	return &record, links, nil
}

// Commit writes the draft snapshot to the store. A snapshot without an
// identifier is inserted with the owner set from userID; one with an
// identifier updates that row only, never touching user_id. The returned
// record is the canonical persisted state, carrying the identifier
// assigned on first insert.
func (s *CardService) Commit(userID string, snap card.Snapshot) (*db.BusinessCard, error) {
	if err := validateSnapshot(snap); err != nil {
		return nil, err
	}

	title := s.cleanText(snap.Title)
	company := s.cleanText(snap.Company)

	if snap.ID == "" {
		record := db.BusinessCard{
			UserID:      userID,
			Title:       title,
			Company:     company,
			Phone:       strings.TrimSpace(snap.Phone),
			Email:       strings.TrimSpace(snap.Email),
			Website:     strings.TrimSpace(snap.Website),
			AvatarURL:   strings.TrimSpace(snap.AvatarURL),
			Theme:       datatypes.NewJSONType(snap.Theme),
			Shape:       string(snap.Shape),
			Layout:      datatypes.NewJSONType(snap.Layout),
			IsPublished: snap.Published,
		}
		if err := s.db.Create(&record).Error; err != nil {
			return nil, fmt.Errorf("insert card: %w", err)
		}
		return &record, nil
	}

	updates := map[string]any{
		"title":        title,
		"company":      company,
		"phone":        strings.TrimSpace(snap.Phone),
		"email":        strings.TrimSpace(snap.Email),
		"website":      strings.TrimSpace(snap.Website),
		"avatar_url":   strings.TrimSpace(snap.AvatarURL),
		"theme":        datatypes.NewJSONType(snap.Theme),
		"shape":        string(snap.Shape),
		"layout":       datatypes.NewJSONType(snap.Layout),
		"is_published": snap.Published,
	}

	result := s.db.Model(&db.BusinessCard{}).Where("id = ?", snap.ID).Updates(updates)
	if result.Error != nil {
		return nil, fmt.Errorf("update card: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrCardMissing
	}

	var record db.BusinessCard
	if err := s.db.First(&record, "id = ?", snap.ID).Error; err != nil {
		return nil, fmt.Errorf("reload card: %w", err)
	}
	return &record, nil
}

// GetPublished fetches a card by identifier only when it is published.
// Unpublished and unknown cards both come back as gorm.ErrRecordNotFound
// so the public surface cannot tell them apart.
func (s *CardService) GetPublished(cardID string) (*db.BusinessCard, []db.SocialLink, error) {
	var record db.BusinessCard
	if err := s.db.Where("id = ? AND is_published = ?", cardID, true).First(&record).Error; err != nil {
		return nil, nil, err
	}

	var links []db.SocialLink
	if err := s.db.Where("card_id = ?", record.ID).Order("created_at ASC, id ASC").Find(&links).Error; err != nil {
		return nil, nil, fmt.Errorf("load social links: %w", err)
	}

	return &record, links, nil
}

// Stats aggregates the per-user dashboard counters.
type Stats struct {
	Cards     int64
	Published int64
}

// CountStats returns the dashboard counters for one user.
func (s *CardService) CountStats(userID string) (Stats, error) {
	var stats Stats
	if err := s.db.Model(&db.BusinessCard{}).Where("user_id = ?", userID).Count(&stats.Cards).Error; err != nil {
		return Stats{}, fmt.Errorf("count cards: %w", err)
	}
	if err := s.db.Model(&db.BusinessCard{}).Where("user_id = ? AND is_published = ?", userID, true).Count(&stats.Published).Error; err != nil {
		return Stats{}, fmt.Errorf("count published cards: %w", err)
	}
	return stats, nil
}

// cleanText strips any markup from a free-text field before it is stored;
// the public surface renders these values verbatim.
func (s *CardService) cleanText(v string) string {
	return strings.TrimSpace(s.sanitizer.Sanitize(v))
}

func validateSnapshot(snap card.Snapshot) error {
	if !card.ValidShape(snap.Shape) {
		return ErrInvalidDraft
	}
	if !card.ValidLayoutStyle(snap.Layout.Style) || !card.ValidAlignment(snap.Layout.Alignment) || !card.ValidFont(snap.Layout.Font) {
		return ErrInvalidDraft
	}
	for _, v := range []string{snap.Theme.Primary, snap.Theme.Secondary, snap.Theme.Background, snap.Theme.Text} {
		if !card.ValidHexColor(v) {
			return ErrInvalidDraft
		}
	}
	return nil
}
