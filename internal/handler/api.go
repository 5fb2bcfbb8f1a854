package handler

import (
	"github.com/cardfolio/internal/card"
	"github.com/cardfolio/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db      *gorm.DB
	users   *service.UserService
	cards   *service.CardService
	links   *service.LinkService
	avatars *service.AvatarService
	drafts  *card.Registry
	baseURL string
}

// NewAPI constructs a handler set with shared services. uploadDir and
// uploadURL describe where avatar objects are stored and served from;
// baseURL is the origin public card URLs are formed against.
func NewAPI(db *gorm.DB, uploadDir, uploadURL, baseURL string) *API {
	storage := service.NewLocalStorage(uploadDir, uploadURL)

	return &API{
		db:      db,
		users:   service.NewUserService(db),
		cards:   service.NewCardService(db),
		links:   service.NewLinkService(db),
		avatars: service.NewAvatarService(storage),
		drafts:  card.NewRegistry(),
		baseURL: baseURL,
	}
}

// DB exposes the underlying gorm instance.
func (a *API) DB() *gorm.DB {
	return a.db
}
