package handler

import (
	"errors"
	"net/http"

	"github.com/cardfolio/internal/card"
	"github.com/cardfolio/internal/service"
	"github.com/gin-gonic/gin"
)

// GetCard returns the signed-in user's draft, hydrating it from the store
// on first access. A missing card is a normal outcome and yields the
// default draft; ?refresh=1 forces a re-load (last load wins). A load
// failure is logged and reported, the draft stays at last known good.
func (a *API) GetCard(c *gin.Context) {
	userID, email, _ := currentUser(c)

	if !a.drafts.Loaded(userID) || c.Query("refresh") == "1" {
		gen := a.drafts.BeginLoad(userID, email)

		record, links, err := a.cards.Load(userID)
		if err != nil {
			c.Error(err)
			if errors.Is(err, service.ErrCardConflict) {
				respondError(c, http.StatusConflict, "more than one card exists for this account")
				return
			}
			respondError(c, http.StatusInternalServerError, "failed to load card")
			return
		}

		if record == nil {
			a.drafts.MarkLoaded(userID, email)
		} else {
			a.drafts.CompleteLoad(userID, gen, record.Snapshot(), draftLinks(links))
		}
	}

	a.respondDraft(c, userID, email)
}

type cardUpdateRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// UpdateCard applies one field mutation to the draft. The accepted field
// names form a closed set; anything else is rejected before the draft is
// touched. Theme and layout updates merge into their substructure.
func (a *API) UpdateCard(c *gin.Context) {
	userID, email, _ := currentUser(c)

	var req cardUpdateRequest
	if !bindJSON(c, &req, "field is required") {
		return
	}

	var apply func(*card.Draft)
	switch req.Field {
	case "title":
		apply = func(d *card.Draft) { d.SetTitle(req.Value) }
	case "company":
		apply = func(d *card.Draft) { d.SetCompany(req.Value) }
	case "phone":
		apply = func(d *card.Draft) { d.SetPhone(req.Value) }
	case "email":
		apply = func(d *card.Draft) { d.SetEmail(req.Value) }
	case "website":
		apply = func(d *card.Draft) { d.SetWebsite(req.Value) }
	case "avatar_url":
		apply = func(d *card.Draft) { d.SetAvatarURL(req.Value) }
	case "shape":
		shape := card.Shape(req.Value)
		if !card.ValidShape(shape) {
			respondError(c, http.StatusBadRequest, "unknown card shape")
			return
		}
		apply = func(d *card.Draft) { d.SetShape(shape) }
	case "theme.primary", "theme.secondary", "theme.background", "theme.text":
		if !card.ValidHexColor(req.Value) {
			respondError(c, http.StatusBadRequest, "theme colors must be hex values")
			return
		}
		key := card.ThemeColor(req.Field[len("theme."):])
		apply = func(d *card.Draft) { d.SetThemeColor(key, req.Value) }
	case "layout.style":
		if !card.ValidLayoutStyle(req.Value) {
			respondError(c, http.StatusBadRequest, "unknown layout style")
			return
		}
		apply = func(d *card.Draft) { d.SetLayoutStyle(req.Value) }
	case "layout.alignment":
		if !card.ValidAlignment(req.Value) {
			respondError(c, http.StatusBadRequest, "unknown alignment")
			return
		}
		apply = func(d *card.Draft) { d.SetAlignment(req.Value) }
	case "layout.font":
		if !card.ValidFont(req.Value) {
			respondError(c, http.StatusBadRequest, "unknown font")
			return
		}
		apply = func(d *card.Draft) { d.SetFont(req.Value) }
	default:
		respondError(c, http.StatusBadRequest, "unknown card field")
		return
	}

	a.drafts.Mutate(userID, email, apply)
	a.respondDraft(c, userID, email)
}

type publishRequest struct {
	Published *bool `json:"published" binding:"required"`
}

// SetPublished toggles the publish flag on the draft. The flag takes
// public effect only after the next save.
func (a *API) SetPublished(c *gin.Context) {
	userID, email, _ := currentUser(c)

	var req publishRequest
	if !bindJSON(c, &req, "published flag is required") {
		return
	}

	a.drafts.Mutate(userID, email, func(d *card.Draft) { d.SetPublished(*req.Published) })
	a.respondDraft(c, userID, email)
}

// SaveCard commits the draft, inserting on first save and updating after.
// A second save while one is outstanding is refused; the guard is
// advisory and lives here, not in the gateway.
func (a *API) SaveCard(c *gin.Context) {
	userID, email, _ := currentUser(c)

	if !a.drafts.TrySave(userID, email) {
		respondError(c, http.StatusConflict, "a save is already in progress")
		return
	}
	defer a.drafts.EndSave(userID)

	draft := a.drafts.View(userID, email)
	record, err := a.cards.Commit(userID, draft.Snapshot())
	if err != nil {
		c.Error(err)
		switch {
		case errors.Is(err, service.ErrInvalidDraft):
			respondError(c, http.StatusBadRequest, "card has invalid theme, shape or layout values")
		case errors.Is(err, service.ErrCardMissing):
			respondError(c, http.StatusConflict, "card no longer exists, reload and save again")
		default:
			respondError(c, http.StatusInternalServerError, "failed to save card")
		}
		return
	}

	// Fold the canonical record back in: the identifier assigned on first
	// insert and any sanitized field values. Links are kept, they are
	// persisted separately.
	a.drafts.Mutate(userID, email, func(d *card.Draft) {
		links := d.Links
		d.LoadFrom(record.Snapshot(), links)
	})

	a.respondDraft(c, userID, email)
}

// Dashboard returns the signed-in user's card counters.
func (a *API) Dashboard(c *gin.Context) {
	userID, email, _ := currentUser(c)

	stats, err := a.cards.CountStats(userID)
	if err != nil {
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "failed to load dashboard")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"email":     email,
		"cards":     stats.Cards,
		"published": stats.Published,
	})
}

func (a *API) respondDraft(c *gin.Context, userID, email string) {
	draft := a.drafts.View(userID, email)
	c.JSON(http.StatusOK, gin.H{
		"card":       draft,
		"public_url": card.PublicURL(a.baseURL, draft.ID, draft.Published),
	})
}
