package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/cardfolio/internal/card"
	"github.com/cardfolio/internal/db"
	"github.com/cardfolio/internal/service"
	"github.com/gin-gonic/gin"
)

type linkRequest struct {
	Platform string `json:"platform" binding:"required"`
	Username string `json:"username"`
	URL      string `json:"url"`
}

// AddLink persists a social link for the saved card and appends it to the
// draft. An empty URL falls back to the derived platform URL; a card that
// was never saved or an empty username is rejected without a remote call.
func (a *API) AddLink(c *gin.Context) {
	userID, email, _ := currentUser(c)

	var req linkRequest
	if !bindJSON(c, &req, "platform is required") {
		return
	}

	url := strings.TrimSpace(req.URL)
	if url == "" && strings.TrimSpace(req.Username) != "" {
		url = card.DeriveURL(req.Platform, strings.TrimSpace(req.Username))
	}

	draft := a.drafts.View(userID, email)
	link, err := a.links.AddLink(draft.ID, req.Platform, req.Username, url)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCardNotSaved):
			respondError(c, http.StatusBadRequest, "save the card before adding links")
		case errors.Is(err, service.ErrUsernameRequired):
			respondError(c, http.StatusBadRequest, "username is required")
		default:
			c.Error(err)
			respondError(c, http.StatusInternalServerError, "failed to add link")
		}
		return
	}

	entry := card.Link{ID: link.ID, Platform: link.Platform, Username: link.Username, URL: link.URL}
	a.drafts.Mutate(userID, email, func(d *card.Draft) { d.AddLink(entry) })

	c.JSON(http.StatusOK, gin.H{"link": entry})
}

// RemoveLink deletes a social link by id and drops it from the draft.
// The delete is scoped to the caller's card; an id on someone else's card
// or one that does not exist is a no-op success.
func (a *API) RemoveLink(c *gin.Context) {
	userID, email, _ := currentUser(c)
	id := c.Param("id")

	draft := a.drafts.View(userID, email)
	if err := a.links.RemoveLink(draft.ID, id); err != nil {
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "failed to remove link")
		return
	}

	a.drafts.Mutate(userID, email, func(d *card.Draft) { d.RemoveLink(id) })

	c.JSON(http.StatusOK, gin.H{"message": "link removed"})
}

// PreviewLink returns the derived profile URL for the link entry form.
// The form re-derives on every platform or username change.
func (a *API) PreviewLink(c *gin.Context) {
	platform := c.Query("platform")
	username := strings.TrimSpace(c.Query("username"))

	url := ""
	if username != "" {
		url = card.DeriveURL(platform, username)
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

func draftLinks(rows []db.SocialLink) []card.Link {
	links := make([]card.Link, 0, len(rows))
	for _, r := range rows {
		links = append(links, card.Link{ID: r.ID, Platform: r.Platform, Username: r.Username, URL: r.URL})
	}
	return links
}
