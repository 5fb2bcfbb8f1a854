package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PublicCard serves the public read surface. A card is reachable here only
// when it has been saved and carries the published flag; unpublished and
// unknown identifiers are indistinguishable.
func (a *API) PublicCard(c *gin.Context) {
	cardID := c.Param("cardId")

	record, links, err := a.cards.GetPublished(cardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "card not found")
			return
		}
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "failed to load card")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"card": gin.H{
			"id":         record.ID,
			"title":      record.Title,
			"company":    record.Company,
			"phone":      record.Phone,
			"email":      record.Email,
			"website":    record.Website,
			"avatar_url": record.AvatarURL,
			"theme":      record.Theme.Data(),
			"shape":      record.Shape,
			"layout":     record.Layout.Data(),
		},
		"links": draftLinks(links),
	})
}
