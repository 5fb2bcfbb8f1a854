package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/cardfolio/internal/card"
	"github.com/cardfolio/internal/service"
	"github.com/gin-gonic/gin"
)

// UploadAvatar stores the uploaded profile image and points the draft's
// avatar field at its public URL. On any failure the avatar field is left
// unchanged; a second upload while one is in flight is refused.
func (a *API) UploadAvatar(c *gin.Context) {
	userID, email, _ := currentUser(c)

	file, err := c.FormFile("avatar")
	if err != nil {
		respondError(c, http.StatusBadRequest, "no image found in upload")
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		respondError(c, http.StatusBadRequest, "only image files are allowed")
		return
	}

	src, err := file.Open()
	if err != nil {
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "failed to read upload")
		return
	}
	defer src.Close()

	url, err := a.avatars.Upload(userID, src)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUploadInFlight):
			respondError(c, http.StatusConflict, "an upload is already in progress")
		case errors.Is(err, service.ErrNotAnImage):
			respondError(c, http.StatusBadRequest, "unsupported image format")
		default:
			c.Error(err)
			respondError(c, http.StatusInternalServerError, "failed to upload image")
		}
		return
	}

	a.drafts.Mutate(userID, email, func(d *card.Draft) { d.SetAvatarURL(url) })

	c.JSON(http.StatusOK, gin.H{"url": url})
}
