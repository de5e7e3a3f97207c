package shows

import (
	"errors"
	"net/http"

	"booking-directory/database"
	"booking-directory/internal/app/apperr"

	"github.com/gin-gonic/gin"
)

// ------------------------------
// GET /shows -> joined listing
// ------------------------------
func ListShows(c *gin.Context) {
	views, err := List(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load shows"})
		return
	}
	c.JSON(http.StatusOK, views)
}

// ------------------------------
// POST /shows
// ------------------------------
func CreateShow(c *gin.Context) {
	var req ShowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperr.GenericMessage, "details": err.Error()})
		return
	}
	id, err := Create(database.DB, &req)
	if err != nil {
		var verr *apperr.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": apperr.GenericMessage, "details": verr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": apperr.GenericMessage})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}
