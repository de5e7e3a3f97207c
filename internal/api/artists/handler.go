package artists

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"booking-directory/database"
	"booking-directory/internal/app/apperr"

	"github.com/gin-gonic/gin"
)

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return 0, false
	}
	return uint(id), true
}

// ------------------------------
// GET /artists -> (id, name) pairs
// ------------------------------
func ListArtists(c *gin.Context) {
	refs, err := List(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artists"})
		return
	}
	c.JSON(http.StatusOK, refs)
}

// ------------------------------
// POST /artists/search
// ------------------------------
func SearchArtists(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resp, err := SearchByName(database.DB, req.SearchTerm)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search artists"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ------------------------------
// GET /artists/:id
// ------------------------------
func GetArtist(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	detail, err := GetDetail(database.DB, id, time.Now())
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artist"})
		return
	}
	c.JSON(http.StatusOK, detail)
}

// ------------------------------
// POST /artists
// ------------------------------
func CreateArtist(c *gin.Context) {
	var req ArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperr.GenericMessage, "details": err.Error()})
		return
	}
	id, err := Create(database.DB, &req)
	if err != nil {
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// ------------------------------
// PUT /artists/:id
// ------------------------------
func UpdateArtist(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req ArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperr.GenericMessage, "details": err.Error()})
		return
	}
	if err := Update(database.DB, id, &req); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		respondMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// ------------------------------
// DELETE /artists/:id
// ------------------------------
func DeleteArtist(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := Delete(database.DB, id); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func respondMutationError(c *gin.Context, err error) {
	var verr *apperr.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperr.GenericMessage, "details": verr.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": apperr.GenericMessage})
}
