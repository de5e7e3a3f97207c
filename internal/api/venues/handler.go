package venues

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
// GET /venues -> city/state groups
// ------------------------------
func ListVenues(c *gin.Context) {
	groups, err := ListGrouped(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load venues"})
		return
	}
	c.JSON(http.StatusOK, groups)
}

// ------------------------------
// POST /venues/search
// ------------------------------
func SearchVenues(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resp, err := SearchByName(database.DB, req.SearchTerm)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search venues"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ------------------------------
// GET /venues/:id
// ------------------------------
func GetVenue(c *gin.Context) {
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
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load venue"})
		return
	}
	c.JSON(http.StatusOK, detail)
}

// ------------------------------
// POST /venues
// ------------------------------
func CreateVenue(c *gin.Context) {
	var req VenueRequest
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
// PUT /venues/:id
// ------------------------------
func UpdateVenue(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req VenueRequest
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
// DELETE /venues/:id
// ------------------------------
// Failures come back as a {success, error} body instead of an error status
// so the caller can handle them inline.
func DeleteVenue(c *gin.Context) {
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
