package venues

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"booking-directory/database"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	database.DB = setupTestDB(t)

	r := gin.New()
	r.GET("/venues", ListVenues)
	r.POST("/venues/search", SearchVenues)
	r.GET("/venues/:id", GetVenue)
	r.POST("/venues", CreateVenue)
	r.PUT("/venues/:id", UpdateVenue)
	r.DELETE("/venues/:id", DeleteVenue)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateThenGetVenueHandler(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/venues", `{
		"name": "The Musical Hop",
		"city": "San Francisco",
		"state": "CA",
		"address": "1015 Folsom Street",
		"genres": ["Jazz", "Reggae"]
	}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		ID uint `json:"id"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)

	w = doJSON(r, http.MethodGet, fmt.Sprintf("/venues/%d", created.ID), "")
	assert.Equal(t, http.StatusOK, w.Code)

	var detail VenueDetail
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, []string{"Jazz", "Reggae"}, detail.Genres)
	assert.Equal(t, 0, detail.UpcomingShowsCount)
}

func TestGetVenueHandlerNotFound(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/venues/42", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// a non-numeric id is also a 404, never a parse fault
	w = doJSON(r, http.MethodGet, "/venues/abc", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateVenueHandlerValidationFailure(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/venues", `{"name": "No Address"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Something went wrong")
}

func TestDeleteVenueHandlerUnknownID(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, http.MethodDelete, "/venues/999", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Error)
}

func TestSearchVenuesHandler(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/venues", `{
		"name": "The Musical Hop",
		"city": "San Francisco",
		"state": "CA",
		"address": "1015 Folsom Street"
	}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/venues/search", `{"search_term": "MUSICAL"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp SearchResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "The Musical Hop", resp.Data[0].Name)
}
