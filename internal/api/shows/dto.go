package shows

import "time"

// ---------- requests

type ShowRequest struct {
	ArtistID uint `json:"artist_id" binding:"required" validate:"required"`
	VenueID  uint `json:"venue_id" binding:"required" validate:"required"`

	// Zero means unspecified and defaults to the creation time.
	StartTime time.Time `json:"start_time"`
}

// ---------- responses

// ShowView is one row of the full show listing with both sides of the
// booking resolved.
type ShowView struct {
	VenueID         uint   `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        uint   `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}
