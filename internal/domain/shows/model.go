package shows

import (
	"time"
)

// Show links one artist to one venue at a start time. Both foreign keys are
// required; the owning Venue/Artist records declare the constraints.
type Show struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	ArtistID uint `gorm:"not null;index" json:"artist_id"`
	VenueID  uint `gorm:"not null;index" json:"venue_id"`

	StartTime time.Time `gorm:"not null" json:"start_time"`

	// Copied from the artist at creation time so show listings survive a
	// later change of the artist's image.
	ArtistImageLink string `json:"artist_image_link,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
