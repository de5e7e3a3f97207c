package artists

import (
	"time"

	"booking-directory/internal/domain/shows"
)

type Artist struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"not null" json:"name"`
	City  string `gorm:"not null" json:"city"`
	State string `gorm:"not null" json:"state"`
	Phone string `json:"phone,omitempty"`

	// Comma-joined tag list, required for artists.
	Genres string `gorm:"not null" json:"-"`

	ImageLink    string `json:"image_link,omitempty"`
	FacebookLink string `json:"facebook_link,omitempty"`
	Website      string `json:"website,omitempty"`

	SeekingVenue       bool   `gorm:"not null;default:false" json:"seeking_venue"`
	SeekingDescription string `json:"seeking_description,omitempty"`

	Shows []shows.Show `gorm:"foreignKey:ArtistID;constraint:OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
