package venues

import (
	"time"

	"booking-directory/internal/domain/shows"
)

type Venue struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"not null" json:"name"`
	City    string `gorm:"not null" json:"city"`
	State   string `gorm:"not null" json:"state"`
	Address string `gorm:"not null" json:"address"`
	Phone   string `json:"phone,omitempty"`

	// Comma-joined tag list, see internal/domain/genres.
	Genres string `json:"-"`

	ImageLink    string `json:"image_link,omitempty"`
	FacebookLink string `json:"facebook_link,omitempty"`
	Website      string `json:"website,omitempty"`

	SeekingTalent      bool   `gorm:"not null;default:false" json:"seeking_talent"`
	SeekingDescription string `json:"seeking_description,omitempty"`

	Shows []shows.Show `gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
