package shows

import (
	"errors"
	"time"

	"booking-directory/internal/app/apperr"
	"booking-directory/internal/domain/artists"
	"booking-directory/internal/domain/shows"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

var validate = validator.New()

type showRow struct {
	VenueID         uint
	VenueName       string
	ArtistID        uint
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}

// List joins every show with its venue and artist. The inner joins drop
// nothing as long as the foreign keys hold.
func List(db *gorm.DB) ([]ShowView, error) {
	var rows []showRow
	err := db.Table("shows").
		Select("shows.venue_id, venues.name AS venue_name, shows.artist_id, artists.name AS artist_name, artists.image_link AS artist_image_link, shows.start_time").
		Joins("JOIN artists ON artists.id = shows.artist_id").
		Joins("JOIN venues ON venues.id = shows.venue_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]ShowView, 0, len(rows))
	for _, r := range rows {
		out = append(out, ShowView{
			VenueID:         r.VenueID,
			VenueName:       r.VenueName,
			ArtistID:        r.ArtistID,
			ArtistName:      r.ArtistName,
			ArtistImageLink: r.ArtistImageLink,
			StartTime:       shows.FormatStartTime(r.StartTime),
		})
	}
	return out, nil
}

// Create validates and inserts a show in one transaction, returning the new
// id. Nonexistent artist or venue ids are not checked up front; the foreign
// keys reject them and the failure surfaces as a persistence error.
func Create(db *gorm.DB, req *ShowRequest) (uint, error) {
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return 0, &apperr.ValidationError{Field: verrs[0].Field(), Reason: "failed " + verrs[0].Tag() + " check"}
		}
		return 0, err
	}

	start := req.StartTime
	if start.IsZero() {
		start = time.Now()
	}

	s := shows.Show{
		ArtistID:  req.ArtistID,
		VenueID:   req.VenueID,
		StartTime: start,
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		// Denormalize the artist's image onto the show if the artist exists;
		// if it doesn't, the insert below fails on the foreign key anyway.
		var a artists.Artist
		if err := tx.First(&a, req.ArtistID).Error; err == nil {
			s.ArtistImageLink = a.ImageLink
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(&s).Error
	})
	if err != nil {
		return 0, &apperr.PersistenceError{Op: "create show", Err: err}
	}
	return s.ID, nil
}
