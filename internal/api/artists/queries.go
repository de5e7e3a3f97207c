package artists

import (
	"errors"
	"strings"
	"time"

	"booking-directory/internal/app/apperr"
	"booking-directory/internal/domain/artists"
	"booking-directory/internal/domain/genres"
	"booking-directory/internal/domain/shows"
	"booking-directory/internal/domain/venues"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

var validate = validator.New()

// List returns every artist as an (id, name) pair.
func List(db *gorm.DB) ([]NameRef, error) {
	refs := []NameRef{}
	if err := db.Model(&artists.Artist{}).Select("id", "name").Scan(&refs).Error; err != nil {
		return nil, err
	}
	return refs, nil
}

// SearchByName matches artist names case-insensitively on a substring. The
// empty term matches every artist.
func SearchByName(db *gorm.DB, term string) (*SearchResponse, error) {
	refs := []NameRef{}
	pattern := "%" + strings.ToLower(term) + "%"
	err := db.Model(&artists.Artist{}).
		Select("id", "name").
		Where("LOWER(name) LIKE ?", pattern).
		Scan(&refs).Error
	if err != nil {
		return nil, err
	}
	return &SearchResponse{Count: len(refs), Data: refs}, nil
}

// GetDetail loads one artist with its genres decoded and its shows split
// into past and upcoming relative to now.
func GetDetail(db *gorm.DB, id uint, now time.Time) (*ArtistDetail, error) {
	var a artists.Artist
	if err := db.Preload("Shows").First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}

	byID, err := venuesByID(db, a.Shows)
	if err != nil {
		return nil, err
	}

	past, upcoming := shows.Partition(a.Shows, now)
	pastViews, err := toShowViews(past, byID)
	if err != nil {
		return nil, err
	}
	upcomingViews, err := toShowViews(upcoming, byID)
	if err != nil {
		return nil, err
	}

	return &ArtistDetail{
		ID:                 a.ID,
		Name:               a.Name,
		Genres:             genres.Split(a.Genres),
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Website:            a.Website,
		FacebookLink:       a.FacebookLink,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
		ImageLink:          a.ImageLink,
		PastShows:          pastViews,
		UpcomingShows:      upcomingViews,
		PastShowsCount:     len(pastViews),
		UpcomingShowsCount: len(upcomingViews),
	}, nil
}

func venuesByID(db *gorm.DB, list []shows.Show) (map[uint]venues.Venue, error) {
	ids := make([]uint, 0, len(list))
	seen := map[uint]bool{}
	for _, s := range list {
		if !seen[s.VenueID] {
			seen[s.VenueID] = true
			ids = append(ids, s.VenueID)
		}
	}
	byID := make(map[uint]venues.Venue, len(ids))
	if len(ids) == 0 {
		return byID, nil
	}
	var rows []venues.Venue
	if err := db.Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, v := range rows {
		byID[v.ID] = v
	}
	return byID, nil
}

func toShowViews(list []shows.Show, byID map[uint]venues.Venue) ([]ShowView, error) {
	out := make([]ShowView, 0, len(list))
	for _, s := range list {
		v, ok := byID[s.VenueID]
		if !ok {
			return nil, &apperr.BrokenReference{Kind: "venue", ID: s.VenueID}
		}
		out = append(out, ShowView{
			VenueID:        s.VenueID,
			VenueName:      v.Name,
			VenueImageLink: v.ImageLink,
			StartTime:      shows.FormatStartTime(s.StartTime),
		})
	}
	return out, nil
}

func validateRequest(req *ArtistRequest) error {
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return &apperr.ValidationError{Field: verrs[0].Field(), Reason: "failed " + verrs[0].Tag() + " check"}
		}
		return err
	}
	if err := genres.Validate(req.Genres); err != nil {
		return &apperr.ValidationError{Field: "genres", Reason: err.Error()}
	}
	return nil
}

func applyRequest(a *artists.Artist, req *ArtistRequest) {
	a.Name = req.Name
	a.City = req.City
	a.State = req.State
	a.Phone = req.Phone
	a.Genres = genres.Join(req.Genres)
	a.ImageLink = req.ImageLink
	a.FacebookLink = req.FacebookLink
	a.Website = req.Website
	a.SeekingVenue = req.SeekingVenue
	a.SeekingDescription = req.SeekingDescription
}

// Create validates and inserts an artist in one transaction, returning the
// new id.
func Create(db *gorm.DB, req *ArtistRequest) (uint, error) {
	if err := validateRequest(req); err != nil {
		return 0, err
	}
	var a artists.Artist
	applyRequest(&a, req)
	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&a).Error
	})
	if err != nil {
		return 0, &apperr.PersistenceError{Op: "create artist", Err: err}
	}
	return a.ID, nil
}

// Update overwrites every editable field of an existing artist. Absent
// checkbox fields therefore land as false.
func Update(db *gorm.DB, id uint, req *ArtistRequest) error {
	if err := validateRequest(req); err != nil {
		return err
	}
	return db.Transaction(func(tx *gorm.DB) error {
		var a artists.Artist
		if err := tx.First(&a, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrNotFound
			}
			return &apperr.PersistenceError{Op: "load artist", Err: err}
		}
		applyRequest(&a, req)
		if err := tx.Save(&a).Error; err != nil {
			return &apperr.PersistenceError{Op: "update artist", Err: err}
		}
		return nil
	})
}

// Delete removes an artist by id; its shows go with it via the cascade.
func Delete(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&artists.Artist{}, id)
		if res.Error != nil {
			return &apperr.PersistenceError{Op: "delete artist", Err: res.Error}
		}
		if res.RowsAffected == 0 {
			return apperr.ErrNotFound
		}
		return nil
	})
}
