package venues

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

type venueRow struct {
	ID    uint
	Name  string
	City  string
	State string
}

// ListGrouped returns every venue exactly once, grouped by (city, state) in
// the order the pairs are first seen.
func ListGrouped(db *gorm.DB) ([]CityGroup, error) {
	var rows []venueRow
	if err := db.Model(&venues.Venue{}).Select("id", "name", "city", "state").Scan(&rows).Error; err != nil {
		return nil, err
	}

	type cityState struct{ city, state string }
	index := map[cityState]int{}
	groups := []CityGroup{}
	for _, r := range rows {
		key := cityState{r.City, r.State}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, CityGroup{City: r.City, State: r.State, Venues: []NameRef{}})
		}
		groups[i].Venues = append(groups[i].Venues, NameRef{ID: r.ID, Name: r.Name})
	}
	return groups, nil
}

// SearchByName matches venue names case-insensitively on a substring. The
// empty term matches every venue.
func SearchByName(db *gorm.DB, term string) (*SearchResponse, error) {
	refs := []NameRef{}
	pattern := "%" + strings.ToLower(term) + "%"
	err := db.Model(&venues.Venue{}).
		Select("id", "name").
		Where("LOWER(name) LIKE ?", pattern).
		Scan(&refs).Error
	if err != nil {
		return nil, err
	}
	return &SearchResponse{Count: len(refs), Data: refs}, nil
}

// GetDetail loads one venue with its genres decoded and its shows split into
// past and upcoming relative to now.
func GetDetail(db *gorm.DB, id uint, now time.Time) (*VenueDetail, error) {
	var v venues.Venue
	if err := db.Preload("Shows").First(&v, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}

	byID, err := artistsByID(db, v.Shows)
	if err != nil {
		return nil, err
	}

	past, upcoming := shows.Partition(v.Shows, now)
	pastViews, err := toShowViews(past, byID)
	if err != nil {
		return nil, err
	}
	upcomingViews, err := toShowViews(upcoming, byID)
	if err != nil {
		return nil, err
	}

	return &VenueDetail{
		ID:                 v.ID,
		Name:               v.Name,
		Genres:             genres.Split(v.Genres),
		Address:            v.Address,
		City:               v.City,
		State:              v.State,
		Phone:              v.Phone,
		Website:            v.Website,
		FacebookLink:       v.FacebookLink,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
		ImageLink:          v.ImageLink,
		PastShows:          pastViews,
		UpcomingShows:      upcomingViews,
		PastShowsCount:     len(pastViews),
		UpcomingShowsCount: len(upcomingViews),
	}, nil
}

func artistsByID(db *gorm.DB, list []shows.Show) (map[uint]artists.Artist, error) {
	ids := make([]uint, 0, len(list))
	seen := map[uint]bool{}
	for _, s := range list {
		if !seen[s.ArtistID] {
			seen[s.ArtistID] = true
			ids = append(ids, s.ArtistID)
		}
	}
	byID := make(map[uint]artists.Artist, len(ids))
	if len(ids) == 0 {
		return byID, nil
	}
	var rows []artists.Artist
	if err := db.Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, a := range rows {
		byID[a.ID] = a
	}
	return byID, nil
}

func toShowViews(list []shows.Show, byID map[uint]artists.Artist) ([]ShowView, error) {
	out := make([]ShowView, 0, len(list))
	for _, s := range list {
		a, ok := byID[s.ArtistID]
		if !ok {
			return nil, &apperr.BrokenReference{Kind: "artist", ID: s.ArtistID}
		}
		out = append(out, ShowView{
			ArtistID:        s.ArtistID,
			ArtistName:      a.Name,
			ArtistImageLink: a.ImageLink,
			StartTime:       shows.FormatStartTime(s.StartTime),
		})
	}
	return out, nil
}

func validateRequest(req *VenueRequest) error {
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

func applyRequest(v *venues.Venue, req *VenueRequest) {
	v.Name = req.Name
	v.City = req.City
	v.State = req.State
	v.Address = req.Address
	v.Phone = req.Phone
	v.Genres = genres.Join(req.Genres)
	v.ImageLink = req.ImageLink
	v.FacebookLink = req.FacebookLink
	v.Website = req.Website
	v.SeekingTalent = req.SeekingTalent
	v.SeekingDescription = req.SeekingDescription
}

// Create validates and inserts a venue in one transaction, returning the new
// id.
func Create(db *gorm.DB, req *VenueRequest) (uint, error) {
	if err := validateRequest(req); err != nil {
		return 0, err
	}
	var v venues.Venue
	applyRequest(&v, req)
	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&v).Error
	})
	if err != nil {
		return 0, &apperr.PersistenceError{Op: "create venue", Err: err}
	}
	return v.ID, nil
}

// Update overwrites every editable field of an existing venue. Absent
// checkbox fields therefore land as false.
func Update(db *gorm.DB, id uint, req *VenueRequest) error {
	if err := validateRequest(req); err != nil {
		return err
	}
	return db.Transaction(func(tx *gorm.DB) error {
		var v venues.Venue
		if err := tx.First(&v, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrNotFound
			}
			return &apperr.PersistenceError{Op: "load venue", Err: err}
		}
		applyRequest(&v, req)
		if err := tx.Save(&v).Error; err != nil {
			return &apperr.PersistenceError{Op: "update venue", Err: err}
		}
		return nil
	})
}

// Delete removes a venue by id; its shows go with it via the cascade.
func Delete(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&venues.Venue{}, id)
		if res.Error != nil {
			return &apperr.PersistenceError{Op: "delete venue", Err: res.Error}
		}
		if res.RowsAffected == 0 {
			return apperr.ErrNotFound
		}
		return nil
	})
}
