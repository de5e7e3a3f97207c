package shows

import (
	"errors"
	"testing"
	"time"

	"booking-directory/database"
	artistsapi "booking-directory/internal/api/artists"
	venuesapi "booking-directory/internal/api/venues"
	"booking-directory/internal/app/apperr"
	showmodel "booking-directory/internal/domain/shows"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to access underlying connection: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

func seedPair(t *testing.T, db *gorm.DB) (artistID, venueID uint) {
	t.Helper()
	artistID, err := artistsapi.Create(db, &artistsapi.ArtistRequest{
		Name:      "Guns N Petals",
		City:      "San Francisco",
		State:     "CA",
		Genres:    []string{"Rock n Roll"},
		ImageLink: "https://example.com/petals.jpg",
	})
	if err != nil {
		t.Fatalf("Failed to create artist fixture: %v", err)
	}
	venueID, err = venuesapi.Create(db, &venuesapi.VenueRequest{
		Name:    "The Musical Hop",
		City:    "San Francisco",
		State:   "CA",
		Address: "1015 Folsom Street",
		Genres:  []string{"Jazz", "Reggae"},
	})
	if err != nil {
		t.Fatalf("Failed to create venue fixture: %v", err)
	}
	return artistID, venueID
}

func TestCreateAndList(t *testing.T) {
	db := setupTestDB(t)
	artistID, venueID := seedPair(t, db)

	start := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)
	id, err := Create(db, &ShowRequest{ArtistID: artistID, VenueID: venueID, StartTime: start})
	assert.NoError(t, err)
	assert.NotZero(t, id)

	views, err := List(db)
	assert.NoError(t, err)
	assert.Len(t, views, 1)
	assert.Equal(t, venueID, views[0].VenueID)
	assert.Equal(t, "The Musical Hop", views[0].VenueName)
	assert.Equal(t, "Guns N Petals", views[0].ArtistName)
	assert.Equal(t, "https://example.com/petals.jpg", views[0].ArtistImageLink)
	assert.Equal(t, showmodel.FormatStartTime(start), views[0].StartTime)

	// the venue's detail view now counts one upcoming show
	detail, err := venuesapi.GetDetail(db, venueID, time.Now())
	assert.NoError(t, err)
	assert.Equal(t, 0, detail.PastShowsCount)
	assert.Equal(t, 1, detail.UpcomingShowsCount)
}

func TestCreateValidation(t *testing.T) {
	db := setupTestDB(t)

	_, err := Create(db, &ShowRequest{VenueID: 1})
	var verr *apperr.ValidationError
	assert.True(t, errors.As(err, &verr))

	_, err = Create(db, &ShowRequest{ArtistID: 1})
	assert.True(t, errors.As(err, &verr))
}

func TestCreateRejectsUnknownReferences(t *testing.T) {
	db := setupTestDB(t)
	artistID, _ := seedPair(t, db)

	_, err := Create(db, &ShowRequest{ArtistID: artistID, VenueID: 999, StartTime: time.Now()})

	var perr *apperr.PersistenceError
	assert.True(t, errors.As(err, &perr))
}

func TestCreateDefaultsStartTimeToNow(t *testing.T) {
	db := setupTestDB(t)
	artistID, venueID := seedPair(t, db)

	before := time.Now()
	id, err := Create(db, &ShowRequest{ArtistID: artistID, VenueID: venueID})
	assert.NoError(t, err)

	var stored showmodel.Show
	assert.NoError(t, db.First(&stored, id).Error)
	assert.WithinDuration(t, before, stored.StartTime, 5*time.Second)
}

func TestCreateDenormalizesArtistImage(t *testing.T) {
	db := setupTestDB(t)
	artistID, venueID := seedPair(t, db)

	id, err := Create(db, &ShowRequest{ArtistID: artistID, VenueID: venueID, StartTime: time.Now()})
	assert.NoError(t, err)

	var stored showmodel.Show
	assert.NoError(t, db.First(&stored, id).Error)
	assert.Equal(t, "https://example.com/petals.jpg", stored.ArtistImageLink)
}

func TestListEmpty(t *testing.T) {
	db := setupTestDB(t)

	views, err := List(db)
	assert.NoError(t, err)
	assert.NotNil(t, views)
	assert.Empty(t, views)
}
