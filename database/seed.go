package database

import (
	"log"
	"time"

	"booking-directory/internal/domain/artists"
	"booking-directory/internal/domain/shows"
	"booking-directory/internal/domain/venues"

	"gorm.io/gorm"
)

// SeedSamples loads a small demo data set: three artists, three venues and
// five shows (two past, three upcoming). It is a no-op when venues already
// exist so a restart never duplicates rows.
func SeedSamples(db *gorm.DB) error {
	var count int64
	if err := db.Model(&venues.Venue{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Sample data already present, skipping seed")
		return nil
	}

	sampleArtists := []artists.Artist{
		{
			Name:               "Guns N Petals",
			City:               "San Francisco",
			State:              "CA",
			Phone:              "326-123-5000",
			Genres:             "Rock n Roll",
			ImageLink:          "https://images.unsplash.com/photo-1549213783-8284d0336c4f?w=300",
			FacebookLink:       "https://www.facebook.com/GunsNPetals",
			Website:            "https://www.gunsnpetalsband.com",
			SeekingVenue:       true,
			SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
		},
		{
			Name:         "Matt Quevedo",
			City:         "New York",
			State:        "NY",
			Phone:        "300-400-5000",
			Genres:       "Jazz",
			ImageLink:    "https://images.unsplash.com/photo-1495223153807-b916f75de8c5?w=334",
			FacebookLink: "https://www.facebook.com/mattquevedo923251523",
		},
		{
			Name:      "The Wild Sax Band",
			City:      "San Francisco",
			State:     "CA",
			Phone:     "432-325-5432",
			Genres:    "Jazz,Classical",
			ImageLink: "https://images.unsplash.com/photo-1558369981-f9ca78462e61?w=794",
		},
	}

	sampleVenues := []venues.Venue{
		{
			Name:               "The Musical Hop",
			City:               "San Francisco",
			State:              "CA",
			Address:            "1015 Folsom Street",
			Phone:              "123-123-1234",
			Genres:             "Jazz,Reggae,Swing,Classical,Folk",
			ImageLink:          "https://images.unsplash.com/photo-1543900694-133f37abaaa5?w=400",
			FacebookLink:       "https://www.facebook.com/TheMusicalHop",
			Website:            "https://www.themusicalhop.com",
			SeekingTalent:      true,
			SeekingDescription: "We are on the lookout for a local artist to play every two weeks. Please call us.",
		},
		{
			Name:         "The Dueling Pianos Bar",
			City:         "New York",
			State:        "NY",
			Address:      "335 Delancey Street",
			Phone:        "914-003-1132",
			Genres:       "Classical,R&B,Hip-Hop",
			ImageLink:    "https://images.unsplash.com/photo-1497032205916-ac775f0649ae?w=750",
			FacebookLink: "https://www.facebook.com/theduelingpianos",
			Website:      "https://www.theduelingpianos.com",
		},
		{
			Name:         "Park Square Live Music & Coffee",
			City:         "San Francisco",
			State:        "CA",
			Address:      "34 Whiskey Moore Ave",
			Phone:        "415-000-1234",
			Genres:       "Rock n Roll,Jazz,Classical,Folk",
			ImageLink:    "https://images.unsplash.com/photo-1485686531765-ba63b07845a7?w=747",
			FacebookLink: "https://www.facebook.com/ParkSquareLiveMusicAndCoffee",
			Website:      "https://www.parksquarelivemusicandcoffee.com",
		},
	}

	// artist index, venue index, start time
	sampleShows := []struct {
		artist int
		venue  int
		start  time.Time
	}{
		{0, 0, time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)},
		{1, 2, time.Date(2019, 6, 15, 23, 0, 0, 0, time.UTC)},
		{2, 2, time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)},
		{2, 2, time.Date(2035, 4, 8, 20, 0, 0, 0, time.UTC)},
		{2, 2, time.Date(2035, 4, 15, 20, 0, 0, 0, time.UTC)},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&sampleArtists).Error; err != nil {
			return err
		}
		if err := tx.Create(&sampleVenues).Error; err != nil {
			return err
		}
		for _, s := range sampleShows {
			show := shows.Show{
				ArtistID:        sampleArtists[s.artist].ID,
				VenueID:         sampleVenues[s.venue].ID,
				StartTime:       s.start,
				ArtistImageLink: sampleArtists[s.artist].ImageLink,
			}
			if err := tx.Create(&show).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
