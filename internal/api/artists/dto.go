package artists

// ---------- requests

type ArtistRequest struct {
	Name  string `json:"name" binding:"required" validate:"required"`
	City  string `json:"city" binding:"required" validate:"required"`
	State string `json:"state" binding:"required" validate:"required"`
	Phone string `json:"phone"`

	// Required for artists, unlike venues.
	Genres []string `json:"genres" binding:"required" validate:"required,min=1,dive,required"`

	ImageLink    string `json:"image_link"`
	FacebookLink string `json:"facebook_link"`
	Website      string `json:"website"`

	// Checkbox-style field: absent in the submission means false.
	SeekingVenue       bool   `json:"seeking_venue"`
	SeekingDescription string `json:"seeking_description"`
}

type SearchRequest struct {
	SearchTerm string `json:"search_term"`
}

// ---------- responses

type NameRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type SearchResponse struct {
	Count int       `json:"count"`
	Data  []NameRef `json:"data"`
}

// ShowView is one of the artist's shows with its venue resolved.
type ShowView struct {
	VenueID        uint   `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

type ArtistDetail struct {
	ID                 uint     `json:"id"`
	Name               string   `json:"name"`
	Genres             []string `json:"genres"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone"`
	Website            string   `json:"website"`
	FacebookLink       string   `json:"facebook_link"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description"`
	ImageLink          string   `json:"image_link"`

	PastShows          []ShowView `json:"past_shows"`
	UpcomingShows      []ShowView `json:"upcoming_shows"`
	PastShowsCount     int        `json:"past_shows_count"`
	UpcomingShowsCount int        `json:"upcoming_shows_count"`
}
