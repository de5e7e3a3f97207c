package venues

// ---------- requests

type VenueRequest struct {
	Name    string `json:"name" binding:"required" validate:"required"`
	City    string `json:"city" binding:"required" validate:"required"`
	State   string `json:"state" binding:"required" validate:"required"`
	Address string `json:"address" binding:"required" validate:"required"`
	Phone   string `json:"phone"`

	Genres []string `json:"genres" validate:"dive,required"`

	ImageLink    string `json:"image_link"`
	FacebookLink string `json:"facebook_link"`
	Website      string `json:"website"`

	// Checkbox-style field: absent in the submission means false.
	SeekingTalent      bool   `json:"seeking_talent"`
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

// CityGroup holds the venues of one (city, state) pair, in first-seen order.
type CityGroup struct {
	City   string    `json:"city"`
	State  string    `json:"state"`
	Venues []NameRef `json:"venues"`
}

type SearchResponse struct {
	Count int       `json:"count"`
	Data  []NameRef `json:"data"`
}

// ShowView is one of the venue's shows with its artist resolved.
type ShowView struct {
	ArtistID        uint   `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

type VenueDetail struct {
	ID                 uint     `json:"id"`
	Name               string   `json:"name"`
	Genres             []string `json:"genres"`
	Address            string   `json:"address"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone"`
	Website            string   `json:"website"`
	FacebookLink       string   `json:"facebook_link"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description"`
	ImageLink          string   `json:"image_link"`

	PastShows          []ShowView `json:"past_shows"`
	UpcomingShows      []ShowView `json:"upcoming_shows"`
	PastShowsCount     int        `json:"past_shows_count"`
	UpcomingShowsCount int        `json:"upcoming_shows_count"`
}
