package directory

// ---------- query results

// NameMatch is the lightweight row used by the venue board and by search
// results: an entity plus its count of upcoming shows.
type NameMatch struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int64  `json:"num_upcoming_shows"`
}

// Area groups the venues sharing one (city, state) pair.
type Area struct {
	City   string      `json:"city"`
	State  string      `json:"state"`
	Venues []NameMatch `json:"venues"`
}

type SearchResults struct {
	Count int         `json:"count"`
	Data  []NameMatch `json:"data"`
}

// ArtistRef is the id/name pair the artist listing returns.
type ArtistRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// ArtistAppearance annotates one show on a venue detail page with the
// booked artist.
type ArtistAppearance struct {
	ArtistID        uint   `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// VenueAppearance annotates one show on an artist detail page with the
// hosting venue.
type VenueAppearance struct {
	VenueID        uint   `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

type VenueDetail struct {
	ID      uint     `json:"id"`
	Name    string   `json:"name"`
	Genres  []string `json:"genres"`
	Address string   `json:"address"`
	City    string   `json:"city"`
	State   string   `json:"state"`
	Phone   string   `json:"phone"`

	Website      string `json:"website"`
	FacebookLink string `json:"facebook_link"`
	ImageLink    string `json:"image_link"`

	SeekingTalent      bool   `json:"seeking_talent"`
	SeekingDescription string `json:"seeking_description"`

	PastShows          []ArtistAppearance `json:"past_shows"`
	UpcomingShows      []ArtistAppearance `json:"upcoming_shows"`
	PastShowsCount     int                `json:"past_shows_count"`
	UpcomingShowsCount int                `json:"upcoming_shows_count"`
}

type ArtistDetail struct {
	ID     uint     `json:"id"`
	Name   string   `json:"name"`
	Genres []string `json:"genres"`
	City   string   `json:"city"`
	State  string   `json:"state"`
	Phone  string   `json:"phone"`

	Website      string `json:"website"`
	FacebookLink string `json:"facebook_link"`
	ImageLink    string `json:"image_link"`

	SeekingVenue       bool   `json:"seeking_venue"`
	SeekingDescription string `json:"seeking_description"`

	PastShows          []VenueAppearance `json:"past_shows"`
	UpcomingShows      []VenueAppearance `json:"upcoming_shows"`
	PastShowsCount     int               `json:"past_shows_count"`
	UpcomingShowsCount int               `json:"upcoming_shows_count"`
}

// ShowListing is one row of the full show listing, joined with both sides
// of the booking.
type ShowListing struct {
	VenueID         uint   `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        uint   `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}
