package directory

import (
	"errors"
	"strings"
	"time"

	"booking-app/internal/domain/booking"

	"gorm.io/gorm"
)

// VenueBoard lists every venue grouped by its (city, state) pair, each
// venue annotated with the number of shows starting strictly after now.
func (d *Directory) VenueBoard() ([]Area, error) {
	now := d.now()

	type row struct {
		ID               uint
		Name             string
		City             string
		State            string
		NumUpcomingShows int64
	}
	var rows []row
	err := d.db.Model(&booking.Venue{}).
		Select("venues.id AS id, venues.name AS name, venues.city AS city, venues.state AS state, count(shows.id) AS num_upcoming_shows").
		Joins("LEFT JOIN shows ON shows.venue_id = venues.id AND shows.start_time > ?", now).
		Group("venues.id, venues.name, venues.city, venues.state").
		Order("venues.city, venues.state, venues.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	areas := make([]Area, 0)
	index := make(map[[2]string]int)
	for _, r := range rows {
		key := [2]string{r.City, r.State}
		i, ok := index[key]
		if !ok {
			i = len(areas)
			index[key] = i
			areas = append(areas, Area{City: r.City, State: r.State, Venues: []NameMatch{}})
		}
		areas[i].Venues = append(areas[i].Venues, NameMatch{
			ID:               r.ID,
			Name:             r.Name,
			NumUpcomingShows: r.NumUpcomingShows,
		})
	}
	return areas, nil
}

// ListArtists returns id and name for every artist.
func (d *Directory) ListArtists() ([]ArtistRef, error) {
	refs := make([]ArtistRef, 0)
	err := d.db.Model(&booking.Artist{}).
		Select("id, name").
		Order("id").
		Scan(&refs).Error
	if err != nil {
		return nil, err
	}
	return refs, nil
}

// SearchVenues matches venue names case-insensitively against the given
// substring. Matches with no upcoming shows still appear, with a zero count.
func (d *Directory) SearchVenues(term string) (SearchResults, error) {
	return d.searchByName("venues", "venue_id", term)
}

// SearchArtists is SearchVenues over artist names.
func (d *Directory) SearchArtists(term string) (SearchResults, error) {
	return d.searchByName("artists", "artist_id", term)
}

func (d *Directory) searchByName(table, fk, term string) (SearchResults, error) {
	now := d.now()
	like := "%" + strings.ToLower(term) + "%"

	data := make([]NameMatch, 0)
	err := d.db.Table(table).
		Select(table+".id AS id, "+table+".name AS name, count(shows.id) AS num_upcoming_shows").
		Joins("LEFT JOIN shows ON shows."+fk+" = "+table+".id AND shows.start_time > ?", now).
		Where("LOWER("+table+".name) LIKE ?", like).
		Group(table + ".id, " + table + ".name").
		Order(table + ".id").
		Scan(&data).Error
	if err != nil {
		return SearchResults{}, err
	}
	return SearchResults{Count: len(data), Data: data}, nil
}

// VenueDetail returns the full venue record with its shows partitioned
// into past (start before now) and upcoming (start at or after now).
func (d *Directory) VenueDetail(id uint) (*VenueDetail, error) {
	now := d.now()

	var v booking.Venue
	if err := d.db.First(&v, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &booking.NotFoundError{Entity: "venue", ID: id}
		}
		return nil, err
	}

	past, upcoming, err := d.venueAppearances(id, now)
	if err != nil {
		return nil, err
	}

	return &VenueDetail{
		ID:                 v.ID,
		Name:               v.Name,
		Genres:             v.Genres,
		Address:            v.Address,
		City:               v.City,
		State:              v.State,
		Phone:              v.Phone,
		Website:            v.WebsiteLink,
		FacebookLink:       v.FacebookLink,
		ImageLink:          v.ImageLink,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

func (d *Directory) venueAppearances(venueID uint, now time.Time) (past, upcoming []ArtistAppearance, err error) {
	type row struct {
		ArtistID        uint
		ArtistName      string
		ArtistImageLink string
		StartTime       time.Time
	}
	load := func(cond string) ([]ArtistAppearance, error) {
		var rows []row
		err := d.db.Model(&booking.Show{}).
			Select("shows.artist_id AS artist_id, artists.name AS artist_name, artists.image_link AS artist_image_link, shows.start_time AS start_time").
			Joins("JOIN artists ON artists.id = shows.artist_id").
			Where("shows.venue_id = ? AND shows.start_time "+cond+" ?", venueID, now).
			Order("shows.start_time").
			Scan(&rows).Error
		if err != nil {
			return nil, err
		}
		out := make([]ArtistAppearance, 0, len(rows))
		for _, r := range rows {
			out = append(out, ArtistAppearance{
				ArtistID:        r.ArtistID,
				ArtistName:      r.ArtistName,
				ArtistImageLink: r.ArtistImageLink,
				StartTime:       r.StartTime.UTC().Format(startTimeLayout),
			})
		}
		return out, nil
	}

	if past, err = load("<"); err != nil {
		return nil, nil, err
	}
	if upcoming, err = load(">="); err != nil {
		return nil, nil, err
	}
	return past, upcoming, nil
}

// ArtistDetail is VenueDetail from the artist's side.
func (d *Directory) ArtistDetail(id uint) (*ArtistDetail, error) {
	now := d.now()

	var a booking.Artist
	if err := d.db.First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &booking.NotFoundError{Entity: "artist", ID: id}
		}
		return nil, err
	}

	past, upcoming, err := d.artistAppearances(id, now)
	if err != nil {
		return nil, err
	}

	return &ArtistDetail{
		ID:                 a.ID,
		Name:               a.Name,
		Genres:             a.Genres,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Website:            a.WebsiteLink,
		FacebookLink:       a.FacebookLink,
		ImageLink:          a.ImageLink,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

func (d *Directory) artistAppearances(artistID uint, now time.Time) (past, upcoming []VenueAppearance, err error) {
	type row struct {
		VenueID        uint
		VenueName      string
		VenueImageLink string
		StartTime      time.Time
	}
	load := func(cond string) ([]VenueAppearance, error) {
		var rows []row
		err := d.db.Model(&booking.Show{}).
			Select("shows.venue_id AS venue_id, venues.name AS venue_name, venues.image_link AS venue_image_link, shows.start_time AS start_time").
			Joins("JOIN venues ON venues.id = shows.venue_id").
			Where("shows.artist_id = ? AND shows.start_time "+cond+" ?", artistID, now).
			Order("shows.start_time").
			Scan(&rows).Error
		if err != nil {
			return nil, err
		}
		out := make([]VenueAppearance, 0, len(rows))
		for _, r := range rows {
			out = append(out, VenueAppearance{
				VenueID:        r.VenueID,
				VenueName:      r.VenueName,
				VenueImageLink: r.VenueImageLink,
				StartTime:      r.StartTime.UTC().Format(startTimeLayout),
			})
		}
		return out, nil
	}

	if past, err = load("<"); err != nil {
		return nil, nil, err
	}
	if upcoming, err = load(">="); err != nil {
		return nil, nil, err
	}
	return past, upcoming, nil
}

// ListShows returns every show with both sides of the booking joined in,
// unfiltered and unpaginated.
func (d *Directory) ListShows() ([]ShowListing, error) {
	type row struct {
		VenueID         uint
		VenueName       string
		ArtistID        uint
		ArtistName      string
		ArtistImageLink string
		StartTime       time.Time
	}
	var rows []row
	err := d.db.Model(&booking.Show{}).
		Select("shows.venue_id AS venue_id, venues.name AS venue_name, shows.artist_id AS artist_id, artists.name AS artist_name, artists.image_link AS artist_image_link, shows.start_time AS start_time").
		Joins("JOIN venues ON venues.id = shows.venue_id").
		Joins("JOIN artists ON artists.id = shows.artist_id").
		Order("shows.start_time, shows.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]ShowListing, 0, len(rows))
	for _, r := range rows {
		out = append(out, ShowListing{
			VenueID:         r.VenueID,
			VenueName:       r.VenueName,
			ArtistID:        r.ArtistID,
			ArtistName:      r.ArtistName,
			ArtistImageLink: r.ArtistImageLink,
			StartTime:       r.StartTime.UTC().Format(startTimeLayout),
		})
	}
	return out, nil
}
