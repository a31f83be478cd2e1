package directory

import (
	"errors"
	"testing"
	"time"

	"booking-app/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findArea(areas []Area, city, state string) *Area {
	for i := range areas {
		if areas[i].City == city && areas[i].State == state {
			return &areas[i]
		}
	}
	return nil
}

func TestVenueBoardGroupsByCityState(t *testing.T) {
	d := newTestDirectory(t)

	a := seedVenue(t, d, "The Musical Hop", "Boston", "MA")
	b := seedVenue(t, d, "The Dueling Pianos Bar", "Boston", "MA")
	seedVenue(t, d, "Park Square Live Music & Coffee", "NYC", "NY")

	areas, err := d.VenueBoard()
	require.NoError(t, err)
	require.Len(t, areas, 2)

	boston := findArea(areas, "Boston", "MA")
	require.NotNil(t, boston)
	require.Len(t, boston.Venues, 2)
	ids := []uint{boston.Venues[0].ID, boston.Venues[1].ID}
	assert.ElementsMatch(t, []uint{a.ID, b.ID}, ids)

	nyc := findArea(areas, "NYC", "NY")
	require.NotNil(t, nyc)
	require.Len(t, nyc.Venues, 1)
}

func TestVenueBoardCountsOnlyStrictlyUpcomingShows(t *testing.T) {
	d := newTestDirectory(t)
	now := time.Date(2026, 6, 15, 20, 0, 0, 0, time.UTC)

	v := seedVenue(t, d, "The Musical Hop", "San Francisco", "CA")
	ar := seedArtist(t, d, "Guns N Petals")
	seedShow(t, d, v.ID, ar.ID, now.Add(-time.Hour)) // past
	seedShow(t, d, v.ID, ar.ID, now)                 // boundary, not strictly after
	seedShow(t, d, v.ID, ar.ID, now.Add(time.Hour))  // upcoming

	fixNow(d, now)
	areas, err := d.VenueBoard()
	require.NoError(t, err)
	require.Len(t, areas, 1)
	require.Len(t, areas[0].Venues, 1)
	assert.Equal(t, int64(1), areas[0].Venues[0].NumUpcomingShows)
}

func TestVenueBoardEmptyAndIdempotent(t *testing.T) {
	d := newTestDirectory(t)

	areas, err := d.VenueBoard()
	require.NoError(t, err)
	assert.Empty(t, areas)

	seedVenue(t, d, "The Musical Hop", "San Francisco", "CA")
	fixNow(d, time.Date(2026, 6, 15, 20, 0, 0, 0, time.UTC))

	first, err := d.VenueBoard()
	require.NoError(t, err)
	second, err := d.VenueBoard()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestListArtists(t *testing.T) {
	d := newTestDirectory(t)
	a := seedArtist(t, d, "Guns N Petals")
	b := seedArtist(t, d, "The Wild Sax Band")

	refs, err := d.ListArtists()
	require.NoError(t, err)
	require.Len(t, refs, 2)
	assert.Equal(t, []ArtistRef{{ID: a.ID, Name: a.Name}, {ID: b.ID, Name: b.Name}}, refs)
}

func TestSearchVenuesCaseInsensitiveSubstring(t *testing.T) {
	d := newTestDirectory(t)
	hop := seedVenue(t, d, "The Musical Hop", "San Francisco", "CA")
	seedVenue(t, d, "Park Square Live Music & Coffee", "San Francisco", "CA")

	res, err := d.SearchVenues("hop")
	require.NoError(t, err)
	require.Equal(t, 1, res.Count)
	assert.Equal(t, hop.ID, res.Data[0].ID)
	assert.Equal(t, "The Musical Hop", res.Data[0].Name)

	res, err = d.SearchVenues("Music")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Count)

	res, err = d.SearchVenues("does-not-exist")
	require.NoError(t, err)
	assert.Equal(t, 0, res.Count)
	assert.NotNil(t, res.Data)
	assert.Empty(t, res.Data)
}

func TestSearchAnnotatesUpcomingCounts(t *testing.T) {
	d := newTestDirectory(t)
	now := time.Date(2026, 6, 15, 20, 0, 0, 0, time.UTC)

	busy := seedVenue(t, d, "The Musical Hop", "San Francisco", "CA")
	quiet := seedVenue(t, d, "The Quiet Music Room", "San Francisco", "CA")
	ar := seedArtist(t, d, "Guns N Petals")
	seedShow(t, d, busy.ID, ar.ID, now.Add(time.Hour))
	seedShow(t, d, busy.ID, ar.ID, now.Add(-time.Hour))

	fixNow(d, now)
	res, err := d.SearchVenues("music")
	require.NoError(t, err)
	require.Equal(t, 2, res.Count)

	byID := map[uint]int64{}
	for _, m := range res.Data {
		byID[m.ID] = m.NumUpcomingShows
	}
	// A name match without upcoming shows still appears, just with zero.
	assert.Equal(t, int64(1), byID[busy.ID])
	assert.Equal(t, int64(0), byID[quiet.ID])
}

func TestSearchArtists(t *testing.T) {
	d := newTestDirectory(t)
	seedArtist(t, d, "Guns N Petals")
	sax := seedArtist(t, d, "The Wild Sax Band")

	res, err := d.SearchArtists("SAX")
	require.NoError(t, err)
	require.Equal(t, 1, res.Count)
	assert.Equal(t, sax.ID, res.Data[0].ID)
}

func TestVenueDetailPartitionsShows(t *testing.T) {
	d := newTestDirectory(t)
	now := time.Date(2026, 6, 15, 20, 0, 0, 0, time.UTC)

	v := seedVenue(t, d, "The Musical Hop", "San Francisco", "CA")
	ar := seedArtist(t, d, "Guns N Petals")
	seedShow(t, d, v.ID, ar.ID, now.Add(-48*time.Hour))
	seedShow(t, d, v.ID, ar.ID, now) // boundary classifies as upcoming
	seedShow(t, d, v.ID, ar.ID, now.Add(48*time.Hour))

	fixNow(d, now)
	detail, err := d.VenueDetail(v.ID)
	require.NoError(t, err)

	assert.Equal(t, v.Name, detail.Name)
	assert.Equal(t, []string{"Jazz", "Folk"}, detail.Genres)
	require.Len(t, detail.PastShows, 1)
	require.Len(t, detail.UpcomingShows, 2)
	assert.Equal(t, 1, detail.PastShowsCount)
	assert.Equal(t, 2, detail.UpcomingShowsCount)
	assert.Equal(t, 3, detail.PastShowsCount+detail.UpcomingShowsCount)

	past := detail.PastShows[0]
	assert.Equal(t, ar.ID, past.ArtistID)
	assert.Equal(t, ar.Name, past.ArtistName)
	assert.Equal(t, ar.ImageLink, past.ArtistImageLink)
	assert.Equal(t, "2026-06-13 20:00:00", past.StartTime)

	assert.Equal(t, "2026-06-15 20:00:00", detail.UpcomingShows[0].StartTime)
}

func TestVenueDetailNotFound(t *testing.T) {
	d := newTestDirectory(t)

	_, err := d.VenueDetail(12345)
	var nf *booking.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "venue", nf.Entity)
	assert.Equal(t, uint(12345), nf.ID)
}

func TestArtistDetailPartitionsShows(t *testing.T) {
	d := newTestDirectory(t)
	now := time.Date(2026, 6, 15, 20, 0, 0, 0, time.UTC)

	v := seedVenue(t, d, "The Musical Hop", "San Francisco", "CA")
	ar := seedArtist(t, d, "Guns N Petals")
	seedShow(t, d, v.ID, ar.ID, now.Add(-time.Hour))
	seedShow(t, d, v.ID, ar.ID, now.Add(time.Hour))

	fixNow(d, now)
	detail, err := d.ArtistDetail(ar.ID)
	require.NoError(t, err)

	require.Len(t, detail.PastShows, 1)
	require.Len(t, detail.UpcomingShows, 1)
	assert.Equal(t, v.ID, detail.UpcomingShows[0].VenueID)
	assert.Equal(t, v.Name, detail.UpcomingShows[0].VenueName)
	assert.Equal(t, v.ImageLink, detail.UpcomingShows[0].VenueImageLink)
}

func TestArtistDetailNotFound(t *testing.T) {
	d := newTestDirectory(t)

	_, err := d.ArtistDetail(99)
	var nf *booking.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "artist", nf.Entity)
}

func TestListShowsIncludesEveryShow(t *testing.T) {
	d := newTestDirectory(t)
	now := time.Date(2026, 6, 15, 20, 0, 0, 0, time.UTC)

	v := seedVenue(t, d, "The Musical Hop", "San Francisco", "CA")
	ar := seedArtist(t, d, "Guns N Petals")
	seedShow(t, d, v.ID, ar.ID, now.Add(-time.Hour))
	seedShow(t, d, v.ID, ar.ID, now.Add(time.Hour))

	listings, err := d.ListShows()
	require.NoError(t, err)
	require.Len(t, listings, 2) // no time filtering

	first := listings[0]
	assert.Equal(t, v.ID, first.VenueID)
	assert.Equal(t, v.Name, first.VenueName)
	assert.Equal(t, ar.ID, first.ArtistID)
	assert.Equal(t, ar.Name, first.ArtistName)
	assert.Equal(t, ar.ImageLink, first.ArtistImageLink)
	assert.Equal(t, "2026-06-15 19:00:00", first.StartTime)
}
