package directory

import (
	"testing"
	"time"

	"booking-app/database"
	"booking-app/internal/domain/booking"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDirectory opens a private in-memory database per test. The pool is
// pinned to one connection so the memory database survives between queries.
func newTestDirectory(t *testing.T) *Directory {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return New(db)
}

func fixNow(d *Directory, at time.Time) {
	d.now = func() time.Time { return at }
}

func seedVenue(t *testing.T, d *Directory, name, city, state string) *booking.Venue {
	t.Helper()
	v, err := d.CreateVenue(booking.VenueInput{
		Name:      name,
		City:      city,
		State:     state,
		Address:   "1015 Folsom Street",
		Genres:    []string{"Jazz", "Folk"},
		ImageLink: "https://example.com/" + name + ".jpg",
	})
	require.NoError(t, err)
	return v
}

func seedArtist(t *testing.T, d *Directory, name string) *booking.Artist {
	t.Helper()
	a, err := d.CreateArtist(booking.ArtistInput{
		Name:      name,
		City:      "San Francisco",
		State:     "CA",
		Genres:    []string{"Rock n Roll"},
		ImageLink: "https://example.com/" + name + ".jpg",
	})
	require.NoError(t, err)
	return a
}

func seedShow(t *testing.T, d *Directory, venueID, artistID uint, start time.Time) *booking.Show {
	t.Helper()
	s, err := d.CreateShow(booking.ShowInput{
		VenueID:   venueID,
		ArtistID:  artistID,
		StartTime: start,
	})
	require.NoError(t, err)
	return s
}
